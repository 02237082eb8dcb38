package kernel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"retail/internal/pkg/constraints"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

// The boundary date grammar is D[D]-MMM-YY: a 1-2 digit day, a 3-letter
// month abbreviation and a 2-digit year.
var dateGrammar = regexp.MustCompile(`^([0-9]{1,2})-([a-zA-Z]{3})-([0-9]{2})$`)

// dayCheck accepts days in [1,32). The bound is uniform: 31 is accepted for
// every month, including months that do not have 31 days. This mirrors the
// source system's validation and is covered explicitly by tests.
var dayCheck = constraints.IntRange(1, 32)

// monthCheck reproduces the source system's month table verbatim, including
// the literal entry "arp" occupying April's slot. As a result "apr" fails
// validation while "arp" passes it but cannot be resolved to a calendar
// month. Kept deliberately; see ParseDate.
var monthCheck = constraints.StringOptionsFold(
	"jan", "feb", "mar", "arp", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
)

// monthsByAbbrev resolves a lowercase abbreviation to its calendar month.
var monthsByAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// canonicalMonths renders months in the codec's canonical case.
var canonicalMonths = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// centuryPivot fixes two-digit year expansion: YY >= 70 resolves to 19YY,
// YY < 70 resolves to 20YY. The source system left this to a runtime
// default; here it is pinned so that parses are reproducible.
const centuryPivot = 70

// ErrDateIsNotConstructed is returned when validating a zero-value Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError(
	"date must be created via ParseDate or DateOf constructors")

// IsValidDate reports whether s is an acceptable boundary date string.
// A string is valid iff it matches the grammar, its day lies in [1,31]
// and its month abbreviation is in the fixed set (case-insensitive).
func IsValidDate(s string) bool {
	m := dateGrammar.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	return dayCheck.Verify(day) && monthCheck.Verify(m[2])
}

// Date is an immutable value object holding a calendar date exchanged at
// the system boundary in D-MON-YY form. The zero value is invalid; use
// ParseDate or DateOf.
type Date struct {
	day   int
	month time.Month
	year  int
	guard guard.ConstructorGuard
}

// ParseDate parses a boundary date string into a Date. It never panics: a
// string that fails IsValidDate, or whose month abbreviation cannot be
// resolved to a calendar month (the table's "arp" entry), yields an error.
func ParseDate(s string) (Date, error) {
	if !IsValidDate(s) {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("%q does not match the D-MON-YY grammar", s))
	}

	m := dateGrammar.FindStringSubmatch(s)
	day, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[3])

	month, ok := monthsByAbbrev[strings.ToLower(m[2])]
	if !ok {
		// Reachable only through the month table's literal "arp" entry.
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date",
			fmt.Errorf("month %q cannot be resolved to a calendar month", m[2]))
	}

	year := 2000 + yy
	if yy >= centuryPivot {
		year = 1900 + yy
	}

	return Date{
		day:   day,
		month: month,
		year:  year,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// DateOf builds a Date from a calendar time, discarding the time of day.
// It is used when reconstructing dates from persistence.
func DateOf(t time.Time) Date {
	return Date{
		day:   t.Day(),
		month: t.Month(),
		year:  t.Year(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks that the Date was properly constructed.
func (d Date) Validate() error {
	return d.guard.Validate(ErrDateIsNotConstructed)
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return d.month
}

// Year returns the expanded 4-digit year.
func (d Date) Year() int {
	return d.year
}

// Time returns the date at midnight UTC, for persistence.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// IsEqual compares two dates by calendar value.
func (d Date) IsEqual(other Date) bool {
	return d.day == other.day && d.month == other.month && d.year == other.year
}

// String renders the date in the codec's canonical form, e.g. "3-Apr-21".
// A zero-value Date renders as "invalid". Note that an April date renders
// as "Apr", which the validation table does not accept back; the asymmetry
// is inherited from the source month table.
func (d Date) String() string {
	if d.Validate() != nil {
		return "invalid"
	}
	return fmt.Sprintf("%d-%s-%02d", d.day, canonicalMonths[d.month-1], d.year%100)
}
