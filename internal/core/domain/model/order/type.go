package order

import (
	"fmt"

	"retail/internal/pkg/constraints"
	"retail/internal/pkg/errs"
)

// Type represents the kind of retail order being recorded. The type is
// fixed at creation and decides the order's initial completion flag: an
// in-store purchase completes at the till, while collections and
// deliveries stay pending until fulfilled.
type Type int

const (
	// Unknown represents an invalid or undefined type.
	// This value (0) helps catch uninitialized Type values.
	Unknown Type = iota

	// InStore is a purchase completed at the counter.
	InStore

	// Collection is an order assembled for later pickup by the customer.
	Collection

	// Delivery is an order shipped to the customer's address.
	Delivery
)

// typeOptions gates order type strings arriving at the boundary.
// Membership is case-sensitive.
var typeOptions = constraints.StringOptions("InStore", "Collection", "Delivery")

// completedFlagCheck gates the header's 0/1 completion flag the same way
// type and date strings are gated before a write.
var completedFlagCheck = constraints.IntRange(0, 2)

// getTypeStrings returns a map of Type values to their string representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown:    "Unknown",
		InStore:    "InStore",
		Collection: "Collection",
		Delivery:   "Delivery",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		InStore:    "InStore",
		Collection: "Collection",
		Delivery:   "Delivery",
	}
}

// TypeFromString resolves a boundary string to a Type. The string must be
// an exact, case-sensitive member of the allowed set.
func TypeFromString(s string) (Type, error) {
	if !typeOptions.Verify(s) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%q is not one of InStore, Collection, Delivery", s))
	}

	for t, str := range getValidTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("order type")
}

// Validate checks if the Type value is valid.
// Valid types are: InStore, Collection, Delivery.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
// It implements fmt.Stringer and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// DefaultCompletedFlag returns the 0/1 completion flag a freshly created
// order of this type carries: 1 for InStore, 0 for Collection and
// Delivery. The flag passes the 0/1 gate before it may reach a header
// write.
func (t Type) DefaultCompletedFlag() (int, error) {
	flag := 0
	if t == InStore {
		flag = 1
	}

	if !completedFlagCheck.Verify(flag) {
		return 0, errs.NewValueIsOutOfRangeError("completed", flag, 0, 1)
	}
	return flag, nil
}

// DefaultCompleted reports the gated completion flag as a bool.
func (t Type) DefaultCompleted() bool {
	flag, err := t.DefaultCompletedFlag()
	return err == nil && flag == 1
}
