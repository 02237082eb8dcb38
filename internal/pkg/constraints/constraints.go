// Package constraints provides stateless predicate values that validate
// scalar and string inputs before they reach persistence.
//
// A Constraint is a pure function from a value to a verdict. Constraints
// carry no state, never mutate their input, and compose: Length is a range
// check applied to a string's length. A failing Verify must stop the write
// it gates before any side effect occurs.
package constraints

import "strings"

// Constraint verifies that a value lies within its allowed bounds.
// The zero value is unusable; build constraints with the factory functions.
type Constraint[T any] func(T) bool

// Verify reports whether the value satisfies the constraint.
func (c Constraint[T]) Verify(v T) bool {
	return c(v)
}

// IntRange constrains an integer to [minInclusive, maxExclusive).
// The upper bound is exclusive.
func IntRange(minInclusive, maxExclusive int) Constraint[int] {
	return func(v int) bool {
		return v >= minInclusive && v < maxExclusive
	}
}

// StringOptions constrains a string to membership in a fixed set.
// Comparison is case-sensitive. For the case-insensitive variant see
// StringOptionsFold.
func StringOptions(options ...string) Constraint[string] {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[o] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}

// StringOptionsFold constrains a string to membership in a fixed set,
// ignoring case.
func StringOptionsFold(options ...string) Constraint[string] {
	set := make(map[string]struct{}, len(options))
	for _, o := range options {
		set[strings.ToLower(o)] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[strings.ToLower(v)]
		return ok
	}
}

// Length constrains a string's length to [minInclusive, maxExclusive),
// composed from IntRange.
func Length(minInclusive, maxExclusive int) Constraint[string] {
	lengthCheck := IntRange(minInclusive, maxExclusive)
	return func(v string) bool {
		return lengthCheck.Verify(len(v))
	}
}
