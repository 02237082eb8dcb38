package kernel

import (
	"fmt"

	"retail/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrReferenceIsNotConstructed indicates that a Reference was not created through
// one of the constructor functions. It is returned when validating a zero value.
var ErrReferenceIsNotConstructed = errs.NewValueIsRequiredError(
	"reference must be created via NewReference, ReferenceFromString, or ReferenceFromUUID")

// Reference is an immutable value object identifying an order towards the
// outside world (receipts, links, API lookups). Internally orders are keyed
// by their sequence-assigned integer id; the reference exists so that the
// sequential id never has to leave the system.
//
// The zero value of Reference is invalid and must be constructed using one
// of the provided factory functions.
type Reference struct {
	id uuid.UUID
}

// NewReference generates a new random Reference.
func NewReference() Reference {
	return Reference{id: uuid.New()}
}

// ReferenceFromString parses a Reference from its string representation.
// Returns an error if the string is not a valid UUID format.
func ReferenceFromString(s string) (Reference, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid reference format: %w", err)
	}
	ref := Reference{id: id}
	if err = ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// ReferenceFromUUID wraps an existing UUID value, as read from persistence.
func ReferenceFromUUID(id uuid.UUID) (Reference, error) {
	ref := Reference{id: id}
	if err := ref.Validate(); err != nil {
		return Reference{}, err
	}
	return ref, nil
}

// String returns the standard textual representation of the reference.
func (r Reference) String() string {
	return r.id.String()
}

// UUID returns the underlying uuid value, for persistence mapping.
func (r Reference) UUID() uuid.UUID {
	return r.id
}

// IsEqual compares two references by value.
func (r Reference) IsEqual(other Reference) bool {
	return r.id == other.id
}

// Validate checks that the reference is not the zero value.
func (r Reference) Validate() error {
	if r.id == uuid.Nil {
		return ErrReferenceIsNotConstructed
	}
	return nil
}
