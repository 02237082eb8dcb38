package order

import (
	"errors"
	"fmt"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root of the order-inventory consistency engine.
// It records a retail order header together with its lines (product id to
// quantity), and guards every lifecycle transition.
//
// Order follows these invariants:
//   - The id is assigned by the store's sequence and is positive
//   - The type is one of InStore, Collection, Delivery
//   - Lines are loaded at most once per instance, explicitly, before any
//     line-dependent call (two-phase load: header first, then AttachLines)
//   - No two lines exist for the same product
//   - Once marked deleted, every further lifecycle call is a state violation
//
// Stock arithmetic lives on the Product entity; Order only tracks which
// quantities it holds so that cancellation can return exactly what was taken.
type Order struct {
	// id is assigned by the store's order sequence
	id int64

	// reference identifies the order towards the outside world
	reference kernel.Reference

	// orderType is fixed at creation
	orderType Type

	// completed mirrors the type's default at creation: InStore orders
	// complete immediately, Collection/Delivery stay pending
	completed bool

	// placedAt is the date the order was placed
	placedAt kernel.Date

	// deleted marks the terminal state; it is local to this instance
	deleted bool

	// lines maps product id to quantity; valid only once linesLoaded
	lines map[int64]int

	// linesLoaded tracks the explicit two-phase load
	linesLoaded bool

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a fresh Order header. The completion flag is derived
// from the type. A new order owns an empty, already-loaded line set, since
// no lines can exist before the header does.
func NewOrder(id int64, reference kernel.Reference, orderType Type, placedAt kernel.Date) (*Order, error) {
	o := &Order{
		lines:         make(map[int64]int),
		linesLoaded:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setType(orderType),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	flag, err := orderType.DefaultCompletedFlag()
	if err != nil {
		return nil, err
	}

	o.completed = flag == 1
	return o, nil
}

// RestoreOrder reconstructs an Order header from persistence. Lines are
// not loaded; callers must AttachLines before any line-dependent call.
func RestoreOrder(
	id int64,
	reference kernel.Reference,
	orderType Type,
	completed bool,
	placedAt kernel.Date,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setReference(reference),
		o.setType(orderType),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	o.completed = completed
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. It is called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the sequence-assigned order identifier.
func (o *Order) ID() int64 {
	return o.id
}

// Reference returns the order's external reference.
func (o *Order) Reference() kernel.Reference {
	return o.reference
}

// Type returns the order type.
func (o *Order) Type() Type {
	return o.orderType
}

// Completed reports whether the order is completed.
func (o *Order) Completed() bool {
	return o.completed
}

// PlacedAt returns the date the order was placed.
func (o *Order) PlacedAt() kernel.Date {
	return o.placedAt
}

// IsDeleted reports whether the order has reached its terminal state.
func (o *Order) IsDeleted() bool {
	return o.deleted
}

// LinesLoaded reports whether the line set has been attached.
func (o *Order) LinesLoaded() bool {
	return o.linesLoaded
}

// AttachLines completes the two-phase load by attaching the persisted line
// set to a restored header. It may happen at most once per instance.
func (o *Order) AttachLines(lines map[int64]int) error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}
	if o.linesLoaded {
		return errs.NewStateViolationError(
			fmt.Sprintf("lines of order %d are already loaded", o.id))
	}

	o.lines = make(map[int64]int, len(lines))
	for productID, quantity := range lines {
		o.lines[productID] = quantity
	}
	o.linesLoaded = true
	return nil
}

// AddLine records a line for the given product. The product must not
// already be on the order; quantity must be positive. The caller is
// responsible for pairing this with the matching stock decrement inside
// one unit of work.
func (o *Order) AddLine(productID int64, quantity int) error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}
	if err := o.ensureLinesLoaded(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if _, exists := o.lines[productID]; exists {
		return errs.NewObjectAlreadyExistsError("orderLine",
			fmt.Sprintf("%d/%d", o.id, productID))
	}

	o.lines[productID] = quantity
	return nil
}

// HasLine answers whether the product is already on the order.
func (o *Order) HasLine(productID int64) (bool, error) {
	if err := o.ensureNotDeleted(); err != nil {
		return false, err
	}
	if err := o.ensureLinesLoaded(); err != nil {
		return false, err
	}

	_, ok := o.lines[productID]
	return ok, nil
}

// Lines returns a copy of the order's line set.
func (o *Order) Lines() (map[int64]int, error) {
	if err := o.ensureNotDeleted(); err != nil {
		return nil, err
	}
	if err := o.ensureLinesLoaded(); err != nil {
		return nil, err
	}

	lines := make(map[int64]int, len(o.lines))
	for productID, quantity := range o.lines {
		lines[productID] = quantity
	}
	return lines, nil
}

// MarkDeleted moves the order to its terminal state. Every later lifecycle
// call on this instance fails with a state violation.
func (o *Order) MarkDeleted() error {
	if err := o.ensureNotDeleted(); err != nil {
		return err
	}

	o.deleted = true
	return nil
}

func (o *Order) ensureNotDeleted() error {
	if o.deleted {
		return errs.NewStateViolationError(fmt.Sprintf("order %d is deleted", o.id))
	}
	return nil
}

func (o *Order) ensureLinesLoaded() error {
	if !o.linesLoaded {
		return errs.NewStateViolationError(
			fmt.Sprintf("lines of order %d are not loaded", o.id))
	}
	return nil
}

// setID validates and sets the order identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive identifier", id))
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference kernel.Reference) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	o.reference = reference
	return nil
}

func (o *Order) setType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setPlacedAt(placedAt kernel.Date) error {
	if err := placedAt.Validate(); err != nil {
		return err
	}
	o.placedAt = placedAt
	return nil
}
