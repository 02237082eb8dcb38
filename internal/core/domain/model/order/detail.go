package order

import (
	"errors"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/constraints"
	"retail/internal/pkg/errs"
	"retail/internal/pkg/guard"
)

var (
	ErrCollectionDetailIsNotConstructed = errors.New(
		"CollectionDetail must be created via NewCollectionDetail constructor")
	ErrDeliveryDetailIsNotConstructed = errors.New(
		"DeliveryDetail must be created via NewDeliveryDetail constructor")
)

// nameCheck bounds the person/address fields stored with a detail record.
// The store columns are VARCHAR(30), hence the exclusive upper bound.
var nameCheck = constraints.Length(1, 31)

// CollectionDetail is the optional 1:1 satellite of a Collection order:
// who picks the order up and when.
type CollectionDetail struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	date      kernel.Date

	guard guard.ConstructorGuard
}

// NewCollectionDetail creates a validated collection detail.
// Names must be 1-30 characters; the date must be a constructed Date.
func NewCollectionDetail(firstName, lastName string, date kernel.Date) (CollectionDetail, error) {
	d := CollectionDetail{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setFirstName(firstName),
		d.setLastName(lastName),
		d.setDate(date),
	); err != nil {
		return CollectionDetail{}, err
	}

	return d, nil
}

// Validate ensures the detail was created through the constructor.
func (d CollectionDetail) Validate() error {
	return d.guard.Validate(ErrCollectionDetailIsNotConstructed)
}

// FirstName returns the collector's first name.
func (d CollectionDetail) FirstName() string {
	return d.firstName
}

// LastName returns the collector's last name.
func (d CollectionDetail) LastName() string {
	return d.lastName
}

// Date returns the planned collection date.
func (d CollectionDetail) Date() kernel.Date {
	return d.date
}

func (d *CollectionDetail) setFirstName(firstName string) error {
	if !nameCheck.Verify(firstName) {
		return errs.NewValueIsInvalidError("firstName")
	}
	d.firstName = firstName
	return nil
}

func (d *CollectionDetail) setLastName(lastName string) error {
	if !nameCheck.Verify(lastName) {
		return errs.NewValueIsInvalidError("lastName")
	}
	d.lastName = lastName
	return nil
}

func (d *CollectionDetail) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	d.date = date
	return nil
}

// DeliveryDetail is the optional 1:1 satellite of a Delivery order:
// the recipient and the address the order ships to.
type DeliveryDetail struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	house     string
	street    string
	city      string
	date      kernel.Date

	guard guard.ConstructorGuard
}

// NewDeliveryDetail creates a validated delivery detail.
// All fields must be 1-30 characters; the date must be a constructed Date.
func NewDeliveryDetail(
	firstName, lastName, house, street, city string,
	date kernel.Date,
) (DeliveryDetail, error) {
	d := DeliveryDetail{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setField(&d.firstName, "firstName", firstName),
		d.setField(&d.lastName, "lastName", lastName),
		d.setField(&d.house, "house", house),
		d.setField(&d.street, "street", street),
		d.setField(&d.city, "city", city),
		d.setDate(date),
	); err != nil {
		return DeliveryDetail{}, err
	}

	return d, nil
}

// Validate ensures the detail was created through the constructor.
func (d DeliveryDetail) Validate() error {
	return d.guard.Validate(ErrDeliveryDetailIsNotConstructed)
}

// FirstName returns the recipient's first name.
func (d DeliveryDetail) FirstName() string {
	return d.firstName
}

// LastName returns the recipient's last name.
func (d DeliveryDetail) LastName() string {
	return d.lastName
}

// House returns the house name or number of the delivery address.
func (d DeliveryDetail) House() string {
	return d.house
}

// Street returns the street of the delivery address.
func (d DeliveryDetail) Street() string {
	return d.street
}

// City returns the city of the delivery address.
func (d DeliveryDetail) City() string {
	return d.city
}

// Date returns the planned delivery date.
func (d DeliveryDetail) Date() kernel.Date {
	return d.date
}

func (d *DeliveryDetail) setField(target *string, name, value string) error {
	if !nameCheck.Verify(value) {
		return errs.NewValueIsInvalidError(name)
	}
	*target = value
	return nil
}

func (d *DeliveryDetail) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	d.date = date
	return nil
}
