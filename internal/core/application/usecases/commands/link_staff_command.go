package commands

import (
	"errors"

	"retail/internal/pkg/guard"
)

var ErrLinkStaffCommandIsNotConstructed = errors.New(
	"LinkStaffCommand must be created via NewLinkStaffCommand constructor",
)

// LinkStaffCommand represents a request to attribute an order sale to a
// staff member.
type LinkStaffCommand struct { //nolint:recvcheck //using for validation
	staffID int64
	orderID int64

	guard guard.ConstructorGuard
}

// NewLinkStaffCommand creates a command to link a staff member to an order.
func NewLinkStaffCommand(staffID, orderID int64) (LinkStaffCommand, error) {
	cmd := LinkStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStaffID(staffID),
		cmd.setOrderID(orderID),
	); err != nil {
		return LinkStaffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LinkStaffCommand) Validate() error {
	return c.guard.Validate(ErrLinkStaffCommandIsNotConstructed)
}

// StaffID returns the identifier of the staff member credited with the sale.
func (c LinkStaffCommand) StaffID() int64 {
	return c.staffID
}

// OrderID returns the identifier of the attributed order.
func (c LinkStaffCommand) OrderID() int64 {
	return c.orderID
}

func (c *LinkStaffCommand) setStaffID(staffID int64) error {
	if staffID <= 0 {
		return ErrStaffIDIsInvalid
	}

	c.staffID = staffID
	return nil
}

func (c *LinkStaffCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
