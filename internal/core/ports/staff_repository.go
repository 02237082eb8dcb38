package ports

import "context"

// StaffRepository defines the persistence contract for staff attribution.
// Staff rows are provisioned externally; this contract only checks their
// existence and records which staff member sold which order.
type StaffRepository interface {
	// Exists reports whether a staff member with the given id is on record.
	Exists(ctx context.Context, staffID int64) (bool, error)

	// Link attributes an order to a staff member. Returns
	// ObjectAlreadyExistsError if the (staffID, orderID) pair is already
	// recorded.
	Link(ctx context.Context, staffID, orderID int64) error
}
