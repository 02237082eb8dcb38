package commands

import (
	"context"
	"strconv"

	"retail/internal/pkg/errs"
)

// LinkStaffCommandHandler handles staff sale attribution. Both sides of
// the link are checked for existence before the pair is recorded.
type LinkStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewLinkStaffCommandHandler creates a handler for staff attribution.
func NewLinkStaffCommandHandler(uowFactory StaffUoWFactory) LinkStaffCommandHandler {
	return LinkStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the link staff command.
func (h LinkStaffCommandHandler) Handle(ctx context.Context, cmd LinkStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	orderRepo := uow.OrderRepository()

	staffExists, err := staffRepo.Exists(ctx, cmd.StaffID())
	if err != nil {
		return err
	}
	if !staffExists {
		return errs.NewObjectNotFoundError("staff", strconv.FormatInt(cmd.StaffID(), 10))
	}

	orderExists, err := orderRepo.Exists(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !orderExists {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(cmd.OrderID(), 10))
	}

	if err = staffRepo.Link(ctx, cmd.StaffID(), cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
