package commands

import (
	"context"
	"time"
)

// CancelWorkOrderCommandHandler handles the business logic for cancelling a
// work order. Loads the aggregate, applies the cancel transition and
// persists the result within a single transaction.
//
// Example:
//
//	handler := NewCancelWorkOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelWorkOrderCommand(orderID, "assignee unavailable")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, workorder.ErrAlreadyCancelled):
//	    // the order was cancelled earlier; original remark is preserved
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the order already finished
//	case err != nil:
//	    // lookup or storage failure
//	}
type CancelWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewCancelWorkOrderCommandHandler creates a handler for cancellation
// operations. Requires a WorkOrderUoWFactory for transactional persistence.
func NewCancelWorkOrderCommandHandler(uowFactory WorkOrderUoWFactory) CancelWorkOrderCommandHandler {
	return CancelWorkOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// The aggregate enforces the lifecycle rules: cancel succeeds from Created
// and InProgress, a repeated cancel and a cancel of a finished order fail.
func (h CancelWorkOrderCommandHandler) Handle(ctx context.Context, cmd CancelWorkOrderCommand) error {
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

	repo := uow.WorkOrderRepository()

	wo, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = wo.Cancel(cmd.Remark(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, wo); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
