package commands

import (
	"context"
	"time"
)

// sweepRemark is recorded on every order cancelled by the stale sweep.
const sweepRemark = "expired before being started"

// SweepStaleWorkOrdersCommandHandler cancels every order still in Created
// status whose creation time fell behind the cutoff. All cancellations
// happen in one transaction so a partial sweep never commits.
type SweepStaleWorkOrdersCommandHandler struct {
	uowFactory WorkOrderUoWFactory
}

// NewSweepStaleWorkOrdersCommandHandler creates a handler for the stale
// sweep. Requires a WorkOrderUoWFactory for transactional persistence.
func NewSweepStaleWorkOrdersCommandHandler(uowFactory WorkOrderUoWFactory) SweepStaleWorkOrdersCommandHandler {
	return SweepStaleWorkOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command.
// Only orders in Created status are affected; orders already picked up,
// finished or cancelled are left untouched by the repository query.
func (h SweepStaleWorkOrdersCommandHandler) Handle(ctx context.Context, cmd SweepStaleWorkOrdersCommand) error {
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

	staleOrders, err := repo.GetAllCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, wo := range staleOrders {
		if err = wo.Cancel(sweepRemark, now); err != nil {
			return err
		}

		if err = repo.Update(ctx, wo); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
