package commands

import (
	"context"
	"fmt"
	"time"

	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/core/domain/services"
	"fleetops/internal/core/ports"
	"fleetops/internal/pkg/errs"
)

// CreateWorkOrderCommandHandler handles the business logic for work-order
// creation. It resolves the device and assignee server-side, applies the
// creation policy, allocates the daily code and persists the order with its
// detail lines in a single transaction.
//
// Example:
//
//	handler := NewCreateWorkOrderCommandHandler(uowFactory, devices, employees, allocator)
//	cmd, _ := NewCreateWorkOrderCommand(orderID, "VM-0001", workorder.TypeRepair, assigneeID, nil)
//
//	code, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConflict):
//	    // another order of this type is already in flight for the device
//	case err != nil:
//	    // validation or storage failure
//	default:
//	    fmt.Println("created work order", code)
//	}
type CreateWorkOrderCommandHandler struct {
	uowFactory WorkOrderUoWFactory
	devices    ports.DeviceDirectory
	employees  ports.StaffDirectory
	allocator  ports.SequenceAllocator
	policy     services.CreationPolicy
}

// NewCreateWorkOrderCommandHandler creates a handler for work-order creation.
// Requires a WorkOrderUoWFactory for transactional persistence, the device
// and staff directories for server-side fact resolution, and a sequence
// allocator for daily code numbering.
func NewCreateWorkOrderCommandHandler(
	uowFactory WorkOrderUoWFactory,
	devices ports.DeviceDirectory,
	employees ports.StaffDirectory,
	allocator ports.SequenceAllocator,
) CreateWorkOrderCommandHandler {
	return CreateWorkOrderCommandHandler{
		uowFactory: uowFactory,
		devices:    devices,
		employees:  employees,
		allocator:  allocator,
		policy:     services.NewCreationPolicy(),
	}
}

// Handle processes the work-order creation command and returns the code
// allocated to the new order.
//
// Validation happens before the transaction opens and short-circuits on the
// first failure, in a fixed order: the device must exist, its state must
// admit the order type, no order of the same type may be in flight for the
// device, and only then the assignee is resolved and checked for activity
// and region. The conflict check also runs before the sequence allocation so
// that a rejected command never consumes a daily number.
func (h CreateWorkOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateWorkOrderCommand,
) (workorder.Code, error) {
	if err := cmd.Validate(); err != nil {
		return workorder.Code{}, err
	}

	dev, err := h.devices.LookupByCode(ctx, cmd.DeviceCode())
	if err != nil {
		return workorder.Code{}, err
	}

	if err = h.policy.ValidateDevice(cmd.OrderType(), dev); err != nil {
		return workorder.Code{}, err
	}

	uow := h.uowFactory.Create()

	exists, err := uow.WorkOrderRepository().ExistsInProgress(ctx, dev.Code, cmd.OrderType())
	if err != nil {
		return workorder.Code{}, err
	}
	if exists {
		return workorder.Code{}, errs.NewConflictErrorWithCause("deviceCode",
			fmt.Errorf("a %s order for device %s is already in progress", cmd.OrderType(), dev.Code))
	}

	employee, err := h.employees.LookupByID(ctx, cmd.AssigneeID())
	if err != nil {
		return workorder.Code{}, err
	}

	if err = h.policy.ValidateAssignee(employee, dev); err != nil {
		return workorder.Code{}, err
	}

	now := time.Now()
	seq, err := h.allocator.Next(ctx, now)
	if err != nil {
		return workorder.Code{}, err
	}

	code, err := workorder.NewCode(now, seq)
	if err != nil {
		return workorder.Code{}, err
	}

	if err = uow.Begin(ctx); err != nil {
		return workorder.Code{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.WorkOrderRepository()

	wo, err := workorder.NewWorkOrder(
		cmd.OrderID(), code, dev.Code, cmd.OrderType(),
		employee.ID, employee.Name, dev.RegionID, dev.Address,
		cmd.Details(), now,
	)
	if err != nil {
		return workorder.Code{}, err
	}

	if err = repo.Add(ctx, wo); err != nil {
		return workorder.Code{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return workorder.Code{}, err
	}

	return code, nil
}
