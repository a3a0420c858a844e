package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var (
	ErrCreateWorkOrderCommandIsNotConstructed = errors.New(
		"CreateWorkOrderCommand must be created via NewCreateWorkOrderCommand constructor",
	)
)

// CreateWorkOrderCommand represents a request to raise a new work order
// against a vending machine. It carries only references and client intent;
// the handler re-derives device and assignee facts server-side.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateWorkOrderCommand(orderID, "VM-0001", workorder.TypeRepair, assigneeID, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid work order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create work order: %w", err)
//	}
type CreateWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	deviceCode string
	orderType  workorder.OrderType
	assigneeID kernel.UUID
	details    []workorder.Detail

	guard guard.ConstructorGuard
}

// NewCreateWorkOrderCommand creates a command to raise a new work order.
// Validates the identifiers, the device code and the order type. The
// supply-detail invariant is enforced later by the aggregate.
func NewCreateWorkOrderCommand(
	orderID kernel.UUID,
	deviceCode string,
	orderType workorder.OrderType,
	assigneeID kernel.UUID,
	details []workorder.Detail,
) (CreateWorkOrderCommand, error) {
	command := CreateWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setDeviceCode(deviceCode),
		command.setOrderType(orderType),
		command.setAssigneeID(assigneeID),
	); err != nil {
		return CreateWorkOrderCommand{}, err
	}

	command.details = make([]workorder.Detail, len(details))
	copy(command.details, details)
	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateWorkOrderCommandIsNotConstructed if validation fails.
func (c CreateWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateWorkOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new work order.
func (c CreateWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeviceCode returns the public code of the target device.
func (c CreateWorkOrderCommand) DeviceCode() string {
	return c.deviceCode
}

// OrderType returns the requested kind of field work.
func (c CreateWorkOrderCommand) OrderType() workorder.OrderType {
	return c.orderType
}

// AssigneeID returns the identifier of the employee to dispatch.
func (c CreateWorkOrderCommand) AssigneeID() kernel.UUID {
	return c.assigneeID
}

// Details returns a copy of the requested restock lines.
func (c CreateWorkOrderCommand) Details() []workorder.Detail {
	out := make([]workorder.Detail, len(c.details))
	copy(out, c.details)
	return out
}

func (c *CreateWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateWorkOrderCommand) setDeviceCode(deviceCode string) error {
	if deviceCode == "" {
		return errs.NewValueIsRequiredError("deviceCode")
	}

	c.deviceCode = deviceCode
	return nil
}

func (c *CreateWorkOrderCommand) setOrderType(orderType workorder.OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *CreateWorkOrderCommand) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	c.assigneeID = assigneeID
	return nil
}
