package commands

import (
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var (
	ErrCancelWorkOrderCommandIsNotConstructed = errors.New(
		"CancelWorkOrderCommand must be created via NewCancelWorkOrderCommand constructor",
	)
)

// CancelWorkOrderCommand represents a request to withdraw a work order and
// record why it was withdrawn.
//
// Example:
//
//	cmd, err := NewCancelWorkOrderCommand(orderID, "machine relocated")
//	if err != nil {
//	    return fmt.Errorf("invalid cancel request: %w", err)
//	}
//
//	handler := NewCancelWorkOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to cancel work order: %w", err)
//	}
type CancelWorkOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	remark  string

	guard guard.ConstructorGuard
}

// NewCancelWorkOrderCommand creates a command to cancel a work order.
// Validates that the order ID is valid and a remark is supplied.
func NewCancelWorkOrderCommand(orderID kernel.UUID, remark string) (CancelWorkOrderCommand, error) {
	command := CancelWorkOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRemark(remark),
	); err != nil {
		return CancelWorkOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelWorkOrderCommandIsNotConstructed if validation fails.
func (c CancelWorkOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelWorkOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the work order to cancel.
func (c CancelWorkOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Remark returns the free-text reason for the cancellation.
func (c CancelWorkOrderCommand) Remark() string {
	return c.remark
}

func (c *CancelWorkOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelWorkOrderCommand) setRemark(remark string) error {
	if remark == "" {
		return errs.NewValueIsRequiredError("remark")
	}

	c.remark = remark
	return nil
}
