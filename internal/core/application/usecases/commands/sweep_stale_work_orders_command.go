package commands

import (
	"errors"
	"time"

	"fleetops/internal/pkg/errs"
	"fleetops/internal/pkg/guard"
)

var (
	ErrSweepStaleWorkOrdersCommandIsNotConstructed = errors.New(
		"SweepStaleWorkOrdersCommand must be created via NewSweepStaleWorkOrdersCommand constructor",
	)
)

// SweepStaleWorkOrdersCommand triggers cancellation of work orders that were
// created but never picked up before the cutoff time. This batch operation
// keeps the backlog free of orders nobody is going to start.
//
// Example:
//
//	cutoff := time.Now().AddDate(0, 0, -3)
//	cmd, _ := NewSweepStaleWorkOrdersCommand(cutoff)
//	handler := NewSweepStaleWorkOrdersCommandHandler(uowFactory)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Stale sweep failed: %v", err)
//	}
type SweepStaleWorkOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewSweepStaleWorkOrdersCommand creates a command to sweep orders created
// before the cutoff. Validates that the cutoff is set.
func NewSweepStaleWorkOrdersCommand(cutoff time.Time) (SweepStaleWorkOrdersCommand, error) {
	command := SweepStaleWorkOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return SweepStaleWorkOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepStaleWorkOrdersCommandIsNotConstructed if validation fails.
func (c SweepStaleWorkOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleWorkOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; orders created strictly
// before it are swept.
func (c SweepStaleWorkOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *SweepStaleWorkOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
