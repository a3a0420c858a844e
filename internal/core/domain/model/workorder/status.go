package workorder

import (
	"errors"
	"fmt"

	"fleetops/internal/pkg/errs"
)

// ErrAlreadyCancelled is returned when cancelling a work order that has
// already been cancelled. Repeated cancellation is rejected, not treated
// as a no-op.
var ErrAlreadyCancelled = errors.New("work order is already cancelled")

// Status represents the lifecycle state of a work order.
// It implements a state machine with defined transitions:
//
//	Created ──> InProgress ──> Finished
//	   │             │
//	   └──────┬──────┘
//	          v
//	      Cancelled
//
// Finished and Cancelled are terminal; Created is the sole initial state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Created is the initial status when a work order is first issued.
	Created

	// InProgress indicates a field worker has picked up the order.
	InProgress

	// Finished indicates the work has been completed. Terminal.
	Finished

	// Cancelled indicates the order was withdrawn before completion.
	// Terminal; reachable from Created and InProgress only.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		Created:       "Created",
		InProgress:    "InProgress",
		Finished:      "Finished",
		Cancelled:     "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Created:    "Created",
		InProgress: "InProgress",
		Finished:   "Finished",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus converts a string such as "InProgress" into a Status.
// Returns an error for unrecognized names.
func ParseStatus(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, InProgress, Finished, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Created -> InProgress
//
// Returns (0, error) for any other starting state.
func (s Status) Start() (Status, error) {
	if s != Created {
		return 0, errs.NewInvalidTransitionError(s.String(), InProgress.String())
	}
	return InProgress, nil
}

// Finish transitions the status to Finished.
//
// Valid transitions:
//   - InProgress -> Finished
//
// Returns (0, error) for any other starting state.
func (s Status) Finish() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError(s.String(), Finished.String())
	}
	return Finished, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - InProgress -> Cancelled
//
// A Cancelled order yields ErrAlreadyCancelled; a Finished order yields
// an invalid-transition error. Both are terminal.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Cancelled:
		return 0, ErrAlreadyCancelled
	case Created, InProgress:
		return Cancelled, nil
	default:
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
}
