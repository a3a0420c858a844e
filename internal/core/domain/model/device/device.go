// Package device describes the vending machines that work orders target.
// Devices are owned by an external directory; this package only models the
// read-side snapshot the lifecycle engine needs for validation.
package device

import (
	"fmt"

	"fleetops/internal/pkg/errs"
)

// Status represents the operational state of a vending machine.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// NotDeployed means the machine has been registered but not placed
	// in the field yet. Only Deploy work orders apply to it.
	NotDeployed

	// Running means the machine is deployed and operational.
	// Repair, Supply and Revoke work orders require this state.
	Running

	// Revoked means the machine has been withdrawn from the field.
	Revoked
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "Unknown",
		NotDeployed:   "NotDeployed",
		Running:       "Running",
		Revoked:       "Revoked",
	}
}

// Validate checks that the Status value is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("deviceStatus",
			fmt.Errorf("%d is not a valid device status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("deviceStatus",
			fmt.Errorf("%d is not a valid device status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Device is the snapshot of a vending machine returned by the device
// directory. The lifecycle engine re-derives these facts server-side on
// every creation rather than trusting client-supplied copies.
type Device struct {
	// Code is the public device code printed on the machine (e.g. VM-0001).
	Code string

	// Status is the machine's current operational state.
	Status Status

	// RegionID is the machine's home region.
	RegionID int64

	// Address is the street address of the machine's point of placement.
	Address string
}
