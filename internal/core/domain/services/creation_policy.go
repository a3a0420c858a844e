package services

import (
	"fmt"

	"fleetops/internal/core/domain/model/device"
	"fleetops/internal/core/domain/model/staff"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"
)

// CreationPolicy is a domain service responsible for deciding whether a new
// work order may be raised against a device for a given assignee.
//
// Key responsibilities:
//   - Matching the requested order type against the device's operational state
//   - Enforcing that assignees only serve devices in their own region
//
// Business rules:
//   - Deploy orders target machines that are not yet running
//   - Repair, Supply and Revoke orders target running machines only
//   - The assignee must be active and share the device's region
//
// The policy is pure: it inspects snapshots and never touches storage.
// Conflict detection against in-flight orders lives in the repository,
// where it can be made atomic.
type CreationPolicy struct{}

// NewCreationPolicy creates a new CreationPolicy instance.
func NewCreationPolicy() CreationPolicy {
	return CreationPolicy{}
}

// ValidateDevice checks that the device's current state admits the requested
// order type.
//
// Deploy is rejected when the machine is already running; every other type
// is rejected unless the machine is running. Failures carry the invalid-state
// kind so callers can map them to a client error.
func (p CreationPolicy) ValidateDevice(orderType workorder.OrderType, dev device.Device) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	if err := dev.Status.Validate(); err != nil {
		return err
	}

	if orderType == workorder.TypeDeploy {
		if dev.Status == device.Running {
			return errs.NewInvalidStateErrorWithCause("deviceStatus",
				fmt.Errorf("device %s is already running and cannot be deployed", dev.Code))
		}
		return nil
	}

	if dev.Status != device.Running {
		return errs.NewInvalidStateErrorWithCause("deviceStatus",
			fmt.Errorf("device %s is %s, %s orders require a running device",
				dev.Code, dev.Status, orderType))
	}
	return nil
}

// ValidateAssignee checks that the employee may be dispatched to the device.
//
// The employee must be active and registered in the same region as the
// device. A region mismatch fails with the region-mismatch kind.
func (p CreationPolicy) ValidateAssignee(employee staff.Employee, dev device.Device) error {
	if err := employee.ID.Validate(); err != nil {
		return err
	}

	if !employee.Active {
		return errs.NewInvalidStateErrorWithCause("assignee",
			fmt.Errorf("employee %s is not active", employee.Name))
	}

	if employee.RegionID != dev.RegionID {
		return errs.NewRegionMismatchError(employee.RegionID, dev.RegionID)
	}
	return nil
}
