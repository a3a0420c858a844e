// Package staff describes the field employees that work orders are
// assigned to. Employees are owned by an external directory; this package
// models the read-side snapshot used during work-order creation.
package staff

import (
	"fleetops/internal/core/domain/model/kernel"
)

// Employee is the snapshot of a field worker returned by the staff
// directory. Name and region are copied onto a work order at creation
// time, so later staff record changes never alter historical orders.
type Employee struct {
	// ID is the employee's unique identifier.
	ID kernel.UUID

	// Name is the employee's display name.
	Name string

	// RegionID is the region the employee serves. It must match the
	// target device's region for an assignment to be valid.
	RegionID int64

	// Active reports whether the employee is currently on duty.
	Active bool
}
