package workorder

import (
	"errors"
	"fmt"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/pkg/errs"
)

var (
	// ErrWorkOrderIsNotConstructed is returned when a WorkOrder instance was not
	// created through the NewWorkOrder factory method. This ensures all work
	// orders are properly validated.
	ErrWorkOrderIsNotConstructed = errors.New("WorkOrder must be created via NewWorkOrder constructor")

	// ErrDetailsRequired is returned when a supply order is created without
	// any restock lines.
	ErrDetailsRequired = errs.NewValueIsRequiredError("details")

	// ErrDetailsNotAllowed is returned when a non-supply order carries
	// restock lines.
	ErrDetailsNotAllowed = errs.NewValueIsInvalidError("details are only allowed on supply orders")
)

// WorkOrder represents one unit of field work dispatched against a vending
// machine. It is the aggregate root of the lifecycle engine and owns the
// supply detail lines.
//
// WorkOrder follows these invariants:
//   - Must have a valid unique identifier and a valid daily code
//   - Must reference a device and an assignee
//   - Assignee name, region and device address are snapshots taken at
//     creation time and never re-derived
//   - Supply orders own at least one detail line; all other types own none
//   - Status transitions follow the state machine in Status
//   - Can only be created through the NewWorkOrder constructor
type WorkOrder struct {
	// id is the unique identifier for the work order
	id kernel.UUID

	// code is the human-readable daily identifier (YYYYMMDD + sequence)
	code Code

	// deviceCode references the target vending machine
	deviceCode string

	// orderType classifies the field work; immutable
	orderType OrderType

	// status is the current lifecycle state
	status Status

	// assigneeID references the field worker the order is dispatched to
	assigneeID kernel.UUID

	// assigneeName is the worker's name snapshotted at creation
	assigneeName string

	// regionID is the device's region snapshotted at creation
	regionID int64

	// address is the device's street address snapshotted at creation
	address string

	// remark is free text attached when the order is cancelled
	remark string

	// details are the restock lines; non-empty only for supply orders
	details []Detail

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the work order was created via a constructor
	isConstructed bool
}

// NewWorkOrder creates a new WorkOrder in Created status with validation.
// This is the only way to create a valid work order; the caller is expected
// to have resolved the device and assignee server-side and to pass their
// snapshotted facts here.
//
// For supply orders details must contain at least one line; for every other
// type it must be empty.
func NewWorkOrder(
	id kernel.UUID,
	code Code,
	deviceCode string,
	orderType OrderType,
	assigneeID kernel.UUID,
	assigneeName string,
	regionID int64,
	address string,
	details []Detail,
	now time.Time,
) (*WorkOrder, error) {
	wo := &WorkOrder{
		status:        Created,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		wo.setID(id),
		wo.setCode(code),
		wo.setDeviceCode(deviceCode),
		wo.setOrderType(orderType),
		wo.setAssignee(assigneeID, assigneeName),
		wo.setRegionID(regionID),
	); err != nil {
		return nil, err
	}

	if err := wo.setDetails(details); err != nil {
		return nil, err
	}

	wo.address = address
	return wo, nil
}

// RestoreWorkOrder reconstructs a work order from persistence, including
// its status, remark and timestamps. Used by repositories only.
func RestoreWorkOrder(
	id kernel.UUID,
	code Code,
	deviceCode string,
	orderType OrderType,
	status Status,
	assigneeID kernel.UUID,
	assigneeName string,
	regionID int64,
	address string,
	remark string,
	details []Detail,
	createdAt time.Time,
	updatedAt time.Time,
) (*WorkOrder, error) {
	wo, err := NewWorkOrder(
		id, code, deviceCode, orderType, assigneeID, assigneeName, regionID, address, details, createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	wo.status = status
	wo.remark = remark
	wo.updatedAt = updatedAt
	return wo, nil
}

// Validate ensures the WorkOrder instance was properly constructed through
// NewWorkOrder. Called when reconstructing orders from persistence to
// ensure data integrity.
func (wo *WorkOrder) Validate() error {
	if wo == nil || !wo.isConstructed {
		return ErrWorkOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two work orders by their unique identifiers.
func (wo *WorkOrder) IsEqual(other *WorkOrder) bool {
	return other != nil && wo.id.IsEqual(other.id)
}

// ID returns the work order's unique identifier.
func (wo *WorkOrder) ID() kernel.UUID {
	return wo.id
}

// Code returns the human-readable daily code.
func (wo *WorkOrder) Code() Code {
	return wo.code
}

// DeviceCode returns the public code of the target device.
func (wo *WorkOrder) DeviceCode() string {
	return wo.deviceCode
}

// OrderType returns the kind of field work this order dispatches.
func (wo *WorkOrder) OrderType() OrderType {
	return wo.orderType
}

// Status returns the current lifecycle state.
func (wo *WorkOrder) Status() Status {
	return wo.status
}

// AssigneeID returns the assigned field worker's identifier.
func (wo *WorkOrder) AssigneeID() kernel.UUID {
	return wo.assigneeID
}

// AssigneeName returns the worker name snapshotted at creation.
func (wo *WorkOrder) AssigneeName() string {
	return wo.assigneeName
}

// RegionID returns the device region snapshotted at creation.
func (wo *WorkOrder) RegionID() int64 {
	return wo.regionID
}

// Address returns the device address snapshotted at creation.
func (wo *WorkOrder) Address() string {
	return wo.address
}

// Remark returns the free-text note attached at cancellation, if any.
func (wo *WorkOrder) Remark() string {
	return wo.remark
}

// Details returns a copy of the restock lines. Empty for non-supply orders.
func (wo *WorkOrder) Details() []Detail {
	out := make([]Detail, len(wo.details))
	copy(out, wo.details)
	return out
}

// CreatedAt returns the creation timestamp.
func (wo *WorkOrder) CreatedAt() time.Time {
	return wo.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (wo *WorkOrder) UpdatedAt() time.Time {
	return wo.updatedAt
}

// Start marks the order as picked up by its assignee.
// Only valid from Created status.
func (wo *WorkOrder) Start(now time.Time) error {
	newStatus, err := wo.status.Start()
	if err != nil {
		return err
	}

	wo.status = newStatus
	wo.updatedAt = now
	return nil
}

// Finish marks the order as completed.
// Only valid from InProgress status; Finished is terminal.
func (wo *WorkOrder) Finish(now time.Time) error {
	newStatus, err := wo.status.Finish()
	if err != nil {
		return err
	}

	wo.status = newStatus
	wo.updatedAt = now
	return nil
}

// Cancel withdraws the order and attaches an explanatory remark.
//
// Valid from Created and InProgress. A second cancel fails with
// ErrAlreadyCancelled; cancelling a Finished order fails with an
// invalid-transition error.
func (wo *WorkOrder) Cancel(remark string, now time.Time) error {
	newStatus, err := wo.status.Cancel()
	if err != nil {
		return err
	}

	wo.status = newStatus
	wo.remark = remark
	wo.updatedAt = now
	return nil
}

func (wo *WorkOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	wo.id = id
	return nil
}

func (wo *WorkOrder) setCode(code Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	wo.code = code
	return nil
}

func (wo *WorkOrder) setDeviceCode(deviceCode string) error {
	if deviceCode == "" {
		return errs.NewValueIsRequiredError("deviceCode")
	}
	wo.deviceCode = deviceCode
	return nil
}

func (wo *WorkOrder) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	wo.orderType = orderType
	return nil
}

func (wo *WorkOrder) setAssignee(assigneeID kernel.UUID, assigneeName string) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}
	if assigneeName == "" {
		return errs.NewValueIsRequiredError("assigneeName")
	}
	wo.assigneeID = assigneeID
	wo.assigneeName = assigneeName
	return nil
}

func (wo *WorkOrder) setRegionID(regionID int64) error {
	if regionID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("regionId",
			fmt.Errorf("%d is not greater than 0", regionID))
	}
	wo.regionID = regionID
	return nil
}

func (wo *WorkOrder) setDetails(details []Detail) error {
	if wo.orderType.RequiresDetails() && len(details) == 0 {
		return ErrDetailsRequired
	}
	if !wo.orderType.RequiresDetails() && len(details) > 0 {
		return ErrDetailsNotAllowed
	}

	wo.details = make([]Detail, len(details))
	copy(wo.details, details)
	return nil
}
