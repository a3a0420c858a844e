// Package workorderrepo provides data transfer objects and mapping functions
// for work-order persistence. This package implements the repository pattern
// for the work-order domain aggregate, handling the conversion between domain
// entities and database representations.
package workorderrepo

import (
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"

	"github.com/google/uuid"
)

// WorkOrderDTO represents the database structure for persisting work-order
// aggregates. Indexed for the two hot lookups: by device and type for
// conflict checks, and by status and creation time for the stale sweep.
type WorkOrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"uniqueIndex"`
	DeviceCode   string    `gorm:"index:idx_device_type"`
	OrderType    int       `gorm:"index:idx_device_type"`
	Status       int       `gorm:"index"`
	AssigneeID   uuid.UUID `gorm:"type:uuid;index"`
	AssigneeName string
	RegionID     int64
	Address      string
	Remark       string
	CreatedAt    time.Time `gorm:"index"`
	UpdatedAt    time.Time

	Details []WorkOrderDetailDTO `gorm:"foreignKey:WorkOrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for work-order entities.
// Overrides GORM's default naming convention to use "work_orders".
func (WorkOrderDTO) TableName() string {
	return "work_orders"
}

// WorkOrderDetailDTO represents one restock line of a supply order.
// Rows are written together with their parent order and never updated.
type WorkOrderDetailDTO struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	WorkOrderID uuid.UUID `gorm:"type:uuid;index"`
	ChannelCode string
	SkuID       int64
	Quantity    int
}

// TableName specifies the database table name for detail rows.
func (WorkOrderDetailDTO) TableName() string {
	return "work_order_details"
}

// fromDomain converts a work-order domain aggregate to its database
// representation, including the detail rows.
func fromDomain(wo *workorder.WorkOrder) WorkOrderDTO {
	details := wo.Details()
	detailDTOs := make([]WorkOrderDetailDTO, 0, len(details))
	for _, d := range details {
		detailDTOs = append(detailDTOs, WorkOrderDetailDTO{
			WorkOrderID: wo.ID().Bytes(),
			ChannelCode: d.ChannelCode(),
			SkuID:       d.SkuID(),
			Quantity:    d.Quantity(),
		})
	}

	return WorkOrderDTO{
		ID:           wo.ID().Bytes(),
		Code:         wo.Code().String(),
		DeviceCode:   wo.DeviceCode(),
		OrderType:    int(wo.OrderType()),
		Status:       int(wo.Status()),
		AssigneeID:   wo.AssigneeID().Bytes(),
		AssigneeName: wo.AssigneeName(),
		RegionID:     wo.RegionID(),
		Address:      wo.Address(),
		Remark:       wo.Remark(),
		CreatedAt:    wo.CreatedAt(),
		UpdatedAt:    wo.UpdatedAt(),
		Details:      detailDTOs,
	}
}

// toDomain converts a database DTO to a work-order domain aggregate.
// Reconstructs the complete aggregate including status, remark and detail
// lines using RestoreWorkOrder.
func toDomain(dto WorkOrderDTO) (*workorder.WorkOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assigneeID, err := kernel.UUIDFromBytes(dto.AssigneeID[:])
	if err != nil {
		return nil, err
	}

	code, err := workorder.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	details := make([]workorder.Detail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detail, detailErr := workorder.NewDetail(d.ChannelCode, d.SkuID, d.Quantity)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return workorder.RestoreWorkOrder(
		id, code, dto.DeviceCode,
		workorder.OrderType(dto.OrderType), workorder.Status(dto.Status),
		assigneeID, dto.AssigneeName, dto.RegionID, dto.Address, dto.Remark,
		details, dto.CreatedAt, dto.UpdatedAt,
	)
}
