package workorderrepo

import (
	"context"
	"errors"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormWorkOrderRepository implements WorkOrderRepository using GORM.
type GormWorkOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWorkOrderRepository creates a new GORM work-order repository.
func NewGormWorkOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new work order and its detail rows to the database.
// GORM writes the association rows in the same statement batch, so the order
// and its details land atomically within the ambient transaction.
//
// A unique-constraint violation, such as a colliding order code, maps to a
// conflict error. New orders are inserted in Created status, so the partial
// index on in-progress orders does not fire here; it enforces device/type
// exclusivity when an order is moved to InProgress via Update.
func (r *GormWorkOrderRepository) Add(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("workOrder", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing work order to the database. Detail rows are
// immutable after creation, so only the order row is written.
//
// A transition into InProgress that would give the device a second
// in-flight order of the same type trips the partial unique index and maps
// to a conflict error.
func (r *GormWorkOrderRepository) Update(ctx context.Context, aggregate *workorder.WorkOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Status", "Remark", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("workOrder", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("workOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a work order by ID, including its detail rows.
func (r *GormWorkOrderRepository) Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto WorkOrderDTO
	err := r.db.WithContext(ctx).Preload("Details").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("workOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsInProgress reports whether an order of the given type against the
// given device is currently in progress.
func (r *GormWorkOrderRepository) ExistsInProgress(
	ctx context.Context, deviceCode string, orderType workorder.OrderType,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&WorkOrderDTO{}).
		Where("device_code = ? AND order_type = ? AND status = ?",
			deviceCode, int(orderType), int(workorder.InProgress)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllCreatedBefore retrieves all orders still in Created status that were
// created strictly before the cutoff.
func (r *GormWorkOrderRepository) GetAllCreatedBefore(
	ctx context.Context, cutoff time.Time,
) ([]*workorder.WorkOrder, error) {
	var dtos []WorkOrderDTO
	err := r.db.WithContext(ctx).Preload("Details").
		Find(&dtos, "status = ? AND created_at < ?", int(workorder.Created), cutoff).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*workorder.WorkOrder, 0, len(dtos))
	for _, dto := range dtos {
		wo, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, wo)
	}

	return orders, nil
}
