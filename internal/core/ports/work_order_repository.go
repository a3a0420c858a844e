// Package ports defines repository and gateway interfaces for the work-order
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
)

// WorkOrderRepository defines the persistence contract for work-order
// aggregates. Provides methods for storing, retrieving, and querying work
// orders together with their supply detail lines.
type WorkOrderRepository interface {
	// Add persists a new work order and all of its detail lines atomically.
	// Either the order row and every detail row are stored, or nothing is.
	// Unique-constraint violations surface as conflict errors.
	Add(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Update persists changes to an existing work order aggregate.
	// Returns an object-not-found error when the order does not exist,
	// and a conflict error when a transition into InProgress would give
	// the device a second in-flight order of the same type.
	Update(ctx context.Context, aggregate *workorder.WorkOrder) error

	// Get retrieves a work order by its unique identifier, including
	// detail lines. Returns an object-not-found error when absent.
	Get(ctx context.Context, id kernel.UUID) (*workorder.WorkOrder, error)

	// ExistsInProgress reports whether any order of the given type against
	// the given device is currently in progress. Guards creation; the
	// storage-level index enforces the same exclusivity when an order
	// enters InProgress.
	ExistsInProgress(ctx context.Context, deviceCode string, orderType workorder.OrderType) (bool, error)

	// GetAllCreatedBefore retrieves every order still in Created status
	// whose creation time is strictly before the cutoff. Used by the
	// stale-order sweep.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*workorder.WorkOrder, error)
}
