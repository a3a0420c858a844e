package ports

import (
	"context"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/staff"
)

// StaffDirectory resolves field employees by identifier. The assignee's name
// and region are snapshotted onto the work order at creation time.
type StaffDirectory interface {
	// LookupByID returns the employee snapshot for the given identifier.
	// Returns an object-not-found error when no such employee exists.
	LookupByID(ctx context.Context, id kernel.UUID) (staff.Employee, error)
}
