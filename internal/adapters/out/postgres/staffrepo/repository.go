// Package staffrepo provides read-only access to the employee directory.
// The lifecycle engine resolves assignees here and snapshots their facts
// onto work orders; it never modifies staff records.
package staffrepo

import (
	"context"
	"errors"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/staff"
	"fleetops/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeeDTO represents the database structure for field employees.
type EmployeeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string
	RegionID int64 `gorm:"index"`
	Active   bool
}

// TableName specifies the database table name for employee entities.
func (EmployeeDTO) TableName() string {
	return "employees"
}

// GormStaffDirectory implements StaffDirectory using GORM.
type GormStaffDirectory struct {
	db *gorm.DB
}

// NewGormStaffDirectory creates a new GORM staff directory.
func NewGormStaffDirectory(db *gorm.DB) *GormStaffDirectory {
	return &GormStaffDirectory{db: db}
}

// LookupByID retrieves an employee snapshot by identifier.
func (r *GormStaffDirectory) LookupByID(ctx context.Context, id kernel.UUID) (staff.Employee, error) {
	if err := id.Validate(); err != nil {
		return staff.Employee{}, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff.Employee{}, errs.NewObjectNotFoundError("assigneeId", id.String())
		}
		return staff.Employee{}, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return staff.Employee{}, err
	}

	return staff.Employee{
		ID:       employeeID,
		Name:     dto.Name,
		RegionID: dto.RegionID,
		Active:   dto.Active,
	}, nil
}
