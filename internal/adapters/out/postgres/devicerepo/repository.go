// Package devicerepo provides read-only access to the device directory.
// Work orders never modify devices; this adapter only resolves snapshots
// for creation-time validation.
package devicerepo

import (
	"context"
	"errors"

	"fleetops/internal/core/domain/model/device"
	"fleetops/internal/pkg/errs"

	"gorm.io/gorm"
)

// DeviceDTO represents the database structure for vending machines.
type DeviceDTO struct {
	Code     string `gorm:"primaryKey"`
	Status   int
	RegionID int64 `gorm:"index"`
	Address  string
}

// TableName specifies the database table name for device entities.
func (DeviceDTO) TableName() string {
	return "devices"
}

// GormDeviceDirectory implements DeviceDirectory using GORM.
type GormDeviceDirectory struct {
	db *gorm.DB
}

// NewGormDeviceDirectory creates a new GORM device directory.
func NewGormDeviceDirectory(db *gorm.DB) *GormDeviceDirectory {
	return &GormDeviceDirectory{db: db}
}

// LookupByCode retrieves a device snapshot by its public code.
func (r *GormDeviceDirectory) LookupByCode(ctx context.Context, code string) (device.Device, error) {
	if code == "" {
		return device.Device{}, errs.NewValueIsRequiredError("deviceCode")
	}

	var dto DeviceDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return device.Device{}, errs.NewObjectNotFoundError("deviceCode", code)
		}
		return device.Device{}, err
	}

	return device.Device{
		Code:     dto.Code,
		Status:   device.Status(dto.Status),
		RegionID: dto.RegionID,
		Address:  dto.Address,
	}, nil
}
