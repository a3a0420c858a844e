package ports

import (
	"context"

	"fleetops/internal/core/domain/model/device"
)

// DeviceDirectory resolves vending machines by their public code. Creation
// re-derives device facts through this port instead of trusting
// client-supplied copies.
type DeviceDirectory interface {
	// LookupByCode returns the device snapshot for the given public code.
	// Returns an object-not-found error when no such device exists.
	LookupByCode(ctx context.Context, code string) (device.Device, error)
}
