package workorder

import (
	"errors"
	"fmt"

	"fleetops/internal/pkg/errs"
)

// Detail is one restock instruction of a supply work order: put quantity
// units of a product into one of the device's channels. Details exist
// only as part of their owning work order and are persisted atomically
// with it.
type Detail struct {
	channelCode string
	skuID       int64
	quantity    int
}

// NewDetail creates a validated restock line.
//
// Parameters:
//   - channelCode: the device channel to restock (e.g. "1-3")
//   - skuID: the product to load
//   - quantity: number of units, must be positive
func NewDetail(channelCode string, skuID int64, quantity int) (Detail, error) {
	var d Detail

	if err := errors.Join(
		d.setChannelCode(channelCode),
		d.setSkuID(skuID),
		d.setQuantity(quantity),
	); err != nil {
		return Detail{}, err
	}

	return d, nil
}

// ChannelCode returns the target channel of this restock line.
func (d Detail) ChannelCode() string {
	return d.channelCode
}

// SkuID returns the product loaded by this restock line.
func (d Detail) SkuID() int64 {
	return d.skuID
}

// Quantity returns the number of units to load.
func (d Detail) Quantity() int {
	return d.quantity
}

func (d *Detail) setChannelCode(channelCode string) error {
	if channelCode == "" {
		return errs.NewValueIsRequiredError("channelCode")
	}
	d.channelCode = channelCode
	return nil
}

func (d *Detail) setSkuID(skuID int64) error {
	if skuID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("skuId",
			fmt.Errorf("%d is not greater than 0", skuID))
	}
	d.skuID = skuID
	return nil
}

func (d *Detail) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}
