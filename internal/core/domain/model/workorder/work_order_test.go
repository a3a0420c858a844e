package workorder_test

import (
	"testing"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCode(t *testing.T) workorder.Code {
	t.Helper()
	code, err := workorder.NewCode(time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local), 1)
	require.NoError(t, err)
	return code
}

func validDetail(t *testing.T) workorder.Detail {
	t.Helper()
	d, err := workorder.NewDetail("1-3", 1001, 5)
	require.NoError(t, err)
	return d
}

func newRepairOrder(t *testing.T) *workorder.WorkOrder {
	t.Helper()
	wo, err := workorder.NewWorkOrder(
		kernel.NewUUID(), validCode(t), "VM-0001", workorder.TypeRepair,
		kernel.NewUUID(), "Chen Wei", 7, "12 Harbour Rd", nil, time.Now(),
	)
	require.NoError(t, err)
	return wo
}

func TestNewWorkOrder(t *testing.T) {
	id := kernel.NewUUID()
	assigneeID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create valid repair order", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.NoError(t, err)
		require.NoError(t, wo.Validate())
		assert.True(t, wo.ID().IsEqual(id))
		assert.Equal(t, "VM-0001", wo.DeviceCode())
		assert.Equal(t, workorder.TypeRepair, wo.OrderType())
		assert.Equal(t, workorder.Created, wo.Status())
		assert.Equal(t, "Chen Wei", wo.AssigneeName())
		assert.Equal(t, int64(7), wo.RegionID())
		assert.Equal(t, "12 Harbour Rd", wo.Address())
		assert.Empty(t, wo.Details())
		assert.Equal(t, now, wo.CreatedAt())
		assert.Equal(t, now, wo.UpdatedAt())
	})

	t.Run("should create supply order with details", func(t *testing.T) {
		details := []workorder.Detail{validDetail(t), validDetail(t), validDetail(t)}

		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeSupply,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", details, now,
		)

		require.NoError(t, err)
		assert.Len(t, wo.Details(), 3)
	})

	t.Run("supply order without details is rejected", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeSupply,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-supply order with details is rejected", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd",
			[]workorder.Detail{validDetail(t)}, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		wo, err := workorder.NewWorkOrder(
			invalidID, validCode(t), "VM-0001", workorder.TypeRepair,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero-value code", func(t *testing.T) {
		var code workorder.Code

		wo, err := workorder.NewWorkOrder(
			id, code, "VM-0001", workorder.TypeRepair,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
	})

	t.Run("should fail with empty device code", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "", workorder.TypeRepair,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "deviceCode")
	})

	t.Run("should fail with invalid order type", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeUnknown,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
	})

	t.Run("should fail with empty assignee name", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair,
			assigneeID, "", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "assigneeName")
	})

	t.Run("should fail with non-positive region", func(t *testing.T) {
		wo, err := workorder.NewWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair,
			assigneeID, "Chen Wei", 0, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "regionId")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		wo, err := workorder.NewWorkOrder(
			invalidID, validCode(t), "", workorder.TypeRepair,
			assigneeID, "", 7, "12 Harbour Rd", nil, now,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "deviceCode")
		assert.Contains(t, err.Error(), "assigneeName")
	})
}

func TestRestoreWorkOrder(t *testing.T) {
	id := kernel.NewUUID()
	assigneeID := kernel.NewUUID()
	created := time.Now().Add(-time.Hour)
	updated := time.Now()

	t.Run("restores status remark and timestamps", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair, workorder.Cancelled,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", "device relocated",
			nil, created, updated,
		)

		require.NoError(t, err)
		assert.Equal(t, workorder.Cancelled, wo.Status())
		assert.Equal(t, "device relocated", wo.Remark())
		assert.Equal(t, created, wo.CreatedAt())
		assert.Equal(t, updated, wo.UpdatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		wo, err := workorder.RestoreWorkOrder(
			id, validCode(t), "VM-0001", workorder.TypeRepair, workorder.StatusUnknown,
			assigneeID, "Chen Wei", 7, "12 Harbour Rd", "",
			nil, created, updated,
		)

		require.Error(t, err)
		assert.Nil(t, wo)
	})
}

func TestWorkOrder_Validate(t *testing.T) {
	t.Run("constructed order validates", func(t *testing.T) {
		require.NoError(t, newRepairOrder(t).Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var wo workorder.WorkOrder
		require.ErrorIs(t, wo.Validate(), workorder.ErrWorkOrderIsNotConstructed)
	})

	t.Run("nil order fails validation", func(t *testing.T) {
		var wo *workorder.WorkOrder
		require.ErrorIs(t, wo.Validate(), workorder.ErrWorkOrderIsNotConstructed)
	})
}

func TestWorkOrder_Lifecycle(t *testing.T) {
	t.Run("created order starts and finishes", func(t *testing.T) {
		wo := newRepairOrder(t)
		now := time.Now()

		require.NoError(t, wo.Start(now))
		assert.Equal(t, workorder.InProgress, wo.Status())

		later := now.Add(time.Hour)
		require.NoError(t, wo.Finish(later))
		assert.Equal(t, workorder.Finished, wo.Status())
		assert.Equal(t, later, wo.UpdatedAt())
	})

	t.Run("cancel attaches remark and stamps update time", func(t *testing.T) {
		wo := newRepairOrder(t)
		now := time.Now().Add(time.Minute)

		require.NoError(t, wo.Cancel("machine unreachable", now))
		assert.Equal(t, workorder.Cancelled, wo.Status())
		assert.Equal(t, "machine unreachable", wo.Remark())
		assert.Equal(t, now, wo.UpdatedAt())
	})

	t.Run("cancel works from in progress", func(t *testing.T) {
		wo := newRepairOrder(t)
		require.NoError(t, wo.Start(time.Now()))
		require.NoError(t, wo.Cancel("assignee unavailable", time.Now()))
		assert.Equal(t, workorder.Cancelled, wo.Status())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		wo := newRepairOrder(t)
		require.NoError(t, wo.Cancel("first", time.Now()))

		err := wo.Cancel("second", time.Now())
		require.ErrorIs(t, err, workorder.ErrAlreadyCancelled)
		assert.Equal(t, "first", wo.Remark())
	})

	t.Run("finished order cannot be cancelled", func(t *testing.T) {
		wo := newRepairOrder(t)
		require.NoError(t, wo.Start(time.Now()))
		require.NoError(t, wo.Finish(time.Now()))

		err := wo.Cancel("too late", time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, workorder.Finished, wo.Status())
	})
}

func TestDetail(t *testing.T) {
	t.Run("valid detail", func(t *testing.T) {
		d, err := workorder.NewDetail("2-4", 1002, 10)

		require.NoError(t, err)
		assert.Equal(t, "2-4", d.ChannelCode())
		assert.Equal(t, int64(1002), d.SkuID())
		assert.Equal(t, 10, d.Quantity())
	})

	t.Run("empty channel code is rejected", func(t *testing.T) {
		_, err := workorder.NewDetail("", 1002, 10)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("non-positive sku is rejected", func(t *testing.T) {
		_, err := workorder.NewDetail("2-4", 0, 10)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		_, err := workorder.NewDetail("2-4", 1002, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderType(t *testing.T) {
	t.Run("only supply requires details", func(t *testing.T) {
		assert.True(t, workorder.TypeSupply.RequiresDetails())
		assert.False(t, workorder.TypeDeploy.RequiresDetails())
		assert.False(t, workorder.TypeRepair.RequiresDetails())
		assert.False(t, workorder.TypeRevoke.RequiresDetails())
	})

	t.Run("parse round trips", func(t *testing.T) {
		for _, ot := range []workorder.OrderType{
			workorder.TypeDeploy, workorder.TypeRepair, workorder.TypeSupply, workorder.TypeRevoke,
		} {
			parsed, err := workorder.ParseOrderType(ot.String())
			require.NoError(t, err)
			assert.Equal(t, ot, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := workorder.ParseOrderType("Upgrade")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
