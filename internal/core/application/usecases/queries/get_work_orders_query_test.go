package queries_test

import (
	"testing"

	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetWorkOrdersQuery(t *testing.T) {
	t.Run("empty filters match everything", func(t *testing.T) {
		query, err := queries.NewGetWorkOrdersQuery("", "", "")

		require.NoError(t, err)
		assert.NoError(t, query.Validate())
		assert.Empty(t, query.DeviceCode())
		assert.Equal(t, workorder.TypeUnknown, query.OrderType())
		assert.Equal(t, workorder.StatusUnknown, query.Status())
	})

	t.Run("parses order type and status filters", func(t *testing.T) {
		query, err := queries.NewGetWorkOrdersQuery("VM-0001", "Repair", "InProgress")

		require.NoError(t, err)
		assert.Equal(t, "VM-0001", query.DeviceCode())
		assert.Equal(t, workorder.TypeRepair, query.OrderType())
		assert.Equal(t, workorder.InProgress, query.Status())
	})

	t.Run("rejects unknown order type", func(t *testing.T) {
		_, err := queries.NewGetWorkOrdersQuery("", "Teleport", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := queries.NewGetWorkOrdersQuery("", "", "Paused")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var query queries.GetWorkOrdersQuery

		require.ErrorIs(t, query.Validate(), queries.ErrGetWorkOrdersQueryIsNotConstructed)
	})
}
