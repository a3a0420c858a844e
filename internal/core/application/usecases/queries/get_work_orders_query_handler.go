package queries

import (
	"context"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkOrdersQueryHandler retrieves work orders from the database with
// optional filtering. Reads the listing columns directly instead of
// rehydrating aggregates; detail lines stay out of listings.
//
// Example:
//
//	handler := NewGetWorkOrdersQueryHandler(db)
//	query, _ := NewGetWorkOrdersQuery("", "Supply", "InProgress")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list work orders: %v", err)
//	    return err
//	}
type GetWorkOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkOrdersQueryHandler creates a handler for work-order listings.
// Requires a GORM database connection for query execution.
func NewGetWorkOrdersQueryHandler(db *gorm.DB) GetWorkOrdersQueryHandler {
	return GetWorkOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Filters combine with AND; an absent
// filter matches everything. Results are sorted by code so daily batches
// read in creation order.
func (h GetWorkOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkOrdersQuery,
) ([]GetWorkOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			code,
			device_code,
			order_type,
			status,
			assignee_name,
			region_id,
			address,
			remark,
			created_at
		FROM work_orders
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.DeviceCode() != "" {
		sql += " AND device_code = ?"
		args = append(args, query.DeviceCode())
	}
	if query.OrderType() != workorder.TypeUnknown {
		sql += " AND order_type = ?"
		args = append(args, int(query.OrderType()))
	}
	if query.Status() != workorder.StatusUnknown {
		sql += " AND status = ?"
		args = append(args, int(query.Status()))
	}
	sql += " ORDER BY code"

	orders := make([]GetWorkOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			orderType int
			status    int
			createdAt time.Time
			resp      GetWorkOrdersQueryResponse
		)

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.DeviceCode,
			&orderType,
			&status,
			&resp.AssigneeName,
			&resp.RegionID,
			&resp.Address,
			&resp.Remark,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.OrderType = workorder.OrderType(orderType).String()
		resp.Status = workorder.Status(status).String()
		resp.CreatedAt = createdAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
