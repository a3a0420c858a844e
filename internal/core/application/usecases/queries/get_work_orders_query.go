// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/guard"
)

var (
	ErrGetWorkOrdersQueryIsNotConstructed = errors.New(
		"GetWorkOrdersQuery must be created via NewGetWorkOrdersQuery constructor",
	)
)

// GetWorkOrdersQuery retrieves work orders matching optional filters.
// Every filter left empty matches all orders; filters combine with AND.
//
// Example:
//
//	query, err := NewGetWorkOrdersQuery("VM-0001", "Repair", "InProgress")
//	if err != nil {
//	    return fmt.Errorf("bad filter: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list work orders: %w", err)
//	}
//	fmt.Printf("Found %d matching orders\n", len(orders))
type GetWorkOrdersQuery struct {
	deviceCode string
	orderType  workorder.OrderType
	status     workorder.Status

	guard guard.ConstructorGuard
}

// NewGetWorkOrdersQuery creates a listing query from string filters as they
// arrive on the wire. Empty strings mean "no filter"; non-empty values must
// parse to a known order type or status.
func NewGetWorkOrdersQuery(deviceCode, orderType, status string) (GetWorkOrdersQuery, error) {
	query := GetWorkOrdersQuery{
		deviceCode: deviceCode,
		guard:      guard.NewConstructorGuard(),
	}

	if orderType != "" {
		parsed, err := workorder.ParseOrderType(orderType)
		if err != nil {
			return GetWorkOrdersQuery{}, err
		}
		query.orderType = parsed
	}

	if status != "" {
		parsed, err := workorder.ParseStatus(status)
		if err != nil {
			return GetWorkOrdersQuery{}, err
		}
		query.status = parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkOrdersQueryIsNotConstructed if validation fails.
func (q GetWorkOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkOrdersQueryIsNotConstructed)
}

// DeviceCode returns the device filter; empty means no filter.
func (q GetWorkOrdersQuery) DeviceCode() string {
	return q.deviceCode
}

// OrderType returns the type filter; TypeUnknown means no filter.
func (q GetWorkOrdersQuery) OrderType() workorder.OrderType {
	return q.orderType
}

// Status returns the status filter; StatusUnknown means no filter.
func (q GetWorkOrdersQuery) Status() workorder.Status {
	return q.status
}

// GetWorkOrdersQueryResponse represents one work order in a listing.
// Carries the snapshot columns directly; detail lines are not expanded
// in listings.
type GetWorkOrdersQueryResponse struct {
	ID           kernel.UUID
	Code         string
	DeviceCode   string
	OrderType    string
	Status       string
	AssigneeName string
	RegionID     int64
	Address      string
	Remark       string
	CreatedAt    time.Time
}
