// Package http exposes the work-order use cases over a REST API.
// Handlers translate between wire DTOs and application commands/queries
// and map domain errors to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"fleetops/internal/core/application/usecases/commands"
	"fleetops/internal/core/application/usecases/queries"
	"fleetops/internal/core/domain/model/kernel"
	"fleetops/internal/core/domain/model/workorder"
	"fleetops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the wire shape for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WorkOrderDetailRequest is one restock line of a supply order.
type WorkOrderDetailRequest struct {
	ChannelCode string `json:"channel_code"`
	SkuID       int64  `json:"sku_id"`
	Quantity    int    `json:"quantity"`
}

// CreateWorkOrderRequest is the body of POST /api/v1/workorders.
type CreateWorkOrderRequest struct {
	DeviceCode string                   `json:"device_code"`
	OrderType  string                   `json:"order_type"`
	AssigneeID string                   `json:"assignee_id"`
	Details    []WorkOrderDetailRequest `json:"details,omitempty"`
}

// CreateWorkOrderResponse acknowledges a created order with its identifiers.
type CreateWorkOrderResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// CancelWorkOrderRequest is the body of PUT /api/v1/workorders. Status is
// part of the body so the endpoint can grow into a generic status update;
// today only "Cancelled" is accepted.
type CancelWorkOrderRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Remark string `json:"remark"`
}

// WorkOrderResponse is one element of the GET /api/v1/workorders listing.
type WorkOrderResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	DeviceCode   string `json:"device_code"`
	OrderType    string `json:"order_type"`
	Status       string `json:"status"`
	AssigneeName string `json:"assignee_name"`
	RegionID     int64  `json:"region_id"`
	Address      string `json:"address"`
	Remark       string `json:"remark,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler
	cancelWorkOrderHandler commands.CancelWorkOrderCommandHandler

	// Query handlers
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createWorkOrderHandler commands.CreateWorkOrderCommandHandler,
	cancelWorkOrderHandler commands.CancelWorkOrderCommandHandler,
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
) *Server {
	return &Server{
		createWorkOrderHandler: createWorkOrderHandler,
		cancelWorkOrderHandler: cancelWorkOrderHandler,
		getWorkOrdersHandler:   getWorkOrdersHandler,
	}
}

// RegisterRoutes attaches the server's handlers to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/workorders", s.CreateWorkOrder)
	e.PUT("/api/v1/workorders", s.CancelWorkOrder)
	e.GET("/api/v1/workorders", s.GetWorkOrders)
	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateWorkOrder handles POST /api/v1/workorders - raises a new work order.
func (s *Server) CreateWorkOrder(ctx echo.Context) error {
	var req CreateWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	assigneeID, err := kernel.UUIDFromString(req.AssigneeID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderType, err := workorder.ParseOrderType(req.OrderType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details := make([]workorder.Detail, 0, len(req.Details))
	for _, line := range req.Details {
		detail, detailErr := workorder.NewDetail(line.ChannelCode, line.SkuID, line.Quantity)
		if detailErr != nil {
			return errorResponse(ctx, detailErr)
		}
		details = append(details, detail)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkOrderCommand(orderID, req.DeviceCode, orderType, assigneeID, details)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := s.createWorkOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateWorkOrderResponse{
		ID:   orderID.String(),
		Code: code.String(),
	})
}

// CancelWorkOrder handles PUT /api/v1/workorders - cancels an order.
func (s *Server) CancelWorkOrder(ctx echo.Context) error {
	var req CancelWorkOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Status != workorder.Cancelled.String() {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Only the Cancelled status can be requested",
		})
	}

	orderID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelWorkOrderCommand(orderID, req.Remark)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.cancelWorkOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetWorkOrders handles GET /api/v1/workorders - lists orders by optional
// device_code, order_type and status query parameters.
func (s *Server) GetWorkOrders(ctx echo.Context) error {
	query, err := queries.NewGetWorkOrdersQuery(
		ctx.QueryParam("device_code"),
		ctx.QueryParam("order_type"),
		ctx.QueryParam("status"),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getWorkOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]WorkOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = WorkOrderResponse{
			ID:           order.ID.String(),
			Code:         order.Code,
			DeviceCode:   order.DeviceCode,
			OrderType:    order.OrderType,
			Status:       order.Status,
			AssigneeName: order.AssigneeName,
			RegionID:     order.RegionID,
			Address:      order.Address,
			Remark:       order.Remark,
			CreatedAt:    order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// errorResponse maps a domain error to its HTTP status and wire shape.
// Internal error details are only exposed for client-addressable failures.
func errorResponse(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := "Internal server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, workorder.ErrAlreadyCancelled):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrRegionMismatch),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, workorder.ErrDetailsRequired),
		errors.Is(err, workorder.ErrDetailsNotAllowed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
