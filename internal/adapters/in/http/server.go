// Package http exposes the order lifecycle operations over a JSON REST API.
// It coordinates between echo handlers and the application use cases,
// translating transport payloads into commands and queries.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"
)

// Server handles HTTP requests for the order API.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	deleteOrderHandler commands.DeleteOrderCommandHandler

	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getOrderByIDHandler      queries.GetOrderByIDQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderByIDHandler:      getOrderByIDHandler,
		getOrdersByStatusHandler: getOrdersByStatusHandler,
	}
}

// RegisterRoutes attaches the API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/api/v1/orders", s.GetOrders)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders/:id", s.GetOrderByID)
	e.PUT("/api/v1/orders/:id", s.UpdateOrder)
	e.DELETE("/api/v1/orders/:id", s.DeleteOrder)
	e.GET("/api/v1/orders/status/:status", s.GetOrdersByStatus)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the JSON body accepted by create and update endpoints.
// The status is only honored on update; new orders always start pending.
type OrderRequest struct {
	CounterpartyName string        `json:"counterpartyName"`
	OrderDate        string        `json:"orderDate"`
	Items            []ItemRequest `json:"items"`
	Status           string        `json:"status"`
}

// ItemRequest is a single line item in an order request. The unit price is a
// decimal string to keep amounts exact in transit.
type ItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /api/v1/orders/:id - retrieves a single order.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return s.badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	response, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status - retrieves
// all orders carrying the given status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(ctx.Param("status"))
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/v1/orders - registers a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderDate, items, err := s.decodeRequest(request)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(request.CounterpartyName, orderDate, items)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, queries.NewOrderResponse(created))
}

// UpdateOrder handles PUT /api/v1/orders/:id - replaces an order's mutable
// fields and reconciles its lifecycle dates.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return s.badRequest(ctx, "Invalid order id")
	}

	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	orderDate, items, err := s.decodeRequest(request)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewUpdateOrderCommand(id, request.CounterpartyName, orderDate, items, request.Status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := s.orderID(ctx)
	if !ok {
		return s.badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) orderID(ctx echo.Context) (int, bool) {
	var id int
	if err := echo.PathParamsBinder(ctx).Int("id", &id).BindError(); err != nil {
		return 0, false
	}
	return id, true
}

// decodeRequest converts the transport payload into domain values: the order
// date from its ISO string and the line items with exact decimal prices.
func (s *Server) decodeRequest(request OrderRequest) (kernel.Date, []order.Item, error) {
	orderDate, err := kernel.DateFromString(request.OrderDate)
	if err != nil {
		return kernel.Date{}, nil, err
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, item := range request.Items {
		unitPrice, priceErr := decimal.NewFromString(item.UnitPrice)
		if priceErr != nil {
			return kernel.Date{}, nil, priceErr
		}

		domainItem, itemErr := order.NewItem(item.Name, item.Quantity, unitPrice)
		if itemErr != nil {
			return kernel.Date{}, nil, itemErr
		}
		items = append(items, domainItem)
	}

	return orderDate, items, nil
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors onto HTTP statuses: missing objects
// become 404, validation failures 400, anything else 500.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
