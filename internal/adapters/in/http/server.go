// Package http exposes the order workflow over a thin echo surface: one
// handler per command/query plus the SSE attachment point for the realtime
// hub.
package http

import (
	"net/http"

	"marketplace/internal/adapters/in/realtime"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface of the order workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	confirmOrderHandler         commands.ConfirmOrderByShopCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	completeAfterPaymentHandler commands.CompleteAfterPaymentCommandHandler
	claimOrderHandler           commands.ClaimOrderByShipperCommandHandler
	deleteOrderHandler          commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler  queries.GetUserOrderHistoryQueryHandler

	hub *realtime.Hub
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderByShopCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	completeAfterPaymentHandler commands.CompleteAfterPaymentCommandHandler,
	claimOrderHandler commands.ClaimOrderByShipperCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetUserOrderHistoryQueryHandler,
	hub *realtime.Hub,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		confirmOrderHandler:         confirmOrderHandler,
		cancelOrderHandler:          cancelOrderHandler,
		completeAfterPaymentHandler: completeAfterPaymentHandler,
		claimOrderHandler:           claimOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		getOrderHandler:             getOrderHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		hub:                         hub,
	}
}

// RegisterRoutes attaches every handler to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.POST("/orders/:id/payment-complete", s.CompleteAfterPayment)
	api.POST("/orders/:id/cancel-by-customer", s.CancelOrderByCustomer)
	api.POST("/orders/:id/cancel-by-shop", s.CancelOrderByShop)
	api.POST("/orders/:id/cancel-by-shipper", s.CancelOrderByShipper)
	api.POST("/orders/:id/claim", s.ClaimOrder)
	api.GET("/customers/:id/orders", s.GetOrderHistory)
	api.GET("/rt/stream", s.StreamEvents)
	api.POST("/rt/sessions/:id/events", s.PublishEvent)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	command, err := newCreateOrderCommand(request)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderStatus(aggregate))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm - shop confirmation.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	command, err := commands.NewConfirmOrderByShopCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	aggregate, err := s.confirmOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderStatus(aggregate))
}

// CompleteAfterPayment handles POST /api/v1/orders/:id/payment-complete.
func (s *Server) CompleteAfterPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	command, err := commands.NewCompleteAfterPaymentCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	aggregate, err := s.completeAfterPaymentHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderStatus(aggregate))
}

// CancelOrderByCustomer handles POST /api/v1/orders/:id/cancel-by-customer.
func (s *Server) CancelOrderByCustomer(ctx echo.Context) error {
	return s.cancelOrder(ctx, commands.NewCancelOrderByCustomerCommand)
}

// CancelOrderByShop handles POST /api/v1/orders/:id/cancel-by-shop.
func (s *Server) CancelOrderByShop(ctx echo.Context) error {
	return s.cancelOrder(ctx, commands.NewCancelOrderByShopCommand)
}

// CancelOrderByShipper handles POST /api/v1/orders/:id/cancel-by-shipper.
func (s *Server) CancelOrderByShipper(ctx echo.Context) error {
	return s.cancelOrder(ctx, commands.NewCancelOrderByShipperCommand)
}

func (s *Server) cancelOrder(
	ctx echo.Context,
	newCommand func(kernel.UUID) (commands.CancelOrderCommand, error),
) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	command, err := newCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	aggregate, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderStatus(aggregate))
}

// ClaimOrder handles POST /api/v1/orders/:id/claim - one step of the shipper
// handshake: claim on the first call, completion when the same shipper calls
// again.
func (s *Server) ClaimOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	var request ClaimOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shipper, err := newShipperSnapshot(request)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	command, err := commands.NewClaimOrderByShipperCommand(orderID, shipper)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	aggregate, err := s.claimOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderStatus(aggregate))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	command, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), command); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderDetails(&details))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	summaries, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	return ctx.JSON(http.StatusOK, newOrderSummaries(summaries))
}

// GetOrderHistory handles GET /api/v1/customers/:id/orders.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeDomainError(ctx, err)
	}

	query, err := queries.NewGetUserOrderHistoryQuery(customerID)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	summaries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderSummaries(summaries))
}

func newOrderStatus(aggregate *order.Order) OrderStatusResponse {
	return OrderStatusResponse{
		OrderID: aggregate.ID().String(),
		Status:  aggregate.Status().String(),
		Phase:   aggregate.Phase().String(),
	}
}

func newCreateOrderCommand(request CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, itemRequest := range request.Items {
		productID, itemErr := kernel.UUIDFromString(itemRequest.ProductID)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}

		item, itemErr := order.NewItem(
			productID,
			itemRequest.Name,
			itemRequest.Description,
			itemRequest.UnitPrice,
			itemRequest.Quantity,
		)
		if itemErr != nil {
			return commands.CreateOrderCommand{}, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		request.Address.Street,
		request.Address.Ward,
		request.Address.District,
		request.Address.City,
		request.Address.Phone,
	)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	paymentMethod, err := order.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	shopID, err := kernel.UUIDFromString(request.Shop.ID)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	shop, err := order.NewShopSnapshot(shopID, request.Shop.Name, request.Shop.Phone)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		items,
		address,
		paymentMethod,
		shop,
		request.Images,
	)
}

func newShipperSnapshot(request ClaimOrderRequest) (order.ShipperSnapshot, error) {
	shipperID, err := kernel.UUIDFromString(request.ShipperID)
	if err != nil {
		return order.ShipperSnapshot{}, err
	}

	return order.NewShipperSnapshot(shipperID, request.ShipperName, request.ShipperPhone)
}
