package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the uniform failure payload of the HTTP surface.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customerId"`
	Items         []OrderItemRequest `json:"items"`
	Address       AddressRequest     `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Shop          ShopRequest        `json:"shop"`
	Images        []string           `json:"images"`
}

// OrderItemRequest is one line item of a create request.
type OrderItemRequest struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// AddressRequest is the shipping address of a create request.
type AddressRequest struct {
	Street   string `json:"street"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	City     string `json:"city"`
	Phone    string `json:"phone"`
}

// ShopRequest is the shop snapshot of a create request.
type ShopRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ClaimOrderRequest is the request body of POST /api/v1/orders/:id/claim.
type ClaimOrderRequest struct {
	ShipperID    string `json:"shipperId"`
	ShipperName  string `json:"shipperName"`
	ShipperPhone string `json:"shipperPhone"`
}

// OrderStatusResponse reports the status pair after a lifecycle operation.
type OrderStatusResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
	Phase   string `json:"phase"`
}

// OrderSummary is one entry of a listing response.
type OrderSummary struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
	Phase      string `json:"phase"`
	Total      int64  `json:"total"`
}

// OrderDetails is the response body of GET /api/v1/orders/:id.
type OrderDetails struct {
	ID            string                   `json:"id"`
	CustomerID    string                   `json:"customerId"`
	Status        string                   `json:"status"`
	Phase         string                   `json:"phase"`
	PaymentMethod string                   `json:"paymentMethod"`
	CreatedAt     time.Time                `json:"createdAt"`
	Address       AddressRequest           `json:"address"`
	ShopName      string                   `json:"shopName"`
	ShopPhone     string                   `json:"shopPhone"`
	ShipperName   string                   `json:"shipperName,omitempty"`
	ShipperPhone  string                   `json:"shipperPhone,omitempty"`
	Items         []queries.OrderItemView  `json:"items"`
	Total         int64                    `json:"total"`
}

func newOrderSummaries(summaries []queries.OrderSummaryResponse) []OrderSummary {
	response := make([]OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = OrderSummary{
			ID:         summary.ID.String(),
			CustomerID: summary.CustomerID.String(),
			Status:     summary.Status.String(),
			Phase:      summary.Phase.String(),
			Total:      summary.Total,
		}
	}
	return response
}

func newOrderDetails(details *queries.OrderDetailsResponse) OrderDetails {
	return OrderDetails{
		ID:            details.ID.String(),
		CustomerID:    details.CustomerID.String(),
		Status:        details.Status,
		Phase:         details.Phase,
		PaymentMethod: details.PaymentMethod,
		CreatedAt:     details.CreatedAt,
		Address: AddressRequest{
			Street:   details.Street,
			Ward:     details.Ward,
			District: details.District,
			City:     details.City,
			Phone:    details.Phone,
		},
		ShopName:     details.ShopName,
		ShopPhone:    details.ShopPhone,
		ShipperName:  details.ShipperName,
		ShipperPhone: details.ShipperPhone,
		Items:        details.Items,
		Total:        details.Total,
	}
}

// writeDomainError maps standardized domain errors onto HTTP statuses.
func writeDomainError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalidTransition *errs.InvalidTransitionError
	var concurrent *errs.ConcurrentModificationError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var outOfRange *errs.ValueIsOutOfRangeError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &invalidTransition), errors.As(err, &concurrent):
		status = http.StatusConflict
	case errors.As(err, &required), errors.As(err, &invalid), errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
