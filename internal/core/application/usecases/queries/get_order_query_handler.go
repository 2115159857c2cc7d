package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves the full order view from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query.
// Returns ObjectNotFoundError when no order exists under the given id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			phase,
			payment_method,
			created_at,
			address_street,
			address_ward,
			address_district,
			address_city,
			address_phone,
			shop_name,
			shop_phone,
			shipper_name,
			shipper_phone,
			items,
			total
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, customerID             uuid.UUID
		status, phase, payment     int
		createdAt                  time.Time
		street, ward               string
		district, city, phone      string
		shopName, shopPhone        string
		shipperName, shipperPhone  sql.NullString
		itemsJSON                  []byte
		total                      int64
	)

	err := row.Scan(
		&id, &customerID, &status, &phase, &payment, &createdAt,
		&street, &ward, &district, &city, &phone,
		&shopName, &shopPhone, &shipperName, &shipperPhone,
		&itemsJSON, &total,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderDetailsResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailsResponse{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	var items []OrderItemView
	if len(itemsJSON) > 0 {
		if err = json.Unmarshal(itemsJSON, &items); err != nil {
			return OrderDetailsResponse{}, err
		}
	}

	return OrderDetailsResponse{
		ID:            orderID,
		CustomerID:    ownerID,
		Status:        statusLabel(status),
		Phase:         phaseLabel(phase),
		PaymentMethod: order.PaymentMethod(payment).String(),
		CreatedAt:     createdAt,
		Street:        street,
		Ward:          ward,
		District:      district,
		City:          city,
		Phone:         phone,
		ShopName:      shopName,
		ShopPhone:     shopPhone,
		ShipperName:   shipperName.String,
		ShipperPhone:  shipperPhone.String,
		Items:         items,
		Total:         total,
	}, nil
}
