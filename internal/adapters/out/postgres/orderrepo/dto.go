// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Snapshots ride along as embedded prefixed columns (address, shop) or jsonb
// (items, images); the version column backs optimistic concurrency.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;index"`
	Items         []ItemDTO  `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	Address       AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	PaymentMethod int
	Status        int
	Phase         int
	Shop          ShopDTO    `gorm:"embedded;embeddedPrefix:shop_"`
	ShipperID     *uuid.UUID `gorm:"type:uuid;index"`
	ShipperName   *string
	ShipperPhone  *string
	Images        []string   `gorm:"type:jsonb;serializer:json"`
	Total         int64
	Version       int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one line-item snapshot inside the jsonb items column.
// The json tags double as the wire shape of the order-details read model.
type ItemDTO struct {
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

// AddressDTO represents the embedded shipping-address snapshot columns.
type AddressDTO struct {
	Street   string
	Ward     string
	District string
	City     string
	Phone    string
}

// ShopDTO represents the embedded shop-owner snapshot columns.
type ShopDTO struct {
	ID    uuid.UUID `gorm:"type:uuid"`
	Name  string
	Phone string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductID:   item.ProductID().String(),
			Name:        item.Name(),
			Description: item.Description(),
			UnitPrice:   item.UnitPrice(),
			Quantity:    item.Quantity(),
		})
	}

	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Items:      items,
		CreatedAt:  aggregate.CreatedAt(),
		Address: AddressDTO{
			Street:   aggregate.ShippingAddress().Street(),
			Ward:     aggregate.ShippingAddress().Ward(),
			District: aggregate.ShippingAddress().District(),
			City:     aggregate.ShippingAddress().City(),
			Phone:    aggregate.ShippingAddress().Phone(),
		},
		PaymentMethod: int(aggregate.PaymentMethod()),
		Status:        int(aggregate.Status()),
		Phase:         int(aggregate.Phase()),
		Shop: ShopDTO{
			ID:    aggregate.Shop().ID().Bytes(),
			Name:  aggregate.Shop().Name(),
			Phone: aggregate.Shop().Phone(),
		},
		Images:  aggregate.Images(),
		Total:   aggregate.Total(),
		Version: aggregate.Version(),
	}

	if shipper := aggregate.Shipper(); shipper != nil {
		shipperID := shipper.ID().Bytes()
		shipperName := shipper.Name()
		shipperPhone := shipper.Phone()
		dto.ShipperID = &shipperID
		dto.ShipperName = &shipperName
		dto.ShipperPhone = &shipperPhone
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromString(itemDTO.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Name, itemDTO.Description, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.Street,
		dto.Address.Ward,
		dto.Address.District,
		dto.Address.City,
		dto.Address.Phone,
	)
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.Shop.ID[:])
	if err != nil {
		return nil, err
	}

	shop, err := order.NewShopSnapshot(shopID, dto.Shop.Name, dto.Shop.Phone)
	if err != nil {
		return nil, err
	}

	var shipper *order.ShipperSnapshot
	if dto.ShipperID != nil {
		shipperID, shipperErr := kernel.UUIDFromBytes((*dto.ShipperID)[:])
		if shipperErr != nil {
			return nil, shipperErr
		}

		var name, phone string
		if dto.ShipperName != nil {
			name = *dto.ShipperName
		}
		if dto.ShipperPhone != nil {
			phone = *dto.ShipperPhone
		}

		snapshot, shipperErr := order.NewShipperSnapshot(shipperID, name, phone)
		if shipperErr != nil {
			return nil, shipperErr
		}
		shipper = &snapshot
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		dto.CreatedAt,
		address,
		order.PaymentMethod(dto.PaymentMethod),
		order.Status(dto.Status),
		order.DeliveryPhase(dto.Phase),
		shop,
		shipper,
		dto.Images,
		dto.Version,
	)
}
