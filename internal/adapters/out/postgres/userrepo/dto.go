// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user aggregate, including its
// embedded order and cart mirror arrays stored as jsonb.
package userrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The mirror arrays live in jsonb columns so a status patch is a single-row
// write on the user side of the dual write.
type UserDTO struct {
	ID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name   string
	Phone  string
	Orders []OrderMirrorDTO `gorm:"type:jsonb;serializer:json"`
	Carts  []CartMirrorDTO  `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// OrderMirrorDTO is one entry of the jsonb orders mirror column. The order_id
// key is what the containment lookup in GetByEmbeddedOrderID matches on.
type OrderMirrorDTO struct {
	OrderID string `json:"order_id"`
	Status  int    `json:"status"`
}

// CartMirrorDTO is one entry of the jsonb carts mirror column.
type CartMirrorDTO struct {
	OrderID string `json:"order_id"`
	Phase   int    `json:"phase"`
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	orders := make([]OrderMirrorDTO, 0, len(aggregate.Orders()))
	for _, mirror := range aggregate.Orders() {
		orders = append(orders, OrderMirrorDTO{
			OrderID: mirror.OrderID.String(),
			Status:  int(mirror.Status),
		})
	}

	carts := make([]CartMirrorDTO, 0, len(aggregate.Carts()))
	for _, mirror := range aggregate.Carts() {
		carts = append(carts, CartMirrorDTO{
			OrderID: mirror.OrderID.String(),
			Phase:   int(mirror.Phase),
		})
	}

	return UserDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Phone:  aggregate.Phone(),
		Orders: orders,
		Carts:  carts,
	}
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orders := make([]user.OrderMirror, 0, len(dto.Orders))
	for _, mirrorDTO := range dto.Orders {
		orderID, mirrorErr := kernel.UUIDFromString(mirrorDTO.OrderID)
		if mirrorErr != nil {
			return nil, mirrorErr
		}
		orders = append(orders, user.OrderMirror{
			OrderID: orderID,
			Status:  order.Status(mirrorDTO.Status),
		})
	}

	carts := make([]user.CartMirror, 0, len(dto.Carts))
	for _, mirrorDTO := range dto.Carts {
		orderID, mirrorErr := kernel.UUIDFromString(mirrorDTO.OrderID)
		if mirrorErr != nil {
			return nil, mirrorErr
		}
		carts = append(carts, user.CartMirror{
			OrderID: orderID,
			Phase:   order.DeliveryPhase(mirrorDTO.Phase),
		})
	}

	return user.RestoreUser(id, dto.Name, dto.Phone, orders, carts)
}
