package order

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Item is an immutable snapshot of a product line at order-creation time.
// Name, description and unit price are copied from the product catalog when
// the order is placed and never re-read: a later catalog change must not
// alter what the customer agreed to pay.
type Item struct {
	productID   kernel.UUID
	name        string
	description string
	unitPrice   int64
	quantity    int
}

// NewItem creates a validated line-item snapshot.
// The product ID must be valid, the name non-empty, the unit price
// non-negative and the quantity positive.
func NewItem(productID kernel.UUID, name, description string, unitPrice int64, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		productID:   productID,
		name:        name,
		description: description,
		unitPrice:   unitPrice,
		quantity:    quantity,
	}, nil
}

// Validate checks the item carries a usable snapshot.
func (i Item) Validate() error {
	if err := i.productID.Validate(); err != nil {
		return err
	}
	if i.name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity is invalid")
	}
	return nil
}

// ProductID returns the snapshotted product reference.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name at order time.
func (i Item) Name() string {
	return i.name
}

// Description returns the product description at order time.
func (i Item) Description() string {
	return i.description
}

// UnitPrice returns the price per unit at order time, in the smallest currency unit.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() int64 {
	return i.unitPrice * int64(i.quantity)
}
