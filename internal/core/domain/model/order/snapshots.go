package order

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Address is the shipping-address snapshot frozen into the order at creation.
// Edits to the customer's address book after ordering do not move a delivery.
type Address struct {
	street   string
	ward     string
	district string
	city     string
	phone    string
}

// NewAddress creates a validated shipping-address snapshot.
// Street and city are required; ward, district and phone are optional.
func NewAddress(street, ward, district, city, phone string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}

	return Address{
		street:   street,
		ward:     ward,
		district: district,
		city:     city,
		phone:    phone,
	}, nil
}

// Validate checks that the required address fields are present.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	if a.city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// Ward returns the ward, if any.
func (a Address) Ward() string { return a.ward }

// District returns the district, if any.
func (a Address) District() string { return a.district }

// City returns the city.
func (a Address) City() string { return a.city }

// Phone returns the contact phone for the delivery, if any.
func (a Address) Phone() string { return a.phone }

// ShopSnapshot is the shop-owner contact frozen into the order at creation.
type ShopSnapshot struct {
	id    kernel.UUID
	name  string
	phone string
}

// NewShopSnapshot creates a validated shop snapshot.
func NewShopSnapshot(id kernel.UUID, name, phone string) (ShopSnapshot, error) {
	if err := id.Validate(); err != nil {
		return ShopSnapshot{}, err
	}
	if name == "" {
		return ShopSnapshot{}, errs.NewValueIsRequiredError("shop name")
	}

	return ShopSnapshot{id: id, name: name, phone: phone}, nil
}

// Validate checks that the snapshot identifies a shop.
func (s ShopSnapshot) Validate() error {
	if err := s.id.Validate(); err != nil {
		return err
	}
	if s.name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	return nil
}

// ID returns the shop identifier.
func (s ShopSnapshot) ID() kernel.UUID { return s.id }

// Name returns the shop name at order time.
func (s ShopSnapshot) Name() string { return s.name }

// Phone returns the shop contact phone at order time.
func (s ShopSnapshot) Phone() string { return s.phone }

// ShipperSnapshot is the shipper contact attached to an order when a shipper
// claims it. Unlike the other snapshots it is assigned post-creation.
type ShipperSnapshot struct {
	id    kernel.UUID
	name  string
	phone string
}

// NewShipperSnapshot creates a validated shipper snapshot.
func NewShipperSnapshot(id kernel.UUID, name, phone string) (ShipperSnapshot, error) {
	if err := id.Validate(); err != nil {
		return ShipperSnapshot{}, err
	}
	if name == "" {
		return ShipperSnapshot{}, errs.NewValueIsRequiredError("shipper name")
	}

	return ShipperSnapshot{id: id, name: name, phone: phone}, nil
}

// Validate checks that the snapshot identifies a shipper.
func (s ShipperSnapshot) Validate() error {
	if err := s.id.Validate(); err != nil {
		return err
	}
	if s.name == "" {
		return errs.NewValueIsRequiredError("shipper name")
	}
	return nil
}

// ID returns the shipper identifier.
func (s ShipperSnapshot) ID() kernel.UUID { return s.id }

// Name returns the shipper name.
func (s ShipperSnapshot) Name() string { return s.name }

// Phone returns the shipper contact phone.
func (s ShipperSnapshot) Phone() string { return s.phone }
