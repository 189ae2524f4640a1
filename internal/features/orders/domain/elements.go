package domain

import (
	"time"

	"riskgate/internal/core/validation"
)

// LineItem represents a single purchased product within an order.
type LineItem struct {
	// Title is the product name as displayed to the buyer.
	Title string `json:"title"`
	// Price is the unit price of the product, taxes included.
	Price float64 `json:"price"`
	// Quantity is the number of units purchased.
	Quantity int `json:"quantity"`
	// ProductID is the merchant's product identifier.
	ProductID string `json:"product_id,omitempty"`
	// SKU is the Stock Keeping Unit identifier for the product.
	SKU string `json:"sku,omitempty"`
}

// Validate checks the line item fields. Weak mode relaxes presence
// requirements but still rejects malformed present values.
func (li *LineItem) Validate(weak bool) error {
	if !weak {
		if err := validation.ValuedString(li.Title, "Line Item Title"); err != nil {
			return err
		}
		if err := validation.PositiveInt(li.Quantity, "Line Item Quantity"); err != nil {
			return err
		}
	} else if li.Quantity < 0 {
		if err := validation.PositiveInt(li.Quantity, "Line Item Quantity"); err != nil {
			return err
		}
	}
	return validation.ZeroOrPositive(li.Price, "Line Item Price")
}

// ShippingLine represents one shipping method applied to an order.
type ShippingLine struct {
	// Title is the shipping method name (e.g., "Standard Shipping").
	Title string `json:"title"`
	// Price is the cost of this shipping method.
	Price float64 `json:"price"`
	// Code is the merchant's identifier for the shipping method.
	Code string `json:"code,omitempty"`
}

// Validate checks the shipping line fields.
func (sl *ShippingLine) Validate(weak bool) error {
	if !weak {
		if err := validation.ValuedString(sl.Title, "Shipping Line Title"); err != nil {
			return err
		}
	}
	return validation.ZeroOrPositive(sl.Price, "Shipping Line Price")
}

// AddressInformation represents a billing or shipping address.
type AddressInformation struct {
	// FirstName is the addressee's first name.
	FirstName string `json:"first_name"`
	// LastName is the addressee's last name.
	LastName string `json:"last_name"`
	// Address1 is the primary street address line.
	Address1 string `json:"address1"`
	// Address2 is the secondary street address line.
	Address2 string `json:"address2,omitempty"`
	// City is the address city.
	City string `json:"city"`
	// Country is the address country name.
	Country string `json:"country"`
	// CountryCode is the two-letter country code.
	CountryCode string `json:"country_code,omitempty"`
	// Province is the state or province.
	Province string `json:"province,omitempty"`
	// ZipCode is the postal code.
	ZipCode string `json:"zip,omitempty"`
	// Phone is the contact phone number for this address.
	Phone string `json:"phone"`
}

// Validate checks the address fields. All presence requirements are
// relaxed under weak mode.
func (a *AddressInformation) Validate(weak bool) error {
	if weak {
		return nil
	}
	checks := []struct {
		value string
		field string
	}{
		{a.FirstName, "Address First Name"},
		{a.LastName, "Address Last Name"},
		{a.Address1, "Address Line 1"},
		{a.City, "Address City"},
		{a.Country, "Address Country"},
		{a.Phone, "Address Phone"},
	}
	for _, c := range checks {
		if err := validation.ValuedString(c.value, c.field); err != nil {
			return err
		}
	}
	return nil
}

// Customer represents the buyer placing the order.
type Customer struct {
	// ID is the merchant's customer identifier.
	ID string `json:"id"`
	// Email is the customer's contact email.
	Email string `json:"email"`
	// FirstName is the customer's first name.
	FirstName string `json:"first_name"`
	// LastName is the customer's last name.
	LastName string `json:"last_name"`
	// VerifiedEmail indicates whether the merchant verified the email address.
	VerifiedEmail bool `json:"verified_email,omitempty"`
	// OrdersCount is the number of orders this customer has placed before.
	OrdersCount int `json:"orders_count,omitempty"`
	// CreatedAt is when the customer account was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// Validate checks the customer fields. A present CreatedAt must never be
// the zero date, even under weak mode.
func (c *Customer) Validate(weak bool) error {
	if !weak {
		if err := validation.ValuedString(c.ID, "Customer ID"); err != nil {
			return err
		}
		if err := validation.ValuedString(c.FirstName, "Customer First Name"); err != nil {
			return err
		}
		if err := validation.ValuedString(c.LastName, "Customer Last Name"); err != nil {
			return err
		}
		if err := validation.Email(c.Email, "Customer Email"); err != nil {
			return err
		}
	} else if c.Email != "" {
		if err := validation.Email(c.Email, "Customer Email"); err != nil {
			return err
		}
	}
	if c.OrdersCount < 0 {
		return validation.ZeroOrPositive(float64(c.OrdersCount), "Customer Orders Count")
	}
	if c.CreatedAt != nil {
		return validation.DateNotZero(*c.CreatedAt, "Customer Created At")
	}
	return nil
}

// DiscountCode represents a discount applied to the order.
type DiscountCode struct {
	// Code is the discount code entered by the buyer.
	Code string `json:"code"`
	// Amount is the money amount deducted by this code.
	Amount float64 `json:"amount"`
}

// Validate checks the discount code fields.
func (d *DiscountCode) Validate(weak bool) error {
	if !weak {
		if err := validation.ValuedString(d.Code, "Discount Code"); err != nil {
			return err
		}
	}
	return validation.ZeroOrPositive(d.Amount, "Discount Amount")
}
