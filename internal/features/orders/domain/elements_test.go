package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLineItem_Validate verifies the required and range checks on line items.
func TestLineItem_Validate(t *testing.T) {
	item := LineItem{Title: "Wool Sweater", Price: 89.90, Quantity: 1}
	assert.NoError(t, item.Validate(false))

	noTitle := LineItem{Price: 10, Quantity: 1}
	assert.Error(t, noTitle.Validate(false))
	assert.NoError(t, noTitle.Validate(true))

	negativePrice := LineItem{Title: "X", Price: -1, Quantity: 1}
	assert.Error(t, negativePrice.Validate(false))
	assert.Error(t, negativePrice.Validate(true))

	zeroQuantity := LineItem{Title: "X", Price: 1}
	assert.Error(t, zeroQuantity.Validate(false))
	assert.NoError(t, zeroQuantity.Validate(true))

	negativeQuantity := LineItem{Title: "X", Price: 1, Quantity: -2}
	assert.Error(t, negativeQuantity.Validate(true))
}

// TestShippingLine_Validate verifies shipping line checks.
func TestShippingLine_Validate(t *testing.T) {
	line := ShippingLine{Title: "Standard Shipping", Price: 5.99}
	assert.NoError(t, line.Validate(false))

	assert.Error(t, (&ShippingLine{Price: 5.99}).Validate(false))
	assert.NoError(t, (&ShippingLine{Price: 5.99}).Validate(true))
	assert.Error(t, (&ShippingLine{Title: "X", Price: -0.01}).Validate(true))
}

// TestAddressInformation_Validate verifies required fields in strict mode.
func TestAddressInformation_Validate(t *testing.T) {
	addr := AddressInformation{
		FirstName: "Jane",
		LastName:  "Doe",
		Address1:  "27 Fifth Avenue",
		City:      "Manhattan",
		Country:   "United States",
		Phone:     "+1-202-555-0172",
	}
	assert.NoError(t, addr.Validate(false))

	addr.Phone = ""
	assert.Error(t, addr.Validate(false))
	assert.NoError(t, addr.Validate(true))
}

// TestCustomer_Validate verifies customer checks in both modes.
func TestCustomer_Validate(t *testing.T) {
	customer := Customer{
		ID:        "cust-1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	assert.NoError(t, customer.Validate(false))

	assert.Error(t, (&Customer{}).Validate(false))
	assert.NoError(t, (&Customer{}).Validate(true))

	badEmail := Customer{ID: "c", FirstName: "J", LastName: "D", Email: "nope"}
	assert.Error(t, badEmail.Validate(false))
	assert.Error(t, badEmail.Validate(true))

	zeroCreated := customer
	zeroCreated.CreatedAt = &time.Time{}
	assert.Error(t, zeroCreated.Validate(false))
	assert.Error(t, zeroCreated.Validate(true))
}

// TestDiscountCode_Validate verifies discount code checks.
func TestDiscountCode_Validate(t *testing.T) {
	code := DiscountCode{Code: "SUMMER10", Amount: 10}
	assert.NoError(t, code.Validate(false))

	assert.Error(t, (&DiscountCode{Amount: 5}).Validate(false))
	assert.NoError(t, (&DiscountCode{Amount: 5}).Validate(true))
	assert.Error(t, (&DiscountCode{Code: "X", Amount: -5}).Validate(true))
}
