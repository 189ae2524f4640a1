package domain

import (
	"encoding/json"
	"time"

	"riskgate/internal/core/validation"
)

// Order is the aggregate description of a commerce transaction submitted
// for fraud analysis. It is assembled once by the caller, validated, and
// serialized; mutation after validation is a caller error, not a workflow.
type Order struct {
	// ID is the merchant-assigned order identifier. Immutable and positive.
	ID int `json:"id"`
	// Email is the contact email used for the order.
	Email string `json:"email"`
	// Customer is the buyer information.
	Customer *Customer `json:"customer"`
	// PaymentDetails is the payment method variant used for the order.
	PaymentDetails PaymentDetails `json:"payment_details"`
	// BillingAddress is the billing address of the order.
	BillingAddress *AddressInformation `json:"billing_address"`
	// ShippingAddress is the shipping address of the order.
	ShippingAddress *AddressInformation `json:"shipping_address"`
	// LineItems are the purchased products. Must be non-empty.
	LineItems []LineItem `json:"line_items"`
	// ShippingLines are the shipping methods applied. Must be non-empty.
	ShippingLines []ShippingLine `json:"shipping_lines"`
	// Gateway is the payment gateway that processed the order.
	Gateway string `json:"gateway"`
	// BrowserIP is the buyer's browser IP address.
	BrowserIP string `json:"browser_ip"`
	// Currency is the three-letter ISO 4217 code of the payment currency.
	Currency string `json:"currency"`
	// TotalPrice is the order total, taxes and discounts included.
	TotalPrice float64 `json:"total_price"`
	// CreatedAt is when the order was created. Never the zero date.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is when the order was last modified. Never the zero date.
	UpdatedAt time.Time `json:"updated_at"`

	// DiscountCodes are the discounts applied to the order, if any.
	DiscountCodes []DiscountCode `json:"discount_codes,omitempty"`
	// TotalDiscounts is the total discount amount on the order, if any.
	TotalDiscounts *float64 `json:"total_discounts,omitempty"`
	// TotalPriceUSD is the order total converted to USD, if known.
	TotalPriceUSD *float64 `json:"total_price_usd,omitempty"`
	// CartToken identifies the cart or session the order came from.
	CartToken *string `json:"cart_token,omitempty"`
	// ClosedAt is when the order was closed, if it was.
	ClosedAt *time.Time `json:"closed_at,omitempty"`
	// FinancialStatus is the payment state (paid/voided/refunded/...).
	FinancialStatus *string `json:"financial_status,omitempty"`
	// FulfillmentStatus is the fulfillment state of the order.
	FulfillmentStatus *string `json:"fulfillment_status,omitempty"`
}

// OrderOption sets an optional field on an Order under construction.
type OrderOption func(*Order)

// WithDiscountCodes sets the discounts applied to the order.
func WithDiscountCodes(codes ...DiscountCode) OrderOption {
	return func(o *Order) { o.DiscountCodes = codes }
}

// WithTotalDiscounts sets the total discount amount.
func WithTotalDiscounts(amount float64) OrderOption {
	return func(o *Order) { o.TotalDiscounts = &amount }
}

// WithTotalPriceUSD sets the order total converted to USD.
func WithTotalPriceUSD(amount float64) OrderOption {
	return func(o *Order) { o.TotalPriceUSD = &amount }
}

// WithCartToken sets the cart/session token attached to the order.
func WithCartToken(token string) OrderOption {
	return func(o *Order) { o.CartToken = &token }
}

// WithClosedAt sets the time the order was closed.
func WithClosedAt(closedAt time.Time) OrderOption {
	return func(o *Order) { o.ClosedAt = &closedAt }
}

// WithFinancialStatus sets the financial status of the order.
func WithFinancialStatus(status string) OrderOption {
	return func(o *Order) { o.FinancialStatus = &status }
}

// WithFulfillmentStatus sets the fulfillment status of the order.
func WithFulfillmentStatus(status string) OrderOption {
	return func(o *Order) { o.FulfillmentStatus = &status }
}

// NewOrder assembles an Order from its required fields plus options.
// No validation happens here; call Validate before submitting.
func NewOrder(
	id int,
	email string,
	customer *Customer,
	paymentDetails PaymentDetails,
	billingAddress, shippingAddress *AddressInformation,
	lineItems []LineItem,
	shippingLines []ShippingLine,
	gateway, browserIP, currency string,
	totalPrice float64,
	createdAt, updatedAt time.Time,
	opts ...OrderOption,
) *Order {
	o := &Order{
		ID:              id,
		Email:           email,
		Customer:        customer,
		PaymentDetails:  paymentDetails,
		BillingAddress:  billingAddress,
		ShippingAddress: shippingAddress,
		LineItems:       lineItems,
		ShippingLines:   shippingLines,
		Gateway:         gateway,
		BrowserIP:       browserIP,
		Currency:        currency,
		TotalPrice:      totalPrice,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Validate traverses the full order graph and fails fast on the first
// violation. It is pure and idempotent.
//
// Weak mode relaxes which fields must be present; it never relaxes the
// format of a value that is present. Present optional fields are checked
// at full strictness in both modes.
func (o *Order) Validate(weak bool) error {
	if err := validation.PositiveInt(o.ID, "Merchant Order ID"); err != nil {
		return err
	}

	if len(o.LineItems) == 0 {
		return &validation.ValidationError{Field: "Line Items", Rule: validation.RuleRequired, Message: "must not be empty"}
	}
	for i := range o.LineItems {
		if err := o.LineItems[i].Validate(weak); err != nil {
			return err
		}
	}

	if len(o.ShippingLines) == 0 {
		return &validation.ValidationError{Field: "Shipping Lines", Rule: validation.RuleRequired, Message: "must not be empty"}
	}
	for i := range o.ShippingLines {
		if err := o.ShippingLines[i].Validate(weak); err != nil {
			return err
		}
	}

	if o.PaymentDetails == nil {
		return &validation.ValidationError{Field: "Payment Details", Rule: validation.RuleRequired, Message: "is required"}
	}
	if err := o.PaymentDetails.Validate(weak); err != nil {
		return err
	}

	if o.BillingAddress == nil {
		return &validation.ValidationError{Field: "Billing Address", Rule: validation.RuleRequired, Message: "is required"}
	}
	if err := o.BillingAddress.Validate(weak); err != nil {
		return err
	}

	if o.ShippingAddress == nil {
		return &validation.ValidationError{Field: "Shipping Address", Rule: validation.RuleRequired, Message: "is required"}
	}
	if err := o.ShippingAddress.Validate(weak); err != nil {
		return err
	}

	if o.Customer == nil {
		return &validation.ValidationError{Field: "Customer", Rule: validation.RuleRequired, Message: "is required"}
	}
	if err := o.Customer.Validate(weak); err != nil {
		return err
	}

	if err := o.validateScalars(weak); err != nil {
		return err
	}

	return o.validateOptionals(weak)
}

// validateScalars checks the order-level scalar fields.
func (o *Order) validateScalars(weak bool) error {
	if !weak || o.Email != "" {
		if err := validation.Email(o.Email, "Email"); err != nil {
			return err
		}
	}
	if !weak || o.BrowserIP != "" {
		if err := validation.IP(o.BrowserIP, "Browser IP"); err != nil {
			return err
		}
	}
	if !weak || o.Currency != "" {
		if err := validation.Currency(o.Currency, "Currency"); err != nil {
			return err
		}
	}
	if err := validation.ZeroOrPositive(o.TotalPrice, "Total Price"); err != nil {
		return err
	}
	if !weak {
		if err := validation.ValuedString(o.Gateway, "Gateway"); err != nil {
			return err
		}
		if err := validation.DateNotZero(o.CreatedAt, "Created At"); err != nil {
			return err
		}
		if err := validation.DateNotZero(o.UpdatedAt, "Updated At"); err != nil {
			return err
		}
	}
	return nil
}

// validateOptionals checks optional fields that are present. Presence is
// never required here, but a present value is held to full strictness in
// both modes.
func (o *Order) validateOptionals(weak bool) error {
	for i := range o.DiscountCodes {
		if err := o.DiscountCodes[i].Validate(weak); err != nil {
			return err
		}
	}
	if o.TotalPriceUSD != nil {
		if err := validation.ZeroOrPositive(*o.TotalPriceUSD, "Total Price USD"); err != nil {
			return err
		}
	}
	if o.TotalDiscounts != nil {
		if err := validation.ZeroOrPositive(*o.TotalDiscounts, "Total Discounts"); err != nil {
			return err
		}
	}
	if o.ClosedAt != nil {
		if err := validation.DateNotZero(*o.ClosedAt, "Closed At"); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON restores an Order from its wire form, including the
// concrete payment method variant.
func (o *Order) UnmarshalJSON(data []byte) error {
	type orderAlias Order
	wire := struct {
		*orderAlias
		PaymentDetails json.RawMessage `json:"payment_details"`
	}{orderAlias: (*orderAlias)(o)}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	pd, err := decodePaymentDetails(wire.PaymentDetails)
	if err != nil {
		return err
	}
	o.PaymentDetails = pd
	return nil
}
