package domain

import (
	"encoding/json"
	"fmt"

	"riskgate/internal/core/validation"
)

// PaymentDetails is the shared contract of all payment method variants.
// Each variant validates its own fields and serializes under stable wire
// names. Supporting a new payment method means adding a new variant type
// and teaching decodePaymentDetails to recognize it.
type PaymentDetails interface {
	// Validate checks the variant's fields. Weak mode relaxes presence
	// requirements except for fields a variant declares always-required.
	Validate(weak bool) error
}

// CreditCardPaymentDetails is the payment variant for card payments.
type CreditCardPaymentDetails struct {
	// AvsResultCode is the address verification result from the processor.
	AvsResultCode string `json:"avs_result_code,omitempty"`
	// CreditCardBin is the first six digits of the card number.
	CreditCardBin string `json:"credit_card_bin,omitempty"`
	// CreditCardCompany is the card brand (e.g., Visa, MasterCard).
	CreditCardCompany string `json:"credit_card_company"`
	// CreditCardNumber is the masked card number (e.g., "XXXX-XXXX-XXXX-4242").
	CreditCardNumber string `json:"credit_card_number"`
	// CvvResultCode is the CVV verification result from the processor.
	CvvResultCode string `json:"cvv_result_code,omitempty"`
}

// Validate checks the card fields. Brand and masked number are required
// in strict mode only.
func (cc *CreditCardPaymentDetails) Validate(weak bool) error {
	if weak {
		return nil
	}
	if err := validation.ValuedString(cc.CreditCardCompany, "Credit Card Company"); err != nil {
		return err
	}
	return validation.ValuedString(cc.CreditCardNumber, "Credit Card Number")
}

// PaypalPaymentDetails is the payment variant for PayPal payments.
type PaypalPaymentDetails struct {
	// PaymentStatus is the payment status as received from PayPal.
	PaymentStatus string `json:"payment_status"`
	// AuthorizationID is the authorization id received from PayPal.
	AuthorizationID string `json:"authorization_id,omitempty"`
	// PayerEmail is the email of the paying PayPal account.
	PayerEmail string `json:"payer_email,omitempty"`
	// PayerStatus is the payer status as received from PayPal.
	PayerStatus string `json:"payer_status,omitempty"`
	// PayerAddressStatus is the payer address status as received from PayPal.
	PayerAddressStatus string `json:"payer_address_status,omitempty"`
	// ProtectionEligibility is the merchant's protection eligibility for the order.
	ProtectionEligibility string `json:"protection_eligibility,omitempty"`
	// PendingReason is the pending reason received from PayPal.
	PendingReason string `json:"pending_reason,omitempty"`
}

// Validate checks the PayPal fields. PaymentStatus is required in both
// modes; a present PayerEmail must be well formed.
func (pp *PaypalPaymentDetails) Validate(weak bool) error {
	if err := validation.ValuedString(pp.PaymentStatus, "Payment Status"); err != nil {
		return err
	}
	if pp.PayerEmail != "" {
		return validation.Email(pp.PayerEmail, "Payer Email")
	}
	return nil
}

// decodePaymentDetails restores the concrete payment variant from its wire
// form. PayPal payloads always carry payment_status; everything else is
// treated as a card payment.
func decodePaymentDetails(raw json.RawMessage) (PaymentDetails, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var probe struct {
		PaymentStatus *string `json:"payment_status"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("failed to probe payment details: %w", err)
	}

	if probe.PaymentStatus != nil {
		var pp PaypalPaymentDetails
		if err := json.Unmarshal(raw, &pp); err != nil {
			return nil, fmt.Errorf("failed to decode paypal payment details: %w", err)
		}
		return &pp, nil
	}

	var cc CreditCardPaymentDetails
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("failed to decode credit card payment details: %w", err)
	}
	return &cc, nil
}
