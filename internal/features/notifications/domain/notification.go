package domain

import (
	"encoding/json"
	"fmt"
)

// Verdict statuses carried by notifications.
const (
	// StatusApproved means the order passed fraud analysis.
	StatusApproved = "approved"
	// StatusDeclined means the order was flagged as fraudulent.
	StatusDeclined = "declined"
	// StatusSubmitted means the order is still under review.
	StatusSubmitted = "submitted"
)

// Notification is an asynchronous verdict for a previously submitted
// order. It lives for the duration of one webhook dispatch; nothing is
// persisted.
type Notification struct {
	// ID is the remote-assigned order reference the verdict applies to.
	ID string `json:"id"`
	// Status is the verdict (approved/declined/submitted).
	Status string `json:"status"`
	// Description is a human-readable explanation of the verdict.
	Description string `json:"description,omitempty"`
}

// notificationEnvelope is the wire form of a verdict webhook.
type notificationEnvelope struct {
	Order *Notification `json:"order"`
}

// Decode parses a webhook body into a Notification. The signature is
// carried in an HTTP header and is not part of the payload.
func Decode(body []byte) (*Notification, error) {
	var envelope notificationEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode notification: %w", err)
	}
	if envelope.Order == nil {
		return nil, fmt.Errorf("notification payload missing order")
	}
	if envelope.Order.ID == "" {
		return nil, fmt.Errorf("notification missing order id")
	}
	if envelope.Order.Status == "" {
		return nil, fmt.Errorf("notification missing status")
	}
	return envelope.Order, nil
}
