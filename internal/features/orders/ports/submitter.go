package ports

import (
	"context"
	"errors"
	"fmt"

	"riskgate/internal/features/orders/domain"
)

// OrderSubmitter defines the interface for transmitting orders to the
// remote fraud-analysis service.
type OrderSubmitter interface {
	// Submit validates the order, transmits it, and returns the
	// remote-assigned order id. Failures are *TransmissionError or a
	// *validation.ValidationError raised before any network call.
	Submit(ctx context.Context, order *domain.Order) (string, error)
	// HealthCheck verifies the remote service is reachable and the
	// credentials are accepted.
	HealthCheck(ctx context.Context) error
}

// ErrorKind separates permanent data rejections from retry-worthy
// infrastructure failures.
type ErrorKind string

const (
	// BadRequest means the remote service rejected the caller's data.
	// Retrying without changing the order will not help.
	BadRequest ErrorKind = "bad_request"
	// Transient means a network failure, timeout, or remote 5xx. The
	// caller may retry with backoff; the SDK never retries internally.
	Transient ErrorKind = "transient"
)

// TransmissionError describes a failed order submission with enough
// context to diagnose it without retry-guessing.
type TransmissionError struct {
	// Kind classifies the failure as BadRequest or Transient.
	Kind ErrorKind
	// StatusCode is the HTTP status, or 0 when the request never
	// produced a response.
	StatusCode int
	// Body is the raw response body, if any.
	Body string
	// Err is the underlying transport error, if any.
	Err error
}

// Error implements the error interface.
func (e *TransmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("order transmission failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("order transmission failed (%s): status %d: %s", e.Kind, e.StatusCode, e.Body)
}

// Unwrap exposes the underlying transport error.
func (e *TransmissionError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is a retry-worthy transmission failure.
func IsTransient(err error) bool {
	var tErr *TransmissionError
	return errors.As(err, &tErr) && tErr.Kind == Transient
}
