package validation

import (
	"fmt"
	"net"
	"net/mail"
	"time"
)

// Rule classifies which kind of check a field failed.
type Rule string

const (
	// RuleRequired indicates a required field was missing or empty.
	RuleRequired Rule = "required"
	// RuleFormat indicates a field was present but malformed.
	RuleFormat Rule = "format"
	// RuleRange indicates a numeric field was outside its allowed range.
	RuleRange Rule = "range"
)

// ValidationError describes a single field-level validation failure.
// It is always raised locally, before any network activity.
type ValidationError struct {
	// Field is the human-readable field label (e.g., "Total Price").
	Field string
	// Rule is the check that was violated.
	Rule Rule
	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Rule)
}

func requiredErr(field string) error {
	return &ValidationError{Field: field, Rule: RuleRequired, Message: "is required"}
}

func formatErr(field, message string) error {
	return &ValidationError{Field: field, Rule: RuleFormat, Message: message}
}

func rangeErr(field, message string) error {
	return &ValidationError{Field: field, Rule: RuleRange, Message: message}
}

// ValuedString fails unless value is a non-empty string.
func ValuedString(value, field string) error {
	if value == "" {
		return requiredErr(field)
	}
	return nil
}

// PositiveInt fails unless value is strictly greater than zero.
func PositiveInt(value int, field string) error {
	if value <= 0 {
		return rangeErr(field, fmt.Sprintf("must be positive, got %d", value))
	}
	return nil
}

// ZeroOrPositive fails unless value is greater than or equal to zero.
func ZeroOrPositive(value float64, field string) error {
	if value < 0 {
		return rangeErr(field, fmt.Sprintf("must not be negative, got %v", value))
	}
	return nil
}

// DateNotZero fails when value is the zero time sentinel.
// A required timestamp that was never set always trips this check.
func DateNotZero(value time.Time, field string) error {
	if value.IsZero() {
		return formatErr(field, "must not be the zero date")
	}
	return nil
}

// Email fails unless value parses as an RFC 5322 address.
func Email(value, field string) error {
	if value == "" {
		return requiredErr(field)
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return formatErr(field, fmt.Sprintf("%q is not a valid email address", value))
	}
	return nil
}

// IP fails unless value is a syntactically valid IPv4 or IPv6 address.
func IP(value, field string) error {
	if value == "" {
		return requiredErr(field)
	}
	if net.ParseIP(value) == nil {
		return formatErr(field, fmt.Sprintf("%q is not a valid IP address", value))
	}
	return nil
}

// Currency fails unless value is a recognized three-letter ISO 4217 code.
func Currency(value, field string) error {
	if value == "" {
		return requiredErr(field)
	}
	if !isoCurrencies[value] {
		return formatErr(field, fmt.Sprintf("%q is not a recognized ISO 4217 currency code", value))
	}
	return nil
}
