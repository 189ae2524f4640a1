package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValuedString verifies the non-empty string check.
func TestValuedString(t *testing.T) {
	assert.NoError(t, ValuedString("visa", "Gateway"))

	err := ValuedString("", "Gateway")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Gateway", vErr.Field)
	assert.Equal(t, RuleRequired, vErr.Rule)
}

// TestZeroOrPositive verifies the non-negative number check.
func TestZeroOrPositive(t *testing.T) {
	assert.NoError(t, ZeroOrPositive(0, "Total Price"))
	assert.NoError(t, ZeroOrPositive(99.95, "Total Price"))

	err := ZeroOrPositive(-5, "Total Price")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Total Price", vErr.Field)
	assert.Equal(t, RuleRange, vErr.Rule)
}

// TestPositiveInt verifies zero and negative values are rejected.
func TestPositiveInt(t *testing.T) {
	assert.NoError(t, PositiveInt(1, "Quantity"))
	assert.Error(t, PositiveInt(0, "Quantity"))
	assert.Error(t, PositiveInt(-3, "Quantity"))
}

// TestDateNotZero verifies the zero-date sentinel is rejected.
func TestDateNotZero(t *testing.T) {
	assert.NoError(t, DateNotZero(time.Now(), "Created At"))

	err := DateNotZero(time.Time{}, "Closed At")
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Closed At", vErr.Field)
	assert.Equal(t, RuleFormat, vErr.Rule)
}

// TestEmail verifies email syntax checking.
func TestEmail(t *testing.T) {
	assert.NoError(t, Email("jane@example.com", "Email"))
	assert.Error(t, Email("", "Email"))
	assert.Error(t, Email("not-an-email", "Email"))
	assert.Error(t, Email("missing@tld@double", "Email"))
}

// TestIP verifies both IPv4 and IPv6 addresses are accepted.
func TestIP(t *testing.T) {
	assert.NoError(t, IP("203.0.113.7", "Browser IP"))
	assert.NoError(t, IP("2001:db8::1", "Browser IP"))
	assert.Error(t, IP("", "Browser IP"))
	assert.Error(t, IP("999.0.0.1", "Browser IP"))
	assert.Error(t, IP("example.com", "Browser IP"))
}

// TestCurrency verifies ISO 4217 code recognition.
func TestCurrency(t *testing.T) {
	assert.NoError(t, Currency("USD", "Currency"))
	assert.NoError(t, Currency("COP", "Currency"))
	assert.Error(t, Currency("", "Currency"))
	assert.Error(t, Currency("usd", "Currency"))
	assert.Error(t, Currency("BITCOIN", "Currency"))
}

// TestValidationError_Error verifies the message format includes field and rule.
func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "Email", Rule: RuleFormat, Message: "bad"}
	assert.Contains(t, err.Error(), "Email")
	assert.Contains(t, err.Error(), "format")
}
