package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"riskgate/internal/core/config"
	"riskgate/internal/core/httpclient"
	"riskgate/internal/core/logger"
	"riskgate/internal/core/metrics"
	"riskgate/internal/core/signature"
	"riskgate/internal/features/orders/domain"
	"riskgate/internal/features/orders/ports"

	"go.uber.org/zap"
)

// ShopDomainHeader identifies the merchant account on every request.
const ShopDomainHeader = "X-Riskgate-Shop-Domain"

// RiskAPIAdapter implements the OrderSubmitter interface against the risk
// API over HTTPS. It is stateless between calls and safe for concurrent use.
type RiskAPIAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the risk API connection details.
	config config.RiskAPIConfig
}

// NewRiskAPIAdapter creates a new instance of RiskAPIAdapter.
func NewRiskAPIAdapter(cfg config.RiskAPIConfig) *RiskAPIAdapter {
	return &RiskAPIAdapter{
		client: httpclient.NewClient(cfg.Timeout()),
		config: cfg,
	}
}

// submissionRequest is the wire envelope for an order submission.
type submissionRequest struct {
	Order *domain.Order `json:"order"`
}

// submissionResponse is the wire envelope of a successful submission.
type submissionResponse struct {
	Order struct {
		// ID is the remote-assigned order identifier.
		ID string `json:"id"`
		// Status is the initial analysis status.
		Status string `json:"status"`
		// Description is a human-readable acknowledgement.
		Description string `json:"description"`
	} `json:"order"`
}

// Submit validates the order, signs its serialized form, and posts it to
// the risk API. The order never leaves the process unvalidated. The HMAC
// digest is computed over the exact bytes sent on the wire.
func (a *RiskAPIAdapter) Submit(ctx context.Context, order *domain.Order) (string, error) {
	if err := order.Validate(false); err != nil {
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeValidation).Inc()
		return "", err
	}

	body, err := json.Marshal(submissionRequest{Order: order})
	if err != nil {
		return "", fmt.Errorf("failed to serialize order: %w", err)
	}

	url := a.config.URL + "/api/orders"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(ShopDomainHeader, a.config.ShopDomain)
	req.Header.Set(signature.Header, signature.Sign(body, []byte(a.config.AuthToken)))

	resp, err := a.client.Do(req)
	if err != nil {
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeTransient).Inc()
		return "", &ports.TransmissionError{Kind: ports.Transient, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeTransient).Inc()
		return "", &ports.TransmissionError{Kind: ports.Transient, StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var parsed submissionResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeTransient).Inc()
			return "", &ports.TransmissionError{
				Kind:       ports.Transient,
				StatusCode: resp.StatusCode,
				Body:       string(respBody),
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
		}
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
		logger.Get().Info("Order submitted",
			zap.Int("merchant_order_id", order.ID),
			zap.String("remote_order_id", parsed.Order.ID),
			zap.String("status", parsed.Order.Status),
		)
		return parsed.Order.ID, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeBadRequest).Inc()
		logger.Get().Warn("Order rejected by risk API",
			zap.Int("merchant_order_id", order.ID),
			zap.Int("status_code", resp.StatusCode),
		)
		return "", &ports.TransmissionError{
			Kind:       ports.BadRequest,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}

	default:
		metrics.OrderSubmissions.WithLabelValues(metrics.OutcomeTransient).Inc()
		return "", &ports.TransmissionError{
			Kind:       ports.Transient,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}
}

// HealthCheck verifies that the risk API is reachable and the shared
// secret is accepted.
func (a *RiskAPIAdapter) HealthCheck(ctx context.Context) error {
	url := a.config.URL + "/api/ping"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("health check failed to create request: %w", err)
	}
	req.Header.Set(ShopDomainHeader, a.config.ShopDomain)
	req.Header.Set(signature.Header, signature.Sign(nil, []byte(a.config.AuthToken)))

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed with status: %d", resp.StatusCode)
	}

	return nil
}
