package handler

import (
	"fmt"
	"time"

	"riskgate/internal/core/logger"
	"riskgate/internal/core/metrics"
	"riskgate/internal/core/signature"
	"riskgate/internal/features/notifications/domain"
	"riskgate/internal/features/notifications/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DedupTTL is how long a delivery id is remembered for replay protection.
const DedupTTL = 24 * time.Hour

// WebhookHandler authenticates, deduplicates, and dispatches inbound
// verdict notifications.
//
// Delivery policy: once the signature verifies and the payload decodes,
// the notification is acknowledged with 200 no matter what the caller's
// handler does. Handler errors and panics are logged and counted, never
// turned into a retry signal for the remote service.
type WebhookHandler struct {
	// secret is the shared secret used to verify inbound signatures.
	secret []byte
	// handle is the caller-supplied notification callback.
	handle ports.Handler
	// dedup suppresses replayed deliveries. Nil disables replay protection.
	dedup ports.DedupStore
}

// NewWebhookHandler creates a new WebhookHandler. dedup may be nil.
func NewWebhookHandler(secret []byte, handle ports.Handler, dedup ports.DedupStore) *WebhookHandler {
	return &WebhookHandler{
		secret: secret,
		handle: handle,
		dedup:  dedup,
	}
}

// AckResponse is the body returned for every accepted or rejected delivery.
type AckResponse struct {
	// Message describes how the delivery was treated.
	Message string `json:"message"`
}

// HandleNotification processes one inbound verdict delivery.
func (h *WebhookHandler) HandleNotification(c *fiber.Ctx) error {
	body := c.Body()

	if !signature.Verify(body, c.Get(signature.Header), h.secret) {
		metrics.Notifications.WithLabelValues(metrics.OutcomeBadSignature).Inc()
		logger.Get().Warn("Notification rejected: bad signature",
			zap.String("remote_ip", c.IP()),
		)
		return c.Status(fiber.StatusUnauthorized).JSON(AckResponse{
			Message: "signature verification failed",
		})
	}

	notification, err := domain.Decode(body)
	if err != nil {
		metrics.Notifications.WithLabelValues(metrics.OutcomeBadPayload).Inc()
		logger.Get().Warn("Notification rejected: bad payload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(AckResponse{
			Message: "malformed notification payload",
		})
	}

	if h.dedup != nil {
		first, err := h.dedup.MarkSeen(c.UserContext(), notification.ID, DedupTTL)
		if err != nil {
			// Fail open: a broken dedup store must not drop verdicts.
			logger.Get().Warn("Dedup store unavailable, delivering anyway",
				zap.String("order_id", notification.ID),
				zap.Error(err),
			)
		} else if !first {
			metrics.Notifications.WithLabelValues(metrics.OutcomeDuplicate).Inc()
			logger.Get().Debug("Duplicate notification suppressed",
				zap.String("order_id", notification.ID),
			)
			return c.JSON(AckResponse{Message: "duplicate delivery"})
		}
	}

	if err := h.dispatch(c, notification); err != nil {
		metrics.Notifications.WithLabelValues(metrics.OutcomeHandlerError).Inc()
		logger.Get().Error("Notification handler failed",
			zap.String("order_id", notification.ID),
			zap.String("status", notification.Status),
			zap.Error(err),
		)
		return c.JSON(AckResponse{Message: "accepted"})
	}

	metrics.Notifications.WithLabelValues(metrics.OutcomeDispatched).Inc()
	return c.JSON(AckResponse{Message: "accepted"})
}

// dispatch invokes the caller's handler, converting a panic into an error
// so one failing invocation cannot take down the listener.
func (h *WebhookHandler) dispatch(c *fiber.Ctx, notification *domain.Notification) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification handler panicked: %v", r)
		}
	}()
	return h.handle(c.UserContext(), notification)
}
