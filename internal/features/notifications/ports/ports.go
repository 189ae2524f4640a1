package ports

import (
	"context"
	"time"

	"riskgate/internal/features/notifications/domain"
)

// Handler is the caller-supplied callback invoked once per authenticated
// notification. It runs synchronously in the request's handling context;
// returning an error does not trigger redelivery.
type Handler func(ctx context.Context, notification *domain.Notification) error

// DedupStore provides replay protection for notification deliveries.
type DedupStore interface {
	// MarkSeen records a delivery id and reports whether this was the
	// first time it was seen within the TTL window.
	MarkSeen(ctx context.Context, id string, ttl time.Duration) (bool, error)
	// Close releases the underlying connection.
	Close() error
}
