package listener

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"riskgate/internal/core/config"
	"riskgate/internal/core/logger"
	"riskgate/internal/core/server"
	"riskgate/internal/features/notifications/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Path is the route verdict notifications are delivered to.
const Path = "/webhooks/notifications"

// State is the lifecycle state of a Listener.
type State string

const (
	// StateStopped means the listener holds no socket.
	StateStopped State = "stopped"
	// StateStarting means the listener is binding its socket.
	StateStarting State = "starting"
	// StateListening means the listener is accepting deliveries.
	StateListening State = "listening"
	// StateStopping means the listener is draining in-flight handlers.
	StateStopping State = "stopping"
)

// ErrAlreadyRunning is returned when Start is called on a listener that
// is not stopped.
var ErrAlreadyRunning = errors.New("listener already running")

// Listener is the long-lived local endpoint receiving verdict webhooks.
// One instance owns one (address, port) bind. Start and Stop are safe to
// call from any goroutine; inbound deliveries are handled concurrently
// by the underlying server.
type Listener struct {
	cfg config.ListenerConfig
	wh  *handler.WebhookHandler

	mu    sync.Mutex
	state State
	app   *fiber.App
	ln    net.Listener
}

// New creates a Listener serving the given webhook handler.
func New(cfg config.ListenerConfig, wh *handler.WebhookHandler) *Listener {
	return &Listener{
		cfg:   cfg,
		wh:    wh,
		state: StateStopped,
	}
}

// Start binds the configured address and begins accepting deliveries.
// A bind failure is returned immediately and leaves the listener stopped.
func (l *Listener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != StateStopped {
		return ErrAlreadyRunning
	}
	l.state = StateStarting

	addr := fmt.Sprintf("%s:%d", l.cfg.Host, l.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		l.state = StateStopped
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	// A fresh Fiber app per bind keeps restart after Stop clean.
	app := server.NewApp("riskgate-listener")
	app.Post(Path, l.wh.HandleNotification)

	l.app = app
	l.ln = ln
	l.state = StateListening
	logger.Get().Info("Notification listener started", zap.String("address", ln.Addr().String()))

	go func() {
		if err := app.Listener(ln); err != nil {
			logger.Get().Error("Notification listener terminated", zap.Error(err))
		}
	}()

	return nil
}

// Stop refuses new connections and drains in-flight handlers, bounded by
// ctx. Stopping an already-stopped listener is a no-op.
func (l *Listener) Stop(ctx context.Context) error {
	l.mu.Lock()
	if l.state != StateListening {
		l.mu.Unlock()
		return nil
	}
	l.state = StateStopping
	app := l.app
	l.mu.Unlock()

	err := app.ShutdownWithContext(ctx)

	l.mu.Lock()
	l.state = StateStopped
	l.app = nil
	l.ln = nil
	l.mu.Unlock()

	logger.Get().Info("Notification listener stopped")
	if err != nil {
		return fmt.Errorf("listener shutdown: %w", err)
	}
	return nil
}

// State returns the current lifecycle state.
func (l *Listener) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Addr returns the bound address, or "" when not listening. Useful when
// the listener was configured with port 0.
func (l *Listener) Addr() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ln == nil {
		return ""
	}
	return l.ln.Addr().String()
}
