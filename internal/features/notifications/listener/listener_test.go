package listener

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"riskgate/internal/core/config"
	"riskgate/internal/core/signature"
	"riskgate/internal/features/notifications/domain"
	"riskgate/internal/features/notifications/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-secret"

func startListener(t *testing.T, h func(ctx context.Context, n *domain.Notification) error) *Listener {
	t.Helper()

	wh := handler.NewWebhookHandler([]byte(testSecret), h, nil)
	l := New(config.ListenerConfig{Host: "127.0.0.1", Port: 0}, wh)
	require.NoError(t, l.Start())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		l.Stop(ctx)
	})

	return l
}

func deliver(t *testing.T, addr, body, secret string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", addr, Path), bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(signature.Header, signature.Sign([]byte(body), []byte(secret)))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// TestListener_Lifecycle verifies the state transitions around Start/Stop.
func TestListener_Lifecycle(t *testing.T) {
	wh := handler.NewWebhookHandler([]byte(testSecret), func(ctx context.Context, n *domain.Notification) error {
		return nil
	}, nil)
	l := New(config.ListenerConfig{Host: "127.0.0.1", Port: 0}, wh)

	assert.Equal(t, StateStopped, l.State())
	assert.Empty(t, l.Addr())

	require.NoError(t, l.Start())
	assert.Equal(t, StateListening, l.State())
	assert.NotEmpty(t, l.Addr())

	assert.ErrorIs(t, l.Start(), ErrAlreadyRunning)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Stop(ctx))
	assert.Equal(t, StateStopped, l.State())

	// Stop on an already-stopped listener is a no-op.
	require.NoError(t, l.Stop(ctx))

	// The listener can be started again after a clean stop.
	require.NoError(t, l.Start())
	require.NoError(t, l.Stop(ctx))
}

// TestListener_BindFailure verifies a failed bind surfaces immediately
// and leaves the listener stopped.
func TestListener_BindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port
	wh := handler.NewWebhookHandler([]byte(testSecret), func(ctx context.Context, n *domain.Notification) error {
		return nil
	}, nil)
	l := New(config.ListenerConfig{Host: "127.0.0.1", Port: port}, wh)

	err = l.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind")
	assert.Equal(t, StateStopped, l.State())
}

// TestListener_DeliversNotifications verifies an authenticated delivery
// reaches the handler exactly once over a real socket.
func TestListener_DeliversNotifications(t *testing.T) {
	var calls atomic.Int32
	var got atomic.Value

	l := startListener(t, func(ctx context.Context, n *domain.Notification) error {
		calls.Add(1)
		got.Store(n)
		return nil
	})

	resp := deliver(t, l.Addr(), `{"order":{"id":"rg-881","status":"declined","description":"high risk"}}`, testSecret)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())

	n := got.Load().(*domain.Notification)
	assert.Equal(t, "rg-881", n.ID)
	assert.Equal(t, domain.StatusDeclined, n.Status)
}

// TestListener_RejectsBadSignature verifies a forged delivery is rejected
// on the wire without reaching the handler.
func TestListener_RejectsBadSignature(t *testing.T) {
	var calls atomic.Int32
	l := startListener(t, func(ctx context.Context, n *domain.Notification) error {
		calls.Add(1)
		return nil
	})

	resp := deliver(t, l.Addr(), `{"order":{"id":"rg-881","status":"approved"}}`, "wrong-secret")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(0), calls.Load())
}

// TestListener_StopDrainsInFlight verifies Stop waits for a slow handler
// instead of aborting it.
func TestListener_StopDrainsInFlight(t *testing.T) {
	started := make(chan struct{})
	var finished atomic.Bool

	wh := handler.NewWebhookHandler([]byte(testSecret), func(ctx context.Context, n *domain.Notification) error {
		close(started)
		time.Sleep(300 * time.Millisecond)
		finished.Store(true)
		return nil
	}, nil)
	l := New(config.ListenerConfig{Host: "127.0.0.1", Port: 0}, wh)
	require.NoError(t, l.Start())

	done := make(chan struct{})
	go func() {
		defer close(done)
		resp := deliver(t, l.Addr(), `{"order":{"id":"rg-881","status":"approved"}}`, testSecret)
		resp.Body.Close()
	}()

	<-started
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, l.Stop(ctx))

	assert.True(t, finished.Load(), "stop must drain the in-flight handler")
	<-done
}
