package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"riskgate/internal/core/config"
	"riskgate/internal/core/logger"
	"riskgate/internal/core/validation"
	notifadapter "riskgate/internal/features/notifications/adapters"
	notifdomain "riskgate/internal/features/notifications/domain"
	notifhandler "riskgate/internal/features/notifications/handler"
	notifports "riskgate/internal/features/notifications/ports"
	"riskgate/internal/features/notifications/listener"
	orderadapter "riskgate/internal/features/orders/adapters"
	orderdomain "riskgate/internal/features/orders/domain"
	orderports "riskgate/internal/features/orders/ports"

	"go.uber.org/zap"
)

// sampleOrder builds a demonstration order the way a merchant platform would.
func sampleOrder() *orderdomain.Order {
	now := time.Now().UTC()
	address := &orderdomain.AddressInformation{
		FirstName: "Jane",
		LastName:  "Doe",
		Address1:  "27 Fifth Avenue",
		City:      "Manhattan",
		Country:   "United States",
		Phone:     "+1-202-555-0172",
	}

	return orderdomain.NewOrder(
		100541,
		"jane.doe@example.com",
		&orderdomain.Customer{
			ID:            "cust-2041",
			Email:         "jane.doe@example.com",
			FirstName:     "Jane",
			LastName:      "Doe",
			VerifiedEmail: true,
			OrdersCount:   4,
		},
		&orderdomain.PaypalPaymentDetails{
			PaymentStatus:   "Completed",
			AuthorizationID: "AUTH-77421",
			PayerEmail:      "jane.doe@example.com",
			PayerStatus:     "verified",
		},
		address,
		address,
		[]orderdomain.LineItem{
			{Title: "Wool Sweater", Price: 89.90, Quantity: 1, ProductID: "p-1120", SKU: "WS-M-GRY"},
			{Title: "Leather Belt", Price: 24.50, Quantity: 2, ProductID: "p-2203", SKU: "LB-BRN"},
		},
		[]orderdomain.ShippingLine{
			{Title: "Standard Shipping", Price: 5.99, Code: "std"},
		},
		"paypal",
		"203.0.113.7",
		"USD",
		144.89,
		now,
		now,
		orderdomain.WithCartToken("cart-9f13"),
		orderdomain.WithFinancialStatus("paid"),
	)
}

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Initialize the risk API adapter and verify connectivity.
	var riskAPI orderports.OrderSubmitter = orderadapter.NewRiskAPIAdapter(cfg.RiskAPI)
	if err := riskAPI.HealthCheck(context.Background()); err != nil {
		l.Fatal("Risk API health check failed", zap.Error(err))
	}
	l.Info("Risk API connection verified")

	// Submit a demonstration order.
	remoteID, err := riskAPI.Submit(context.Background(), sampleOrder())
	var vErr *validation.ValidationError
	switch {
	case err == nil:
		l.Info("Sample order submitted", zap.String("remote_order_id", remoteID))
	case errors.As(err, &vErr):
		l.Error("Sample order failed local validation", zap.Error(err))
	case orderports.IsTransient(err):
		l.Warn("Submission failed transiently, retry later", zap.Error(err))
	default:
		l.Error("Sample order rejected", zap.Error(err))
	}

	// Optional replay protection via Redis.
	var dedup notifports.DedupStore
	if cfg.RedisURL != "" {
		store, err := notifadapter.NewRedisDedupStore(cfg.RedisURL)
		if err != nil {
			l.Fatal("Failed to create dedup store", zap.Error(err))
		}
		defer store.Close()
		dedup = store
		l.Info("Notification replay protection enabled")
	}

	// Start the verdict listener.
	wh := notifhandler.NewWebhookHandler(
		[]byte(cfg.RiskAPI.AuthToken),
		func(ctx context.Context, n *notifdomain.Notification) error {
			l.Info("Verdict received",
				zap.String("order_id", n.ID),
				zap.String("status", n.Status),
				zap.String("description", n.Description),
			)
			return nil
		},
		dedup,
	)
	notifListener := listener.New(cfg.Listener, wh)
	if err := notifListener.Start(); err != nil {
		l.Fatal("Failed to start notification listener", zap.Error(err))
	}
	l.Info("Waiting for verdicts", zap.String("address", notifListener.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := notifListener.Stop(ctx); err != nil {
		l.Error("Listener shutdown error", zap.Error(err))
	}
	l.Info("Application stopped")
}
