package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes.
const (
	OutcomeAccepted   = "accepted"
	OutcomeValidation = "validation"
	OutcomeBadRequest = "bad_request"
	OutcomeTransient  = "transient"
)

// Notification outcomes.
const (
	OutcomeDispatched   = "dispatched"
	OutcomeDuplicate    = "duplicate"
	OutcomeBadSignature = "bad_signature"
	OutcomeBadPayload   = "bad_payload"
	OutcomeHandlerError = "handler_error"
)

var (
	// OrderSubmissions counts order submissions to the risk API by outcome.
	OrderSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskgate_order_submissions_total",
		Help: "Order submissions to the risk API, labeled by outcome.",
	}, []string{"outcome"})

	// Notifications counts inbound webhook notifications by outcome.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskgate_notifications_total",
		Help: "Inbound verdict notifications, labeled by outcome.",
	}, []string{"outcome"})
)
