package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Submission outcomes: delivered, failed, blocked (guard), busy (already submitting)
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome",
	}, []string{"outcome"})

	DeliveryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "contact_delivery_duration_seconds",
		Help:    "Time spent in the external delivery call",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	})

	FormsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "contact_forms_active",
		Help: "Contact form instances currently held in memory",
	})

	FormsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contact_forms_swept_total",
		Help: "Idle contact form instances evicted by the sweep",
	})
)

const (
	outcomeDelivered = "delivered"
	outcomeFailed    = "failed"
	outcomeBlocked   = "blocked"
	outcomeBusy      = "busy"
)
