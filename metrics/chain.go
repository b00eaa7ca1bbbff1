// Package metrics exports chain activity to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainAppendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashchain",
		Subsystem: "chain",
		Name:      "append_total",
		Help:      "Count of appended blocks.",
	}, []string{"chain"})

	chainLength = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hashchain",
		Subsystem: "chain",
		Name:      "length",
		Help:      "Number of blocks in the chain, including the genesis.",
	}, []string{"chain"})

	chainValidateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hashchain",
		Subsystem: "chain",
		Name:      "validate_total",
		Help:      "Count of chain validations by outcome.",
	}, []string{"chain", "status"})

	chainValidateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hashchain",
		Subsystem: "chain",
		Name:      "validate_duration_seconds",
		Help:      "Duration of walking and validating the whole chain.",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us..2.6s
	}, []string{"chain", "status"})
)

// Chain observes a single named chain.
type Chain struct {
	name string
}

// NewChain returns an observer that labels its metrics with name.
func NewChain(name string) *Chain {
	if name == "" {
		name = "unknown"
	}
	return &Chain{name: name}
}

func (m Chain) ObserveAppend(length int) {
	chainAppendTotal.WithLabelValues(m.name).Inc()
	chainLength.WithLabelValues(m.name).Set(float64(length))
}

func (m Chain) ObserveValidate(err error, started time.Time) {
	status := "valid"
	if err != nil {
		status = "invalid"
	}
	chainValidateTotal.WithLabelValues(m.name, status).Inc()
	chainValidateDuration.WithLabelValues(m.name, status).Observe(time.Since(started).Seconds())
}
