package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	opsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "laundryadmin_store_ops_total",
			Help: "Total number of key/value store operations",
		},
		[]string{"op", "key", "result"},
	)

	opDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "laundryadmin_store_op_duration_seconds",
			Help:    "Duration of key/value store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "key"},
	)
)

// RegisterMetrics registers the store collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{opsTotal, opDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// Instrumented records Prometheus metrics around another Store.
type Instrumented struct {
	next Store
}

func NewInstrumented(next Store) *Instrumented {
	return &Instrumented{next: next}
}

func (s *Instrumented) Load(ctx context.Context, key string) ([]byte, bool, error) {
	start := time.Now()
	raw, found, err := s.next.Load(ctx, key)

	result := "hit"
	switch {
	case err != nil:
		result = "error"
	case !found:
		result = "miss"
	}
	observe("load", key, result, start)
	return raw, found, err
}

func (s *Instrumented) Save(ctx context.Context, key string, raw []byte) error {
	start := time.Now()
	err := s.next.Save(ctx, key, raw)
	observe("save", key, resultOf(err), start)
	return err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	observe("delete", key, resultOf(err), start)
	return err
}

func observe(op, key, result string, start time.Time) {
	opsTotal.WithLabelValues(op, key, result).Inc()
	opDuration.WithLabelValues(op, key).Observe(time.Since(start).Seconds())
}

func resultOf(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
