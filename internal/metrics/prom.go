package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records optimization request metrics in Prometheus.
type Collector struct {
	requests      *prometheus.CounterVec
	solveDuration prometheus.Histogram
	planEnergy    prometheus.Gauge
}

// NewCollector registers the collectors on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimize_requests_total",
		Help: "Total number of optimize requests by HTTP status code",
	}, []string{"code"})
	solveDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "solver_duration_seconds",
		Help:    "Time spent solving the schedule QUBO",
		Buckets: prometheus.DefBuckets,
	})
	planEnergy := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_energy",
		Help: "Objective value of the most recent accepted plan",
	})

	if err := reg.Register(requests); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			requests = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(solveDuration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solveDuration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(planEnergy); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			planEnergy = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &Collector{
		requests:      requests,
		solveDuration: solveDuration,
		planEnergy:    planEnergy,
	}, nil
}

// RecordRequest counts one optimize request by status code.
func (c *Collector) RecordRequest(status int) {
	c.requests.WithLabelValues(strconv.Itoa(status)).Inc()
}

// RecordSolve records a successful solve.
func (c *Collector) RecordSolve(duration time.Duration, planEnergy float64) {
	c.solveDuration.Observe(duration.Seconds())
	c.planEnergy.Set(planEnergy)
}
