package prometheus

import (
	"errors"
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Metrics is a Prometheus-backed implementation of realip.Metrics.
type Metrics struct {
	resolutions     *prom.CounterVec
	candidateMisses *prom.CounterVec
}

// New creates Metrics and registers its collectors on
// prom.DefaultRegisterer.
func New() (*Metrics, error) {
	return NewWithRegisterer(prom.DefaultRegisterer)
}

// NewWithRegisterer creates Metrics and registers its collectors on the given
// registerer.
//
// If registerer is nil, prom.DefaultRegisterer is used. If the metrics are
// already registered, existing compatible collectors are reused.
func NewWithRegisterer(registerer prom.Registerer) (*Metrics, error) {
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}

	resolutionsCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "realip_resolutions_total",
			Help: "Total number of client address resolutions by winning source (forwarded, x_forwarded_for, x_real_ip, socket_addr).",
		},
		[]string{"source"},
	)
	candidateMissesCollector := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "realip_candidate_misses_total",
			Help: "Candidate headers that were present but unusable, by source, causing fallback to the next candidate.",
		},
		[]string{"source"},
	)

	resolutions, err := registerCounterVec(registerer, resolutionsCollector, "realip_resolutions_total")
	if err != nil {
		return nil, err
	}

	candidateMisses, err := registerCounterVec(registerer, candidateMissesCollector, "realip_candidate_misses_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		resolutions:     resolutions,
		candidateMisses: candidateMisses,
	}, nil
}

func registerCounterVec(registerer prom.Registerer, collector *prom.CounterVec, metricName string) (*prom.CounterVec, error) {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prom.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(*prom.CounterVec)
			if ok {
				return existing, nil
			}
			return nil, fmt.Errorf("metric %q already registered with incompatible collector type %T", metricName, alreadyRegistered.ExistingCollector)
		}

		return nil, fmt.Errorf("register metric %q: %w", metricName, err)
	}

	return collector, nil
}

// RecordResolution increments realip_resolutions_total for the winning
// source.
func (m *Metrics) RecordResolution(source string) {
	m.resolutions.WithLabelValues(source).Inc()
}

// RecordCandidateMiss increments realip_candidate_misses_total for the
// provided source.
func (m *Metrics) RecordCandidateMiss(source string) {
	m.candidateMisses.WithLabelValues(source).Inc()
}
