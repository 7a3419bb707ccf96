// airgen/metrics.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what happened while generating flights. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	FlightsGenerated   *prometheus.CounterVec
	FlightsCulled      prometheus.Counter
	AirborneFallbacks  *prometheus.CounterVec
	SkippedAttachments prometheus.Counter
}

// NewMetrics creates the generator's collectors and registers them with
// reg; if reg is nil, the default registerer is used.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	generated, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airgen_flights_generated_total",
		Help: "Flights added to the mission, by flight type.",
	}, []string{"flight_type"}), "airgen_flights_generated_total")
	if err != nil {
		return nil, err
	}

	fallbacks, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "airgen_airborne_fallbacks_total",
		Help: "Flights that started airborne because they could not be placed on the ground.",
	}, []string{"reason"}), "airgen_airborne_fallbacks_total")
	if err != nil {
		return nil, err
	}

	culled, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "airgen_flights_culled_total",
		Help: "AI flights not generated because they were far from any action.",
	}), "airgen_flights_culled_total")
	if err != nil {
		return nil, err
	}

	skipped, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "airgen_skipped_attack_attachments_total",
		Help: "Attack tasks dropped because their target group was not in the mission.",
	}), "airgen_skipped_attack_attachments_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		FlightsGenerated:   generated,
		FlightsCulled:      culled,
		AirborneFallbacks:  fallbacks,
		SkippedAttachments: skipped,
	}, nil
}

func (m *Metrics) flightGenerated(flightType string) {
	if m != nil {
		m.FlightsGenerated.WithLabelValues(flightType).Inc()
	}
}

func (m *Metrics) flightCulled() {
	if m != nil {
		m.FlightsCulled.Inc()
	}
}

func (m *Metrics) airborneFallback(reason string) {
	if m != nil {
		m.AirborneFallbacks.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) skippedAttachment() {
	if m != nil {
		m.SkippedAttachments.Inc()
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}
