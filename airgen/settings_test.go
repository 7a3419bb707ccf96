// airgen/settings_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings([]byte(`{"cold_start": true, "cap_duration_minutes": 45}`))
	if err != nil {
		t.Fatal(err)
	}
	if !s.ColdStart || s.CAPDurationMinutes != 45 || s.CruiseSpeedKnots != DefaultCruiseSpeedKnots {
		t.Errorf("unexpected settings %+v", s)
	}

	for _, bad := range []string{
		`{"cold_start": "yes"}`,
		`{"cruise_speed_knots": 0}`,
		`{"cull_distance_nm": -5}`,
		`{"cap_duration_minutes": -1}`,
	} {
		if _, err := LoadSettings([]byte(bad)); err == nil {
			t.Errorf("%s: expected an error", bad)
		}
	}
}

func TestMetricsSharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m1, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}

	m1.flightCulled()
	m2.flightCulled()
	if n := testutil.ToFloat64(m1.FlightsCulled); n != 2 {
		t.Errorf("expected collectors to be shared, got %f", n)
	}

	var nilMetrics *Metrics
	nilMetrics.flightGenerated("CAP")
	nilMetrics.skippedAttachment()
}
