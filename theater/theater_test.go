// theater/theater_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mmp/airgen/math"
)

func TestCoalition(t *testing.T) {
	if Blue.Opponent() != Red || Red.Opponent() != Blue || Neutral.Opponent() != Neutral {
		t.Errorf("unexpected opponents")
	}

	var c struct {
		Side Coalition `json:"side"`
	}
	if err := json.Unmarshal([]byte(`{"side": "Blue"}`), &c); err != nil || c.Side != Blue {
		t.Errorf("got %v/%v, expected blue", c.Side, err)
	}
	if err := json.Unmarshal([]byte(`{"side": "green"}`), &c); !errors.Is(err, ErrUnknownCoalition) {
		t.Errorf("expected ErrUnknownCoalition, got %v", err)
	}
}

func TestControlPointType(t *testing.T) {
	var ct ControlPointType
	if err := ct.UnmarshalText([]byte("carrier")); err != nil || ct != AircraftCarrierGroup {
		t.Errorf("got %v/%v, expected carrier", ct, err)
	}
	if err := ct.UnmarshalText([]byte("dock")); !errors.Is(err, ErrUnknownControlPointType) {
		t.Errorf("expected ErrUnknownControlPointType, got %v", err)
	}

	for _, tc := range []struct {
		t     ControlPointType
		fleet bool
	}{{Airbase, false}, {AircraftCarrierGroup, true}, {LHAGroup, true}, {FOB, false}} {
		cp := &ControlPoint{Type: tc.t}
		if cp.IsFleet() != tc.fleet {
			t.Errorf("%s: IsFleet() = %v", tc.t, cp.IsFleet())
		}
	}
}

func TestCoalitionFor(t *testing.T) {
	th := &Theater{Player: Blue}
	if c := th.CoalitionFor(&ControlPoint{Captured: true}); c != Blue {
		t.Errorf("captured: got %s", c)
	}
	if c := th.CoalitionFor(&ControlPoint{}); c != Red {
		t.Errorf("enemy: got %s", c)
	}
}

func TestControlPointLookup(t *testing.T) {
	th := &Theater{ControlPoints: []*ControlPoint{{ID: 3, Name: "Batumi"}, {ID: 7, Name: "Kutaisi"}}}
	if cp, err := th.ControlPoint(7); err != nil || cp.Name != "Kutaisi" {
		t.Errorf("got %v/%v", cp, err)
	}
	if _, err := th.ControlPoint(9); !errors.Is(err, ErrNoControlPoint) {
		t.Errorf("expected ErrNoControlPoint, got %v", err)
	}
}

func TestPositionCulled(t *testing.T) {
	th := &Theater{
		CullingPoints: []math.Point2{{0, 0}, {math.NMToMeters(200), 0}},
	}
	for _, tc := range []struct {
		p      math.Point2
		culled bool
	}{
		{math.Point2{math.NMToMeters(50), 0}, false},
		{math.Point2{math.NMToMeters(290), 0}, false},
		{math.Point2{0, math.NMToMeters(150)}, true},
	} {
		if c := th.PositionCulled(tc.p, 100); c != tc.culled {
			t.Errorf("%s: got culled %v, expected %v", tc.p, c, tc.culled)
		}
	}

	if th.PositionCulled(math.Point2{1e7, 1e7}, 0) {
		t.Errorf("culling should be disabled")
	}
}
