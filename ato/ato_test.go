// ato/ato_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/theater"
)

func makeSquadron(owned int, pilots ...string) *Squadron {
	var p []*Pilot
	for _, name := range pilots {
		p = append(p, &Pilot{Name: name})
	}
	return NewSquadron("VF-11", &aviation.AircraftType{ID: "F-14B"},
		&theater.ControlPoint{ID: 1, Name: "Stennis"}, owned, p)
}

func TestEnumText(t *testing.T) {
	var wp struct {
		Type  WaypointType `json:"type"`
		Start StartType    `json:"start"`
		Task  FlightType   `json:"task"`
	}
	if err := json.Unmarshal([]byte(`{"type": "INGRESS_SEAD", "start": "In Flight", "task": "BARCAP"}`), &wp); err != nil {
		t.Fatal(err)
	}
	if wp.Type != WaypointIngressSEAD || wp.Start != StartInFlight || wp.Task != BARCAP {
		t.Errorf("unexpected decode %+v", wp)
	}

	b, err := json.Marshal(wp)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"INGRESS_SEAD","start":"In Flight","task":"BARCAP"}` {
		t.Errorf("unexpected encoding %s", string(b))
	}

	var ft FlightType
	if err := ft.UnmarshalText([]byte("OCA")); !errors.Is(err, ErrUnknownFlightType) {
		t.Errorf("expected ErrUnknownFlightType, got %v", err)
	}
	if s := FlightType(99).String(); s != "99" {
		t.Errorf("out of range flight type: got %q", s)
	}

	if !CAP.IsCAP() || !BARCAP.IsCAP() || TARCAP.IsCAP() || Strike.IsCAP() {
		t.Errorf("IsCAP mismatch")
	}
}

func TestFlightInventory(t *testing.T) {
	sq := makeSquadron(4, "Maverick", "Goose", "Iceman")

	f, err := NewFlight(nil, "USA", sq, 2, CAP, StartCold, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if sq.UntaskedAircraft() != 2 {
		t.Errorf("expected 2 untasked aircraft, got %d", sq.UntaskedAircraft())
	}
	if f.Count() != 2 || f.MissingPilots() != 0 || sq.AvailablePilots() != 1 {
		t.Errorf("count %d missing %d available %d", f.Count(), f.MissingPilots(), sq.AvailablePilots())
	}

	if _, err := NewFlight(nil, "USA", sq, 3, CAP, StartCold, nil, ""); !errors.Is(err, ErrInsufficientInventory) {
		t.Errorf("expected ErrInsufficientInventory, got %v", err)
	}

	if err := f.Resize(4); err != nil {
		t.Fatal(err)
	}
	if f.Count() != 4 || f.MissingPilots() != 1 || sq.UntaskedAircraft() != 0 {
		t.Errorf("after resize: count %d missing %d untasked %d", f.Count(), f.MissingPilots(), sq.UntaskedAircraft())
	}

	if err := f.SetPilot(3, &Pilot{Name: "Player", Player: true}); err != nil {
		t.Fatal(err)
	}
	if f.ClientCount() != 1 || f.MissingPilots() != 0 {
		t.Errorf("client count %d missing %d", f.ClientCount(), f.MissingPilots())
	}
	if err := f.SetPilot(4, nil); !errors.Is(err, ErrRosterIndex) {
		t.Errorf("expected ErrRosterIndex, got %v", err)
	}

	f.ReturnPilotsAndAircraft()
	if sq.UntaskedAircraft() != 4 {
		t.Errorf("expected all aircraft returned, got %d untasked", sq.UntaskedAircraft())
	}
	if f.Count() != 0 {
		t.Errorf("expected empty roster, got %d", f.Count())
	}
}

func TestFlightString(t *testing.T) {
	sq := makeSquadron(4)
	f, err := NewFlight(nil, "USA", sq, 2, Strike, StartWarm, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if s := f.String(); s != "[STRIKE] 2 x F-14B" {
		t.Errorf("got %q", s)
	}
	f.CustomName = "Jester"
	if s := f.String(); s != "Jester 2 x F-14B" {
		t.Errorf("got %q", s)
	}
}

func TestPoints(t *testing.T) {
	f := &Flight{}
	if f.Points() != nil {
		t.Errorf("expected no points for an empty plan")
	}
	f.Plan.Waypoints = []*FlightWaypoint{{Type: WaypointTakeoff}, {Type: WaypointJoin}, {Type: WaypointLandingPoint}}
	pts := f.Points()
	if len(pts) != 2 || pts[0].Type != WaypointJoin {
		t.Errorf("unexpected points %v", pts)
	}

	tot := 10
	pts[0].TOT = &tot
	f.Plan.ResetTOTs()
	if pts[0].TOT != nil {
		t.Errorf("TOT not reset")
	}
}

func TestPackageCancel(t *testing.T) {
	sq := makeSquadron(6, "a", "b", "c", "d")
	pkg := NewPackage(theater.MissionTarget{Name: "SAM"})
	if _, ok := pkg.PrimaryTask(); ok {
		t.Errorf("empty package should have no primary task")
	}

	for _, ft := range []FlightType{SEAD, Escort} {
		f, err := NewFlight(pkg, "USA", sq, 2, ft, StartCold, nil, "")
		if err != nil {
			t.Fatal(err)
		}
		pkg.AddFlight(f)
	}
	if task, ok := pkg.PrimaryTask(); !ok || task != SEAD {
		t.Errorf("primary task %s", task)
	}

	var order AirTaskingOrder
	order.AddPackage(pkg)
	if n := len(order.Flights()); n != 2 {
		t.Errorf("expected 2 flights, got %d", n)
	}

	pkg.RemoveFlight(pkg.Flights[1])
	if len(pkg.Flights) != 1 || sq.UntaskedAircraft() != 4 {
		t.Errorf("after removal: %d flights, %d untasked", len(pkg.Flights), sq.UntaskedAircraft())
	}

	order.Clear()
	if len(pkg.Flights) != 0 || len(order.Packages) != 0 {
		t.Errorf("ATO not cleared")
	}
	if sq.UntaskedAircraft() != 6 || sq.AvailablePilots() != 4 {
		t.Errorf("inventory not restored: %d aircraft %d pilots", sq.UntaskedAircraft(), sq.AvailablePilots())
	}
}
