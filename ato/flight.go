// ato/flight.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"

	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/theater"
)

// Loadout is a named set of stores; Pylons maps pylon numbers (as
// strings, "1", "2", ...) to store names.
type Loadout struct {
	Name   string
	Pylons map[string]string
}

// Flight is one squadron's contribution to a package.
type Flight struct {
	Package  *Package
	Country  string
	Squadron *Squadron
	Roster   *FlightRoster
	Type     FlightType
	Start    StartType
	Divert   *theater.ControlPoint
	Plan     FlightPlan

	Loadout          Loadout
	UseCustomLoadout bool
	CustomName       string

	// Minutes after mission start that the flight departs.
	ScheduledIn int
	// The target summarized on the pilot's kneeboard, if any.
	TargetPoint *theater.MissionTarget
}

// NewFlight creates a flight of count aircraft, claiming the aircraft and
// pilots from the squadron.
func NewFlight(pkg *Package, country string, sq *Squadron, count int, ft FlightType,
	st StartType, divert *theater.ControlPoint, customName string) (*Flight, error) {
	if err := sq.ClaimInventory(count); err != nil {
		return nil, err
	}
	return &Flight{
		Package:    pkg,
		Country:    country,
		Squadron:   sq,
		Roster:     NewFlightRoster(sq, count),
		Type:       ft,
		Start:      st,
		Divert:     divert,
		CustomName: customName,
	}, nil
}

func (f *Flight) Count() int { return f.Roster.MaxSize() }

func (f *Flight) ClientCount() int { return f.Roster.PlayerCount() }

func (f *Flight) UnitType() *aviation.AircraftType { return f.Squadron.Aircraft }

func (f *Flight) Departure() *theater.ControlPoint { return f.Squadron.Location }

func (f *Flight) Arrival() *theater.ControlPoint { return f.Squadron.ArrivalPoint() }

// Points returns the flight plan without its departure point.
func (f *Flight) Points() []*FlightWaypoint {
	if len(f.Plan.Waypoints) == 0 {
		return nil
	}
	return f.Plan.Waypoints[1:]
}

// Resize changes the number of aircraft in the flight, claiming or
// returning aircraft and pilots.
func (f *Flight) Resize(n int) error {
	if err := f.Squadron.ClaimInventory(n - f.Count()); err != nil {
		return err
	}
	f.Roster.Resize(n)
	return nil
}

func (f *Flight) SetPilot(i int, p *Pilot) error {
	return f.Roster.SetPilot(i, p)
}

func (f *Flight) MissingPilots() int { return f.Roster.MissingPilots() }

// ReturnPilotsAndAircraft returns everything the flight claimed to its
// squadron.
func (f *Flight) ReturnPilotsAndAircraft() {
	n := f.Count()
	f.Roster.Clear()
	// Only fails if more aircraft are returned than claimed, which the
	// roster size rules out.
	_ = f.Squadron.ClaimInventory(-n)
}

func (f *Flight) String() string {
	if f.CustomName != "" {
		return fmt.Sprintf("%s %d x %s", f.CustomName, f.Count(), f.UnitType())
	}
	return fmt.Sprintf("[%s] %d x %s", f.Type, f.Count(), f.UnitType())
}
