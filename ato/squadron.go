// ato/squadron.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"
	"slices"

	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/theater"
)

type Pilot struct {
	Name   string
	Player bool
}

func (p *Pilot) String() string { return p.Name }

// Squadron owns aircraft and pilots at a control point. Flights claim
// aircraft from the squadron's inventory when they are planned and return
// them when they are cancelled.
type Squadron struct {
	Name     string
	Aircraft *aviation.AircraftType
	Location *theater.ControlPoint
	// Arrival is where the squadron's flights land; if nil they return
	// to Location.
	Arrival *theater.ControlPoint

	Owned   int
	claimed int

	available []*Pilot
}

func NewSquadron(name string, ac *aviation.AircraftType, loc *theater.ControlPoint, owned int, pilots []*Pilot) *Squadron {
	return &Squadron{
		Name:      name,
		Aircraft:  ac,
		Location:  loc,
		Owned:     owned,
		available: slices.Clone(pilots),
	}
}

func (s *Squadron) String() string { return s.Name }

func (s *Squadron) ArrivalPoint() *theater.ControlPoint {
	if s.Arrival != nil {
		return s.Arrival
	}
	return s.Location
}

// UntaskedAircraft returns the number of aircraft not yet claimed by a
// flight.
func (s *Squadron) UntaskedAircraft() int {
	return s.Owned - s.claimed
}

// ClaimInventory claims n aircraft for a flight; a negative n returns
// aircraft to the squadron.
func (s *Squadron) ClaimInventory(n int) error {
	if n > s.UntaskedAircraft() {
		return fmt.Errorf("%s: %d aircraft requested, %d available: %w", s.Name, n,
			s.UntaskedAircraft(), ErrInsufficientInventory)
	}
	if s.claimed+n < 0 {
		return fmt.Errorf("%s: returning %d aircraft but only %d claimed: %w", s.Name, -n,
			s.claimed, ErrInsufficientInventory)
	}
	s.claimed += n
	return nil
}

// ClaimPilot returns the first available pilot, or nil if the squadron
// has none left.
func (s *Squadron) ClaimPilot() *Pilot {
	if len(s.available) == 0 {
		return nil
	}
	p := s.available[0]
	s.available = s.available[1:]
	return p
}

func (s *Squadron) ReturnPilot(p *Pilot) {
	if p != nil {
		s.available = append(s.available, p)
	}
}

func (s *Squadron) AvailablePilots() int { return len(s.available) }

///////////////////////////////////////////////////////////////////////////
// FlightRoster

// FlightRoster holds the pilots assigned to a flight; nil entries are
// seats that have an aircraft but no pilot.
type FlightRoster struct {
	squadron *Squadron
	pilots   []*Pilot
}

func NewFlightRoster(sq *Squadron, size int) *FlightRoster {
	r := &FlightRoster{squadron: sq}
	r.Resize(size)
	return r
}

func (r *FlightRoster) MaxSize() int { return len(r.pilots) }

func (r *FlightRoster) Pilots() []*Pilot { return r.pilots }

// PlayerCount returns the number of seats held by player pilots.
func (r *FlightRoster) PlayerCount() int {
	n := 0
	for _, p := range r.pilots {
		if p != nil && p.Player {
			n++
		}
	}
	return n
}

func (r *FlightRoster) MissingPilots() int {
	n := 0
	for _, p := range r.pilots {
		if p == nil {
			n++
		}
	}
	return n
}

// Resize grows the roster by claiming pilots from the squadron or shrinks
// it by returning the pilots in the trailing seats.
func (r *FlightRoster) Resize(size int) {
	for len(r.pilots) < size {
		r.pilots = append(r.pilots, r.squadron.ClaimPilot())
	}
	for len(r.pilots) > size {
		r.squadron.ReturnPilot(r.pilots[len(r.pilots)-1])
		r.pilots = r.pilots[:len(r.pilots)-1]
	}
}

// SetPilot puts the given pilot, who must already be claimed from the
// squadron, in seat i. The previous occupant returns to the squadron.
func (r *FlightRoster) SetPilot(i int, p *Pilot) error {
	if i < 0 || i >= len(r.pilots) {
		return fmt.Errorf("seat %d of %d: %w", i, len(r.pilots), ErrRosterIndex)
	}
	r.squadron.ReturnPilot(r.pilots[i])
	r.pilots[i] = p
	return nil
}

// Clear returns all pilots to the squadron.
func (r *FlightRoster) Clear() {
	for _, p := range r.pilots {
		r.squadron.ReturnPilot(p)
	}
	r.pilots = nil
}
