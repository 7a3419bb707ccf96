// mission/terrain.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"slices"
	"strings"

	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/math"
)

type ParkingSlot struct {
	ID       int         `json:"id"`
	Position math.Point2 `json:"position"`
	// ID of the unit parked in the slot; zero if the slot is free.
	UnitID int `json:"-"`
}

type Runway struct {
	Name    string              `json:"name"`
	Heading float64             `json:"heading"`
	ILS     *aviation.Frequency `json:"ils_khz,omitempty"`
}

// Airport is an airfield of the mission's map.
type Airport struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Position     math.Point2         `json:"position"`
	ATC          *aviation.Frequency `json:"atc_khz,omitempty"`
	TACAN        string              `json:"tacan,omitempty"`
	Runways      []Runway            `json:"runways"`
	ParkingSlots []*ParkingSlot      `json:"parking"`
}

func (a *Airport) String() string { return a.Name }

// FreeParkingSlots returns up to n unoccupied parking slots, in order.
func (a *Airport) FreeParkingSlots(n int) []*ParkingSlot {
	var free []*ParkingSlot
	for _, s := range a.ParkingSlots {
		if len(free) == n {
			break
		}
		if s.UnitID == 0 {
			free = append(free, s)
		}
	}
	return free
}

// RunwayData returns the pilot-facing description of each of the
// airport's runways.
func (a *Airport) RunwayData() []aviation.RunwayData {
	var rd []aviation.RunwayData
	for _, r := range a.Runways {
		rd = append(rd, aviation.RunwayData{
			AirfieldName: a.Name,
			RunwayName:   r.Name,
			ATC:          a.ATC,
			TACAN:        a.TACAN,
			ILS:          r.ILS,
		})
	}
	return rd
}

// Terrain holds the airports of the mission's map, keyed by name.
type Terrain struct {
	Name     string              `json:"name"`
	Airports map[string]*Airport `json:"airports"`
}

func (t *Terrain) Airport(name string) (*Airport, bool) {
	ap, ok := t.Airports[name]
	return ap, ok
}

// AirportByID returns the airport with the given identifier.
func (t *Terrain) AirportByID(id int) (*Airport, bool) {
	for _, ap := range t.Airports {
		if ap.ID == id {
			return ap, true
		}
	}
	return nil, false
}

// SortedAirports returns the airports ordered by name.
func (t *Terrain) SortedAirports() []*Airport {
	var ap []*Airport
	for _, a := range t.Airports {
		ap = append(ap, a)
	}
	slices.SortFunc(ap, func(a, b *Airport) int { return strings.Compare(a.Name, b.Name) })
	return ap
}
