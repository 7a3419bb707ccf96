// mission/mission.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package mission holds the mission document that generation writes
// into: flying groups with their routes and tasks, the ground and ship
// groups they interact with, and the triggers that activate them.
package mission

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/util"
)

// StartType gives the state aircraft are in when a group placed on the
// ground spawns.
type StartType int

const (
	StartCold StartType = iota
	StartWarm
	StartRunway
)

func (s StartType) String() string {
	return [...]string{"cold", "warm", "runway"}[s]
}

func (s StartType) point() (typ, action string) {
	switch s {
	case StartCold:
		return PointTakeOffParking, ActionFromParking
	case StartWarm:
		return PointTakeOffParkingHot, ActionFromParkingHot
	default:
		return PointTakeOff, ActionFromRunway
	}
}

// Placement is the result of trying to put a group on the ground: either
// the group was placed or there was no room for it, in which case Reason
// says why.
type Placement struct {
	Group  *FlyingGroup
	Reason error
}

func (p Placement) Placed() bool { return p.Group != nil }

func placed(g *FlyingGroup) Placement { return Placement{Group: g} }

func noCapacity(err error) Placement { return Placement{Reason: err} }

///////////////////////////////////////////////////////////////////////////
// Mission

// Mission is the mission document under construction. It is owned by a
// single generation pass and is not safe for concurrent use.
type Mission struct {
	Terrain      *Terrain       `json:"terrain"`
	FlyingGroups []*FlyingGroup `json:"flying_groups"`
	Groups       []*Group       `json:"groups"`
	Triggers     []*Trigger     `json:"triggers"`
	Zones        []*TriggerZone `json:"zones"`

	LastGroupID int `json:"-"`
	LastUnitID  int `json:"-"`
	LastZoneID  int `json:"-"`
}

func New(t *Terrain) *Mission {
	if t == nil {
		t = &Terrain{}
	}
	return &Mission{Terrain: t}
}

func (m *Mission) nextGroupID() int {
	m.LastGroupID++
	return m.LastGroupID
}

func (m *Mission) nextUnitID() int {
	m.LastUnitID++
	return m.LastUnitID
}

// AddGroup adds a ground or ship group to the mission, assigning IDs to
// it and its units.
func (m *Mission) AddGroup(g *Group) *Group {
	g.ID = m.nextGroupID()
	for _, u := range g.Units {
		u.ID = m.nextUnitID()
	}
	m.Groups = append(m.Groups, g)
	return g
}

// FindGroup returns the ground or ship group with the given name, or nil.
func (m *Mission) FindGroup(name string) *Group {
	for _, g := range m.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FlyingGroup returns the flying group with the given ID, or nil.
func (m *Mission) FlyingGroup(id int) *FlyingGroup {
	for _, g := range m.FlyingGroups {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// ClearParkingSlots frees every parking spot and carrier deck.
func (m *Mission) ClearParkingSlots() {
	for _, ap := range m.Terrain.Airports {
		for _, s := range ap.ParkingSlots {
			s.UnitID = 0
		}
	}
	for _, g := range m.Groups {
		g.DeckUsed = 0
	}
}

func (m *Mission) newFlyingGroup(country, name, acType string, size int) *FlyingGroup {
	g := &FlyingGroup{
		ID:      m.nextGroupID(),
		Name:    name,
		Country: country,
	}
	for i := range size {
		g.Units = append(g.Units, &FlyingUnit{
			ID:    m.nextUnitID(),
			Name:  fmt.Sprintf("%s-%d", name, i+1),
			Type:  acType,
			Skill: SkillAverage,
		})
	}
	m.FlyingGroups = append(m.FlyingGroups, g)
	return g
}

// FlightGroupFromAirport places a group at an airport, either in parking
// spots or on the runway.
func (m *Mission) FlightGroupFromAirport(country, name, acType string, ap *Airport, start StartType,
	size int) Placement {
	var slots []*ParkingSlot
	if start == StartRunway {
		if len(ap.Runways) == 0 {
			return noCapacity(fmt.Errorf("%s: %w", ap.Name, ErrNoRunway))
		}
	} else {
		slots = ap.FreeParkingSlots(size)
		if len(slots) < size {
			return noCapacity(fmt.Errorf("%s: %d of %d spots free: %w", ap.Name, len(slots), size,
				ErrNoParkingSlot))
		}
	}

	g := m.newFlyingGroup(country, name, acType, size)
	for i, u := range g.Units {
		u.Position = ap.Position
		if slots != nil {
			u.Parking = slots[i].ID
			u.Position = slots[i].Position
			slots[i].UnitID = u.ID
		}
	}

	typ, action := start.point()
	g.Points = append(g.Points, &MovingPoint{
		Type:       typ,
		Action:     action,
		Position:   ap.Position,
		AltType:    AltBaro,
		AirdromeID: ap.ID,
	})
	return placed(g)
}

// FlightGroupFromUnit places a group on the deck of a ship.
func (m *Mission) FlightGroupFromUnit(country, name, acType string, pad *Group, start StartType,
	size int) Placement {
	if !pad.Ship || pad.DeckCapacity-pad.DeckUsed < size {
		return noCapacity(fmt.Errorf("%s: %w", pad.Name, ErrDeckFull))
	}
	pad.DeckUsed += size

	g := m.newFlyingGroup(country, name, acType, size)
	for _, u := range g.Units {
		u.Position = pad.Position
	}

	typ, action := start.point()
	pt := &MovingPoint{
		Type:     typ,
		Action:   action,
		Position: pad.Position,
		AltType:  AltBaro,
	}
	if len(pad.Units) > 0 {
		pt.LinkUnit = pad.Units[0].ID
	}
	g.Points = append(g.Points, pt)
	return placed(g)
}

// FlightGroupInflight creates a group that spawns airborne at p; alt is
// in meters and speed in km/h. Aircraft trail the lead 200m apart.
func (m *Mission) FlightGroupInflight(country, name, acType string, p math.Point2, alt, speed float64,
	size int) *FlyingGroup {
	g := m.newFlyingGroup(country, name, acType, size)
	for i, u := range g.Units {
		u.Position = math.Point2{p.X() - float64(200*i), p.Y()}
		u.Alt = alt
		u.Speed = speed
	}
	g.AddWaypoint(p, alt, speed)
	return g
}

///////////////////////////////////////////////////////////////////////////
// Triggers

func (m *Mission) AddTrigger(t *Trigger) {
	m.Triggers = append(m.Triggers, t)
}

func (m *Mission) AddTriggerZone(p math.Point2, radius float64, hidden bool, name string) *TriggerZone {
	m.LastZoneID++
	z := &TriggerZone{
		ID:       m.LastZoneID,
		Name:     name,
		Position: p,
		Radius:   radius,
		Hidden:   hidden,
	}
	m.Zones = append(m.Zones, z)
	return z
}

///////////////////////////////////////////////////////////////////////////
// Persistence

// Save writes the mission as zstd-compressed msgpack.
func (m *Mission) Save(w io.Writer) error {
	return util.EncodeObject(w, m)
}

func Load(r io.Reader) (*Mission, error) {
	var m Mission
	if err := util.DecodeObject(r, &m); err != nil {
		return nil, err
	}
	if m.Terrain == nil {
		m.Terrain = &Terrain{}
	}
	return &m, nil
}

// WriteJSON writes a human-readable export of the mission.
func (m *Mission) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
