// theater/theater.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"fmt"
	"strings"

	"github.com/mmp/airgen/math"
)

// Coalition identifies one side of the conflict. The values match the
// coalition indices used in mission trigger conditions.
type Coalition int

const (
	Neutral Coalition = 0
	Red     Coalition = 1
	Blue    Coalition = 2
)

func (c Coalition) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "neutral"
	}
}

// Opponent returns the other side; Neutral has no opponent.
func (c Coalition) Opponent() Coalition {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	default:
		return Neutral
	}
}

func (c Coalition) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Coalition) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "red":
		*c = Red
	case "blue":
		*c = Blue
	case "neutral", "":
		*c = Neutral
	default:
		return fmt.Errorf("%s: %w", string(b), ErrUnknownCoalition)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////
// MissionTarget

// MissionTarget is anything a package can be tasked against: a control
// point, a ground object, or a point on a front line.
type MissionTarget struct {
	Name     string
	Position math.Point2
}

func (t MissionTarget) String() string { return t.Name }

// TheaterGroundObject is a target that corresponds to a group in the
// mission (a SAM site, a convoy, a ship group, ...).
type TheaterGroundObject struct {
	MissionTarget
	Category string
	// Name of the group that represents the object in the mission.
	GroupIdentifier string
}

///////////////////////////////////////////////////////////////////////////
// ControlPoint

type ControlPointType int

const (
	Airbase ControlPointType = iota
	AircraftCarrierGroup
	LHAGroup
	FOB
)

func (t ControlPointType) String() string {
	switch t {
	case Airbase:
		return "airbase"
	case AircraftCarrierGroup:
		return "carrier"
	case LHAGroup:
		return "lha"
	case FOB:
		return "fob"
	default:
		return fmt.Sprintf("ControlPointType(%d)", int(t))
	}
}

func (t ControlPointType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ControlPointType) UnmarshalText(b []byte) error {
	for _, ct := range []ControlPointType{Airbase, AircraftCarrierGroup, LHAGroup, FOB} {
		if ct.String() == strings.ToLower(string(b)) {
			*t = ct
			return nil
		}
	}
	return fmt.Errorf("%s: %w", string(b), ErrUnknownControlPointType)
}

// ControlPoint is an airfield, carrier group, or forward operating base
// that aircraft may depart from.
type ControlPoint struct {
	ID       int
	Name     string
	FullName string
	Type     ControlPointType
	Position math.Point2
	// Captured is true if the player's coalition holds the control point.
	Captured bool
	// Name of the mission terrain airport; only set for airbases.
	AirportName string
	// Name of the ship group aircraft are launched from; only set for
	// carrier and LHA control points.
	CarrierGroupName string
}

func (cp *ControlPoint) String() string { return cp.Name }

// IsFleet reports whether the control point is a ship.
func (cp *ControlPoint) IsFleet() bool {
	return cp.Type == AircraftCarrierGroup || cp.Type == LHAGroup
}

func (cp *ControlPoint) Target() MissionTarget {
	return MissionTarget{Name: cp.Name, Position: cp.Position}
}

///////////////////////////////////////////////////////////////////////////
// Theater

// Theater holds the control points of the campaign and the points
// around which activity is expected.
type Theater struct {
	ControlPoints []*ControlPoint
	Player        Coalition
	// Front lines, targets, and other areas of interest; AI flights far
	// from all of them are culled.
	CullingPoints []math.Point2
}

func (t *Theater) Enemy() Coalition { return t.Player.Opponent() }

// CoalitionFor returns the coalition that holds the given control point.
func (t *Theater) CoalitionFor(cp *ControlPoint) Coalition {
	if cp.Captured {
		return t.Player
	}
	return t.Enemy()
}

// ControlPoint returns the control point with the given ID.
func (t *Theater) ControlPoint(id int) (*ControlPoint, error) {
	for _, cp := range t.ControlPoints {
		if cp.ID == id {
			return cp, nil
		}
	}
	return nil, fmt.Errorf("%d: %w", id, ErrNoControlPoint)
}

// PositionCulled reports whether units at p are more than maxNM from
// every area of interest. Culling is disabled if maxNM is zero.
func (t *Theater) PositionCulled(p math.Point2, maxNM float64) bool {
	if maxNM <= 0 {
		return false
	}
	for _, cp := range t.CullingPoints {
		if math.NMDistance2(p, cp) <= maxNM {
			return false
		}
	}
	return true
}
