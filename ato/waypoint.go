// ato/waypoint.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"

	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/theater"
)

// FlightWaypoint is a point in a flight plan. Positions are in mission
// coordinates (meters) and altitudes are in meters.
type FlightWaypoint struct {
	Type        WaypointType
	Name        string
	Description string
	Position    math.Point2
	Alt         float64
	AltType     AltitudeReference
	// Time over target in seconds after mission start; set while the
	// mission is generated and nil otherwise.
	TOT *int
	// Targets to attack from this waypoint (strike and SEAD ingress).
	Targets []theater.MissionTarget
	// Ground object whose group is attacked from a SEAD ingress point.
	TargetGroup *theater.TheaterGroundObject
	// Waypoints that are only generated for flights with a player.
	OnlyForPlayer bool
}

func (w *FlightWaypoint) String() string {
	s := fmt.Sprintf("%s %s %s alt %.0f", w.Type, w.Name, w.Position, w.Alt)
	if w.TOT != nil {
		s += fmt.Sprintf(" TOT %d", *w.TOT)
	}
	return s
}

// TargetPositions returns the positions of the waypoint's targets.
func (w *FlightWaypoint) TargetPositions() []math.Point2 {
	p := make([]math.Point2, len(w.Targets))
	for i, t := range w.Targets {
		p[i] = t.Position
	}
	return p
}

// FlightPlan is the ordered sequence of waypoints for a flight. The first
// waypoint is the departure point, which the mission creates along with
// the group.
type FlightPlan struct {
	Waypoints []*FlightWaypoint
}

// ResetTOTs clears the time over target of every waypoint so that a plan
// can be rebuilt.
func (fp *FlightPlan) ResetTOTs() {
	for _, wp := range fp.Waypoints {
		wp.TOT = nil
	}
}

// PackageWaypoints are the anchors shared by all flights in a package.
type PackageWaypoints struct {
	Join    math.Point2
	Ingress math.Point2
	Egress  math.Point2
	Split   math.Point2
}
