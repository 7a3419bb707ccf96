// airgen/timing.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"fmt"

	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/math"
)

// Travel times are inflated by this factor to give flights some slack.
const travelTimeErrorFactor = 1.1

// TravelTime returns the number of seconds needed to fly from a to b at
// the given ground speed in knots.
func TravelTime(a, b math.Point2, speedKnots int) int {
	hours := math.NMDistance2(a, b) / float64(speedKnots)
	return int(hours * 3600 * travelTimeErrorFactor)
}

// PackageWaypointTiming holds the times, in seconds after mission start,
// that a package reaches each of its shared waypoints. All flights in
// the package are scheduled against the same times.
type PackageWaypointTiming struct {
	Package *ato.Package

	Join    int
	Ingress int
	Egress  int
	Split   int

	settings Settings
}

// TimingForPackage schedules a package backward and forward from its time
// over target, at the ground speed of its slowest flight.
func TimingForPackage(pkg *ato.Package, settings Settings) (*PackageWaypointTiming, error) {
	if pkg.TimeOverTarget == nil {
		return nil, fmt.Errorf("%s: %w", pkg.Target, ErrNoTimeOverTarget)
	}
	if pkg.Waypoints == nil {
		return nil, fmt.Errorf("%s: %w", pkg.Target, ErrNoPackageWaypoints)
	}
	if len(pkg.Flights) == 0 {
		return nil, fmt.Errorf("%s: %w", pkg.Target, ErrEmptyPackage)
	}

	t := &PackageWaypointTiming{Package: pkg, settings: settings}
	speed := t.packageGroundSpeed()
	tot, wp := *pkg.TimeOverTarget, pkg.Waypoints

	t.Ingress = tot - TravelTime(wp.Ingress, pkg.Target.Position, speed)
	t.Join = t.Ingress - TravelTime(wp.Join, wp.Ingress, speed)
	t.Egress = tot + TravelTime(pkg.Target.Position, wp.Egress, speed)
	t.Split = t.Egress + TravelTime(wp.Egress, wp.Split, speed)
	return t, nil
}

// Target returns the package's time over target.
func (t *PackageWaypointTiming) Target() int {
	return *t.Package.TimeOverTarget
}

func (t *PackageWaypointTiming) isCAP() bool {
	task, ok := t.Package.PrimaryTask()
	return ok && task.IsCAP()
}

// RaceTrackStart returns the time a patrol flight should arrive on
// station. CAP flights have none; they go to station as soon as they
// can.
func (t *PackageWaypointTiming) RaceTrackStart() (int, bool) {
	if t.isCAP() {
		return 0, false
	}
	return t.Ingress, true
}

// RaceTrackEnd returns the time a patrol flight leaves station.
func (t *PackageWaypointTiming) RaceTrackEnd() int {
	if t.isCAP() {
		return t.Target() + t.settings.capDuration()*60
	}
	return t.Egress
}

// PushTime returns the time a flight holding at the given point must
// leave it to make the join time.
func (t *PackageWaypointTiming) PushTime(f *ato.Flight, hold math.Point2) int {
	return t.Join - TravelTime(hold, t.Package.Waypoints.Join, t.flightGroundSpeed(f))
}

// TOTForWaypoint returns the time the package should reach a waypoint of
// the given type, if it is scheduled.
func (t *PackageWaypointTiming) TOTForWaypoint(wp *ato.FlightWaypoint) (int, bool) {
	switch wp.Type {
	case ato.WaypointJoin:
		return t.Join, true
	case ato.WaypointIngressCAS, ato.WaypointIngressSEAD, ato.WaypointIngressStrike:
		return t.Ingress, true
	case ato.WaypointTargetGroupLoc, ato.WaypointTargetPoint, ato.WaypointTargetShip:
		return t.Target(), true
	case ato.WaypointEgress:
		return t.Egress, true
	case ato.WaypointSplit:
		return t.Split, true
	case ato.WaypointPatrolTrack:
		return t.RaceTrackStart()
	default:
		return 0, false
	}
}

// DepartTimeForWaypoint returns the time a flight should leave a waypoint
// where it waits: a hold point or the end of a patrol.
func (t *PackageWaypointTiming) DepartTimeForWaypoint(wp *ato.FlightWaypoint, f *ato.Flight) (int, bool) {
	switch wp.Type {
	case ato.WaypointLoiter:
		return t.PushTime(f, wp.Position), true
	case ato.WaypointPatrol:
		return t.RaceTrackEnd(), true
	default:
		return 0, false
	}
}

func (t *PackageWaypointTiming) packageGroundSpeed() int {
	speed := t.flightGroundSpeed(t.Package.Flights[0])
	for _, f := range t.Package.Flights[1:] {
		speed = math.Min(speed, t.flightGroundSpeed(f))
	}
	return speed
}

// flightGroundSpeed returns the speed in knots a flight is assumed to
// cruise at.
func (t *PackageWaypointTiming) flightGroundSpeed(f *ato.Flight) int {
	if ac := f.UnitType(); ac != nil && ac.CruiseSpeedKnots > 0 {
		return ac.CruiseSpeedKnots
	}
	return t.settings.cruiseSpeed()
}
