// airgen/waypoints.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/log"
	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/mission"
)

// Speed of waypoints that don't specify one, in km/h.
const defaultWaypointSpeed = 600

// waypointBuilder turns one flight plan waypoint into a point on the
// group's route, along with any tasks flown there.
type waypointBuilder struct {
	wp      *ato.FlightWaypoint
	group   *mission.FlyingGroup
	flight  *ato.Flight
	timing  *PackageWaypointTiming
	mission *mission.Mission
	fd      *FlightData
	metrics *Metrics
	lg      *log.Logger
}

var waypointBuilders = map[ato.WaypointType]func(*waypointBuilder) *mission.MovingPoint{
	ato.WaypointEgress:         (*waypointBuilder).buildEgress,
	ato.WaypointIngressCAS:     (*waypointBuilder).buildIngress,
	ato.WaypointIngressSEAD:    (*waypointBuilder).buildSEADIngress,
	ato.WaypointIngressStrike:  (*waypointBuilder).buildStrikeIngress,
	ato.WaypointJoin:           (*waypointBuilder).buildJoin,
	ato.WaypointLandingPoint:   (*waypointBuilder).buildLanding,
	ato.WaypointLoiter:         (*waypointBuilder).buildHold,
	ato.WaypointPatrolTrack:    (*waypointBuilder).buildRaceTrack,
	ato.WaypointSplit:          (*waypointBuilder).buildSplit,
	ato.WaypointTargetGroupLoc: (*waypointBuilder).buildTarget,
	ato.WaypointTargetPoint:    (*waypointBuilder).buildTarget,
	ato.WaypointTargetShip:     (*waypointBuilder).buildTarget,
}

func (b *waypointBuilder) build() *mission.MovingPoint {
	if fn, ok := waypointBuilders[b.wp.Type]; ok {
		return fn(b)
	}
	return b.buildDefault()
}

func (b *waypointBuilder) buildDefault() *mission.MovingPoint {
	pt := b.group.AddWaypoint(b.wp.Position, b.wp.Alt, defaultWaypointSpeed)
	if b.wp.AltType != "" {
		pt.AltType = string(b.wp.AltType)
	}
	pt.Name = b.wp.Name
	return pt
}

// setTOT records the scheduled time on both the flight plan and the
// route point, and has the AI fly whatever speed makes it.
func (b *waypointBuilder) setTOT(pt *mission.MovingPoint, tot int) {
	b.wp.TOT = &tot
	pt.ETA = tot
	pt.ETALocked = true
	pt.SpeedLocked = false
}

func (b *waypointBuilder) buildHold() *mission.MovingPoint {
	pt := b.buildDefault()
	loiter := mission.Orbit(mission.OrbitCircle, pt.Alt)
	loiter.StopAfter(b.timing.PushTime(b.flight, pt.Position))
	pt.AddTask(loiter)
	return pt
}

func (b *waypointBuilder) buildJoin() *mission.MovingPoint {
	pt := b.buildDefault()
	b.setTOT(pt, b.timing.Join)
	return pt
}

func (b *waypointBuilder) buildSplit() *mission.MovingPoint {
	pt := b.buildDefault()
	b.setTOT(pt, b.timing.Split)
	return pt
}

func (b *waypointBuilder) buildEgress() *mission.MovingPoint {
	pt := b.buildDefault()
	b.setTOT(pt, b.timing.Egress)
	return pt
}

func (b *waypointBuilder) buildTarget() *mission.MovingPoint {
	pt := b.buildDefault()
	b.setTOT(pt, b.timing.Target())
	return pt
}

func (b *waypointBuilder) buildIngress() *mission.MovingPoint {
	pt := b.buildDefault()
	b.setTOT(pt, b.timing.Ingress)
	return pt
}

func (b *waypointBuilder) buildSEADIngress() *mission.MovingPoint {
	pt := b.buildIngress()

	if tgo := b.wp.TargetGroup; tgo != nil {
		if tg := b.mission.FindGroup(tgo.GroupIdentifier); tg != nil {
			task := mission.AttackGroup(tg.ID)
			setAttackParams(task, mission.WeaponTypeGuided)
			pt.AddTask(task)
		} else {
			b.skipAttachment(tgo.GroupIdentifier)
		}
	}

	b.addNavTargets()
	return pt
}

func (b *waypointBuilder) buildStrikeIngress() *mission.MovingPoint {
	if ac := b.flight.UnitType(); ac != nil && ac.AreaBombing {
		return b.buildAreaBombingIngress()
	}

	pt := b.buildIngress()
	for _, t := range b.wp.Targets {
		pt.AddTask(mission.Bombing(t.Position.X(), t.Position.Y()))
	}
	b.addNavTargets()
	return pt
}

// Heavy bombers carpet the middle of the target area rather than
// picking out individual targets.
func (b *waypointBuilder) buildAreaBombingIngress() *mission.MovingPoint {
	pt := b.buildIngress()
	if len(b.wp.Targets) == 0 {
		return pt
	}

	center := math.Centroid2(b.wp.TargetPositions())
	bombing := mission.Bombing(center.X(), center.Y())
	setAttackParams(bombing, mission.WeaponTypeIronBombs)
	pt.AddTask(bombing)
	return pt
}

func setAttackParams(t *mission.Task, weaponType int) {
	t.SetParam("expend", "All")
	t.SetParam("attackQtyLimit", false)
	t.SetParam("directionEnabled", false)
	t.SetParam("altitudeEnabled", false)
	t.SetParam("weaponType", weaponType)
	t.SetParam("groupAttack", true)
}

func (b *waypointBuilder) skipAttachment(groupName string) {
	b.fd.SkippedAttachments++
	b.metrics.skippedAttachment()
	b.lg.Debug("attack target not in mission", "group", groupName, "flight", b.group.Name)
}

// addNavTargets loads the waypoint's targets into the aircraft's
// navigation system, up to the number of points it can store.
func (b *waypointBuilder) addNavTargets() {
	ac := b.flight.UnitType()
	if ac == nil || ac.NavTargets == nil {
		return
	}
	for i, t := range b.wp.Targets {
		if i >= ac.NavTargets.Limit {
			break
		}
		b.group.AddNavTargetPoint(t.Position, ac.NavTargets.Label(i))
	}
}

func (b *waypointBuilder) buildRaceTrack() *mission.MovingPoint {
	pt := b.buildDefault()
	racetrack := mission.Orbit(mission.OrbitRaceTrack, pt.Alt)
	if start, ok := b.timing.RaceTrackStart(); ok {
		b.setTOT(pt, start)
	}
	racetrack.StopAfter(b.timing.RaceTrackEnd())
	pt.AddTask(racetrack)
	return pt
}

func (b *waypointBuilder) buildLanding() *mission.MovingPoint {
	pt := b.buildDefault()
	pt.Type = mission.PointLand
	pt.Action = mission.ActionLanding
	return pt
}
