// airgen/triggers.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"fmt"

	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/mission"
	"github.com/mmp/airgen/theater"
)

const (
	interceptTriggerZoneRadius = 25000 // meters
	interceptMessageSeconds    = 20
)

// setupGroupActivationTrigger holds back AI flights that are scheduled
// to depart after mission start. Groups on the ground at an airfield are
// spawned uncontrolled and started by the trigger; all others are late
// activated. Flights with players are never held back.
func (g *AircraftConflictGenerator) setupGroupActivationTrigger(f *ato.Flight, group *mission.FlyingGroup,
	fd *FlightData) {
	fd.Activation = ActivationActive
	if f.ScheduledIn <= 0 || f.ClientCount() > 0 {
		return
	}

	cp := f.Departure()
	var trigger *mission.Trigger
	if f.Start != ato.StartInFlight && !cp.IsFleet() {
		group.LateActivation = false
		group.Uncontrolled = true

		trigger = mission.NewTriggerOnce(mission.EventNoEvent, fmt.Sprintf("FlightStartTrigger%d", group.ID))
		g.addActivationConditions(trigger, f)
		index := group.AddTriggerAction(mission.StartCommand())
		trigger.AddAction(mission.AITaskPush(group.ID, index))
		fd.ActivationMethod = ActivationUncontrolled
	} else {
		group.LateActivation = true

		trigger = mission.NewTriggerOnce(mission.EventNoEvent, fmt.Sprintf("FlightLateActivationTrigger%d", group.ID))
		g.addActivationConditions(trigger, f)
		trigger.AddAction(mission.ActivateGroup(group.ID))
		fd.ActivationMethod = ActivationLate
	}

	g.Mission.AddTrigger(trigger)
	fd.Activation = ActivationScheduled
	fd.ActivationTrigger = trigger.Name
	g.lg.Debug("scheduled flight", "group", group.Name, "trigger", trigger.Name,
		"method", fd.ActivationMethod.String())
}

// addActivationConditions fires the trigger once the flight's departure
// time has passed, provided its airfield is still held by the same side.
// Interceptors additionally wait for enemy aircraft to come close.
func (g *AircraftConflictGenerator) addActivationConditions(trigger *mission.Trigger, f *ato.Flight) {
	cp := f.Departure()
	trigger.AddCondition(mission.TimeAfter(f.ScheduledIn * 60))

	if cp.Type == theater.Airbase {
		trigger.AddCondition(mission.CoalitionHasAirdrome(int(g.Theater.CoalitionFor(cp)), g.airdromeID(cp)))
	}

	if f.Type == ato.Interception {
		g.addInterceptTriggerConditions(trigger, cp)
	}
}

func (g *AircraftConflictGenerator) addInterceptTriggerConditions(trigger *mission.Trigger, cp *theater.ControlPoint) {
	zone := g.Mission.AddTriggerZone(cp.Position, interceptTriggerZoneRadius, false, "ITZ")

	if cp.Captured {
		trigger.AddCondition(mission.PartOfCoalitionInZone(g.Theater.Enemy().String(), zone.ID))
		trigger.AddAction(mission.MessageToAll("WARNING : Enemy aircraft have been detected in the vicinity of "+
			cp.Name+". Interceptors are taking off.", interceptMessageSeconds))
	} else {
		trigger.AddCondition(mission.PartOfCoalitionInZone(g.Theater.Player.String(), zone.ID))
		trigger.AddAction(mission.MessageToAll("WARNING : We have detected that enemy aircraft are scrambling "+
			"for an interception on "+cp.Name+" airbase.", interceptMessageSeconds))
	}
}

// airdromeID returns the mission identifier of a control point's
// airport, or the control point's own ID if the terrain doesn't have it.
func (g *AircraftConflictGenerator) airdromeID(cp *theater.ControlPoint) int {
	if ap, ok := g.Mission.Terrain.Airport(cp.AirportName); ok {
		return ap.ID
	}
	return cp.ID
}
