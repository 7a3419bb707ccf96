// airgen/flightdata.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"fmt"

	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/mission"
	"github.com/mmp/airgen/theater"
)

// ActivationState tracks when a generated group comes to life.
type ActivationState int

const (
	// The group exists in the mission but has not been scheduled.
	ActivationInactive ActivationState = iota
	// A trigger will activate or start the group.
	ActivationScheduled
	// The group is active from mission start.
	ActivationActive
)

func (s ActivationState) String() string {
	return [...]string{"inactive", "scheduled", "active"}[s]
}

// ActivationMethod says how a scheduled group is held back until its
// trigger fires.
type ActivationMethod int

const (
	ActivationImmediate ActivationMethod = iota
	// The group does not exist until the trigger activates it.
	ActivationLate
	// The group sits in parking, engines off, until started.
	ActivationUncontrolled
)

func (m ActivationMethod) String() string {
	return [...]string{"immediate", "late activation", "uncontrolled"}[m]
}

// FlightData is the briefing record of a generated flight: everything
// the kneeboard and radio setup need after the mission is built.
type FlightData struct {
	FlightType   ato.FlightType
	AircraftType *aviation.AircraftType
	Group        *mission.FlyingGroup
	Size         int
	// True if the flight belongs to the player's coalition.
	Friendly bool
	// Seconds after mission start before the flight departs.
	DepartureDelay int
	Departure      aviation.RunwayData
	Arrival        aviation.RunwayData
	Divert         *aviation.RunwayData
	// Copy of the flight plan as generated; later edits to the plan do
	// not show up here.
	Waypoints          []*ato.FlightWaypoint
	IntraFlightChannel aviation.Frequency
	// The first channel a frequency was assigned to.
	FrequencyToChannel map[aviation.Frequency]aviation.ChannelAssignment
	Callsign           string
	TargetPoint        *theater.MissionTarget
	StartType          ato.StartType

	Activation        ActivationState
	ActivationMethod  ActivationMethod
	ActivationTrigger string

	// Attack tasks that were dropped because their target group was not
	// in the mission.
	SkippedAttachments int
}

func (fd *FlightData) String() string {
	return fmt.Sprintf("%s %s %d x %s", fd.Callsign, fd.FlightType, fd.Size, fd.AircraftType)
}

// Units returns the aircraft of the flight.
func (fd *FlightData) Units() []*mission.FlyingUnit {
	if fd.Group == nil {
		return nil
	}
	return fd.Group.Units
}

// ClientUnits returns the aircraft flown by people.
func (fd *FlightData) ClientUnits() []*mission.FlyingUnit {
	if fd.Group == nil {
		return nil
	}
	return fd.Group.HumanUnits()
}

// NumRadioChannels returns the number of presets on the given radio of
// the flight's aircraft.
func (fd *FlightData) NumRadioChannels(radioID int) int {
	return fd.AircraftType.NumRadioChannels(radioID)
}

// AssignChannel stores a frequency in a preset on every client aircraft
// of the flight. If the frequency has been assigned before, the briefing
// keeps pointing at the first channel.
func (fd *FlightData) AssignChannel(radioID, channel int, f aviation.Frequency) {
	for _, u := range fd.ClientUnits() {
		u.SetRadioPreset(radioID, channel, f.MHz())
	}

	if fd.FrequencyToChannel == nil {
		fd.FrequencyToChannel = make(map[aviation.Frequency]aviation.ChannelAssignment)
	}
	if _, ok := fd.FrequencyToChannel[f]; !ok {
		fd.FrequencyToChannel[f] = aviation.ChannelAssignment{RadioID: radioID, Channel: channel}
	}
}

// ChannelFor returns the preset a frequency was assigned to.
func (fd *FlightData) ChannelFor(f aviation.Frequency) (aviation.ChannelAssignment, bool) {
	ch, ok := fd.FrequencyToChannel[f]
	return ch, ok
}
