// airgen/radio.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"github.com/mmp/airgen/aviation"
)

// SupportFlight is an AWACS or tanker whose frequency players will want
// in a preset.
type SupportFlight struct {
	Callsign string             `json:"callsign"`
	Freq     aviation.Frequency `json:"freq"`
	TACAN    string             `json:"tacan,omitempty"`
}

// AirSupport lists the support flights of the player's coalition.
type AirSupport struct {
	AWACS   []SupportFlight `json:"awacs"`
	Tankers []SupportFlight `json:"tankers"`
}

// channelAllocator fills in the radio presets of a flight with client
// aircraft.
type channelAllocator func(fd *FlightData, spec *aviation.AllocatorSpec, support AirSupport)

var channelAllocators = map[aviation.AllocatorKind]channelAllocator{
	aviation.AllocatorCommon:  assignCommonChannels,
	aviation.AllocatorWarthog: func(*FlightData, *aviation.AllocatorSpec, AirSupport) {},
	aviation.AllocatorViggen:  assignViggenChannels,
	aviation.AllocatorSCR522:  assignSCR522Channels,
}

// AssignChannels sets up the radio presets of a flight according to its
// airframe's allocation policy. Airframes without one are left alone.
func AssignChannels(reg *aviation.Registry, fd *FlightData, support AirSupport) {
	ad, ok := reg.RadioData(fd.AircraftType.ID)
	if !ok || ad.Allocator == nil {
		return
	}
	if alloc, ok := channelAllocators[ad.Allocator.Kind]; ok {
		alloc(fd, ad.Allocator, support)
	}
}

// assignCommonChannels puts the intra-flight frequency in channel 1 of
// its radio and then fills the inter-flight radio with departure ATC,
// AWACS, arrival ATC, tankers, and divert ATC, in that order, until it
// runs out of channels.
func assignCommonChannels(fd *FlightData, spec *aviation.AllocatorSpec, support AirSupport) {
	if spec.IntraFlightRadio != nil {
		fd.AssignChannel(*spec.IntraFlightRadio, 1, fd.IntraFlightChannel)
	}
	if spec.InterFlightRadio == nil {
		return
	}

	radioID := *spec.InterFlightRadio
	channel := 1
	if spec.IntraFlightRadio != nil && *spec.IntraFlightRadio == radioID {
		channel = 2
	}
	last := fd.NumRadioChannels(radioID)

	for _, f := range interFlightFrequencies(fd, support) {
		if channel > last {
			return
		}
		fd.AssignChannel(radioID, channel, f)
		channel++
	}
}

func interFlightFrequencies(fd *FlightData, support AirSupport) []aviation.Frequency {
	var freqs []aviation.Frequency
	if fd.Departure.ATC != nil {
		freqs = append(freqs, *fd.Departure.ATC)
	}
	for _, awacs := range support.AWACS {
		freqs = append(freqs, awacs.Freq)
	}
	if !fd.Arrival.Equal(fd.Departure) && fd.Arrival.ATC != nil {
		freqs = append(freqs, *fd.Arrival.ATC)
	}
	for _, tanker := range support.Tankers {
		freqs = append(freqs, tanker.Freq)
	}
	if fd.Divert != nil && fd.Divert.ATC != nil {
		freqs = append(freqs, *fd.Divert.ATC)
	}
	return freqs
}

// The FR 22 has fixed slots for flight and tower frequencies.
func assignViggenChannels(fd *FlightData, _ *aviation.AllocatorSpec, _ AirSupport) {
	const radioID = 1
	fd.AssignChannel(radioID, 1, fd.IntraFlightChannel)
	if fd.Departure.ATC != nil {
		fd.AssignChannel(radioID, 4, *fd.Departure.ATC)
	}
	if fd.Arrival.ATC != nil {
		fd.AssignChannel(radioID, 5, *fd.Arrival.ATC)
	}
}

func assignSCR522Channels(fd *FlightData, _ *aviation.AllocatorSpec, _ AirSupport) {
	const radioID = 1
	fd.AssignChannel(radioID, 1, fd.IntraFlightChannel)
	if fd.Departure.ATC != nil {
		fd.AssignChannel(radioID, 2, *fd.Departure.ATC)
	}
	if fd.Arrival.ATC != nil {
		fd.AssignChannel(radioID, 3, *fd.Arrival.ATC)
	}
}
