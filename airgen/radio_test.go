// airgen/radio_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"testing"

	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/mission"
)

var (
	departureATC = aviation.MHz(131)
	arrivalATC   = aviation.KHz(132500)
	divertATC    = aviation.MHz(133)
	intraFlight  = aviation.MHz(305)
	testSupport  = AirSupport{
		AWACS:   []SupportFlight{{Callsign: "Overlord", Freq: aviation.MHz(251)}},
		Tankers: []SupportFlight{{Callsign: "Texaco", Freq: aviation.MHz(252), TACAN: "51X"}},
	}
)

func makeClientFlightData(t *testing.T, acType string, clients int) *FlightData {
	ac, err := aviation.DB().Type(acType)
	if err != nil {
		t.Fatal(err)
	}
	g := &mission.FlyingGroup{Name: "Enfield 1"}
	for i := range 2 {
		u := &mission.FlyingUnit{Type: acType, Skill: mission.SkillAverage}
		if i < clients {
			u.SetClient()
		}
		g.Units = append(g.Units, u)
	}
	dep := aviation.RunwayData{AirfieldName: "Batumi", RunwayName: "13", ATC: &departureATC}
	return &FlightData{
		FlightType:         ato.Strike,
		AircraftType:       ac,
		Group:              g,
		Size:               len(g.Units),
		Departure:          dep,
		Arrival:            dep,
		IntraFlightChannel: intraFlight,
	}
}

func expectPreset(t *testing.T, fd *FlightData, radio, channel int, f aviation.Frequency) {
	t.Helper()
	for _, u := range fd.ClientUnits() {
		if mhz := u.RadioPresets[radio][channel]; mhz != f.MHz() {
			t.Errorf("radio %d channel %d: got %f, expected %s", radio, channel, mhz, f)
		}
	}
}

func TestCommonAllocatorSeparateRadios(t *testing.T) {
	// The F-14's intra-flight radio is radio 2; everything else goes on
	// radio 1.
	fd := makeClientFlightData(t, "F-14B", 1)
	AssignChannels(aviation.DB(), fd, testSupport)

	expectPreset(t, fd, 2, 1, intraFlight)
	expectPreset(t, fd, 1, 1, departureATC)
	expectPreset(t, fd, 1, 2, aviation.MHz(251))
	expectPreset(t, fd, 1, 3, aviation.MHz(252))
	if n := len(fd.ClientUnits()[0].RadioPresets[1]); n != 3 {
		t.Errorf("expected 3 presets on radio 1, got %d", n)
	}
	// AI aircraft aren't touched.
	if fd.Group.Units[1].RadioPresets != nil {
		t.Errorf("AI unit got presets")
	}

	if ch, ok := fd.ChannelFor(aviation.MHz(251)); !ok || ch.RadioID != 1 || ch.Channel != 2 {
		t.Errorf("AWACS channel: got %v/%v", ch, ok)
	}
}

func TestCommonAllocatorSharedRadio(t *testing.T) {
	// The JF-17 has one radio; inter-flight channels start after the
	// intra-flight channel.
	fd := makeClientFlightData(t, "JF-17", 2)
	arrival := aviation.RunwayData{AirfieldName: "Kobuleti", ATC: &arrivalATC}
	fd.Arrival = arrival
	fd.Divert = &aviation.RunwayData{AirfieldName: "Senaki", ATC: &divertATC}
	AssignChannels(aviation.DB(), fd, testSupport)

	expectPreset(t, fd, 1, 1, intraFlight)
	expectPreset(t, fd, 1, 2, departureATC)
	expectPreset(t, fd, 1, 3, aviation.MHz(251))
	expectPreset(t, fd, 1, 4, arrivalATC)
	expectPreset(t, fd, 1, 5, aviation.MHz(252))
	expectPreset(t, fd, 1, 6, divertATC)
}

func TestCommonAllocatorRunsOutOfChannels(t *testing.T) {
	// The P-51's SCR522 has four buttons.
	fd := makeClientFlightData(t, "P-51D", 1)
	support := AirSupport{AWACS: []SupportFlight{
		{Callsign: "Magic", Freq: aviation.MHz(140)},
		{Callsign: "Darkstar", Freq: aviation.MHz(141)},
		{Callsign: "Wizard", Freq: aviation.MHz(142)},
	}}
	AssignChannels(aviation.DB(), fd, support)

	presets := fd.ClientUnits()[0].RadioPresets[1]
	if len(presets) != 4 {
		t.Errorf("expected 4 presets, got %v", presets)
	}
	expectPreset(t, fd, 1, 4, aviation.MHz(141))
	if _, ok := fd.ChannelFor(aviation.MHz(142)); ok {
		t.Errorf("Wizard should not have a channel")
	}
}

func TestFirstChannelAssignmentWins(t *testing.T) {
	fd := makeClientFlightData(t, "F-14B", 1)
	// AWACS on the departure frequency.
	support := AirSupport{AWACS: []SupportFlight{{Callsign: "Overlord", Freq: departureATC}}}
	AssignChannels(aviation.DB(), fd, support)

	if ch, ok := fd.ChannelFor(departureATC); !ok || ch.Channel != 1 {
		t.Errorf("got %v/%v, expected channel 1", ch, ok)
	}
	// The preset itself is still written.
	expectPreset(t, fd, 1, 2, departureATC)
}

func TestFixedSlotAllocators(t *testing.T) {
	for _, tc := range []struct {
		acType   string
		channels [3]int
	}{
		{"AJS37", [3]int{1, 4, 5}},
		{"SpitfireLFMkIX", [3]int{1, 2, 3}},
	} {
		fd := makeClientFlightData(t, tc.acType, 1)
		fd.Arrival = aviation.RunwayData{AirfieldName: "Kobuleti", ATC: &arrivalATC}
		AssignChannels(aviation.DB(), fd, testSupport)

		expectPreset(t, fd, 1, tc.channels[0], intraFlight)
		expectPreset(t, fd, 1, tc.channels[1], departureATC)
		expectPreset(t, fd, 1, tc.channels[2], arrivalATC)
		if n := len(fd.ClientUnits()[0].RadioPresets[1]); n != 3 {
			t.Errorf("%s: expected 3 presets, got %d", tc.acType, n)
		}
	}
}

func TestWarthogAllocator(t *testing.T) {
	fd := makeClientFlightData(t, "A-10C", 1)
	AssignChannels(aviation.DB(), fd, testSupport)
	if fd.ClientUnits()[0].RadioPresets != nil || fd.FrequencyToChannel != nil {
		t.Errorf("A-10C presets should be left alone")
	}
}

func TestNoAllocator(t *testing.T) {
	fd := makeClientFlightData(t, "Su-25T", 1)
	AssignChannels(aviation.DB(), fd, testSupport)
	if fd.ClientUnits()[0].RadioPresets != nil {
		t.Errorf("aircraft without radio data got presets")
	}
}

func TestAssignChannelsForClients(t *testing.T) {
	w := makeTestWorld(t, 4, DefaultSettings())
	ai := makeFlight(t, w.batumi, "F-14B", ato.Strike, ato.StartCold, 2, 0)
	player := makeFlight(t, w.batumi, "F-14B", ato.Strike, ato.StartCold, 2, 1)
	pkg := makeTestPackage(3600, ai, player)
	ai.Plan = strikePlan(pkg, ai, ato.WaypointIngressStrike)
	player.Plan = strikePlan(pkg, player, ato.WaypointIngressStrike)
	if err := w.gen.GenerateFlights("USA", &ato.AirTaskingOrder{Packages: []*ato.Package{pkg}}, nil); err != nil {
		t.Fatal(err)
	}

	w.gen.AssignChannelsForClients(testSupport)
	if w.gen.Flights[0].FrequencyToChannel != nil {
		t.Errorf("AI flight got channels")
	}
	fd := w.gen.Flights[1]
	expectPreset(t, fd, 2, 1, fd.IntraFlightChannel)
	expectPreset(t, fd, 1, 1, batumiATC)
	// Each flight has its own intra-flight frequency.
	if fd.IntraFlightChannel == w.gen.Flights[0].IntraFlightChannel {
		t.Errorf("flights share intra-flight frequency %s", fd.IntraFlightChannel)
	}
}
