// aviation/aviation_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
	"testing"
)

func TestFrequency(t *testing.T) {
	for _, tc := range []struct {
		f    Frequency
		want string
	}{
		{MHz(251), "251.000"},
		{KHz(121500), "121.500"},
		{MHz(40), "040.000"},
		{NewFrequency(127.5), "127.500"},
		{NewFrequency(305.125), "305.125"},
	} {
		if tc.f.String() != tc.want {
			t.Errorf("%d: got %q, expected %q", int(tc.f), tc.f.String(), tc.want)
		}
	}

	if MHz(251).MHz() != 251 {
		t.Errorf("MHz(): got %f, expected 251", MHz(251).MHz())
	}
}

func TestRadioTunes(t *testing.T) {
	r, err := GetRadio("AN/ARC-164")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Tunes(MHz(251)) {
		t.Errorf("AN/ARC-164 should tune 251.000")
	}
	if r.Tunes(MHz(118)) {
		t.Errorf("AN/ARC-164 should not tune 118.000")
	}
	if r.Tunes(KHz(251010)) {
		t.Errorf("AN/ARC-164 should not tune off-step 251.010")
	}

	if _, err := GetRadio("PRC-77"); !errors.Is(err, ErrUnknownRadio) {
		t.Errorf("expected ErrUnknownRadio, got %v", err)
	}
}

func TestRadioRegistry(t *testing.T) {
	reg := NewRadioRegistry()
	if !reg.IsAllocated(MHz(243)) || !reg.IsAllocated(KHz(121500)) {
		t.Errorf("guard frequencies should be reserved")
	}

	radio := Radio{
		Name:   "test",
		Ranges: []FrequencyRange{{Min: MHz(40), Max: KHz(40050), Step: KHz(25)}},
	}
	var got []Frequency
	for range 3 {
		f, err := reg.AllocForRadio(radio)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, f)
	}
	want := []Frequency{KHz(40000), KHz(40025), KHz(40050)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("allocation %d: got %s, expected %s", i, got[i], want[i])
		}
	}

	if _, err := reg.AllocForRadio(radio); !errors.Is(err, ErrRadioExhausted) {
		t.Errorf("expected ErrRadioExhausted, got %v", err)
	}

	// The guard frequency is skipped.
	guard := Radio{Name: "guard", Ranges: []FrequencyRange{{Min: KHz(121500), Max: KHz(121525), Step: KHz(25)}}}
	if f, err := reg.AllocForRadio(guard); err != nil || f != KHz(121525) {
		t.Errorf("got %s/%v, expected 121.525", f, err)
	}

	alloc := reg.Allocated()
	for i := 1; i < len(alloc); i++ {
		if alloc[i-1] >= alloc[i] {
			t.Errorf("Allocated() not sorted: %v", alloc)
		}
	}
}

func TestFallbackChannel(t *testing.T) {
	db := DB()
	for _, tc := range []struct {
		id   string
		want Frequency
	}{
		{"Ka-50", MHz(127)},
		{"Mi-8MT", MHz(127)},
		{"UH-1H", MHz(251)},
		{"Bf-109K-4", MHz(40)},
		{"P-51D", MHz(124)},
		{"SpitfireLFMkIX", MHz(124)},
		{"B-17G", MHz(251)},
		{"F-15C", MHz(251)},
	} {
		ac, err := db.Type(tc.id)
		if err != nil {
			t.Errorf("%s: %v", tc.id, err)
			continue
		}
		if f := ac.FallbackChannel(); f != tc.want {
			t.Errorf("%s: got %s, expected %s", tc.id, f, tc.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	db := DB()

	if _, err := db.Type("X-Wing"); !errors.Is(err, ErrUnknownAircraft) {
		t.Errorf("expected ErrUnknownAircraft, got %v", err)
	}

	p51, ok := db.RadioData("P-51D")
	if !ok {
		t.Fatalf("P-51D should have radio data")
	}
	for _, alias := range []string{"P-51D-30-NA", "P-47D-30"} {
		if ad, ok := db.RadioData(alias); !ok || ad != p51 {
			t.Errorf("%s should alias the P-51D radio data", alias)
		}
	}

	if _, ok := db.RadioData("Su-33"); ok {
		t.Errorf("Su-33 should not have radio data")
	}

	hornet, ok := db.RadioData("FA-18C_hornet")
	if !ok {
		t.Fatalf("FA-18C_hornet should have radio data")
	}
	if a := hornet.Allocator; a == nil || a.Kind != AllocatorCommon || *a.InterFlightRadio != 2 || *a.IntraFlightRadio != 1 {
		t.Errorf("unexpected hornet allocator %+v", a)
	}

	a10, _ := db.RadioData("A-10C")
	if a10 == nil || a10.Allocator.Kind != AllocatorWarthog {
		t.Errorf("A-10C should use the warthog allocator")
	}

	if ids := db.TypeIDs(); len(ids) == 0 || ids[0] > ids[len(ids)-1] {
		t.Errorf("unexpected type IDs %v", ids)
	}
}

func TestLoadRegistryErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		json string
	}{
		{"misspelled", `{"aircraft": [{"id": "F-5E", "helicoptr": true}]}`},
		{"unknown radio", `{"aircraft": [{"id": "F-5E", "radio": {"inter_flight_radio": "ARC-999", "intra_flight_radio": "AN/ARC-164"}}]}`},
		{"bad allocator", `{"aircraft": [{"id": "F-5E", "radio": {"inter_flight_radio": "AN/ARC-164", "intra_flight_radio": "AN/ARC-164", "allocator": {"kind": "bogus"}}}]}`},
		{"bad index", `{"aircraft": [{"id": "F-5E", "panel_radios": [{"name": "AN/ARC-164", "channels": 20}],
             "radio": {"inter_flight_radio": "AN/ARC-164", "intra_flight_radio": "AN/ARC-164", "allocator": {"kind": "common", "inter_flight_radio": 2}}}]}`},
		{"bad namer", `{"aircraft": [{"id": "F-5E", "radio": {"inter_flight_radio": "AN/ARC-164", "intra_flight_radio": "AN/ARC-164", "namer": "tiger"}}]}`},
		{"duplicate", `{"aircraft": [{"id": "F-5E"}, {"id": "F-5E"}]}`},
		{"dangling alias", `{"aircraft": [{"id": "F-5E"}], "radio_aliases": {"F-5E-3": "F-5E"}}`},
	} {
		if _, err := LoadRegistry([]byte(tc.json)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestNavTargets(t *testing.T) {
	db := DB()
	for _, tc := range []struct {
		id    string
		limit int
		label string
	}{
		{"JF-17", 4, "PP4"},
		{"F-14B", 1, "ST"},
		{"AJS37", 9, "M4"},
	} {
		ac, err := db.Type(tc.id)
		if err != nil {
			t.Fatal(err)
		}
		if ac.NavTargets == nil {
			t.Fatalf("%s: no nav targets", tc.id)
		}
		if ac.NavTargets.Limit != tc.limit {
			t.Errorf("%s: got limit %d, expected %d", tc.id, ac.NavTargets.Limit, tc.limit)
		}
		if l := ac.NavTargets.Label(3); l != tc.label {
			t.Errorf("%s: got label %q, expected %q", tc.id, l, tc.label)
		}
	}
}

func TestChannelNamers(t *testing.T) {
	db := DB()
	for _, tc := range []struct {
		id             string
		radio, channel int
		want           string
	}{
		{"F-14B", 1, 3, "UHF Ch 3"},
		{"F-14B", 2, 1, "VHF/UHF Ch 1"},
		{"M-2000C", 1, 2, "V/UHF Ch 2"},
		{"F-16C_50", 2, 5, "COM2 Ch 5"},
		{"AJS37", 1, 2, "FR 22 Special 2"},
		{"AJS37", 1, 5, "FR 24 F"},
		{"P-51D", 1, 1, "Button A"},
		{"P-51D", 1, 4, "?"},
		{"P-47D-30", 1, 3, "Button C"},
		{"Su-33", 2, 1, "COMM2 Ch 1"},
		{"X-Wing", 1, 7, "COMM1 Ch 7"},
	} {
		if got := db.ChannelNamer(tc.id)(tc.radio, tc.channel); got != tc.want {
			t.Errorf("%s %d/%d: got %q, expected %q", tc.id, tc.radio, tc.channel, got, tc.want)
		}
	}

	if _, err := LookupChannelNamer("nope"); !errors.Is(err, ErrUnknownNamer) {
		t.Errorf("expected ErrUnknownNamer, got %v", err)
	}
}

func TestNumRadioChannels(t *testing.T) {
	ac, err := DB().Type("F-14B")
	if err != nil {
		t.Fatal(err)
	}
	if n := ac.NumRadioChannels(2); n != 30 {
		t.Errorf("got %d channels, expected 30", n)
	}
	if n := ac.NumRadioChannels(3); n != 0 {
		t.Errorf("got %d channels for missing radio, expected 0", n)
	}
}
