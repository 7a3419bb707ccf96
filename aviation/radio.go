// aviation/radio.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
	"slices"
)

// FrequencyRange is an inclusive range of tunable frequencies, spaced by
// Step.
type FrequencyRange struct {
	Min, Max, Step Frequency
}

// Radio describes a model of aircraft radio and the frequencies it can
// tune.
type Radio struct {
	Name   string
	Ranges []FrequencyRange
}

func (r Radio) Tunes(f Frequency) bool {
	for _, rng := range r.Ranges {
		if f >= rng.Min && f <= rng.Max && (f-rng.Min)%rng.Step == 0 {
			return true
		}
	}
	return false
}

func (r Radio) String() string { return r.Name }

var (
	vhfAM  = FrequencyRange{Min: MHz(118), Max: KHz(155975), Step: KHz(25)}
	uhf    = FrequencyRange{Min: MHz(225), Max: KHz(399975), Step: KHz(25)}
	vhfFM  = FrequencyRange{Min: MHz(30), Max: KHz(87975), Step: KHz(25)}
	vhfLow = FrequencyRange{Min: MHz(100), Max: KHz(155975), Step: KHz(25)}
)

// radios lists the radio models known to the generator, keyed by name.
var radios = map[string]Radio{
	"AN/ARC-164":         {Name: "AN/ARC-164", Ranges: []FrequencyRange{uhf}},
	"AN/ARC-186":         {Name: "AN/ARC-186", Ranges: []FrequencyRange{vhfAM, vhfFM}},
	"AN/ARC-210":         {Name: "AN/ARC-210", Ranges: []FrequencyRange{{Min: MHz(136), Max: KHz(155975), Step: KHz(25)}, {Min: MHz(156), Max: KHz(173975), Step: KHz(25)}, uhf}},
	"AN/ARC-159":         {Name: "AN/ARC-159", Ranges: []FrequencyRange{uhf}},
	"AN/ARC-182":         {Name: "AN/ARC-182", Ranges: []FrequencyRange{{Min: MHz(108), Max: KHz(155975), Step: KHz(25)}, uhf}},
	"AN/ARC-222":         {Name: "AN/ARC-222", Ranges: []FrequencyRange{{Min: MHz(116), Max: KHz(151975), Step: KHz(25)}}},
	"AN/ARC-51BX":        {Name: "AN/ARC-51BX", Ranges: []FrequencyRange{{Min: MHz(225), Max: KHz(399950), Step: KHz(50)}}},
	"FR 22":              {Name: "FR 22", Ranges: []FrequencyRange{{Min: MHz(103), Max: KHz(155975), Step: KHz(25)}, uhf}},
	"R&S M3AR VHF":       {Name: "R&S M3AR VHF", Ranges: []FrequencyRange{{Min: MHz(120), Max: KHz(173975), Step: KHz(25)}}},
	"R&S M3AR UHF":       {Name: "R&S M3AR UHF", Ranges: []FrequencyRange{uhf}},
	"TRT ERA 7000 V/UHF": {Name: "TRT ERA 7000 V/UHF", Ranges: []FrequencyRange{{Min: MHz(118), Max: KHz(143975), Step: KHz(25)}, uhf}},
	"TRT ERA 7200 UHF":   {Name: "TRT ERA 7200 UHF", Ranges: []FrequencyRange{uhf}},
	"SCR522":             {Name: "SCR522", Ranges: []FrequencyRange{vhfLow}},
	"R-800L1":            {Name: "R-800L1", Ranges: []FrequencyRange{{Min: MHz(100), Max: KHz(149975), Step: KHz(25)}, {Min: MHz(220), Max: KHz(399975), Step: KHz(25)}}},
	"R-863":              {Name: "R-863", Ranges: []FrequencyRange{{Min: MHz(100), Max: KHz(149975), Step: KHz(25)}, {Min: MHz(220), Max: KHz(399975), Step: KHz(25)}}},
	"FuG 16ZY":           {Name: "FuG 16ZY", Ranges: []FrequencyRange{{Min: MHz(38), Max: KHz(41975), Step: KHz(25)}}},
}

// GetRadio returns the radio with the given name.
func GetRadio(name string) (Radio, error) {
	if r, ok := radios[name]; ok {
		return r, nil
	}
	return Radio{}, fmt.Errorf("%s: %w", name, ErrUnknownRadio)
}

///////////////////////////////////////////////////////////////////////////
// RadioRegistry

// RadioRegistry tracks the frequencies that have been handed out over the
// course of generating a mission so that no two flights (or ATC, AWACS,
// tankers) share one.
type RadioRegistry struct {
	allocated map[Frequency]struct{}
}

// Guard channels are never handed out.
var guardFrequencies = []Frequency{KHz(121500), MHz(243)}

func NewRadioRegistry() *RadioRegistry {
	r := &RadioRegistry{allocated: make(map[Frequency]struct{})}
	for _, f := range guardFrequencies {
		r.Reserve(f)
	}
	return r
}

// Reserve marks the given frequency as in use.
func (r *RadioRegistry) Reserve(f Frequency) {
	r.allocated[f] = struct{}{}
}

func (r *RadioRegistry) IsAllocated(f Frequency) bool {
	_, ok := r.allocated[f]
	return ok
}

// AllocForRadio returns the lowest frequency the given radio can tune
// that has not yet been allocated and reserves it.
func (r *RadioRegistry) AllocForRadio(radio Radio) (Frequency, error) {
	for _, rng := range radio.Ranges {
		for f := rng.Min; f <= rng.Max; f += rng.Step {
			if !r.IsAllocated(f) {
				r.Reserve(f)
				return f, nil
			}
		}
	}
	return 0, fmt.Errorf("%s: %w", radio.Name, ErrRadioExhausted)
}

// Allocated returns all reserved frequencies in increasing order.
func (r *RadioRegistry) Allocated() []Frequency {
	var f []Frequency
	for freq := range r.allocated {
		f = append(f, freq)
	}
	slices.Sort(f)
	return f
}
