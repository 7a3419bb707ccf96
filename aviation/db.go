// aviation/db.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"embed"
	"fmt"
	"slices"
	"sync"

	"github.com/mmp/airgen/util"
)

//go:embed resources/aircraft.json
var resourcesFS embed.FS

// AllocatorKind selects the radio channel allocation policy for an
// airframe.
type AllocatorKind string

const (
	// Channels assigned in the generic order; see AllocatorSpec.
	AllocatorCommon AllocatorKind = "common"
	// The A-10C's presets can't be set from the mission.
	AllocatorWarthog AllocatorKind = "warthog"
	// Fixed slots on the FR 22.
	AllocatorViggen AllocatorKind = "viggen"
	// Four-button WW2 sets.
	AllocatorSCR522 AllocatorKind = "scr522"
)

var allocatorKinds = []AllocatorKind{AllocatorCommon, AllocatorWarthog, AllocatorViggen, AllocatorSCR522}

type AllocatorSpec struct {
	Kind AllocatorKind `json:"kind"`
	// One-based indices into the aircraft's panel radios; only used by
	// AllocatorCommon. Either may be omitted.
	InterFlightRadio *int `json:"inter_flight_radio,omitempty"`
	IntraFlightRadio *int `json:"intra_flight_radio,omitempty"`
}

type AircraftRadioSpec struct {
	InterFlightRadio string         `json:"inter_flight_radio"`
	IntraFlightRadio string         `json:"intra_flight_radio"`
	Allocator        *AllocatorSpec `json:"allocator,omitempty"`
	Namer            string         `json:"namer,omitempty"`
}

// AircraftData is the radio profile of an airframe.
type AircraftData struct {
	InterFlightRadio Radio
	IntraFlightRadio Radio
	// Nil if the aircraft does not support preset channels.
	Allocator    *AllocatorSpec
	ChannelNamer ChannelNamer
}

type registryJSON struct {
	Aircraft     []*AircraftType   `json:"aircraft"`
	RadioAliases map[string]string `json:"radio_aliases"`
}

// Registry is the immutable table of airframes and their radio profiles,
// keyed by aircraft type identifier.
type Registry struct {
	types map[string]*AircraftType
	radio map[string]*AircraftData
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DB returns the registry loaded from the built-in aircraft table. The
// table is embedded in the binary, so failing to load it is a programming
// error.
func DB() *Registry {
	defaultRegistryOnce.Do(func() {
		b, err := util.LoadResourceBytes(resourcesFS, "resources/aircraft.json")
		if err != nil {
			panic(err)
		}
		if defaultRegistry, err = LoadRegistry(b); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}

// LoadRegistry parses and validates an aircraft table.
func LoadRegistry(b []byte) (*Registry, error) {
	var e util.ErrorLogger
	util.CheckJSON[registryJSON](b, &e)
	if e.HaveErrors() {
		return nil, e.Err()
	}

	var rj registryJSON
	if err := util.UnmarshalJSON(b, &rj); err != nil {
		return nil, err
	}

	r := &Registry{
		types: make(map[string]*AircraftType),
		radio: make(map[string]*AircraftData),
	}
	for _, ac := range rj.Aircraft {
		e.Push(ac.ID)
		if _, ok := r.types[ac.ID]; ok {
			e.ErrorString("aircraft type defined multiple times")
		}
		r.types[ac.ID] = ac

		if ac.Radio != nil {
			if ad := makeAircraftData(ac, &e); ad != nil {
				r.radio[ac.ID] = ad
			}
		}
		e.Pop()
	}

	for alias, id := range rj.RadioAliases {
		e.Push(alias)
		if ad, ok := r.radio[id]; !ok {
			e.ErrorString("%s: no radio data to alias", id)
		} else {
			r.radio[alias] = ad
		}
		e.Pop()
	}

	return r, e.Err()
}

func makeAircraftData(ac *AircraftType, e *util.ErrorLogger) *AircraftData {
	spec := ac.Radio
	inter, err := GetRadio(spec.InterFlightRadio)
	if err != nil {
		e.Error(err)
		return nil
	}
	intra, err := GetRadio(spec.IntraFlightRadio)
	if err != nil {
		e.Error(err)
		return nil
	}
	namer, err := LookupChannelNamer(spec.Namer)
	if err != nil {
		e.Error(err)
		return nil
	}

	if a := spec.Allocator; a != nil {
		if !slices.Contains(allocatorKinds, a.Kind) {
			e.Error(fmt.Errorf("%s: %w", a.Kind, ErrUnknownAllocator))
			return nil
		}
		for _, idx := range []*int{a.InterFlightRadio, a.IntraFlightRadio} {
			if idx != nil && (*idx < 1 || *idx > len(ac.PanelRadios)) {
				e.ErrorString("radio index %d invalid: %d panel radios", *idx, len(ac.PanelRadios))
				return nil
			}
		}
	}

	return &AircraftData{
		InterFlightRadio: inter,
		IntraFlightRadio: intra,
		Allocator:        spec.Allocator,
		ChannelNamer:     namer,
	}
}

// Type returns the aircraft type with the given identifier.
func (r *Registry) Type(id string) (*AircraftType, error) {
	if t, ok := r.types[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%s: %w", id, ErrUnknownAircraft)
}

// RadioData returns the radio profile for the given aircraft type, if it
// has one. Callers fall back to AircraftType.FallbackChannel and
// DefaultChannelNamer otherwise.
func (r *Registry) RadioData(id string) (*AircraftData, bool) {
	ad, ok := r.radio[id]
	return ad, ok
}

// ChannelNamer returns the channel namer for the given aircraft type.
func (r *Registry) ChannelNamer(id string) ChannelNamer {
	if ad, ok := r.radio[id]; ok {
		return ad.ChannelNamer
	}
	return DefaultChannelNamer
}

// TypeIDs returns the identifiers of all known aircraft, sorted.
func (r *Registry) TypeIDs() []string {
	var ids []string
	for id := range r.types {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
