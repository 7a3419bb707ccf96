// aviation/aircraft.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"strconv"
)

// Era distinguishes aircraft whose radios need period-appropriate
// fallback frequencies.
type Era string

const (
	EraModern    Era = ""
	EraWW2Axis   Era = "ww2-axis"
	EraWW2Allied Era = "ww2-allied"
)

// PanelRadio is one of the radios in an aircraft's cockpit, in the order
// the simulator numbers them (radio 1 is PanelRadios[0]).
type PanelRadio struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
}

// NavTargetPoints describes how many preplanned navigation target points
// an airframe's avionics accept and how they are labeled.
type NavTargetPoints struct {
	Prefix   string `json:"prefix"`
	Limit    int    `json:"limit"`
	Numbered bool   `json:"numbered"`
}

// Label returns the name of the i'th (zero-based) target point.
func (n NavTargetPoints) Label(i int) string {
	if !n.Numbered {
		return n.Prefix
	}
	return n.Prefix + strconv.Itoa(i+1)
}

// AircraftType holds the static properties of an airframe that mission
// generation depends on.
type AircraftType struct {
	ID          string  `json:"id"`
	Helicopter  bool    `json:"helicopter,omitempty"`
	Era         Era     `json:"era,omitempty"`
	UHFFallback bool    `json:"uhf_fallback,omitempty"`
	EPLRS       bool    `json:"eplrs,omitempty"`
	Gunfighter  bool    `json:"gunfighter,omitempty"`
	FuelMax     float32 `json:"fuel_max,omitempty"`
	// Zero if the generator's default cruise speed applies.
	CruiseSpeedKnots   int                 `json:"cruise_speed_knots,omitempty"`
	CarrierFuelLimited bool                `json:"carrier_fuel_limited,omitempty"`
	TakeoffBan         bool                `json:"takeoff_ban,omitempty"`
	CarrierTakeoffBan  bool                `json:"carrier_takeoff_ban,omitempty"`
	AreaBombing        bool                `json:"area_bombing,omitempty"`
	PanelRadios        []PanelRadio        `json:"panel_radios,omitempty"`
	NavTargets         *NavTargetPoints    `json:"nav_targets,omitempty"`
	ClientProperties   map[string]any      `json:"client_properties,omitempty"`
	PayloadOverrides   map[string]string   `json:"payload_overrides,omitempty"`
	Livery             string              `json:"livery,omitempty"`
	Pylons             map[string][]string `json:"pylons,omitempty"`
	Radio              *AircraftRadioSpec  `json:"radio,omitempty"`
}

func (a *AircraftType) String() string { return a.ID }

// NumRadioChannels returns the number of preset channels available on the
// given (one-based) radio.
func (a *AircraftType) NumRadioChannels(radioID int) int {
	if radioID < 1 || radioID > len(a.PanelRadios) {
		return 0
	}
	return a.PanelRadios[radioID-1].Channels
}

// FallbackChannel returns the intra-flight frequency used when the
// aircraft has no radio data or its radio has no free frequencies.
// Fallback channels are not reserved with the RadioRegistry, so flights
// using them may overlap.
func (a *AircraftType) FallbackChannel() Frequency {
	if a.Helicopter && !a.UHFFallback {
		return MHz(127)
	}
	switch a.Era {
	case EraWW2Axis:
		return MHz(40)
	case EraWW2Allied:
		return MHz(124)
	}
	return MHz(251)
}
