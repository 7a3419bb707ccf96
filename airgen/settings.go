// airgen/settings.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"github.com/mmp/airgen/util"
)

const (
	DefaultCruiseSpeedKnots = 400
	DefaultCAPDuration      = 30 // minutes
)

// Settings are the user preferences that affect how flights are
// generated.
type Settings struct {
	// Ground-start groups spawn with engines off rather than running.
	ColdStart bool `json:"cold_start"`
	// Only flights with a player take off from the ground; AI flights
	// start airborne.
	OnlyPlayerTakeoff bool `json:"only_player_takeoff"`
	// AI-only flights always start cold in parking.
	PerfAIParkingStart bool `json:"perf_ai_parking_start"`
	// Ground speed assumed when scheduling packages; zero uses the default.
	CruiseSpeedKnots int `json:"cruise_speed_knots"`
	// How long CAP flights stay on station after the time over target;
	// zero uses the default.
	CAPDurationMinutes int `json:"cap_duration_minutes"`
	// AI flights departing further than this from any area of interest
	// are not generated; zero disables culling.
	CullDistanceNM float64 `json:"cull_distance_nm"`
	// Seed for the random jitter of airborne starts; zero picks a seed
	// from the clock.
	Seed int64 `json:"seed"`
}

func DefaultSettings() Settings {
	return Settings{
		CruiseSpeedKnots:   DefaultCruiseSpeedKnots,
		CAPDurationMinutes: DefaultCAPDuration,
	}
}

// LoadSettings parses settings from JSON; fields that are not given keep
// their default values.
func LoadSettings(b []byte) (Settings, error) {
	var e util.ErrorLogger
	e.Push("settings")
	util.CheckJSON[Settings](b, &e)
	if e.HaveErrors() {
		return Settings{}, e.Err()
	}

	s := DefaultSettings()
	if err := util.UnmarshalJSON(b, &s); err != nil {
		return Settings{}, err
	}
	s.Validate(&e)
	return s, e.Err()
}

// cruiseSpeed and capDuration treat unset (zero) values as the defaults.
func (s Settings) cruiseSpeed() int {
	if s.CruiseSpeedKnots <= 0 {
		return DefaultCruiseSpeedKnots
	}
	return s.CruiseSpeedKnots
}

func (s Settings) capDuration() int {
	if s.CAPDurationMinutes <= 0 {
		return DefaultCAPDuration
	}
	return s.CAPDurationMinutes
}

func (s *Settings) Validate(e *util.ErrorLogger) {
	if s.CruiseSpeedKnots <= 0 {
		e.ErrorString("cruise_speed_knots must be positive: %d", s.CruiseSpeedKnots)
	}
	if s.CAPDurationMinutes < 0 {
		e.ErrorString("cap_duration_minutes must not be negative: %d", s.CAPDurationMinutes)
	}
	if s.CullDistanceNM < 0 {
		e.ErrorString("cull_distance_nm must not be negative: %f", s.CullDistanceNM)
	}
}
