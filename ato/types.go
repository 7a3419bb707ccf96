// ato/types.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"
)

// enumText implements text (un)marshaling for the small integer enums in
// this package, given a table of their names.
func enumText[T ~int](v T, names []string) string {
	if int(v) >= 0 && int(v) < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%d", int(v))
}

func parseEnum[T ~int](s string, names []string, err error) (T, error) {
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, err)
}

///////////////////////////////////////////////////////////////////////////
// FlightType

type FlightType int

const (
	CAP FlightType = iota
	BARCAP
	TARCAP
	Interception
	CAS
	BAI
	SEAD
	DEAD
	Strike
	AntiShip
	Escort
	Recon
	Transport
	Ferry
)

var flightTypeNames = []string{"CAP", "BARCAP", "TARCAP", "INTERCEPTION", "CAS", "BAI",
	"SEAD", "DEAD", "STRIKE", "ANTISHIP", "ESCORT", "RECON", "TRANSPORT", "FERRY"}

func (t FlightType) String() string { return enumText(t, flightTypeNames) }

func (t FlightType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *FlightType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[FlightType](string(b), flightTypeNames, ErrUnknownFlightType)
	return
}

// IsCAP reports whether flights of this type race to station without a
// locked time over target.
func (t FlightType) IsCAP() bool {
	return t == CAP || t == BARCAP
}

///////////////////////////////////////////////////////////////////////////
// WaypointType

type WaypointType int

const (
	WaypointTakeoff WaypointType = iota
	WaypointAscendPoint
	WaypointNav
	WaypointLoiter
	WaypointPatrol
	WaypointPatrolTrack
	WaypointJoin
	WaypointIngressCAS
	WaypointIngressSEAD
	WaypointIngressStrike
	WaypointIngressEscort
	WaypointTargetPoint
	WaypointTargetGroupLoc
	WaypointTargetShip
	WaypointEgress
	WaypointSplit
	WaypointDescentPoint
	WaypointLandingPoint
	WaypointDivert
	WaypointCustom
)

var waypointTypeNames = []string{"TAKEOFF", "ASCEND_POINT", "NAV", "LOITER", "PATROL",
	"PATROL_TRACK", "JOIN", "INGRESS_CAS", "INGRESS_SEAD", "INGRESS_STRIKE", "INGRESS_ESCORT",
	"TARGET_POINT", "TARGET_GROUP_LOC", "TARGET_SHIP", "EGRESS", "SPLIT", "DESCENT_POINT",
	"LANDING_POINT", "DIVERT", "CUSTOM"}

func (t WaypointType) String() string { return enumText(t, waypointTypeNames) }

func (t WaypointType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *WaypointType) UnmarshalText(b []byte) (err error) {
	*t, err = parseEnum[WaypointType](string(b), waypointTypeNames, ErrUnknownWaypointType)
	return
}

///////////////////////////////////////////////////////////////////////////
// StartType

type StartType int

const (
	StartCold StartType = iota
	StartWarm
	StartRunway
	StartInFlight
)

var startTypeNames = []string{"Cold", "Warm", "Runway", "In Flight"}

func (s StartType) String() string { return enumText(s, startTypeNames) }

func (s StartType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *StartType) UnmarshalText(b []byte) (err error) {
	*s, err = parseEnum[StartType](string(b), startTypeNames, ErrUnknownStartType)
	return
}

///////////////////////////////////////////////////////////////////////////
// AltitudeReference

// AltitudeReference gives the datum a waypoint altitude is measured from.
type AltitudeReference string

const (
	AltitudeBaro  AltitudeReference = "BARO"
	AltitudeRadio AltitudeReference = "RADIO"
)
