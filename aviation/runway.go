// aviation/runway.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

// RunwayData describes a departure, arrival, or divert airfield as
// presented to the pilot.
type RunwayData struct {
	AirfieldName string
	RunwayName   string
	ATC          *Frequency
	TACAN        string
	ILS          *Frequency
}

func (r RunwayData) String() string {
	if r.RunwayName == "" {
		return r.AirfieldName
	}
	return r.AirfieldName + " " + r.RunwayName
}

// Equal reports whether two runways refer to the same airfield and
// runway.
func (r RunwayData) Equal(o RunwayData) bool {
	return r.AirfieldName == o.AirfieldName && r.RunwayName == o.RunwayName
}
