// ato/package.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"slices"

	"github.com/mmp/airgen/theater"
)

// Package is a group of flights that share a target and a time over
// target.
type Package struct {
	Target  theater.MissionTarget
	Flights []*Flight
	// Seconds after mission start; nil until the package is scheduled.
	TimeOverTarget *int
	Waypoints      *PackageWaypoints
}

func NewPackage(target theater.MissionTarget) *Package {
	return &Package{Target: target}
}

// PrimaryTask returns the type of the package's first flight. The second
// return value is false for an empty package.
func (p *Package) PrimaryTask() (FlightType, bool) {
	if len(p.Flights) == 0 {
		return 0, false
	}
	return p.Flights[0].Type, true
}

func (p *Package) AddFlight(f *Flight) {
	f.Package = p
	p.Flights = append(p.Flights, f)
}

// RemoveFlight removes the flight from the package and returns its
// aircraft and pilots.
func (p *Package) RemoveFlight(f *Flight) {
	if i := slices.Index(p.Flights, f); i != -1 {
		p.Flights = slices.Delete(p.Flights, i, i+1)
		f.ReturnPilotsAndAircraft()
	}
}

// Cancel removes all flights from the package.
func (p *Package) Cancel() {
	for _, f := range p.Flights {
		f.ReturnPilotsAndAircraft()
	}
	p.Flights = nil
}

func (p *Package) SetTimeOverTarget(tot int) {
	p.TimeOverTarget = &tot
}

// AirTaskingOrder holds one coalition's packages, in the order they are
// generated.
type AirTaskingOrder struct {
	Packages []*Package
}

func (a *AirTaskingOrder) AddPackage(p *Package) {
	a.Packages = append(a.Packages, p)
}

func (a *AirTaskingOrder) RemovePackage(p *Package) {
	if i := slices.Index(a.Packages, p); i != -1 {
		a.Packages = slices.Delete(a.Packages, i, i+1)
		p.Cancel()
	}
}

// Clear cancels every package.
func (a *AirTaskingOrder) Clear() {
	for _, p := range a.Packages {
		p.Cancel()
	}
	a.Packages = nil
}

// Flights returns all flights of all packages.
func (a *AirTaskingOrder) Flights() []*Flight {
	var f []*Flight
	for _, p := range a.Packages {
		f = append(f, p.Flights...)
	}
	return f
}
