// airgen/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"errors"
)

var (
	ErrNoTimeOverTarget   = errors.New("Package has no time over target")
	ErrNoPackageWaypoints = errors.New("Package has no waypoints")
	ErrEmptyPackage       = errors.New("Package has no flights")
	ErrNoCarrierGroup     = errors.New("Carrier group not found in mission")
	ErrNoAirport          = errors.New("Airport not found in terrain")
)
