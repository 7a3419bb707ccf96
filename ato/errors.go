// ato/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"errors"
)

var (
	ErrInsufficientInventory = errors.New("Insufficient aircraft in squadron inventory")
	ErrRosterIndex           = errors.New("Invalid flight roster seat")
	ErrUnknownFlightType     = errors.New("Unknown flight type")
	ErrUnknownStartType      = errors.New("Unknown start type")
	ErrUnknownWaypointType   = errors.New("Unknown waypoint type")
)
