// mission/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"errors"
)

var (
	ErrDeckFull      = errors.New("No room on deck")
	ErrNoParkingSlot = errors.New("No free parking slot")
	ErrNoRunway      = errors.New("Airport has no runway")
)
