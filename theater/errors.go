// theater/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"errors"
)

var (
	ErrNoControlPoint          = errors.New("No control point with that ID")
	ErrUnknownCoalition        = errors.New("Unknown coalition")
	ErrUnknownControlPointType = errors.New("Unknown control point type")
)
