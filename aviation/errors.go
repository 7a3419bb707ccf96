// aviation/errors.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"errors"
)

var (
	ErrRadioExhausted   = errors.New("No unallocated frequencies remain for radio")
	ErrUnknownAircraft  = errors.New("Unknown aircraft type")
	ErrUnknownAllocator = errors.New("Unknown radio channel allocator")
	ErrUnknownNamer     = errors.New("Unknown channel namer")
	ErrUnknownRadio     = errors.New("Unknown radio")
)
