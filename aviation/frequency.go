// aviation/frequency.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
)

// Frequencies are stored in kHz as integers.
type Frequency int

func MHz(mhz int) Frequency { return Frequency(mhz * 1000) }

func KHz(khz int) Frequency { return Frequency(khz) }

func NewFrequency(mhz float32) Frequency {
	// 0.5 is key for handling rounding!
	return Frequency(mhz*1000 + 0.5)
}

// MHz returns the frequency in megahertz, as the mission file expects it.
func (f Frequency) MHz() float64 {
	return float64(f) / 1000
}

func (f Frequency) String() string {
	return fmt.Sprintf("%03d.%03d", f/1000, f%1000)
}
