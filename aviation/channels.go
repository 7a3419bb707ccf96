// aviation/channels.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"fmt"
)

// ChannelNamer returns the name of a preset channel as it should be
// printed for the pilot (e.g., on the kneeboard).
type ChannelNamer func(radioID, channelID int) string

// DefaultChannelNamer is reasonable for any aircraft with numbered radios.
func DefaultChannelNamer(radioID, channelID int) string {
	return fmt.Sprintf("COMM%d Ch %d", radioID, channelID)
}

func namedRadioChannelNamer(names ...string) ChannelNamer {
	return func(radioID, channelID int) string {
		if radioID < 1 || radioID > len(names) {
			return DefaultChannelNamer(radioID, channelID)
		}
		return fmt.Sprintf("%s Ch %d", names[radioID-1], channelID)
	}
}

var channelNamers = map[string]ChannelNamer{
	"default": DefaultChannelNamer,
	"mirage":  namedRadioChannelNamer("V/UHF", "UHF"),
	"tomcat":  namedRadioChannelNamer("UHF", "VHF/UHF"),
	"viggen": func(radioID, channelID int) string {
		if channelID >= 4 && channelID < 8 {
			return "FR 24 " + string("EFGH"[channelID-4])
		}
		return fmt.Sprintf("FR 22 Special %d", channelID)
	},
	"viper": func(radioID, channelID int) string {
		return fmt.Sprintf("COM%d Ch %d", radioID, channelID)
	},
	"scr522": func(radioID, channelID int) string {
		if channelID < 1 || channelID > 3 {
			return "?"
		}
		return "Button " + string("ABCD"[channelID-1])
	},
}

// LookupChannelNamer returns the namer registered under the given name;
// the empty name selects the default namer.
func LookupChannelNamer(name string) (ChannelNamer, error) {
	if name == "" {
		return DefaultChannelNamer, nil
	}
	if n, ok := channelNamers[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("%s: %w", name, ErrUnknownNamer)
}

// ChannelAssignment identifies a preset channel on one of an aircraft's
// radios.
type ChannelAssignment struct {
	RadioID int
	Channel int
}

func (c ChannelAssignment) String() string {
	return fmt.Sprintf("radio %d channel %d", c.RadioID, c.Channel)
}
