// airgen/behavior.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airgen

import (
	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/mission"
)

// behavior holds the optional AI options set at the start of a group's
// route. Empty values leave the simulator default in place.
type behavior struct {
	react            mission.ReactOnThreat
	roe              mission.ROE
	rtbWinchester    mission.OutOfAmmo
	restrictJettison bool
}

// configureBehavior replaces the tasks at the group's first point with
// the given options. Groups always go home at bingo fuel and never use
// afterburner en route.
func configureBehavior(g *mission.FlyingGroup, b behavior) {
	pt := g.Points[0]
	pt.Tasks = nil

	if b.react != "" {
		pt.AddTask(mission.OptReactOnThreat(b.react))
	}
	if b.roe != "" {
		pt.AddTask(mission.OptROE(b.roe))
	}
	if b.restrictJettison {
		pt.AddTask(mission.OptRestrictJettison(true))
	}
	if b.rtbWinchester != "" {
		pt.AddTask(mission.OptRTBOnOutOfAmmo(b.rtbWinchester))
	}

	pt.AddTask(mission.OptRTBOnBingoFuel(true))
	pt.AddTask(mission.OptRestrictAfterburner(true))
}

// taskProfile describes how a group flying a given mission type is set
// up: its main task, the loadout it carries, and its AI behavior.
type taskProfile struct {
	mainTask    string
	loadoutTask string
	configure   func(g *mission.FlyingGroup, f *ato.Flight)
}

func capProfile() taskProfile {
	return taskProfile{
		mainTask:    mission.MainTaskCAP,
		loadoutTask: mission.MainTaskCAP,
		configure: func(g *mission.FlyingGroup, f *ato.Flight) {
			winchester := mission.OutOfAmmoAAM
			if ac := f.UnitType(); ac != nil && ac.Gunfighter {
				winchester = mission.OutOfAmmoCannon
			}
			configureBehavior(g, behavior{rtbWinchester: winchester})
			g.Points[0].AddTask(mission.EngageTargets(math.NMToMeters(50), mission.TargetsAir))
		},
	}
}

func casProfile() taskProfile {
	return taskProfile{
		mainTask:    mission.MainTaskCAS,
		loadoutTask: mission.MainTaskCAS,
		configure: func(g *mission.FlyingGroup, f *ato.Flight) {
			configureBehavior(g, behavior{
				react:            mission.ReactEvadeFire,
				roe:              mission.ROEOpenFireWeaponFree,
				rtbWinchester:    mission.OutOfAmmoUnguided,
				restrictJettison: true,
			})
			g.Points[0].AddTask(mission.EngageTargets(math.NMToMeters(10), mission.TargetsGroundVehicles))
		},
	}
}

func seadProfile() taskProfile {
	return taskProfile{
		mainTask:    mission.MainTaskSEAD,
		loadoutTask: mission.MainTaskSEAD,
		configure: func(g *mission.FlyingGroup, f *ato.Flight) {
			configureBehavior(g, behavior{
				react:            mission.ReactEvadeFire,
				roe:              mission.ROEOpenFire,
				rtbWinchester:    mission.OutOfAmmoASM,
				restrictJettison: true,
			})
		},
	}
}

func attackProfile(mainTask, loadoutTask string) taskProfile {
	return taskProfile{
		mainTask:    mainTask,
		loadoutTask: loadoutTask,
		configure: func(g *mission.FlyingGroup, f *ato.Flight) {
			configureBehavior(g, behavior{
				react:            mission.ReactEvadeFire,
				roe:              mission.ROEOpenFire,
				restrictJettison: true,
			})
		},
	}
}

func escortProfile() taskProfile {
	return taskProfile{
		mainTask:    mission.MainTaskEscort,
		loadoutTask: mission.MainTaskEscort,
		configure: func(g *mission.FlyingGroup, f *ato.Flight) {
			configureBehavior(g, behavior{roe: mission.ROEOpenFire, restrictJettison: true})
		},
	}
}

var taskProfiles = map[ato.FlightType]taskProfile{
	ato.CAP:          capProfile(),
	ato.BARCAP:       capProfile(),
	ato.TARCAP:       capProfile(),
	ato.Interception: capProfile(),
	ato.CAS:          casProfile(),
	ato.BAI:          casProfile(),
	ato.SEAD:         seadProfile(),
	ato.DEAD:         seadProfile(),
	ato.Strike:       attackProfile(mission.MainTaskPinpointStrike, mission.MainTaskGroundAttack),
	ato.AntiShip:     attackProfile(mission.MainTaskAntishipStrike, mission.MainTaskAntishipStrike),
	ato.Escort:       escortProfile(),
}

// Flights of types without a profile fly with the default options and
// carry whatever the airframe spawns with.
var unknownTaskProfile = taskProfile{
	configure: func(g *mission.FlyingGroup, f *ato.Flight) {
		configureBehavior(g, behavior{})
	},
}
