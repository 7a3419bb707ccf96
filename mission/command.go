// mission/command.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/vmihailenco/msgpack/v5"
)

// Command is an entry in the mission's task, condition, or action
// vocabulary: an identifier and its parameters. Parameters keep their
// insertion order so that exported missions are byte-for-byte
// reproducible.
type Command struct {
	ID     string                 `json:"id"`
	Params *orderedmap.OrderedMap `json:"params"`
}

// NewCommand returns a command with the given identifier; params are
// alternating keys and values.
func NewCommand(id string, params ...any) Command {
	if len(params)%2 != 0 {
		panic("NewCommand: odd number of parameters")
	}
	c := Command{ID: id, Params: orderedmap.New()}
	for i := 0; i < len(params); i += 2 {
		c.Params.Set(params[i].(string), params[i+1])
	}
	return c
}

// Param returns the value of the named parameter.
func (c Command) Param(key string) (any, bool) {
	if c.Params == nil {
		return nil, false
	}
	return c.Params.Get(key)
}

func (c *Command) SetParam(key string, value any) {
	if c.Params == nil {
		c.Params = orderedmap.New()
	}
	c.Params.Set(key, value)
}

func (c Command) String() string {
	s := c.ID + "("
	if c.Params != nil {
		for i, k := range c.Params.Keys() {
			v, _ := c.Params.Get(k)
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%s=%v", k, v)
		}
	}
	return s + ")"
}

func (c Command) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeString(c.ID); err != nil {
		return err
	}
	if c.Params == nil {
		return enc.EncodeNil()
	}
	keys := c.Params.Keys()
	if err := enc.EncodeMapLen(len(keys)); err != nil {
		return err
	}
	for _, k := range keys {
		v, _ := c.Params.Get(k)
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) DecodeMsgpack(dec *msgpack.Decoder) error {
	var err error
	if c.ID, err = dec.DecodeString(); err != nil {
		return err
	}
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	if n == -1 {
		c.Params = nil
		return nil
	}
	c.Params = orderedmap.New()
	for range n {
		k, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := dec.DecodeInterfaceLoose()
		if err != nil {
			return err
		}
		c.Params.Set(k, v)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////
// Task

// Task is a command attached to a waypoint. If StopAfterTime is set, the
// task is wrapped in a controlled task that ends at that mission time.
type Task struct {
	Command
	StopAfterTime *int `json:"stop_after_time,omitempty"`
}

func NewTask(id string, params ...any) *Task {
	return &Task{Command: NewCommand(id, params...)}
}

func (t *Task) StopAfter(seconds int) {
	t.StopAfterTime = &seconds
}

func (t Task) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := t.Command.EncodeMsgpack(enc); err != nil {
		return err
	}
	return enc.Encode(t.StopAfterTime)
}

func (t *Task) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := t.Command.DecodeMsgpack(dec); err != nil {
		return err
	}
	return dec.Decode(&t.StopAfterTime)
}

///////////////////////////////////////////////////////////////////////////
// Vocabulary

// Main tasks assigned to flying groups.
const (
	MainTaskCAP            = "CAP"
	MainTaskCAS            = "CAS"
	MainTaskSEAD           = "SEAD"
	MainTaskPinpointStrike = "Pinpoint Strike"
	MainTaskGroundAttack   = "Ground Attack"
	MainTaskAntishipStrike = "Antiship Strike"
	MainTaskEscort         = "Escort"
)

// Task identifiers.
const (
	TaskOrbit                  = "Orbit"
	TaskAttackGroup            = "AttackGroup"
	TaskBombing                = "Bombing"
	TaskEngageTargets          = "EngageTargets"
	TaskEPLRS                  = "EPLRS"
	TaskOptReactOnThreat       = "OptReactOnThreat"
	TaskOptROE                 = "OptROE"
	TaskOptRTBOnBingoFuel      = "OptRTBOnBingoFuel"
	TaskOptRTBOnOutOfAmmo      = "OptRTBOnOutOfAmmo"
	TaskOptRestrictAfterburner = "OptRestrictAfterburner"
	TaskOptRestrictJettison    = "OptRestrictJettison"
	TaskStartCommand           = "Start"
)

type ReactOnThreat string

const (
	ReactNoReaction        ReactOnThreat = "NoReaction"
	ReactPassiveDefense    ReactOnThreat = "PassiveDefense"
	ReactEvadeFire         ReactOnThreat = "EvadeFire"
	ReactBypassAndEscape   ReactOnThreat = "BypassAndEscape"
	ReactAllowAbortMission ReactOnThreat = "AllowAbortMission"
)

type ROE string

const (
	ROEWeaponFree         ROE = "WeaponFree"
	ROEOpenFireWeaponFree ROE = "OpenFireWeaponFree"
	ROEOpenFire           ROE = "OpenFire"
	ROEReturnFire         ROE = "ReturnFire"
	ROEWeaponHold         ROE = "WeaponHold"
)

// OutOfAmmo selects the stores whose expenditure sends a group home.
type OutOfAmmo string

const (
	OutOfAmmoCannon   OutOfAmmo = "Cannon"
	OutOfAmmoUnguided OutOfAmmo = "Unguided"
	OutOfAmmoASM      OutOfAmmo = "ASM"
	OutOfAmmoAAM      OutOfAmmo = "AAM"
)

type OrbitPattern string

const (
	OrbitCircle    OrbitPattern = "Circle"
	OrbitRaceTrack OrbitPattern = "Race-Track"
)

// Target categories for EngageTargets.
const (
	TargetsAir            = "Air"
	TargetsGroundVehicles = "Ground Vehicles"
)

// Weapon type masks.
const (
	WeaponTypeGuided    = 268402702
	WeaponTypeIronBombs = 2032
)

func OptReactOnThreat(v ReactOnThreat) *Task {
	return NewTask(TaskOptReactOnThreat, "value", string(v))
}

func OptROE(v ROE) *Task {
	return NewTask(TaskOptROE, "value", string(v))
}

func OptRTBOnOutOfAmmo(v OutOfAmmo) *Task {
	return NewTask(TaskOptRTBOnOutOfAmmo, "value", string(v))
}

func OptRestrictJettison(v bool) *Task {
	return NewTask(TaskOptRestrictJettison, "value", v)
}

func OptRTBOnBingoFuel(v bool) *Task {
	return NewTask(TaskOptRTBOnBingoFuel, "value", v)
}

func OptRestrictAfterburner(v bool) *Task {
	return NewTask(TaskOptRestrictAfterburner, "value", v)
}

func Orbit(pattern OrbitPattern, altitude float64) *Task {
	return NewTask(TaskOrbit, "pattern", string(pattern), "altitude", altitude)
}

// EngageTargets has the group engage targets of the given categories
// within maxDistance meters of its route.
func EngageTargets(maxDistance float64, targets ...string) *Task {
	return NewTask(TaskEngageTargets, "maxDist", maxDistance, "targetTypes", targets)
}

func EPLRS(groupID int) *Task {
	return NewTask(TaskEPLRS, "value", true, "groupId", groupID)
}

func AttackGroup(groupID int) *Task {
	return NewTask(TaskAttackGroup, "groupId", groupID)
}

func Bombing(x, y float64) *Task {
	return NewTask(TaskBombing, "x", x, "y", y)
}

func StartCommand() *Task {
	return NewTask(TaskStartCommand)
}
