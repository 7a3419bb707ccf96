// mission/trigger.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"github.com/mmp/airgen/math"
)

// Trigger events.
const (
	EventNoEvent = "NoEvent"
)

// Condition identifiers.
const (
	ConditionTimeAfter             = "TimeAfter"
	ConditionCoalitionHasAirdrome  = "CoalitionHasAirdrome"
	ConditionPartOfCoalitionInZone = "PartOfCoalitionInZone"
)

// Action identifiers.
const (
	ActionActivateGroup = "ActivateGroup"
	ActionAITaskPush    = "AITaskPush"
	ActionMessageToAll  = "MessageToAll"
)

// Trigger is a rule evaluated while the mission runs: when all of its
// conditions hold, its actions are performed. Triggers created with
// NewTriggerOnce fire at most once.
type Trigger struct {
	Name       string    `json:"name"`
	Event      string    `json:"event"`
	Once       bool      `json:"once"`
	Conditions []Command `json:"conditions"`
	Actions    []Command `json:"actions"`
}

func NewTriggerOnce(event, name string) *Trigger {
	return &Trigger{Name: name, Event: event, Once: true}
}

func (t *Trigger) AddCondition(c Command) {
	t.Conditions = append(t.Conditions, c)
}

func (t *Trigger) AddAction(a Command) {
	t.Actions = append(t.Actions, a)
}

// TimeAfter holds once the given number of seconds have elapsed.
func TimeAfter(seconds int) Command {
	return NewCommand(ConditionTimeAfter, "seconds", seconds)
}

// CoalitionHasAirdrome holds while the coalition owns the airfield.
func CoalitionHasAirdrome(coalition, airportID int) Command {
	return NewCommand(ConditionCoalitionHasAirdrome, "coalitionlist", coalition, "airdrome", airportID)
}

// PartOfCoalitionInZone holds when any unit of the coalition is in the
// zone.
func PartOfCoalitionInZone(coalition string, zoneID int) Command {
	return NewCommand(ConditionPartOfCoalitionInZone, "coalitionlist", coalition, "zone", zoneID, "unitType", "ALL")
}

func ActivateGroup(groupID int) Command {
	return NewCommand(ActionActivateGroup, "group", groupID)
}

// AITaskPush pushes the group's index'th trigger action onto its task
// queue.
func AITaskPush(groupID, index int) Command {
	return NewCommand(ActionAITaskPush, "group", groupID, "ai_task", index)
}

func MessageToAll(text string, seconds int) Command {
	return NewCommand(ActionMessageToAll, "text", text, "seconds", seconds)
}

// TriggerZone is a circular area referenced by trigger conditions.
type TriggerZone struct {
	ID       int         `json:"id"`
	Name     string      `json:"name"`
	Position math.Point2 `json:"position"`
	Radius   float64     `json:"radius"`
	Hidden   bool        `json:"hidden"`
}
