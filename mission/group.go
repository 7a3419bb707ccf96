// mission/group.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package mission

import (
	"fmt"

	"github.com/mmp/airgen/math"
)

// Waypoint types and actions.
const (
	PointTurningPoint      = "Turning Point"
	PointTakeOffParking    = "TakeOffParking"
	PointTakeOffParkingHot = "TakeOffParkingHot"
	PointTakeOff           = "TakeOff"
	PointLand              = "Land"

	ActionTurningPoint   = "Turning Point"
	ActionFromParking    = "From Parking Area"
	ActionFromParkingHot = "From Parking Area Hot"
	ActionFromRunway     = "From Runway"
	ActionLanding        = "Landing"
)

// Altitude references.
const (
	AltBaro  = "BARO"
	AltRadio = "RADIO"
)

// Unit skills; player and client units are flown by people.
const (
	SkillAverage = "Average"
	SkillHigh    = "High"
	SkillClient  = "Client"
	SkillPlayer  = "Player"
)

// MovingPoint is a waypoint of a flying group.
type MovingPoint struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Action   string      `json:"action"`
	Position math.Point2 `json:"position"`
	Alt      float64     `json:"alt"`
	AltType  string      `json:"alt_type"`
	// Speed in km/h.
	Speed float64 `json:"speed"`
	// Scheduled arrival, in seconds after mission start.
	ETA         int     `json:"ETA"`
	ETALocked   bool    `json:"ETA_locked"`
	SpeedLocked bool    `json:"speed_locked"`
	Tasks       []*Task `json:"tasks"`
	AirdromeID  int     `json:"airdromeId,omitempty"`
	LinkUnit    int     `json:"linkUnit,omitempty"`
}

func (p *MovingPoint) AddTask(t *Task) {
	p.Tasks = append(p.Tasks, t)
}

// FindTasks returns the point's tasks with the given identifier.
func (p *MovingPoint) FindTasks(id string) []*Task {
	var t []*Task
	for _, task := range p.Tasks {
		if task.ID == id {
			t = append(t, task)
		}
	}
	return t
}

type FlyingUnit struct {
	ID       int         `json:"unitId"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Skill    string      `json:"skill"`
	Position math.Point2 `json:"position"`
	Alt      float64     `json:"alt"`
	Heading  float64     `json:"heading"`
	Speed    float64     `json:"speed"`
	Parking  int         `json:"parking,omitempty"`
	Fuel     float64     `json:"fuel"`
	Livery   string      `json:"livery_id,omitempty"`
	Payload  string      `json:"payload,omitempty"`
	// Pylon number to store name.
	Pylons map[int]string `json:"pylons,omitempty"`
	// Radio number to preset channel number to frequency in MHz.
	RadioPresets map[int]map[int]float64 `json:"radio,omitempty"`
	Properties   map[string]any          `json:"AddPropAircraft,omitempty"`
}

func (u *FlyingUnit) IsHuman() bool {
	return u.Skill == SkillClient || u.Skill == SkillPlayer
}

func (u *FlyingUnit) SetPlayer() { u.Skill = SkillPlayer }

func (u *FlyingUnit) SetClient() { u.Skill = SkillClient }

func (u *FlyingUnit) SetProperty(name string, value any) {
	if u.Properties == nil {
		u.Properties = make(map[string]any)
	}
	u.Properties[name] = value
}

// SetRadioPreset stores a frequency (in MHz) in a preset channel.
func (u *FlyingUnit) SetRadioPreset(radio, channel int, mhz float64) {
	if u.RadioPresets == nil {
		u.RadioPresets = make(map[int]map[int]float64)
	}
	if u.RadioPresets[radio] == nil {
		u.RadioPresets[radio] = make(map[int]float64)
	}
	u.RadioPresets[radio][channel] = mhz
}

// NavTargetPoint is a preplanned target point loaded into the aircraft's
// navigation system.
type NavTargetPoint struct {
	Index    int         `json:"index"`
	Position math.Point2 `json:"position"`
	Comment  string      `json:"text_comment"`
}

// FlyingGroup is a group of aircraft in the mission.
type FlyingGroup struct {
	ID             int              `json:"groupId"`
	Name           string           `json:"name"`
	Country        string           `json:"country"`
	Task           string           `json:"task"`
	Units          []*FlyingUnit    `json:"units"`
	Points         []*MovingPoint   `json:"route"`
	Frequency      float64          `json:"frequency"`
	LateActivation bool             `json:"lateActivation"`
	Uncontrolled   bool             `json:"uncontrolled"`
	NavTargets     []NavTargetPoint `json:"NavTargetPoints,omitempty"`
	// Actions that triggers may push onto the group's task queue.
	TriggerActions []*Task `json:"triggerActions,omitempty"`
}

func (g *FlyingGroup) String() string {
	return fmt.Sprintf("%s (%d x %s)", g.Name, len(g.Units), g.UnitType())
}

func (g *FlyingGroup) UnitType() string {
	if len(g.Units) == 0 {
		return ""
	}
	return g.Units[0].Type
}

// AddWaypoint appends a turning point to the group's route.
func (g *FlyingGroup) AddWaypoint(p math.Point2, alt, speed float64) *MovingPoint {
	pt := &MovingPoint{
		Type:     PointTurningPoint,
		Action:   ActionTurningPoint,
		Position: p,
		Alt:      alt,
		AltType:  AltBaro,
		Speed:    speed,
	}
	g.Points = append(g.Points, pt)
	return pt
}

// LandAt makes the group's final waypoint a landing at the airport.
func (g *FlyingGroup) LandAt(ap *Airport) *MovingPoint {
	pt := &MovingPoint{
		Type:       PointLand,
		Action:     ActionLanding,
		Position:   ap.Position,
		AltType:    AltRadio,
		AirdromeID: ap.ID,
	}
	g.Points = append(g.Points, pt)
	return pt
}

func (g *FlyingGroup) AddNavTargetPoint(p math.Point2, comment string) {
	g.NavTargets = append(g.NavTargets, NavTargetPoint{
		Index:    len(g.NavTargets) + 1,
		Position: p,
		Comment:  comment,
	})
}

// AddTriggerAction adds an action to the group's trigger action list
// and returns its one-based index, as AITaskPush expects.
func (g *FlyingGroup) AddTriggerAction(t *Task) int {
	g.TriggerActions = append(g.TriggerActions, t)
	return len(g.TriggerActions)
}

// SetFrequency sets the group's radio frequency, in MHz.
func (g *FlyingGroup) SetFrequency(mhz float64) { g.Frequency = mhz }

// LoadLoadout assigns the named payload to every unit.
func (g *FlyingGroup) LoadLoadout(name string) {
	for _, u := range g.Units {
		u.Payload = name
	}
}

// LoadTaskDefaultLoadout assigns the simulator's default payload for the
// task to every unit.
func (g *FlyingGroup) LoadTaskDefaultLoadout(task string) {
	g.LoadLoadout("default:" + task)
}

func (g *FlyingGroup) ClearPylons() {
	for _, u := range g.Units {
		u.Pylons = nil
	}
}

// LoadPylon mounts the store on the given pylon of every unit.
func (g *FlyingGroup) LoadPylon(pylon int, store string) {
	for _, u := range g.Units {
		if u.Pylons == nil {
			u.Pylons = make(map[int]string)
		}
		u.Pylons[pylon] = store
	}
}

// HumanUnits returns the units flown by players.
func (g *FlyingGroup) HumanUnits() []*FlyingUnit {
	var h []*FlyingUnit
	for _, u := range g.Units {
		if u.IsHuman() {
			h = append(h, u)
		}
	}
	return h
}

///////////////////////////////////////////////////////////////////////////
// Group

type Unit struct {
	ID       int         `json:"unitId"`
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Position math.Point2 `json:"position"`
	Heading  float64     `json:"heading"`
}

// Group is a ground or ship group. Ship groups with a nonzero
// DeckCapacity can launch aircraft.
type Group struct {
	ID           int         `json:"groupId"`
	Name         string      `json:"name"`
	Country      string      `json:"country"`
	Position     math.Point2 `json:"position"`
	Units        []*Unit     `json:"units"`
	Ship         bool        `json:"ship"`
	DeckCapacity int         `json:"deck_capacity,omitempty"`
	// Aircraft currently spotted on deck.
	DeckUsed int `json:"-"`
}

func (g *Group) String() string { return g.Name }
