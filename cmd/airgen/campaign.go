// cmd/airgen/campaign.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"slices"

	"github.com/mmp/airgen/airgen"
	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/mission"
	"github.com/mmp/airgen/theater"
	"github.com/mmp/airgen/util"
)

// Campaign is the on-disk description of a turn: the map and the groups
// already in the mission, the theater's control points, and the player
// coalition's planned packages.
type Campaign struct {
	Country        string                    `json:"country"`
	Player         theater.Coalition         `json:"player"`
	Terrain        *mission.Terrain          `json:"terrain"`
	Groups         []*mission.Group          `json:"groups"`
	ControlPoints  []*campaignControlPoint   `json:"control_points"`
	CullingPoints  []math.Point2             `json:"culling_points"`
	GroundObjects  []campaignGroundObject    `json:"ground_objects"`
	Squadrons      []*campaignSquadron       `json:"squadrons"`
	Packages       []*campaignPackage        `json:"packages"`
	AirSupport     airgen.AirSupport         `json:"air_support"`
	DynamicRunways map[string]campaignRunway `json:"dynamic_runways"`
}

type campaignControlPoint struct {
	ID           int                      `json:"id"`
	Name         string                   `json:"name"`
	FullName     string                   `json:"full_name"`
	Type         theater.ControlPointType `json:"type"`
	Position     math.Point2              `json:"position"`
	Captured     bool                     `json:"captured"`
	Airport      string                   `json:"airport"`
	CarrierGroup string                   `json:"carrier_group"`
}

type campaignGroundObject struct {
	Name     string      `json:"name"`
	Position math.Point2 `json:"position"`
	Category string      `json:"category"`
	Group    string      `json:"group"`
}

type campaignPilot struct {
	Name   string `json:"name"`
	Player bool   `json:"player"`
}

type campaignSquadron struct {
	Name     string          `json:"name"`
	Aircraft string          `json:"aircraft"`
	Base     string          `json:"base"`
	Arrival  string          `json:"arrival"`
	Owned    int             `json:"owned"`
	Pilots   []campaignPilot `json:"pilots"`
}

type campaignPackage struct {
	Target         string               `json:"target"`
	TimeOverTarget *int                 `json:"tot"`
	Waypoints      *campaignPackagePath `json:"waypoints"`
	Flights        []*campaignFlight    `json:"flights"`
}

type campaignPackagePath struct {
	Join    math.Point2 `json:"join"`
	Ingress math.Point2 `json:"ingress"`
	Egress  math.Point2 `json:"egress"`
	Split   math.Point2 `json:"split"`
}

type campaignFlight struct {
	Squadron    string              `json:"squadron"`
	Count       int                 `json:"count"`
	Type        ato.FlightType      `json:"type"`
	Start       ato.StartType       `json:"start"`
	Divert      string              `json:"divert"`
	ScheduledIn int                 `json:"scheduled_in"`
	CustomName  string              `json:"custom_name"`
	Loadout     *campaignLoadout    `json:"loadout"`
	TargetPoint string              `json:"target_point"`
	Waypoints   []*campaignWaypoint `json:"waypoints"`
}

type campaignLoadout struct {
	Name   string            `json:"name"`
	Pylons map[string]string `json:"pylons"`
}

type campaignWaypoint struct {
	Type          ato.WaypointType      `json:"type"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Position      math.Point2           `json:"position"`
	Alt           float64               `json:"alt"`
	AltType       ato.AltitudeReference `json:"alt_type"`
	Targets       []string              `json:"targets"`
	TargetGroup   string                `json:"target_group"`
	OnlyForPlayer bool                  `json:"only_for_player"`
}

type campaignRunway struct {
	Airfield string `json:"airfield"`
	Runway   string `json:"runway"`
	ATC      *int   `json:"atc_khz"`
	TACAN    string `json:"tacan"`
	ILS      *int   `json:"ils_khz"`
}

// Scenario is a campaign resolved into the objects generation works on.
type Scenario struct {
	Country        string
	Mission        *mission.Mission
	Theater        *theater.Theater
	Order          *ato.AirTaskingOrder
	AirSupport     airgen.AirSupport
	DynamicRunways map[string]aviation.RunwayData
}

// LoadCampaign parses and checks a campaign file. Keys that don't match
// the campaign's fields are reported along with parse errors.
func LoadCampaign(b []byte) (*Campaign, error) {
	var e util.ErrorLogger
	e.Push("campaign")
	util.CheckJSON[Campaign](b, &e)
	if e.HaveErrors() {
		return nil, e.Err()
	}

	var c Campaign
	if err := util.UnmarshalJSON(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Scenario resolves the campaign's cross references. Every problem found
// is reported through e; the returned scenario is only usable if e has no
// errors.
func (c *Campaign) Scenario(reg *aviation.Registry, e *util.ErrorLogger) *Scenario {
	e.Push("campaign")
	defer e.Pop()

	if c.Country == "" {
		e.ErrorString("\"country\" must be specified")
	}
	if c.Player == theater.Neutral {
		e.ErrorString("\"player\" must be \"blue\" or \"red\"")
	}

	m := mission.New(c.Terrain)
	for _, g := range c.Groups {
		m.AddGroup(g)
	}

	th := &theater.Theater{Player: c.Player, CullingPoints: c.CullingPoints}
	cps := make(map[string]*theater.ControlPoint)
	for _, ccp := range c.ControlPoints {
		e.Push("control point " + ccp.Name)
		cp := ccp.resolve(m, e)
		if _, ok := cps[cp.Name]; ok {
			e.ErrorString("duplicate control point")
		}
		cps[cp.Name] = cp
		th.ControlPoints = append(th.ControlPoints, cp)
		e.Pop()
	}

	targets := make(map[string]*theater.TheaterGroundObject)
	for _, gobj := range c.GroundObjects {
		e.Push("ground object " + gobj.Name)
		if gobj.Group != "" && m.FindGroup(gobj.Group) == nil {
			e.ErrorString("%s: group not found in mission", gobj.Group)
		}
		targets[gobj.Name] = &theater.TheaterGroundObject{
			MissionTarget:   theater.MissionTarget{Name: gobj.Name, Position: gobj.Position},
			Category:        gobj.Category,
			GroupIdentifier: gobj.Group,
		}
		e.Pop()
	}
	lookupTarget := func(name string) (theater.MissionTarget, bool) {
		if t, ok := targets[name]; ok {
			return t.MissionTarget, true
		}
		if cp, ok := cps[name]; ok {
			return cp.Target(), true
		}
		e.ErrorString("%s: unknown target", name)
		return theater.MissionTarget{}, false
	}

	squadrons := make(map[string]*ato.Squadron)
	for _, csq := range c.Squadrons {
		e.Push("squadron " + csq.Name)
		if sq := csq.resolve(reg, cps, e); sq != nil {
			squadrons[sq.Name] = sq
		}
		e.Pop()
	}

	order := &ato.AirTaskingOrder{}
	for i, cpkg := range c.Packages {
		e.Push("package " + cpkg.Target)
		target, _ := lookupTarget(cpkg.Target)
		pkg := ato.NewPackage(target)
		if cpkg.TimeOverTarget != nil {
			pkg.SetTimeOverTarget(*cpkg.TimeOverTarget)
		}
		if pw := cpkg.Waypoints; pw != nil {
			pkg.Waypoints = &ato.PackageWaypoints{Join: pw.Join, Ingress: pw.Ingress, Egress: pw.Egress, Split: pw.Split}
		} else if len(cpkg.Flights) > 0 {
			e.ErrorString("package %d has flights but no \"waypoints\"", i)
		}

		for _, cf := range cpkg.Flights {
			e.Push("flight " + cf.Squadron)
			if f := cf.resolve(c.Country, pkg, squadrons, cps, targets, lookupTarget, e); f != nil {
				pkg.AddFlight(f)
			}
			e.Pop()
		}
		order.AddPackage(pkg)
		e.Pop()
	}

	runways := make(map[string]aviation.RunwayData)
	for name, r := range c.DynamicRunways {
		if _, ok := cps[name]; !ok {
			e.ErrorString("dynamic runway: %s: unknown control point", name)
		}
		runways[name] = r.runwayData()
	}

	return &Scenario{
		Country:        c.Country,
		Mission:        m,
		Theater:        th,
		Order:          order,
		AirSupport:     c.AirSupport,
		DynamicRunways: runways,
	}
}

func (ccp *campaignControlPoint) resolve(m *mission.Mission, e *util.ErrorLogger) *theater.ControlPoint {
	cp := &theater.ControlPoint{
		ID:               ccp.ID,
		Name:             ccp.Name,
		FullName:         ccp.FullName,
		Type:             ccp.Type,
		Position:         ccp.Position,
		Captured:         ccp.Captured,
		AirportName:      ccp.Airport,
		CarrierGroupName: ccp.CarrierGroup,
	}
	if cp.FullName == "" {
		cp.FullName = cp.Name
	}

	switch {
	case cp.Type == theater.Airbase:
		if _, ok := m.Terrain.Airport(cp.AirportName); !ok {
			e.ErrorString("%q: %v", cp.AirportName, airgen.ErrNoAirport)
		}
	case cp.IsFleet():
		if g := m.FindGroup(cp.CarrierGroupName); g == nil || !g.Ship {
			e.ErrorString("%q: %v", cp.CarrierGroupName, airgen.ErrNoCarrierGroup)
		}
	}
	return cp
}

func (csq *campaignSquadron) resolve(reg *aviation.Registry, cps map[string]*theater.ControlPoint,
	e *util.ErrorLogger) *ato.Squadron {
	ac, err := reg.Type(csq.Aircraft)
	if err != nil {
		e.Error(err)
		return nil
	}
	base, ok := cps[csq.Base]
	if !ok {
		e.ErrorString("%q: unknown base", csq.Base)
		return nil
	}

	pilots := util.MapSlice(csq.Pilots, func(p campaignPilot) *ato.Pilot {
		return &ato.Pilot{Name: p.Name, Player: p.Player}
	})
	sq := ato.NewSquadron(csq.Name, ac, base, csq.Owned, pilots)
	if csq.Arrival != "" {
		if sq.Arrival, ok = cps[csq.Arrival]; !ok {
			e.ErrorString("%q: unknown arrival control point", csq.Arrival)
		}
	}
	return sq
}

func (cf *campaignFlight) resolve(country string, pkg *ato.Package, squadrons map[string]*ato.Squadron,
	cps map[string]*theater.ControlPoint, objects map[string]*theater.TheaterGroundObject,
	lookupTarget func(string) (theater.MissionTarget, bool), e *util.ErrorLogger) *ato.Flight {
	sq, ok := squadrons[cf.Squadron]
	if !ok {
		e.ErrorString("%q: unknown squadron", cf.Squadron)
		return nil
	}

	var divert *theater.ControlPoint
	if cf.Divert != "" {
		if divert, ok = cps[cf.Divert]; !ok {
			e.ErrorString("%q: unknown divert control point", cf.Divert)
		}
	}

	f, err := ato.NewFlight(pkg, country, sq, cf.Count, cf.Type, cf.Start, divert, cf.CustomName)
	if err != nil {
		e.Error(err)
		return nil
	}
	f.ScheduledIn = cf.ScheduledIn
	if cf.Loadout != nil {
		f.Loadout = ato.Loadout{Name: cf.Loadout.Name, Pylons: cf.Loadout.Pylons}
		f.UseCustomLoadout = true
	}
	if cf.TargetPoint != "" {
		if t, ok := lookupTarget(cf.TargetPoint); ok {
			f.TargetPoint = &t
		}
	}

	// Plans start at the departure point; add one if the campaign didn't.
	if len(cf.Waypoints) == 0 || cf.Waypoints[0].Type != ato.WaypointTakeoff {
		f.Plan.Waypoints = append(f.Plan.Waypoints, &ato.FlightWaypoint{
			Type:     ato.WaypointTakeoff,
			Name:     "TAKEOFF",
			Position: sq.Location.Position,
		})
	}
	for _, cw := range cf.Waypoints {
		wp := &ato.FlightWaypoint{
			Type:          cw.Type,
			Name:          cw.Name,
			Description:   cw.Description,
			Position:      cw.Position,
			Alt:           cw.Alt,
			AltType:       cw.AltType,
			OnlyForPlayer: cw.OnlyForPlayer,
		}
		if wp.AltType == "" {
			wp.AltType = ato.AltitudeBaro
		}
		for _, name := range cw.Targets {
			if t, ok := lookupTarget(name); ok {
				wp.Targets = append(wp.Targets, t)
			}
		}
		if cw.TargetGroup != "" {
			if obj, ok := objects[cw.TargetGroup]; ok {
				wp.TargetGroup = obj
			} else {
				e.ErrorString("%q: unknown ground object", cw.TargetGroup)
			}
		}
		f.Plan.Waypoints = append(f.Plan.Waypoints, wp)
	}

	if slices.ContainsFunc(f.Points(), func(wp *ato.FlightWaypoint) bool { return wp.Type == ato.WaypointTakeoff }) {
		e.ErrorString("only the first waypoint may be a takeoff point")
	}
	return f
}

func (r campaignRunway) runwayData() aviation.RunwayData {
	freq := func(khz *int) *aviation.Frequency {
		if khz == nil {
			return nil
		}
		f := aviation.KHz(*khz)
		return &f
	}
	return aviation.RunwayData{
		AirfieldName: r.Airfield,
		RunwayName:   r.Runway,
		ATC:          freq(r.ATC),
		TACAN:        r.TACAN,
		ILS:          freq(r.ILS),
	}
}
