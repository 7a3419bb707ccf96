// airgen/generator.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package airgen turns the planned flights of an air tasking order into
// flying groups in a mission: it places each group, routes it through its
// flight plan with the package's timing, sets up its AI behavior and
// radios, and schedules its activation.
package airgen

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/brunoga/deep"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mmp/airgen/ato"
	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/log"
	"github.com/mmp/airgen/math"
	"github.com/mmp/airgen/mission"
	"github.com/mmp/airgen/rand"
	"github.com/mmp/airgen/theater"
)

// Airborne starts.
const (
	warmStartHelicopterAlt   = 500 // meters
	warmStartHelicopterSpeed = 120 // km/h
	warmStartAlt             = 3000
	warmStartSpeed           = 550

	// Altitude of groups that were meant to start on the ground but had
	// no room.
	fallbackStartAlt = 1500
)

// RTB legs.
const (
	rtbAltitude = 800  // meters
	rtbDistance = 5000 // meters from the field to the top of descent
)

// AircraftConflictGenerator adds the flights of an air tasking order to a
// mission. It is used for one generation pass and is not safe for
// concurrent use.
type AircraftConflictGenerator struct {
	Mission  *mission.Mission
	Theater  *theater.Theater
	Settings Settings
	Radios   *aviation.RadioRegistry
	Registry *aviation.Registry
	Metrics  *Metrics

	// Briefing data for every generated flight, in generation order.
	Flights []*FlightData

	lg       *log.Logger
	rand     *rand.Rand
	unitName int
	runways  *lru.Cache[string, aviation.RunwayData]
}

func NewAircraftConflictGenerator(m *mission.Mission, th *theater.Theater, settings Settings,
	radios *aviation.RadioRegistry, metrics *Metrics, lg *log.Logger) *AircraftConflictGenerator {
	runways, err := lru.New[string, aviation.RunwayData](64)
	if err != nil {
		panic(err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &AircraftConflictGenerator{
		Mission:  m,
		Theater:  th,
		Settings: settings,
		Radios:   radios,
		Registry: aviation.DB(),
		Metrics:  metrics,
		lg:       lg,
		rand:     rand.Make(seed),
		runways:  runways,
	}
}

// GenerateFlights adds a group for every flight of the order flown by
// the given country. Parking is cleared first, so the pass starts from an
// empty ramp. dynamicRunways gives the runways in use at ships, keyed by
// control point name.
func (g *AircraftConflictGenerator) GenerateFlights(country string, order *ato.AirTaskingOrder,
	dynamicRunways map[string]aviation.RunwayData) error {
	g.Mission.ClearParkingSlots()

	for _, pkg := range order.Packages {
		if len(pkg.Flights) == 0 {
			continue
		}

		timing, err := TimingForPackage(pkg, g.Settings)
		if err != nil {
			return err
		}

		for _, f := range pkg.Flights {
			cp := f.Departure()
			if f.ClientCount() == 0 && g.Theater.PositionCulled(cp.Position, g.Settings.CullDistanceNM) {
				g.lg.Info("Flight not generated: culled", "flight", f.String(), "departure", cp.Name)
				g.Metrics.flightCulled()
				continue
			}

			g.lg.Info("Generating flight", "flight", f.String())
			group := g.generatePlannedFlight(cp, country, f)
			fd := g.setupFlightGroup(group, f, timing, dynamicRunways)
			g.setupGroupActivationTrigger(f, group, fd)
			g.Metrics.flightGenerated(f.Type.String())
		}
	}
	return nil
}

// AssignChannelsForClients sets up the radio presets of every generated
// flight with players in it.
func (g *AircraftConflictGenerator) AssignChannelsForClients(support AirSupport) {
	for _, fd := range g.Flights {
		if len(fd.ClientUnits()) > 0 {
			AssignChannels(g.Registry, fd, support)
		}
	}
}

func (g *AircraftConflictGenerator) nextUnitName(country string, cpID int, acType string) string {
	g.unitName++
	return fmt.Sprintf("%s|%d|%d|%s", country, cpID, g.unitName, acType)
}

///////////////////////////////////////////////////////////////////////////
// Placement

func missionStartType(st ato.StartType, coldStart bool) mission.StartType {
	switch st {
	case ato.StartCold:
		return mission.StartCold
	case ato.StartWarm:
		if coldStart {
			return mission.StartCold
		}
		return mission.StartWarm
	default:
		return mission.StartRunway
	}
}

// generatePlannedFlight places the flight's group at its departure,
// starting it airborne if the flight asks for that, the airframe may not
// take off from there, or there is no room on the ground.
func (g *AircraftConflictGenerator) generatePlannedFlight(cp *theater.ControlPoint, country string,
	f *ato.Flight) *mission.FlyingGroup {
	if f.ClientCount() == 0 && g.Settings.PerfAIParkingStart {
		f.Start = ato.StartCold
	}

	ac := f.UnitType()
	name := g.nextUnitName(country, cp.ID, ac.ID)

	if f.Start == ato.StartInFlight {
		return g.generateInflight(country, name, ac, f.Count(), cp.Position)
	}

	if g.takeoffBanned(cp, f) {
		g.lg.Info("Takeoff not allowed; starting in flight", "flight", f.String(), "departure", cp.Name)
		f.Start = ato.StartInFlight
		return g.generateInflight(country, name, ac, f.Count(), cp.Position)
	}

	st := missionStartType(f.Start, g.Settings.ColdStart)
	var p mission.Placement
	if cp.IsFleet() {
		if pad := g.Mission.FindGroup(cp.CarrierGroupName); pad != nil {
			p = g.Mission.FlightGroupFromUnit(country, name, ac.ID, pad, st, f.Count())
		} else {
			p = mission.Placement{Reason: fmt.Errorf("%s: %w", cp.CarrierGroupName, ErrNoCarrierGroup)}
		}
	} else if ap, ok := g.Mission.Terrain.Airport(cp.AirportName); ok {
		p = g.Mission.FlightGroupFromAirport(country, name, ac.ID, ap, st, f.Count())
	} else {
		p = mission.Placement{Reason: fmt.Errorf("%s: %w", cp.Name, ErrNoAirport)}
	}

	if p.Placed() {
		return p.Group
	}

	g.lg.Error(p.Reason.Error(), "flight", f.String())
	g.lg.Warn("No room on runway or parking slots. Starting from the air.")
	g.Metrics.airborneFallback(fallbackReason(p.Reason))

	f.Start = ato.StartInFlight
	group := g.generateInflight(country, name, ac, f.Count(), cp.Position)
	group.Points[0].Alt = fallbackStartAlt
	return group
}

func (g *AircraftConflictGenerator) takeoffBanned(cp *theater.ControlPoint, f *ato.Flight) bool {
	ac := f.UnitType()
	aiBanned := f.ClientCount() == 0 && g.Settings.OnlyPlayerTakeoff
	if cp.IsFleet() {
		return ac.CarrierTakeoffBan || aiBanned
	}
	return ac.TakeoffBan || aiBanned
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, mission.ErrNoParkingSlot):
		return "no_parking"
	case errors.Is(err, mission.ErrNoRunway):
		return "no_runway"
	case errors.Is(err, mission.ErrDeckFull):
		return "deck_full"
	default:
		return "other"
	}
}

// generateInflight spawns a group in the air near the given point,
// scattered a little so that groups from the same field don't collide.
func (g *AircraftConflictGenerator) generateInflight(country, name string, ac *aviation.AircraftType, count int,
	at math.Point2) *mission.FlyingGroup {
	alt, speed := float64(warmStartAlt), float64(warmStartSpeed)
	if ac.Helicopter {
		alt, speed = warmStartHelicopterAlt, warmStartHelicopterSpeed
	}

	pos := math.Point2{
		at.X() + float64(g.rand.IntRange(100, 1000)),
		at.Y() + float64(g.rand.IntRange(100, 1000)),
	}
	g.lg.Info("In flight start", "group", name, "alt", alt, "speed", speed)

	group := g.Mission.FlightGroupInflight(country, name, ac.ID, pos, alt, speed, count)
	group.Points[0].AltType = mission.AltRadio
	return group
}

///////////////////////////////////////////////////////////////////////////
// Group setup

// setupFlightGroup configures a placed group for its mission and routes
// it through the flight plan.
func (g *AircraftConflictGenerator) setupFlightGroup(group *mission.FlyingGroup, f *ato.Flight,
	timing *PackageWaypointTiming, dynamicRunways map[string]aviation.RunwayData) *FlightData {
	profile, ok := taskProfiles[f.Type]
	if !ok {
		g.lg.Errorf("Unhandled flight type: %s", f.Type)
		profile = unknownTaskProfile
	}

	group.Task = profile.mainTask
	fd := g.setupGroup(group, profile.loadoutTask, f, dynamicRunways)
	profile.configure(group, f)
	if f.UnitType().EPLRS {
		group.Points[0].AddTask(mission.EPLRS(group.ID))
	}

	f.Plan.ResetTOTs()
	landing := false
	for _, wp := range f.Points() {
		if wp.OnlyForPlayer && f.ClientCount() == 0 {
			continue
		}
		b := &waypointBuilder{
			wp:      wp,
			group:   group,
			flight:  f,
			timing:  timing,
			mission: g.Mission,
			fd:      fd,
			metrics: g.Metrics,
			lg:      g.lg,
		}
		b.build()
		landing = landing || wp.Type == ato.WaypointLandingPoint
	}
	if !landing && len(f.Points()) > 0 {
		g.RTBFor(group, f.Arrival())
	}

	// Copied after the builders run so the briefing has the TOTs.
	fd.Waypoints = deep.MustCopy(f.Points())
	g.setupCustomPayload(f, group)
	return fd
}

// setupGroup loads the group's stores, marks its player aircraft, tunes
// its radio, and records its briefing data.
func (g *AircraftConflictGenerator) setupGroup(group *mission.FlyingGroup, loadoutTask string, f *ato.Flight,
	dynamicRunways map[string]aviation.RunwayData) *FlightData {
	ac := f.UnitType()

	loaded := false
	if len(ac.PayloadOverrides) > 0 {
		group.ClearPylons()
		if payload, ok := ac.PayloadOverrides[loadoutTask]; ok {
			group.LoadLoadout(payload)
			loaded = true
			g.lg.Infof("Loaded overridden payload for %s - %s for task %s", ac.ID, payload, loadoutTask)
		}
	}
	if !loaded && loadoutTask != "" {
		group.LoadTaskDefaultLoadout(loadoutTask)
	}

	for _, u := range group.Units {
		if ac.Livery != "" {
			u.Livery = ac.Livery
		}
		u.Fuel = float64(ac.FuelMax)
		if ac.CarrierFuelLimited {
			// Full tanks are too heavy for a deck launch.
			if f.Type.IsCAP() {
				u.Fuel = float64(ac.FuelMax) * 0.8
			} else {
				u.Fuel = float64(ac.FuelMax) / 2.2
			}
		}
	}

	clients := math.Min(len(group.Units), f.ClientCount())
	for _, u := range group.Units[:clients] {
		if f.ClientCount() == 1 {
			u.SetPlayer()
		} else {
			u.SetClient()
		}
		group.LateActivation = false
		for k, v := range ac.ClientProperties {
			u.SetProperty(k, v)
		}
	}

	channel := g.intraFlightChannel(ac)
	group.SetFrequency(channel.MHz())

	departure := g.runwayFor(f.Departure(), dynamicRunways)
	arrival := departure
	if f.Arrival() != f.Departure() {
		arrival = g.runwayFor(f.Arrival(), dynamicRunways)
	}

	var divert *aviation.RunwayData
	if f.Divert != nil {
		rwy := g.runwayFor(f.Divert, dynamicRunways)
		divert = &rwy
	}

	fd := &FlightData{
		FlightType:         f.Type,
		AircraftType:       ac,
		Group:              group,
		Size:               len(group.Units),
		Friendly:           f.Departure().Captured,
		DepartureDelay:     f.ScheduledIn,
		Departure:          departure,
		Arrival:            arrival,
		Divert:             divert,
		IntraFlightChannel: channel,
		Callsign:           group.Name,
		TargetPoint:        f.TargetPoint,
		StartType:          f.Start,
	}
	g.Flights = append(g.Flights, fd)
	return fd
}

// intraFlightChannel allocates the flight's own frequency on its
// intra-flight radio, falling back to a shared per-era frequency.
func (g *AircraftConflictGenerator) intraFlightChannel(ac *aviation.AircraftType) aviation.Frequency {
	ad, ok := g.Registry.RadioData(ac.ID)
	if !ok {
		return ac.FallbackChannel()
	}
	f, err := g.Radios.AllocForRadio(ad.IntraFlightRadio)
	if err != nil {
		g.lg.Warn("intra-flight channel", "aircraft", ac.ID, "error", err)
		return ac.FallbackChannel()
	}
	return f
}

// runwayFor returns the runway a flight uses at a control point.
func (g *AircraftConflictGenerator) runwayFor(cp *theater.ControlPoint,
	dynamicRunways map[string]aviation.RunwayData) aviation.RunwayData {
	fallback := aviation.RunwayData{AirfieldName: cp.FullName}

	switch {
	case cp.Type == theater.Airbase:
		ap, ok := g.Mission.Terrain.Airport(cp.AirportName)
		if !ok {
			g.lg.Warnf("%s: no airport %q in terrain", cp.Name, cp.AirportName)
			return fallback
		}
		if rwy, ok := g.preferredRunway(ap); ok {
			return rwy
		}
		return fallback
	case cp.IsFleet():
		if rwy, ok := dynamicRunways[cp.Name]; ok {
			return rwy
		}
		return fallback
	default:
		g.lg.Warnf("Unhandled departure control point: %s", cp.Type)
		return fallback
	}
}

// preferredRunway returns the first runway with an ILS, or the first
// runway if none has one.
func (g *AircraftConflictGenerator) preferredRunway(ap *mission.Airport) (aviation.RunwayData, bool) {
	if rwy, ok := g.runways.Get(ap.Name); ok {
		return rwy, true
	}

	runways := ap.RunwayData()
	if len(runways) == 0 {
		return aviation.RunwayData{}, false
	}
	rwy := runways[0]
	if idx := slices.IndexFunc(runways, func(r aviation.RunwayData) bool { return r.ILS != nil }); idx != -1 {
		rwy = runways[idx]
	}
	g.runways.Add(ap.Name, rwy)
	return rwy, true
}

// setupCustomPayload replaces the group's stores with the flight's
// custom loadout. Pylons the airframe doesn't have and stores a pylon
// can't carry are skipped.
func (g *AircraftConflictGenerator) setupCustomPayload(f *ato.Flight, group *mission.FlyingGroup) {
	if !f.UseCustomLoadout {
		return
	}
	ac := f.UnitType()
	g.lg.Info("Custom weapons are set for flight", "flight", f.String())
	group.ClearPylons()

	keys := make([]string, 0, len(f.Loadout.Pylons))
	for k := range f.Loadout.Pylons {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		store := f.Loadout.Pylons[key]
		allowed, ok := ac.Pylons["Pylon"+key]
		if !ok {
			g.lg.Warnf("Pylon not found ! => Pylon%s on %s", key, ac.ID)
			continue
		}
		if !slices.Contains(allowed, store) {
			g.lg.Warnf("%s can't be carried on Pylon%s of %s", store, key, ac.ID)
			continue
		}
		n, err := strconv.Atoi(key)
		if err != nil {
			g.lg.Warnf("%s: invalid pylon number", key)
			continue
		}
		group.LoadPylon(n, store)
	}
}

///////////////////////////////////////////////////////////////////////////
// RTB

// RTBFor sends the group home: a top-of-descent point short of the field
// on the line from its last waypoint, then the field itself, landing if
// it is an airport.
func (g *AircraftConflictGenerator) RTBFor(group *mission.FlyingGroup, cp *theater.ControlPoint) *mission.MovingPoint {
	last := group.Points[len(group.Points)-1]
	heading := math.Heading2(cp.Position, last.Position)
	tod := math.PointFromHeading(cp.Position, heading, rtbDistance)

	addRadioWaypoint(group, tod, last.Alt)
	dest := addRadioWaypoint(group, cp.Position, rtbAltitude)

	if cp.Type == theater.Airbase {
		if ap, ok := g.Mission.Terrain.Airport(cp.AirportName); ok {
			group.LandAt(ap)
		}
	}
	return dest
}

func addRadioWaypoint(group *mission.FlyingGroup, p math.Point2, alt float64) *mission.MovingPoint {
	pt := group.AddWaypoint(p, alt, defaultWaypointSpeed)
	pt.AltType = mission.AltRadio
	return pt
}
