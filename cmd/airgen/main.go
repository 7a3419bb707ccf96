// cmd/airgen/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// airgen reads a campaign turn, adds the flights of the player's air
// tasking order to the mission, and writes the mission out along with a
// summary of the generated flights.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/goforj/godump"
	"github.com/peterbourgon/ff"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mmp/airgen/airgen"
	"github.com/mmp/airgen/aviation"
	"github.com/mmp/airgen/log"
	"github.com/mmp/airgen/util"
)

type options struct {
	settings string
	campaign string
	output   string
	json     string
	metrics  string
	dump     bool
}

func main() {
	var opts options
	fs := flag.NewFlagSet("airgen", flag.ExitOnError)
	fs.StringVar(&opts.settings, "settings", "", "JSON file with generation settings")
	fs.StringVar(&opts.campaign, "campaign", "", "JSON file with the campaign turn to generate")
	fs.StringVar(&opts.output, "output", "mission.msgpack.zst", "file to write the generated mission to")
	fs.StringVar(&opts.json, "json", "", "also write a JSON export of the mission to this file")
	fs.StringVar(&opts.metrics, "metrics", "", "write generation metrics in Prometheus text format to this file")
	fs.BoolVar(&opts.dump, "dump", false, "dump the briefing data of every generated flight")
	logLevel := fs.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir := fs.String("logdir", "", "log file directory")

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("AIRGEN")); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	if opts.campaign == "" {
		fmt.Fprintf(os.Stderr, "usage: airgen -campaign <file> [flags]\nwhere [flags] may be:\n")
		fs.PrintDefaults()
		os.Exit(2)
	}

	lg := log.New(*logLevel, *logDir)

	if err := run(opts, lg, os.Stdout); err != nil {
		lg.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "airgen: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, lg *log.Logger, w io.Writer) error {
	settings, campaign, err := loadInputs(opts)
	if err != nil {
		return err
	}

	var e util.ErrorLogger
	sc := campaign.Scenario(aviation.DB(), &e)
	if e.HaveErrors() {
		e.PrintErrors(lg)
		return errors.New("invalid campaign")
	}

	reg := prometheus.NewRegistry()
	metrics, err := airgen.NewMetrics(reg)
	if err != nil {
		return err
	}

	gen := airgen.NewAircraftConflictGenerator(sc.Mission, sc.Theater, settings, reservedRadios(sc), metrics, lg)
	if err := gen.GenerateFlights(sc.Country, sc.Order, sc.DynamicRunways); err != nil {
		return err
	}
	gen.AssignChannelsForClients(sc.AirSupport)

	if err := writeFile(opts.output, sc.Mission.Save); err != nil {
		return err
	}
	if opts.json != "" {
		if err := writeFile(opts.json, sc.Mission.WriteJSON); err != nil {
			return err
		}
	}
	if opts.metrics != "" {
		if err := prometheus.WriteToTextfile(opts.metrics, reg); err != nil {
			return err
		}
	}

	lg.Info("Generated mission", "output", opts.output, "flights", len(gen.Flights))
	writeSummary(w, gen.Registry, gen.Flights)
	if opts.dump {
		for _, fd := range gen.Flights {
			godump.Fdump(w, fd)
		}
	}
	return nil
}

// loadInputs reads the settings and the campaign concurrently.
func loadInputs(opts options) (airgen.Settings, *Campaign, error) {
	settings := airgen.DefaultSettings()
	var campaign *Campaign

	var eg errgroup.Group
	if opts.settings != "" {
		eg.Go(func() error {
			b, err := os.ReadFile(opts.settings)
			if err != nil {
				return err
			}
			if settings, err = airgen.LoadSettings(b); err != nil {
				return fmt.Errorf("%s: %w", opts.settings, err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		b, err := os.ReadFile(opts.campaign)
		if err != nil {
			return err
		}
		if campaign, err = LoadCampaign(b); err != nil {
			return fmt.Errorf("%s: %w", opts.campaign, err)
		}
		return nil
	})

	err := eg.Wait()
	return settings, campaign, err
}

// reservedRadios returns a radio registry where the frequencies already in
// use by airfields and support flights are taken, so that intra-flight
// channels don't land on them.
func reservedRadios(sc *Scenario) *aviation.RadioRegistry {
	radios := aviation.NewRadioRegistry()
	for _, ap := range sc.Mission.Terrain.SortedAirports() {
		if ap.ATC != nil {
			radios.Reserve(*ap.ATC)
		}
	}
	for _, r := range sc.DynamicRunways {
		if r.ATC != nil {
			radios.Reserve(*r.ATC)
		}
	}
	for _, s := range slices.Concat(sc.AirSupport.AWACS, sc.AirSupport.Tankers) {
		radios.Reserve(s.Freq)
	}
	return radios
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func writeSummary(w io.Writer, reg *aviation.Registry, flights []*airgen.FlightData) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "FLIGHT\tTYPE\tTASK\tSTART\tDEPARTURE\tACTIVATION\tINTRA\tPRESET")
	for _, fd := range flights {
		fmt.Fprintf(tw, "%s\t%d x %s\t%s\t%s\t%s\t%s\t%s\t%s\n", fd.Callsign, fd.Size, fd.AircraftType,
			fd.FlightType, fd.StartType, fd.Departure, fd.ActivationMethod, fd.IntraFlightChannel,
			presetName(reg, fd, fd.IntraFlightChannel))
	}
	tw.Flush()
}

// presetName returns the cockpit name of the preset a frequency was put
// in, or "-" if it has none.
func presetName(reg *aviation.Registry, fd *airgen.FlightData, f aviation.Frequency) string {
	ch, ok := fd.ChannelFor(f)
	if !ok {
		return "-"
	}
	return reg.ChannelNamer(fd.AircraftType.ID)(ch.RadioID, ch.Channel)
}
