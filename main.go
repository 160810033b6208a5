package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	_ "time/tzdata"

	"github.com/echoflaresat/seatray/airports"
	"github.com/echoflaresat/seatray/config"
	"github.com/echoflaresat/seatray/flight"
	"github.com/echoflaresat/seatray/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type options struct {
	from, to  *string
	departure *string
	duration  *float64
	share     *string
	config    *string
	asJSON    *bool
	showHelp  *bool
}

func defineFlags() options {
	return options{
		from:      flag.String("from", "", "Origin airport IATA code (e.g., SIN)"),
		to:        flag.String("to", "", "Destination airport IATA code (e.g., LHR)"),
		departure: flag.String("departure", "", "Local departure time at the origin (e.g., 2024-06-01T08:00)"),
		duration:  flag.Float64("duration", 0, "Flight duration in hours"),
		share:     flag.String("share", "", "Share query string (source=SIN&destination=LHR&departure=...&duration=13)"),

		config: flag.String("config", os.Getenv("SEATRAY_CONFIG"), "YAML config file; defaults to $SEATRAY_CONFIG"),
		asJSON: flag.Bool("json", false, "Print the full result and facts as JSON"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `seatray - which side of the plane sees the Sun

Usage:
  %[1]s -from SIN -to LHR -departure 2024-06-01T08:00 -duration 13

`, os.Args[0])

	printGroup("Flight", []string{"from", "to", "departure", "duration", "share"})
	printGroup("Output", []string{"json"})
	printGroup("Misc", []string{"config", "h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	_ = godotenv.Load()

	opts := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *opts.showHelp {
		printHelp()
		return
	}

	cfg, err := config.Load(*opts.config)
	if err != nil {
		log.Fatal(err)
	}
	level := cfg.Logging.Level
	if v := os.Getenv("SEATRAY_LOG_LEVEL"); v != "" {
		level = v
	}
	l, err := logger.New(cfg.Env, level)
	if err != nil {
		log.Fatal(err)
	}
	defer l.Sync() //nolint:errcheck

	params, err := shareParams(opts)
	if err != nil {
		l.Fatal("bad share parameters", zap.Error(err))
	}
	res, err := run(cfg, l, params)
	if err != nil {
		l.Fatal("planning failed", zap.Error(err))
	}

	if *opts.asJSON {
		err = writeJSON(os.Stdout, res)
	} else {
		err = writeReport(os.Stdout, res)
	}
	if err != nil {
		l.Fatal("failed to write output", zap.Error(err))
	}
}

// shareParams merges the -share query with the individual flags, which take
// precedence when set.
func shareParams(opts options) (flight.ShareParams, error) {
	var p flight.ShareParams
	if *opts.share != "" {
		var err error
		if p, err = flight.ParseShareParams(*opts.share); err != nil {
			return p, err
		}
	}
	if *opts.from != "" {
		p.Source = *opts.from
	}
	if *opts.to != "" {
		p.Destination = *opts.to
	}
	if *opts.departure != "" {
		p.Departure = *opts.departure
	}
	if *opts.duration != 0 {
		p.Duration = fmt.Sprint(*opts.duration)
	}
	return p, nil
}

func run(cfg config.Config, l *zap.Logger, params flight.ShareParams) (flight.Result, error) {
	table, err := airports.Builtin()
	if err != nil {
		return flight.Result{}, err
	}
	from, err := table.Lookup(params.Source)
	if err != nil {
		return flight.Result{}, err
	}
	to, err := table.Lookup(params.Destination)
	if err != nil {
		return flight.Result{}, err
	}
	hours, err := params.Hours()
	if err != nil {
		return flight.Result{}, err
	}
	req, err := flight.FromAirports(from, to, params.Departure, hours)
	if err != nil {
		return flight.Result{}, err
	}
	l.Info("planning flight",
		zap.String("from", from.IATA),
		zap.String("to", to.IATA),
		zap.Time("departure", req.Departure),
		zap.Duration("duration", req.Duration))
	return flight.NewPlanner(cfg, flight.WithLogger(l)).Plan(req)
}

func writeJSON(w io.Writer, res flight.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Result flight.Result `json:"result"`
		Facts  flight.Facts  `json:"facts"`
	}{res, res.Facts()})
}

func writeReport(w io.Writer, res flight.Result) error {
	f := res.Facts()
	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s, departing %s, %s h (%.0f km)\n",
		f.SourceCity, f.DestinationCity, f.DepartureTime, f.FlightTime, res.DistanceKm)
	fmt.Fprintf(&b, "Arrival: %s\n", res.Arrival.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Recommended seat: %s\n", f.Recommendation)
	fmt.Fprintf(&b, "%s\n", f.SunSummary)
	if len(res.Events) == 0 {
		b.WriteString("No sunrise or sunset during the flight.\n")
	}
	for _, ev := range res.Events {
		fmt.Fprintf(&b, "  %-7s %s at %v, azimuth %.1f°, %s\n",
			ev.Kind, ev.Instant.Format("15:04 UTC"), ev.Position, ev.Azimuth, ev.Side)
	}
	for _, warning := range res.Warnings {
		fmt.Fprintf(&b, "Warning: %s\n", warning)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
