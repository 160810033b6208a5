// Command overlay prints the subsolar point and day/night curves for an
// instant as JSON.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/echoflaresat/seatray/config"
	"github.com/echoflaresat/seatray/flight"
)

func main() {
	timeStr := flag.String("time", "", "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now")
	step := flag.Float64("step", 0, "Longitude step in degrees; defaults to overlay.terminator_step_deg")
	configPath := flag.String("config", os.Getenv("SEATRAY_CONFIG"), "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *step != 0 {
		cfg.Overlay.TerminatorStepDeg = *step
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	ov := flight.NewPlanner(cfg).Overlay(parseTimeOrExit(*timeStr))
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ov); err != nil {
		log.Fatalf("Failed to write overlay: %v", err)
	}
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}
