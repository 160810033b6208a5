// Package flight plans the Sun's behaviour over a great-circle flight: the
// drawn route, Sun samples, sunrise/sunset events and the seat to pick.
package flight

import (
	"context"
	"fmt"
	"time"

	"github.com/echoflaresat/seatray/config"
	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/events"
	"github.com/echoflaresat/seatray/overlay"
	"github.com/echoflaresat/seatray/seat"
	"github.com/echoflaresat/seatray/solar"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is everything derived for one flight.
type Result struct {
	Origin         earth.GeoPoint      `json:"origin"`
	Destination    earth.GeoPoint      `json:"destination"`
	Departure      time.Time           `json:"departure"`
	Arrival        time.Time           `json:"arrival"`
	Duration       time.Duration       `json:"duration"`
	DistanceKm     float64             `json:"distance_km"`
	InitialBearing float64             `json:"initial_bearing"`
	Path           []earth.Segment     `json:"path"`
	Samples        []solar.RouteSample `json:"samples"`
	Events         []events.SunEvent   `json:"events"`
	Seat           seat.Recommendation `json:"seat"`
	Warnings       []string            `json:"warnings,omitempty"`
	request        Request
}

// Overlay is the flight independent sky state at one instant.
type Overlay struct {
	Instant    time.Time        `json:"instant"`
	Subsolar   earth.GeoPoint   `json:"subsolar"`
	Terminator []earth.GeoPoint `json:"terminator"`
	ShadowLine []earth.GeoPoint `json:"shadow_line"`
}

// Planner computes results from requests. It holds no mutable state and is
// safe for concurrent use.
type Planner struct {
	cfg config.Config
	eph solar.Ephemeris
	log *zap.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithEphemeris replaces the default solar.Almanac.
func WithEphemeris(eph solar.Ephemeris) Option {
	return func(p *Planner) { p.eph = eph }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(p *Planner) { p.log = l }
}

// NewPlanner returns a Planner using cfg. Zero fields of cfg take their
// defaults.
func NewPlanner(cfg config.Config, opts ...Option) *Planner {
	cfg.ApplyDefaults()
	p := &Planner{cfg: cfg, eph: solar.Almanac{}, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan validates req and computes its result. Invalid input fails before any
// computation with an error wrapping ErrInvalidInput; an ephemeris failure
// wraps solar.ErrEphemerisUnavailable.
func (p *Planner) Plan(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	samples, err := solar.SampleRoute(p.eph, req.Origin, req.Destination, req.Departure, req.Duration, p.cfg.Sampling.Interval())
	if err != nil {
		return Result{}, fmt.Errorf("sample route %v -> %v: %w", req.Origin, req.Destination, err)
	}

	res := Result{
		Origin:         req.Origin,
		Destination:    req.Destination,
		Departure:      inZone(req.Departure, req.OriginZone),
		Arrival:        inZone(req.Arrival(), req.DestinationZone),
		Duration:       req.Duration,
		DistanceKm:     earth.Distance(req.Origin, req.Destination),
		InitialBearing: earth.InitialBearing(req.Origin, req.Destination),
		Path:           earth.SplitAtAntimeridian(earth.Path(req.Origin, req.Destination, p.cfg.Sampling.PathSteps)),
		Samples:        samples,
		Events:         events.Detect(p.eph, samples),
		Seat:           seat.Recommend(samples),
		request:        req,
	}
	res.Warnings = dstWarnings(req, res.Departure, res.Arrival)

	p.log.Debug("planned flight",
		zap.Stringer("origin", req.Origin),
		zap.Stringer("destination", req.Destination),
		zap.Time("departure", req.Departure),
		zap.Duration("duration", req.Duration),
		zap.Int("samples", len(samples)),
		zap.Int("segments", len(res.Path)),
		zap.Int("events", len(res.Events)),
		zap.String("seat", string(res.Seat.Side)),
	)
	return res, nil
}

// PlanAll plans every request concurrently with at most cfg.Batch.Workers
// in flight. Results are in request order; the first failure cancels the
// remaining work.
func (p *Planner) PlanAll(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Batch.Workers)
	for i, req := range reqs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Plan(req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// At returns the aircraft position and Sun geometry at any instant of a
// planned flight, for scrubbing through it.
func (p *Planner) At(res Result, t time.Time) (solar.RouteSample, error) {
	return solar.SampleAt(p.eph, res.Samples, t)
}

// Overlay computes the subsolar point and day/night curves at t.
func (p *Planner) Overlay(t time.Time) Overlay {
	step := p.cfg.Overlay.TerminatorStepDeg
	terminator, skipped := overlay.Terminator(p.eph, t, step)
	if skipped > 0 {
		p.log.Debug("skipped terminator points", zap.Time("instant", t), zap.Int("skipped", skipped))
	}
	return Overlay{
		Instant:    t.UTC(),
		Subsolar:   overlay.Subsolar(t),
		Terminator: terminator,
		ShadowLine: overlay.ShadowLine(t, step),
	}
}
