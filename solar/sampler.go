package solar

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/echoflaresat/seatray/earth"
)

// RouteSample is the aircraft position and Sun geometry at one instant.
type RouteSample struct {
	Instant     time.Time      `json:"instant"`
	Position    earth.GeoPoint `json:"position"`
	SunAzimuth  float64        `json:"sun_azimuth"`
	SunAltitude float64        `json:"sun_altitude"`
}

// Steps returns the number of sampling intervals for a flight:
// ceil(duration / interval), never less than one.
func Steps(duration, interval time.Duration) int {
	steps := int(math.Ceil(duration.Minutes() / interval.Minutes()))
	if steps < 1 {
		steps = 1
	}
	return steps
}

// SampleRoute samples the Sun along the great circle from origin to
// destination. Samples are taken at fractions i/steps for i in 0..steps, so
// the first and last samples sit exactly at departure and arrival.
func SampleRoute(eph Ephemeris, origin, destination earth.GeoPoint, departure time.Time, duration, interval time.Duration) ([]RouteSample, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("flight duration must be positive, got %v", duration)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("sampling interval must be positive, got %v", interval)
	}
	departure = departure.UTC()
	steps := Steps(duration, interval)

	samples := make([]RouteSample, 0, steps+1)
	for i := 0; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		at := departure.Add(time.Duration(frac * float64(duration)))
		if i == steps {
			at = departure.Add(duration)
		}
		s, err := sampleAt(eph, at, earth.Interpolate(origin, destination, frac))
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// SampleAt returns the route state at an arbitrary instant by interpolating
// the position along the great circle between the two samples bracketing t
// and recomputing the Sun there. Instants outside the sampled range clamp to
// the first or last sample.
func SampleAt(eph Ephemeris, samples []RouteSample, t time.Time) (RouteSample, error) {
	if len(samples) == 0 {
		return RouteSample{}, errors.New("no route samples")
	}
	first, last := samples[0], samples[len(samples)-1]
	if !t.After(first.Instant) {
		return first, nil
	}
	if !t.Before(last.Instant) {
		return last, nil
	}
	// samples[i-1] < t <= samples[i]
	i := sort.Search(len(samples), func(i int) bool {
		return !samples[i].Instant.Before(t)
	})
	prev, next := samples[i-1], samples[i]
	if next.Instant.Equal(t) {
		return next, nil
	}
	frac := float64(t.Sub(prev.Instant)) / float64(next.Instant.Sub(prev.Instant))
	return sampleAt(eph, t.UTC(), earth.Interpolate(prev.Position, next.Position, frac))
}

func sampleAt(eph Ephemeris, t time.Time, p earth.GeoPoint) (RouteSample, error) {
	pos, err := eph.Position(t, p)
	if err != nil {
		if !errors.Is(err, ErrEphemerisUnavailable) {
			err = fmt.Errorf("%w: %w", ErrEphemerisUnavailable, err)
		}
		return RouteSample{}, err
	}
	if !pos.finite() {
		return RouteSample{}, fmt.Errorf("%w: non-finite position at %v for %v", ErrEphemerisUnavailable, t, p)
	}
	return RouteSample{
		Instant:     t,
		Position:    p,
		SunAzimuth:  pos.Azimuth,
		SunAltitude: pos.Altitude,
	}, nil
}
