// Package events finds sunrises and sunsets seen from an aircraft along a
// sampled route.
package events

import (
	"math"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/solar"
)

// Kind is the direction of a horizon crossing.
type Kind string

const (
	Sunrise Kind = "sunrise"
	Sunset  Kind = "sunset"
)

// SunEvent is a sunrise or sunset observed during the flight.
type SunEvent struct {
	Kind     Kind           `json:"type"`
	Instant  time.Time      `json:"time"`
	Position earth.GeoPoint `json:"position"`
	Azimuth  float64        `json:"azimuth"`
	Side     earth.Side     `json:"side"`
}

// Detect scans adjacent samples for altitude sign changes. A sunrise is
// prev < 0 <= next, a sunset prev >= 0 > next. Each event is reported at the
// position and azimuth of the later sample, tagged with the side of travel
// for the heading between the two samples. The result is in time order and
// may be empty.
func Detect(eph solar.Ephemeris, samples []solar.RouteSample) []SunEvent {
	var out []SunEvent
	for i := 1; i < len(samples); i++ {
		prev, next := samples[i-1], samples[i]

		var kind Kind
		switch {
		case prev.SunAltitude < 0 && next.SunAltitude >= 0:
			kind = Sunrise
		case prev.SunAltitude >= 0 && next.SunAltitude < 0:
			kind = Sunset
		default:
			continue
		}

		heading := earth.InitialBearing(prev.Position, next.Position)
		out = append(out, SunEvent{
			Kind:     kind,
			Instant:  refine(eph, kind, prev, next),
			Position: next.Position,
			Azimuth:  next.SunAzimuth,
			Side:     earth.ClassifySide(next.SunAzimuth, heading),
		})
	}
	return out
}

// refine prefers the almanac time for the later sample's location when it
// falls strictly inside the bracket. The almanac is consulted for the UTC
// day of the sample and the days either side so events close to midnight
// UTC are still matched. Otherwise the altitude zero crossing is
// interpolated linearly.
func refine(eph solar.Ephemeris, kind Kind, prev, next solar.RouteSample) time.Time {
	if eph != nil {
		for _, offset := range []int{0, -1, 1} {
			rise, set := eph.RiseSet(next.Instant.AddDate(0, 0, offset), next.Position)
			at := rise
			if kind == Sunset {
				at = set
			}
			if !at.IsZero() && at.After(prev.Instant) && at.Before(next.Instant) {
				return at.UTC()
			}
		}
	}
	span := next.Instant.Sub(prev.Instant)
	frac := math.Abs(prev.SunAltitude) / math.Abs(next.SunAltitude-prev.SunAltitude)
	return prev.Instant.Add(time.Duration(frac * float64(span)))
}
