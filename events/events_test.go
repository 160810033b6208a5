package events

import (
	"testing"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/solar"
)

// almanac returns fixed rise/set times regardless of day and place.
type almanac struct {
	solar.Almanac
	rise, set time.Time
}

func (a almanac) RiseSet(time.Time, earth.GeoPoint) (time.Time, time.Time) {
	return a.rise, a.set
}

var t0 = time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

// westbound builds samples flying due west along the equator, ten minutes
// apart, with the given altitudes and a Sun in the south.
func westbound(alts ...float64) []solar.RouteSample {
	out := make([]solar.RouteSample, len(alts))
	for i, alt := range alts {
		out[i] = solar.RouteSample{
			Instant:     t0.Add(time.Duration(i) * 10 * time.Minute),
			Position:    earth.GeoPoint{Lat: 0, Lon: -float64(i)},
			SunAzimuth:  180,
			SunAltitude: alt,
		}
	}
	return out
}

func TestDetectNone(t *testing.T) {
	cases := map[string][]solar.RouteSample{
		"empty":      nil,
		"single":     westbound(5),
		"all day":    westbound(5, 10, 15, 20),
		"all night":  westbound(-30, -20, -10, -1),
		"zero start": westbound(0, 1, 2),
	}
	for name, samples := range cases {
		t.Run(name, func(t *testing.T) {
			if got := Detect(almanac{}, samples); len(got) != 0 {
				t.Errorf("expected no events, got %v", got)
			}
		})
	}
}

func TestDetectInterpolated(t *testing.T) {
	samples := westbound(10, 2, -6, -12, -4, 4)
	got := Detect(almanac{}, samples)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2: %v", len(got), got)
	}

	set := got[0]
	if set.Kind != Sunset {
		t.Errorf("first event %v, want sunset", set.Kind)
	}
	// 2 -> -6 crosses zero a quarter of the way through the interval.
	if want := samples[1].Instant.Add(150 * time.Second); !set.Instant.Equal(want) {
		t.Errorf("sunset at %v, want %v", set.Instant, want)
	}
	if set.Position != samples[2].Position || set.Azimuth != samples[2].SunAzimuth {
		t.Errorf("sunset reported at %v az %v, want later sample", set.Position, set.Azimuth)
	}
	if set.Side != earth.Left {
		t.Errorf("sunset side %v, want left for a westbound flight with the Sun south", set.Side)
	}

	rise := got[1]
	if rise.Kind != Sunrise {
		t.Errorf("second event %v, want sunrise", rise.Kind)
	}
	if want := samples[4].Instant.Add(5 * time.Minute); !rise.Instant.Equal(want) {
		t.Errorf("sunrise at %v, want %v", rise.Instant, want)
	}
	if !rise.Instant.After(set.Instant) {
		t.Error("events out of time order")
	}
}

func TestDetectStrictlyInsideBracket(t *testing.T) {
	samples := westbound(-0.5, 0.001, 3, -0.001, -7, 9)
	for _, ev := range Detect(almanac{}, samples) {
		var bracketed bool
		for i := 1; i < len(samples); i++ {
			if ev.Instant.After(samples[i-1].Instant) && ev.Instant.Before(samples[i].Instant) {
				bracketed = true
			}
		}
		if !bracketed {
			t.Errorf("%v at %v not strictly between two samples", ev.Kind, ev.Instant)
		}
	}
}

func TestDetectPrefersAlmanac(t *testing.T) {
	samples := westbound(-6, 4)
	inside := samples[0].Instant.Add(7 * time.Minute)
	got := Detect(almanac{rise: inside}, samples)
	if len(got) != 1 || got[0].Kind != Sunrise {
		t.Fatalf("got %v", got)
	}
	if !got[0].Instant.Equal(inside) {
		t.Errorf("sunrise at %v, want almanac time %v", got[0].Instant, inside)
	}
}

func TestDetectIgnoresAlmanacOutsideBracket(t *testing.T) {
	samples := westbound(6, -4)
	cases := map[string]time.Time{
		"before":      samples[0].Instant.Add(-time.Minute),
		"after":       samples[1].Instant.Add(time.Minute),
		"on boundary": samples[1].Instant,
	}
	for name, at := range cases {
		t.Run(name, func(t *testing.T) {
			got := Detect(almanac{set: at}, samples)
			if len(got) != 1 || got[0].Kind != Sunset {
				t.Fatalf("got %v", got)
			}
			if want := samples[0].Instant.Add(6 * time.Minute); !got[0].Instant.Equal(want) {
				t.Errorf("sunset at %v, want interpolated %v", got[0].Instant, want)
			}
		})
	}
}

func TestDetectSides(t *testing.T) {
	cases := []struct {
		azimuth float64
		want    earth.Side
	}{
		{270, earth.Ahead},
		{0, earth.Right},
		{90, earth.Behind},
		{180, earth.Left},
	}
	for _, c := range cases {
		samples := westbound(-1, 1)
		samples[1].SunAzimuth = c.azimuth
		got := Detect(almanac{}, samples)
		if len(got) != 1 {
			t.Fatalf("azimuth %v: got %v", c.azimuth, got)
		}
		if got[0].Side != c.want {
			t.Errorf("azimuth %v: side %v, want %v", c.azimuth, got[0].Side, c.want)
		}
	}
}
