package seat

import (
	"testing"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/solar"
)

// northbound builds samples flying due north along the prime meridian with
// the given Sun azimuths and altitudes.
func northbound(sun ...[2]float64) []solar.RouteSample {
	start := time.Date(2024, 6, 1, 6, 0, 0, 0, time.UTC)
	out := make([]solar.RouteSample, len(sun))
	for i, s := range sun {
		out[i] = solar.RouteSample{
			Instant:     start.Add(time.Duration(i) * 10 * time.Minute),
			Position:    earth.GeoPoint{Lat: float64(i), Lon: 0},
			SunAzimuth:  s[0],
			SunAltitude: s[1],
		}
	}
	return out
}

func TestRecommend(t *testing.T) {
	cases := []struct {
		name        string
		samples     []solar.RouteSample
		want        Side
		rationale   Rationale
		left, right int
	}{
		{
			name:    "never visible",
			samples: northbound([2]float64{90, -10}, [2]float64{90, -5}, [2]float64{90, -1}),
			want:    None, rationale: NotVisible,
		},
		{
			name:    "empty",
			samples: nil,
			want:    None, rationale: NotVisible,
		},
		{
			name:    "only last sample visible",
			samples: northbound([2]float64{90, -10}, [2]float64{90, 5}),
			want:    None, rationale: NotVisible,
		},
		{
			name:    "east of northbound is right",
			samples: northbound([2]float64{90, 10}, [2]float64{90, 10}, [2]float64{270, 10}),
			want:    Right, rationale: Visible, right: 2,
		},
		{
			name:    "west of northbound is left",
			samples: northbound([2]float64{270, 10}, [2]float64{270, 10}, [2]float64{90, -5}, [2]float64{90, -5}),
			want:    Left, rationale: Visible, left: 2,
		},
		{
			name:    "right majority",
			samples: northbound([2]float64{270, 1}, [2]float64{90, 1}, [2]float64{100, 1}, [2]float64{0, 1}),
			want:    Right, rationale: Visible, left: 1, right: 2,
		},
		{
			name:    "tie favours left",
			samples: northbound([2]float64{270, 1}, [2]float64{90, 1}, [2]float64{0, 1}),
			want:    Left, rationale: Visible, left: 1, right: 1,
		},
		{
			name:    "visible but ahead or behind",
			samples: northbound([2]float64{0, 20}, [2]float64{180, 20}, [2]float64{10, 20}),
			want:    None, rationale: Visible,
		},
		{
			name:    "horizon counts as visible",
			samples: northbound([2]float64{90, 0}, [2]float64{90, -1}),
			want:    Right, rationale: Visible, right: 1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Recommend(c.samples)
			if got.Side != c.want || got.Rationale != c.rationale {
				t.Errorf("got %v/%v, want %v/%v", got.Side, got.Rationale, c.want, c.rationale)
			}
			if got.LeftCount != c.left || got.RightCount != c.right {
				t.Errorf("counts left=%d right=%d, want left=%d right=%d",
					got.LeftCount, got.RightCount, c.left, c.right)
			}
		})
	}
}
