// Package seat recommends the side of the aircraft with the better view of
// the Sun.
package seat

import (
	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/solar"
)

// Side is the recommended window side.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
	None  Side = "none"
)

// Rationale records whether the Sun was above the horizon at any sample.
type Rationale string

const (
	Visible    Rationale = "visible"
	NotVisible Rationale = "not-visible"
)

// Recommendation is the outcome of Recommend, with the per-side sample counts
// it was derived from.
type Recommendation struct {
	Side       Side      `json:"side"`
	Rationale  Rationale `json:"rationale"`
	LeftCount  int       `json:"left_count"`
	RightCount int       `json:"right_count"`
}

// Recommend counts, for every sample with a successor and the Sun at or
// above the horizon, whether the Sun is on the left or right of the heading
// toward the next sample. Ahead and behind count for neither side.
//
// A tie with sightings on both sides favours the left. A tie at zero with
// the Sun visible yields None with rationale Visible.
func Recommend(samples []solar.RouteSample) Recommendation {
	var rec Recommendation
	visible := false
	for i := 0; i+1 < len(samples); i++ {
		p1, p2 := samples[i], samples[i+1]
		if p1.SunAltitude < 0 {
			continue
		}
		visible = true
		heading := earth.InitialBearing(p1.Position, p2.Position)
		switch earth.ClassifySide(p1.SunAzimuth, heading) {
		case earth.Left:
			rec.LeftCount++
		case earth.Right:
			rec.RightCount++
		}
	}

	if !visible {
		rec.Side, rec.Rationale = None, NotVisible
		return rec
	}
	rec.Rationale = Visible
	switch {
	case rec.LeftCount > rec.RightCount:
		rec.Side = Left
	case rec.RightCount > rec.LeftCount:
		rec.Side = Right
	case rec.LeftCount > 0:
		rec.Side = Left
	default:
		rec.Side = None
	}
	return rec
}
