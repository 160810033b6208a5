package flight

import (
	"fmt"
	"strconv"

	"github.com/echoflaresat/seatray/seat"
)

// Facts is the structured summary handed to a text-generation collaborator.
type Facts struct {
	SourceCity      string      `json:"sourceCity"`
	DestinationCity string      `json:"destinationCity"`
	DepartureTime   string      `json:"departureTime"`
	FlightTime      string      `json:"flightTime"`
	SunSummary      string      `json:"sunSummary"`
	Recommendation  string      `json:"recommendation"`
	SunEvents       []FactEvent `json:"sunEvents"`
}

// FactEvent is one sunrise or sunset in Facts.
type FactEvent struct {
	Type    string  `json:"type"`
	Time    string  `json:"time"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Azimuth float64 `json:"azimuth"`
	Side    string  `json:"side"`
}

const notVisibleText = "Neither (Sun not visible during flight)"

// Facts summarizes res. Event times are given in UTC.
func (r Result) Facts() Facts {
	f := Facts{
		SourceCity:      r.request.OriginName,
		DestinationCity: r.request.DestinationName,
		DepartureTime:   r.Departure.Format("2006-01-02 15:04 MST"),
		FlightTime:      strconv.FormatFloat(r.Duration.Hours(), 'f', -1, 64),
		Recommendation:  RecommendationText(r.Seat),
		SunSummary:      SunSummary(r.Seat),
		SunEvents:       make([]FactEvent, 0, len(r.Events)),
	}
	for _, ev := range r.Events {
		f.SunEvents = append(f.SunEvents, FactEvent{
			Type:    string(ev.Kind),
			Time:    ev.Instant.UTC().Format("2006-01-02T15:04:05Z"),
			Lat:     ev.Position.Lat,
			Lon:     ev.Position.Lon,
			Azimuth: ev.Azimuth,
			Side:    string(ev.Side),
		})
	}
	return f
}

// RecommendationText is the headline wording for a recommendation.
func RecommendationText(rec seat.Recommendation) string {
	switch rec.Side {
	case seat.Left:
		return "Left"
	case seat.Right:
		return "Right"
	}
	if rec.Rationale == seat.Visible {
		return "Neither (Sun only ahead or behind)"
	}
	return notVisibleText
}

// SunSummary is a one sentence description of where the Sun was seen.
func SunSummary(rec seat.Recommendation) string {
	if rec.Rationale != seat.Visible {
		return "The sun is below the horizon for the entire flight."
	}
	return fmt.Sprintf("The sun is visible on the left for %d and on the right for %d sampled intervals.", rec.LeftCount, rec.RightCount)
}
