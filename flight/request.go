package flight

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
	"github.com/echoflaresat/seatray/airports"
	"github.com/echoflaresat/seatray/earth"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// Request describes one flight. Departure is an absolute instant; the zones
// and names are optional and only used for reporting.
type Request struct {
	Origin          earth.GeoPoint
	Destination     earth.GeoPoint
	Departure       time.Time
	Duration        time.Duration
	OriginName      string
	DestinationName string
	OriginZone      *time.Location
	DestinationZone *time.Location
}

// civilLayouts are the accepted spellings of a local departure time.
var civilLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseDeparture interprets civil as wall-clock time in the IANA zone and
// returns the corresponding instant in UTC.
func ParseDeparture(civil string, zone *time.Location) (time.Time, error) {
	civil = strings.TrimSpace(civil)
	for _, layout := range civilLayouts {
		if t, err := time.ParseInLocation(layout, civil, zone); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable departure time %q", ErrInvalidInput, civil)
}

// DurationFromHours converts a fractional number of hours, which must be
// positive and finite.
func DurationFromHours(hours float64) (time.Duration, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, fmt.Errorf("%w: flight duration must be a positive number of hours, got %v", ErrInvalidInput, hours)
	}
	return time.Duration(hours * float64(time.Hour)), nil
}

// FromAirports builds a request between two airports, departing at the
// civil time civil in the origin's zone. All problems are reported together.
func FromAirports(from, to airports.Airport, civil string, hours float64) (Request, error) {
	errs := &errors.M{}
	fromZone, err := from.Location()
	if err != nil {
		errs.Append(fmt.Errorf("%w: origin time zone: %w", ErrInvalidInput, err))
	}
	toZone, err := to.Location()
	if err != nil {
		errs.Append(fmt.Errorf("%w: destination time zone: %w", ErrInvalidInput, err))
	}
	var departure time.Time
	if fromZone != nil {
		departure, err = ParseDeparture(civil, fromZone)
		errs.Append(err)
	}
	duration, err := DurationFromHours(hours)
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return Request{}, err
	}

	req := Request{
		Origin:          from.Point(),
		Destination:     to.Point(),
		Departure:       departure,
		Duration:        duration,
		OriginName:      from.City,
		DestinationName: to.City,
		OriginZone:      fromZone,
		DestinationZone: toZone,
	}
	return req, req.Validate()
}

// Validate reports every problem with r. Each reported error wraps
// ErrInvalidInput.
func (r Request) Validate() error {
	errs := &errors.M{}
	if err := r.Origin.Validate(); err != nil {
		errs.Append(fmt.Errorf("%w: origin: %w", ErrInvalidInput, err))
	}
	if err := r.Destination.Validate(); err != nil {
		errs.Append(fmt.Errorf("%w: destination: %w", ErrInvalidInput, err))
	}
	if r.Departure.IsZero() {
		errs.Append(fmt.Errorf("%w: missing departure time", ErrInvalidInput))
	}
	if r.Duration <= 0 {
		errs.Append(fmt.Errorf("%w: flight duration must be positive, got %v", ErrInvalidInput, r.Duration))
	}
	return errs.Err()
}

// Arrival returns the arrival instant.
func (r Request) Arrival() time.Time {
	return r.Departure.Add(r.Duration)
}

func inZone(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t.UTC()
	}
	return t.In(loc)
}

// ShareParams are the URL query parameters that reproduce a request from
// airport codes.
type ShareParams struct {
	Source      string
	Destination string
	Departure   string
	Duration    string
}

// Encode renders the parameters as a URL query string.
func (s ShareParams) Encode() string {
	v := url.Values{}
	v.Set("source", s.Source)
	v.Set("destination", s.Destination)
	v.Set("departure", s.Departure)
	v.Set("duration", s.Duration)
	return v.Encode()
}

// Hours parses the duration parameter.
func (s ShareParams) Hours() (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s.Duration), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q: %w", ErrInvalidInput, s.Duration, err)
	}
	return h, nil
}

// ParseShareParams reads parameters from a URL query string. Airport codes
// are upper-cased; missing parameters are left empty.
func ParseShareParams(query string) (ShareParams, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(query, "?"))
	if err != nil {
		return ShareParams{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return ShareParams{
		Source:      strings.ToUpper(v.Get("source")),
		Destination: strings.ToUpper(v.Get("destination")),
		Departure:   v.Get("departure"),
		Duration:    v.Get("duration"),
	}, nil
}
