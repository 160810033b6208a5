// Package solar computes the Sun's position for an observer and samples it
// along a great-circle route.
package solar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	meeussolar "github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// ErrEphemerisUnavailable is returned when the ephemeris cannot produce a
// finite solar position.
var ErrEphemerisUnavailable = errors.New("solar ephemeris unavailable")

// Position is the Sun as seen by an observer, in degrees. Azimuth is
// measured clockwise from north in [0, 360).
type Position struct {
	Azimuth     float64 `json:"azimuth"`
	Altitude    float64 `json:"altitude"`
	Declination float64 `json:"declination"`
}

// Ephemeris supplies solar positions and the almanac rise/set times for a
// location.
type Ephemeris interface {
	// Position returns the Sun's position seen from p at t.
	Position(t time.Time, p earth.GeoPoint) (Position, error)
	// RiseSet returns sunrise and sunset at p for the UTC calendar day
	// containing day. Zero values mean the event does not happen that day.
	RiseSet(day time.Time, p earth.GeoPoint) (rise, set time.Time)
}

// Almanac is the default Ephemeris. Positions come from the low precision
// solar theory in Meeus, Astronomical Algorithms, ch. 25, rise/set times
// from the NOAA sunrise equation.
type Almanac struct{}

// Position implements Ephemeris.
func (Almanac) Position(t time.Time, p earth.GeoPoint) (Position, error) {
	jd := julian.TimeToJD(t.UTC())
	ra, dec := meeussolar.ApparentEquatorial(jd)
	gast := sidereal.Apparent(jd).Angle()

	phi := p.Lat * math.Pi / 180
	// Local hour angle. Meeus counts longitude positive west, GeoPoint east.
	h := gast.Rad() + p.Lon*math.Pi/180 - ra.Rad()
	sinH, cosH := math.Sincos(h)

	// Meeus (13.5), (13.6): azimuth measured westward from south.
	az := math.Atan2(sinH, cosH*math.Sin(phi)-math.Tan(dec.Rad())*math.Cos(phi))
	alt := math.Asin(math.Sin(phi)*dec.Sin() + math.Cos(phi)*dec.Cos()*cosH)

	pos := Position{
		Azimuth:     earth.NormalizeAzimuth(unit.Angle(az + math.Pi).Mod1().Deg()),
		Altitude:    alt * 180 / math.Pi,
		Declination: dec.Deg(),
	}
	if !pos.finite() {
		return Position{}, fmt.Errorf("%w: non-finite position at %v for %v", ErrEphemerisUnavailable, t, p)
	}
	return pos, nil
}

// RiseSet implements Ephemeris.
func (Almanac) RiseSet(day time.Time, p earth.GeoPoint) (rise, set time.Time) {
	y, m, d := day.UTC().Date()
	return sunrise.SunriseSunset(p.Lat, p.Lon, y, m, d)
}

func (p Position) finite() bool {
	for _, v := range []float64{p.Azimuth, p.Altitude, p.Declination} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
