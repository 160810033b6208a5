package earth

import (
	"time"

	"github.com/echoflaresat/seatray/vectors"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

const Radius = 6371.0 // Earth radius in km (spherical approximation)

// SunDirection returns the unit vector from the Earth's centre toward the
// Sun in Earth-fixed coordinates (X through 0°E, Z through the north pole).
func SunDirection(t time.Time) vectors.Vec3 {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun
	ra, dec := solar.ApparentEquatorial(jd)

	// Unit vector in the inertial frame
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Rotate into the Earth-fixed frame by apparent sidereal time at t
	gast := sidereal.Apparent(jd).Angle()
	cosG, sinG := gast.Cos(), gast.Sin()

	return vectors.Vec3{
		X: x*cosG + y*sinG,
		Y: -x*sinG + y*cosG,
		Z: z,
	}
}

// SunZenith returns the point on the spherical Earth where the Sun is at the
// zenith at t, derived from the full solar ephemeris.
func SunZenith(t time.Time) GeoPoint {
	lat, lon := SunDirection(t).LatLon()
	return GeoPoint{Lat: lat, Lon: NormalizeLongitude(lon)}
}
