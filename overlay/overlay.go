// Package overlay computes flight independent sky geometry for a map: the
// subsolar point and day/night boundary curves.
package overlay

import (
	"math"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"github.com/echoflaresat/seatray/solar"
)

// Obliquity is the axial tilt used by the harmonic declination formula.
const Obliquity = 23.44

// Subsolar returns the approximate point where the Sun is overhead at t.
// Latitude uses declination ≈ 23.44° × sin(360/365 × (dayOfYear − 81)) and
// longitude 180 − minutesUTC/4, where minutesUTC counts whole minutes.
func Subsolar(t time.Time) earth.GeoPoint {
	t = t.UTC()
	decl := Obliquity * math.Sin((360.0/365.0)*float64(t.YearDay()-81)*math.Pi/180)
	minutes := float64(t.Hour()*60 + t.Minute())
	return earth.GeoPoint{Lat: decl, Lon: earth.NormalizeLongitude(180 - minutes/4)}
}

// Terminator samples the ephemeris at latitude 0 every stepDeg of longitude
// across the full circle and uses the solar declination as the curve's
// latitude. The -180° meridian is the same as 180° and is emitted once, at
// the end. Points whose ephemeris lookup fails or is not finite are
// skipped; skipped reports how many.
func Terminator(eph solar.Ephemeris, t time.Time, stepDeg float64) (points []earth.GeoPoint, skipped int) {
	for _, lon := range meridians(stepDeg) {
		pos, err := eph.Position(t, earth.GeoPoint{Lat: 0, Lon: lon})
		if err != nil || math.IsNaN(pos.Declination) || math.IsInf(pos.Declination, 0) {
			skipped++
			continue
		}
		points = append(points, earth.GeoPoint{Lat: pos.Declination, Lon: lon})
	}
	return points, skipped
}

// ShadowLine returns the great circle that separates day from night at t,
// as the boundary latitude for each meridian, using the full ephemeris for
// the subsolar point. Meridians where the boundary is undefined are skipped.
func ShadowLine(t time.Time, stepDeg float64) []earth.GeoPoint {
	sun := earth.SunZenith(t)
	tanDecl := math.Tan(sun.Lat * math.Pi / 180)

	var out []earth.GeoPoint
	for _, lon := range meridians(stepDeg) {
		h := (lon - sun.Lon) * math.Pi / 180
		lat := math.Atan(-math.Cos(h)/tanDecl) * 180 / math.Pi
		if math.IsNaN(lat) || math.IsInf(lat, 0) {
			continue
		}
		out = append(out, earth.GeoPoint{Lat: lat, Lon: lon})
	}
	return out
}

// meridians steps from -180 to 180 inclusive and normalizes each longitude,
// dropping -180 since it duplicates 180.
func meridians(stepDeg float64) []float64 {
	if stepDeg <= 0 || math.IsNaN(stepDeg) {
		return nil
	}
	var out []float64
	for lon := -180 + stepDeg; lon <= 180+1e-9; lon += stepDeg {
		out = append(out, earth.NormalizeLongitude(math.Min(lon, 180)))
	}
	return out
}
