package earth

import (
	"math"

	"github.com/echoflaresat/seatray/vectors"
)

// CentralAngle returns the haversine central angle in radians between p1 and p2.
func CentralAngle(p1, p2 GeoPoint) float64 {
	phi1, phi2 := toRad(p1.Lat), toRad(p2.Lat)
	dPhi := phi2 - phi1
	dLambda := toRad(p2.Lon - p1.Lon)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	a = math.Min(1, math.Max(0, a))
	return 2 * math.Asin(math.Sqrt(a))
}

// Distance returns the great-circle distance in km between p1 and p2.
func Distance(p1, p2 GeoPoint) float64 {
	return Radius * CentralAngle(p1, p2)
}

// Interpolate returns the point at fraction f ∈ [0,1] along the shorter
// great-circle arc from p1 to p2. Identical points return p1 unchanged and
// the endpoints are returned exactly for f == 0 and f == 1.
func Interpolate(p1, p2 GeoPoint, f float64) GeoPoint {
	delta := CentralAngle(p1, p2)
	if delta == 0 || f == 0 {
		return p1
	}
	if f == 1 {
		return p2
	}

	lat, lon := vectors.Slerp(p1.vector(), p2.vector(), delta, f).LatLon()
	return GeoPoint{Lat: lat, Lon: NormalizeLongitude(lon)}
}

// InitialBearing returns the forward azimuth in degrees [0, 360) from p1 toward p2.
func InitialBearing(p1, p2 GeoPoint) float64 {
	phi1, phi2 := toRad(p1.Lat), toRad(p2.Lat)
	dLambda := toRad(p2.Lon - p1.Lon)

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	return NormalizeAzimuth(toDeg(math.Atan2(y, x)))
}

// Path returns steps+1 points evenly spaced by arc fraction from p1 to p2.
func Path(p1, p2 GeoPoint, steps int) []GeoPoint {
	if steps < 1 {
		steps = 1
	}
	out := make([]GeoPoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		out = append(out, Interpolate(p1, p2, float64(i)/float64(steps)))
	}
	return out
}
