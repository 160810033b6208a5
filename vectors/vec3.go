package vectors

import "math"

// Vec3 is a simple 3D vector with float64 components.
type Vec3 struct {
	X, Y, Z float64
}

// FromLatLon returns the unit vector in Earth-fixed coordinates pointing at
// the geodetic position (latDeg, lonDeg) on a spherical Earth.
func FromLatLon(latDeg, lonDeg float64) Vec3 {
	lat := latDeg * math.Pi / 180.0
	lon := lonDeg * math.Pi / 180.0
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// LatLon returns the geodetic latitude and longitude in degrees of the
// direction v. Longitude is in [-180, 180].
func (v Vec3) LatLon() (latDeg, lonDeg float64) {
	lat := math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	lon := math.Atan2(v.Y, v.X)
	return lat * 180.0 / math.Pi, lon * 180.0 / math.Pi
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector (0,0,0).
func (v Vec3) Normalize() Vec3 {
	n := v.Norm()
	if n == 0 {
		return Vec3{}
	}
	return v.Scale(1.0 / n)
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Slerp combines a and b with the spherical interpolation weights
// sin((1-t)Δ)/sin(Δ) and sin(tΔ)/sin(Δ), where Δ is the angle between them.
// The caller supplies Δ so it can be computed once per arc.
func Slerp(a, b Vec3, delta, t float64) Vec3 {
	s := math.Sin(delta)
	wa := math.Sin((1-t)*delta) / s
	wb := math.Sin(t*delta) / s
	return a.Scale(wa).Add(b.Scale(wb))
}
