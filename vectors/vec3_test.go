package vectors

import (
	"math"
	"testing"
)

func TestLatLonRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"origin", 0, 0},
		{"singapore", 1.3644, 103.9915},
		{"london", 51.47, -0.4543},
		{"south", -33.9399, 151.1753},
		{"west", 33.9416, -118.4085},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := FromLatLon(c.lat, c.lon)
			if math.Abs(v.Norm()-1) > 1e-12 {
				t.Fatalf("expected unit vector, got norm %v", v.Norm())
			}
			lat, lon := v.LatLon()
			if math.Abs(lat-c.lat) > 1e-9 || math.Abs(lon-c.lon) > 1e-9 {
				t.Errorf("got (%v, %v), want (%v, %v)", lat, lon, c.lat, c.lon)
			}
		})
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-12 || math.Abs(c.Dot(b)) > 1e-12 {
		t.Errorf("cross product %v is not orthogonal to inputs", c)
	}
}

func TestNormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("got %v, want zero vector", got)
	}
}

func TestSlerpMidpoint(t *testing.T) {
	a := FromLatLon(0, 0)
	b := FromLatLon(0, 90)
	mid := Slerp(a, b, math.Pi/2, 0.5)
	lat, lon := mid.LatLon()
	if math.Abs(lat) > 1e-9 || math.Abs(lon-45) > 1e-9 {
		t.Errorf("got (%v, %v), want (0, 45)", lat, lon)
	}
	if math.Abs(mid.Norm()-1) > 1e-12 {
		t.Errorf("slerp left the unit sphere: norm %v", mid.Norm())
	}
}
