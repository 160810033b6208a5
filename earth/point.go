package earth

import (
	"errors"
	"fmt"
	"math"

	"github.com/echoflaresat/seatray/vectors"
)

// ErrInvalidCoordinate is returned for latitudes or longitudes that are out
// of range or not finite.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// GeoPoint is a geographic position in degrees. Longitude is kept in (-180, 180].
type GeoPoint struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// NewGeoPoint validates lat and lon and returns a point with its longitude
// normalized into (-180, 180].
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return GeoPoint{}, fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return GeoPoint{}, fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, lon)
	}
	return GeoPoint{Lat: lat, Lon: NormalizeLongitude(lon)}, nil
}

// Validate reports whether p holds finite, in-range coordinates.
func (p GeoPoint) Validate() error {
	_, err := NewGeoPoint(p.Lat, p.Lon)
	return err
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Lat, p.Lon)
}

func (p GeoPoint) vector() vectors.Vec3 {
	return vectors.FromLatLon(p.Lat, p.Lon)
}

// NormalizeLongitude wraps lon (degrees) into (-180, 180].
func NormalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon <= -180 {
		lon += 360
	} else if lon > 180 {
		lon -= 360
	}
	return lon
}

// NormalizeAzimuth wraps deg into [0, 360).
func NormalizeAzimuth(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func toRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func toDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
