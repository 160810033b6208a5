package earth

import "math"

// Segment is a polyline that can be drawn on an equirectangular map without
// wrapping across the antimeridian.
type Segment []GeoPoint

// SplitAtAntimeridian walks points once and starts a new segment wherever two
// consecutive longitudes differ by more than 180°. Concatenating the result
// reproduces points. An empty input yields no segments.
func SplitAtAntimeridian(points []GeoPoint) []Segment {
	if len(points) == 0 {
		return nil
	}
	var segments []Segment
	current := Segment{points[0]}
	for i := 1; i < len(points); i++ {
		if math.Abs(points[i].Lon-points[i-1].Lon) > 180 {
			segments = append(segments, current)
			current = Segment{}
		}
		current = append(current, points[i])
	}
	return append(segments, current)
}
