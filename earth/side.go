package earth

import "math"

// Side is where an object lies relative to the direction of travel.
type Side string

const (
	Ahead  Side = "ahead"
	Behind Side = "behind"
	Left   Side = "left"
	Right  Side = "right"
)

// RelativeAngle returns (azimuth - heading) wrapped into [0, 360).
func RelativeAngle(azimuth, heading float64) float64 {
	return NormalizeAzimuth(math.Mod(azimuth-heading+360, 360))
}

// ClassifySide maps the azimuth of an object seen from a vehicle on the
// given heading to a side of travel:
//
//	(45,135]  right
//	(135,225] behind
//	(225,315] left
//	otherwise ahead
func ClassifySide(azimuth, heading float64) Side {
	rel := RelativeAngle(azimuth, heading)
	switch {
	case rel > 45 && rel <= 135:
		return Right
	case rel > 135 && rel <= 225:
		return Behind
	case rel > 225 && rel <= 315:
		return Left
	default:
		return Ahead
	}
}
