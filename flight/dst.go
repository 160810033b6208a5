package flight

import (
	"fmt"
	"time"
)

// IsDSTChange reports whether the UTC offset of t's location differs between
// the start and the end of t's local calendar day.
func IsDSTChange(t time.Time) bool {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
	_, startOffset := start.Zone()
	_, endOffset := end.Zone()
	return startOffset != endOffset
}

func dstWarnings(req Request, departure, arrival time.Time) []string {
	var out []string
	if req.OriginZone != nil && IsDSTChange(departure) {
		out = append(out, fmt.Sprintf("departure day is a DST changeover in %s", placeName(req.OriginName, req.OriginZone)))
	}
	if req.DestinationZone != nil && IsDSTChange(arrival) {
		out = append(out, fmt.Sprintf("arrival day is a DST changeover in %s", placeName(req.DestinationName, req.DestinationZone)))
	}
	return out
}

func placeName(name string, loc *time.Location) string {
	if name != "" {
		return name
	}
	return loc.String()
}
