// Package airports provides a small table of airports with coordinates and
// IANA time zones.
package airports

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/echoflaresat/seatray/earth"
	"gopkg.in/yaml.v3"
)

//go:embed airports.yaml
var builtin []byte

// ErrUnknownAirport is returned by Lookup for codes not in the table.
var ErrUnknownAirport = errors.New("unknown airport")

// Airport is one table entry.
type Airport struct {
	IATA     string  `yaml:"iata" json:"iata"`
	Name     string  `yaml:"name" json:"name"`
	City     string  `yaml:"city" json:"city"`
	Country  string  `yaml:"country" json:"country"`
	Lat      float64 `yaml:"lat" json:"lat"`
	Lon      float64 `yaml:"lon" json:"lon"`
	Timezone string  `yaml:"timezone" json:"timezone"`
}

// Point returns the airport position.
func (a Airport) Point() earth.GeoPoint {
	return earth.GeoPoint{Lat: a.Lat, Lon: earth.NormalizeLongitude(a.Lon)}
}

// Location loads the airport's time zone.
func (a Airport) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// Table is an immutable set of airports keyed by IATA code.
type Table struct {
	byCode map[string]Airport
	codes  []string
}

// Builtin parses the embedded airport list.
func Builtin() (*Table, error) {
	return Parse(builtin)
}

// Parse decodes a YAML list of airports. Every entry needs a unique IATA
// code, valid coordinates and a loadable time zone.
func Parse(data []byte) (*Table, error) {
	var list []Airport
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse airports: %w", err)
	}
	t := &Table{byCode: make(map[string]Airport, len(list))}
	for i, a := range list {
		code := strings.ToUpper(strings.TrimSpace(a.IATA))
		if code == "" {
			return nil, fmt.Errorf("airport %d: missing iata code", i)
		}
		if _, dup := t.byCode[code]; dup {
			return nil, fmt.Errorf("airport %s: duplicate iata code", code)
		}
		if _, err := earth.NewGeoPoint(a.Lat, a.Lon); err != nil {
			return nil, fmt.Errorf("airport %s: %w", code, err)
		}
		if _, err := a.Location(); err != nil {
			return nil, fmt.Errorf("airport %s: %w", code, err)
		}
		a.IATA = code
		t.byCode[code] = a
		t.codes = append(t.codes, code)
	}
	return t, nil
}

// Lookup returns the airport for an IATA code, ignoring case.
func (t *Table) Lookup(code string) (Airport, error) {
	a, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %q", ErrUnknownAirport, code)
	}
	return a, nil
}

// Codes returns the IATA codes in table order.
func (t *Table) Codes() []string {
	return append([]string(nil), t.codes...)
}
