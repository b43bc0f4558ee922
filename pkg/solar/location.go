package solar

import (
	"fmt"
	"time"
	_ "time/tzdata" // observers are resolved by IANA name on hosts without zoneinfo

	"github.com/soniakeys/unit"
)

// NavigationalHorizon is the U.S. Naval Observatory horizon depression of 0°34′
var NavigationalHorizon = unit.AngleFromMin(-34)

// Location is a fixed observer on the ground
type Location struct {
	Name      string
	Latitude  float64    // degrees, north positive
	Longitude float64    // degrees, east positive
	Horizon   unit.Angle // altitude of the horizon the upper limb must clear
	Pressure  float64    // mbar; zero disables refraction beyond Horizon
	TimeZone  string     // IANA zone name used for local clock times
}

// Raleigh is the observer used for the Wake County analyses
var Raleigh = Location{
	Name:      "Raleigh, NC",
	Latitude:  35.78,
	Longitude: -78.64,
	Horizon:   NavigationalHorizon,
	Pressure:  0,
	TimeZone:  "America/New_York",
}

// Validate checks the coordinate ranges and resolves the time zone
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", l.Longitude)
	}
	if l.Pressure < 0 {
		return fmt.Errorf("pressure %v must not be negative", l.Pressure)
	}
	if _, err := l.Zone(); err != nil {
		return err
	}
	return nil
}

// Zone loads the observer's time zone
func (l Location) Zone() (*time.Location, error) {
	if l.TimeZone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(l.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", l.TimeZone, err)
	}
	return loc, nil
}
