package solar

import (
	"fmt"
	"time"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/nathan-osman/go-sunrise"
)

// Approximate estimates sunrise with the closed-form NOAA solar equations.
// It always places the Sun's centre at -50' (-0.833°) and ignores the
// location's Horizon and Pressure.
type Approximate struct {
	location Location
	zone     *time.Location
}

// NewApproximate validates loc and returns an approximate calculator for it
func NewApproximate(loc Location) (*Approximate, error) {
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", loc.Name, err)
	}
	zone, _ := loc.Zone()
	return &Approximate{location: loc, zone: zone}, nil
}

// Sunrise returns the estimated local sunrise on d
func (a *Approximate) Sunrise(d calendar.Date) (time.Time, error) {
	if !d.IsValid() {
		return time.Time{}, fmt.Errorf("sunrise for %s: %w", d, calendar.ErrInvalidDate)
	}
	rise, _ := sunrise.SunriseSunset(a.location.Latitude, a.location.Longitude, d.Year, d.Month, d.Day)
	if rise.IsZero() {
		return time.Time{}, fmt.Errorf("sunrise for %s: %w", d, ErrNoSunrise)
	}
	return rise.In(a.zone), nil
}
