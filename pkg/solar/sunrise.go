// Package solar computes sunrise for a fixed observer. Observer follows the
// rising algorithm of Meeus, Astronomical Algorithms ch. 15, using apparent
// solar coordinates interpolated across three days; Approximate wraps the
// NOAA-style closed form for quick estimates.
package solar

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/meeus/v3/sidereal"
	msolar "github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// ErrNoSunrise is returned when the Sun does not cross the horizon on a day
var ErrNoSunrise = errors.New("sun does not rise")

// SunSemidiameter is the mean angular radius of the solar disk
var SunSemidiameter = unit.AngleFromMin(16)

// standardRefraction is the horizontal refraction at 1010 mbar, 10°C
var standardRefraction = unit.AngleFromMin(34)

// deltaT is TT-UT for the 2010s. Its effect on rise times is well under a second.
const deltaT = unit.Time(69)

// ClockLayout renders local sunrise the way the reports print it
const ClockLayout = "15:04:05"

// Calculator returns the local sunrise for a civil date
type Calculator interface {
	Sunrise(d calendar.Date) (time.Time, error)
}

// Observer computes sunrise at a Location
type Observer struct {
	location Location
	coord    globe.Coord
	h0       unit.Angle
	zone     *time.Location
}

// NewObserver validates loc and prepares an observer for it
func NewObserver(loc Location) (*Observer, error) {
	if err := loc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid location %q: %w", loc.Name, err)
	}
	zone, _ := loc.Zone()

	return &Observer{
		location: loc,
		coord: globe.Coord{
			Lat: unit.AngleFromDeg(loc.Latitude),
			// Meeus measures longitude positive westward
			Lon: unit.AngleFromDeg(-loc.Longitude),
		},
		h0:   StandardAltitude(loc),
		zone: zone,
	}, nil
}

// StandardAltitude is the altitude of the Sun's centre at the rising instant:
// the upper limb on the horizon, lowered further by refraction when the
// location specifies an atmospheric pressure.
func StandardAltitude(loc Location) unit.Angle {
	h0 := loc.Horizon - SunSemidiameter
	if loc.Pressure > 0 {
		h0 -= unit.Angle(float64(standardRefraction) * loc.Pressure / 1010)
	}
	return h0
}

// Location returns the observer's location
func (o *Observer) Location() Location {
	return o.location
}

// Zone returns the observer's local time zone
func (o *Observer) Zone() *time.Location {
	return o.zone
}

// Sunrise returns the first sunrise at or after local midnight of d, in local time
func (o *Observer) Sunrise(d calendar.Date) (time.Time, error) {
	if !d.IsValid() {
		return time.Time{}, fmt.Errorf("sunrise for %s: %w", d, calendar.ErrInvalidDate)
	}
	midnight := d.Midnight(o.zone)

	// Local midnight falls on this UT day; the rising we want is on it or
	// the one after, depending on the zone offset.
	utDay := calendar.DateOf(midnight.UTC())
	for i := 0; i < 2; i++ {
		t, err := o.riseOn(utDay.AddDays(i))
		if err != nil {
			return time.Time{}, fmt.Errorf("sunrise for %s: %w", d, err)
		}
		if !t.Before(midnight) {
			return t.In(o.zone), nil
		}
	}
	return time.Time{}, fmt.Errorf("sunrise for %s: %w", d, ErrNoSunrise)
}

// riseOn returns the rising instant on the UT day day
func (o *Observer) riseOn(day calendar.Date) (time.Time, error) {
	jd := julian.CalendarGregorianToJD(day.Year, int(day.Month), float64(day.Day))
	jde := jd + float64(deltaT)/86400

	α3 := make([]unit.RA, 3)
	δ3 := make([]unit.Angle, 3)
	for i := range α3 {
		α3[i], δ3[i] = msolar.ApparentEquatorial(jde + float64(i-1))
	}
	unwrapRA(α3)

	tRise, _, _, err := rise.Times(o.coord, deltaT, o.h0, sidereal.Apparent0UT(jd), α3, δ3)
	if err != nil {
		return time.Time{}, ErrNoSunrise
	}

	offset := time.Duration(float64(tRise) * float64(time.Second))
	return day.Midnight(time.UTC).Add(offset), nil
}

// unwrapRA makes consecutive right ascensions continuous across 0h so they
// can be interpolated. Around the March equinox the Sun's RA passes 24h.
func unwrapRA(α []unit.RA) {
	for i := 1; i < len(α); i++ {
		switch d := float64(α[i] - α[i-1]); {
		case d < -math.Pi:
			α[i] += unit.RA(2 * math.Pi)
		case d > math.Pi:
			α[i] -= unit.RA(2 * math.Pi)
		}
	}
}

// SecondsSinceMidnight returns t's local wall-clock time as whole seconds
// after midnight. Fractional seconds are truncated, and DST transitions do
// not shift the result: 07:25:00 is always 26700.
func SecondsSinceMidnight(t time.Time) int {
	h, m, s := t.Clock()
	return h*3600 + m*60 + s
}

// SunriseSecondsSinceMidnight computes sunrise for d and returns it together
// with its seconds-since-midnight value.
func SunriseSecondsSinceMidnight(c Calculator, d calendar.Date) (time.Time, int, error) {
	t, err := c.Sunrise(d)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, SecondsSinceMidnight(t), nil
}

// FormatClock renders a local sunrise as HH:MM:SS
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ClockLayout)
}
