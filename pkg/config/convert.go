package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/darkdays"
	"github.com/chrissnell/darkdays/pkg/solar"
	"github.com/soniakeys/unit"
)

// ErrUnknownCalendar is returned when a scenario names a calendar that is not defined
var ErrUnknownCalendar = errors.New("unknown calendar")

// Validate checks names and cross-references. Literal dates and bell times
// are parsed later, when the domain values are built.
func (c *ConfigData) Validate() error {
	switch c.Ephemeris {
	case "", EphemerisMeeus, EphemerisApproximate:
	default:
		return fmt.Errorf("unsupported ephemeris %q. Use '%s' or '%s'", c.Ephemeris, EphemerisMeeus, EphemerisApproximate)
	}

	calendars := make(map[string]bool, len(c.Calendars))
	for i, cal := range c.Calendars {
		if cal.Name == "" {
			return fmt.Errorf("calendar %d has no name", i)
		}
		if calendars[cal.Name] {
			return fmt.Errorf("calendar %q defined more than once", cal.Name)
		}
		calendars[cal.Name] = true
	}

	labels := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Label == "" {
			return fmt.Errorf("scenario %d has no label", i)
		}
		if labels[s.Label] {
			return fmt.Errorf("scenario %q defined more than once", s.Label)
		}
		labels[s.Label] = true
		if !calendars[s.Calendar] {
			return fmt.Errorf("scenario %q: %w %q", s.Label, ErrUnknownCalendar, s.Calendar)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	return nil
}

// Location converts the observer settings. An empty horizon means the
// navigational 0°34′ depression.
func (l LocationData) Location() (solar.Location, error) {
	horizon := solar.NavigationalHorizon
	if l.Horizon != "" {
		var err error
		if horizon, err = ParseHorizon(l.Horizon); err != nil {
			return solar.Location{}, err
		}
	}

	loc := solar.Location{
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Horizon:   horizon,
		Pressure:  l.Pressure,
		TimeZone:  l.TimeZone,
	}
	if err := loc.Validate(); err != nil {
		return solar.Location{}, fmt.Errorf("location %q: %w", l.Name, err)
	}
	return loc, nil
}

// ParseHorizon parses an altitude in sexagesimal ("-0:34", "-0:34:30") or
// decimal ("-0.5667") degrees.
func ParseHorizon(s string) (unit.Angle, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	parts := strings.Split(strings.TrimLeft(s, "+-"), ":")
	if len(parts) > 3 || parts[0] == "" {
		return 0, fmt.Errorf("invalid horizon %q", s)
	}

	var deg float64
	scale := 1.0
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 || (i > 0 && v >= 60) {
			return 0, fmt.Errorf("invalid horizon %q", s)
		}
		deg += v / scale
		scale *= 60
	}
	if deg > 90 {
		return 0, fmt.Errorf("horizon %q out of range", s)
	}
	if neg {
		deg = -deg
	}
	return unit.AngleFromDeg(deg), nil
}

// Calculator builds the sunrise model named by Ephemeris
func (c *ConfigData) Calculator() (solar.Calculator, error) {
	loc, err := c.Location.Location()
	if err != nil {
		return nil, err
	}

	if c.Ephemeris == EphemerisApproximate {
		approx, err := solar.NewApproximate(loc)
		if err != nil {
			return nil, err
		}
		return approx, nil
	}

	obs, err := solar.NewObserver(loc)
	if err != nil {
		return nil, err
	}
	return obs, nil
}

// SchoolYears parses every calendar, keyed by name
func (c *ConfigData) SchoolYears() (map[string]calendar.SchoolYear, error) {
	years := make(map[string]calendar.SchoolYear, len(c.Calendars))
	for _, cd := range c.Calendars {
		year, err := cd.SchoolYear()
		if err != nil {
			return nil, err
		}
		years[cd.Name] = year
	}
	return years, nil
}

// SchoolYear parses the calendar's literal dates
func (cd CalendarData) SchoolYear() (calendar.SchoolYear, error) {
	start, err := calendar.ParseDate(cd.Start)
	if err != nil {
		return calendar.SchoolYear{}, fmt.Errorf("calendar %q start: %w", cd.Name, err)
	}
	end, err := calendar.ParseDate(cd.End)
	if err != nil {
		return calendar.SchoolYear{}, fmt.Errorf("calendar %q end: %w", cd.Name, err)
	}
	if start.After(end) {
		return calendar.SchoolYear{}, fmt.Errorf("calendar %q: %w: %s is after %s", cd.Name, calendar.ErrInvalidRange, start, end)
	}
	holidays, err := calendar.ParseHolidays(cd.Holidays)
	if err != nil {
		return calendar.SchoolYear{}, fmt.Errorf("calendar %q: %w", cd.Name, err)
	}

	return calendar.SchoolYear{
		Name:     cd.Name,
		Start:    start,
		End:      end,
		Holidays: holidays,
	}, nil
}

// BuildScenarios resolves every scenario against its calendar, in file order
func (c *ConfigData) BuildScenarios() ([]darkdays.Scenario, error) {
	years, err := c.SchoolYears()
	if err != nil {
		return nil, err
	}

	scenarios := make([]darkdays.Scenario, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		year, ok := years[s.Calendar]
		if !ok {
			return nil, fmt.Errorf("scenario %q: %w %q", s.Label, ErrUnknownCalendar, s.Calendar)
		}
		bell, err := darkdays.ParseBellTime(s.Bell)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Label, err)
		}
		scenarios = append(scenarios, darkdays.Scenario{Label: s.Label, Year: year, Bell: bell})
	}
	return scenarios, nil
}
