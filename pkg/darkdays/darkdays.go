// Package darkdays finds the school days on which the Sun rises after the
// first bell.
package darkdays

import (
	"fmt"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/solar"
)

// SchoolDay is a school date annotated with its computed sunrise
type SchoolDay struct {
	Date           calendar.Date `json:"date"`
	Weekday        string        `json:"weekday"`
	Sunrise        string        `json:"sunrise"`
	SunriseSeconds int           `json:"secs"`
	MinutesDark    float64       `json:"minutes_dark"`
}

// Report is the ordered set of dark days for one calendar and bell
type Report struct {
	Label string      `json:"label"`
	Bell  string      `json:"bell"`
	Count int         `json:"count"`
	Days  []SchoolDay `json:"days"`
	Stats Summary     `json:"summary"`
}

// PreSunriseBell keeps the days whose sunrise is strictly later than bell.
// Input order is preserved.
func PreSunriseBell(calc solar.Calculator, days []calendar.Date, bell BellTime) (Report, error) {
	if err := bell.Validate(); err != nil {
		return Report{}, err
	}

	report := Report{
		Bell: bell.String(),
		Days: []SchoolDay{},
	}
	for _, d := range days {
		sr, secs, err := solar.SunriseSecondsSinceMidnight(calc, d)
		if err != nil {
			return Report{}, fmt.Errorf("dark days at %s: %w", bell, err)
		}
		if secs <= bell.Seconds() {
			continue
		}
		report.Days = append(report.Days, SchoolDay{
			Date:           d,
			Weekday:        d.Weekday().String()[:3],
			Sunrise:        solar.FormatClock(sr),
			SunriseSeconds: secs,
			MinutesDark:    float64(secs-bell.Seconds()) / 60,
		})
	}
	report.Count = len(report.Days)
	report.Stats = Summarize(report.Days)

	return report, nil
}
