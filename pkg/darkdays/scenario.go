package darkdays

import (
	"fmt"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/solar"
)

// Scenario pairs a school year with a bell time under a report label
type Scenario struct {
	Label string
	Year  calendar.SchoolYear
	Bell  BellTime
}

// Run enumerates the scenario's school days and filters them to dark days
func (s Scenario) Run(calc solar.Calculator) (Report, error) {
	days, err := s.Year.Days()
	if err != nil {
		return Report{}, fmt.Errorf("scenario %q: %w", s.Label, err)
	}

	report, err := PreSunriseBell(calc, days, s.Bell)
	if err != nil {
		return Report{}, fmt.Errorf("scenario %q: %w", s.Label, err)
	}
	report.Label = s.Label
	return report, nil
}
