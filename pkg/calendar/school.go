package calendar

import (
	"fmt"
	"time"
)

// SchoolYear is one traditional calendar: first day, last day and the days
// off in between.
type SchoolYear struct {
	Name     string
	Start    Date
	End      Date
	Holidays HolidaySet
}

// Days returns the school days of the year
func (s SchoolYear) Days() ([]Date, error) {
	days, err := SchoolCalendar(s.Start, s.End, s.Holidays)
	if err != nil {
		return nil, fmt.Errorf("school year %q: %w", s.Name, err)
	}
	return days, nil
}

// SchoolCalendar enumerates every weekday from start to end inclusive that is
// not in holidays. The result is strictly ascending.
func SchoolCalendar(start, end Date, holidays HolidaySet) ([]Date, error) {
	if !start.IsValid() {
		return nil, fmt.Errorf("start %s: %w", start, ErrInvalidDate)
	}
	if !end.IsValid() {
		return nil, fmt.Errorf("end %s: %w", end, ErrInvalidDate)
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}

	bc := holidays.BusinessCalendar()

	var days []Date
	for d := start; !d.After(end); d = d.AddDays(1) {
		// Mon-Fri workweek minus every date in holidays
		if !bc.IsWorkday(d.Midnight(time.UTC)) {
			continue
		}
		days = append(days, d)
	}
	return days, nil
}
