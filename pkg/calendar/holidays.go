package calendar

import (
	"fmt"
	"sort"

	"github.com/rickar/cal/v2"
)

// HolidaySet is an immutable set of dates on which school is not in session
type HolidaySet struct {
	dates map[Date]struct{}
}

// NewHolidaySet builds a set from the given dates. Duplicates are collapsed.
func NewHolidaySet(dates ...Date) HolidaySet {
	set := HolidaySet{dates: make(map[Date]struct{}, len(dates))}
	for _, d := range dates {
		set.dates[d] = struct{}{}
	}
	return set
}

// ParseHolidays parses a list of YYYY-MM-DD literals. The first malformed
// literal aborts parsing.
func ParseHolidays(literals []string) (HolidaySet, error) {
	dates := make([]Date, 0, len(literals))
	for i, s := range literals {
		d, err := ParseDate(s)
		if err != nil {
			return HolidaySet{}, fmt.Errorf("holiday %d: %w", i, err)
		}
		dates = append(dates, d)
	}
	return NewHolidaySet(dates...), nil
}

// Contains reports whether d is a holiday
func (h HolidaySet) Contains(d Date) bool {
	_, ok := h.dates[d]
	return ok
}

// Len returns the number of distinct holidays
func (h HolidaySet) Len() int {
	return len(h.dates)
}

// Dates returns the holidays in ascending order
func (h HolidaySet) Dates() []Date {
	out := make([]Date, 0, len(h.dates))
	for d := range h.dates {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// BusinessCalendar returns a Monday-Friday business calendar that observes
// every date in the set as a one-off holiday.
func (h HolidaySet) BusinessCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, d := range h.Dates() {
		bc.AddHoliday(&cal.Holiday{
			Name:      "School holiday " + d.String(),
			Month:     d.Month,
			Day:       d.Day,
			StartYear: d.Year,
			EndYear:   d.Year,
			Func:      cal.CalcDayOfMonth,
		})
	}
	return bc
}
