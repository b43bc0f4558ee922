package calendar

import (
	"errors"
	"testing"
	"time"
)

var holidays2016 = []string{
	"2016-09-05", "2016-09-22", "2016-10-31", "2016-11-11",
	"2016-11-23", "2016-11-24", "2016-11-25", "2016-12-22",
	"2016-12-26", "2016-12-27", "2016-12-28", "2016-12-29",
	"2016-12-30", "2017-01-02", "2017-01-16", "2017-01-27",
	"2017-02-20", "2017-03-31", "2017-04-10", "2017-04-11",
	"2017-04-12", "2017-04-13", "2017-04-14", "2017-05-12",
	"2017-05-29",
}

func TestParseHolidays(t *testing.T) {
	set, err := ParseHolidays(holidays2016)
	if err != nil {
		t.Fatalf("ParseHolidays: %v", err)
	}
	if set.Len() != len(holidays2016) {
		t.Errorf("Len() = %d, expected %d", set.Len(), len(holidays2016))
	}
	if !set.Contains(MustParseDate("2016-12-22")) {
		t.Error("expected 2016-12-22 to be a holiday")
	}
	if set.Contains(MustParseDate("2016-12-21")) {
		t.Error("2016-12-21 is a school day")
	}

	dates := set.Dates()
	for i := 1; i < len(dates); i++ {
		if !dates[i-1].Before(dates[i]) {
			t.Fatalf("Dates() not ascending at %d: %v, %v", i, dates[i-1], dates[i])
		}
	}

	if _, err := ParseHolidays([]string{"2016-09-05", "2016-9-22"}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate for malformed literal, got %v", err)
	}
}

func TestSchoolCalendar(t *testing.T) {
	set, err := ParseHolidays(holidays2016)
	if err != nil {
		t.Fatalf("ParseHolidays: %v", err)
	}
	start := MustParseDate("2016-08-29")
	end := MustParseDate("2017-06-09")

	days, err := SchoolCalendar(start, end, set)
	if err != nil {
		t.Fatalf("SchoolCalendar: %v", err)
	}

	// 205 weekdays between the bounds, 25 of them holidays
	if len(days) != 180 {
		t.Errorf("len(days) = %d, expected 180", len(days))
	}
	if days[0] != start {
		t.Errorf("first day = %v, expected %v", days[0], start)
	}
	if days[len(days)-1] != end {
		t.Errorf("last day = %v, expected %v", days[len(days)-1], end)
	}

	for i, d := range days {
		if d.Before(start) || d.After(end) {
			t.Errorf("%v outside [%v, %v]", d, start, end)
		}
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("%v falls on %v", d, wd)
		}
		if set.Contains(d) {
			t.Errorf("%v is a holiday", d)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Errorf("not strictly ascending at %d: %v, %v", i, days[i-1], d)
		}
	}
}

func TestSchoolCalendarEdges(t *testing.T) {
	sat := MustParseDate("2016-09-03")

	t.Run("single weekend day", func(t *testing.T) {
		days, err := SchoolCalendar(sat, sat, NewHolidaySet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != 0 {
			t.Errorf("expected no school days, got %v", days)
		}
	})

	t.Run("week with a holiday", func(t *testing.T) {
		days, err := SchoolCalendar(sat, sat.AddDays(8), NewHolidaySet(MustParseDate("2016-09-05")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != 4 || days[0] != MustParseDate("2016-09-06") {
			t.Errorf("got %v, expected Tue-Fri of Labor Day week", days)
		}
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := SchoolCalendar(sat.AddDays(1), sat, NewHolidaySet())
		if !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("invalid bound", func(t *testing.T) {
		_, err := SchoolCalendar(NewDate(2017, time.February, 30), sat, NewHolidaySet())
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestSchoolYearDays(t *testing.T) {
	year := SchoolYear{
		Name:     "winter break",
		Start:    MustParseDate("2016-12-19"),
		End:      MustParseDate("2017-01-06"),
		Holidays: NewHolidaySet(MustParseDate("2016-12-22"), MustParseDate("2017-01-02")),
	}
	days, err := year.Days()
	if err != nil {
		t.Fatalf("Days: %v", err)
	}
	// 15 weekdays, minus the 2 holidays
	if len(days) != 13 {
		t.Errorf("len(days) = %d, expected 13: %v", len(days), days)
	}
}

func TestSchoolCalendarWeekdaysOnly(t *testing.T) {
	days, err := SchoolCalendar(MustParseDate("2016-08-29"), MustParseDate("2017-06-09"), HolidaySet{})
	if err != nil {
		t.Fatalf("SchoolCalendar: %v", err)
	}
	if len(days) != 205 {
		t.Errorf("got %d weekdays, expected 205", len(days))
	}
	for _, d := range days {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("%s falls on a %s", d, wd)
		}
	}
}

func TestHolidaySetBusinessCalendar(t *testing.T) {
	set := NewHolidaySet(MustParseDate("2016-11-11"), MustParseDate("2017-01-16"))
	bc := set.BusinessCalendar()

	tests := []struct {
		date    string
		workday bool
	}{
		{"2016-11-10", true},
		{"2016-11-11", false},
		{"2016-11-12", false},
		{"2017-01-16", false},
		{"2017-11-10", true}, // holidays apply to their own year only
		{"2018-01-16", true},
	}

	for _, tt := range tests {
		if got := bc.IsWorkday(MustParseDate(tt.date).Midnight(time.UTC)); got != tt.workday {
			t.Errorf("IsWorkday(%s) = %v, expected %v", tt.date, got, tt.workday)
		}
	}
}
