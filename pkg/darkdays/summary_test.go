package darkdays

import (
	"math"
	"testing"

	"github.com/chrissnell/darkdays/pkg/calendar"
)

func TestSummarize(t *testing.T) {
	days := []SchoolDay{
		{Date: calendar.MustParseDate("2016-11-01"), MinutesDark: 12},
		{Date: calendar.MustParseDate("2016-11-02"), MinutesDark: 13},
		{Date: calendar.MustParseDate("2017-01-05"), MinutesDark: 2},
	}

	s := Summarize(days)
	if math.Abs(s.MeanMinutesDark-9) > 1e-9 {
		t.Errorf("MeanMinutesDark = %v, expected 9", s.MeanMinutesDark)
	}
	if s.MaxMinutesDark != 13 || s.Darkest != "2016-11-02" {
		t.Errorf("Max = %v on %s, expected 13 on 2016-11-02", s.MaxMinutesDark, s.Darkest)
	}
	if s.ByMonth["2016-11"] != 2 || s.ByMonth["2017-01"] != 1 {
		t.Errorf("ByMonth = %v", s.ByMonth)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.MeanMinutesDark != 0 || s.MaxMinutesDark != 0 || s.Darkest != "" || s.ByMonth != nil {
		t.Errorf("Summarize(nil) = %+v, expected zero value", s)
	}
}
