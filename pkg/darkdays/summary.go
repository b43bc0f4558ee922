package darkdays

import (
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes how dark a set of dark days is
type Summary struct {
	MeanMinutesDark float64        `json:"mean_minutes_dark"`
	MaxMinutesDark  float64        `json:"max_minutes_dark"`
	Darkest         string         `json:"darkest,omitempty"`
	ByMonth         map[string]int `json:"by_month,omitempty"`
}

// Summarize computes the mean and maximum minutes between bell and sunrise,
// and counts dark days per calendar month.
func Summarize(days []SchoolDay) Summary {
	if len(days) == 0 {
		return Summary{}
	}

	minutes := make([]float64, len(days))
	byMonth := make(map[string]int)
	for i, d := range days {
		minutes[i] = d.MinutesDark
		byMonth[monthKey(d.Date.Year, d.Date.Month)]++
	}

	darkest := floats.MaxIdx(minutes)
	return Summary{
		MeanMinutesDark: stat.Mean(minutes, nil),
		MaxMinutesDark:  minutes[darkest],
		Darkest:         days[darkest].Date.String(),
		ByMonth:         byMonth,
	}
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
