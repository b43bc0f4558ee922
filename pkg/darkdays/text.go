package darkdays

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Reports is an ordered list of scenario reports
type Reports []Report

// WriteText prints each report as its label, its row count and a table of
// date, weekday, sunrise clock time and sunrise seconds.
func (rs Reports) WriteText(w io.Writer) error {
	for i, r := range rs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := r.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteText prints a single report
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (bell %s)\n%d\n", r.Label, r.Bell, r.Count); err != nil {
		return err
	}
	if r.Count == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tday\tsunrise\tsecs")
	for _, d := range r.Days {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", d.Date, d.Weekday, d.Sunrise, d.SunriseSeconds)
	}
	return tw.Flush()
}
