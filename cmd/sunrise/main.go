package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/config"
	"github.com/chrissnell/darkdays/pkg/solar"
)

func main() {
	var dateStr, cfgFile string
	flag.StringVar(&dateStr, "date", "", "Local date to calculate sunrise for (YYYY-MM-DD, default: today)")
	flag.StringVar(&cfgFile, "config", "", "YAML configuration supplying the observer (default: Raleigh, NC)")
	flag.Parse()

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	calc, err := cfg.Calculator()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating sunrise model: %v\n", err)
		os.Exit(1)
	}
	loc, err := cfg.Location.Location()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading location: %v\n", err)
		os.Exit(1)
	}
	tz, err := loc.Zone()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading time zone: %v\n", err)
		os.Exit(1)
	}

	var d calendar.Date
	if dateStr == "" {
		d = calendar.DateOf(time.Now().In(tz))
	} else {
		d, err = calendar.ParseDate(dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			os.Exit(1)
		}
	}

	sr, secs, err := solar.SunriseSecondsSinceMidnight(calc, d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error calculating sunrise: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sunrise for %s (%s)\n", d, d.Weekday())
	fmt.Printf("  Location:     %s (%.4f, %.4f)\n", loc.Name, loc.Latitude, loc.Longitude)
	fmt.Printf("  Sunrise:      %s\n", solar.FormatClock(sr))
	fmt.Printf("  Zone:         %s\n", sr.Format("MST -0700"))
	fmt.Printf("  UTC:          %s\n", sr.UTC().Format(time.RFC3339))
	fmt.Printf("  Seconds:      %d\n", secs)
}

func loadConfig(cfgFile string) (*config.ConfigData, error) {
	if cfgFile == "" {
		return config.Default()
	}
	return config.NewYAMLProvider(cfgFile).LoadConfig()
}
