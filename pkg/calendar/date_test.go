package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "school start", input: "2016-08-29", want: NewDate(2016, time.August, 29)},
		{name: "leap day", input: "2016-02-29", want: NewDate(2016, time.February, 29)},
		{name: "not a leap year", input: "2017-02-29", wantErr: true},
		{name: "month out of range", input: "2016-13-01", wantErr: true},
		{name: "slashes", input: "2016/09/05", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDate) {
					t.Fatalf("ParseDate(%q) error = %v, expected ErrInvalidDate", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateIsValid(t *testing.T) {
	if !NewDate(2017, time.June, 9).IsValid() {
		t.Error("2017-06-09 should be valid")
	}
	if NewDate(2017, time.June, 31).IsValid() {
		t.Error("2017-06-31 should be invalid")
	}
	if NewDate(2017, 0, 1).IsValid() {
		t.Error("month 0 should be invalid")
	}
}

func TestDateArithmetic(t *testing.T) {
	d := MustParseDate("2016-12-30")

	if got := d.AddDays(3); got != MustParseDate("2017-01-02") {
		t.Errorf("AddDays(3) = %v, expected 2017-01-02", got)
	}
	if got := d.AddDays(-30); got != MustParseDate("2016-11-30") {
		t.Errorf("AddDays(-30) = %v, expected 2016-11-30", got)
	}
	if got := d.Weekday(); got != time.Friday {
		t.Errorf("Weekday() = %v, expected Friday", got)
	}
	if !d.Before(d.AddDays(1)) || d.After(d.AddDays(1)) || d.Compare(d) != 0 {
		t.Error("ordering helpers disagree")
	}
}

func TestDateMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	m := MustParseDate("2016-11-06").Midnight(loc)
	if m.Hour() != 0 || m.Minute() != 0 || DateOf(m) != MustParseDate("2016-11-06") {
		t.Errorf("Midnight() = %v", m)
	}
}

func TestDateText(t *testing.T) {
	var d Date
	if err := d.UnmarshalText([]byte("2018-06-08")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	b, _ := d.MarshalText()
	if string(b) != "2018-06-08" {
		t.Errorf("MarshalText() = %s", b)
	}
	if err := d.UnmarshalText([]byte("June 8")); err == nil {
		t.Error("expected error for malformed text")
	}
}
