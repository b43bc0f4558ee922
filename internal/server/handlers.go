package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/solar"
	"github.com/gorilla/mux"
)

// ErrNotFound is returned for unknown scenarios and calendars
var ErrNotFound = errors.New("not found")

// CalendarDays is the school-day listing for one calendar
type CalendarDays struct {
	Calendar string          `json:"calendar"`
	Start    calendar.Date   `json:"start"`
	End      calendar.Date   `json:"end"`
	Count    int             `json:"count"`
	Days     []calendar.Date `json:"days"`
}

// Sunrise is the computed sunrise for one date at the configured location
type Sunrise struct {
	Date    calendar.Date `json:"date"`
	Sunrise time.Time     `json:"sunrise"`
	Clock   string        `json:"clock"`
	Seconds int           `json:"secs"`
}

// GetScenarios returns every scenario report
func (s *Server) GetScenarios(w http.ResponseWriter, req *http.Request) {
	reports, err := s.source.Reports()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.write(w, req, reports)
}

// GetScenario returns the report whose label matches {name}
func (s *Server) GetScenario(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]

	reports, err := s.source.Reports()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	for _, r := range reports {
		if r.Label == name {
			s.write(w, req, r)
			return
		}
	}
	s.fail(w, http.StatusNotFound, fmt.Errorf("scenario %q %w", name, ErrNotFound))
}

// GetCalendarDays lists the school days of calendar {name}
func (s *Server) GetCalendarDays(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]

	year, ok := s.source.SchoolYear(name)
	if !ok {
		s.fail(w, http.StatusNotFound, fmt.Errorf("calendar %q %w", name, ErrNotFound))
		return
	}
	days, err := year.Days()
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	s.write(w, req, CalendarDays{
		Calendar: year.Name,
		Start:    year.Start,
		End:      year.End,
		Count:    len(days),
		Days:     days,
	})
}

// GetSunrise computes sunrise for {date} (YYYY-MM-DD)
func (s *Server) GetSunrise(w http.ResponseWriter, req *http.Request) {
	d, err := calendar.ParseDate(mux.Vars(req)["date"])
	if err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	sr, secs, err := solar.SunriseSecondsSinceMidnight(s.source.Calculator(), d)
	if errors.Is(err, solar.ErrNoSunrise) {
		s.fail(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}

	s.write(w, req, Sunrise{
		Date:    d,
		Sunrise: sr,
		Clock:   solar.FormatClock(sr),
		Seconds: secs,
	})
}

func (s *Server) write(w http.ResponseWriter, req *http.Request, data any) {
	if err := s.formatter.WriteResponse(w, req, data, nil); err != nil {
		s.logger.Errorf("error writing response to %s: %v", req.URL.Path, err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Errorf("request failed: %v", err)
	}
	s.formatter.WriteError(w, status, err)
}
