package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chrissnell/darkdays/internal/log"
	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/darkdays"
	"github.com/chrissnell/darkdays/pkg/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// novemberDark rises at 07:30 UTC in November and 06:30 otherwise
type novemberDark struct{}

func (novemberDark) Sunrise(d calendar.Date) (time.Time, error) {
	if !d.IsValid() {
		return time.Time{}, calendar.ErrInvalidDate
	}
	if d.Year == 1900 {
		return time.Time{}, solar.ErrNoSunrise
	}
	clock := 6*time.Hour + 30*time.Minute
	if d.Month == time.November {
		clock = 7*time.Hour + 30*time.Minute
	}
	return d.Midnight(time.UTC).Add(clock), nil
}

type fakeSource struct {
	year calendar.SchoolYear
}

func newFakeSource() *fakeSource {
	return &fakeSource{year: calendar.SchoolYear{
		Name:     "fall-2016",
		Start:    calendar.MustParseDate("2016-10-28"),
		End:      calendar.MustParseDate("2016-11-08"),
		Holidays: calendar.NewHolidaySet(calendar.MustParseDate("2016-11-04")),
	}}
}

func (f *fakeSource) Reports() (darkdays.Reports, error) {
	s := darkdays.Scenario{Label: "Fall 7:25", Year: f.year, Bell: darkdays.NewBellTime(7, 25, 0)}
	r, err := s.Run(novemberDark{})
	if err != nil {
		return nil, err
	}
	return darkdays.Reports{r}, nil
}

func (f *fakeSource) SchoolYear(name string) (calendar.SchoolYear, bool) {
	if name != f.year.Name {
		return calendar.SchoolYear{}, false
	}
	return f.year, true
}

func (f *fakeSource) Calculator() solar.Calculator {
	return novemberDark{}
}

func serve(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	router := New(newFakeSource(), log.New(&bytes.Buffer{}, true)).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestGetScenarios(t *testing.T) {
	rec := serve(t, "/api/v1/scenarios")
	require.Equal(t, http.StatusOK, rec.Code)

	var reports []darkdays.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Len(t, reports, 1)

	// Nov 1, 2, 3, 7, 8; Oct 28 and 31 are light, Nov 4 is a holiday
	r := reports[0]
	assert.Equal(t, "Fall 7:25", r.Label)
	assert.Equal(t, 5, r.Count)
	require.Len(t, r.Days, 5)
	assert.Equal(t, calendar.MustParseDate("2016-11-01"), r.Days[0].Date)
	assert.Equal(t, "Tue", r.Days[0].Weekday)
	assert.Equal(t, "07:30:00", r.Days[0].Sunrise)
	assert.Equal(t, 27000, r.Days[0].SunriseSeconds)
	assert.Equal(t, calendar.MustParseDate("2016-11-08"), r.Days[4].Date)
	assert.InDelta(t, 5.0, r.Stats.MeanMinutesDark, 1e-9)
}

func TestGetScenarioText(t *testing.T) {
	rec := serve(t, "/api/v1/scenarios/Fall%207:25?format=text")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Fall 7:25 (bell 07:25:00)\n5\n")
	assert.Contains(t, rec.Body.String(), "2016-11-07  Mon  07:30:00  27000")
}

func TestGetScenarioMsgPack(t *testing.T) {
	rec := serve(t, "/api/v1/scenarios/Fall%207:25?format=msgpack")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/x-msgpack", rec.Header().Get("Content-Type"))

	var decoded map[string]any
	require.NoError(t, msgpack.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "Fall 7:25", decoded["label"])
}

func TestGetScenarioNotFound(t *testing.T) {
	rec := serve(t, "/api/v1/scenarios/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `scenario \"nope\" not found`)
}

func TestGetCalendarDays(t *testing.T) {
	rec := serve(t, "/api/v1/calendars/fall-2016/days")
	require.Equal(t, http.StatusOK, rec.Code)

	var body CalendarDays
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "fall-2016", body.Calendar)
	assert.Equal(t, 7, body.Count)
	assert.NotContains(t, body.Days, calendar.MustParseDate("2016-11-04"))
	assert.NotContains(t, body.Days, calendar.MustParseDate("2016-10-29"))

	rec = serve(t, "/api/v1/calendars/spring/days")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSunrise(t *testing.T) {
	rec := serve(t, "/api/v1/sunrise/2016-11-07")
	require.Equal(t, http.StatusOK, rec.Code)

	var body Sunrise
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "07:30:00", body.Clock)
	assert.Equal(t, 27000, body.Seconds)
	assert.True(t, body.Sunrise.Equal(time.Date(2016, 11, 7, 7, 30, 0, 0, time.UTC)))

	tests := []struct {
		target string
		status int
	}{
		{target: "/api/v1/sunrise/2016-02-30", status: http.StatusBadRequest},
		{target: "/api/v1/sunrise/tomorrow", status: http.StatusBadRequest},
		{target: "/api/v1/sunrise/1900-06-01", status: http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			assert.Equal(t, tt.status, serve(t, tt.target).Code)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	router := New(newFakeSource(), log.New(&bytes.Buffer{}, false)).Router()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/scenarios", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), "method POST not allowed")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/sunrise/2016-11-07", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/scenarios", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
