// Package server exposes computed dark-day reports over a read-only HTTP API.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/darkdays"
	"github.com/chrissnell/darkdays/pkg/responseformat"
	"github.com/chrissnell/darkdays/pkg/solar"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Source supplies the data served by the API
type Source interface {
	Reports() (darkdays.Reports, error)
	SchoolYear(name string) (calendar.SchoolYear, bool)
	Calculator() solar.Calculator
}

// Server routes API requests to handlers
type Server struct {
	source    Source
	logger    *zap.SugaredLogger
	formatter *responseformat.Formatter
}

// New creates a server over source
func New(source Source, logger *zap.SugaredLogger) *Server {
	return &Server{
		source:    source,
		logger:    logger,
		formatter: responseformat.NewFormatter(),
	}
}

// Router configures the HTTP router with all endpoints
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.loggingMiddleware)

	router.HandleFunc("/api/v1/scenarios", s.GetScenarios).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/scenarios/{name}", s.GetScenario).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/calendars/{name}/days", s.GetCalendarDays).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/sunrise/{date}", s.GetSunrise).Methods(http.MethodGet)
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		s.formatter.WriteError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		s.logger.Debugw("http request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", rec.status,
			"size", rec.size,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", req.RemoteAddr,
		)
	})
}
