package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/chrissnell/darkdays/internal/server"
	"github.com/chrissnell/darkdays/pkg/calendar"
	"github.com/chrissnell/darkdays/pkg/config"
	"github.com/chrissnell/darkdays/pkg/darkdays"
	"github.com/chrissnell/darkdays/pkg/responseformat"
	"github.com/chrissnell/darkdays/pkg/solar"
	"go.uber.org/zap"
)

const (
	defaultListenAddr = "0.0.0.0"
	defaultPort       = 8080
)

// App represents the main application
type App struct {
	cfg       *config.ConfigData
	logger    *zap.SugaredLogger
	calc      solar.Calculator
	years     map[string]calendar.SchoolYear
	scenarios []darkdays.Scenario
	formatter *responseformat.Formatter

	once    sync.Once
	reports darkdays.Reports
	err     error
}

// New creates a new application instance. Every calendar, holiday and bell
// literal is parsed here, so malformed configuration fails before any
// sunrise is computed.
func New(cfg *config.ConfigData, logger *zap.SugaredLogger) (*App, error) {
	calc, err := cfg.Calculator()
	if err != nil {
		return nil, err
	}
	years, err := cfg.SchoolYears()
	if err != nil {
		return nil, err
	}
	scenarios, err := cfg.BuildScenarios()
	if err != nil {
		return nil, err
	}

	logger.Debugf("loaded %d calendars and %d scenarios for %s", len(years), len(scenarios), cfg.Location.Name)

	return &App{
		cfg:       cfg,
		logger:    logger,
		calc:      calc,
		years:     years,
		scenarios: scenarios,
		formatter: responseformat.NewFormatter(),
	}, nil
}

// Calculator returns the configured sunrise model
func (a *App) Calculator() solar.Calculator {
	return a.calc
}

// Scenarios returns the configured scenarios in file order
func (a *App) Scenarios() []darkdays.Scenario {
	return a.scenarios
}

// SchoolYear looks up a calendar by name
func (a *App) SchoolYear(name string) (calendar.SchoolYear, bool) {
	year, ok := a.years[name]
	return year, ok
}

// Reports runs every scenario in order. Results are computed once and reused.
func (a *App) Reports() (darkdays.Reports, error) {
	a.once.Do(func() {
		reports := make(darkdays.Reports, 0, len(a.scenarios))
		for _, s := range a.scenarios {
			start := time.Now()
			report, err := s.Run(a.calc)
			if err != nil {
				a.err = err
				return
			}
			a.logger.Debugw("computed dark days",
				"scenario", s.Label,
				"calendar", s.Year.Name,
				"bell", s.Bell.String(),
				"count", report.Count,
				"elapsed", time.Since(start),
			)
			reports = append(reports, report)
		}
		a.reports = reports
	})
	return a.reports, a.err
}

// Run computes every report and writes them to w in the given format
func (a *App) Run(ctx context.Context, w io.Writer, format string) error {
	reports, err := a.Reports()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.formatter.Write(w, format, reports)
}

// ListenAddr resolves the HTTP listen address. An explicit addr wins over
// the configured server section.
func (a *App) ListenAddr(addr string) string {
	if addr != "" {
		return addr
	}

	host := a.cfg.Server.ListenAddr
	if host == "" {
		a.logger.Info("server.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		host = defaultListenAddr
	}
	port := a.cfg.Server.Port
	if port == 0 {
		a.logger.Infof("server.port not provided; defaulting to %d", defaultPort)
		port = defaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Serve computes the reports and serves them over HTTP until ctx is
// cancelled or SIGINT/SIGTERM arrives
func (a *App) Serve(ctx context.Context, addr string) error {
	if _, err := a.Reports(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Addr:              a.ListenAddr(addr),
		Handler:           server.New(a, a.logger).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		a.logger.Infof("serving dark-day reports on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
		close(errs)
	}()

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	select {
	case <-sigs:
		a.logger.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		a.logger.Info("context cancelled, shutting down...")
	case err := <-errs:
		return fmt.Errorf("HTTP server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.logger.Info("shutdown complete")
	return nil
}
