package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debugf("hidden %d", 1)
	logger.Infow("computed report", "scenario", "WCPSS hs 2016", "count", 17)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "computed report") || !strings.Contains(out, `"scenario": "WCPSS hs 2016"`) {
		t.Errorf("info line missing fields: %q", out)
	}

	buf.Reset()
	New(&buf, true).Debugf("visible %d", 2)
	if !strings.Contains(buf.String(), "visible 2") {
		t.Errorf("debug line missing at debug level: %q", buf.String())
	}
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	log = nil
	if GetSugaredLogger() == nil {
		t.Fatal("fallback logger is nil")
	}
	if err := Init(true); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if GetSugaredLogger() != log {
		t.Error("GetSugaredLogger did not return the initialized logger")
	}
}
