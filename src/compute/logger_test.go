package compute

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() { baseLogger = saved })
	return &buf
}

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	// Service error messages may carry literal percent signs.
	Infof("mixture of 60% base at 100 mm²/s rejected")

	out := buf.String()
	if !strings.Contains(out, "60% base") {
		t.Fatalf("log output missing percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLogLevelFilters(t *testing.T) {
	buf := captureLog(t)

	SetLogLevel("warn")
	Infof("hidden")
	Warnf("shown %d", 1)
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("info leaked at warn level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "[WARN] shown 1") {
		t.Fatalf("warn missing: %s", buf.String())
	}

	// unknown names leave the level untouched
	SetLogLevel("bogus")
	Warnf("still shown")
	if !strings.Contains(buf.String(), "still shown") {
		t.Fatalf("level changed on bogus name: %s", buf.String())
	}
	SetLogLevel("info")
}
