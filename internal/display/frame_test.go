package display

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

func TestFrameLayout(t *testing.T) {
	e := model.CacheEntry{Reading: model.Reading{Temperature: 21.5, Humidity: 45.0}}
	lines := Frame(e)
	if lines[0] != "Temp: 21.5C" {
		t.Fatalf("expected %q, got %q", "Temp: 21.5C", lines[0])
	}
	if lines[1] != "Hum:  45.0%" {
		t.Fatalf("expected %q, got %q", "Hum:  45.0%", lines[1])
	}
}

func TestFrameSentinel(t *testing.T) {
	lines := Frame(model.CacheEntry{})
	if lines[0] != "Temp: 0.0C" || lines[1] != "Hum:  0.0%" {
		t.Fatalf("unexpected sentinel frame: %q / %q", lines[0], lines[1])
	}
}

func TestConsoleRedrawShowsBothLines(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Out: &buf})

	e := model.CacheEntry{Reading: model.Reading{Temperature: 21.5, Humidity: 45.0}, UpdatedAt: time.Now()}
	c.Redraw(e, nil)

	out := buf.String()
	if !strings.Contains(out, "Temp: 21.5C") {
		t.Fatalf("missing temperature line in %q", out)
	}
	if !strings.Contains(out, "Hum:  45.0%") {
		t.Fatalf("missing humidity line in %q", out)
	}
	if strings.Contains(out, "sensor unavailable") {
		t.Fatalf("unexpected stale note on success in %q", out)
	}
}

func TestConsoleRedrawKeepsLastReadingOnFailure(t *testing.T) {
	var buf bytes.Buffer
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewConsole(ConsoleConfig{
		Out:   &buf,
		Clock: func() time.Time { return updated.Add(30 * time.Second) },
	})

	e := model.CacheEntry{Reading: model.Reading{Temperature: 21.5, Humidity: 45.0}, UpdatedAt: updated}
	c.Redraw(e, errors.New("bus timeout"))

	out := buf.String()
	if !strings.Contains(out, "Temp: 21.5C") {
		t.Fatalf("failure suppressed the reading in %q", out)
	}
	if !strings.Contains(out, "showing reading from 30s ago") {
		t.Fatalf("missing stale note in %q", out)
	}
}

func TestConsoleRedrawBeforeFirstSuccess(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Out: &buf})

	c.Redraw(model.CacheEntry{}, errors.New("bus timeout"))

	if !strings.Contains(buf.String(), "no reading yet") {
		t.Fatalf("missing boot note in %q", buf.String())
	}
}
