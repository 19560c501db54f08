package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

func testReport() Report {
	return Report{
		AgentID:     "agent-1",
		Sensor:      "sht3x",
		Reading:     model.Reading{Temperature: 21.5, Humidity: 45.0},
		UpdatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		PublishedAt: time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC),
	}
}

func TestReportEncoding(t *testing.T) {
	b, err := json.Marshal(testReport())
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	want := `{"agent_id":"agent-1","sensor":"sht3x","reading":{"temperature":21.5,"humidity":45.0},"updated_at":"2025-06-01T12:00:00Z","published_at":"2025-06-01T12:00:05Z"}`
	if string(b) != want {
		t.Fatalf("report encoding mismatch:\n got: %s\nwant: %s", b, want)
	}
}

func TestConsoleSinkLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleSink(&buf)
	if err := c.Publish(context.Background(), testReport()); err != nil {
		t.Fatalf("publish error: %v", err)
	}
	want := "2025-06-01T12:00:05Z agent=agent-1 sensor=sht3x temp=21.5 hum=45.0 updated=2025-06-01T12:00:00Z\n"
	if buf.String() != want {
		t.Fatalf("console line mismatch:\n got: %q\nwant: %q", buf.String(), want)
	}
}

type captureSink struct {
	name string
	reps []Report
	err  error
}

func (s *captureSink) Name() string { return s.name }

func (s *captureSink) Publish(_ context.Context, rep Report) error {
	s.reps = append(s.reps, rep)
	return s.err
}

func (s *captureSink) Close() error { return nil }

func TestPresenterBuildsReportFromSnapshot(t *testing.T) {
	sink := &captureSink{name: "capture"}
	pubAt := time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC)
	p := NewPresenter(PresenterConfig{
		Sink:    sink,
		AgentID: "agent-1",
		Sensor:  "sim",
		Clock:   func() time.Time { return pubAt },
	})

	entry := model.CacheEntry{
		Reading:   model.Reading{Temperature: 19.8, Humidity: 61.4},
		UpdatedAt: pubAt.Add(-5 * time.Second),
	}
	if err := p.Present(context.Background(), entry); err != nil {
		t.Fatalf("present error: %v", err)
	}

	if len(sink.reps) != 1 {
		t.Fatalf("expected 1 report, got %d", len(sink.reps))
	}
	rep := sink.reps[0]
	if rep.AgentID != "agent-1" || rep.Sensor != "sim" {
		t.Fatalf("identity fields wrong: %+v", rep)
	}
	if rep.Reading != entry.Reading || !rep.UpdatedAt.Equal(entry.UpdatedAt) {
		t.Fatalf("snapshot fields wrong: %+v", rep)
	}
	if !rep.PublishedAt.Equal(pubAt) {
		t.Fatalf("expected publish time %v, got %v", pubAt, rep.PublishedAt)
	}
}

func TestPresenterWrapsSinkError(t *testing.T) {
	sink := &captureSink{name: "capture", err: errors.New("broker down")}
	p := NewPresenter(PresenterConfig{Sink: sink, AgentID: "agent-1", Sensor: "sim"})

	err := p.Present(context.Background(), model.CacheEntry{})
	if err == nil {
		t.Fatalf("expected error from failing sink")
	}
	if !strings.Contains(err.Error(), "capture") {
		t.Fatalf("error should name the sink, got %v", err)
	}
}
