package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// ConsoleSink prints one line per report, for development runs without a
// broker.
type ConsoleSink struct {
	out io.Writer
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSink{out: out}
}

func (c *ConsoleSink) Name() string { return "console" }

func (c *ConsoleSink) Publish(_ context.Context, rep Report) error {
	_, err := fmt.Fprintf(c.out, "%s agent=%s sensor=%s temp=%.1f hum=%.1f updated=%s\n",
		rep.PublishedAt.Format(time.RFC3339), rep.AgentID, rep.Sensor,
		rep.Reading.Temperature, rep.Reading.Humidity, rep.UpdatedAt.Format(time.RFC3339))
	return err
}

func (c *ConsoleSink) Close() error { return nil }
