package telemetry

import (
	"context"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// Report is one cache snapshot pushed to an external collector. UpdatedAt is
// the acquisition time of the reading, PublishedAt the push time; after a
// sensor dropout the two drift apart, which is how collectors see staleness.
type Report struct {
	AgentID     string        `json:"agent_id"`
	Sensor      string        `json:"sensor"`
	Reading     model.Reading `json:"reading"`
	UpdatedAt   time.Time     `json:"updated_at"`
	PublishedAt time.Time     `json:"published_at"`
}

// Sink delivers reports to one destination. Publish must respect ctx and
// return within a bounded time so the dispatch loop is never stalled by a
// dead broker.
type Sink interface {
	Name() string
	Publish(ctx context.Context, rep Report) error
	Close() error
}
