package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/metrics"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

type PresenterConfig struct {
	Sink    Sink
	AgentID string
	// Sensor names the driver behind the readings, e.g. "sht3x" or "sim".
	Sensor  string
	Metrics *metrics.Metrics
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Presenter mounts a sink on the dispatch loop: each serving turns the cache
// snapshot into a report and pushes it out.
type Presenter struct {
	sink    Sink
	agentID string
	sensor  string
	metrics *metrics.Metrics
	clock   func() time.Time
}

func NewPresenter(cfg PresenterConfig) *Presenter {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Presenter{
		sink:    cfg.Sink,
		agentID: cfg.AgentID,
		sensor:  cfg.Sensor,
		metrics: cfg.Metrics,
		clock:   clock,
	}
}

func (p *Presenter) Name() string { return p.sink.Name() }

func (p *Presenter) Present(ctx context.Context, e model.CacheEntry) error {
	rep := Report{
		AgentID:     p.agentID,
		Sensor:      p.sensor,
		Reading:     e.Reading,
		UpdatedAt:   e.UpdatedAt,
		PublishedAt: p.clock(),
	}
	err := p.sink.Publish(ctx, rep)
	p.metrics.PublishResult(p.sink.Name(), err)
	if err != nil {
		return fmt.Errorf("publish via %s: %w", p.sink.Name(), err)
	}
	return nil
}
