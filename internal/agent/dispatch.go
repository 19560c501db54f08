package agent

import (
	"context"
	"log"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// Presenter is a pull-based consumer serviced by the dispatch loop: it is
// handed a cache snapshot on its own cadence, decoupled from the acquisition
// interval and from every other presenter. A presenter error is logged and
// never disturbs the cache or the other consumers.
type Presenter interface {
	Name() string
	Present(ctx context.Context, entry model.CacheEntry) error
}

type presenterSlot struct {
	presenter Presenter
	every     time.Duration
	last      time.Time
	ran       bool
}

type DispatcherConfig struct {
	Cache     *StateCache
	Scheduler *Scheduler
	// Beat is the pass cadence of the loop. It should be much shorter than
	// the acquisition interval so due-checks stay responsive.
	Beat   time.Duration
	Logger *log.Logger
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

// Dispatcher runs the cooperative loop that owns all sensor-side work: each
// pass serves the presenters that have come due, then hands the clock to the
// scheduler's due-check. The loop is one goroutine, so cache writes and
// acquisitions stay strictly serialized; HTTP consumers read the cache
// directly and never go through the loop.
type Dispatcher struct {
	cache  *StateCache
	sched  *Scheduler
	beat   time.Duration
	logger *log.Logger
	clock  func() time.Time
	slots  []*presenterSlot
}

func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	beat := cfg.Beat
	if beat <= 0 {
		beat = 100 * time.Millisecond
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Dispatcher{
		cache:  cfg.Cache,
		sched:  cfg.Scheduler,
		beat:   beat,
		logger: logger,
		clock:  clock,
	}
}

// Mount adds a presenter serviced at most once per every. Presenters mounted
// before Run starts are served on the first pass.
func (d *Dispatcher) Mount(p Presenter, every time.Duration) {
	d.slots = append(d.slots, &presenterSlot{presenter: p, every: every})
}

// Run drives the loop until the context is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.beat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Printf("dispatch loop stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			d.pass(ctx, d.clock())
		}
	}
}

// pass is one iteration of the loop: presenters first, then the acquisition
// due-check.
func (d *Dispatcher) pass(ctx context.Context, now time.Time) {
	for _, slot := range d.slots {
		if slot.ran && now.Sub(slot.last) < slot.every {
			continue
		}
		slot.ran = true
		slot.last = now
		if err := slot.presenter.Present(ctx, d.cache.Read()); err != nil {
			d.logger.Printf("presenter %s: %v", slot.presenter.Name(), err)
		}
	}
	d.sched.Tick(now)
}
