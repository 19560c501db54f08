package agent

import (
	"log"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/sensor"
)

// Attempt describes one finished acquisition attempt.
type Attempt struct {
	// Entry is the cache content after the attempt. After a failure it still
	// carries the previous good reading.
	Entry model.CacheEntry
	// Err is nil on success.
	Err  error
	Took time.Duration
}

type SchedulerConfig struct {
	Port     sensor.Port
	Cache    *StateCache
	Interval time.Duration
	Logger   *log.Logger
}

// Scheduler drives the sensor on a fixed cadence. It is a two-state machine,
// idle or acquiring: an attempt fires when the interval has elapsed since the
// previous attempt, and a failed attempt consumes the interval just like a
// successful one, so there is no immediate retry. On success it writes
// through to the cache; on failure it logs and leaves the cache alone, which
// keeps the last good reading in front of every consumer.
//
// Tick is not safe for concurrent use. The dispatcher's loop is its only
// caller, which is what keeps acquisitions strictly serialized.
type Scheduler struct {
	port      sensor.Port
	cache     *StateCache
	interval  time.Duration
	logger    *log.Logger
	observers []func(Attempt)

	lastAttempt time.Time
	attempted   bool
	acquiring   bool
}

func NewScheduler(cfg SchedulerConfig) *Scheduler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	interval := cfg.Interval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Scheduler{
		port:     cfg.Port,
		cache:    cfg.Cache,
		interval: interval,
		logger:   logger,
	}
}

// OnAttempt registers an observer invoked after every attempt, success or
// failure. The display renderer redraws from here so it repaints on failed
// attempts too.
func (s *Scheduler) OnAttempt(fn func(Attempt)) {
	s.observers = append(s.observers, fn)
}

// Tick runs the due-check and at most one acquisition, and reports whether an
// attempt ran. The first call always attempts; afterwards attempts are spaced
// at least one interval apart. A Tick that arrives while an acquisition is in
// flight is a no-op.
func (s *Scheduler) Tick(now time.Time) bool {
	if s.acquiring {
		return false
	}
	if s.attempted && now.Sub(s.lastAttempt) < s.interval {
		return false
	}

	s.acquiring = true
	start := time.Now()
	reading, err := s.port.Acquire()
	took := time.Since(start)
	s.lastAttempt = now
	s.attempted = true
	s.acquiring = false

	if err != nil {
		s.logger.Printf("acquisition failed, keeping last reading: %v", err)
	} else {
		s.cache.Store(reading, now)
	}

	attempt := Attempt{Entry: s.cache.Read(), Err: err, Took: took}
	for _, fn := range s.observers {
		fn(attempt)
	}
	return true
}
