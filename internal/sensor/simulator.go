package sensor

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

type SimulatorConfig struct {
	// Seed fixes the random walk; zero seeds from the wall clock.
	Seed int64
	// StartTemp/StartHumidity are the initial values; zero picks a mild
	// indoor climate.
	StartTemp     float64
	StartHumidity float64
	// FailEvery makes every Nth acquisition fail to exercise the retention
	// policy downstream; zero disables injected failures.
	FailEvery int
}

// Simulator produces a plausible indoor climate as a bounded random walk. It
// stands in for the SHT3x when the agent runs without hardware attached.
type Simulator struct {
	mu        sync.Mutex
	rng       *rand.Rand
	temp      float64
	hum       float64
	attempts  int
	failEvery int
}

func NewSimulator(cfg SimulatorConfig) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	temp := cfg.StartTemp
	if temp == 0 {
		temp = 21.5
	}
	hum := cfg.StartHumidity
	if hum == 0 {
		hum = 45.0
	}
	return &Simulator{
		rng:       rand.New(rand.NewSource(seed)),
		temp:      temp,
		hum:       hum,
		failEvery: cfg.FailEvery,
	}
}

func (s *Simulator) Acquire() (model.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attempts++
	if s.failEvery > 0 && s.attempts%s.failEvery == 0 {
		return model.Reading{}, fmt.Errorf("%w: simulated dropout", ErrAcquisition)
	}

	s.temp = clamp(s.temp+(s.rng.Float64()-0.5)*0.4, 15, 32)
	s.hum = clamp(s.hum+(s.rng.Float64()-0.5)*1.2, 20, 80)
	return model.Reading{
		Temperature: round1(s.temp),
		Humidity:    round1(s.hum),
	}, nil
}

func (s *Simulator) Close() error { return nil }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round1 trims the walk to the sensor's 0.1 resolution.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
