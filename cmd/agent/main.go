package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	ghandlers "github.com/gorilla/handlers"
	"github.com/google/uuid"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/agent"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/display"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/httpapi"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/metrics"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/sensor"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/telemetry"
)

func main() {
	logger := log.New(os.Stdout, "[agent] ", log.LstdFlags)
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	agentID := cfg.AgentID
	if agentID == "" {
		agentID = uuid.NewString()
	}
	logger.Printf("starting agent %s driver=%s interval=%dms", agentID, cfg.SensorDriver, cfg.IntervalMs)

	port, err := openSensor(cfg)
	if err != nil {
		logger.Fatalf("open sensor: %v", err)
	}
	defer port.Close()

	m := metrics.New()
	cache := agent.NewStateCache()
	sched := agent.NewScheduler(agent.SchedulerConfig{
		Port:     port,
		Cache:    cache,
		Interval: time.Duration(cfg.IntervalMs) * time.Millisecond,
		Logger:   logger,
	})
	sched.OnAttempt(func(a agent.Attempt) {
		if a.Err != nil {
			m.AcquisitionFailed(a.Took)
		} else {
			m.AcquisitionSucceeded(a.Entry.Reading, a.Took)
		}
		m.SetReadingAge(a.Entry.Age(time.Now()))
	})
	if cfg.DisplayOn {
		console := display.NewConsole(display.ConsoleConfig{})
		sched.OnAttempt(func(a agent.Attempt) { console.Redraw(a.Entry, a.Err) })
	}

	disp := agent.NewDispatcher(agent.DispatcherConfig{
		Cache:     cache,
		Scheduler: sched,
		Beat:      time.Duration(cfg.BeatMs) * time.Millisecond,
		Logger:    logger,
	})
	for _, sink := range buildSinks(ctx, cfg, agentID, logger) {
		defer sink.Close()
		disp.Mount(telemetry.NewPresenter(telemetry.PresenterConfig{
			Sink:    sink,
			AgentID: agentID,
			Sensor:  cfg.SensorDriver,
			Metrics: m,
		}), time.Duration(cfg.TelemetryIntervalMs)*time.Millisecond)
	}

	loopDone := make(chan struct{})
	go func() {
		disp.Run(ctx)
		close(loopDone)
	}()

	h := &httpapi.Handlers{
		Cache:   cache,
		AgentID: agentID,
		Sensor:  cfg.SensorDriver,
		Logger:  logger,
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           ghandlers.LoggingHandler(os.Stdout, httpapi.NewRouter(h, m)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Printf("query interface listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("http shutdown: %v", err)
	}
	<-loopDone
}

func openSensor(cfg Config) (sensor.Port, error) {
	switch cfg.SensorDriver {
	case "sht3x":
		return sensor.NewSHT3x(sensor.SHT3xConfig{Bus: cfg.I2CBus, Addr: uint16(cfg.I2CAddr)})
	case "sim":
		return sensor.NewSimulator(sensor.SimulatorConfig{FailEvery: cfg.SimFailEvery}), nil
	default:
		return nil, fmt.Errorf("unknown sensor driver %q", cfg.SensorDriver)
	}
}

// buildSinks mounts every telemetry destination the config enables. A sink
// that cannot connect is skipped with a log line; telemetry is auxiliary and
// never blocks the agent from serving its cache.
func buildSinks(ctx context.Context, cfg Config, agentID string, logger *log.Logger) []telemetry.Sink {
	var sinks []telemetry.Sink
	if cfg.MQTTBroker != "" {
		s, err := telemetry.NewMQTTSink(ctx, telemetry.MQTTConfig{
			Broker:   cfg.MQTTBroker,
			ClientID: "climate-agent-" + agentID,
			Username: cfg.MQTTUser,
			Password: cfg.MQTTPassword,
			Topic:    cfg.MQTTTopic,
			QoS:      byte(cfg.MQTTQoS),
			Logger:   logger,
		})
		if err != nil {
			logger.Printf("mqtt sink disabled: %v", err)
		} else {
			sinks = append(sinks, s)
		}
	}
	if cfg.KafkaBrokers != "" {
		sinks = append(sinks, telemetry.NewKafkaSink(telemetry.KafkaConfig{
			Brokers: strings.Split(cfg.KafkaBrokers, ","),
			Topic:   cfg.KafkaTopic,
		}))
	}
	if cfg.TelemetryConsole {
		sinks = append(sinks, telemetry.NewConsoleSink(nil))
	}
	return sinks
}
