package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sony/gobreaker"
)

const publishWait = 5 * time.Second

type MQTTConfig struct {
	// Broker is the connection URL, e.g. "tcp://localhost:1883".
	Broker   string
	ClientID string
	Username string
	Password string
	Topic    string
	QoS      byte
	Logger   *log.Logger
}

// MQTTSink publishes reports to an MQTT topic. The initial connect retries
// with exponential backoff; publishes run behind a circuit breaker so a dead
// broker costs the dispatch loop one bounded wait, then nothing until the
// breaker half-opens.
type MQTTSink struct {
	client mqtt.Client
	topic  string
	qos    byte
	cb     *gobreaker.CircuitBreaker
	logger *log.Logger
}

func NewMQTTSink(ctx context.Context, cfg MQTTConfig) (*MQTTSink, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetKeepAlive(30 * time.Second)

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 10 * time.Second

	var client mqtt.Client
	err := backoff.Retry(func() error {
		client = mqtt.NewClient(opts)
		if token := client.Connect(); token.Wait() && token.Error() != nil {
			logger.Printf("mqtt connect failed: %v", token.Error())
			return token.Error()
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, 4), ctx))
	if err != nil {
		return nil, fmt.Errorf("connect mqtt broker %s: %w", cfg.Broker, err)
	}
	logger.Printf("connected to mqtt broker %s", cfg.Broker)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     "mqtt-publish",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Printf("%s breaker %s -> %s", name, from, to)
		},
	})

	return &MQTTSink{
		client: client,
		topic:  cfg.Topic,
		qos:    cfg.QoS,
		cb:     cb,
		logger: logger,
	}, nil
}

func (s *MQTTSink) Name() string { return "mqtt" }

func (s *MQTTSink) Publish(ctx context.Context, rep Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	_, err = s.cb.Execute(func() (any, error) {
		token := s.client.Publish(s.topic, s.qos, false, payload)
		if !token.WaitTimeout(publishWait) {
			return nil, errors.New("publish timed out")
		}
		return nil, token.Error()
	})
	if err != nil {
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}
	return nil
}

func (s *MQTTSink) Close() error {
	if s.client.IsConnected() {
		s.client.Disconnect(250)
		s.logger.Printf("mqtt client disconnected")
	}
	return nil
}
