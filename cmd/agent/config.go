package main

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// SensorDriver selects the acquisition backend: "sht3x" or "sim".
	SensorDriver string
	I2CBus       string
	I2CAddr      int

	IntervalMs int // acquisition cadence
	BeatMs     int // dispatch pass cadence

	AgentID      string // empty generates a random id at boot
	DisplayOn    bool
	SimFailEvery int

	// Telemetry sinks; an empty broker leaves the sink unmounted.
	MQTTBroker   string
	MQTTTopic    string
	MQTTUser     string
	MQTTPassword string
	MQTTQoS      int

	KafkaBrokers string // comma separated
	KafkaTopic   string

	TelemetryConsole    bool
	TelemetryIntervalMs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getenvBool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		SensorDriver: getenv("SENSOR_DRIVER", "sim"),
		I2CBus:       getenv("I2C_BUS", "/dev/i2c-1"),
		I2CAddr:      getenvInt("I2C_ADDR", 0x44),

		IntervalMs: getenvInt("ACQUIRE_INTERVAL_MS", 2000),
		BeatMs:     getenvInt("DISPATCH_BEAT_MS", 100),

		AgentID:      getenv("AGENT_ID", ""),
		DisplayOn:    getenvBool("DISPLAY", true),
		SimFailEvery: getenvInt("SIM_FAIL_EVERY", 0),

		MQTTBroker:   getenv("MQTT_BROKER", ""),
		MQTTTopic:    getenv("MQTT_TOPIC", "sensor/room/climate"),
		MQTTUser:     getenv("MQTT_USER", ""),
		MQTTPassword: getenv("MQTT_PASSWORD", ""),
		MQTTQoS:      getenvInt("MQTT_QOS", 0),

		KafkaBrokers: getenv("KAFKA_BROKERS", ""),
		KafkaTopic:   getenv("KAFKA_TOPIC", "climate-reports"),

		TelemetryConsole:    getenvBool("TELEMETRY_CONSOLE", false),
		TelemetryIntervalMs: getenvInt("TELEMETRY_INTERVAL_MS", 10000),
	}
}
