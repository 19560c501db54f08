package main

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := loadConfig()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.SensorDriver != "sim" {
		t.Fatalf("expected default driver sim, got %q", cfg.SensorDriver)
	}
	if cfg.IntervalMs != 2000 {
		t.Fatalf("expected default interval 2000ms, got %d", cfg.IntervalMs)
	}
	if cfg.BeatMs != 100 {
		t.Fatalf("expected default beat 100ms, got %d", cfg.BeatMs)
	}
	if !cfg.DisplayOn {
		t.Fatalf("expected display on by default")
	}
	if cfg.MQTTBroker != "" || cfg.KafkaBrokers != "" {
		t.Fatalf("expected no brokers by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SENSOR_DRIVER", "sht3x")
	t.Setenv("I2C_BUS", "/dev/i2c-0")
	t.Setenv("ACQUIRE_INTERVAL_MS", "5000")
	t.Setenv("DISPLAY", "false")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg := loadConfig()
	if cfg.Port != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Port)
	}
	if cfg.SensorDriver != "sht3x" || cfg.I2CBus != "/dev/i2c-0" {
		t.Fatalf("sensor config not read: %+v", cfg)
	}
	if cfg.IntervalMs != 5000 {
		t.Fatalf("expected interval 5000ms, got %d", cfg.IntervalMs)
	}
	if cfg.DisplayOn {
		t.Fatalf("expected display off")
	}
	if cfg.MQTTBroker != "tcp://broker:1883" || cfg.KafkaBrokers != "k1:9092,k2:9092" {
		t.Fatalf("broker config not read: %+v", cfg)
	}
}

func TestGetenvIntIgnoresJunk(t *testing.T) {
	t.Setenv("ACQUIRE_INTERVAL_MS", "not-a-number")
	if got := getenvInt("ACQUIRE_INTERVAL_MS", 2000); got != 2000 {
		t.Fatalf("expected fallback 2000, got %d", got)
	}
}
