package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReadingMarshalKeepsOrderAndDecimals(t *testing.T) {
	tests := []struct {
		name string
		in   Reading
		want string
	}{
		{"typical", Reading{Temperature: 21.5, Humidity: 45.0}, `{"temperature":21.5,"humidity":45.0}`},
		{"whole numbers keep a decimal", Reading{Temperature: 22, Humidity: 45}, `{"temperature":22.0,"humidity":45.0}`},
		{"sentinel", Reading{}, `{"temperature":0.0,"humidity":0.0}`},
		{"negative", Reading{Temperature: -3.25, Humidity: 80.1}, `{"temperature":-3.25,"humidity":80.1}`},
		{"full precision survives", Reading{Temperature: 21.57, Humidity: 45.02}, `{"temperature":21.57,"humidity":45.02}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestReadingRoundTrip(t *testing.T) {
	in := Reading{Temperature: 19.8, Humidity: 61.4}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	var out Reading
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		temp float64
		want string
	}{
		{0, LevelCool},
		{17.9, LevelCool},
		{18.0, LevelNormal},
		{21.5, LevelNormal},
		{28.0, LevelNormal},
		{28.1, LevelHot},
		{40, LevelHot},
	}
	for _, tc := range tests {
		if got := Classify(tc.temp); got != tc.want {
			t.Fatalf("Classify(%v): expected %s, got %s", tc.temp, tc.want, got)
		}
	}
}

func TestCacheEntryAge(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var sentinel CacheEntry
	if got := sentinel.Age(now); got != 0 {
		t.Fatalf("expected zero age for sentinel, got %v", got)
	}

	e := CacheEntry{UpdatedAt: now.Add(-90 * time.Second)}
	if got := e.Age(now); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
}
