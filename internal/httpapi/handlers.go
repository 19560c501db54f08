package httpapi

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/agent"
	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

//go:embed web/index.html
var indexHTML []byte

// Handlers serves the query interface. Every handler reads the cache
// directly, on its own goroutine, and only ever sees whole snapshots; none of
// them touches the acquisition path.
type Handlers struct {
	Cache   *agent.StateCache
	AgentID string
	Sensor  string
	Logger  *log.Logger
	// Clock overrides time.Now in tests.
	Clock func() time.Time
}

func (h *Handlers) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}

// Reading responds with the bare cached pair. The body is written from
// Reading's own encoding so polling clients get a byte-stable document, with
// no trailing newline.
func (h *Handlers) Reading(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(h.Cache.Read().Reading)
	if err != nil {
		http.Error(w, "encode reading", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

type statusResponse struct {
	AgentID         string        `json:"agent_id"`
	Sensor          string        `json:"sensor"`
	Reading         model.Reading `json:"reading"`
	Level           string        `json:"level"`
	UpdatedAt       *time.Time    `json:"updated_at"`
	StaleForSeconds float64       `json:"stale_for_seconds"`
}

// Status adds the metadata Reading leaves out: who is reporting, how the
// temperature classifies, and how old the reading is. updated_at is null
// until the first successful acquisition.
func (h *Handlers) Status(w http.ResponseWriter, r *http.Request) {
	e := h.Cache.Read()
	resp := statusResponse{
		AgentID: h.AgentID,
		Sensor:  h.Sensor,
		Reading: e.Reading,
		Level:   model.Classify(e.Reading.Temperature),
	}
	if !e.UpdatedAt.IsZero() {
		at := e.UpdatedAt
		resp.UpdatedAt = &at
		resp.StaleForSeconds = e.Age(h.now()).Seconds()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil && h.Logger != nil {
		h.Logger.Printf("encode status: %v", err)
	}
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// Index serves the embedded presentation page, which polls /api/reading on
// its own timer.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
