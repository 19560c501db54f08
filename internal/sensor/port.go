package sensor

import (
	"errors"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// ErrAcquisition is the one recoverable failure kind a Port reports. Every
// failure path wraps it: bus errors, checksum mismatches, out-of-range values
// and missing responses all look the same to the caller. The underlying cause
// only surfaces in the error text for the log.
var ErrAcquisition = errors.New("sensor acquisition failed")

// Port performs one acquisition cycle against the physical sensor. Acquire
// returns within a bounded, sensor-specific time and never panics on a
// malformed response. Repeated calls are safe.
type Port interface {
	Acquire() (model.Reading, error)
	Close() error
}
