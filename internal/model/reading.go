package model

import (
	"strconv"
	"strings"
)

// Reading is one paired temperature/humidity measurement. The pair is always
// replaced as a unit, never field by field.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// MarshalJSON keeps the wire format stable for polling clients: field order is
// temperature then humidity, and whole numbers keep a trailing decimal
// (45 encodes as 45.0).
func (r Reading) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString(`{"temperature":`)
	b.WriteString(formatValue(r.Temperature))
	b.WriteString(`,"humidity":`)
	b.WriteString(formatValue(r.Humidity))
	b.WriteByte('}')
	return []byte(b.String()), nil
}

func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
