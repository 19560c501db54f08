package model

import "time"

// CacheEntry holds the last known-good reading and the time it was acquired.
// The zero value is the boot sentinel: a 0.0/0.0 reading that has never been
// updated. UpdatedAt moves only when an acquisition succeeds, so its age is
// the staleness of the reading.
type CacheEntry struct {
	Reading   Reading   `json:"reading"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Age returns how long ago the entry was last updated, or zero if no
// acquisition has succeeded yet.
func (e CacheEntry) Age(now time.Time) time.Duration {
	if e.UpdatedAt.IsZero() {
		return 0
	}
	return now.Sub(e.UpdatedAt)
}
