// Package keystate tracks the current keyboard modifier state observed
// by the gateway. The translator samples it at translation time, so key
// events carry the modifiers in effect now, not at capture time.
package keystate

import (
	"sync"

	"github.com/gyaneshwarpardhi/inputgate/internal/event"
)

// Tracker holds the latest modifier mask. Safe for concurrent reads;
// the pump is the only writer.
type Tracker struct {
	mu   sync.RWMutex
	mods event.ModMask
}

// NewTracker creates a Tracker with no modifiers held.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Mods returns the current modifier mask.
func (t *Tracker) Mods() event.ModMask {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.mods
}

// Set replaces the current modifier mask.
func (t *Tracker) Set(m event.ModMask) {
	t.mu.Lock()
	t.mods = m
	t.mu.Unlock()
}
