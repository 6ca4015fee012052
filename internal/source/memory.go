package source

import (
	"context"
	"sync"
	"time"

	"github.com/gyaneshwarpardhi/inputgate/internal/metrics"
	"github.com/gyaneshwarpardhi/inputgate/internal/raw"
)

// Memory is a bounded in-memory Source. One mutex guards the queue and
// the state table; a one-slot notify channel wakes a blocked consumer
// on enqueue. Designed for a single consumer, any number of producers.
type Memory struct {
	mu      sync.Mutex
	items   []raw.Record
	ignored map[uint32]bool
	cap     int
	notify  chan struct{}
}

// NewMemory creates a Memory source holding at most capacity records.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Memory{
		items:   make([]raw.Record, 0, capacity),
		ignored: make(map[uint32]bool),
		cap:     capacity,
		notify:  make(chan struct{}, 1),
	}
}

func (m *Memory) TryDequeue() (raw.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pop()
}

// pop must be called with mu held.
func (m *Memory) pop() (raw.Record, bool) {
	if len(m.items) == 0 {
		return raw.Record{}, false
	}
	rec := m.items[0]
	m.items = m.items[1:]
	m.gauges()
	return rec, true
}

// gauges must be called with mu held. NewMemory guarantees cap > 0.
func (m *Memory) gauges() {
	metrics.QueueDepth.Set(float64(len(m.items)))
	metrics.QueueUtilization.Set(float64(len(m.items)) / float64(m.cap))
}

func (m *Memory) BlockingDequeue(ctx context.Context, timeout time.Duration) (raw.Record, bool) {
	var deadline <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		deadline = t.C
	}
	for {
		m.mu.Lock()
		rec, ok := m.pop()
		m.mu.Unlock()
		if ok {
			return rec, true
		}
		select {
		case <-m.notify:
		case <-deadline:
			return raw.Record{}, false
		case <-ctx.Done():
			return raw.Record{}, false
		}
	}
}

func (m *Memory) Enqueue(rec raw.Record) bool {
	m.mu.Lock()
	if m.ignored[rec.Type()] {
		m.mu.Unlock()
		metrics.EventsDroppedDisabled.Inc()
		return false
	}
	if len(m.items) >= m.cap {
		m.mu.Unlock()
		metrics.EventsDroppedFull.Inc()
		return false
	}
	m.items = append(m.items, rec)
	m.gauges()
	m.mu.Unlock()

	metrics.EventsEnqueued.Inc()
	select {
	case m.notify <- struct{}{}:
	default:
	}
	return true
}

func (m *Memory) Flush(typ uint32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	for _, rec := range m.items {
		if rec.Type() != typ {
			kept = append(kept, rec)
		}
	}
	m.items = kept
	m.gauges()
}

func (m *Memory) HasPending(typ uint32) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.items {
		if rec.Type() == typ {
			return true
		}
	}
	return false
}

func (m *Memory) HasQuitPending() bool {
	return m.HasPending(raw.Quit)
}

func (m *Memory) EventState(typ uint32, s State) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := Enable
	if m.ignored[typ] {
		prev = Ignore
	}
	switch s {
	case Query:
	case Ignore:
		m.ignored[typ] = true
	case Enable:
		delete(m.ignored, typ)
	}
	return prev
}

// Len returns the number of queued records.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Cap returns the queue capacity.
func (m *Memory) Cap() int {
	return m.cap
}
