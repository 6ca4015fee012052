// Package source defines the native event source contract and provides
// an in-memory implementation used when no real windowing subsystem is
// attached. The source is the single process-wide authority on pending
// raw records.
package source

import (
	"context"
	"time"

	"github.com/gyaneshwarpardhi/inputgate/internal/raw"
)

// State is the per-discriminant processing state of a Source.
type State int8

const (
	// Query returns the current state without changing it.
	Query State = -1
	// Ignore drops records of the discriminant at enqueue time.
	Ignore State = 0
	// Enable admits records of the discriminant.
	Enable State = 1
)

// Disable is an alias for Ignore; disabled records are dropped, not queued.
const Disable = Ignore

// Source is the boundary to the native event subsystem. A production
// build binds this to the real windowing queue; tests and the default
// gateway use Memory.
//
// Implementations must serialize access internally; callers may share a
// Source across goroutines, but only one consumer should dequeue.
type Source interface {
	// TryDequeue pops the oldest pending record without blocking.
	TryDequeue() (raw.Record, bool)

	// BlockingDequeue pops the oldest pending record, waiting up to
	// timeout for one to arrive. timeout <= 0 means wait indefinitely
	// (bounded only by ctx).
	BlockingDequeue(ctx context.Context, timeout time.Duration) (raw.Record, bool)

	// Enqueue appends a record. Returns false if the record was not
	// queued, either because its discriminant is ignored or because
	// the queue is full.
	Enqueue(rec raw.Record) bool

	// Flush removes every pending record of the given discriminant.
	Flush(typ uint32)

	// HasPending reports whether at least one record of the given
	// discriminant is queued.
	HasPending(typ uint32) bool

	// HasQuitPending reports whether a Quit record is queued anywhere.
	HasQuitPending() bool

	// EventState sets the processing state for a discriminant and
	// returns the state previously in effect. Pass Query to read
	// without mutating.
	EventState(typ uint32, s State) State

	// Len returns the number of queued records.
	Len() int

	// Cap returns the queue capacity.
	Cap() int
}
