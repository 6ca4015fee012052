// Package pump layers the portable event operations over a native
// Source: poll, wait, synthetic push, flush, pending queries and
// per-kind enablement. One pump owns one source.
package pump

import (
	"context"
	"time"

	"github.com/gyaneshwarpardhi/inputgate/internal/event"
	"github.com/gyaneshwarpardhi/inputgate/internal/keystate"
	"github.com/gyaneshwarpardhi/inputgate/internal/metrics"
	"github.com/gyaneshwarpardhi/inputgate/internal/raw"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
	"github.com/gyaneshwarpardhi/inputgate/internal/translate"
)

// Pump translates and manages events from a single native Source.
// Dequeue operations (Poll, Wait, WaitTimeout) must be called from one
// consumer; the remaining operations may be called from any goroutine.
type Pump struct {
	src  source.Source
	mods *keystate.Tracker
}

// New creates a Pump over src.
func New(src source.Source) *Pump {
	return &Pump{src: src, mods: keystate.NewTracker()}
}

// Poll dequeues and translates at most one pending record without
// blocking. Returns false if nothing was pending or the record's
// discriminant was unrecognized.
func (p *Pump) Poll() (event.Event, bool) {
	rec, ok := p.src.TryDequeue()
	if !ok {
		return event.Event{}, false
	}
	return p.translate(rec)
}

// Wait blocks until a record arrives, then translates it. Returns false
// only if ctx was cancelled or the record was unrecognized: the boolean
// always means a valid Event was produced.
func (p *Pump) Wait(ctx context.Context) (event.Event, bool) {
	return p.wait(ctx, 0)
}

// WaitTimeout blocks up to timeout for a record, then translates it.
func (p *Pump) WaitTimeout(ctx context.Context, timeout time.Duration) (event.Event, bool) {
	return p.wait(ctx, timeout)
}

func (p *Pump) wait(ctx context.Context, timeout time.Duration) (event.Event, bool) {
	start := time.Now()
	rec, ok := p.src.BlockingDequeue(ctx, timeout)
	metrics.WaitDuration.Observe(float64(time.Since(start).Milliseconds()))
	if !ok {
		return event.Event{}, false
	}
	return p.translate(rec)
}

func (p *Pump) translate(rec raw.Record) (event.Event, bool) {
	// Key records refresh the modifier snapshot before translation, so
	// the translated event carries the mask in effect now.
	if t := rec.Type(); t == raw.KeyDown || t == raw.KeyUp {
		p.mods.Set(event.ModMask(raw.Key(rec).Mod()))
	}
	ev, ok := translate.Translate(rec, p.mods)
	if !ok {
		metrics.EventsUnknown.Inc()
		return event.Event{}, false
	}
	metrics.EventsTranslated.WithLabelValues(ev.Kind.String()).Inc()
	return ev, true
}

// Push enqueues a synthetic record carrying only the kind's native
// discriminant; payload fields stay at their zero values. Returns false
// if the source dropped or rejected it.
func (p *Pump) Push(k event.Kind) bool {
	typ, ok := translate.KindToRaw(k)
	if !ok {
		return false
	}
	if !p.src.Enqueue(raw.Synthetic(typ)) {
		return false
	}
	metrics.EventsPushed.Inc()
	return true
}

// Flush removes all pending records of the given kind.
func (p *Pump) Flush(k event.Kind) {
	typ, ok := translate.KindToRaw(k)
	if !ok {
		return
	}
	p.src.Flush(typ)
	metrics.EventsFlushed.WithLabelValues(k.String()).Inc()
}

// SetState sets the processing state for a kind and returns the state
// previously in effect. source.Query reads without mutating.
func (p *Pump) SetState(k event.Kind, s source.State) source.State {
	typ, ok := translate.KindToRaw(k)
	if !ok {
		return source.Enable
	}
	return p.src.EventState(typ, s)
}

// HasPending reports whether at least one record of the kind is queued.
func (p *Pump) HasPending(k event.Kind) bool {
	typ, ok := translate.KindToRaw(k)
	if !ok {
		return false
	}
	return p.src.HasPending(typ)
}

// HasQuitPending reports whether a Quit record is queued anywhere.
func (p *Pump) HasQuitPending() bool {
	return p.src.HasQuitPending()
}

// Mods returns the current modifier snapshot.
func (p *Pump) Mods() event.ModMask {
	return p.mods.Mods()
}

// QueueUtilization returns queue used / capacity (0–1).
func (p *Pump) QueueUtilization() float64 {
	if p.src.Cap() == 0 {
		return 0
	}
	return float64(p.src.Len()) / float64(p.src.Cap())
}
