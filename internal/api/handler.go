package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/inputgate/internal/config"
	"github.com/gyaneshwarpardhi/inputgate/internal/event"
	"github.com/gyaneshwarpardhi/inputgate/internal/pump"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
)

const maxBatchSize = 100

// Handler holds all HTTP handler dependencies.
type Handler struct {
	pmp    *pump.Pump
	loader *config.Loader
	mux    *http.ServeMux
}

// New creates an HTTP handler and registers all routes.
func New(pmp *pump.Pump, loader *config.Loader) http.Handler {
	h := &Handler{pmp: pmp, loader: loader, mux: http.NewServeMux()}

	h.mux.HandleFunc("POST /v1/events/push", h.pushEvent)
	h.mux.HandleFunc("POST /v1/events/push/batch", h.pushBatch)
	h.mux.HandleFunc("GET /v1/events/poll", h.pollEvent)
	h.mux.HandleFunc("GET /v1/events/wait", h.waitEvent)
	h.mux.HandleFunc("DELETE /v1/events", h.flushEvents)
	h.mux.HandleFunc("GET /v1/events/pending", h.pendingEvents)
	h.mux.HandleFunc("PUT /v1/events/state", h.eventState)
	h.mux.HandleFunc("GET /v1/config", h.getConfig)
	h.mux.HandleFunc("POST /v1/config/reload", h.reloadConfig)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	h.mux.HandleFunc("GET /readyz", h.readyz)
	h.mux.Handle("GET /metrics", promhttp.Handler())

	return loggingMiddleware(h.mux)
}

type pushRequest struct {
	Kind string `json:"kind"`
}

// POST /v1/events/push — push one synthetic event by kind name.
func (h *Handler) pushEvent(w http.ResponseWriter, r *http.Request) {
	var req pushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	k, ok := event.ParseKind(req.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", req.Kind))
		return
	}
	if !h.pmp.Push(k) {
		writeError(w, http.StatusConflict, fmt.Sprintf("event %s not queued (ignored or queue full)", k))
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{"pushed": true, "kind": k.String()})
}

type pushBatchRequest struct {
	Kinds []string `json:"kinds"`
}

// POST /v1/events/push/batch — push up to 100 synthetic events.
func (h *Handler) pushBatch(w http.ResponseWriter, r *http.Request) {
	var req pushBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	if len(req.Kinds) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one kind")
		return
	}
	if len(req.Kinds) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(req.Kinds), maxBatchSize))
		return
	}

	// Resolve every name before pushing anything, so a bad batch has no
	// partial side effects.
	kinds := make([]event.Kind, 0, len(req.Kinds))
	for _, name := range req.Kinds {
		k, ok := event.ParseKind(name)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", name))
			return
		}
		kinds = append(kinds, k)
	}

	jobID := uuid.New().String()
	queued := 0
	for _, k := range kinds {
		if h.pmp.Push(k) {
			queued++
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":   jobID,
		"total":    len(req.Kinds),
		"queued":   queued,
		"rejected": len(req.Kinds) - queued,
	})
}

// GET /v1/events/poll — non-blocking poll; 204 when nothing translated.
func (h *Handler) pollEvent(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.pmp.Poll()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toBody(ev))
}

// GET /v1/events/wait?timeout_ms=N — bounded blocking poll.
func (h *Handler) waitEvent(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	timeoutMs := cfg.Queue.WaitTimeoutMs
	if s := r.URL.Query().Get("timeout_ms"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid timeout_ms %q", s))
			return
		}
		timeoutMs = n
	}
	if timeoutMs > cfg.Queue.MaxWaitMs {
		timeoutMs = cfg.Queue.MaxWaitMs
	}

	ev, ok := h.pmp.WaitTimeout(r.Context(), time.Duration(timeoutMs)*time.Millisecond)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, toBody(ev))
}

// DELETE /v1/events?kind=K — flush all pending events of one kind.
func (h *Handler) flushEvents(w http.ResponseWriter, r *http.Request) {
	k, ok := event.ParseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.URL.Query().Get("kind")))
		return
	}
	h.pmp.Flush(k)
	w.WriteHeader(http.StatusNoContent)
}

// GET /v1/events/pending?kind=K — pending query; quit uses the fast path.
func (h *Handler) pendingEvents(w http.ResponseWriter, r *http.Request) {
	k, ok := event.ParseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", r.URL.Query().Get("kind")))
		return
	}
	var pending bool
	if k == event.Quit {
		pending = h.pmp.HasQuitPending()
	} else {
		pending = h.pmp.HasPending(k)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"kind": k.String(), "pending": pending})
}

type stateRequest struct {
	Kind  string `json:"kind"`
	State string `json:"state"` // query | enable | ignore | disable
}

// PUT /v1/events/state — set or query per-kind enablement.
func (h *Handler) eventState(w http.ResponseWriter, r *http.Request) {
	var req stateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %s", err))
		return
	}
	k, ok := event.ParseKind(req.Kind)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown kind %q", req.Kind))
		return
	}
	s, ok := parseState(req.State)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("state must be query, enable, ignore or disable (got %q)", req.State))
		return
	}
	prev := h.pmp.SetState(k, s)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kind":     k.String(),
		"previous": stateName(prev),
		"current":  stateName(h.pmp.SetState(k, source.Query)),
	})
}

func parseState(s string) (source.State, bool) {
	switch s {
	case "query":
		return source.Query, true
	case "enable":
		return source.Enable, true
	case "ignore", "disable":
		return source.Ignore, true
	}
	return 0, false
}

func stateName(s source.State) string {
	switch s {
	case source.Enable:
		return "enable"
	case source.Ignore:
		return "ignore"
	default:
		return "query"
	}
}

// GET /v1/config — current gateway configuration.
func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.loader.Config()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"version": cfg.Version,
		"queue":   cfg.Queue,
		"events":  cfg.Events,
	})
}

// POST /v1/config/reload — hot-reload config from disk. The loader
// validates before installing; a rejected config never goes live and
// OnChange callbacks do not fire for it.
func (h *Handler) reloadConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"version":  cfg.Version,
	})
}

// GET /healthz — always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz — 503 if the native queue is >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.pmp.QueueUtilization()
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}
