package api

import (
	"encoding/json"
	"net/http"

	"github.com/gyaneshwarpardhi/inputgate/internal/event"
)

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the standard error envelope.
type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// eventBody is the wire form of a translated event; kind is rendered by
// name rather than by numeric discriminant.
type eventBody struct {
	Kind      string        `json:"kind"`
	Timestamp uint32        `json:"timestamp"`
	WindowID  uint32        `json:"window_id"`
	Payload   event.Payload `json:"payload,omitempty"`
}

func toBody(ev event.Event) eventBody {
	return eventBody{
		Kind:      ev.Kind.String(),
		Timestamp: ev.Timestamp,
		WindowID:  ev.WindowID,
		Payload:   ev.Payload,
	}
}
