package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gyaneshwarpardhi/inputgate/internal/api"
	"github.com/gyaneshwarpardhi/inputgate/internal/config"
	"github.com/gyaneshwarpardhi/inputgate/internal/pump"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
)

func newServer(t *testing.T) (http.Handler, *pump.Pump) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("version: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}
	pmp := pump.New(source.NewMemory(16))
	return api.New(pmp, loader), pmp
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPushThenPoll(t *testing.T) {
	h, _ := newServer(t)

	rec := do(t, h, "POST", "/v1/events/push", `{"kind":"quit"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("push status = %d, body %s", rec.Code, rec.Body)
	}

	rec = do(t, h, "GET", "/v1/events/poll", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("poll status = %d, body %s", rec.Code, rec.Body)
	}
	var got struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Kind != "quit" {
		t.Errorf("kind = %q, want quit", got.Kind)
	}
}

func TestPollEmptyReturns204(t *testing.T) {
	h, _ := newServer(t)
	rec := do(t, h, "GET", "/v1/events/poll", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestPushUnknownKind(t *testing.T) {
	h, _ := newServer(t)
	rec := do(t, h, "POST", "/v1/events/push", `{"kind":"joystick"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPushBatch(t *testing.T) {
	h, _ := newServer(t)
	rec := do(t, h, "POST", "/v1/events/push/batch", `{"kinds":["quit","window_changed","key_down"]}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	var got struct {
		JobID  string `json:"job_id"`
		Total  int    `json:"total"`
		Queued int    `json:"queued"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.JobID == "" {
		t.Error("missing job id")
	}
	if got.Total != 3 || got.Queued != 3 {
		t.Errorf("total/queued = %d/%d, want 3/3", got.Total, got.Queued)
	}
}

// An unknown kind anywhere in the batch rejects the whole batch before
// anything is enqueued.
func TestPushBatchUnknownKindHasNoSideEffects(t *testing.T) {
	h, pmp := newServer(t)

	rec := do(t, h, "POST", "/v1/events/push/batch", `{"kinds":["quit","joystick","key_down"]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if pmp.HasQuitPending() {
		t.Error("quit was enqueued despite the rejected batch")
	}
	if rec := do(t, h, "GET", "/v1/events/poll", ""); rec.Code != http.StatusNoContent {
		t.Errorf("poll status = %d, want 204 (queue should be empty)", rec.Code)
	}
}

// A reload of an invalid file returns 422 and keeps the previous config
// live, with enablement untouched.
func TestReloadInvalidConfigNotInstalled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte("version: v1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}
	pmp := pump.New(source.NewMemory(16))
	h := api.New(pmp, loader)

	bad := "version: v2\nevents:\n  joystick: maybe\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if rec := do(t, h, "POST", "/v1/config/reload", ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("reload status = %d, want 422", rec.Code)
	}

	rec := do(t, h, "GET", "/v1/config", "")
	var got struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Version != "v1" {
		t.Errorf("version = %q after rejected reload, want v1", got.Version)
	}
}

func TestPendingAndFlush(t *testing.T) {
	h, _ := newServer(t)

	do(t, h, "POST", "/v1/events/push", `{"kind":"window_changed"}`)

	rec := do(t, h, "GET", "/v1/events/pending?kind=window_changed", "")
	var got struct {
		Pending bool `json:"pending"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Pending {
		t.Error("pending = false after push")
	}

	if rec := do(t, h, "DELETE", "/v1/events?kind=window_changed", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("flush status = %d", rec.Code)
	}

	rec = do(t, h, "GET", "/v1/events/pending?kind=window_changed", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Pending {
		t.Error("pending = true after flush")
	}
}

func TestEventStateIgnoreBlocksPush(t *testing.T) {
	h, _ := newServer(t)

	rec := do(t, h, "PUT", "/v1/events/state", `{"kind":"mouse_wheel","state":"ignore"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d, body %s", rec.Code, rec.Body)
	}
	var got struct {
		Previous string `json:"previous"`
		Current  string `json:"current"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Previous != "enable" || got.Current != "ignore" {
		t.Errorf("previous/current = %s/%s, want enable/ignore", got.Previous, got.Current)
	}

	if rec := do(t, h, "POST", "/v1/events/push", `{"kind":"mouse_wheel"}`); rec.Code != http.StatusConflict {
		t.Errorf("push of ignored kind status = %d, want 409", rec.Code)
	}
}

func TestWaitTimeoutReturns204(t *testing.T) {
	h, _ := newServer(t)
	rec := do(t, h, "GET", "/v1/events/wait?timeout_ms=30", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestHealthAndReady(t *testing.T) {
	h, _ := newServer(t)
	if rec := do(t, h, "GET", "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz status = %d", rec.Code)
	}
	if rec := do(t, h, "GET", "/readyz", ""); rec.Code != http.StatusOK {
		t.Errorf("readyz status = %d", rec.Code)
	}
}
