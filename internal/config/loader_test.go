package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyaneshwarpardhi/inputgate/internal/config"
	"github.com/gyaneshwarpardhi/inputgate/internal/event"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "version: v1\n")
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := loader.Config()
	if cfg.Queue.Capacity != 1024 {
		t.Errorf("capacity = %d, want default 1024", cfg.Queue.Capacity)
	}
	if cfg.Queue.WaitTimeoutMs != 100 {
		t.Errorf("wait_timeout_ms = %d, want default 100", cfg.Queue.WaitTimeoutMs)
	}
	if cfg.Queue.MaxWaitMs != 5000 {
		t.Errorf("max_wait_ms = %d, want default 5000", cfg.Queue.MaxWaitMs)
	}
}

func TestEventStates(t *testing.T) {
	path := writeConfig(t, `
version: v1
events:
  mouse_wheel: ignore
  text_input: disable
  key_down: enable
`)
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}
	states := loader.Config().EventStates()
	if states[event.MouseWheel] != source.Ignore {
		t.Errorf("mouse_wheel = %v, want ignore", states[event.MouseWheel])
	}
	if states[event.TextInput] != source.Ignore {
		t.Errorf("text_input = %v, want ignore (disable alias)", states[event.TextInput])
	}
	if states[event.KeyDown] != source.Enable {
		t.Errorf("key_down = %v, want enable", states[event.KeyDown])
	}
}

func TestReloadPicksUpChanges(t *testing.T) {
	path := writeConfig(t, "version: v1\n")
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}

	var seen *config.GatewayConfig
	loader.OnChange(func(c *config.GatewayConfig) { seen = c })

	if err := os.WriteFile(path, []byte("version: v2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loader.Reload()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != "v2" {
		t.Errorf("version = %q, want v2", cfg.Version)
	}
	if seen == nil || seen.Version != "v2" {
		t.Error("OnChange callback not invoked with the new config")
	}
}

// A reload of an invalid file must fail without installing the new
// config or invoking OnChange callbacks.
func TestReloadRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "version: v1\n")
	loader, err := config.NewLoader(path)
	if err != nil {
		t.Fatal(err)
	}

	fired := 0
	loader.OnChange(func(*config.GatewayConfig) { fired++ })

	bad := "version: v2\nevents:\n  joystick: maybe\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loader.Reload(); err == nil {
		t.Fatal("Reload accepted an invalid config")
	}
	if got := loader.Config().Version; got != "v1" {
		t.Errorf("invalid config went live: version = %q, want v1", got)
	}
	if fired != 0 {
		t.Errorf("OnChange fired %d times for a rejected config", fired)
	}
}

func TestNewLoaderRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, "version: v1\nevents:\n  quit: maybe\n")
	if _, err := config.NewLoader(path); err == nil {
		t.Fatal("NewLoader accepted an invalid config")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.GatewayConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: config.GatewayConfig{
				Version: "v1",
				Queue:   config.QueueConf{Capacity: 16, WaitTimeoutMs: 100, MaxWaitMs: 5000},
				Events:  map[string]string{"quit": "enable"},
			},
		},
		{
			name:    "missing version",
			cfg:     config.GatewayConfig{},
			wantErr: true,
		},
		{
			name: "unknown kind",
			cfg: config.GatewayConfig{
				Version: "v1",
				Events:  map[string]string{"joystick": "enable"},
			},
			wantErr: true,
		},
		{
			name: "bad state value",
			cfg: config.GatewayConfig{
				Version: "v1",
				Events:  map[string]string{"quit": "maybe"},
			},
			wantErr: true,
		},
		{
			name: "wait exceeds max",
			cfg: config.GatewayConfig{
				Version: "v1",
				Queue:   config.QueueConf{WaitTimeoutMs: 6000, MaxWaitMs: 5000},
			},
			wantErr: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := config.Validate(&tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
