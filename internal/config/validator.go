package config

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarpardhi/inputgate/internal/event"
)

// Validate checks the config for:
//   - Required fields and sane queue bounds
//   - Event kind names that actually exist
//   - Enablement values restricted to enable/ignore/disable
func Validate(cfg *GatewayConfig) error {
	var errs []string

	if cfg.Version == "" {
		errs = append(errs, "version is required")
	}
	if cfg.Queue.Capacity < 0 {
		errs = append(errs, fmt.Sprintf("queue.capacity must not be negative (got %d)", cfg.Queue.Capacity))
	}
	if cfg.Queue.WaitTimeoutMs < 0 {
		errs = append(errs, fmt.Sprintf("queue.wait_timeout_ms must not be negative (got %d)", cfg.Queue.WaitTimeoutMs))
	}
	if cfg.Queue.MaxWaitMs > 0 && cfg.Queue.WaitTimeoutMs > cfg.Queue.MaxWaitMs {
		errs = append(errs, fmt.Sprintf("queue.wait_timeout_ms %d exceeds queue.max_wait_ms %d",
			cfg.Queue.WaitTimeoutMs, cfg.Queue.MaxWaitMs))
	}

	for name, state := range cfg.Events {
		if _, ok := event.ParseKind(name); !ok {
			errs = append(errs, fmt.Sprintf("events: unknown kind %q", name))
		}
		switch state {
		case "enable", "ignore", "disable":
		default:
			errs = append(errs, fmt.Sprintf("events.%s: state must be enable, ignore or disable (got %q)", name, state))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
