package config

import (
	"github.com/gyaneshwarpardhi/inputgate/internal/event"
	"github.com/gyaneshwarpardhi/inputgate/internal/source"
)

// GatewayConfig is the top-level YAML structure.
type GatewayConfig struct {
	Version string            `yaml:"version"`
	Queue   QueueConf         `yaml:"queue"`
	Events  map[string]string `yaml:"events"` // kind name → "enable" | "ignore"
}

// QueueConf holds tunable queue and wait settings.
type QueueConf struct {
	Capacity      int `yaml:"capacity"`
	WaitTimeoutMs int `yaml:"wait_timeout_ms"` // default timeout for API waits
	MaxWaitMs     int `yaml:"max_wait_ms"`     // upper bound for API waits
}

// EventStates resolves the events map into per-kind processing states.
// Kinds not listed keep their current state. Validate must have passed.
func (c *GatewayConfig) EventStates() map[event.Kind]source.State {
	out := make(map[event.Kind]source.State, len(c.Events))
	for name, state := range c.Events {
		k, ok := event.ParseKind(name)
		if !ok {
			continue
		}
		switch state {
		case "enable":
			out[k] = source.Enable
		case "ignore", "disable":
			out[k] = source.Ignore
		}
	}
	return out
}
