package config

import "time"

// EngineConfig bounds a single conversational turn.
// A turn is one inbound customer message processed to completion: up to
// MaxIterations LLM round-trips with tool execution in between.
type EngineConfig struct {
	// MaxIterations is the LLM round-trip cap per turn. When reached, the
	// engine forces a final text-only generation.
	MaxIterations int `yaml:"max_iterations"`

	// TurnTimeout bounds the whole turn end to end.
	TurnTimeout time.Duration `yaml:"turn_timeout"`

	// LLMTimeout bounds a single LLM generation call.
	LLMTimeout time.Duration `yaml:"llm_timeout"`

	// DBTimeout bounds a single tool's database work.
	DBTimeout time.Duration `yaml:"db_timeout"`

	// MaxDeadlockRetries is how many times a serialization/deadlock failure
	// is retried before the turn fails.
	MaxDeadlockRetries int `yaml:"max_deadlock_retries"`

	// MaxSendAttempts is how many times an outbound channel send is retried.
	MaxSendAttempts int `yaml:"max_send_attempts"`
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxIterations:      6,
		TurnTimeout:        30 * time.Second,
		LLMTimeout:         8 * time.Second,
		DBTimeout:          3 * time.Second,
		MaxDeadlockRetries: 3,
		MaxSendAttempts:    2,
	}
}
