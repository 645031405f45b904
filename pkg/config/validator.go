package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/robfig/cron/v3"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateEngine(); err != nil {
		return fmt.Errorf("engine validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Validate API key environment variable is set (if specified)
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		if provider.MaxOutputTokens < 0 {
			return NewValidationError("llm_provider", name, "max_output_tokens", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults
	if d == nil {
		return nil
	}

	// The default provider must resolve
	if d.LLMProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("LLM provider '%s' not found", d.LLMProvider))
	}

	if d.MaxIterations != nil && *d.MaxIterations < 1 {
		return NewValidationError("defaults", "defaults", "max_iterations", fmt.Errorf("must be at least 1"))
	}

	// Trace masking pattern group must reference built-in groups
	if d.TraceMasking != nil && d.TraceMasking.Enabled {
		builtin := GetBuiltinConfig()
		if _, exists := builtin.PatternGroups[d.TraceMasking.PatternGroup]; !exists {
			return NewValidationError("defaults", "defaults", "trace_masking.pattern_group", fmt.Errorf("pattern group '%s' not found", d.TraceMasking.PatternGroup))
		}
		for i, p := range d.TraceMasking.CustomPatterns {
			if _, err := regexp.Compile(p.Pattern); err != nil {
				return NewValidationError("defaults", "defaults", fmt.Sprintf("trace_masking.custom_patterns[%d]", i), fmt.Errorf("invalid regex: %w", err))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateEngine() error {
	e := v.cfg.Engine

	if e.MaxIterations < 1 {
		return NewValidationError("engine", "engine", "max_iterations", fmt.Errorf("must be at least 1"))
	}
	if e.TurnTimeout <= 0 {
		return NewValidationError("engine", "engine", "turn_timeout", fmt.Errorf("must be positive"))
	}
	if e.LLMTimeout <= 0 || e.LLMTimeout > e.TurnTimeout {
		return NewValidationError("engine", "engine", "llm_timeout", fmt.Errorf("must be positive and within the turn timeout"))
	}
	if e.DBTimeout <= 0 || e.DBTimeout > e.TurnTimeout {
		return NewValidationError("engine", "engine", "db_timeout", fmt.Errorf("must be positive and within the turn timeout"))
	}
	if e.MaxDeadlockRetries < 0 {
		return NewValidationError("engine", "engine", "max_deadlock_retries", fmt.Errorf("must not be negative"))
	}
	if e.MaxSendAttempts < 1 {
		return NewValidationError("engine", "engine", "max_send_attempts", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentTurns < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_turns", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "queue", "orphan_threshold", fmt.Errorf("must exceed the heartbeat interval"))
	}
	if q.MaxAttempts < 1 {
		return NewValidationError("queue", "queue", "max_attempts", fmt.Errorf("must be at least 1"))
	}

	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	s := v.cfg.Scheduler

	if s.CompleterInterval <= 0 {
		return NewValidationError("scheduler", "scheduler", "completer_interval", fmt.Errorf("must be positive"))
	}
	if s.CompleterBatchSize < 1 {
		return NewValidationError("scheduler", "scheduler", "completer_batch_size", fmt.Errorf("must be at least 1"))
	}

	// Standard 5-field cron expression; fail at startup rather than at 2am
	if _, err := cron.ParseStandard(s.ArchiveCron); err != nil {
		return NewValidationError("scheduler", "scheduler", "archive_cron", fmt.Errorf("invalid cron expression %q: %v", s.ArchiveCron, err))
	}

	if s.ArchiveOrderAgeHours < 1 {
		return NewValidationError("scheduler", "scheduler", "archive_order_age_hours", fmt.Errorf("must be at least 1"))
	}
	if s.ArchiveBatchSize < 1 {
		return NewValidationError("scheduler", "scheduler", "archive_batch_size", fmt.Errorf("must be at least 1"))
	}
	if s.SessionIdleMinutes < 1 {
		return NewValidationError("scheduler", "scheduler", "session_idle_minutes", fmt.Errorf("must be at least 1"))
	}
	if s.SessionReaperInterval <= 0 {
		return NewValidationError("scheduler", "scheduler", "session_reaper_interval", fmt.Errorf("must be positive"))
	}

	return nil
}
