package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Engine (turn loop) configuration
	Engine *EngineConfig

	// Inbound job queue and worker pool configuration
	Queue *QueueConfig

	// Background maintenance job configuration
	Scheduler *SchedulerConfig

	// Playbook fetching configuration
	Playbooks *PlaybookConfig

	// Dashboard/admin authentication configuration
	Auth *AuthConfig

	// Messaging channel webhook configuration
	Channels *ChannelConfig

	// Dashboard base URL (for links in outbound notifications)
	DashboardURL string

	// Additional allowed WebSocket origins beyond the dashboard URL
	AllowedWSOrigins []string

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// DefaultLLMProvider returns the provider name every turn uses unless a
// tenant overrides it.
func (c *Config) DefaultLLMProvider() string {
	if c.Defaults != nil && c.Defaults.LLMProvider != "" {
		return c.Defaults.LLMProvider
	}
	return GetBuiltinConfig().DefaultLLMProvider
}

// MaxIterations returns the effective engine iteration cap.
func (c *Config) MaxIterations() int {
	if c.Defaults != nil && c.Defaults.MaxIterations != nil {
		return *c.Defaults.MaxIterations
	}
	return c.Engine.MaxIterations
}
