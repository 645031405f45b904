package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// VendraYAMLConfig represents the complete vendra.yaml file structure
type VendraYAMLConfig struct {
	System    *SystemYAMLConfig `yaml:"system"`
	Defaults  *Defaults         `yaml:"defaults"`
	Engine    *EngineConfig     `yaml:"engine"`
	Queue     *QueueConfig      `yaml:"queue"`
	Scheduler *SchedulerConfig  `yaml:"scheduler"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL     string               `yaml:"dashboard_url"`
	AllowedWSOrigins []string             `yaml:"allowed_ws_origins"`
	Playbooks        *PlaybooksYAMLConfig `yaml:"playbooks"`
	Auth             *AuthYAMLConfig      `yaml:"auth"`
	Channels         *ChannelConfig       `yaml:"channels"`
}

// PlaybooksYAMLConfig holds playbook fetcher settings from YAML.
type PlaybooksYAMLConfig struct {
	CacheTTL       string   `yaml:"cache_ttl,omitempty"` // Parsed to time.Duration
	AllowedDomains []string `yaml:"allowed_domains,omitempty"`
}

// AuthYAMLConfig holds dashboard authentication settings from YAML.
type AuthYAMLConfig struct {
	JWTSecretEnv string `yaml:"jwt_secret_env,omitempty"` // Defaults to "AUTH_JWT_SECRET" if omitted
	TokenTTL     string `yaml:"token_ttl,omitempty"`      // Parsed to time.Duration
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Apply environment overrides (ARCHIVE_JOB_CRON etc.)
//  6. Build in-memory registries
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"default_provider", cfg.DefaultLLMProvider(),
		"max_iterations", cfg.MaxIterations())

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load vendra.yaml (system settings, defaults, engine, queue, scheduler)
	vendraConfig, err := loader.loadVendraYAML()
	if err != nil {
		return nil, NewLoadError("vendra.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined providers (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 6. Resolve defaults (YAML overrides built-in)
	defaults := vendraConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.LLMProvider == "" {
		defaults.LLMProvider = builtin.DefaultLLMProvider
	}
	if defaults.Language == "" {
		defaults.Language = builtin.DefaultLanguage
	}
	if defaults.TraceMasking == nil {
		defaults.TraceMasking = &TraceMaskingDefaults{
			Enabled:      true,
			PatternGroup: "pii",
		}
	}

	// Resolve engine config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	engineConfig := DefaultEngineConfig()
	if vendraConfig.Engine != nil {
		if err := mergo.Merge(engineConfig, vendraConfig.Engine, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge engine config: %w", err)
		}
	}

	// Resolve queue config
	queueConfig := DefaultQueueConfig()
	if vendraConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, vendraConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// Resolve scheduler config, then let the environment win
	schedulerConfig := DefaultSchedulerConfig()
	if vendraConfig.Scheduler != nil {
		if err := mergo.Merge(schedulerConfig, vendraConfig.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}
	applySchedulerEnvOverrides(schedulerConfig)

	// Resolve system config (Playbooks + Auth + Channels + DashboardURL + WS origins)
	playbooksCfg := resolvePlaybookConfig(vendraConfig.System)
	authCfg := resolveAuthConfig(vendraConfig.System)
	channelsCfg := resolveChannelConfig(vendraConfig.System)
	dashboardURL := resolveDashboardURL(vendraConfig.System)
	allowedWSOrigins := resolveAllowedWSOrigins(vendraConfig.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Engine:              engineConfig,
		Queue:               queueConfig,
		Scheduler:           schedulerConfig,
		Playbooks:           playbooksCfg,
		Auth:                authCfg,
		Channels:            channelsCfg,
		DashboardURL:        dashboardURL,
		AllowedWSOrigins:    allowedWSOrigins,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadVendraYAML() (*VendraYAMLConfig, error) {
	var config VendraYAMLConfig

	if err := l.loadYAML("vendra.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// applySchedulerEnvOverrides lets deployment environment variables override
// the YAML scheduler settings.
func applySchedulerEnvOverrides(cfg *SchedulerConfig) {
	if v := os.Getenv("ARCHIVE_JOB_CRON"); v != "" {
		cfg.ArchiveCron = v
	}
	if v := os.Getenv("ARCHIVE_ORDER_AGE_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ArchiveOrderAgeHours = n
		} else {
			slog.Warn("Invalid ARCHIVE_ORDER_AGE_HOURS, keeping configured value",
				"value", v, "configured", cfg.ArchiveOrderAgeHours)
		}
	}
	if v := os.Getenv("SESSION_IDLE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionIdleMinutes = n
		} else {
			slog.Warn("Invalid SESSION_IDLE_MINUTES, keeping configured value",
				"value", v, "configured", cfg.SessionIdleMinutes)
		}
	}
}

// resolvePlaybookConfig resolves playbook configuration from system YAML, applying defaults.
func resolvePlaybookConfig(sys *SystemYAMLConfig) *PlaybookConfig {
	cfg := &PlaybookConfig{
		CacheTTL:       5 * time.Minute,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
	}

	if sys == nil || sys.Playbooks == nil {
		return cfg
	}

	pb := sys.Playbooks
	if pb.CacheTTL != "" {
		if d, err := time.ParseDuration(pb.CacheTTL); err == nil {
			cfg.CacheTTL = d
		} else {
			slog.Warn("Invalid cache_ttl in playbooks config, using default",
				"value", pb.CacheTTL,
				"default", cfg.CacheTTL,
				"error", err)
		}
	}
	if len(pb.AllowedDomains) > 0 {
		cfg.AllowedDomains = pb.AllowedDomains
	}

	return cfg
}

// resolveAuthConfig resolves authentication configuration from system YAML, applying defaults.
func resolveAuthConfig(sys *SystemYAMLConfig) *AuthConfig {
	cfg := &AuthConfig{
		JWTSecretEnv: "AUTH_JWT_SECRET",
		TokenTTL:     24 * time.Hour,
	}

	if sys == nil || sys.Auth == nil {
		return cfg
	}

	a := sys.Auth
	if a.JWTSecretEnv != "" {
		cfg.JWTSecretEnv = a.JWTSecretEnv
	}
	if a.TokenTTL != "" {
		if d, err := time.ParseDuration(a.TokenTTL); err == nil {
			cfg.TokenTTL = d
		} else {
			slog.Warn("Invalid token_ttl in auth config, using default",
				"value", a.TokenTTL,
				"default", cfg.TokenTTL,
				"error", err)
		}
	}

	return cfg
}

// resolveChannelConfig resolves messaging channel webhook configuration from system YAML.
func resolveChannelConfig(sys *SystemYAMLConfig) *ChannelConfig {
	if sys != nil && sys.Channels != nil {
		if sys.Channels.VerifyTokens == nil {
			sys.Channels.VerifyTokens = map[string]string{}
		}
		return sys.Channels
	}
	return &ChannelConfig{VerifyTokens: map[string]string{}}
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
