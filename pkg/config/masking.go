package config

// MaskingPattern is a regex-based redaction rule applied to LLM trace
// content before it is persisted.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// TraceMaskingDefaults holds LLM trace masking settings.
// Applied system-wide to request and response content before DB storage.
type TraceMaskingDefaults struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`

	// Per-deploy redaction rules applied in addition to the pattern group.
	CustomPatterns []MaskingPattern `yaml:"custom_patterns,omitempty"`
}
