package config

// Defaults contains system-wide default configurations
// These values are used when specific components don't specify their own values
type Defaults struct {
	// LLM provider used for every turn unless a tenant overrides it
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Fallback reply language when the customer's language is unknown
	Language string `yaml:"language,omitempty"`

	// Max iterations override (engine forces a conclusion when reached)
	MaxIterations *int `yaml:"max_iterations,omitempty" validate:"omitempty,min=1"`

	// LLM trace masking configuration
	TraceMasking *TraceMaskingDefaults `yaml:"trace_masking,omitempty"`
}
