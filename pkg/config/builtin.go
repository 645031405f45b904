package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data: default LLM providers
// and the PII masking patterns applied to stored LLM traces.
type BuiltinConfig struct {
	LLMProviders       map[string]LLMProviderConfig
	MaskingPatterns    map[string]MaskingPattern
	PatternGroups      map[string][]string
	DefaultLLMProvider string
	DefaultLanguage    string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:       initBuiltinLLMProviders(),
		MaskingPatterns:    initBuiltinMaskingPatterns(),
		PatternGroups:      initBuiltinPatternGroups(),
		DefaultLLMProvider: "openai-default",
		DefaultLanguage:    "en",
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:            LLMProviderTypeOpenAI,
			Model:           "gpt-4o-mini",
			APIKeyEnv:       "OPENAI_API_KEY",
			MaxOutputTokens: 1024,
		},
		"anthropic-default": {
			Type:            LLMProviderTypeAnthropic,
			Model:           "claude-sonnet-4-20250514",
			APIKeyEnv:       "ANTHROPIC_API_KEY",
			MaxOutputTokens: 1024,
		},
		"google-default": {
			Type:            LLMProviderTypeGoogle,
			Model:           "gemini-2.5-flash",
			APIKeyEnv:       "GOOGLE_API_KEY",
			MaxOutputTokens: 1024,
		},
	}
}

// initBuiltinMaskingPatterns returns the PII redaction rules for LLM traces.
// Customer phone numbers and addresses flow through every conversation; the
// operational tables need them, the trace log does not.
func initBuiltinMaskingPatterns() map[string]MaskingPattern {
	return map[string]MaskingPattern{
		"phone_number": {
			Pattern:     `\+?[0-9][0-9\-\s().]{6,18}[0-9]`,
			Replacement: `__MASKED_PHONE__`,
			Description: "Phone numbers in international or local form",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
		"credit_card": {
			Pattern:     `\b(?:\d[ -]*?){13,19}\b`,
			Replacement: `__MASKED_CARD__`,
			Description: "Payment card numbers",
		},
		"iban": {
			Pattern:     `\b[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}\b`,
			Replacement: `__MASKED_IBAN__`,
			Description: "International bank account numbers",
		},
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey|token)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys and access tokens",
		},
	}
}

// initBuiltinPatternGroups returns predefined groups of masking patterns.
// Group order is application order. Card and IBAN rules run before the
// phone sweep so a card number is not half-eaten as a phone match.
func initBuiltinPatternGroups() map[string][]string {
	return map[string][]string{
		"pii":     {"email", "phone_number"},
		"payment": {"iban", "credit_card"},
		"all":     {"api_key", "iban", "credit_card", "email", "phone_number"},
	}
}
