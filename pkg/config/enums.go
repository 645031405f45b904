package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeGoogle is Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI,
		LLMProviderTypeAnthropic,
		LLMProviderTypeGoogle:
		return true
	default:
		return false
	}
}

// Platform defines the messaging channels an inbound message can arrive on.
type Platform string

const (
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformTelegram  Platform = "telegram"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
)

// IsValid checks if the platform is valid
func (p Platform) IsValid() bool {
	switch p {
	case PlatformWhatsApp, PlatformTelegram, PlatformInstagram, PlatformFacebook:
		return true
	default:
		return false
	}
}

// AllPlatforms returns every supported messaging platform.
func AllPlatforms() []Platform {
	return []Platform{PlatformWhatsApp, PlatformTelegram, PlatformInstagram, PlatformFacebook}
}
