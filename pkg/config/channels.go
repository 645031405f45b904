package config

// ChannelConfig holds webhook settings for the messaging channels.
type ChannelConfig struct {
	// VerifyTokens maps a platform name (whatsapp, messenger, telegram) to
	// the deployment-wide webhook verify token accepted during Meta-style
	// GET verification when no tenant integration carries its own
	// verify_token.
	VerifyTokens map[string]string `yaml:"verify_tokens,omitempty"`
}

// VerifyToken returns the default verify token for a platform, or the empty
// string when none is configured.
func (c *ChannelConfig) VerifyToken(platform string) string {
	if c == nil {
		return ""
	}
	return c.VerifyTokens[platform]
}
