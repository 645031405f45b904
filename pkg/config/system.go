package config

import "time"

// PlaybookConfig holds resolved conversation playbook settings.
// Playbooks are per-tenant markdown documents fetched over HTTP and injected
// into the system prompt.
type PlaybookConfig struct {
	CacheTTL       time.Duration // Cache duration (default: 5m)
	AllowedDomains []string      // Allowed URL domains (default: ["github.com", "raw.githubusercontent.com"])
}

// AuthConfig holds resolved dashboard/admin API authentication settings.
type AuthConfig struct {
	JWTSecretEnv string        // Env var name containing the HS256 signing secret (default: "AUTH_JWT_SECRET")
	TokenTTL     time.Duration // Issued token lifetime (default: 24h)
}
