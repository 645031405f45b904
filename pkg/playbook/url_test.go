package playbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "blob URL converts to raw",
			input:    "https://github.com/vendra-tenants/la-taqueria/blob/main/playbook.md",
			expected: "https://raw.githubusercontent.com/vendra-tenants/la-taqueria/refs/heads/main/playbook.md",
		},
		{
			name:     "tree URL converts to raw",
			input:    "https://github.com/vendra-tenants/la-taqueria/tree/main/playbook.md",
			expected: "https://raw.githubusercontent.com/vendra-tenants/la-taqueria/refs/heads/main/playbook.md",
		},
		{
			name:     "nested path converts correctly",
			input:    "https://github.com/acme/brand/blob/develop/bots/tone/playbook.md",
			expected: "https://raw.githubusercontent.com/acme/brand/refs/heads/develop/bots/tone/playbook.md",
		},
		{
			name:     "already raw URL passes through",
			input:    "https://raw.githubusercontent.com/acme/brand/refs/heads/main/playbook.md",
			expected: "https://raw.githubusercontent.com/acme/brand/refs/heads/main/playbook.md",
		},
		{
			name:     "non-GitHub URL passes through",
			input:    "https://cdn.example.com/playbooks/tone.md",
			expected: "https://cdn.example.com/playbooks/tone.md",
		},
		{
			name:     "github.com without blob/tree passes through",
			input:    "https://github.com/acme/brand",
			expected: "https://github.com/acme/brand",
		},
		{
			name:     "www.github.com blob URL converts",
			input:    "https://www.github.com/acme/brand/blob/main/playbook.md",
			expected: "https://raw.githubusercontent.com/acme/brand/refs/heads/main/playbook.md",
		},
		{
			name:     "invalid URL passes through",
			input:    "://not-a-url",
			expected: "://not-a-url",
		},
		{
			name:     "empty string passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConvertToRawURL(tt.input))
		})
	}
}

func TestValidatePlaybookURL(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		allowedDomains []string
		wantErr        string
	}{
		{
			name: "https with empty allowlist",
			url:  "https://example.com/playbook.md",
		},
		{
			name:           "allowed domain",
			url:            "https://github.com/acme/brand/blob/main/playbook.md",
			allowedDomains: []string{"github.com", "raw.githubusercontent.com"},
		},
		{
			name:           "www prefix of allowed domain",
			url:            "https://www.github.com/acme/brand/blob/main/playbook.md",
			allowedDomains: []string{"github.com"},
		},
		{
			name:           "domain not in allowlist",
			url:            "https://evil.example.com/playbook.md",
			allowedDomains: []string{"github.com"},
			wantErr:        "not in allowed list",
		},
		{
			name:    "ftp scheme rejected",
			url:     "ftp://github.com/playbook.md",
			wantErr: "only http and https",
		},
		{
			name:    "file scheme rejected",
			url:     "file:///etc/passwd",
			wantErr: "only http and https",
		},
		{
			name:           "case-insensitive host match",
			url:            "https://GitHub.com/acme/brand/blob/main/playbook.md",
			allowedDomains: []string{"github.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePlaybookURL(tt.url, tt.allowedDomains)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
