package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vendrahq/vendra/pkg/config"
)

func newTestService(group string, custom ...config.MaskingPattern) *Service {
	return NewService(&config.TraceMaskingDefaults{
		Enabled:        true,
		PatternGroup:   group,
		CustomPatterns: custom,
	})
}

func TestService_MasksPII(t *testing.T) {
	svc := newTestService("pii")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "international phone",
			input:    "my number is +5215512345678 thanks",
			expected: "my number is __MASKED_PHONE__ thanks",
		},
		{
			name:     "phone with separators",
			input:    "call 55-1234-5678 after six",
			expected: "call __MASKED_PHONE__ after six",
		},
		{
			name:     "email",
			input:    "send the receipt to maria.lopez@example.com please",
			expected: "send the receipt to __MASKED_EMAIL__ please",
		},
		{
			name:     "email and phone together",
			input:    "reach me at ana@tienda.mx or +52 55 1234 5678",
			expected: "reach me at __MASKED_EMAIL__ or __MASKED_PHONE__",
		},
		{
			name:     "no PII left untouched",
			input:    "two tacos al pastor and a large horchata",
			expected: "two tacos al pastor and a large horchata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Mask(tt.input))
		})
	}
}

func TestService_AllGroupMasksCards(t *testing.T) {
	svc := newTestService("all")

	// The card rule runs before the phone sweep, so the number is masked
	// whole instead of being half-eaten as a phone match.
	masked := svc.Mask("paying with 4111 1111 1111 1111 if that works")
	assert.Contains(t, masked, "__MASKED_CARD__")
	assert.NotContains(t, masked, "4111")
	assert.NotContains(t, masked, "__MASKED_PHONE__")
}

func TestService_CustomPatterns(t *testing.T) {
	svc := newTestService("pii", config.MaskingPattern{
		Pattern:     `VND-[0-9]{6}`,
		Replacement: "__MASKED_ORDER_REF__",
	})

	masked := svc.Mask("your reference is VND-204881, keep it handy")
	assert.Equal(t, "your reference is __MASKED_ORDER_REF__, keep it handy", masked)

	// Built-in group still applies alongside the custom rule.
	masked = svc.Mask("VND-204881 for maria@example.com")
	assert.Equal(t, "__MASKED_ORDER_REF__ for __MASKED_EMAIL__", masked)
}

func TestService_Disabled(t *testing.T) {
	content := "call me at +5215512345678"

	svc := NewService(&config.TraceMaskingDefaults{Enabled: false, PatternGroup: "pii"})
	assert.Equal(t, content, svc.Mask(content), "disabled service must pass content through")

	svc = NewService(nil)
	assert.Equal(t, content, svc.Mask(content), "nil config must pass content through")
}

func TestService_EmptyContent(t *testing.T) {
	svc := newTestService("pii")
	assert.Equal(t, "", svc.Mask(""))
}

func TestService_UnknownGroupStillAppliesCustom(t *testing.T) {
	svc := newTestService("no-such-group", config.MaskingPattern{
		Pattern:     `tkn_[a-z0-9]+`,
		Replacement: "__MASKED__",
	})

	assert.Equal(t, "key __MASKED__ ok", svc.Mask("key tkn_abc123 ok"))
}

func TestService_MasksJSONTraceContent(t *testing.T) {
	svc := newTestService("pii")

	// Trace content is serialized JSON; masking operates on the raw string.
	input := `{"role":"user","content":"deliver to +5215512345678, ring twice"}`
	masked := svc.Mask(input)
	assert.Contains(t, masked, "__MASKED_PHONE__")
	assert.Contains(t, masked, "ring twice")
	assert.NotContains(t, masked, "5512345678")
}
