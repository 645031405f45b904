// Package masking scrubs PII from model trace content before it is
// persisted. The operational tables keep the real phone numbers and
// addresses because fulfilment needs them; the trace log is for debugging
// and does not.
package masking

import (
	"log/slog"

	"github.com/vendrahq/vendra/pkg/config"
)

// Service applies the configured redaction rules to trace content.
// Created once at application startup. Thread-safe and stateless aside
// from the eagerly compiled patterns.
type Service struct {
	enabled bool
	// Built-in group patterns followed by per-deploy custom patterns,
	// applied in this order.
	patterns []*CompiledPattern
}

// NewService compiles the configured pattern group plus any per-deploy
// custom patterns. Invalid patterns are logged and skipped. A nil or
// disabled config yields a pass-through service.
func NewService(cfg *config.TraceMaskingDefaults) *Service {
	s := &Service{}
	if cfg == nil || !cfg.Enabled {
		slog.Info("Trace masking disabled")
		return s
	}

	s.enabled = true
	s.patterns = append(s.patterns, compileGroup(cfg.PatternGroup)...)
	s.patterns = append(s.patterns, compileCustom(cfg.CustomPatterns)...)

	slog.Info("Masking service initialized",
		"pattern_group", cfg.PatternGroup,
		"custom_patterns", len(cfg.CustomPatterns),
		"compiled_patterns", len(s.patterns))
	return s
}

// Mask applies every redaction rule in order and returns the result.
func (s *Service) Mask(content string) string {
	if !s.enabled || content == "" {
		return content
	}

	masked := content
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
