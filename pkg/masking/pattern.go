package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/vendrahq/vendra/pkg/config"
)

// CompiledPattern is a redaction rule ready to apply.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// compileGroup compiles the named built-in pattern group. Group order is
// application order. Invalid patterns are logged and skipped.
func compileGroup(groupName string) []*CompiledPattern {
	builtin := config.GetBuiltinConfig()
	names, ok := builtin.PatternGroups[groupName]
	if !ok {
		slog.Error("Unknown masking pattern group, no built-in patterns applied",
			"group", groupName)
		return nil
	}

	compiled := make([]*CompiledPattern, 0, len(names))
	for _, name := range names {
		pattern, ok := builtin.MaskingPatterns[name]
		if !ok {
			slog.Error("Pattern group references unknown pattern, skipping",
				"group", groupName, "pattern", name)
			continue
		}
		cp, err := compilePattern(name, pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, cp)
	}
	return compiled
}

// compileCustom compiles per-deploy patterns from the YAML config.
// Patterns are keyed as "custom:{index}".
func compileCustom(patterns []config.MaskingPattern) []*CompiledPattern {
	compiled := make([]*CompiledPattern, 0, len(patterns))
	for i, pattern := range patterns {
		name := fmt.Sprintf("custom:%d", i)
		cp, err := compilePattern(name, pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		compiled = append(compiled, cp)
	}
	return compiled
}

func compilePattern(name string, pattern config.MaskingPattern) (*CompiledPattern, error) {
	regex, err := regexp.Compile(pattern.Pattern)
	if err != nil {
		return nil, err
	}
	return &CompiledPattern{
		Name:        name,
		Regex:       regex,
		Replacement: pattern.Replacement,
	}, nil
}
