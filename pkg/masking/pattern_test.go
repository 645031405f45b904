package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/pkg/config"
)

func TestCompileGroup(t *testing.T) {
	builtin := config.GetBuiltinConfig()

	for groupName, names := range builtin.PatternGroups {
		t.Run(groupName, func(t *testing.T) {
			compiled := compileGroup(groupName)
			require.Len(t, compiled, len(names), "every pattern in the group should compile")

			// Application order follows group order.
			for i, cp := range compiled {
				assert.Equal(t, names[i], cp.Name)
				assert.NotNil(t, cp.Regex)
				assert.NotEmpty(t, cp.Replacement)
			}
		})
	}
}

func TestCompileGroup_Unknown(t *testing.T) {
	assert.Empty(t, compileGroup("no-such-group"))
}

func TestCompileCustom(t *testing.T) {
	compiled := compileCustom([]config.MaskingPattern{
		{Pattern: `SECRET_[A-Za-z0-9]+`, Replacement: "__MASKED__"},
		{Pattern: `[invalid`, Replacement: "__MASKED__"},
		{Pattern: `ref-[0-9]{4}`, Replacement: "__MASKED_REF__"},
	})

	// The invalid regex is skipped, the rest compile in order.
	require.Len(t, compiled, 2)
	assert.Equal(t, "custom:0", compiled[0].Name)
	assert.Equal(t, "custom:2", compiled[1].Name)
	assert.Equal(t, "__MASKED_REF__", compiled[1].Replacement)
}

func TestCompileCustom_Empty(t *testing.T) {
	assert.Empty(t, compileCustom(nil))
}
