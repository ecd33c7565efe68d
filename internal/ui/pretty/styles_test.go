package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuhangwang/yamlreference/internal/ui/pretty"
)

func TestIsColorEnabled(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		expected bool
	}{
		{"always", "always", true},
		{"never", "never", false},
		{"auto with non-tty writer", "auto", false},
		{"unknown mode treated as auto", "bogus", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, testCase.expected, pretty.IsColorEnabled(testCase.mode, &buf))
		})
	}
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf))
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always overrides NO_COLOR")
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	colored := pretty.NewStyles(true)
	plain := pretty.NewStyles(false)

	assert.NotEqual(t, colored.Error.Render("x"), "")
	assert.Equal(t, "x", plain.Error.Render("x"))
}
