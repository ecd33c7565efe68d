package yeast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"plain", "foo", "foo"},
		{"carriage return escape", `\r`, "⏎"},
		{"line feed escape", `\n`, "↓"},
		{"next line escape", `\N`, "⇓"},
		{"line separator escape", `\L`, "§"},
		{"paragraph separator escape", `\P`, "¶"},
		{"tab escape", `\t`, "→"},
		{"literal tab", "\t", "→"},
		{"literal space", "a b", "a·b"},
		{"narrow no-break escape", `\x{202F}`, "◆"},
		{"literal narrow no-break", " ", "◆"},
		{"every occurrence", "a b c", "a·b·c"},
		{"mixed", "key: value\t", "key:·value→"},
		{"crlf pair", `\r\n`, "⏎↓"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, yeast.Normalize(testCase.input))
		})
	}
}

// A placeholder produced by an earlier substitution must never be
// re-substituted by a later one.
func TestNormalize_NoResubstitution(t *testing.T) {
	t.Parallel()

	// Placeholders contain no ASCII the literal sequences could match,
	// so normalizing already-normalized text changes nothing.
	once := yeast.Normalize(`\n \t`)
	assert.Equal(t, "↓·→", once)
	assert.Equal(t, once, yeast.Normalize(once))
}

// Substitution is invertible per category: normalizing and then
// denormalizing text written in escape form reproduces it exactly.
func TestNormalize_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		`\r\n`,
		`a b\tc`,
		`:\n  - entry\n`,
		`\N\L\P`,
		`\x{202F}padded`,
	}

	for _, input := range inputs {
		assert.Equal(t, input, yeast.Denormalize(yeast.Normalize(input)), "input %q", input)
	}
}
