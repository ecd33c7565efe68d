package yeast

import "strings"

// Placeholder symbols substituted into token text so that invisible
// characters stay visible in rendered output. Each category has a
// distinct symbol, which keeps the substitution invertible.
const (
	PlaceholderCarriageReturn     = "⏎"
	PlaceholderLineFeed           = "↓"
	PlaceholderNextLine           = "⇓"
	PlaceholderLineSeparator      = "§"
	PlaceholderParagraphSeparator = "¶"
	PlaceholderTab                = "→"
	PlaceholderSpace              = "·"
	PlaceholderNarrowNoBreak      = "◆"

	// PlaceholderEmpty is the text carried by synthetic content markers.
	PlaceholderEmpty = "°"

	// PlaceholderBOM is what the text pane shows in place of a byte order mark.
	PlaceholderBOM = "⇔"
)

// substitution is one literal-sequence-to-placeholder rule.
type substitution struct {
	literal     string
	placeholder string
}

// substitutions lists the rules in priority order. Each rule is applied
// globally before the next; placeholders contain no ASCII the literals
// could match, so earlier output is never re-substituted.
//
//nolint:gochecknoglobals // Read-only lookup table.
var substitutions = []substitution{
	{`\r`, PlaceholderCarriageReturn},
	{`\n`, PlaceholderLineFeed},
	{`\N`, PlaceholderNextLine},
	{`\L`, PlaceholderLineSeparator},
	{`\P`, PlaceholderParagraphSeparator},
	{`\t`, PlaceholderTab},
	{"\t", PlaceholderTab},
	{`\x{202F}`, PlaceholderNarrowNoBreak},
	{" ", PlaceholderNarrowNoBreak},
	{" ", PlaceholderSpace},
}

// Normalize rewrites escaped and literal whitespace sequences in token
// text into their visual placeholders. It is applied to every record
// except byte-order-mark records, whose text is kept verbatim.
func Normalize(text string) string {
	for _, sub := range substitutions {
		text = strings.ReplaceAll(text, sub.literal, sub.placeholder)
	}
	return text
}

// Denormalize maps placeholders back to the literal sequence each
// category's escape form uses. Literal-character inputs that share a
// placeholder with an escape (tab, narrow no-break space) denormalize
// to the escape form; within one category the mapping is lossless.
func Denormalize(text string) string {
	// Reverse order is not required for correctness, only a fixed one.
	for _, sub := range reverseSubstitutions {
		text = strings.ReplaceAll(text, sub.placeholder, sub.literal)
	}
	return text
}

//nolint:gochecknoglobals // Read-only lookup table.
var reverseSubstitutions = []substitution{
	{`\r`, PlaceholderCarriageReturn},
	{`\n`, PlaceholderLineFeed},
	{`\N`, PlaceholderNextLine},
	{`\L`, PlaceholderLineSeparator},
	{`\P`, PlaceholderParagraphSeparator},
	{`\t`, PlaceholderTab},
	{`\x{202F}`, PlaceholderNarrowNoBreak},
	{" ", PlaceholderSpace},
}
