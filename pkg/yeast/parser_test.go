package yeast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

func parse(t *testing.T, lines ...string) *yeast.Document {
	t.Helper()

	doc, err := yeast.Parse(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	return doc
}

func TestParse_ScalarWithContent(t *testing.T) {
	t.Parallel()

	doc := parse(t, "Sfoo", "s")

	require.Len(t, doc.Entries, 3)

	begin, content, end := doc.Entries[0], doc.Entries[1], doc.Entries[2]

	assert.Equal(t, yeast.KindBegin, begin.Desc.Kind)
	assert.Equal(t, "Scalar", begin.Desc.Title)
	assert.Empty(t, begin.Text)

	assert.Equal(t, yeast.KindText, content.Desc.Kind)
	assert.Equal(t, "foo", content.Text)

	assert.Equal(t, yeast.KindEnd, end.Desc.Kind)
	assert.Equal(t, "Scalar", end.Desc.Title)
	assert.Empty(t, end.Text)

	// No synthetic empty marker: the scope saw content.
	for _, entry := range doc.Entries {
		assert.NotEqual(t, "Empty", entry.Desc.Title)
	}
}

func TestParse_EmptyMapping(t *testing.T) {
	t.Parallel()

	doc := parse(t, "M", "m")

	require.Len(t, doc.Entries, 3)

	marker := doc.Entries[1]
	assert.Equal(t, "Empty", marker.Desc.Title)
	assert.Equal(t, "°", marker.Text)
	assert.True(t, marker.IsSynthetic())

	// The marker sits immediately before the closing entry.
	assert.Equal(t, yeast.KindEnd, doc.Entries[2].Desc.Kind)
}

func TestParse_NestedScopeCountsAsContent(t *testing.T) {
	t.Parallel()

	// The inner mapping is empty and gets a marker; the outer sequence
	// saw the inner scope close, so it does not.
	doc := parse(t, "Q", "M", "m", "q")

	var markers int
	for _, entry := range doc.Entries {
		if entry.Desc.Title == "Empty" {
			markers++
		}
	}
	assert.Equal(t, 1, markers)
}

func TestParse_SharedCorrelationIDs(t *testing.T) {
	t.Parallel()

	doc := parse(t, "Sfoo", "s", "M", "m")

	next := 1
	for _, entry := range doc.Entries {
		if entry.Desc.Kind == yeast.KindEnd {
			assert.Zero(t, entry.ID, "end entries carry no id")
			continue
		}
		assert.Equal(t, next, entry.ID, "ids are dense and in document order")
		next++
	}
}

func TestParse_CommentOnly(t *testing.T) {
	t.Parallel()

	doc := parse(t, "# just a comment")
	assert.Empty(t, doc.Entries)
}

func TestParse_CommentHasNoStackEffect(t *testing.T) {
	t.Parallel()

	doc := parse(t, "S", "# note", "s")
	require.Len(t, doc.Entries, 3)
	assert.Equal(t, "Empty", doc.Entries[1].Desc.Title)
}

func TestParse_BOMKeepsCodeCharacter(t *testing.T) {
	t.Parallel()

	doc := parse(t, "U+FEFF")

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, yeast.KindBOM, doc.Entries[0].Desc.Kind)
	assert.Equal(t, "U+FEFF", doc.Entries[0].Text)
}

func TestParse_NormalizesText(t *testing.T) {
	t.Parallel()

	doc := parse(t, `Tfoo bar\n`)

	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "foo·bar↓", doc.Entries[0].Text)
}

func TestParse_UnterminatedScopesTolerated(t *testing.T) {
	t.Parallel()

	doc := parse(t, "O", "M", "Sfoo")
	assert.Len(t, doc.Entries, 4)
}

func TestParse_MismatchedNesting(t *testing.T) {
	t.Parallel()

	_, err := yeast.Parse(strings.NewReader("S\nq"))

	var structErr *yeast.StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, 2, structErr.EndLine)
	assert.Equal(t, byte('q'), structErr.EndCode)
	assert.Equal(t, "Sequence", structErr.EndTitle)
	assert.Equal(t, 1, structErr.OpenLine)
	assert.Equal(t, byte('S'), structErr.OpenCode)
	assert.Equal(t, "Scalar", structErr.OpenTitle)

	assert.Contains(t, err.Error(), "Scalar")
	assert.Contains(t, err.Error(), "Sequence")
}

func TestParse_StrayEnd(t *testing.T) {
	t.Parallel()

	_, err := yeast.Parse(strings.NewReader("s"))

	var structErr *yeast.StructureError
	require.ErrorAs(t, err, &structErr)
	assert.Equal(t, 1, structErr.EndLine)
	assert.Zero(t, structErr.OpenLine)
}

func TestParse_UnknownCode(t *testing.T) {
	t.Parallel()

	_, err := yeast.Parse(strings.NewReader("S\ns\nZoops"))

	var formatErr *yeast.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 3, formatErr.Line)
	assert.Equal(t, byte('Z'), formatErr.Code)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), `"Z"`)
}

func TestParse_EmptyLine(t *testing.T) {
	t.Parallel()

	_, err := yeast.Parse(strings.NewReader("S\n\ns"))

	var formatErr *yeast.FormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 2, formatErr.Line)
}

// Concatenating the decoded text of all non-end, non-synthetic entries
// reproduces the original record texts.
func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	lines := []string{"O", "M", `Skey`, "s", `Sa value\n`, "s", "m", "o"}
	doc := parse(t, lines...)

	var decoded strings.Builder
	for _, entry := range doc.Entries {
		if entry.Desc.Kind == yeast.KindEnd || entry.IsSynthetic() {
			continue
		}
		decoded.WriteString(yeast.Denormalize(entry.Text))
	}

	var original strings.Builder
	for _, line := range lines {
		original.WriteString(line[1:])
	}

	assert.Equal(t, original.String(), decoded.String())
}
