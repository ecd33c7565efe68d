// Package render turns a parsed YEAST document into a self-contained
// HTML page: a collapsible syntax tree pane and a reconstructed text
// pane, cross-linked so selecting an element in one highlights its
// counterpart in the other.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

// LegendID is the correlation id reserved for the synthetic legend node
// that heads the tree pane. Entry ids start at 1, so it never collides.
const LegendID = 0

// legendHTML is the fixed content of the legend node. It is not derived
// from the document.
const legendHTML = `Legend: ` +
	`<span class="ph">·</span> space ` +
	`<span class="ph">→</span> tab ` +
	`<span class="ph">↓</span> line feed ` +
	`<span class="ph">⏎</span> carriage return ` +
	`<span class="ph">°</span> empty ` +
	`<span class="ph">⇔</span> byte order mark`

// Renderer walks a document twice, once per pane. It is stateless
// between calls; rendering the same document twice yields identical
// output.
type Renderer struct{}

// Tree renders the collapsible outline pane.
//
// Begin entries open a nested node labeled with their title, end
// entries close the innermost open node, and every other entry becomes
// a leaf. Each node and leaf carries the entry's correlation id; end
// entries render nothing of their own. Scopes still open at the end of
// the document are closed implicitly.
func (Renderer) Tree(doc *yeast.Document) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<div class=\"leaf legend\" id=\"tree%d\">%s</div>\n", LegendID, legendHTML)

	depth := 0
	for _, entry := range doc.Entries {
		switch entry.Desc.Kind {
		case yeast.KindBegin:
			fmt.Fprintf(&b, "<div class=\"node\" id=\"tree%d\"><span class=\"title\" onclick=\"treeClick(%d)\">%s</span><span class=\"collapser\" onclick=\"toggle(%d)\">[-]</span><div class=\"body\">\n",
				entry.ID, entry.ID, html.EscapeString(entry.Desc.Title), entry.ID)
			depth++

		case yeast.KindEnd:
			if depth > 0 {
				b.WriteString("</div></div>\n")
				depth--
			}

		default:
			b.WriteString(treeLeaf(entry))
		}
	}

	// Unterminated scopes are tolerated; close them at end of output.
	for ; depth > 0; depth-- {
		b.WriteString("</div></div>\n")
	}

	return b.String()
}

// treeLeaf renders one non-nesting entry. Byte order marks show their
// decoded text in parentheses after the label; other leaves show the
// label followed by the entry text.
func treeLeaf(entry yeast.Entry) string {
	label := html.EscapeString(entry.Desc.Title)
	if entry.Desc.Kind == yeast.KindBOM {
		return fmt.Sprintf("<div class=\"leaf\" id=\"tree%d\" onclick=\"treeClick(%d)\"><span class=\"kind\">%s (%s)</span></div>\n",
			entry.ID, entry.ID, label, html.EscapeString(entry.Text))
	}
	if entry.Text == "" {
		return fmt.Sprintf("<div class=\"leaf\" id=\"tree%d\" onclick=\"treeClick(%d)\"><span class=\"kind\">%s</span></div>\n",
			entry.ID, entry.ID, label)
	}
	return fmt.Sprintf("<div class=\"leaf\" id=\"tree%d\" onclick=\"treeClick(%d)\"><span class=\"kind\">%s</span> <span class=\"text\">%s</span></div>\n",
		entry.ID, entry.ID, label, html.EscapeString(entry.Text))
}

// Text renders the linear reconstruction pane.
//
// Begin entries open an enclosing span with no text of their own and no
// click target; their matching end closes it. Every other entry becomes
// a clickable span carrying the same correlation id as its tree
// counterpart. A line break is emitted before the span that follows a
// carriage-return or line-feed placeholder, one break per placeholder.
func (Renderer) Text(doc *yeast.Document) string {
	var b strings.Builder

	depth := 0
	pendingBreak := false
	for _, entry := range doc.Entries {
		switch entry.Desc.Kind {
		case yeast.KindBegin:
			fmt.Fprintf(&b, "<span class=\"scope %s\">", titleClass(entry.Desc.Title))
			depth++

		case yeast.KindEnd:
			if depth > 0 {
				b.WriteString("</span>")
				depth--
			}

		default:
			if pendingBreak {
				b.WriteString("<br/>\n")
				pendingBreak = false
			}

			text := entry.Text
			if entry.Desc.Kind == yeast.KindBOM {
				text = yeast.PlaceholderBOM
			}
			fmt.Fprintf(&b, "<span class=\"chr\" id=\"text%d\" onclick=\"textClick(%d)\">%s</span>",
				entry.ID, entry.ID, html.EscapeString(text))

			if text == yeast.PlaceholderCarriageReturn || text == yeast.PlaceholderLineFeed {
				pendingBreak = true
			}
		}
	}

	for ; depth > 0; depth-- {
		b.WriteString("</span>")
	}
	b.WriteString("\n")

	return b.String()
}

// titleClass turns a descriptor title into a CSS class name.
func titleClass(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}
