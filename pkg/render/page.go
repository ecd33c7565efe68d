package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuhangwang/yamlreference/pkg/yeast"
)

// Options controls page assembly. Zero values select the built-in
// stylesheet and the default pane titles.
type Options struct {
	// TreeTitle heads the outline pane.
	TreeTitle string

	// TextTitle heads the reconstructed text pane.
	TextTitle string

	// Stylesheet is the verbatim CSS to inline in place of the built-in
	// style. Ignored when StylesheetLink is set.
	Stylesheet string

	// StylesheetLink, when non-empty, is emitted as a <link> reference
	// instead of inlining any style.
	StylesheetLink string
}

// Default pane titles.
const (
	DefaultTreeTitle = "Syntax Tree"
	DefaultTextTitle = "YAML Text"
)

// builtinStylesheet is the minimal style used when no stylesheet file
// is supplied.
const builtinStylesheet = `body { margin: 0; font-family: sans-serif; }
.panes { display: flex; height: 100vh; }
.pane { flex: 1; display: flex; flex-direction: column; border-left: 1px solid #ccc; }
.pane h2 { margin: 0; padding: 0.3em 0.6em; background: #eee; font-size: 1em; }
.pane .scroll { overflow: auto; flex: 1; padding: 0.6em; }
.tree .node { padding-left: 1.2em; }
.tree .leaf { padding-left: 1.2em; cursor: pointer; }
.tree .title { cursor: pointer; font-weight: bold; }
.tree .collapser { cursor: pointer; color: #888; margin-left: 0.4em; }
.tree .legend { color: #888; font-style: italic; cursor: default; }
.tree .text, .text-pane .chr { font-family: monospace; }
.text-pane .chr { cursor: pointer; }
.ph { font-family: monospace; color: #55a; }
.selected { background: #ff8; }
.collapsed > .body { display: none; }
`

// script provides expand/collapse for tree nodes and the lock-step
// highlight between panes. Tree element N and text element N are
// rendered from the same source entry; begin nodes have no text
// counterpart, so their tree side highlights alone.
const script = `function toggle(id) {
  var node = document.getElementById('tree' + id);
  if (!node) { return; }
  node.classList.toggle('collapsed');
  var c = node.querySelector('.collapser');
  if (c) { c.textContent = node.classList.contains('collapsed') ? '[+]' : '[-]'; }
}
var selected = -1;
function select(id) {
  var i, el;
  if (selected >= 0) {
    el = document.getElementById('tree' + selected);
    if (el) { el.classList.remove('selected'); }
    el = document.getElementById('text' + selected);
    if (el) { el.classList.remove('selected'); }
  }
  selected = id;
  el = document.getElementById('tree' + id);
  if (el) { el.classList.add('selected'); }
  el = document.getElementById('text' + id);
  if (el) { el.classList.add('selected'); el.scrollIntoView({block: 'nearest'}); }
}
function treeClick(id) { select(id); }
function textClick(id) {
  select(id);
  var el = document.getElementById('tree' + id);
  if (el) { el.scrollIntoView({block: 'nearest'}); }
}
`

// pageTemplate is the document skeleton. The tree and text fragments
// are produced by the two render passes and inserted as-is; everything
// else is escaped by the template engine.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"/>
<title>{{.TreeTitle}}</title>
{{if .StylesheetLink}}<link rel="stylesheet" type="text/css" href="{{.StylesheetLink}}"/>
{{else}}<style>
{{.Style}}</style>
{{end}}<script>
{{.Script}}</script>
</head>
<body>
<div class="panes">
<div class="pane tree-pane"><h2>{{.TreeTitle}}</h2><div class="scroll tree">
{{.Tree}}</div></div>
<div class="pane text-pane"><h2>{{.TextTitle}}</h2><div class="scroll">
{{.Text}}</div></div>
</div>
</body>
</html>
`))

// pageData feeds pageTemplate.
type pageData struct {
	TreeTitle      string
	TextTitle      string
	StylesheetLink string
	Style          template.CSS
	Script         template.JS
	Tree           template.HTML
	Text           template.HTML
}

// Page assembles the complete document. The whole document is parsed
// before this runs, so a failure never leaves truncated output behind.
func Page(doc *yeast.Document, opts Options) ([]byte, error) {
	r := Renderer{}

	data := pageData{
		TreeTitle:      opts.TreeTitle,
		TextTitle:      opts.TextTitle,
		StylesheetLink: opts.StylesheetLink,
		Style:          template.CSS(builtinStylesheet),
		Script:         template.JS(script),
		Tree:           template.HTML(r.Tree(doc)),
		Text:           template.HTML(r.Text(doc)),
	}
	if data.TreeTitle == "" {
		data.TreeTitle = DefaultTreeTitle
	}
	if data.TextTitle == "" {
		data.TextTitle = DefaultTextTitle
	}
	if opts.Stylesheet != "" && opts.StylesheetLink == "" {
		data.Style = template.CSS(opts.Stylesheet)
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("assemble page: %w", err)
	}

	return buf.Bytes(), nil
}
