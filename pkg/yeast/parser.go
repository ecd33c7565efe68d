package yeast

import (
	"bufio"
	"fmt"
	"io"
)

// Entry is one element of the parsed document: the record's descriptor
// plus its normalized text. Entries are never mutated after creation.
type Entry struct {
	// Desc identifies what the record is.
	Desc TokenDescriptor

	// Text is the normalized token text.
	Text string

	// Line is the 1-based input line the entry came from.
	// Zero for synthetic entries inserted by the interpreter.
	Line int

	// ID is the correlation identifier shared by the tree node and the
	// text span rendered from this entry, assigned in document order
	// starting at 1. End entries close constructs opened earlier and
	// render nothing of their own, so they carry ID zero.
	ID int
}

// IsSynthetic reports whether the entry was inserted by the interpreter
// rather than read from input.
func (e Entry) IsSynthetic() bool {
	return e.Line == 0
}

// Document is the parsed form of a YEAST stream: an ordered sequence of
// entries, produced once by Parse and read-only thereafter. Begin
// scopes left open at end of input are tolerated; renderers treat them
// as implicitly closed at the end of the document.
type Document struct {
	Entries []Entry
}

// openScope is one element of the nesting stack.
type openScope struct {
	line int
	desc TokenDescriptor
}

// parser carries all interpreter state: the nesting stack, the parallel
// per-scope content flags, and the id counter. It lives only for the
// duration of one Parse call.
type parser struct {
	entries []Entry
	scopes  []openScope
	content []bool
	nextID  int
}

// Parse consumes a whole YEAST stream and returns its document.
// The input is read to completion before the document is returned;
// any malformed record aborts with no partial result.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{nextID: 1}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if err := p.record(line, scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return &Document{Entries: p.entries}, nil
}

// record interprets a single input line.
func (p *parser) record(line int, raw string) error {
	if len(raw) == 0 {
		return &FormatError{Line: line, Reason: "not a byte-code line"}
	}

	code := raw[0]
	if code == '#' {
		return nil
	}

	desc, ok := Lookup(code)
	if !ok {
		return &FormatError{Line: line, Code: code, Reason: "unknown byte code"}
	}

	text := raw[1:]
	if desc.Kind == KindBOM {
		// The code character doubles as content for byte order marks.
		text = raw
	} else {
		text = Normalize(text)
	}

	switch desc.Kind {
	case KindBegin:
		p.scopes = append(p.scopes, openScope{line: line, desc: desc})
		p.content = append(p.content, false)

		// A begin marker renders no text of its own; trailing text on
		// the record becomes a separate content entry inside the scope.
		p.push(desc, "", line)
		if text != "" {
			p.push(codeTable['T'], text, line)
			p.markContent()
		}
		return nil

	case KindEnd:
		if err := p.closeScope(line, desc); err != nil {
			return err
		}
	}

	p.push(desc, text, line)

	if text != "" {
		p.markContent()
	}

	return nil
}

// closeScope handles an end record: it guarantees an empty scope still
// renders one visible child, counts the closed scope as content for its
// parent, and verifies the end matches the innermost open begin.
func (p *parser) closeScope(line int, desc TokenDescriptor) error {
	if len(p.scopes) == 0 {
		return &StructureError{EndLine: line, EndCode: desc.Code, EndTitle: desc.Title}
	}

	top := len(p.content) - 1
	hadContent := p.content[top]
	p.content = p.content[:top]
	if !hadContent {
		p.push(Empty, PlaceholderEmpty, 0)
	}
	p.markContent()

	open := p.scopes[len(p.scopes)-1]
	p.scopes = p.scopes[:len(p.scopes)-1]
	if open.desc.Title != desc.Title {
		return &StructureError{
			EndLine:   line,
			EndCode:   desc.Code,
			EndTitle:  desc.Title,
			OpenLine:  open.line,
			OpenCode:  open.desc.Code,
			OpenTitle: open.desc.Title,
		}
	}

	return nil
}

// push appends an entry, assigning the shared correlation id to every
// entry that renders something of its own.
func (p *parser) push(desc TokenDescriptor, text string, line int) {
	id := 0
	if desc.Kind != KindEnd {
		id = p.nextID
		p.nextID++
	}
	p.entries = append(p.entries, Entry{Desc: desc, Text: text, Line: line, ID: id})
}

// markContent flags every currently open scope as content-bearing.
func (p *parser) markContent() {
	for i := range p.content {
		p.content[i] = true
	}
}
