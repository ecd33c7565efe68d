// Package yeast interprets YEAST token streams: line-oriented records
// produced by the YAML reference tokenizer, each a one-character code
// followed by the token's escaped text.
package yeast

// Kind classifies what a token code stands for.
type Kind uint8

// Token kinds. Begin and End tokens bracket nested constructs; every
// other kind is flat content.
const (
	KindBOM Kind = iota
	KindText
	KindBegin
	KindEnd
	KindError
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBOM:
		return "bom"
	case KindText:
		return "text"
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// TokenDescriptor describes one code of the YEAST alphabet. Descriptors
// are immutable; the table below is the only source of them.
type TokenDescriptor struct {
	// Code is the single-character key as it appears at the start of a record.
	Code byte

	// Kind classifies the token.
	Kind Kind

	// Title is the human-readable label shown in rendered output.
	// A Begin descriptor and its matching End descriptor share the same Title.
	Title string
}

// Empty is the descriptor used for synthetic content markers inserted
// into otherwise empty begin/end scopes. It is deliberately not keyed
// in the code table: no input line can produce it.
var Empty = TokenDescriptor{Code: 0, Kind: KindText, Title: "Empty"}

// codeTable maps every defined code to its descriptor. The mapping is
// total over defined codes and injective; each begin code has exactly
// one end counterpart sharing its title.
//
//nolint:gochecknoglobals // Read-only lookup table.
var codeTable = map[byte]TokenDescriptor{
	'U': {Code: 'U', Kind: KindBOM, Title: "Byte Order Mark"},

	'T': {Code: 'T', Kind: KindText, Title: "Text"},
	't': {Code: 't', Kind: KindText, Title: "Meta"},
	'b': {Code: 'b', Kind: KindText, Title: "Break"},
	'L': {Code: 'L', Kind: KindText, Title: "Line Feed"},
	'l': {Code: 'l', Kind: KindText, Title: "Line Fold"},
	'I': {Code: 'I', Kind: KindText, Title: "Indicator"},
	'w': {Code: 'w', Kind: KindText, Title: "White"},
	'i': {Code: 'i', Kind: KindText, Title: "Indent"},
	'K': {Code: 'K', Kind: KindText, Title: "Directives End"},
	'k': {Code: 'k', Kind: KindText, Title: "Document End"},
	'-': {Code: '-', Kind: KindText, Title: "Unparsed"},
	'$': {Code: '$', Kind: KindText, Title: "Detected"},

	'E': {Code: 'E', Kind: KindBegin, Title: "Escape"},
	'e': {Code: 'e', Kind: KindEnd, Title: "Escape"},
	'C': {Code: 'C', Kind: KindBegin, Title: "Comment"},
	'c': {Code: 'c', Kind: KindEnd, Title: "Comment"},
	'D': {Code: 'D', Kind: KindBegin, Title: "Directive"},
	'd': {Code: 'd', Kind: KindEnd, Title: "Directive"},
	'G': {Code: 'G', Kind: KindBegin, Title: "Tag"},
	'g': {Code: 'g', Kind: KindEnd, Title: "Tag"},
	'H': {Code: 'H', Kind: KindBegin, Title: "Handle"},
	'h': {Code: 'h', Kind: KindEnd, Title: "Handle"},
	'A': {Code: 'A', Kind: KindBegin, Title: "Anchor"},
	'a': {Code: 'a', Kind: KindEnd, Title: "Anchor"},
	'P': {Code: 'P', Kind: KindBegin, Title: "Properties"},
	'p': {Code: 'p', Kind: KindEnd, Title: "Properties"},
	'R': {Code: 'R', Kind: KindBegin, Title: "Alias"},
	'r': {Code: 'r', Kind: KindEnd, Title: "Alias"},
	'S': {Code: 'S', Kind: KindBegin, Title: "Scalar"},
	's': {Code: 's', Kind: KindEnd, Title: "Scalar"},
	'Q': {Code: 'Q', Kind: KindBegin, Title: "Sequence"},
	'q': {Code: 'q', Kind: KindEnd, Title: "Sequence"},
	'M': {Code: 'M', Kind: KindBegin, Title: "Mapping"},
	'm': {Code: 'm', Kind: KindEnd, Title: "Mapping"},
	'N': {Code: 'N', Kind: KindBegin, Title: "Node"},
	'n': {Code: 'n', Kind: KindEnd, Title: "Node"},
	'X': {Code: 'X', Kind: KindBegin, Title: "Pair"},
	'x': {Code: 'x', Kind: KindEnd, Title: "Pair"},
	'O': {Code: 'O', Kind: KindBegin, Title: "Document"},
	'o': {Code: 'o', Kind: KindEnd, Title: "Document"},

	'!': {Code: '!', Kind: KindError, Title: "Error"},
}

// Lookup resolves a code character to its descriptor.
// The second return value is false for codes outside the YEAST alphabet.
func Lookup(code byte) (TokenDescriptor, bool) {
	desc, ok := codeTable[code]
	return desc, ok
}

// Codes returns every defined code character. The order is unspecified.
func Codes() []byte {
	codes := make([]byte, 0, len(codeTable))
	for c := range codeTable {
		codes = append(codes, c)
	}
	return codes
}
