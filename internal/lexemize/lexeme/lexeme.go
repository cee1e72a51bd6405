// Package lexeme defines the data model produced by the lexemizer: the
// closed set of lexeme kinds, the Lexeme span record, and the Result that
// collects one scan's worth of lexemes.
package lexeme

import (
	"fmt"
	"strings"
)

// Kind is the category of a Lexeme. No other kind is ever produced.
type Kind int

const (
	CHARACTER Kind = iota
	COMMENT
	IDENTIFIER
	NUMBER
	PUNCTUATION
	STRING
	WHITESPACE
	UNRECOGNIZED
)

func (k Kind) String() string {
	switch k {
	case CHARACTER:
		return "Character"
	case COMMENT:
		return "Comment"
	case IDENTIFIER:
		return "Identifier"
	case NUMBER:
		return "Number"
	case PUNCTUATION:
		return "Punctuation"
	case STRING:
		return "String"
	case WHITESPACE:
		return "Whitespace"
	case UNRECOGNIZED:
		return "Unrecognized"
	default:
		return "Unknown"
	}
}

// Lexeme is one classified, contiguous span of the input. It is immutable
// once emitted: Snippet is a copy of input[Pos : Pos+len(Snippet)], so it
// stays valid after the input buffer is gone.
type Lexeme struct {
	// Kind is the category of the lexeme.
	Kind Kind
	// Pos is the byte offset where the lexeme starts. Zero indexed.
	Pos int
	// LineNumber is the line containing the lexeme's start. Zero indexed.
	LineNumber int
	// Column is the byte offset from the start of that line. Zero indexed.
	Column int
	// Snippet is the exact source text of the lexeme.
	Snippet string
}

// String renders the lexeme for debugging: the kind padded to 16 characters,
// the start position right-aligned to 4, then the snippet with newlines
// shown as "<NL>".
func (l Lexeme) String() string {
	snippet := strings.ReplaceAll(l.Snippet, "\n", "<NL>")
	return fmt.Sprintf("%-16s %4d  %s", l.Kind, l.Pos, snippet)
}

// Result is the ordered outcome of lexemizing one input. The lexemes are
// contiguous and non-overlapping, and concatenating their snippets in order
// reconstructs the input exactly.
type Result struct {
	// Lexemes in input order.
	Lexemes []Lexeme
	// EndPos is the input's byte length.
	EndPos int
	// EndLineNumber is the line containing the end of input. Zero indexed.
	EndLineNumber int
	// EndColumn is the column at the end of input. Zero indexed.
	EndColumn int
}

// String renders the whole result: a count header, one line per lexeme, and
// an end-of-input trailer.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lexemes found: %d\n", len(r.Lexemes))
	for _, l := range r.Lexemes {
		b.WriteString(l.String())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "EndOfInput       %4d  <EOI>", r.EndPos)
	return b.String()
}
