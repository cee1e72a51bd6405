// Package identify contains one classifier per lexeme category. Each
// classifier inspects the raw input at a byte offset and reports the offset
// just past a maximal valid lexeme of its category, or the same offset when
// nothing matches. Classifiers never panic, whatever the input or offset:
// out-of-range and mid-codepoint positions are simply "no match".
package identify

import "transpiler/internal/lexemize/lexeme"

// Func is the contract shared by every classifier: given the full input and
// a byte offset, return the offset immediately after the lexeme starting
// there, or pos unchanged if no lexeme of this category starts at pos.
type Func func(raw string, pos int) int

// Entry pairs a classifier with the kind of lexeme it emits.
type Entry struct {
	Kind     lexeme.Kind
	Identify Func
}

// Table returns the classifiers in the driver's priority order. String must
// run before Identifier, because a raw string starts with the letter 'r' and
// would otherwise be swallowed as an identifier.
func Table() []Entry {
	return []Entry{
		{lexeme.CHARACTER, Character},
		{lexeme.COMMENT, Comment},
		{lexeme.STRING, String},
		{lexeme.IDENTIFIER, Identifier},
		{lexeme.NUMBER, Number},
		{lexeme.PUNCTUATION, Punctuation},
		{lexeme.WHITESPACE, Whitespace},
	}
}
