package identify

import "transpiler/internal/source"

// punctuationTable lists every fixed operator and punctuation token, longest
// first, so that "<<=" wins over "<<" which wins over "<". A lone quote is
// included so that lifetimes like 'static degrade to punctuation plus an
// identifier rather than an unrecognized run.
var punctuationTable = []string{
	"..=", "...", "<<=", ">>=",

	"!=", "%=", "&&", "&=", "*=", "+=", "-=", "->", "..", "/=",
	"::", "<<", "<=", "==", "=>", ">=", ">>", "^=", "|=", "||",

	"!", "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", "-",
	".", "/", ":", ";", "<", "=", ">", "?", "@", "[", "]", "^",
	"{", "|", "}", "~",
}

// Punctuation identifies the longest fixed token starting at pos, from the
// table of one-to-three character sequences.
func Punctuation(raw string, pos int) int {
	if _, ok := source.ASCIIAt(raw, pos); !ok {
		return pos
	}
	for _, p := range punctuationTable {
		if source.HasPrefixAt(raw, pos, p) {
			return pos + len(p)
		}
	}
	return pos
}
