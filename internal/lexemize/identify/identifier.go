package identify

import (
	"unicode"

	"transpiler/internal/source"
)

// Identifier identifies an identifier, like String or foo_bar. The letter
// tests use the Unicode character classes, not just ASCII, so identifiers
// like café are matched whole. A lone underscore is not an identifier — it
// is reserved for pattern binding — but an underscore followed by further
// identifier characters is.
func Identifier(raw string, pos int) int {
	first, size := source.CharAt(raw, pos)
	if size == 0 {
		return pos
	}
	if first != '_' && !unicode.IsLetter(first) {
		return pos
	}
	i := pos + size
	for i < len(raw) {
		c, sz := source.CharAt(raw, i)
		if sz == 0 {
			break
		}
		if c != '_' && !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			break
		}
		i += sz
	}
	if first == '_' && i == pos+1 {
		return pos
	}
	return i
}
