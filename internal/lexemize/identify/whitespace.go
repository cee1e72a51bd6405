package identify

import "transpiler/internal/source"

// Whitespace identifies a maximal run of Pattern_White_Space characters.
//
// Rust uses Pattern_White_Space, and treats it all the same. There is some
// debate on whether to simplify things, in future:
// internals.rust-lang.org/t/do-we-need-unicode-whitespace/9876
func Whitespace(raw string, pos int) int {
	if pos < 0 {
		return pos
	}
	i := pos
	for i < len(raw) {
		c, size := source.CharAt(raw, i)
		if size == 0 || !isPatternWhitespace(c) {
			break
		}
		i += size
	}
	return i
}

func isPatternWhitespace(c rune) bool {
	switch c {
	case '\t', // horizontal tab
		'\n',     // line feed
		'\v',     // vertical tab
		'\f',     // form feed
		'\r',     // carriage return
		' ',      // space
		'\u0085', // next line
		'\u200E', // left-to-right mark
		'\u200F', // right-to-left mark
		'\u2028', // line separator
		'\u2029': // paragraph separator
		return true
	}
	return false
}
