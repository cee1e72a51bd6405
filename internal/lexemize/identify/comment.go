package identify

import "transpiler/internal/source"

// Comment identifies an inline comment, like "// ...", or a block comment,
// like "/* ... */". Block comments nest.
func Comment(raw string, pos int) int {
	if !source.HasPrefixAt(raw, pos, "/") {
		return pos
	}
	if source.HasPrefixAt(raw, pos+1, "/") {
		return inlineComment(raw, pos)
	}
	if source.HasPrefixAt(raw, pos+1, "*") {
		return blockComment(raw, pos)
	}
	return pos
}

// inlineComment runs to the next line feed, exclusive, or to the end of the
// input. A carriage return is an ordinary character here.
func inlineComment(raw string, pos int) int {
	for i := pos + 2; i < len(raw); i++ {
		if raw[i] == '\n' {
			return i
		}
	}
	return len(raw)
}

// blockComment runs to the "*/" which balances the opening "/*", tracking
// nesting depth. Both characters of each "/*" or "*/" are stepped over
// together, so overlapping markers like "/*/" are never counted twice. An
// unterminated block comment is no match.
func blockComment(raw string, pos int) int {
	depth := 0
	i := pos + 2
	for i < len(raw) {
		switch {
		case source.HasPrefixAt(raw, i, "/*"):
			depth++
			i += 2
		case source.HasPrefixAt(raw, i, "*/"):
			if depth == 0 {
				return i + 2
			}
			depth--
			i += 2
		default:
			i++
		}
	}
	return pos
}
