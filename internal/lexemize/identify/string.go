package identify

import "transpiler/internal/source"

// String identifies a string literal, like "Hello \"Rust\"", or a raw
// string literal, like r#"Hello "Rust""#.
func String(raw string, pos int) int {
	c, ok := source.ASCIIAt(raw, pos)
	if !ok {
		return pos
	}
	switch c {
	case '"':
		return regularString(raw, pos)
	case 'r':
		return rawString(raw, pos)
	}
	return pos
}

// regularString runs to the first unescaped double quote. A backslash
// escapes whatever character follows it, unconditionally — validating which
// escapes are legal is a later stage's job. No closing quote, no match.
func regularString(raw string, pos int) int {
	for i := pos + 1; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++
		case '"':
			return i + 1
		}
	}
	return pos
}

// rawString matches r, zero or more leading hashes, a double quote, the
// string body, then a double quote followed by exactly as many trailing
// hashes. A backslash has no escaping effect inside a raw string. Anything
// unbalanced or unterminated is no match.
//
// doc.rust-lang.org/reference/tokens.html#raw-string-literals
func rawString(raw string, pos int) int {
	i := pos + 1
	hashes := 0
	for i < len(raw) && raw[i] == '#' {
		hashes++
		i++
	}
	if !source.HasPrefixAt(raw, i, "\"") {
		return pos
	}
	i++
	for i < len(raw) {
		if raw[i] != '"' {
			i++
			continue
		}
		// A candidate terminator: count the hashes after the quote.
		i++
		trailing := 0
		for trailing < hashes && i < len(raw) && raw[i] == '#' {
			trailing++
			i++
		}
		if trailing != hashes {
			return pos
		}
		return i
	}
	return pos
}
