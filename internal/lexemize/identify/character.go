package identify

import "transpiler/internal/source"

// Maximum Unicode code point, for validating '\u{...}' escapes.
const maxCodePoint = 0x10FFFF

// Character identifies a char literal, like 'A', '\n', '\x4A' or '\u{10FFFF}'.
//
// A lone quote followed by identifier characters, like the start of
// 'static, is not a char literal: the closing quote must appear exactly
// where the grammar demands it, or the whole literal is no match.
func Character(raw string, pos int) int {
	// The shortest possible char literal, 'x', needs three bytes.
	if pos < 0 || pos+3 > len(raw) {
		return pos
	}
	if raw[pos] != '\'' {
		return pos
	}
	if raw[pos+1] == '\\' {
		return characterEscape(raw, pos)
	}
	// A single non-backslash character, which may be multi-byte, between
	// two quotes. Note that ''' is accepted here, the same as 'x'.
	_, size := source.CharAt(raw, pos+1)
	if size == 0 {
		return pos
	}
	if source.HasPrefixAt(raw, pos+1+size, "'") {
		return pos + 1 + size + 1
	}
	return pos
}

// characterEscape identifies the backslash forms. raw[pos] is known to be a
// quote and raw[pos+1] a backslash.
func characterEscape(raw string, pos int) int {
	c, ok := source.ASCIIAt(raw, pos+2)
	if !ok {
		return pos
	}
	switch c {
	// The simple escapes: exactly one character after the backslash,
	// then the closing quote.
	case 'n', 'r', 't', '\\', '0', '"', '\'':
		if source.HasPrefixAt(raw, pos+3, "'") {
			return pos + 4
		}
		return pos
	// A 7-bit char code, like '\x4A'. The first digit is restricted to
	// 0-7 so the value cannot exceed 0x7F.
	case 'x':
		d1, ok1 := source.ASCIIAt(raw, pos+3)
		d2, ok2 := source.ASCIIAt(raw, pos+4)
		if ok1 && ok2 &&
			d1 >= '0' && d1 <= '7' &&
			isHexDigit(d2) &&
			source.HasPrefixAt(raw, pos+5, "'") {
			return pos + 6
		}
		return pos
	// A code point escape, like '\u{7FFF}': one to six hex digits.
	case 'u':
		return characterUnicodeEscape(raw, pos)
	}
	return pos
}

func characterUnicodeEscape(raw string, pos int) int {
	if !source.HasPrefixAt(raw, pos+3, "{") {
		return pos
	}
	i := pos + 4
	digits := 0
	value := 0
	for {
		c, ok := source.ASCIIAt(raw, i)
		if !ok || !isHexDigit(c) {
			break
		}
		value = value<<4 | hexValue(c)
		digits++
		i++
		if digits > 6 {
			return pos
		}
	}
	if digits == 0 || value > maxCodePoint {
		return pos
	}
	if source.HasPrefixAt(raw, i, "}'") {
		return i + 2
	}
	return pos
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
