// Package source provides safe byte-offset primitives over UTF-8 input.
//
// All scanner positions are byte offsets into the raw input string, never
// rune indices. A position handed to any function here may be out of range,
// or may land in the middle of a multi-byte codepoint; every accessor
// degrades to a sentinel instead of panicking, so the classifiers built on
// top of this package never need their own bounds checks.
package source

import "unicode/utf8"

// IsCharBoundary reports whether pos is the start of a codepoint, or the end
// of the input. Positions past the end are not boundaries.
func IsCharBoundary(raw string, pos int) bool {
	if pos < 0 || pos > len(raw) {
		return false
	}
	if pos == len(raw) {
		return true
	}
	// UTF-8 continuation bytes are 0b10xxxxxx.
	return raw[pos]&0xC0 != 0x80
}

// CharAt decodes the codepoint starting at pos. The returned size is 0 when
// pos is out of range or not a codepoint boundary, which callers treat as
// "no character here". Invalid byte sequences decode as utf8.RuneError with
// size 1, matching the standard library.
func CharAt(raw string, pos int) (r rune, size int) {
	if pos < 0 || pos >= len(raw) || !IsCharBoundary(raw, pos) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(raw[pos:])
}

// ASCIIAt reads the byte at pos, reporting false when pos is out of range or
// the byte is not 7-bit ASCII. Classifiers whose grammar is byte-oriented
// (numbers, punctuation, delimiters) use this so a multi-byte character's
// head byte is never mistaken for an ASCII token.
func ASCIIAt(raw string, pos int) (byte, bool) {
	if pos < 0 || pos >= len(raw) {
		return 0, false
	}
	b := raw[pos]
	if b >= 0x80 {
		return 0, false
	}
	return b, true
}

// HasPrefixAt reports whether raw contains the literal prefix starting at
// pos, without reading past the end of the input.
func HasPrefixAt(raw string, pos int, prefix string) bool {
	if pos < 0 || pos+len(prefix) > len(raw) {
		return false
	}
	return raw[pos:pos+len(prefix)] == prefix
}
