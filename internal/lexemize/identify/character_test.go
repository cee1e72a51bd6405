package identify

import "testing"

func TestCharacterSimple(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "abcde'f'ghi", []identifyCase{
		{4, 4, "e'f"},
		{5, 8, "'f' advance three places"},
		{6, 6, "f'g"},
		{7, 7, "'gh"},
	})
}

func TestCharacterMultiByte(t *testing.T) {
	// 'é' is two bytes, '€' is three, '𝄞' is four.
	runIdentifyCases(t, "Character", Character, "'é'", []identifyCase{
		{0, 4, "'é' advance past the two-byte character"},
	})
	runIdentifyCases(t, "Character", Character, "'€'", []identifyCase{
		{0, 5, "'€'"},
	})
	runIdentifyCases(t, "Character", Character, "'\U0001D11E'", []identifyCase{
		{0, 6, "'𝄞'"},
	})
}

func TestCharacterBackslashed(t *testing.T) {
	runIdentifyCases(t, "Character", Character, " -'\\n'- ", []identifyCase{
		{1, 1, "-'\\n"},
		{2, 6, "'\\n' advance four places"},
		{3, 3, "\\n'-"},
	})
	runIdentifyCases(t, "Character", Character, "'\\r'", []identifyCase{{0, 4, "'\\r'"}})
	runIdentifyCases(t, "Character", Character, "'\\t' ", []identifyCase{{0, 4, "'\\t'"}})
	runIdentifyCases(t, "Character", Character, "'\\\\'", []identifyCase{{0, 4, "'\\\\'"}})
	runIdentifyCases(t, "Character", Character, " '\\0'", []identifyCase{{1, 5, "'\\0'"}})
	runIdentifyCases(t, "Character", Character, "'\\\"'", []identifyCase{{0, 4, "'\\\"'"}})
	runIdentifyCases(t, "Character", Character, "'\\''", []identifyCase{{0, 4, "'\\''"}})
}

func TestCharacter7BitCharCode(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'\\x4A'", []identifyCase{
		{0, 6, "'\\x4A' advance to end"},
		{1, 1, "\\x4A'"},
		{5, 5, "'"},
	})
	runIdentifyCases(t, "Character", Character, " - '\\x0f' - ", []identifyCase{
		{3, 9, "'\\x0f' advance six places"},
	})
}

func TestCharacterNotBackslashed(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'\\' ", []identifyCase{{0, 0, "'\\' no char after the backslash"}})
	runIdentifyCases(t, "Character", Character, " '\\\\", []identifyCase{{1, 1, "'\\\\ has no end quote"}})
	runIdentifyCases(t, "Character", Character, "'\\q'", []identifyCase{{0, 0, "'\\q' no such backslash escape"}})
	runIdentifyCases(t, "Character", Character, " '\\x'", []identifyCase{{1, 1, "'\\x' would start a 7-bit code"}})
	runIdentifyCases(t, "Character", Character, "'\\u'", []identifyCase{{0, 0, "'\\u' would start a unicode escape"}})
	// A simple char whose second character is not a backslash escape: the
	// closing quote must come straight after the first character.
	runIdentifyCases(t, "Character", Character, "'an'", []identifyCase{{0, 0, "'an' two chars is not a char"}})
}

func TestCharacterNotA7BitCharCode(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'\\x3' - ", []identifyCase{{0, 0, "'\\x3' has no 2nd digit"}})
	runIdentifyCases(t, "Character", Character, "'\\x3f - ", []identifyCase{{0, 0, "'\\x3f has no end quote"}})
	runIdentifyCases(t, "Character", Character, "'\\x0G'", []identifyCase{{0, 0, "'\\x0G' is not valid"}})
	runIdentifyCases(t, "Character", Character, "'\\x81'", []identifyCase{{0, 0, "'\\x81' is out of range"}})
}

func TestCharacterUnicodeEscape(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'\\u{0}'", []identifyCase{{0, 7, "one digit"}})
	runIdentifyCases(t, "Character", Character, "'\\u{4A}'", []identifyCase{{0, 8, "two digits"}})
	runIdentifyCases(t, "Character", Character, "'\\u{7fff}'", []identifyCase{{0, 10, "mixed case is ok"}})
	runIdentifyCases(t, "Character", Character, "'\\u{10FFFF}'", []identifyCase{{0, 12, "the maximum code point"}})
}

func TestCharacterUnicodeEscapeInvalid(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'\\u{110000}'", []identifyCase{{0, 0, "exceeds the maximum code point"}})
	runIdentifyCases(t, "Character", Character, "'\\u{1234567}'", []identifyCase{{0, 0, "seven digits is too many"}})
	runIdentifyCases(t, "Character", Character, "'\\u{}'", []identifyCase{{0, 0, "no digits"}})
	runIdentifyCases(t, "Character", Character, "'\\u{4A'", []identifyCase{{0, 0, "no closing brace"}})
	runIdentifyCases(t, "Character", Character, "'\\u{4G}'", []identifyCase{{0, 0, "G is not a hex digit"}})
	runIdentifyCases(t, "Character", Character, "'\\u{4A} '", []identifyCase{{0, 0, "no end quote after the brace"}})
	runIdentifyCases(t, "Character", Character, "'\\u4A'", []identifyCase{{0, 0, "no opening brace"}})
}

func TestCharacterEmptyAndLifetime(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "''", []identifyCase{{0, 0, "empty '' is not a char"}})
	runIdentifyCases(t, "Character", Character, "''x", []identifyCase{{0, 0, "empty '' before x"}})
	runIdentifyCases(t, "Character", Character, "'''", []identifyCase{{0, 3, "''' is a quote char, like 'x'"}})
	// 'static is a lifetime, not an unterminated char literal.
	runIdentifyCases(t, "Character", Character, "'static", []identifyCase{{0, 0, "'s with no closing quote"}})
}

func TestCharacterNearEndDoesNotPanic(t *testing.T) {
	runIdentifyCases(t, "Character", Character, "'a", []identifyCase{{0, 0, "'a"}})
	runIdentifyCases(t, "Character", Character, "'\\", []identifyCase{{0, 0, "'\\"}})
	runIdentifyCases(t, "Character", Character, "'\\n", []identifyCase{{0, 0, "'\\n"}})
	runIdentifyCases(t, "Character", Character, "'\\x", []identifyCase{{0, 0, "'\\x"}})
	runIdentifyCases(t, "Character", Character, "'\\x4", []identifyCase{{0, 0, "'\\x4"}})
	runIdentifyCases(t, "Character", Character, "'\\u{4A}", []identifyCase{{0, 0, "'\\u{4A}"}})
	runIdentifyCases(t, "Character", Character, "abc", []identifyCase{
		{2, 2, "before the last char"},
		{3, 3, "just past the end"},
		{100, 100, "way out of range"},
	})
}
