package identify

import "testing"

func TestStringTypical(t *testing.T) {
	runIdentifyCases(t, "String", String, "abc\"ok\"xyz", []identifyCase{
		{2, 2, "c\"ok"},
		{3, 7, "\"ok\" advance four places"},
		{4, 4, "ok\"x"},
	})
}

func TestStringBasicRaw(t *testing.T) {
	runIdentifyCases(t, "String", String, "-r\"ok\"-", []identifyCase{{1, 6, "r\"ok\""}})
	runIdentifyCases(t, "String", String, "r#\"ok\"#", []identifyCase{{0, 7, "r#\"ok\"#"}})
	runIdentifyCases(t, "String", String, "abcr###\"ok\"###xyz", []identifyCase{{3, 14, "r###\"ok\"###"}})
}

func TestStringEscapedDoubleQuote(t *testing.T) {
	runIdentifyCases(t, "String", String, "a\"b\\\"c\"d", []identifyCase{
		{0, 0, "a\"b\\\"c"},
		{1, 7, "\"b\\\"c\" advance six places"},
		{2, 2, "b\\\"c\"d"},
		{3, 3, "\\\"c\"d"},
		{4, 7, "\"c\"d, no lookbehind happens"},
	})
}

func TestStringEscapes(t *testing.T) {
	// Valid escapes, regular string.
	raw := `a"\0\\\\\"\\\n"z`
	runIdentifyCases(t, "String", String, raw, []identifyCase{
		{0, 0, "a\"..."},
		{1, 15, "the whole string"},
		{2, 2, "\\0..."},
		{9, 15, "\"\\\\\\n\"z, no lookbehind"},
		{14, 14, "\"z is not a string, it has no end"},
	})
	// Invalid escapes are some later stage's problem, but unterminated is
	// unterminated.
	runIdentifyCases(t, "String", String, `\a\b\c`, []identifyCase{{0, 0, "no opening quote"}})
	// Escape-looking sequences inside raw strings.
	runIdentifyCases(t, "String", String, `r"\0\n\t"`, []identifyCase{{0, 9, "r\"\\0\\n\\t\""}})
	runIdentifyCases(t, "String", String, `r#"\X\Y\Z"#`, []identifyCase{{0, 11, "r#\"\\X\\Y\\Z\"#"}})
}

func TestStringRawBackslashHasNoEffect(t *testing.T) {
	// In a raw string a backslash cannot escape the closing quote.
	runIdentifyCases(t, "String", String, `r"a\"`, []identifyCase{
		{0, 5, "the quote after the backslash terminates"},
	})
}

func TestStringRawHashBalance(t *testing.T) {
	runIdentifyCases(t, "String", String, "r##\"ok\"##", []identifyCase{{0, 9, "balanced hashes"}})
	runIdentifyCases(t, "String", String, "r###\"ok\"##", []identifyCase{{0, 0, "mismatched hash counts"}})
	runIdentifyCases(t, "String", String, "r\"ok\"##", []identifyCase{{0, 5, "zero hashes, trailing hashes not consumed"}})
}

func TestStringInvalidRaw(t *testing.T) {
	runIdentifyCases(t, "String", String, "r##X#\" X in leading hashes \"###", []identifyCase{{0, 0, "X in leading hashes"}})
	runIdentifyCases(t, "String", String, "r###\" X in trailing hashes \"##X#", []identifyCase{{0, 0, "X in trailing hashes"}})
	runIdentifyCases(t, "String", String, "r###\" too few trailing hashes \"##", []identifyCase{{0, 0, "too few trailing hashes"}})
	runIdentifyCases(t, "String", String, "-r###\" no trailing hashes \"-", []identifyCase{{1, 1, "no trailing hashes"}})
	runIdentifyCases(t, "String", String, "r\"unterminated", []identifyCase{{0, 0, "no closing quote"}})
	runIdentifyCases(t, "String", String, "r#", []identifyCase{{0, 0, "nothing after the hash"}})
	runIdentifyCases(t, "String", String, "r", []identifyCase{{0, 0, "a lone r"}})
}

func TestStringNearEndDoesNotPanic(t *testing.T) {
	runIdentifyCases(t, "String", String, "\"", []identifyCase{{0, 0, "a lone quote"}})
	runIdentifyCases(t, "String", String, "\"\\", []identifyCase{{0, 0, "quote backslash"}})
	runIdentifyCases(t, "String", String, "\"\\\"", []identifyCase{{0, 0, "the backslash escapes the closer"}})
	runIdentifyCases(t, "String", String, "abc", []identifyCase{
		{3, 3, "just past the end"},
		{100, 100, "way out of range"},
	})
}
