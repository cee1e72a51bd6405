package identify

import "testing"

func TestWhitespaceTypical(t *testing.T) {
	runIdentifyCases(t, "Whitespace", Whitespace, "abc \t\nxyz", []identifyCase{
		{2, 2, "c"},
		{3, 6, "<SP><TB><NL> advance three places"},
		{4, 6, "<TB><NL> advance two places"},
		{5, 6, "<NL> advance one place"},
		{6, 6, "xyz"},
	})
}

func TestWhitespaceExhaustive(t *testing.T) {
	// doc.rust-lang.org/reference/whitespace.html
	runIdentifyCases(t, "Whitespace", Whitespace, "\x00", []identifyCase{{0, 0, "null is not whitespace"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\t", []identifyCase{{0, 1, "horizontal tab"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\n", []identifyCase{{0, 1, "line feed"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\v", []identifyCase{{0, 1, "vertical tab"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\f", []identifyCase{{0, 1, "form feed"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\r", []identifyCase{{0, 1, "carriage return"}})
	runIdentifyCases(t, "Whitespace", Whitespace, " ", []identifyCase{{0, 1, "space"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u0085", []identifyCase{{0, 2, "next line, two bytes"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u200E", []identifyCase{{0, 3, "left-to-right mark, three bytes"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u200F", []identifyCase{{0, 3, "right-to-left mark, three bytes"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u2028", []identifyCase{{0, 3, "line separator, three bytes"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u2029", []identifyCase{{0, 3, "paragraph separator, three bytes"}})
	runIdentifyCases(t, "Whitespace", Whitespace, "\u00A0", []identifyCase{{0, 0, "NBSP is not whitespace"}})
}

func TestWhitespaceEndsWithNewline(t *testing.T) {
	runIdentifyCases(t, "Whitespace", Whitespace, "xyz. \n", []identifyCase{
		{2, 2, "z. <NL>"},
		{3, 3, ". <NL>"},
		{4, 6, " <NL> advance to the end"},
		{5, 6, "<NL> advance to the end"},
	})
}

func TestWhitespaceMixedMultiByte(t *testing.T) {
	// A maximal run spanning ASCII and non-ASCII whitespace.
	runIdentifyCases(t, "Whitespace", Whitespace, "  \tz", []identifyCase{
		{0, 5, "space, line separator, tab"},
		{2, 2, "mid-codepoint is no match"},
	})
}

func TestWhitespaceOutOfRange(t *testing.T) {
	runIdentifyCases(t, "Whitespace", Whitespace, " ", []identifyCase{
		{1, 1, "just past the end"},
		{100, 100, "way out of range"},
	})
}
