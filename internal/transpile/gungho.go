package transpile

import (
	"strings"

	"transpiler/internal/lexemize/lexeme"
)

// tsTypeNames maps Rust primitive type names to their TypeScript
// equivalents under the Gungho strategy.
var tsTypeNames = map[string]string{
	"bool":  "boolean",
	"char":  "string",
	"str":   "string",
	"f32":   "Number",
	"f64":   "Number",
	"i8":    "Number",
	"i16":   "Number",
	"i32":   "Number",
	"i64":   "Number",
	"i128":  "Number",
	"isize": "Number",
	"u8":    "Number",
	"u16":   "Number",
	"u32":   "Number",
	"u64":   "Number",
	"u128":  "Number",
	"usize": "Number",
}

// rs2018Ts4Gungho transpiles Rust 2018 lexemes to TypeScript 4 using the
// Gungho strategy: the output mirrors the input token for token, with Rust
// primitive type names rewritten, so line numbers are preserved.
func rs2018Ts4Gungho(lexemes []lexeme.Lexeme) *Result {
	var out strings.Builder
	for _, l := range lexemes {
		if l.Kind == lexeme.IDENTIFIER {
			if ts, ok := tsTypeNames[l.Snippet]; ok {
				out.WriteString(ts)
				continue
			}
		}
		out.WriteString(l.Snippet)
	}

	result := NewResult()
	// SplitAfter keeps each line's newline, so concatenating MainLines
	// reproduces the output verbatim.
	for _, line := range strings.SplitAfter(out.String(), "\n") {
		if line == "" {
			continue
		}
		result.PushMainLine(line)
	}
	return result
}
