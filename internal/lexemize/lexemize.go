// Package lexemize transforms Rust source text into an ordered sequence of
// classified lexemes.
//
// The driver walks a single forward cursor over the input. At each position
// it tries the classifiers in priority order; the first match commits a
// lexeme and advances the cursor past it. Bytes no classifier claims are
// accumulated into a pending run, flushed as a single Unrecognized lexeme
// just before the next recognized lexeme or at the end of input. Every byte
// of the input therefore lands in exactly one lexeme: the partition is
// total, ordered, and gap-free, and the scan terminates for any input.
//
// Lexemizing never fails. Malformed source produces Unrecognized lexemes,
// not errors, so any input string yields a complete Result. The scanner is
// a pure function of its input, so distinct inputs may be lexemized
// concurrently without coordination.
package lexemize

import (
	"transpiler/internal/lexemize/identify"
	"transpiler/internal/lexemize/lexeme"
	"transpiler/internal/source"
)

// Lexemize scans raw from start to finish and returns every lexeme found,
// in input order, along with end-of-input bookkeeping.
func Lexemize(raw string) *lexeme.Result {
	result := &lexeme.Result{}
	table := identify.Table()

	line, column := 0, 0

	// advance moves the line and column counters over committed text.
	// Columns count bytes since the last line feed.
	advance := func(text string) {
		for i := 0; i < len(text); i++ {
			if text[i] == '\n' {
				line++
				column = 0
			} else {
				column++
			}
		}
	}

	pos := 0
	pendingStart := 0
	for pos < len(raw) {
		next := pos
		kind := lexeme.UNRECOGNIZED
		// Classifiers are only consulted on codepoint boundaries; a
		// continuation byte can never start a lexeme.
		if source.IsCharBoundary(raw, pos) {
			for _, entry := range table {
				if n := entry.Identify(raw, pos); n > pos {
					next = n
					kind = entry.Kind
					break
				}
			}
		}
		if next == pos {
			// Nothing matched: this byte extends the pending
			// unrecognized run.
			pos++
			continue
		}
		if pendingStart != pos {
			snippet := raw[pendingStart:pos]
			result.Lexemes = append(result.Lexemes, lexeme.Lexeme{
				Kind:       lexeme.UNRECOGNIZED,
				Pos:        pendingStart,
				LineNumber: line,
				Column:     column,
				Snippet:    snippet,
			})
			advance(snippet)
		}
		snippet := raw[pos:next]
		result.Lexemes = append(result.Lexemes, lexeme.Lexeme{
			Kind:       kind,
			Pos:        pos,
			LineNumber: line,
			Column:     column,
			Snippet:    snippet,
		})
		advance(snippet)
		pos = next
		pendingStart = pos
	}

	// Flush a pending run which reached the end of the input.
	if pendingStart != pos {
		snippet := raw[pendingStart:]
		result.Lexemes = append(result.Lexemes, lexeme.Lexeme{
			Kind:       lexeme.UNRECOGNIZED,
			Pos:        pendingStart,
			LineNumber: line,
			Column:     column,
			Snippet:    snippet,
		})
		advance(snippet)
	}

	result.EndPos = pos
	result.EndLineNumber = line
	result.EndColumn = column
	return result
}
