// Phase workers.
//
// Each worker is a stateless function that reads the previous phase's
// output from a SourceFile, writes the next phase's input, and reports
// problems to ctx.Diagnostics.
//
// Phase progression:
//
//	Entry -> Lexemize -> Transpile -> Exit
//
// The workers live on the context so both the command runner and the wasm
// entry point can drive them.
package context

import (
	"fmt"
	"os"

	"transpiler/internal/diagnostics"
	"transpiler/internal/lexemize"
	"transpiler/internal/lexemize/lexeme"
	"transpiler/internal/source"
	"transpiler/internal/transpile"
)

// LexemizeFile scans a single source file into lexemes. The scanner never
// fails, so the error return is reserved for future phases of the pipeline.
func (ctx *TranspileContext) LexemizeFile(file *SourceFile) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Scanning %s (%d bytes)\n", file.Path, len(file.Content))
	}

	file.Lexemes = lexemize.Lexemize(file.Content)

	// Unrecognized runs are not fatal, but worth pointing out
	for _, l := range file.Lexemes.Lexemes {
		if l.Kind == lexeme.UNRECOGNIZED {
			ctx.Diagnostics.Add(diagnostics.UnrecognizedLexemes(
				file.Path,
				source.NewLocation(l.LineNumber, l.Column, len(l.Snippet)),
				l.Snippet,
			))
		}
	}

	if ctx.Options.EmitLexemes {
		fmt.Fprintln(os.Stderr, file.Lexemes)
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d lexemes\n", len(file.Lexemes.Lexemes))
	}

	return nil
}

// TranspileFile emits TypeScript for a single scanned file.
//
// Transpile errors are transferred into the diagnostic bag, so callers
// only need to check ctx.HasErrors().
func (ctx *TranspileContext) TranspileFile(file *SourceFile) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  Transpiling %s\n", file.Path)
	}

	if file.Lexemes == nil {
		file.Output = transpile.RsToTs(file.Content, ctx.Options.Config)
	} else {
		file.Output = transpile.FromLexemes(file.Lexemes.Lexemes, ctx.Options.Config)
	}

	for _, err := range file.Output.Errors {
		switch err.Kind {
		case transpile.CONFIG_NOT_IMPLEMENTED:
			ctx.Diagnostics.Add(diagnostics.ConfigNotImplemented(file.Path, err.Message))
		default:
			var loc *source.Location
			if err.LineNumber > 0 || err.Column > 0 {
				loc = source.NewLocation(err.LineNumber, err.Column, 1)
			}
			ctx.Diagnostics.Add(diagnostics.TranspileFailure(file.Path, loc, err.Message))
		}
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "    Generated %d line(s) of TypeScript\n", len(file.Output.MainLines))
	}

	return nil
}
