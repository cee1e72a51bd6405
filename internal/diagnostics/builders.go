package diagnostics

import (
	"transpiler/internal/source"
)

// Common diagnostic builders for the transpile phase

// ConfigNotImplemented reports that a placeholder Config value was used.
// The message comes straight from the transpile error, eg
// "RsEdition::Rs2015 is not implemented yet".
func ConfigNotImplemented(filepath string, message string) *Diagnostic {
	d := NewError(message).
		WithCode(ErrConfigNotImplemented).
		WithNote("only Rust 2018, TypeScript 4 and the Gungho strategy are implemented").
		WithHelp("use NewConfig() defaults, or drop the placeholder value")
	d.FilePath = filepath
	return d
}

// TranspileFailure reports a transpilation error with no more specific
// builder. The location may be nil when the error has no position.
func TranspileFailure(filepath string, loc *source.Location, message string) *Diagnostic {
	d := NewError(message).WithCode(ErrUnknownTranspile)
	if loc != nil {
		d.WithPrimaryLabel(filepath, loc, "transpilation failed here")
	} else {
		d.FilePath = filepath
	}
	return d
}

// Common diagnostic builders for the lexemize phase

// UnrecognizedLexemes warns about a run of bytes that no classifier
// matched. The scanner itself never fails, so this is a warning: the run
// is passed through to the output untouched.
func UnrecognizedLexemes(filepath string, loc *source.Location, snippet string) *Diagnostic {
	return NewWarning("unrecognized characters: "+snippet).
		WithCode(WarnUnrecognizedLexemes).
		WithPrimaryLabel(filepath, loc, "not valid Rust").
		WithHelp("these characters are copied to the TypeScript output as-is")
}
