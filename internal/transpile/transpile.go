// Package transpile converts Rust source code into TypeScript.
package transpile

import (
	"transpiler/internal/lexemize"
	"transpiler/internal/lexemize/lexeme"
)

// RsToTs transpiles Rust code to TypeScript. This is the module's main
// entry point.
//
// For default configuration, pass NewConfig(). Currently only input code in
// the 2018 edition of Rust is supported, and only TypeScript 4 output using
// the Gungho strategy. The placeholder values RS_2015, CAUTIOUS and TS_3 can
// be configured but lead to a CONFIG_NOT_IMPLEMENTED error.
func RsToTs(raw string, config Config) *Result {
	if result := checkConfig(config); result != nil {
		return result
	}
	return FromLexemes(lexemize.Lexemize(raw).Lexemes, config)
}

// FromLexemes transpiles an already-scanned lexeme stream. The lexemize
// phase stores each file's lexemes, so the transpile phase starts here
// rather than scanning a second time.
func FromLexemes(lexemes []lexeme.Lexeme, config Config) *Result {
	if result := checkConfig(config); result != nil {
		return result
	}
	return rs2018Ts4Gungho(lexemes)
}

// checkConfig returns a CONFIG_NOT_IMPLEMENTED Result when a placeholder
// value was configured, or nil when transpilation can go ahead.
func checkConfig(config Config) *Result {
	if config.rsEdition == RS_2015 {
		return makeNotImplementedResult("RsEdition::Rs2015 is not implemented yet")
	}
	if config.strategy == CAUTIOUS {
		return makeNotImplementedResult("Strategy::Cautious is not implemented yet")
	}
	if config.tsMajor == TS_3 {
		return makeNotImplementedResult("TsMajor::Ts3 is not implemented yet")
	}
	return nil
}

func makeNotImplementedResult(message string) *Result {
	return NewResult().PushConfigNotImplementedError(0, 0, message)
}
