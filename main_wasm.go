//go:build js && wasm

package main

import (
	"fmt"
	"strings"
	"syscall/js"

	"transpiler/internal/context"
	"transpiler/internal/transpile"
)

// transpileCode transpiles Rust code and returns the TypeScript, the lexeme
// dump and the rendered diagnostics
func transpileCode(code string, debug bool) (ts, lexemes, diagnostics string, err error) {
	// Log entry to browser console FIRST
	jsConsole := js.Global().Get("console")

	// Defer panic recovery
	defer func() {
		if r := recover(); r != nil {
			jsConsole.Call("error", "💥 PANIC in transpileCode:", r)
		}
	}()

	// Create transpiler options
	options := &context.TranspileOptions{
		Debug:  debug,
		Config: transpile.NewConfig(),
	}

	// Create transpiler context
	ctx := context.New(options)

	// WASM WORKAROUND: Directly add the code as a "virtual file"
	// instead of using the file system
	virtualFilePath := "main.rs"
	file := ctx.AddFile(virtualFilePath, code)

	// Manually run the phases without file system I/O
	// Phase 1: Lexemize
	if err := ctx.LexemizeFile(file); err != nil {
		return "", "", "", fmt.Errorf("lexemizer failed: %v", err)
	}

	// Phase 2: Transpile
	if err := ctx.TranspileFile(file); err != nil {
		return "", "", "", fmt.Errorf("transpiler failed: %v", err)
	}

	// Check for errors
	if ctx.HasErrors() {
		err = fmt.Errorf("transpilation failed with errors")
	}

	// Split code into lines for source cache
	sourceLines := strings.Split(code, "\n")

	// Get diagnostics output as HTML string
	diagnostics = ctx.Diagnostics.EmitAllToHTMLWithCache(sourceLines)

	if file.Lexemes != nil {
		lexemes = file.Lexemes.String()
	}
	if file.Output != nil {
		ts = file.Output.String()
	}

	return ts, lexemes, diagnostics, err
}

// rsToTsJS is the JavaScript-callable function
func rsToTsJS(this js.Value, args []js.Value) interface{} {
	// Defer panic recovery
	defer func() {
		if r := recover(); r != nil {
			jsConsole := js.Global().Get("console")
			jsConsole.Call("error", "💥 PANIC in transpiler:", r)
		}
	}()

	// Check arguments
	if len(args) < 1 {
		return map[string]interface{}{
			"success": false,
			"error":   "Expected at least 1 argument (code string)",
		}
	}

	code := args[0].String()
	debug := false
	if len(args) > 1 {
		debug = args[1].Bool()
	}

	// Transpile the code
	ts, lexemes, diagnostics, err := transpileCode(code, debug)

	if err != nil {
		return map[string]interface{}{
			"success":     false,
			"error":       err.Error(),
			"lexemes":     lexemes,
			"diagnostics": diagnostics,
		}
	}

	return map[string]interface{}{
		"success":     true,
		"output":      ts,
		"lexemes":     lexemes,
		"diagnostics": diagnostics,
	}
}

func main() {
	// Prevent the program from exiting
	c := make(chan struct{})

	// Register JavaScript function
	js.Global().Set("rsToTs", js.FuncOf(rsToTsJS))

	// Set version info that JavaScript can check
	js.Global().Set("rsToTsWasmVersion", "v0.0.2-production")

	// Log ready message
	fmt.Println("✅ Rust to TypeScript WASM Transpiler Ready")

	// Keep the program running
	<-c
}
