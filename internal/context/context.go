// Package context provides a shared transpilation context for all phases.
//
// All phases are stateless workers that receive a TranspileContext and
// operate on SourceFile objects within it:
//  1. Single source of truth: all global state lives in TranspileContext
//  2. Phases are workers: the lexemizer and transpiler don't own state
//  3. Thread-safe design: the context is locked for parallel phases
//
// Each SourceFile carries its own phase outputs: the lexeme stream after
// the lexemize phase, and the TypeScript Result after the transpile phase.
package context

import (
	"sync"

	"transpiler/internal/diagnostics"
	"transpiler/internal/lexemize/lexeme"
	"transpiler/internal/transpile"
)

// TranspilePhase tracks the current phase. This is global state, not
// per-file: all files move through phases together.
type TranspilePhase int

const (
	PhaseInitial   TranspilePhase = iota // Not started
	PhaseLexemize                        // Scanning source files into lexemes
	PhaseTranspile                       // Emitting TypeScript
	PhaseComplete                        // Transpilation finished
)

// TranspileContext is the central hub for all transpilation state.
type TranspileContext struct {
	// Diagnostics - centralized error and warning collection.
	// All phases report here instead of storing their own errors.
	Diagnostics *diagnostics.DiagnosticBag

	// Files - maps file path -> SourceFile. The single registry of all
	// files in the transpilation.
	Files map[string]*SourceFile

	// CurrentPhase - global phase tracker
	CurrentPhase TranspilePhase

	// Options - transpiler configuration
	Options *TranspileOptions

	// FileOrder - tracks order files were added (for deterministic output)
	FileOrder []string

	// Mutex for thread-safe operations during parallel phases
	mu sync.RWMutex
}

// SourceFile represents one source file through all phases. Phase outputs
// are attached directly to the file, not stored separately.
type SourceFile struct {
	Path    string // File path, or a virtual name like "main.rs"
	Content string // Raw Rust source code

	// Lexemes is set by the lexemize phase
	Lexemes *lexeme.Result
	// Output is set by the transpile phase
	Output *transpile.Result
}

// TranspileOptions holds transpiler configuration.
// Passed to the context at creation time and remains immutable.
type TranspileOptions struct {
	Debug       bool             // Enable debug output during transpilation
	EmitLexemes bool             // Print each file's lexeme stream to stderr
	Config      transpile.Config // Versions and strategy for the transpile phase
}

// New creates a TranspileContext. This is the entry point for starting a
// new transpilation session.
func New(options *TranspileOptions) *TranspileContext {
	if options == nil {
		options = &TranspileOptions{Config: transpile.NewConfig()}
	}

	return &TranspileContext{
		Diagnostics:  diagnostics.NewDiagnosticBag(""),
		Files:        make(map[string]*SourceFile),
		Options:      options,
		FileOrder:    make([]string, 0),
		CurrentPhase: PhaseInitial,
	}
}

// AddFile registers a new source file in the context.
//
// Thread-safe for parallel phases.
func (ctx *TranspileContext) AddFile(path string, content string) *SourceFile {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if existing, ok := ctx.Files[path]; ok {
		return existing
	}

	file := &SourceFile{
		Path:    path,
		Content: content,
	}

	ctx.Files[path] = file
	ctx.FileOrder = append(ctx.FileOrder, path)

	return file
}

// GetFile retrieves a source file by path.
// Returns nil if the file hasn't been registered.
func (ctx *TranspileContext) GetFile(path string) *SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return ctx.Files[path]
}

// GetAllFiles returns all registered files in the order they were added.
// This ensures deterministic output order.
func (ctx *TranspileContext) GetAllFiles() []*SourceFile {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	files := make([]*SourceFile, 0, len(ctx.FileOrder))
	for _, path := range ctx.FileOrder {
		files = append(files, ctx.Files[path])
	}
	return files
}

// SetPhase advances the global phase tracker.
func (ctx *TranspileContext) SetPhase(phase TranspilePhase) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	ctx.CurrentPhase = phase
}

// HasErrors returns true if any errors have been reported.
func (ctx *TranspileContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics outputs all collected diagnostics to stderr.
// Typically called at the end of transpilation.
func (ctx *TranspileContext) EmitDiagnostics() {
	ctx.Diagnostics.EmitAll()
}
