package cmd

import (
	"fmt"
	"os"
	"sync"

	"transpiler/internal/context"
)

// RunLexemizePhase scans all files into lexemes in parallel
func RunLexemizePhase(ctx *context.TranspileContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Lexemize (Parallel)\n")
	}

	ctx.SetPhase(context.PhaseLexemize)

	files := ctx.GetAllFiles()
	errorChan := make(chan error, len(files))
	var wg sync.WaitGroup

	// Process each file in parallel
	for _, file := range files {
		wg.Add(1)
		go func(f *context.SourceFile) {
			defer wg.Done()
			if err := ctx.LexemizeFile(f); err != nil {
				errorChan <- fmt.Errorf("lexemizer failed on %s: %w", f.Path, err)
			}
		}(file)
	}

	wg.Wait()
	close(errorChan)

	for err := range errorChan {
		if err != nil {
			return err
		}
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Scanned %d file(s)\n", len(files))
	}

	return nil
}

// RunTranspilePhase emits TypeScript for all scanned files in parallel.
// Transpile errors land in ctx.Diagnostics, not in the returned error.
func RunTranspilePhase(ctx *context.TranspileContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 2] Transpile (Parallel)\n")
	}

	ctx.SetPhase(context.PhaseTranspile)

	files := ctx.GetAllFiles()
	errorChan := make(chan error, len(files))
	var wg sync.WaitGroup

	for _, file := range files {
		wg.Add(1)
		go func(f *context.SourceFile) {
			defer wg.Done()
			if err := ctx.TranspileFile(f); err != nil {
				errorChan <- fmt.Errorf("transpiler failed on %s: %w", f.Path, err)
			}
		}(file)
	}

	wg.Wait()
	close(errorChan)

	for err := range errorChan {
		if err != nil {
			return err
		}
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Transpiled %d file(s)\n", len(files))
	}

	return nil
}

// Transpile runs the whole pipeline on the entry point file.
//
// All phases operate on the TranspileContext state and report diagnostics
// through ctx.Diagnostics. Returns error only for fatal failures.
func Transpile(entryPoint string, ctx *context.TranspileContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Transpilation Started] Entry Point: %s\n", entryPoint)
	}

	// Phase 0: Register the entry point
	content, err := os.ReadFile(entryPoint)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", entryPoint, err)
	}
	return run(entryPoint, string(content), ctx)
}

// TranspileSource runs the pipeline on source passed in directly, under a
// virtual file name. Used for inline input and by callers with no file
// system, mirroring Transpile in every other way.
func TranspileSource(name, content string, ctx *context.TranspileContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Transpilation Started] Inline source as %s\n", name)
	}
	return run(name, content, ctx)
}

func run(path, content string, ctx *context.TranspileContext) error {
	ctx.AddFile(path, content)

	// Phase 1: Lexemize
	if err := RunLexemizePhase(ctx); err != nil {
		return fmt.Errorf("lexemize failed: %w", err)
	}

	// Phase 2: Transpile
	if err := RunTranspilePhase(ctx); err != nil {
		return fmt.Errorf("transpile failed: %w", err)
	}

	ctx.SetPhase(context.PhaseComplete)

	if ctx.HasErrors() {
		return fmt.Errorf("transpilation failed with errors")
	}

	return nil
}
