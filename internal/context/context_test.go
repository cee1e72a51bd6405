package context

import (
	"testing"

	"transpiler/internal/lexemize/lexeme"
	"transpiler/internal/transpile"
)

const (
	mainRsFile    = "main.rs"
	mainRsContent = "const ROUGHLY_PI: f32 = 3.14;"
	libRsFile     = "lib.rs"
	libRsContent  = "const FOUR: u8 = 4;"
)

func TestAddFileRegistersInOrder(t *testing.T) {
	ctx := New(nil)

	ctx.AddFile(mainRsFile, mainRsContent)
	ctx.AddFile(libRsFile, libRsContent)

	files := ctx.GetAllFiles()
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %d", len(files))
	}
	if files[0].Path != mainRsFile || files[1].Path != libRsFile {
		t.Errorf("Files out of registration order: %s, %s", files[0].Path, files[1].Path)
	}

	if got := ctx.GetFile(mainRsFile); got == nil || got.Content != mainRsContent {
		t.Errorf("GetFile(%s) returned %v", mainRsFile, got)
	}
	if ctx.GetFile("missing.rs") != nil {
		t.Error("Expected nil for unregistered file")
	}
}

func TestAddFileIsIdempotent(t *testing.T) {
	ctx := New(nil)

	first := ctx.AddFile(mainRsFile, mainRsContent)
	second := ctx.AddFile(mainRsFile, "something else")

	if first != second {
		t.Error("Expected the same SourceFile for a repeated path")
	}
	if len(ctx.GetAllFiles()) != 1 {
		t.Errorf("Expected 1 file, got %d", len(ctx.GetAllFiles()))
	}
}

func TestLexemizeFileStoresLexemes(t *testing.T) {
	ctx := New(nil)
	file := ctx.AddFile(mainRsFile, mainRsContent)

	ctx.LexemizeFile(file)

	if file.Lexemes == nil {
		t.Fatal("Expected lexemes to be stored on the file")
	}
	if file.Lexemes.Lexemes[0].Kind != lexeme.IDENTIFIER {
		t.Errorf("Expected an Identifier first, got %v", file.Lexemes.Lexemes[0].Kind)
	}
	if ctx.HasErrors() {
		t.Error("Expected no errors for valid input")
	}
}

func TestLexemizeFileWarnsAboutUnrecognized(t *testing.T) {
	ctx := New(nil)
	file := ctx.AddFile(mainRsFile, "let a = `b`;")

	ctx.LexemizeFile(file)

	if ctx.HasErrors() {
		t.Error("Unrecognized runs should warn, not error")
	}
	if got := ctx.Diagnostics.WarningCount(); got != 2 {
		t.Errorf("Expected 2 warnings (one per backtick run), got %d", got)
	}
}

func TestTranspileFileTransfersErrors(t *testing.T) {
	ctx := New(&TranspileOptions{
		Config: transpile.NewConfig().TsMajor(transpile.TS_3),
	})
	file := ctx.AddFile(mainRsFile, mainRsContent)

	ctx.LexemizeFile(file)
	ctx.TranspileFile(file)

	if !ctx.HasErrors() {
		t.Fatal("Expected a ConfigNotImplemented error in the bag")
	}
	diag := ctx.Diagnostics.Diagnostics()[0]
	if diag.Message != "TsMajor::Ts3 is not implemented yet" {
		t.Errorf("Unexpected diagnostic message: %s", diag.Message)
	}
}

func TestTranspileFileProducesOutput(t *testing.T) {
	ctx := New(nil)
	file := ctx.AddFile(mainRsFile, mainRsContent)

	ctx.LexemizeFile(file)
	ctx.TranspileFile(file)

	if ctx.HasErrors() {
		t.Fatal("Expected no errors")
	}
	if file.Output == nil || len(file.Output.MainLines) != 1 {
		t.Fatalf("Expected one line of output, got %v", file.Output)
	}
	if file.Output.MainLines[0] != "const ROUGHLY_PI: Number = 3.14;" {
		t.Errorf("Unexpected output: %s", file.Output.MainLines[0])
	}
}
