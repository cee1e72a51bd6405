//go:build !(js && wasm)

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"transpiler/internal/cmd"
	"transpiler/internal/context"
	"transpiler/internal/transpile"
)

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	lexemesFlag := flag.Bool("lexemes", false, "Print the lexeme stream to stderr")
	srcFlag := flag.String("src", "", "Transpile this Rust source instead of reading a file")
	editionFlag := flag.String("edition", "latest", "Rust edition of the input: 2015, 2018 or latest")
	tsFlag := flag.String("ts", "latest", "TypeScript major-version to output: 3, 4 or latest")
	strategyFlag := flag.String("strategy", "gungho", "Transpilation strategy: cautious or gungho")
	flag.Parse()

	// Validate arguments
	if flag.NArg() < 1 && *srcFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file.rs>\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "   or: %s -src 'const ROUGHLY_PI: f32 = 3.14;'\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(1)
	}

	config, err := buildConfig(*editionFlag, *tsFlag, *strategyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flag: %v\n", err)
		os.Exit(1)
	}

	// Create transpiler options
	options := &context.TranspileOptions{
		Debug:       *debugFlag,
		EmitLexemes: *lexemesFlag,
		Config:      config,
	}

	if options.Debug {
		fmt.Fprintf(os.Stderr, "Config: %s\n", config)
	}

	// Create transpiler context
	ctx := context.New(options)

	// Run transpilation pipeline, from a file or from inline source
	var runErr error
	if *srcFlag != "" {
		runErr = cmd.TranspileSource("arg.rs", *srcFlag, ctx)
	} else {
		runErr = cmd.Transpile(flag.Arg(0), ctx)
	}
	if runErr != nil {
		ctx.EmitDiagnostics()
		fmt.Fprintf(os.Stderr, "\nTranspilation failed: %v\n", runErr)
		os.Exit(1)
	}

	// Emit any warnings/info diagnostics
	ctx.EmitDiagnostics()

	// Print the TypeScript to stdout
	for _, file := range ctx.GetAllFiles() {
		if file.Output != nil {
			fmt.Print(file.Output)
		}
	}

	if options.Debug {
		fmt.Fprintln(os.Stderr, "\n✓ Transpilation successful!")
	}
}

func buildConfig(edition, ts, strategy string) (transpile.Config, error) {
	config := transpile.NewConfig()

	switch edition {
	case "latest":
	case "2015":
		config = config.RsEdition(transpile.RS_2015)
	case "2018":
		config = config.RsEdition(transpile.RS_2018)
	default:
		return config, fmt.Errorf("unknown Rust edition %q", edition)
	}

	switch ts {
	case "latest":
	case "3":
		config = config.TsMajor(transpile.TS_3)
	case "4":
		config = config.TsMajor(transpile.TS_4)
	default:
		return config, fmt.Errorf("unknown TypeScript version %q", ts)
	}

	switch strategy {
	case "gungho":
	case "cautious":
		config = config.Strategy(transpile.CAUTIOUS)
	default:
		return config, fmt.Errorf("unknown strategy %q", strategy)
	}

	return config, nil
}
