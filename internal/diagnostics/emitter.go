package diagnostics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"transpiler/colors"
)

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetLines pre-populates the cache for a file, so diagnostics can be
// rendered without touching the file system (used by the wasm build).
func (sc *SourceCache) SetLines(filepath string, lines []string) {
	sc.files[filepath] = lines
}

// GetLine retrieves a specific 1-based line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	lines, ok := sc.files[filepath]
	if !ok {
		loaded, err := sc.loadFile(filepath)
		if err != nil {
			return "", err
		}
		lines = loaded
	}
	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}
	return "", fmt.Errorf("line %d out of range", line)
}

func (sc *SourceCache) loadFile(filepath string) ([]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	sc.files[filepath] = lines
	return lines, nil
}

// Emitter renders diagnostics in a Rust-style format
type Emitter struct {
	w     io.Writer
	cache *SourceCache
}

func NewEmitter() *Emitter {
	return NewEmitterWithWriter(os.Stderr)
}

func NewEmitterWithWriter(w io.Writer) *Emitter {
	return &Emitter{
		w:     w,
		cache: NewSourceCache(),
	}
}

// SetSourceLines pre-populates the source cache for a file
func (e *Emitter) SetSourceLines(filepath string, lines []string) {
	e.cache.SetLines(filepath, lines)
}

// Emit renders and prints a single diagnostic
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	// Use filepath from diagnostic if available, otherwise use parameter
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label, diag.Severity)
	}

	for _, note := range diag.Notes {
		colors.CYAN.Fprint(e.w, "  = note: ")
		fmt.Fprintln(e.w, note.Message)
	}

	if diag.Help != "" {
		colors.GREEN.Fprint(e.w, "  = help: ")
		fmt.Fprintln(e.w, diag.Help)
	}

	fmt.Fprintln(e.w)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := severityColor(diag.Severity)

	color.Fprint(e.w, diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(e.w, "[%s]", diag.Code)
	}
	fmt.Fprint(e.w, ": ")
	color.Fprintln(e.w, diag.Message)
}

func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	colors.BLUE.Fprintf(e.w, "  --> %s:%d:%d\n", filepath, start.Line, start.Column)

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))

	// Gutter, source line, underline
	colors.GREY.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprintln(e.w, " |")

	colors.GREY.Fprintf(e.w, "%*d | ", lineNumWidth, start.Line)
	fmt.Fprintln(e.w, sourceLine)

	colors.GREY.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprint(e.w, " | ")

	padding := start.Column - 1
	length := end.Column - start.Column
	if end.Line > start.Line {
		// Multi-line span: underline to the end of the first line
		length = len(sourceLine) - padding
	}
	if length <= 0 {
		length = 1
	}

	underlineColor, underlineChar := labelStyle(label.Style, severity, length)

	fmt.Fprint(e.w, strings.Repeat(" ", padding))
	underlineColor.Fprint(e.w, strings.Repeat(underlineChar, length))
	if label.Message != "" {
		underlineColor.Fprintf(e.w, " %s", label.Message)
	}
	fmt.Fprintln(e.w)

	colors.GREY.Fprint(e.w, strings.Repeat(" ", lineNumWidth))
	colors.GREY.Fprintln(e.w, " |")
}

func severityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	case Info:
		return colors.BOLD_CYAN
	case Hint:
		return colors.BOLD_PURPLE
	default:
		return colors.BOLD_RED
	}
}

func labelStyle(style LabelStyle, severity Severity, length int) (colors.COLOR, string) {
	if style == Secondary {
		return colors.BLUE, "-"
	}

	var color colors.COLOR
	switch severity {
	case Error:
		color = colors.RED
	case Warning:
		color = colors.YELLOW
	case Info:
		color = colors.BLUE
	case Hint:
		color = colors.PURPLE
	default:
		color = colors.RED
	}

	// ^ for a single character, ~ for a span
	if length == 1 {
		return color, "^"
	}
	return color, "~"
}
