package transpile

import "strings"

// Result is returned by RsToTs.
//
// The main program logic lands in MainLines. To run it, TypeScript needs
// some extra code around it:
//   - MainSectionBegins/Ends, which wrap MainLines
//   - PolyfillSectionBegins/Ends, which wrap PolyfillLines
//   - TypeLines, which declare enums, interfaces and other types
type Result struct {
	// Errors is empty when transpilation succeeded.
	Errors []Error
	// MainLines holds lines of TypeScript code.
	MainLines []string
	// MainSectionBegins is added before main, typically ";r$t$();".
	MainSectionBegins string
	// MainSectionEnds is added after main.
	MainSectionEnds string
	// PolyfillLines hold code like
	// "String.prototype.len=function(){return this.length}".
	PolyfillLines []string
	// PolyfillSectionBegins is typically ";function r$t$(){".
	PolyfillSectionBegins string
	// PolyfillSectionEnds is typically "};".
	PolyfillSectionEnds string
	// TypeLines hold code like "interface String { len(): Number }".
	TypeLines []string
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{}
}

// PushConfigNotImplementedError records a CONFIG_NOT_IMPLEMENTED Error.
func (r *Result) PushConfigNotImplementedError(column, lineNumber int, message string) *Result {
	r.Errors = append(r.Errors, Error{
		Kind:       CONFIG_NOT_IMPLEMENTED,
		LineNumber: lineNumber,
		Column:     column,
		Message:    message,
	})
	return r
}

// PushMainLine appends a line of TypeScript to MainLines.
func (r *Result) PushMainLine(line string) *Result {
	r.MainLines = append(r.MainLines, line)
	return r
}

// String concatenates the Result, ready to run as standalone TypeScript.
func (r *Result) String() string {
	var out strings.Builder

	out.WriteString(r.MainSectionBegins)
	for _, line := range r.MainLines {
		out.WriteString(line)
	}
	out.WriteString(r.MainSectionEnds)

	for _, line := range r.TypeLines {
		out.WriteString(line)
	}

	out.WriteString(r.PolyfillSectionBegins)
	for _, line := range r.PolyfillLines {
		out.WriteString(line)
	}
	out.WriteString(r.PolyfillSectionEnds)

	return out.String()
}
