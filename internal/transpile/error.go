package transpile

// ErrorKind is the broad category of a transpilation error.
type ErrorKind int

const (
	// CONFIG_NOT_IMPLEMENTED means the transpilation specified by the
	// Config is not currently implemented.
	CONFIG_NOT_IMPLEMENTED ErrorKind = iota
	// UNKNOWN_ERROR is the fallback, when no other kind fits.
	UNKNOWN_ERROR
)

func (k ErrorKind) String() string {
	switch k {
	case CONFIG_NOT_IMPLEMENTED:
		return "ConfigNotImplemented"
	case UNKNOWN_ERROR:
		return "UnknownError"
	default:
		return "UnknownError"
	}
}

// Error describes one problem found during transpilation. Many may be
// encountered while transpiling a given Rust program. They are recorded in
// the Errors slice of a Result rather than aborting the run.
type Error struct {
	// Kind is the broad category of the error.
	Kind ErrorKind
	// LineNumber is the zero-based line of the Rust code which caused the
	// error, or 0.
	LineNumber int
	// Column is the position within that line, or 0.
	Column int
	// Message is a short explanation, to help a developer debug.
	Message string
}
