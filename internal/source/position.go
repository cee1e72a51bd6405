package source

// Position is a point in a source file, for diagnostic rendering.
// Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
}

// Location is a span between two positions. End may be nil for a
// single-point location.
type Location struct {
	Start *Position
	End   *Position
}

// NewLocation builds a single-line Location from a 0-based line and
// column, plus a width in bytes. Lexemes track 0-based coordinates, and
// diagnostics render 1-based ones.
func NewLocation(lineNumber, column, width int) *Location {
	if width < 1 {
		width = 1
	}
	return &Location{
		Start: &Position{Line: lineNumber + 1, Column: column + 1},
		End:   &Position{Line: lineNumber + 1, Column: column + 1 + width},
	}
}
