package textedit

import "fmt"

// Position is a line and column location in a document.
// Both Line and Column are 1-based. Column is measured in bytes from
// the start of the line. Position is an immutable value type.
type Position struct {
	Line   int
	Column int
}

// Pos creates a Position from a 1-based line and column.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions are ordered by line, then column.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// BeforeOrEqual returns true if p comes before or equals other.
func (p Position) BeforeOrEqual(other Position) bool {
	return p.Compare(other) <= 0
}

// After returns true if p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Equal returns true if p and other are the same position.
func (p Position) Equal(other Position) bool {
	return p == other
}
