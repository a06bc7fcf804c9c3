package textedit

import "fmt"

// Range represents a span of text from Start (inclusive) to End
// (exclusive).
type Range struct {
	Start Position
	End   Position
}

// RangeFromPositions builds a Range from two ordered positions.
// A reversed pair means the caller's coordinate arithmetic is corrupted
// (for example a mis-sorted or overlapping edit list feeding back bad
// deltas); that is a programming defect, not bad input, so this panics
// rather than clamping or returning an error.
func RangeFromPositions(start, end Position) Range {
	if end.Before(start) {
		panic(fmt.Sprintf("textedit: invalid range: end %s before start %s", end, start))
	}
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if the range covers no text.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range starts and ends on one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Contains returns true if the position falls inside the range.
// The start is inclusive, the end exclusive.
func (r Range) Contains(p Position) bool {
	return !p.Before(r.Start) && p.Before(r.End)
}

// Overlaps returns true if the two ranges share at least one position.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}
