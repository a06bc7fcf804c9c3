package textedit

// Mapped is the result of mapping a position through a Sequence.
// A position strictly outside every rewritten span has a unique image
// and maps to a single point. A position inside a rewritten span has no
// unique image, so it maps to the whole post-edit range of that edit.
//
// Callers branch on the two cases with the comma-ok accessors:
//
//	if p, ok := m.Point(); ok {
//		// unique image
//	} else if r, ok := m.Span(); ok {
//		// position fell inside an edit
//	}
//
// Start and End give the extremities regardless of kind, which is what
// range mapping needs.
type Mapped struct {
	span bool
	r    Range
}

// MappedPoint wraps a unique post-edit position.
func MappedPoint(p Position) Mapped {
	return Mapped{r: Range{Start: p, End: p}}
}

// MappedSpan wraps the post-edit range of the edit that swallowed the
// queried position.
func MappedSpan(r Range) Mapped {
	return Mapped{span: true, r: r}
}

// IsSpan returns true if the position mapped to a range.
func (m Mapped) IsSpan() bool {
	return m.span
}

// Point returns the mapped position and true when the result is a
// unique point.
func (m Mapped) Point() (Position, bool) {
	if m.span {
		return Position{}, false
	}
	return m.r.Start, true
}

// Span returns the mapped range and true when the queried position fell
// inside a rewritten span.
func (m Mapped) Span() (Range, bool) {
	if !m.span {
		return Range{}, false
	}
	return m.r, true
}

// Start returns the start extremity: the point itself, or the start of
// the span.
func (m Mapped) Start() Position {
	return m.r.Start
}

// End returns the end extremity: the point itself, or the end of the
// span.
func (m Mapped) End() Position {
	return m.r.End
}

// String returns a human-readable representation of the result.
func (m Mapped) String() string {
	if m.span {
		return m.r.String()
	}
	return m.r.Start.String()
}
