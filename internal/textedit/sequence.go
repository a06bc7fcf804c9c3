package textedit

import "strings"

// Document is a read-only view of the text a Sequence applies to.
// Reverse and Apply read unedited spans through it. Implementations may
// back it with any storage shape; the sequence algorithms depend only
// on these two operations. Slices are addressed with 1-based, end-
// exclusive coordinates.
type Document interface {
	// Slice returns exactly the original text covered by r.
	Slice(r Range) string

	// End returns the exclusive end position of the document: one
	// column past the last character of the last line.
	End() Position
}

// Sequence is an ordered list of non-overlapping edits, all expressed
// in the coordinates of the original document. It is immutable after
// construction; every derived value (mapped positions, new ranges, the
// reverse sequence) is computed fresh and never mutates the receiver.
type Sequence struct {
	edits []Edit
}

// NewSequence creates a Sequence from edits sorted ascending by range
// and pairwise non-overlapping. The precondition is trusted, not
// checked; see Validate and NewSequenceStrict for producers that cannot
// guarantee it. The slice is copied.
func NewSequence(edits []Edit) Sequence {
	if len(edits) == 0 {
		return Sequence{}
	}
	own := make([]Edit, len(edits))
	copy(own, edits)
	return Sequence{edits: own}
}

// NewSequenceStrict is NewSequence plus Validate.
func NewSequenceStrict(edits []Edit) (Sequence, error) {
	s := NewSequence(edits)
	if err := s.Validate(); err != nil {
		return Sequence{}, err
	}
	return s, nil
}

// Validate checks the ordering precondition: each edit's range must be
// well-formed, and each edit must end at or before the next one starts.
func (s Sequence) Validate() error {
	for i, e := range s.edits {
		if e.Range.End.Before(e.Range.Start) {
			return ErrRangeInvalid
		}
		if i > 0 && s.edits[i-1].Range.End.After(e.Range.Start) {
			return ErrEditsOverlap
		}
	}
	return nil
}

// Edits returns a copy of the edit list.
func (s Sequence) Edits() []Edit {
	if len(s.edits) == 0 {
		return nil
	}
	out := make([]Edit, len(s.edits))
	copy(out, s.edits)
	return out
}

// Len returns the number of edits.
func (s Sequence) Len() int {
	return len(s.edits)
}

// Empty returns true if the sequence contains no edits.
func (s Sequence) Empty() bool {
	return len(s.edits) == 0
}

// mapState is the fold state of the delta-accumulation walk: the net
// line shift introduced by every edit folded so far, and the net column
// shift, which is only meaningful for positions landing on curLine (the
// post-edit line of the last folded edit's end). Plain local state,
// fully reentrant.
type mapState struct {
	lineDelta   int
	columnDelta int
	curLine     int
}

// shift translates an original position by the accumulated deltas.
// The column delta applies only when the shifted line is the line the
// delta was accumulated on; later lines keep their column.
func (st mapState) shift(p Position) Position {
	line := p.Line + st.lineDelta
	column := p.Column
	if line == st.curLine {
		column += st.columnDelta
	}
	return Position{Line: line, Column: column}
}

// fold absorbs one edit into the state and returns the edit's post-edit
// range: its translated start advanced by the length of its replacement
// text. The new deltas are the difference between that translated end
// and the edit's original end.
func (st *mapState) fold(e Edit) Range {
	start := st.shift(e.Range.Start)
	end := LengthOf(e.Text).AddToPosition(start)
	st.lineDelta = end.Line - e.Range.End.Line
	st.columnDelta = end.Column - e.Range.End.Column
	st.curLine = end.Line
	return RangeFromPositions(start, end)
}

// MapPosition maps a position in original coordinates to its location
// in the edited document. A position outside every edit maps to a
// point; a position inside a rewritten span maps to that edit's entire
// post-edit range, since the original point no longer has a unique
// image there.
func (s Sequence) MapPosition(p Position) Mapped {
	var st mapState
	for _, e := range s.edits {
		if p.Before(e.Range.Start) || (p == e.Range.Start && e.Range.IsEmpty()) {
			// p precedes this edit and every later one. A position at
			// an insertion point is outside the (empty) rewritten span;
			// at a non-empty edit's start it is inside, since ranges
			// include their start.
			break
		}
		if p.Before(e.Range.End) {
			return MappedSpan(st.fold(e))
		}
		st.fold(e)
	}
	return MappedPoint(st.shift(p))
}

// MapRange maps a range in original coordinates to the edited document.
// Both endpoints are mapped independently; the result spans from the
// start extremity of the mapped start to the end extremity of the
// mapped end, so endpoints inside a rewritten span widen to that edit's
// new range.
func (s Sequence) MapRange(r Range) Range {
	start := s.MapPosition(r.Start).Start()
	end := s.MapPosition(r.End).End()
	return RangeFromPositions(start, end)
}

// NewRanges returns the post-edit range of each edit, in the same order
// as the edit list: ascending and pairwise non-overlapping.
func (s Sequence) NewRanges() []Range {
	if len(s.edits) == 0 {
		return nil
	}
	ranges := make([]Range, len(s.edits))
	var st mapState
	for i, e := range s.edits {
		ranges[i] = st.fold(e)
	}
	return ranges
}

// Reverse derives the inverse sequence: one edit per original edit,
// located at its post-edit range and restoring the text the original
// edit replaced. Applying the result to the edited document
// reconstructs the original. The document supplies the replaced text.
func (s Sequence) Reverse(doc Document) Sequence {
	if len(s.edits) == 0 {
		return Sequence{}
	}
	newRanges := s.NewRanges()
	inverted := make([]Edit, len(s.edits))
	for i, e := range s.edits {
		inverted[i] = Edit{Range: newRanges[i], Text: doc.Slice(e.Range)}
	}
	return Sequence{edits: inverted}
}

// ReverseMapPosition maps a position in post-edit coordinates back to
// the original document: it builds the reverse sequence and forward-
// maps through it. The document is the original (pre-edit) text.
func (s Sequence) ReverseMapPosition(p Position, doc Document) Mapped {
	return s.Reverse(doc).MapPosition(p)
}

// ReverseMapRange maps a range in post-edit coordinates back to the
// original document.
func (s Sequence) ReverseMapRange(r Range, doc Document) Range {
	return s.Reverse(doc).MapRange(r)
}

// Apply synthesizes the full edited text: the unedited spans between
// consecutive edits, read from the document, interleaved with each
// edit's replacement text. Empty spans are skipped without touching the
// document.
func (s Sequence) Apply(doc Document) string {
	var sb strings.Builder
	pos := Position{Line: 1, Column: 1}
	for _, e := range s.edits {
		if pos.Before(e.Range.Start) {
			sb.WriteString(doc.Slice(RangeFromPositions(pos, e.Range.Start)))
		}
		sb.WriteString(e.Text)
		pos = e.Range.End
	}
	if end := doc.End(); pos.Before(end) {
		sb.WriteString(doc.Slice(RangeFromPositions(pos, end)))
	}
	return sb.String()
}
