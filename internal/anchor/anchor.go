package anchor

import (
	"fmt"

	"github.com/dshills/editmap/internal/textedit"
)

// Bias determines where an anchor lands when an edit rewrites the span
// it sits inside.
type Bias uint8

const (
	// BiasLeft moves the anchor to the start of the replacement.
	BiasLeft Bias = iota

	// BiasRight moves the anchor to the end of the replacement.
	BiasRight
)

// String returns a human-readable representation of the bias.
func (b Bias) String() string {
	switch b {
	case BiasLeft:
		return "left"
	case BiasRight:
		return "right"
	default:
		return "unknown"
	}
}

// Anchor is a position that can be relocated through edit sequences.
// Anchor is an immutable value type.
type Anchor struct {
	Pos  textedit.Position
	Bias Bias
}

// New creates an anchor at p with the given bias.
func New(p textedit.Position, bias Bias) Anchor {
	return Anchor{Pos: p, Bias: bias}
}

// String returns a human-readable representation of the anchor.
func (a Anchor) String() string {
	return fmt.Sprintf("%s/%s", a.Pos, a.Bias)
}

// Transform relocates the anchor through seq. An anchor outside every
// rewritten span shifts to its unique image; an anchor inside one
// collapses to the start or end of that edit's replacement according to
// its bias.
func (a Anchor) Transform(seq textedit.Sequence) Anchor {
	m := seq.MapPosition(a.Pos)
	if p, ok := m.Point(); ok {
		return Anchor{Pos: p, Bias: a.Bias}
	}
	if a.Bias == BiasRight {
		return Anchor{Pos: m.End(), Bias: a.Bias}
	}
	return Anchor{Pos: m.Start(), Bias: a.Bias}
}

// Selection represents a span of selected text in the anchor/head
// model. Anchor is where the selection started; Head is the cursor.
// When Anchor == Head the selection is just a cursor. Selection is an
// immutable value type.
type Selection struct {
	Anchor textedit.Position
	Head   textedit.Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head textedit.Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursor creates a selection representing just a cursor.
func NewCursor(p textedit.Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// IsForward returns true if the head is at or after the anchor.
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// Range returns the selection as an ordered range.
func (s Selection) Range() textedit.Range {
	if s.IsForward() {
		return textedit.Range{Start: s.Anchor, End: s.Head}
	}
	return textedit.Range{Start: s.Head, End: s.Anchor}
}

// Transform relocates both ends of the selection through seq. The
// anchor end biases left and the head biases right, so a selection
// whose interior is rewritten still brackets the replacement text.
// Direction is preserved.
func (s Selection) Transform(seq textedit.Sequence) Selection {
	anchorBias, headBias := BiasLeft, BiasRight
	if !s.IsForward() {
		anchorBias, headBias = BiasRight, BiasLeft
	}
	return Selection{
		Anchor: Anchor{Pos: s.Anchor, Bias: anchorBias}.Transform(seq).Pos,
		Head:   Anchor{Pos: s.Head, Bias: headBias}.Transform(seq).Pos,
	}
}
