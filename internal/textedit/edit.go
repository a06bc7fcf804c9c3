package textedit

import "fmt"

// Edit represents a single text replacement: the Range, in original
// document coordinates, is replaced by Text. Edit is an immutable
// value type.
type Edit struct {
	Range Range
	Text  string
}

// NewEdit creates an Edit replacing r with text.
func NewEdit(r Range, text string) Edit {
	return Edit{Range: r, Text: text}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(at Position, text string) Edit {
	return Edit{Range: Range{Start: at, End: at}, Text: text}
}

// NewDelete creates an Edit that removes the text in r.
func NewDelete(r Range) Edit {
	return Edit{Range: r}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%s, %q)", e.Range.Start, e.Text)
	}
	if e.Text == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.Text)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.Text != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.Text == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return !e.Range.IsEmpty() && e.Text != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.Text == ""
}
