package document

import "github.com/dshills/editmap/internal/textedit"

// Text is a document backed by a contiguous string. Construction scans
// the string once to index line starts, so slicing and position/offset
// conversion are direct substring operations afterwards.
type Text struct {
	content string
	starts  []int // byte offset of each line start
}

// NewText creates a document over content.
func NewText(content string) *Text {
	starts := make([]int, 1, 16)
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Text{content: content, starts: starts}
}

// String returns the full document text.
func (t *Text) String() string {
	return t.content
}

// LineCount returns the number of lines (newlines + 1).
func (t *Text) LineCount() int {
	return len(t.starts)
}

// Line returns the text of the 1-based line, without its newline.
func (t *Text) Line(line int) string {
	start := t.starts[line-1]
	if line < len(t.starts) {
		return t.content[start : t.starts[line]-1]
	}
	return t.content[start:]
}

// Offset converts a position to a byte offset into the content.
func (t *Text) Offset(p textedit.Position) int {
	return t.starts[p.Line-1] + p.Column - 1
}

// Slice implements textedit.Document.
func (t *Text) Slice(r textedit.Range) string {
	return t.content[t.Offset(r.Start):t.Offset(r.End)]
}

// End implements textedit.Document.
func (t *Text) End() textedit.Position {
	last := len(t.starts)
	return textedit.Position{
		Line:   last,
		Column: len(t.content) - t.starts[last-1] + 1,
	}
}
