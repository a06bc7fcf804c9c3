package document

import (
	"strings"

	"github.com/dshills/editmap/internal/textedit"
)

// Lines adapts line-based random access to the textedit.Document
// interface. The accessor returns the 1-based line's text without its
// trailing newline; Lines joins partial and full lines with "\n" when
// slicing across lines.
type Lines struct {
	lineCount int
	lineAt    func(line int) string
}

// NewLines creates a document over lineCount lines served by lineAt.
func NewLines(lineCount int, lineAt func(line int) string) *Lines {
	if lineCount < 1 {
		panic("document: line count must be at least 1")
	}
	if lineAt == nil {
		panic("document: NewLines called with nil accessor")
	}
	return &Lines{lineCount: lineCount, lineAt: lineAt}
}

// NewLinesFromSlice creates a document over a slice of lines.
func NewLinesFromSlice(lines []string) *Lines {
	if len(lines) == 0 {
		lines = []string{""}
	}
	return NewLines(len(lines), func(line int) string {
		return lines[line-1]
	})
}

// LineCount returns the number of lines.
func (d *Lines) LineCount() int {
	return d.lineCount
}

// Line returns the text of the 1-based line, without its newline.
func (d *Lines) Line(line int) string {
	return d.lineAt(line)
}

// Slice implements textedit.Document.
func (d *Lines) Slice(r textedit.Range) string {
	if r.Start.Line == r.End.Line {
		line := d.lineAt(r.Start.Line)
		return line[r.Start.Column-1 : r.End.Column-1]
	}
	var sb strings.Builder
	sb.WriteString(d.lineAt(r.Start.Line)[r.Start.Column-1:])
	for line := r.Start.Line + 1; line < r.End.Line; line++ {
		sb.WriteByte('\n')
		sb.WriteString(d.lineAt(line))
	}
	sb.WriteByte('\n')
	sb.WriteString(d.lineAt(r.End.Line)[:r.End.Column-1])
	return sb.String()
}

// End implements textedit.Document: one column past the last character
// of the last line.
func (d *Lines) End() textedit.Position {
	return textedit.Position{
		Line:   d.lineCount,
		Column: len(d.lineAt(d.lineCount)) + 1,
	}
}
