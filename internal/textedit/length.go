package textedit

import "fmt"

// TextLength measures how far a string advances a cursor: the number of
// lines it spans and the width of its last line. It acts as a
// translation vector for positions across an edit boundary.
//
// LineCount is 1 plus the number of newlines in the text.
// LastLineColumn is 1 plus the byte length of the text after the last
// newline (the full length when there is none). Both are therefore
// always at least 1; the zero-advance length, LengthOf(""), is {1, 1}.
type TextLength struct {
	LineCount      int
	LastLineColumn int
}

// LengthOf measures text in a single scan.
func LengthOf(text string) TextLength {
	lineCount := 1
	lastLineStart := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineCount++
			lastLineStart = i + 1
		}
	}
	return TextLength{
		LineCount:      lineCount,
		LastLineColumn: len(text) - lastLineStart + 1,
	}
}

// String returns a human-readable representation of the length.
func (l TextLength) String() string {
	return fmt.Sprintf("%d lines, last col %d", l.LineCount, l.LastLineColumn)
}

// IsSingleLine returns true if the measured text contained no newline.
func (l TextLength) IsSingleLine() bool {
	return l.LineCount == 1
}

// AddToPosition returns the position reached by typing text of this
// length starting at p. Single-line text advances the column on the
// same line; multi-line text advances the line and lands at the
// absolute column of its last line.
func (l TextLength) AddToPosition(p Position) Position {
	if l.LineCount == 1 {
		return Position{Line: p.Line, Column: p.Column + l.LastLineColumn - 1}
	}
	return Position{Line: p.Line + l.LineCount - 1, Column: l.LastLineColumn}
}
