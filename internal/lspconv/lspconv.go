// Package lspconv bridges LSP coordinates and textedit coordinates.
//
// The Language Server Protocol addresses text with 0-based lines and
// columns counted in UTF-16 code units; textedit uses 1-based lines and
// byte columns. Conversion therefore needs the content of the addressed
// line, supplied through the LineSource interface (document.Lines and
// document.Text both satisfy it).
package lspconv

import (
	"fmt"
	"sort"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dshills/editmap/internal/textedit"
)

// LineSource provides the per-line content needed for UTF-16/byte
// column conversion.
type LineSource interface {
	// Line returns the 1-based line's text without its newline.
	Line(line int) string

	// LineCount returns the number of lines.
	LineCount() int
}

// FromPosition converts an LSP position to a textedit position, using
// src to resolve the UTF-16 column against line content. Addresses past
// the last line (some servers emit the exclusive end of the document as
// line == line count) clamp to the last line, as the column already
// clamps to the line end.
func FromPosition(src LineSource, p protocol.Position) textedit.Position {
	line := int(p.Line) + 1
	if last := src.LineCount(); line > last {
		line = last
	}
	return textedit.Position{
		Line:   line,
		Column: utf16ToByte(src.Line(line), int(p.Character)) + 1,
	}
}

// ToPosition converts a textedit position to an LSP position.
func ToPosition(src LineSource, p textedit.Position) protocol.Position {
	return protocol.Position{
		Line:      uint32(p.Line - 1),
		Character: uint32(byteToUTF16(src.Line(p.Line), p.Column-1)),
	}
}

// FromRange converts an LSP range to a textedit range.
func FromRange(src LineSource, r protocol.Range) textedit.Range {
	return textedit.RangeFromPositions(
		FromPosition(src, r.Start),
		FromPosition(src, r.End),
	)
}

// ToRange converts a textedit range to an LSP range.
func ToRange(src LineSource, r textedit.Range) protocol.Range {
	return protocol.Range{
		Start: ToPosition(src, r.Start),
		End:   ToPosition(src, r.End),
	}
}

// SequenceFromTextEdits converts a workspace-edit style list of LSP
// text edits into a Sequence. LSP edit lists carry no ordering
// guarantee, so the converted edits are sorted ascending by range and
// then validated; overlapping edits are rejected.
func SequenceFromTextEdits(src LineSource, edits []protocol.TextEdit) (textedit.Sequence, error) {
	converted := make([]textedit.Edit, len(edits))
	for i, e := range edits {
		converted[i] = textedit.Edit{
			Range: FromRange(src, e.Range),
			Text:  e.NewText,
		}
	}
	sort.SliceStable(converted, func(i, j int) bool {
		return converted[i].Range.Start.Before(converted[j].Range.Start)
	})
	seq, err := textedit.NewSequenceStrict(converted)
	if err != nil {
		return textedit.Sequence{}, fmt.Errorf("converting LSP edits: %w", err)
	}
	return seq, nil
}

// MapRange remaps an LSP range (a diagnostic, a highlight) through seq.
// pre resolves columns in the original document, post in the edited
// one.
func MapRange(pre, post LineSource, seq textedit.Sequence, r protocol.Range) protocol.Range {
	return ToRange(post, seq.MapRange(FromRange(pre, r)))
}

// utf16ToByte converts a UTF-16 code unit offset within a line to a
// byte offset.
func utf16ToByte(line string, utf16Off int) int {
	if utf16Off <= 0 {
		return 0
	}
	units := 0
	for i, r := range line {
		if units >= utf16Off {
			return i
		}
		if r >= 0x10000 {
			units += 2 // surrogate pair
		} else {
			units++
		}
	}
	return len(line)
}

// byteToUTF16 converts a byte offset within a line to a UTF-16 code
// unit offset.
func byteToUTF16(line string, byteOff int) int {
	if byteOff <= 0 {
		return 0
	}
	units := 0
	for i, r := range line {
		if i >= byteOff {
			break
		}
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return units
}
