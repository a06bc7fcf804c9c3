// Package patch encodes and decodes edit lists and mapping results as
// JSON, the interchange format of the editmap CLI.
//
// The edit list schema is an array of objects:
//
//	[{"range": {"start": {"line": 1, "column": 2},
//	            "end":   {"line": 1, "column": 3}},
//	  "text": "replacement"}]
//
// Lines and columns are 1-based, ranges end-exclusive, matching the
// textedit package.
package patch

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/editmap/internal/textedit"
)

// Errors returned by edit-list parsing.
var (
	// ErrInvalidJSON indicates input that is not well-formed JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMalformedEdit indicates a structurally incomplete edit entry.
	ErrMalformedEdit = errors.New("malformed edit")
)

// ParseEdits decodes a JSON edit list. The edits are returned in
// document order as given; ordering and overlap are the caller's
// concern (validate with textedit.Sequence.Validate when the producer
// is untrusted).
func ParseEdits(data []byte) ([]textedit.Edit, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("%w: top-level value must be an array", ErrMalformedEdit)
	}

	var edits []textedit.Edit
	var parseErr error
	root.ForEach(func(key, value gjson.Result) bool {
		edit, err := parseEdit(value)
		if err != nil {
			parseErr = fmt.Errorf("edit %s: %w", key.Raw, err)
			return false
		}
		edits = append(edits, edit)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return edits, nil
}

func parseEdit(v gjson.Result) (textedit.Edit, error) {
	start, err := parsePosition(v.Get("range.start"))
	if err != nil {
		return textedit.Edit{}, fmt.Errorf("range.start: %w", err)
	}
	end, err := parsePosition(v.Get("range.end"))
	if err != nil {
		return textedit.Edit{}, fmt.Errorf("range.end: %w", err)
	}
	if end.Before(start) {
		return textedit.Edit{}, fmt.Errorf("%w: range end %s before start %s", ErrMalformedEdit, end, start)
	}
	text := v.Get("text")
	if !text.Exists() {
		return textedit.Edit{}, fmt.Errorf("%w: missing text", ErrMalformedEdit)
	}
	return textedit.Edit{
		Range: textedit.Range{Start: start, End: end},
		Text:  text.String(),
	}, nil
}

func parsePosition(v gjson.Result) (textedit.Position, error) {
	line := v.Get("line")
	column := v.Get("column")
	if !line.Exists() || !column.Exists() {
		return textedit.Position{}, fmt.Errorf("%w: missing line or column", ErrMalformedEdit)
	}
	if line.Int() < 1 || column.Int() < 1 {
		return textedit.Position{}, fmt.Errorf("%w: line and column are 1-based", ErrMalformedEdit)
	}
	return textedit.Position{
		Line:   int(line.Int()),
		Column: int(column.Int()),
	}, nil
}

// MarshalEdits encodes an edit list in the schema ParseEdits reads.
func MarshalEdits(edits []textedit.Edit) ([]byte, error) {
	out := []byte("[]")
	var err error
	for i, e := range edits {
		prefix := strconv.Itoa(i)
		if out, err = setRange(out, prefix+".range", e.Range); err != nil {
			return nil, err
		}
		if out, err = sjson.SetBytes(out, prefix+".text", e.Text); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalRanges encodes a range list, e.g. the result of NewRanges.
func MarshalRanges(ranges []textedit.Range) ([]byte, error) {
	out := []byte("[]")
	var err error
	for i, r := range ranges {
		if out, err = setRange(out, strconv.Itoa(i), r); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// MarshalMapped encodes a mapping result as a tagged object:
// {"kind":"point","position":{...}} or {"kind":"span","range":{...}}.
func MarshalMapped(m textedit.Mapped) ([]byte, error) {
	if r, ok := m.Span(); ok {
		out, err := sjson.SetBytes([]byte("{}"), "kind", "span")
		if err != nil {
			return nil, err
		}
		return setRange(out, "range", r)
	}
	out, err := sjson.SetBytes([]byte("{}"), "kind", "point")
	if err != nil {
		return nil, err
	}
	p, _ := m.Point()
	return setPosition(out, "position", p)
}

func setRange(out []byte, path string, r textedit.Range) ([]byte, error) {
	out, err := setPosition(out, path+".start", r.Start)
	if err != nil {
		return nil, err
	}
	return setPosition(out, path+".end", r.End)
}

func setPosition(out []byte, path string, p textedit.Position) ([]byte, error) {
	out, err := sjson.SetBytes(out, path+".line", p.Line)
	if err != nil {
		return nil, err
	}
	return sjson.SetBytes(out, path+".column", p.Column)
}
