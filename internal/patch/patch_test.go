package patch

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"

	"github.com/dshills/editmap/internal/textedit"
)

func TestParseEdits(t *testing.T) {
	input := []byte(`[
		{"range": {"start": {"line": 1, "column": 2},
		           "end":   {"line": 1, "column": 3}},
		 "text": "X"},
		{"range": {"start": {"line": 2, "column": 1},
		           "end":   {"line": 3, "column": 1}},
		 "text": ""}
	]`)

	got, err := ParseEdits(input)
	if err != nil {
		t.Fatalf("ParseEdits: %v", err)
	}
	want := []textedit.Edit{
		{
			Range: textedit.Range{Start: textedit.Pos(1, 2), End: textedit.Pos(1, 3)},
			Text:  "X",
		},
		{
			Range: textedit.Range{Start: textedit.Pos(2, 1), End: textedit.Pos(3, 1)},
			Text:  "",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("edits mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEditsEmptyList(t *testing.T) {
	got, err := ParseEdits([]byte(`[]`))
	if err != nil {
		t.Fatalf("ParseEdits: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("edit count = %d, want 0", len(got))
	}
}

func TestParseEditsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"not JSON", `{`, ErrInvalidJSON},
		{"not an array", `{"range": {}}`, ErrMalformedEdit},
		{"missing range", `[{"text": "X"}]`, ErrMalformedEdit},
		{"missing text", `[{"range": {"start": {"line": 1, "column": 1}, "end": {"line": 1, "column": 2}}}]`, ErrMalformedEdit},
		{"zero-based position", `[{"range": {"start": {"line": 0, "column": 1}, "end": {"line": 1, "column": 1}}, "text": ""}]`, ErrMalformedEdit},
		{"inverted range", `[{"range": {"start": {"line": 2, "column": 1}, "end": {"line": 1, "column": 1}}, "text": ""}]`, ErrMalformedEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEdits([]byte(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMarshalEditsRoundTrip(t *testing.T) {
	edits := []textedit.Edit{
		{
			Range: textedit.Range{Start: textedit.Pos(1, 2), End: textedit.Pos(1, 4)},
			Text:  "a\nb",
		},
		{
			Range: textedit.Range{Start: textedit.Pos(2, 1), End: textedit.Pos(2, 1)},
			Text:  "ins",
		},
	}

	data, err := MarshalEdits(edits)
	if err != nil {
		t.Fatalf("MarshalEdits: %v", err)
	}
	back, err := ParseEdits(data)
	if err != nil {
		t.Fatalf("ParseEdits: %v", err)
	}
	if diff := cmp.Diff(edits, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalRanges(t *testing.T) {
	ranges := []textedit.Range{
		{Start: textedit.Pos(1, 2), End: textedit.Pos(1, 5)},
		{Start: textedit.Pos(3, 1), End: textedit.Pos(4, 1)},
	}

	data, err := MarshalRanges(ranges)
	if err != nil {
		t.Fatalf("MarshalRanges: %v", err)
	}
	doc := gjson.ParseBytes(data)
	if n := len(doc.Array()); n != 2 {
		t.Fatalf("array length = %d, want 2", n)
	}
	if got := doc.Get("1.end.line").Int(); got != 4 {
		t.Errorf("ranges[1].end.line = %d, want 4", got)
	}
	if got := doc.Get("0.start.column").Int(); got != 2 {
		t.Errorf("ranges[0].start.column = %d, want 2", got)
	}
}

func TestMarshalMapped(t *testing.T) {
	t.Run("point", func(t *testing.T) {
		data, err := MarshalMapped(textedit.MappedPoint(textedit.Pos(2, 5)))
		if err != nil {
			t.Fatalf("MarshalMapped: %v", err)
		}
		doc := gjson.ParseBytes(data)
		if kind := doc.Get("kind").String(); kind != "point" {
			t.Errorf("kind = %q, want %q", kind, "point")
		}
		if line := doc.Get("position.line").Int(); line != 2 {
			t.Errorf("position.line = %d, want 2", line)
		}
		if doc.Get("range").Exists() {
			t.Error("point result must not carry a range")
		}
	})

	t.Run("span", func(t *testing.T) {
		r := textedit.Range{Start: textedit.Pos(1, 2), End: textedit.Pos(1, 6)}
		data, err := MarshalMapped(textedit.MappedSpan(r))
		if err != nil {
			t.Fatalf("MarshalMapped: %v", err)
		}
		doc := gjson.ParseBytes(data)
		if kind := doc.Get("kind").String(); kind != "span" {
			t.Errorf("kind = %q, want %q", kind, "span")
		}
		if col := doc.Get("range.end.column").Int(); col != 6 {
			t.Errorf("range.end.column = %d, want 6", col)
		}
	})
}
