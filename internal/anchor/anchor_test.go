package anchor

import (
	"testing"

	"github.com/dshills/editmap/internal/textedit"
)

func seqOf(edits ...textedit.Edit) textedit.Sequence {
	return textedit.NewSequence(edits)
}

func replace(startLine, startCol, endLine, endCol int, text string) textedit.Edit {
	return textedit.Edit{
		Range: textedit.Range{
			Start: textedit.Pos(startLine, startCol),
			End:   textedit.Pos(endLine, endCol),
		},
		Text: text,
	}
}

func TestAnchorTransform(t *testing.T) {
	// "abcdef": replace "cd" with "XYZ".
	seq := seqOf(replace(1, 3, 1, 5, "XYZ"))

	tests := []struct {
		name   string
		anchor Anchor
		want   textedit.Position
	}{
		{"before edit", New(textedit.Pos(1, 2), BiasLeft), textedit.Pos(1, 2)},
		{"after edit shifts", New(textedit.Pos(1, 6), BiasLeft), textedit.Pos(1, 7)},
		{"inside edit, left bias", New(textedit.Pos(1, 4), BiasLeft), textedit.Pos(1, 3)},
		{"inside edit, right bias", New(textedit.Pos(1, 4), BiasRight), textedit.Pos(1, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.anchor.Transform(seq)
			if got.Pos != tt.want {
				t.Errorf("Transform = %s, want %s", got.Pos, tt.want)
			}
			if got.Bias != tt.anchor.Bias {
				t.Errorf("Transform changed bias to %s", got.Bias)
			}
		})
	}
}

func TestSelectionTransform(t *testing.T) {
	seq := seqOf(replace(1, 3, 1, 5, "XYZ"))

	t.Run("selection outside the edit shifts as a unit", func(t *testing.T) {
		sel := NewSelection(textedit.Pos(1, 5), textedit.Pos(1, 7))
		got := sel.Transform(seq)
		if got.Anchor != textedit.Pos(1, 6) || got.Head != textedit.Pos(1, 8) {
			t.Errorf("Transform = %s..%s, want (1:6)..(1:8)", got.Anchor, got.Head)
		}
	})

	t.Run("selection spanning the edit brackets the replacement", func(t *testing.T) {
		sel := NewSelection(textedit.Pos(1, 4), textedit.Pos(1, 4))
		got := sel.Transform(seq)
		if got.Anchor != textedit.Pos(1, 3) || got.Head != textedit.Pos(1, 6) {
			t.Errorf("Transform = %s..%s, want (1:3)..(1:6)", got.Anchor, got.Head)
		}
	})

	t.Run("backward selection keeps its direction", func(t *testing.T) {
		sel := NewSelection(textedit.Pos(1, 7), textedit.Pos(1, 2))
		got := sel.Transform(seq)
		if got.IsForward() {
			t.Error("backward selection became forward")
		}
		if got.Anchor != textedit.Pos(1, 8) || got.Head != textedit.Pos(1, 2) {
			t.Errorf("Transform = %s..%s, want (1:8)..(1:2)", got.Anchor, got.Head)
		}
	})
}

func TestSelectionRange(t *testing.T) {
	forward := NewSelection(textedit.Pos(1, 2), textedit.Pos(1, 5))
	backward := NewSelection(textedit.Pos(1, 5), textedit.Pos(1, 2))

	want := textedit.Range{Start: textedit.Pos(1, 2), End: textedit.Pos(1, 5)}
	if forward.Range() != want {
		t.Errorf("forward Range = %s, want %s", forward.Range(), want)
	}
	if backward.Range() != want {
		t.Errorf("backward Range = %s, want %s", backward.Range(), want)
	}
	if !NewCursor(textedit.Pos(2, 2)).IsEmpty() {
		t.Error("cursor selection must be empty")
	}
}

func TestSetTransform(t *testing.T) {
	set := NewSet()
	before := set.Add(New(textedit.Pos(1, 1), BiasLeft))
	inside := set.Add(New(textedit.Pos(1, 4), BiasRight))
	after := set.Add(New(textedit.Pos(1, 6), BiasLeft))

	if set.Len() != 3 {
		t.Fatalf("Len = %d, want 3", set.Len())
	}

	set.Transform(seqOf(replace(1, 3, 1, 5, "XYZ")))

	wantPositions := map[ID]textedit.Position{
		before: textedit.Pos(1, 1),
		inside: textedit.Pos(1, 6),
		after:  textedit.Pos(1, 7),
	}
	got := set.Positions()
	for id, want := range wantPositions {
		if got[id] != want {
			t.Errorf("anchor %s = %s, want %s", id, got[id], want)
		}
	}

	set.Remove(inside)
	if _, ok := set.Get(inside); ok {
		t.Error("Get returned a removed anchor")
	}
	if set.Len() != 2 {
		t.Errorf("Len after Remove = %d, want 2", set.Len())
	}
}
