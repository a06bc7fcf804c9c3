package textedit

import "errors"

// Errors returned by sequence validation.
var (
	// ErrRangeInvalid indicates an edit range whose end precedes its start.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrEditsOverlap indicates edits that overlap or are not sorted ascending.
	ErrEditsOverlap = errors.New("edits overlap or are not sorted")
)
