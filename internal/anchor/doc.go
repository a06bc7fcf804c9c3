// Package anchor relocates positions that must survive edits: cursors,
// selections, diagnostics, decorations, bookmarks.
//
// An Anchor is a position plus a Bias. When an edit sequence rewrites
// the span an anchor sits inside, the anchor has no unique new
// location; the bias decides whether it lands at the start (BiasLeft)
// or the end (BiasRight) of the replacement. Anchors outside every
// rewritten span simply shift.
//
// A Selection is a pair of anchors in the anchor/head model: the anchor
// end stays where the selection started, the head is where the cursor
// is. Both ends relocate independently, preserving direction.
//
// A Set is a registry of named anchors that relocate together, keyed by
// generated IDs, for callers that track many decorations against one
// document.
package anchor
