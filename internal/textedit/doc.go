// Package textedit computes how positions and ranges in a document move
// when an ordered sequence of text replacements is applied to it.
//
// The central type is Sequence: an immutable, ordered, non-overlapping
// list of edits expressed in the coordinates of the document they apply
// to. A Sequence answers four questions:
//
//   - MapPosition / MapRange: where does an original location land in
//     the edited document?
//   - NewRanges: what range does each edit's replacement text occupy in
//     the edited document?
//   - Reverse: which edit sequence turns the edited document back into
//     the original?
//   - Apply: what is the full edited text?
//
// All answers come from the same single-pass delta-accumulation walk
// over the edit list, so mapping a position is O(number of edits) with
// no precomputed search structure.
//
// # Coordinates
//
// Positions are 1-based line/column pairs. Columns are measured in
// bytes from the start of the line. Ranges are half-open: Start is
// inclusive, End is exclusive.
//
// # Documents
//
// Reverse and Apply need to read spans of the original text. They
// depend only on the small Document interface; any storage shape
// (contiguous string, rope, piece table) can back it. The document
// package provides ready-made implementations.
//
// # Preconditions
//
// A Sequence trusts its caller to supply edits sorted ascending by
// range and pairwise non-overlapping; NewSequence does not check this.
// Use Validate or NewSequenceStrict when the edit list comes from an
// untrusted producer.
//
// # Thread Safety
//
// Every type in this package is an immutable value. A Sequence and its
// edits are never mutated after construction, so they may be queried
// from any number of goroutines concurrently, provided the Document
// implementation is itself safe for concurrent reads.
package textedit
