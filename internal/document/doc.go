// Package document provides ready-made implementations of the
// textedit.Document interface.
//
// Two backings are included:
//
//   - Lines adapts any line-based accessor (a line count plus a
//     function returning one line of text) without copying the
//     underlying storage.
//   - Text wraps a contiguous string and precomputes a newline index
//     so slicing is a direct substring operation.
//
// Both are read-only after construction and safe for concurrent use,
// provided the accessor behind Lines is itself safe.
package document
