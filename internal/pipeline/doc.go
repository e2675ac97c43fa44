// Package pipeline implements the markdown-to-index generation pipeline.
//
// This package handles the three stages between document content and the
// rendered page:
//   - Section extraction (lines between the marker heading and the next heading)
//   - List parsing (the fixed "* [title](url) - description" bullet grammar)
//   - HTML rendering (fixed boilerplate around escaped list entries)
//
// Orchestration and the public API live in the root genindex package; this
// separation keeps each stage independently testable behind a small interface.
package pipeline
