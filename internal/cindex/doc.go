// Package cindex binds the extractor to libclang.
//
// It exposes the parsed declaration tree behind the Node interface so
// the extraction logic never touches clang cursors directly. The
// provider guarantees the extractor relies on:
//   - typedef, field and enumerator-constant declarations are named
//   - forward-declared aggregates link to their definition when one
//     exists in the translation unit
//   - children are reported in source order
//
// A TranslationUnit owns the libclang index and must be closed; nodes
// borrow from it and are only valid until then.
package cindex
