// Package extract walks a parsed C declaration tree and builds the
// ordered type model.
//
// The walk is a single depth-first pre-order pass: each node is
// dispatched by kind, then its children are visited regardless of the
// dispatch outcome. Forward declarations stand in for their definition,
// declarations from included headers are filtered out, and anonymous
// aggregates without an enclosing typedef are dropped silently.
//
// Violations of the provider contract (an unnamed typedef, field or
// enumerator constant) panic: they cannot occur on a well-formed tree
// and are not input errors to recover from.
package extract
