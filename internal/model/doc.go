// Package model defines the serializable type model produced by
// extraction.
//
// The model is a closed set of four entry variants discriminated by
// Kind: TypeAlias, Struct, Enum and Union. Entries are built once
// during extraction, appended to a List in encounter order and never
// mutated afterwards.
//
// List carries the wire codecs: internally tagged JSON (a "kind" key
// next to the variant's own fields) with an order-sensitive round-trip
// decoder, and YAML marshalling of the same shape.
package model
