package cindex

// Kind classifies the declaration kinds extraction dispatches on.
// Everything else is KindOther.
type Kind int

const (
	KindOther Kind = iota
	KindTypedef
	KindStruct
	KindEnum
	KindUnion
	KindField
	KindEnumConst
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindTypedef:
		return "typedef"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindField:
		return "field"
	case KindEnumConst:
		return "enum constant"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Node is one declaration node of the parsed tree.
//
// Implementations must be comparable: the walker keys a map by Node to
// recognize a definition it has already extracted through an earlier
// forward declaration.
type Node interface {
	Kind() Kind

	// Name returns the declaration's spelling. Anonymous aggregates
	// report an empty name.
	Name() string

	// Type returns the display form of the declared type of a member
	// declaration, e.g. "unsigned int" or "char *".
	Type() string

	// Underlying returns the display form of a typedef's underlying
	// type.
	Underlying() string

	// Value returns an enumerator constant's value as a signed 64-bit
	// integer.
	Value() int64

	// InMainFile reports whether the declaration is located in the
	// parsed file itself rather than in an included header.
	InMainFile() bool

	// Definition returns the full definition this node forward-declares,
	// or nil when the node has none.
	Definition() Node

	// Children returns the immediate child nodes in source order.
	Children() []Node
}
