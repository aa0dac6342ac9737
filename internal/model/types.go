package model

// Kind discriminates the entry variants on the wire.
type Kind string

const (
	KindTypedef Kind = "typedef"
	KindStruct  Kind = "struct"
	KindEnum    Kind = "enum"
	KindUnion   Kind = "union"
)

// Entry is one extracted type declaration. The variant set is closed:
// TypeAlias, Struct, Enum and Union are the only implementations, and
// every consumer switches exhaustively over them.
type Entry interface {
	Kind() Kind

	sealed()
}

// TypeAlias records a typedef declaration.
type TypeAlias struct {
	Name string
	// Underlying is the display form of the aliased type as reported
	// by the provider, e.g. "unsigned long" or "struct point".
	Underlying string
}

// Struct records a structure declaration and its members.
type Struct struct {
	Name   string
	Fields []Field
}

// Enum records an enumeration declaration and its constants.
type Enum struct {
	Name      string
	Constants []EnumConstant
}

// Union records a union declaration and its members.
type Union struct {
	Name   string
	Fields []Field
}

// Field is one member of a struct or union, in declaration order.
type Field struct {
	Name string `json:"name" yaml:"name"`
	// Type is the display form of the member's declared type.
	Type string `json:"type" yaml:"type"`
}

// EnumConstant is one enumerator, in declaration order. Value is
// always the signed 64-bit constant reported by the provider, even
// when the enum's declared underlying type is unsigned.
type EnumConstant struct {
	Name  string `json:"name" yaml:"name"`
	Value int64  `json:"value" yaml:"value"`
}

func (TypeAlias) Kind() Kind { return KindTypedef }
func (Struct) Kind() Kind    { return KindStruct }
func (Enum) Kind() Kind      { return KindEnum }
func (Union) Kind() Kind     { return KindUnion }

func (TypeAlias) sealed() {}
func (Struct) sealed()    {}
func (Enum) sealed()      {}
func (Union) sealed()     {}

// List is the ordered sequence of entries for one extracted file.
type List []Entry
