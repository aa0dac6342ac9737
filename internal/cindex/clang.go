package cindex

import (
	"fmt"

	"github.com/go-clang/clang-v13/clang"
)

// TranslationUnit owns the libclang state for one parsed file.
type TranslationUnit struct {
	idx clang.Index
	tu  clang.TranslationUnit
}

// ParseFile parses the file at path with the given extra clang
// arguments (include paths, defines) and returns its declaration tree.
func ParseFile(path string, args []string) (*TranslationUnit, error) {
	idx := clang.NewIndex(0, 0)

	tu := idx.ParseTranslationUnit(path, args, nil, 0)
	if tu == (clang.TranslationUnit{}) {
		idx.Dispose()
		return nil, fmt.Errorf("parsing %s: clang could not build a translation unit", path)
	}

	return &TranslationUnit{idx: idx, tu: tu}, nil
}

// Root returns the translation unit node. Its children are the file's
// top-level declarations.
func (t *TranslationUnit) Root() Node {
	return cursorNode{cursor: t.tu.TranslationUnitCursor()}
}

// Close releases the libclang resources. Nodes obtained from this unit
// must not be used afterwards.
func (t *TranslationUnit) Close() {
	t.tu.Dispose()
	t.idx.Dispose()
}

// cursorNode adapts a clang cursor to the Node interface. It is a
// comparable value type so the walker can use it as a map key.
type cursorNode struct {
	cursor clang.Cursor
}

func (n cursorNode) Kind() Kind {
	switch n.cursor.Kind() {
	case clang.Cursor_TypedefDecl:
		return KindTypedef
	case clang.Cursor_StructDecl:
		return KindStruct
	case clang.Cursor_EnumDecl:
		return KindEnum
	case clang.Cursor_UnionDecl:
		return KindUnion
	case clang.Cursor_FieldDecl:
		return KindField
	case clang.Cursor_EnumConstantDecl:
		return KindEnumConst
	default:
		return KindOther
	}
}

func (n cursorNode) Name() string {
	return normalizeSpelling(n.cursor.Spelling())
}

func (n cursorNode) Type() string {
	return n.cursor.Type().Spelling()
}

func (n cursorNode) Underlying() string {
	return n.cursor.TypedefDeclUnderlyingType().Spelling()
}

func (n cursorNode) Value() int64 {
	return n.cursor.EnumConstantDeclValue()
}

func (n cursorNode) InMainFile() bool {
	return n.cursor.Location().IsFromMainFile()
}

func (n cursorNode) Definition() Node {
	def := n.cursor.Definition()
	if def.IsNull() {
		return nil
	}

	return cursorNode{cursor: def}
}

func (n cursorNode) Children() []Node {
	var kids []Node

	n.cursor.Visit(func(child, _ clang.Cursor) clang.ChildVisitResult {
		kids = append(kids, cursorNode{cursor: child})
		return clang.ChildVisit_Continue
	})

	return kids
}
