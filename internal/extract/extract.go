package extract

import (
	"ctypedump/internal/cindex"
	"ctypedump/internal/model"
)

// extractor accumulates entries over one traversal. The seen map keys
// aggregate definition nodes that already produced an entry, so a
// definition reached through an earlier forward declaration is not
// emitted twice.
type extractor struct {
	entries model.List
	seen    map[cindex.Node]bool
}

// Extract walks the tree rooted at root and returns the type model for
// every named type declaration located in the main file, in encounter
// order.
func Extract(root cindex.Node) model.List {
	x := &extractor{seen: make(map[cindex.Node]bool)}
	x.walk(root, nil)

	return x.entries
}

// walk dispatches on node, then visits its children. Children are
// visited even when the node itself produced nothing, so a declaration
// nested inside an unrelated container is still found.
func (x *extractor) walk(node, parent cindex.Node) {
	x.dispatch(node, parent)

	for _, child := range node.Children() {
		x.walk(child, node)
	}
}

func (x *extractor) dispatch(node, parent cindex.Node) {
	// A forward declaration stands in for its full definition.
	if def := node.Definition(); def != nil {
		node = def
	}

	if !node.InMainFile() {
		return
	}

	switch node.Kind() {
	case cindex.KindTypedef:
		x.typeAlias(node)
	case cindex.KindStruct:
		x.structDecl(node, parent)
	case cindex.KindEnum:
		x.enumDecl(node, parent)
	case cindex.KindUnion:
		x.unionDecl(node, parent)
	}
}

func (x *extractor) typeAlias(node cindex.Node) {
	x.entries = append(x.entries, model.TypeAlias{
		Name:       mustName(node, "typedef"),
		Underlying: node.Underlying(),
	})
}

func (x *extractor) structDecl(node, parent cindex.Node) {
	name, ok := x.claim(node, parent)
	if !ok {
		return
	}

	x.entries = append(x.entries, model.Struct{Name: name, Fields: fields(node)})
}

func (x *extractor) enumDecl(node, parent cindex.Node) {
	name, ok := x.claim(node, parent)
	if !ok {
		return
	}

	x.entries = append(x.entries, model.Enum{Name: name, Constants: constants(node)})
}

func (x *extractor) unionDecl(node, parent cindex.Node) {
	name, ok := x.claim(node, parent)
	if !ok {
		return
	}

	x.entries = append(x.entries, model.Union{Name: name, Fields: fields(node)})
}

// claim resolves the aggregate's name and marks the node as emitted.
// It returns false for anonymous declarations and for definitions that
// already produced an entry.
func (x *extractor) claim(node, parent cindex.Node) (string, bool) {
	name, ok := resolveName(node, parent)
	if !ok || x.seen[node] {
		return "", false
	}

	x.seen[node] = true
	return name, true
}

// fields flattens the aggregate's member declarations. Nested type
// declarations inside the body are not members; the walker reaches
// them through its own recursion.
func fields(node cindex.Node) []model.Field {
	var out []model.Field

	for _, child := range node.Children() {
		if child.Kind() != cindex.KindField {
			continue
		}

		out = append(out, model.Field{
			Name: mustName(child, "field"),
			Type: child.Type(),
		})
	}

	return out
}

// constants flattens the enum's enumerators. Values stay signed 64-bit
// no matter how the enum's underlying type is declared in source.
func constants(node cindex.Node) []model.EnumConstant {
	var out []model.EnumConstant

	for _, child := range node.Children() {
		if child.Kind() != cindex.KindEnumConst {
			continue
		}

		out = append(out, model.EnumConstant{
			Name:  mustName(child, "enumerator"),
			Value: child.Value(),
		})
	}

	return out
}
