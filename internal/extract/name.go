package extract

import (
	"fmt"

	"ctypedump/internal/cindex"
)

// resolveName applies the shared aggregate naming policy: the
// declaration's own name wins; an anonymous aggregate borrows the name
// of its enclosing typedef (the `typedef struct { ... } Name;`
// pattern). The second return is false when no name can be resolved at
// this scope.
func resolveName(node, parent cindex.Node) (string, bool) {
	if name := node.Name(); name != "" {
		return name, true
	}

	if parent != nil && parent.Kind() == cindex.KindTypedef {
		if name := parent.Name(); name != "" {
			return name, true
		}
	}

	return "", false
}

// mustName returns the node's name and panics when it is empty. The
// provider guarantees these declarations are named, so absence is a
// contract violation rather than a recoverable condition.
func mustName(node cindex.Node, what string) string {
	name := node.Name()
	if name == "" {
		panic(fmt.Sprintf("extract: unnamed %s declaration violates the provider contract", what))
	}

	return name
}
