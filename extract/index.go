// Package extract builds ConstructSchema trees from parsed TypeScript
// sources: declared schemas from generated *Props interfaces, implemented
// schemas from the wrapper's resource construction call.
package extract

import (
	"github.com/teranos/propdrift/tsast"
)

// BuildTypeIndex maps top-level interface and type-alias names to their
// declarations for one source tree. Duplicate names are last-write-wins; no
// file-level scoping is attempted. Pure function of the tree.
func BuildTypeIndex(tree *tsast.Tree) map[string]tsast.TypeDecl {
	index := make(map[string]tsast.TypeDecl)
	for _, decl := range tree.Declarations() {
		index[decl.DeclName()] = decl
	}
	return index
}
