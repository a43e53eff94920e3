// Package tsast parses TypeScript sources with tree-sitter and decodes the
// portions of the syntax tree the extractors care about into closed Go
// variant types. Extraction code switches exhaustively over these variants
// instead of comparing tree-sitter node-kind strings.
package tsast

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/teranos/propdrift/errors"
)

// Tree is one parsed source file.
type Tree struct {
	Path string

	src  []byte
	tree *sitter.Tree
}

// Parse parses TypeScript source into a Tree. Files ending in .tsx get the
// TSX grammar. A syntax error anywhere in the file is reported as a parse
// failure so callers can skip the file cleanly.
func Parse(ctx context.Context, src []byte, path string) (*Tree, error) {
	parser := sitter.NewParser()
	if strings.HasSuffix(path, ".tsx") {
		parser.SetLanguage(tsx.GetLanguage())
	} else {
		parser.SetLanguage(typescript.GetLanguage())
	}

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.WrapSourceParse(err, path)
	}

	root := tree.RootNode()
	if root == nil {
		tree.Close()
		return nil, errors.Wrapf(errors.ErrSourceParse, "%s: tree-sitter returned no root node", path)
	}
	if root.HasError() {
		tree.Close()
		return nil, errors.Wrapf(errors.ErrSourceParse, "%s: source contains syntax errors", path)
	}

	return &Tree{Path: path, src: src, tree: tree}, nil
}

// Close releases the underlying tree-sitter tree.
func (t *Tree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Root returns the root syntax node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Text returns the source text covered by a node.
func (t *Tree) Text(n *sitter.Node) string {
	return string(t.src[n.StartByte():n.EndByte()])
}

// Walk visits nodes in preorder. Returning false from fn skips the node's
// children.
func Walk(n *sitter.Node, fn func(*sitter.Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		Walk(n.Child(i), fn)
	}
}

// stringValue returns the contents of a string literal node without its
// surrounding quotes.
func (t *Tree) stringValue(n *sitter.Node) string {
	text := t.Text(n)
	return strings.Trim(text, "\"'`")
}
