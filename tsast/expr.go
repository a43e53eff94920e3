package tsast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Expr is a decoded value expression. Only the shapes the call-site
// extractor interprets get their own variant; everything else is opaque.
type Expr interface {
	expr()
}

// ObjectExpr is an object literal.
type ObjectExpr struct {
	Entries []Entry
}

// StringExpr is a string literal with its quotes stripped.
type StringExpr struct {
	Value string
}

// IdentExpr is a bare identifier reference.
type IdentExpr struct {
	Name string
}

// OpaqueExpr is any other expression; its source text is kept for logging.
type OpaqueExpr struct {
	Text string
}

func (*ObjectExpr) expr() {}
func (*StringExpr) expr() {}
func (*IdentExpr) expr()  {}
func (*OpaqueExpr) expr() {}

// Entry is one object-literal entry.
type Entry interface {
	entry()
}

// PairEntry is a key: value entry. Computed keys are never decoded.
type PairEntry struct {
	Key   string
	Value Expr
}

// SpreadEntry is a ...expr entry. Ident is empty when the spread argument is
// anything other than a plain identifier.
type SpreadEntry struct {
	Ident string
}

// ShorthandEntry is a shorthand property ({ enabled }).
type ShorthandEntry struct {
	Name string
}

func (*PairEntry) entry()      {}
func (*SpreadEntry) entry()    {}
func (*ShorthandEntry) entry() {}

// NewExpr is a constructor call. Callee is the constructed identifier; for
// member expressions (cloudfront.CfnDistribution) it is the final segment.
type NewExpr struct {
	Callee string
	Args   []Expr
}

// NewExpressions collects every new-expression in the tree, in source order.
func (t *Tree) NewExpressions() []NewExpr {
	var calls []NewExpr
	Walk(t.Root(), func(n *sitter.Node) bool {
		if n.Type() != "new_expression" {
			return true
		}
		if call, ok := t.decodeNew(n); ok {
			calls = append(calls, call)
		}
		return true
	})
	return calls
}

func (t *Tree) decodeNew(n *sitter.Node) (NewExpr, bool) {
	ctor := n.ChildByFieldName("constructor")
	if ctor == nil {
		return NewExpr{}, false
	}

	var callee string
	switch ctor.Type() {
	case "identifier":
		callee = t.Text(ctor)
	case "member_expression":
		if prop := ctor.ChildByFieldName("property"); prop != nil {
			callee = t.Text(prop)
		}
	}
	if callee == "" {
		return NewExpr{}, false
	}

	call := NewExpr{Callee: callee}
	if args := n.ChildByFieldName("arguments"); args != nil {
		for i := 0; i < int(args.NamedChildCount()); i++ {
			call.Args = append(call.Args, t.decodeExpr(args.NamedChild(i)))
		}
	}
	return call, true
}

func (t *Tree) decodeExpr(n *sitter.Node) Expr {
	switch n.Type() {
	case "object":
		return t.decodeObject(n)
	case "string":
		return &StringExpr{Value: t.stringValue(n)}
	case "identifier":
		return &IdentExpr{Name: t.Text(n)}
	case "as_expression", "satisfies_expression", "parenthesized_expression":
		if inner := firstNamedChild(n); inner != nil {
			return t.decodeExpr(inner)
		}
		return &OpaqueExpr{Text: t.Text(n)}
	default:
		return &OpaqueExpr{Text: t.Text(n)}
	}
}

func (t *Tree) decodeObject(n *sitter.Node) *ObjectExpr {
	obj := &ObjectExpr{}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "pair":
			keyNode := child.ChildByFieldName("key")
			valueNode := child.ChildByFieldName("value")
			if keyNode == nil || valueNode == nil {
				continue
			}
			if keyNode.Type() == "computed_property_name" {
				continue
			}
			key := t.Text(keyNode)
			if keyNode.Type() == "string" {
				key = t.stringValue(keyNode)
			}
			obj.Entries = append(obj.Entries, &PairEntry{Key: key, Value: t.decodeExpr(valueNode)})

		case "spread_element":
			entry := &SpreadEntry{}
			if arg := firstNamedChild(child); arg != nil && arg.Type() == "identifier" {
				entry.Ident = t.Text(arg)
			}
			obj.Entries = append(obj.Entries, entry)

		case "shorthand_property_identifier":
			obj.Entries = append(obj.Entries, &ShorthandEntry{Name: t.Text(child)})
		}
	}
	return obj
}

// VarObjectLiterals maps identifiers to object-literal initializers for
// every variable declarator in the tree, at any scope. Duplicate names are
// last-write-wins, matching the type index.
func (t *Tree) VarObjectLiterals() map[string]*ObjectExpr {
	vars := make(map[string]*ObjectExpr)
	Walk(t.Root(), func(n *sitter.Node) bool {
		if n.Type() != "variable_declarator" {
			return true
		}
		nameNode := n.ChildByFieldName("name")
		valueNode := n.ChildByFieldName("value")
		if nameNode == nil || valueNode == nil || nameNode.Type() != "identifier" {
			return true
		}
		if obj, ok := t.decodeExpr(valueNode).(*ObjectExpr); ok {
			vars[t.Text(nameNode)] = obj
		}
		return true
	})
	return vars
}
