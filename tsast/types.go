package tsast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// TypeDecl is a top-level interface or type-alias declaration.
type TypeDecl interface {
	DeclName() string
	typeDecl()
}

// InterfaceDecl is an interface declaration with its property members in
// source order. Method signatures and index signatures are not represented.
type InterfaceDecl struct {
	Name    string
	Members []Member
}

// AliasDecl is a type-alias declaration (type X = ...).
type AliasDecl struct {
	Name  string
	Value TypeExpr
}

func (d *InterfaceDecl) DeclName() string { return d.Name }
func (d *AliasDecl) DeclName() string     { return d.Name }
func (d *InterfaceDecl) typeDecl()        {}
func (d *AliasDecl) typeDecl()            {}

// Member is one property signature of an interface or object type.
type Member struct {
	Name     string
	Optional bool
	Type     TypeExpr
}

// TypeExpr is a decoded type annotation. The closed set of variants covers
// everything the resolver distinguishes; anything else decodes to OpaqueType.
type TypeExpr interface {
	typeExpr()
}

// TypeRef is a named type reference, possibly with generic arguments.
// Name keeps qualified references intact (cdk.IResolvable).
type TypeRef struct {
	Name string
	Args []TypeExpr
}

// UnionType holds the flattened members of a union in source order.
type UnionType struct {
	Members []TypeExpr
}

// ObjectType is an inline structural type ({ a: string; b: number }).
type ObjectType struct {
	Members []Member
}

// ArrayType is the postfix array form (T[]).
type ArrayType struct {
	Elem TypeExpr
}

// PrimitiveType is a predefined type keyword (string, number, boolean, ...).
type PrimitiveType struct {
	Name string
}

// LiteralType is a literal in type position (undefined, null, "fixed", 42).
type LiteralType struct {
	Text string
}

// OpaqueType is any type shape the resolver does not interpret (function
// types, conditional types, tuples, ...). Always a leaf.
type OpaqueType struct {
	Text string
}

func (*TypeRef) typeExpr()       {}
func (*UnionType) typeExpr()     {}
func (*ObjectType) typeExpr()    {}
func (*ArrayType) typeExpr()     {}
func (*PrimitiveType) typeExpr() {}
func (*LiteralType) typeExpr()   {}
func (*OpaqueType) typeExpr()    {}

// Declarations decodes the top-level interface and type-alias declarations,
// including exported ones, in source order.
func (t *Tree) Declarations() []TypeDecl {
	var decls []TypeDecl
	root := t.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node.Type() == "export_statement" {
			if inner := node.ChildByFieldName("declaration"); inner != nil {
				node = inner
			}
		}
		switch node.Type() {
		case "interface_declaration":
			if d := t.decodeInterface(node); d != nil {
				decls = append(decls, d)
			}
		case "type_alias_declaration":
			if d := t.decodeAlias(node); d != nil {
				decls = append(decls, d)
			}
		}
	}
	return decls
}

func (t *Tree) decodeInterface(n *sitter.Node) *InterfaceDecl {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	var body *sitter.Node
	if body = n.ChildByFieldName("body"); body == nil {
		// Older grammar revisions expose the body as object_type without a field.
		for i := 0; i < int(n.ChildCount()); i++ {
			child := n.Child(i)
			if child.Type() == "interface_body" || child.Type() == "object_type" {
				body = child
				break
			}
		}
	}

	decl := &InterfaceDecl{Name: t.Text(nameNode)}
	if body != nil {
		decl.Members = t.decodeMembers(body)
	}
	return decl
}

func (t *Tree) decodeAlias(n *sitter.Node) *AliasDecl {
	nameNode := n.ChildByFieldName("name")
	valueNode := n.ChildByFieldName("value")
	if nameNode == nil || valueNode == nil {
		return nil
	}
	return &AliasDecl{Name: t.Text(nameNode), Value: t.decodeType(valueNode)}
}

// decodeMembers decodes the property signatures of an interface body or
// object type. Non-property members (methods, index signatures) are skipped.
func (t *Tree) decodeMembers(body *sitter.Node) []Member {
	var members []Member
	for i := 0; i < int(body.NamedChildCount()); i++ {
		sig := body.NamedChild(i)
		if sig.Type() != "property_signature" {
			continue
		}

		nameNode := sig.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		name := t.Text(nameNode)
		if nameNode.Type() == "string" {
			name = t.stringValue(nameNode)
		}
		if nameNode.Type() == "computed_property_name" {
			// Dynamic keys are out of scope.
			continue
		}

		member := Member{Name: name}
		for j := 0; j < int(sig.ChildCount()); j++ {
			if sig.Child(j).Type() == "?" {
				member.Optional = true
				break
			}
		}
		if ann := sig.ChildByFieldName("type"); ann != nil {
			member.Type = t.decodeAnnotation(ann)
		}
		members = append(members, member)
	}
	return members
}

// decodeAnnotation unwraps a type_annotation (": T") to its type.
func (t *Tree) decodeAnnotation(n *sitter.Node) TypeExpr {
	if n.Type() != "type_annotation" {
		return t.decodeType(n)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		return t.decodeType(n.NamedChild(i))
	}
	return nil
}

func (t *Tree) decodeType(n *sitter.Node) TypeExpr {
	switch n.Type() {
	case "parenthesized_type", "optional_type":
		if inner := firstNamedChild(n); inner != nil {
			return t.decodeType(inner)
		}
		return &OpaqueType{Text: t.Text(n)}

	case "union_type":
		union := &UnionType{}
		t.flattenUnion(n, union)
		return union

	case "generic_type":
		nameNode := n.ChildByFieldName("name")
		argsNode := n.ChildByFieldName("type_arguments")
		if nameNode == nil || argsNode == nil {
			return &OpaqueType{Text: t.Text(n)}
		}
		ref := &TypeRef{Name: t.Text(nameNode)}
		for i := 0; i < int(argsNode.NamedChildCount()); i++ {
			ref.Args = append(ref.Args, t.decodeType(argsNode.NamedChild(i)))
		}
		return ref

	case "type_identifier", "nested_type_identifier":
		return &TypeRef{Name: t.Text(n)}

	case "predefined_type":
		return &PrimitiveType{Name: t.Text(n)}

	case "literal_type":
		return &LiteralType{Text: t.Text(n)}

	case "array_type":
		if elem := firstNamedChild(n); elem != nil {
			return &ArrayType{Elem: t.decodeType(elem)}
		}
		return &OpaqueType{Text: t.Text(n)}

	case "object_type":
		return &ObjectType{Members: t.decodeMembers(n)}

	default:
		return &OpaqueType{Text: t.Text(n)}
	}
}

// flattenUnion collects union members in source order. tree-sitter nests
// unions left-associatively, so A | B | C arrives as (A | B) | C.
func (t *Tree) flattenUnion(n *sitter.Node, union *UnionType) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "union_type" {
			t.flattenUnion(child, union)
			continue
		}
		union.Members = append(union.Members, t.decodeType(child))
	}
}

func firstNamedChild(n *sitter.Node) *sitter.Node {
	if n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}
