package extract

import (
	"strings"

	"github.com/teranos/propdrift/schema"
	"github.com/teranos/propdrift/tsast"
)

// resolvableMarker is the generated-code escape hatch type that appears
// unioned with nearly every property (value | IResolvable). It never
// contributes a shape and is filtered before union resolution.
const resolvableMarker = "IResolvable"

// ExtractDeclared builds a declared ConstructSchema for every interface in
// the tree whose name ends in Props and that has at least one member. The
// schema name is the interface name with the Props suffix stripped.
func ExtractDeclared(tree *tsast.Tree, index map[string]tsast.TypeDecl, module string) []schema.ConstructSchema {
	var schemas []schema.ConstructSchema
	for _, decl := range tree.Declarations() {
		iface, ok := decl.(*tsast.InterfaceDecl)
		if !ok {
			continue
		}
		if !strings.HasSuffix(iface.Name, schema.PropsSuffix) || len(iface.Members) == 0 {
			continue
		}

		cs := schema.ConstructSchema{
			Module: module,
			Name:   strings.TrimSuffix(iface.Name, schema.PropsSuffix),
		}
		for _, m := range iface.Members {
			cs.Props = append(cs.Props, &schema.PropertySchema{
				Name:   m.Name,
				Nested: resolveType(m.Type, index, 0, nil),
			})
		}
		schemas = append(schemas, cs)
	}
	return schemas
}

// resolveType resolves a type annotation into the nested properties of a
// property at the given depth, or nil when the type has no resolvable
// object shape. visited holds the named types already entered on this
// resolution branch; it is copied before each descent so sibling branches
// never observe each other's history.
func resolveType(t tsast.TypeExpr, index map[string]tsast.TypeDecl, depth int, visited map[string]struct{}) []*schema.PropertySchema {
	if t == nil || depth >= schema.MaxNestingDepth {
		return nil
	}

	switch v := t.(type) {
	case *tsast.UnionType:
		// First non-excluded member in source order wins; modelling every
		// branch of a union is out of scope.
		for _, m := range v.Members {
			if !excludedBranch(m) {
				return resolveType(m, index, depth, visited)
			}
		}
		return nil

	case *tsast.ArrayType:
		// The list wrapper contributes no nesting level.
		return resolveType(v.Elem, index, depth, visited)

	case *tsast.ObjectType:
		return resolveMembers(v.Members, index, depth+1, visited)

	case *tsast.TypeRef:
		if len(v.Args) > 0 {
			switch v.Name {
			case "Array", "ReadonlyArray":
				return resolveType(v.Args[0], index, depth, visited)
			case "Record", "Map":
				if len(v.Args) == 2 {
					return resolveType(v.Args[1], index, depth, visited)
				}
				return nil
			default:
				// Unsupported generic shape.
				return nil
			}
		}

		decl, ok := index[v.Name]
		if !ok {
			// Unresolved reference (imported or external type).
			return nil
		}
		if _, seen := visited[v.Name]; seen {
			// Cycle on this branch.
			return nil
		}
		branch := copyVisited(visited, v.Name)
		switch d := decl.(type) {
		case *tsast.InterfaceDecl:
			return resolveMembers(d.Members, index, depth+1, branch)
		case *tsast.AliasDecl:
			return resolveType(d.Value, index, depth, branch)
		}
		return nil

	case *tsast.PrimitiveType, *tsast.LiteralType, *tsast.OpaqueType:
		return nil

	default:
		return nil
	}
}

func resolveMembers(members []tsast.Member, index map[string]tsast.TypeDecl, depth int, visited map[string]struct{}) []*schema.PropertySchema {
	if len(members) == 0 {
		return nil
	}
	props := make([]*schema.PropertySchema, 0, len(members))
	for _, m := range members {
		props = append(props, &schema.PropertySchema{
			Name:   m.Name,
			Nested: resolveType(m.Type, index, depth, visited),
		})
	}
	return props
}

// excludedBranch reports union members that never carry a property shape:
// undefined, null, and the resolvable marker type.
func excludedBranch(t tsast.TypeExpr) bool {
	switch v := t.(type) {
	case *tsast.LiteralType:
		return v.Text == "undefined" || v.Text == "null"
	case *tsast.PrimitiveType:
		return v.Name == "undefined" || v.Name == "null"
	case *tsast.TypeRef:
		if len(v.Args) > 0 {
			return false
		}
		return v.Name == "undefined" || v.Name == "null" ||
			v.Name == resolvableMarker || strings.HasSuffix(v.Name, "."+resolvableMarker)
	default:
		return false
	}
}

func copyVisited(visited map[string]struct{}, name string) map[string]struct{} {
	branch := make(map[string]struct{}, len(visited)+1)
	for k := range visited {
		branch[k] = struct{}{}
	}
	branch[name] = struct{}{}
	return branch
}
