package extract

import (
	"strings"

	"github.com/teranos/propdrift/schema"
	"github.com/teranos/propdrift/tsast"
)

// resourceDiscriminator is the literal second constructor argument that
// marks a wrapper's internal construction of its underlying resource. An
// unrelated call with the same callee name will not carry it.
const resourceDiscriminator = "Resource"

// ExtractImplemented builds an implemented ConstructSchema for every
// constructor call in the tree that targets a Cfn-prefixed identifier with
// the "Resource" discriminator as its second argument. The third argument,
// when an object literal, supplies the forwarded properties; spreads of a
// plain identifier are resolved one hop against variable declarations in
// the same tree.
func ExtractImplemented(tree *tsast.Tree, module string) []schema.ConstructSchema {
	var (
		schemas []schema.ConstructSchema
		vars    map[string]*tsast.ObjectExpr
	)
	for _, call := range tree.NewExpressions() {
		if !strings.HasPrefix(call.Callee, schema.ResourcePrefix) {
			continue
		}
		if len(call.Args) < 2 {
			continue
		}
		disc, ok := call.Args[1].(*tsast.StringExpr)
		if !ok || disc.Value != resourceDiscriminator {
			continue
		}

		cs := schema.ConstructSchema{Module: module, Name: call.Callee}
		if len(call.Args) >= 3 {
			if obj, isObj := call.Args[2].(*tsast.ObjectExpr); isObj {
				if vars == nil {
					vars = tree.VarObjectLiterals()
				}
				cs.Props = objectProps(obj, vars, 0, true)
			}
		}
		schemas = append(schemas, cs)
	}
	return schemas
}

// objectProps builds the ordered property list for an object literal whose
// properties sit at the given nesting depth (top-level argument object = 0).
// resolveSpreads is false inside an object inlined through a spread: chains
// longer than one hop are out of scope.
func objectProps(obj *tsast.ObjectExpr, vars map[string]*tsast.ObjectExpr, depth int, resolveSpreads bool) []*schema.PropertySchema {
	var props []*schema.PropertySchema

	// Source key uniqueness: a later entry for the same key replaces the
	// earlier one in place, keeping first-occurrence order.
	upsert := func(p *schema.PropertySchema) {
		for i, existing := range props {
			if existing.Name == p.Name {
				props[i] = p
				return
			}
		}
		props = append(props, p)
	}

	for _, entry := range obj.Entries {
		switch e := entry.(type) {
		case *tsast.PairEntry:
			upsert(&schema.PropertySchema{
				Name:   e.Key,
				Nested: valueProps(e.Value, vars, depth, resolveSpreads),
			})

		case *tsast.ShorthandEntry:
			upsert(&schema.PropertySchema{Name: e.Name})

		case *tsast.SpreadEntry:
			if !resolveSpreads || e.Ident == "" {
				// Non-identifier spreads and second-hop spreads contribute
				// nothing.
				continue
			}
			ref, ok := vars[e.Ident]
			if !ok {
				continue
			}
			for _, p := range objectProps(ref, vars, depth, false) {
				upsert(p)
			}
		}
	}
	return props
}

// valueProps reconstructs nesting for a property value. Only object
// literals actually present in source contribute structure; no type
// inference is attempted.
func valueProps(v tsast.Expr, vars map[string]*tsast.ObjectExpr, depth int, resolveSpreads bool) []*schema.PropertySchema {
	if depth >= schema.MaxNestingDepth {
		return nil
	}
	obj, ok := v.(*tsast.ObjectExpr)
	if !ok {
		return nil
	}
	return objectProps(obj, vars, depth+1, resolveSpreads)
}
