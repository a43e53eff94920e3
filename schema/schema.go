// Package schema defines the property-tree value types shared by the
// extractors and the drift engine.
//
// A PropertySchema tree describes the configuration shape of one construct
// property. Two ConstructSchema variants exist by origin: declared schemas
// come from generated *Props interfaces, implemented schemas from the
// wrapper's resource construction call. Both are immutable once built and
// live for a single scan.
package schema

import "strings"

// MaxNestingDepth bounds PropertySchema trees. The root property is depth 0;
// structure deeper than this is truncated to a leaf, never an error.
const MaxNestingDepth = 3

// ResourcePrefix marks generated L1 resource constructs (CfnDistribution,
// CfnBucket, ...). It is stripped when matching declared against implemented
// schemas.
const ResourcePrefix = "Cfn"

// PropsSuffix is the naming convention for generated configuration
// interfaces (CfnDistributionProps).
const PropsSuffix = "Props"

// PropertySchema is one named configuration property. Nested is nil for
// leaves; otherwise it holds the child properties in source order. Names are
// unique among siblings.
type PropertySchema struct {
	Name   string
	Nested []*PropertySchema
}

// Child returns the nested property with the given name, or nil.
func (p *PropertySchema) Child(name string) *PropertySchema {
	if p == nil {
		return nil
	}
	for _, c := range p.Nested {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasChild reports whether a nested property with the given name exists.
func (p *PropertySchema) HasChild(name string) bool {
	return p.Child(name) != nil
}

// ConstructSchema is the full property shape of one construct within a
// module. Name keeps the resource prefix; declared schemas have already had
// the Props suffix stripped.
type ConstructSchema struct {
	Module string
	Name   string
	Props  []*PropertySchema
}

// TopLevel returns the top-level property names in source order.
func (c *ConstructSchema) TopLevel() []string {
	names := make([]string, len(c.Props))
	for i, p := range c.Props {
		names[i] = p.Name
	}
	return names
}

// Prop returns the top-level property with the given name, or nil.
func (c *ConstructSchema) Prop(name string) *PropertySchema {
	for _, p := range c.Props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// NormalizedName is the construct name with the resource prefix removed.
// Declared and implemented schemas are matched on (Module, NormalizedName).
func (c *ConstructSchema) NormalizedName() string {
	return strings.TrimPrefix(c.Name, ResourcePrefix)
}

// MissingPropertyRecord reports the declared property paths a wrapper fails
// to forward. MissingProps entries are bare names for top-level misses and
// dot-joined paths for nested ones. Records are only emitted when at least
// one path is missing.
type MissingPropertyRecord struct {
	Module       string   `json:"module"`
	Name         string   `json:"name"`
	MissingProps []string `json:"missingProps"`
}

// JoinPath appends a property name to a dot-joined path. An empty parent
// yields the bare name.
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
