// Package drift compares declared against implemented construct schemas and
// reports every declared property path the implementation fails to forward.
package drift

import (
	"sort"

	"github.com/teranos/propdrift/schema"
)

// Diff matches each declared schema against the implemented schema with the
// same module and normalized name (first match wins) and collects missing
// property paths. A record is emitted only when at least one path is
// missing. The result is sorted by (module, name) ascending.
func Diff(declared, implemented []schema.ConstructSchema) []schema.MissingPropertyRecord {
	var records []schema.MissingPropertyRecord

	for i := range declared {
		d := &declared[i]
		impl := findImplemented(implemented, d.Module, d.NormalizedName())
		if impl == nil {
			// No construction call to check against; nothing to report.
			continue
		}

		var missing []string
		for _, name := range d.TopLevel() {
			if impl.Prop(name) == nil {
				missing = append(missing, name)
			}
		}
		missing = append(missing, compareNested(d.Props, impl.Props, "")...)

		if len(missing) > 0 {
			records = append(records, schema.MissingPropertyRecord{
				Module:       d.Module,
				Name:         d.Name,
				MissingProps: missing,
			})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Module != records[j].Module {
			return records[i].Module < records[j].Module
		}
		return records[i].Name < records[j].Name
	})
	return records
}

// compareNested walks properties present on both sides and reports declared
// children the implemented side lacks. A property already missing at its
// parent level is never re-reported deeper: recursion only happens where
// the parent key exists on both sides.
func compareNested(declared, implemented []*schema.PropertySchema, path string) []string {
	var missing []string
	for _, d := range declared {
		impl := lookup(implemented, d.Name)
		if impl == nil || d.Nested == nil {
			continue
		}

		prefix := schema.JoinPath(path, d.Name)
		for _, child := range d.Nested {
			if !impl.HasChild(child.Name) {
				missing = append(missing, schema.JoinPath(prefix, child.Name))
			}
		}
		missing = append(missing, compareNested(d.Nested, impl.Nested, prefix)...)
	}
	return missing
}

func lookup(props []*schema.PropertySchema, name string) *schema.PropertySchema {
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func findImplemented(schemas []schema.ConstructSchema, module, normalized string) *schema.ConstructSchema {
	for i := range schemas {
		if schemas[i].Module == module && schemas[i].NormalizedName() == normalized {
			return &schemas[i]
		}
	}
	return nil
}
