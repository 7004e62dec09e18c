// Package content provides the structured value model that captured test
// values are serialized into before normalization and comparison.
//
// A Content is a tagged union over scalars, sequences, and ordered
// key/value maps. Values are built with the From function or with the
// explicit constructors, inspected with the As* accessors, and rendered
// to canonical YAML with ToYAML:
//
//	c := content.From(map[string]any{"id": 42, "name": "alice"})
//	out, err := content.ToYAML(c.SortMaps())
//
// Map entry order is preserved exactly as constructed; SortMaps returns a
// copy with entries recursively sorted by key.
package content
