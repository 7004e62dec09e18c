// Package redaction implements path selectors and the rewrite rules that
// are applied to captured value trees before snapshot comparison.
//
// A Selector is parsed once from a path expression and reused for every
// evaluation:
//
//	sel, err := redaction.ParseSelector(".users[0].id")
//
// Supported segments:
//
//	.name        named key of a map
//	["any key"]  quoted key (for keys that are not identifiers)
//	[0]          sequence index; negative counts from the end
//	.* or [*]    any single key or index
//	.**          any number of intermediate segments
//
// A Redaction describes what happens at a matched location: replace with
// a fixed value (Static), replace with a computed value (Dynamic), or
// verify without modifying (Assertion).
package redaction
