package content

import "sort"

// Kind identifies the variant held by a Content value.
type Kind int

// Content variants.
const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindSeq
	KindMap
)

// String returns the variant name (e.g., "string", "map").
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSeq:
		return "seq"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Content is an immutable structured value: a scalar, a sequence, or an
// ordered key/value map. The zero value is the nil variant.
type Content struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	seq  []Content
	m    []MapEntry
}

// MapEntry is a single key/value pair of a map Content.
type MapEntry struct {
	Key   Content
	Value Content
}

// Nil returns the nil Content.
func Nil() Content {
	return Content{kind: KindNil}
}

// Bool returns a boolean Content.
func Bool(v bool) Content {
	return Content{kind: KindBool, b: v}
}

// Int returns a signed integer Content.
func Int(v int64) Content {
	return Content{kind: KindInt, i: v}
}

// Uint returns an unsigned integer Content.
func Uint(v uint64) Content {
	return Content{kind: KindUint, u: v}
}

// Float returns a floating-point Content.
func Float(v float64) Content {
	return Content{kind: KindFloat, f: v}
}

// String returns a string Content.
func String(v string) Content {
	return Content{kind: KindString, s: v}
}

// Seq returns a sequence Content holding the given items in order.
func Seq(items ...Content) Content {
	return Content{kind: KindSeq, seq: items}
}

// Map returns a map Content holding the given entries in order.
func Map(entries ...MapEntry) Content {
	return Content{kind: KindMap, m: entries}
}

// Kind returns the variant held by c.
func (c Content) Kind() Kind {
	return c.kind
}

// IsNil reports whether c is the nil variant.
func (c Content) IsNil() bool {
	return c.kind == KindNil
}

// AsBool returns the boolean value and whether c holds one.
func (c Content) AsBool() (bool, bool) {
	return c.b, c.kind == KindBool
}

// AsInt returns the signed integer value and whether c holds one.
func (c Content) AsInt() (int64, bool) {
	return c.i, c.kind == KindInt
}

// AsUint returns the unsigned integer value and whether c holds one.
func (c Content) AsUint() (uint64, bool) {
	return c.u, c.kind == KindUint
}

// AsFloat returns the floating-point value and whether c holds one.
func (c Content) AsFloat() (float64, bool) {
	return c.f, c.kind == KindFloat
}

// AsString returns the string value and whether c holds one.
func (c Content) AsString() (string, bool) {
	return c.s, c.kind == KindString
}

// Items returns the elements of a sequence Content, or nil for other
// variants. The returned slice must not be modified.
func (c Content) Items() []Content {
	if c.kind != KindSeq {
		return nil
	}
	return c.seq
}

// Entries returns the key/value pairs of a map Content in order, or nil
// for other variants. The returned slice must not be modified.
func (c Content) Entries() []MapEntry {
	if c.kind != KindMap {
		return nil
	}
	return c.m
}

// Get returns the value for a string key in a map Content and whether
// the key was found. The first matching entry wins.
func (c Content) Get(key string) (Content, bool) {
	for _, e := range c.Entries() {
		if k, ok := e.Key.AsString(); ok && k == key {
			return e.Value, true
		}
	}
	return Nil(), false
}

// Equal reports whether two Content values are structurally equal.
// Map entry order is significant.
func (c Content) Equal(other Content) bool {
	if c.kind != other.kind {
		return false
	}
	switch c.kind {
	case KindNil:
		return true
	case KindBool:
		return c.b == other.b
	case KindInt:
		return c.i == other.i
	case KindUint:
		return c.u == other.u
	case KindFloat:
		return c.f == other.f
	case KindString:
		return c.s == other.s
	case KindSeq:
		if len(c.seq) != len(other.seq) {
			return false
		}
		for i := range c.seq {
			if !c.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(c.m) != len(other.m) {
			return false
		}
		for i := range c.m {
			if !c.m[i].Key.Equal(other.m[i].Key) || !c.m[i].Value.Equal(other.m[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SortMaps returns a copy of c with all map entries, at every depth,
// sorted by their rendered key. Non-container variants are returned
// unchanged.
func (c Content) SortMaps() Content {
	switch c.kind {
	case KindSeq:
		items := make([]Content, len(c.seq))
		for i, item := range c.seq {
			items[i] = item.SortMaps()
		}
		return Content{kind: KindSeq, seq: items}
	case KindMap:
		entries := make([]MapEntry, len(c.m))
		for i, e := range c.m {
			entries[i] = MapEntry{Key: e.Key, Value: e.Value.SortMaps()}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Key.sortKey() < entries[j].Key.sortKey()
		})
		return Content{kind: KindMap, m: entries}
	default:
		return c
	}
}

// sortKey renders a map key for ordering purposes. String keys sort by
// their text; other scalar keys by their scalar rendering.
func (c Content) sortKey() string {
	if s, ok := c.AsString(); ok {
		return s
	}
	return c.scalarString()
}
