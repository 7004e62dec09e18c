package redaction

import (
	"strconv"
	"strings"
)

// PathSegment is one step of a location within a value tree: either a
// map key or a sequence index.
type PathSegment struct {
	key     string
	index   int
	length  int // length of the containing sequence, for index segments
	isIndex bool
}

// FieldSegment returns a path segment for a map key.
func FieldSegment(key string) PathSegment {
	return PathSegment{key: key}
}

// IndexSegment returns a path segment for position index of a sequence
// of the given length.
func IndexSegment(index, length int) PathSegment {
	return PathSegment{index: index, length: length, isIndex: true}
}

// Key returns the map key and whether this segment is a key segment.
func (s PathSegment) Key() (string, bool) {
	return s.key, !s.isIndex
}

// Index returns the sequence index and whether this segment is an index
// segment.
func (s PathSegment) Index() (int, bool) {
	return s.index, s.isIndex
}

// Path is the location of a value within a tree, as handed to dynamic
// and assertion callbacks.
type Path struct {
	segs []PathSegment
}

// NewPath builds a Path from segments; primarily useful in tests of
// callback logic.
func NewPath(segs ...PathSegment) Path {
	return Path{segs: segs}
}

// Segments returns the path's segments from root to leaf. The returned
// slice must not be modified.
func (p Path) Segments() []PathSegment {
	return p.segs
}

// String renders the path in dotted/bracketed form, e.g. ".users[0].id".
func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p.segs {
		if seg.isIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.index))
			b.WriteByte(']')
			continue
		}
		if isIdentifier(seg.key) {
			b.WriteByte('.')
			b.WriteString(seg.key)
		} else {
			b.WriteString(`[`)
			b.WriteString(strconv.Quote(seg.key))
			b.WriteString(`]`)
		}
	}
	return b.String()
}

// push returns a new Path extended by one segment. The backing array is
// copied so callbacks may retain the Path they were handed.
func (p Path) push(seg PathSegment) Path {
	segs := make([]PathSegment, len(p.segs)+1)
	copy(segs, p.segs)
	segs[len(p.segs)] = seg
	return Path{segs: segs}
}

// isIdentifier reports whether a key renders with dot notation.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
