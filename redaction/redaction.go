package redaction

import (
	"strconv"

	"github.com/c-spencer/insta/content"
)

// DynamicFunc computes a replacement for a matched value. The return
// value is converted with content.From, so callbacks may return plain Go
// values. Callbacks must not borrow state from the registering scope:
// they may run long after registration, once per match, and must be
// idempotent across runs.
type DynamicFunc func(value content.Content, path Path) any

// AssertionFunc verifies a matched value without modifying the tree.
// A non-nil error marks the assertion as failed and aborts the
// evaluation; returning nil means the assertion passed.
type AssertionFunc func(value content.Content, path Path) error

// RedactionKind discriminates the three redaction behaviors.
type RedactionKind int

const (
	// KindStatic substitutes a fixed value at every match.
	KindStatic RedactionKind = iota
	// KindDynamic substitutes the result of a callback at every match.
	KindDynamic
	// KindAssertion verifies matches and leaves the tree unmodified.
	KindAssertion
)

// Redaction is one rewrite-or-assert behavior, applied wherever its
// selector matches.
type Redaction struct {
	kind        RedactionKind
	replacement content.Content
	dynamic     DynamicFunc
	assertion   AssertionFunc
}

// Static returns a redaction that replaces matches with a fixed value.
// The replacement is converted with content.From at construction time.
func Static(replacement any) *Redaction {
	return &Redaction{kind: KindStatic, replacement: content.From(replacement)}
}

// Dynamic returns a redaction that replaces matches with the callback's
// result.
func Dynamic(fn DynamicFunc) *Redaction {
	return &Redaction{kind: KindDynamic, dynamic: fn}
}

// Assertion returns a redaction that verifies matches without modifying
// them.
func Assertion(fn AssertionFunc) *Redaction {
	return &Redaction{kind: KindAssertion, assertion: fn}
}

// Kind returns the redaction's behavior variant.
func (r *Redaction) Kind() RedactionKind {
	return r.kind
}

// apply runs the redaction against a single matched value.
func (r *Redaction) apply(value content.Content, path Path) (content.Content, error) {
	switch r.kind {
	case KindStatic:
		return r.replacement, nil
	case KindDynamic:
		return content.From(r.dynamic(value, path)), nil
	case KindAssertion:
		if err := r.assertion(value, path); err != nil {
			return value, err
		}
		return value, nil
	default:
		return value, nil
	}
}

// Redact applies the redaction to every location of the tree the
// selector matches, returning the rewritten tree. For assertions the
// tree is returned unchanged; the first assertion failure aborts the
// walk and is returned to the caller.
func (s *Selector) Redact(value content.Content, r *Redaction) (content.Content, error) {
	return s.redactAt(value, Path{}, r)
}

func (s *Selector) redactAt(value content.Content, path Path, r *Redaction) (content.Content, error) {
	if len(path.segs) > 0 && s.Matches(path) {
		out, err := r.apply(value, path)
		if err != nil {
			return value, err
		}
		if r.kind != KindAssertion {
			// Replacements are terminal; the substituted value is not
			// walked further.
			return out, nil
		}
		// Assertions keep walking: a deep wildcard may also match
		// descendants of an already-matched container.
	}

	switch value.Kind() {
	case content.KindSeq:
		items := value.Items()
		out := make([]content.Content, len(items))
		for i, item := range items {
			next, err := s.redactAt(item, path.push(IndexSegment(i, len(items))), r)
			if err != nil {
				return value, err
			}
			out[i] = next
		}
		return content.Seq(out...), nil

	case content.KindMap:
		entries := value.Entries()
		out := make([]content.MapEntry, len(entries))
		for i, e := range entries {
			next, err := s.redactAt(e.Value, path.push(FieldSegment(keyString(e.Key))), r)
			if err != nil {
				return value, err
			}
			out[i] = content.MapEntry{Key: e.Key, Value: next}
		}
		return content.Map(out...), nil

	default:
		return value, nil
	}
}

// keyString renders a map key for path matching. Non-string scalar keys
// match by their text rendering.
func keyString(key content.Content) string {
	if s, ok := key.AsString(); ok {
		return s
	}
	if b, ok := key.AsBool(); ok {
		return strconv.FormatBool(b)
	}
	if i, ok := key.AsInt(); ok {
		return strconv.FormatInt(i, 10)
	}
	if u, ok := key.AsUint(); ok {
		return strconv.FormatUint(u, 10)
	}
	if f, ok := key.AsFloat(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ""
}
