package insta

import (
	"fmt"

	"github.com/c-spencer/insta/content"
	"github.com/c-spencer/insta/redaction"
)

// NewRule parses a selector and pairs it with a static replacement.
// Useful for building rule lists for SetRedactions.
func NewRule(selector string, replacement any) (Rule, error) {
	sel, err := redaction.ParseSelector(selector)
	if err != nil {
		return Rule{}, err
	}
	return Rule{Selector: sel, Redaction: redaction.Static(replacement)}, nil
}

// AddRedaction registers a static redaction: wherever the selector
// matches, the value is replaced by the given replacement (converted
// with content.From).
//
// The selector is parsed eagerly; on a syntax error the error is
// returned and no rule is added.
func (s *Settings) AddRedaction(selector string, replacement any) error {
	sel, err := redaction.ParseSelector(selector)
	if err != nil {
		return err
	}
	d := s.mut()
	d.redactions = append(d.redactions, Rule{
		Selector:  sel,
		Redaction: redaction.Static(replacement),
	})
	return nil
}

// AddDynamicRedaction registers a computed redaction: wherever the
// selector matches, the callback is invoked with the matched value and
// its path, and its result (converted with content.From) becomes the
// replacement.
//
// The callback may run long after registration and once per match; it
// must not borrow state from the registering scope and must be
// idempotent across runs.
func (s *Settings) AddDynamicRedaction(selector string, fn redaction.DynamicFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: dynamic redaction for selector %q", ErrNilCallback, selector)
	}
	sel, err := redaction.ParseSelector(selector)
	if err != nil {
		return err
	}
	d := s.mut()
	d.redactions = append(d.redactions, Rule{
		Selector:  sel,
		Redaction: redaction.Dynamic(fn),
	})
	return nil
}

// AddAssertion registers an assertion rule: wherever the selector
// matches, the callback is invoked with the matched value and its path.
// The tree is left unmodified; a non-nil error from the callback fails
// the evaluation.
func (s *Settings) AddAssertion(selector string, fn redaction.AssertionFunc) error {
	if fn == nil {
		return fmt.Errorf("%w: assertion for selector %q", ErrNilCallback, selector)
	}
	sel, err := redaction.ParseSelector(selector)
	if err != nil {
		return err
	}
	d := s.mut()
	d.redactions = append(d.redactions, Rule{
		Selector:  sel,
		Redaction: redaction.Assertion(fn),
	})
	return nil
}

// SetRedactions replaces the whole rule list. Handles sharing the old
// storage keep observing the old list.
func (s *Settings) SetRedactions(rules []Rule) {
	s.mut().redactions = append([]Rule(nil), rules...)
}

// ClearRedactions removes all redaction rules.
func (s *Settings) ClearRedactions() {
	s.mut().redactions = nil
}

// Redactions returns the registered rules in registration order. The
// returned slice is a copy; it reflects the handle's rule list at the
// moment of the call.
func (s Settings) Redactions() []Rule {
	return append([]Rule(nil), s.data().redactions...)
}

// ApplyRedactions runs the registered rules against a value tree in
// registration order and returns the rewritten tree. A later rule sees
// the output of earlier rules. The first assertion failure aborts the
// evaluation and is returned.
func (s Settings) ApplyRedactions(value content.Content) (content.Content, error) {
	for _, rule := range s.data().redactions {
		next, err := rule.Selector.Redact(value, rule.Redaction)
		if err != nil {
			return value, err
		}
		value = next
	}
	return value, nil
}

// Normalize prepares a captured value tree for comparison: maps are
// sorted when the sort-maps flag is set, then redactions are applied in
// registration order.
func (s Settings) Normalize(value content.Content) (content.Content, error) {
	if s.SortMaps() {
		value = value.SortMaps()
	}
	return s.ApplyRedactions(value)
}
