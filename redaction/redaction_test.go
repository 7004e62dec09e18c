package redaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c-spencer/insta/content"
)

func mustSelector(t *testing.T, pattern string) *Selector {
	t.Helper()
	sel, err := ParseSelector(pattern)
	require.NoError(t, err)
	return sel
}

func userTree() content.Content {
	return content.From(map[string]any{
		"users": []any{
			map[string]any{"id": "u-1", "name": "alice"},
			map[string]any{"id": "u-2", "name": "bob"},
		},
	})
}

func TestRedact_StaticReplacesEveryMatch(t *testing.T) {
	sel := mustSelector(t, ".users[*].id")

	out, err := sel.Redact(userTree(), Static("[id]"))
	require.NoError(t, err)

	users, _ := out.Get("users")
	for _, user := range users.Items() {
		id, ok := user.Get("id")
		require.True(t, ok)
		s, _ := id.AsString()
		assert.Equal(t, "[id]", s)

		name, _ := user.Get("name")
		ns, _ := name.AsString()
		assert.NotEqual(t, "[id]", ns, "unmatched values must be untouched")
	}
}

func TestRedact_NegativeIndex(t *testing.T) {
	sel := mustSelector(t, ".users[-1].name")

	out, err := sel.Redact(userTree(), Static("[last]"))
	require.NoError(t, err)

	users, _ := out.Get("users")
	first, _ := users.Items()[0].Get("name")
	last, _ := users.Items()[1].Get("name")

	fs, _ := first.AsString()
	ls, _ := last.AsString()
	assert.Equal(t, "alice", fs)
	assert.Equal(t, "[last]", ls)
}

func TestRedact_DeepWildcard(t *testing.T) {
	sel := mustSelector(t, ".**.id")

	tree := content.From(map[string]any{
		"id": "top",
		"nested": map[string]any{
			"id":   "mid",
			"more": map[string]any{"id": "deep"},
		},
	})

	out, err := sel.Redact(tree, Static("[id]"))
	require.NoError(t, err)

	top, _ := out.Get("id")
	s, _ := top.AsString()
	assert.Equal(t, "[id]", s)

	nested, _ := out.Get("nested")
	mid, _ := nested.Get("id")
	s, _ = mid.AsString()
	assert.Equal(t, "[id]", s)

	more, _ := nested.Get("more")
	deep, _ := more.Get("id")
	s, _ = deep.AsString()
	assert.Equal(t, "[id]", s)
}

func TestRedact_DynamicReceivesValueAndPath(t *testing.T) {
	sel := mustSelector(t, ".users[*].id")

	var paths []string
	red := Dynamic(func(value content.Content, path Path) any {
		paths = append(paths, path.String())
		s, _ := value.AsString()
		return strings.ToUpper(s)
	})

	out, err := sel.Redact(userTree(), red)
	require.NoError(t, err)

	assert.Equal(t, []string{".users[0].id", ".users[1].id"}, paths)

	users, _ := out.Get("users")
	id0, _ := users.Items()[0].Get("id")
	s, _ := id0.AsString()
	assert.Equal(t, "U-1", s)
}

func TestRedact_DynamicResultIsConverted(t *testing.T) {
	sel := mustSelector(t, ".count")

	red := Dynamic(func(value content.Content, path Path) any {
		return 0 // plain Go value, not a Content
	})

	tree := content.From(map[string]any{"count": 99})
	out, err := sel.Redact(tree, red)
	require.NoError(t, err)

	count, _ := out.Get("count")
	n, ok := count.AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(0), n)
}

func TestRedact_AssertionPassesAndLeavesTree(t *testing.T) {
	sel := mustSelector(t, ".users[*].id")

	var seen int
	red := Assertion(func(value content.Content, path Path) error {
		seen++
		s, _ := value.AsString()
		if !strings.HasPrefix(s, "u-") {
			return errors.New("id does not look like a user id")
		}
		return nil
	})

	tree := userTree()
	out, err := sel.Redact(tree, red)
	require.NoError(t, err)
	assert.Equal(t, 2, seen, "assertion must run once per match")
	assert.True(t, out.Equal(tree), "assertions must not modify the tree")
}

func TestRedact_AssertionFailureAborts(t *testing.T) {
	sel := mustSelector(t, ".users[*].id")

	failure := errors.New("bad id")
	red := Assertion(func(value content.Content, path Path) error {
		if s, _ := value.AsString(); s == "u-2" {
			return failure
		}
		return nil
	})

	_, err := sel.Redact(userTree(), red)
	assert.ErrorIs(t, err, failure)
}

func TestRedact_NoMatchReturnsEqualTree(t *testing.T) {
	sel := mustSelector(t, ".absent.path")

	tree := userTree()
	out, err := sel.Redact(tree, Static("x"))
	require.NoError(t, err)
	assert.True(t, out.Equal(tree))
}

func TestRedact_QuotedKey(t *testing.T) {
	sel := mustSelector(t, `["api key"]`)

	tree := content.From(map[string]any{"api key": "secret"})
	out, err := sel.Redact(tree, Static("[redacted]"))
	require.NoError(t, err)

	v, ok := out.Get("api key")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "[redacted]", s)
}

func TestRedact_ReplacementIsNotRevisited(t *testing.T) {
	sel := mustSelector(t, ".**.secret")

	// The replacement itself contains a "secret" key; it must survive,
	// because substituted values are not walked again.
	replacement := map[string]any{"secret": "kept"}

	tree := content.From(map[string]any{"secret": "original"})
	out, err := sel.Redact(tree, Static(replacement))
	require.NoError(t, err)

	inner, ok := out.Get("secret")
	require.True(t, ok)
	kept, ok := inner.Get("secret")
	require.True(t, ok)
	s, _ := kept.AsString()
	assert.Equal(t, "kept", s)
}

func TestRedactionKind(t *testing.T) {
	assert.Equal(t, KindStatic, Static("x").Kind())
	assert.Equal(t, KindDynamic, Dynamic(func(content.Content, Path) any { return nil }).Kind())
	assert.Equal(t, KindAssertion, Assertion(func(content.Content, Path) error { return nil }).Kind())
}
