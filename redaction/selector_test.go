package redaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector_Valid(t *testing.T) {
	tests := []string{
		".id",
		".user.name",
		".users[0]",
		".users[-1].id",
		`["weird key"]`,
		`.config["with \"quotes\""]`,
		".*",
		".users[*].id",
		".**.id",
		".snake_case-key",
	}

	for _, pattern := range tests {
		t.Run(pattern, func(t *testing.T) {
			sel, err := ParseSelector(pattern)
			require.NoError(t, err)
			assert.Equal(t, pattern, sel.Pattern())
		})
	}
}

func TestParseSelector_Invalid(t *testing.T) {
	tests := []struct {
		pattern string
		message string
	}{
		{"", "empty pattern"},
		{"id", "expected '.' or '['"},
		{".", "expected a key name after '.'"},
		{".users[", "unterminated '['"},
		{".users[abc]", "expected an integer index"},
		{`.users["open`, "unterminated quoted key"},
		{`.users["x\`, "dangling escape"},
		{".users[*", `expected "]"`},
		{".a..b", "expected a key name after '.'"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := ParseSelector(tt.pattern)
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.pattern, parseErr.Pattern)
			assert.Contains(t, parseErr.Message, tt.message)
		})
	}
}

func TestParseError_Error(t *testing.T) {
	_, err := ParseSelector(".users[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insta: invalid selector")
	assert.Contains(t, err.Error(), `".users["`)
	assert.Contains(t, err.Error(), "offset")
}

func TestSelector_Matches(t *testing.T) {
	tests := []struct {
		pattern string
		path    Path
		want    bool
	}{
		{".id", NewPath(FieldSegment("id")), true},
		{".id", NewPath(FieldSegment("name")), false},
		{".id", NewPath(FieldSegment("user"), FieldSegment("id")), false},
		{".user.id", NewPath(FieldSegment("user"), FieldSegment("id")), true},
		{".users[0]", NewPath(FieldSegment("users"), IndexSegment(0, 3)), true},
		{".users[1]", NewPath(FieldSegment("users"), IndexSegment(0, 3)), false},
		{".users[-1]", NewPath(FieldSegment("users"), IndexSegment(2, 3)), true},
		{".users[-1]", NewPath(FieldSegment("users"), IndexSegment(1, 3)), false},
		{".*", NewPath(FieldSegment("anything")), true},
		{".*", NewPath(IndexSegment(5, 9)), true},
		{".users[*].id", NewPath(FieldSegment("users"), IndexSegment(7, 9), FieldSegment("id")), true},
		{`["weird key"]`, NewPath(FieldSegment("weird key")), true},
		{".**.id", NewPath(FieldSegment("id")), true},
		{".**.id", NewPath(FieldSegment("a"), FieldSegment("b"), FieldSegment("id")), true},
		{".**.id", NewPath(FieldSegment("a"), FieldSegment("id"), FieldSegment("b")), false},
		{".a.**", NewPath(FieldSegment("a"), FieldSegment("x"), IndexSegment(0, 1)), true},
		{".a.**", NewPath(FieldSegment("b")), false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.path.String(), func(t *testing.T) {
			sel, err := ParseSelector(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sel.Matches(tt.path))
		})
	}
}

func TestPath_String(t *testing.T) {
	p := NewPath(
		FieldSegment("users"),
		IndexSegment(0, 4),
		FieldSegment("id"),
	)
	assert.Equal(t, ".users[0].id", p.String())
}

func TestPath_String_QuotesNonIdentifierKeys(t *testing.T) {
	p := NewPath(FieldSegment("weird key"))
	assert.Equal(t, `["weird key"]`, p.String())
}

func TestPathSegment_Accessors(t *testing.T) {
	key := FieldSegment("name")
	k, ok := key.Key()
	assert.True(t, ok)
	assert.Equal(t, "name", k)
	_, ok = key.Index()
	assert.False(t, ok)

	idx := IndexSegment(3, 5)
	i, ok := idx.Index()
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = idx.Key()
	assert.False(t, ok)
}
