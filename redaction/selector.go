package redaction

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError describes a selector pattern that could not be parsed.
type ParseError struct {
	Pattern string // the full pattern that was being parsed
	Offset  int    // byte offset of the failure
	Message string // what went wrong
}

// Error formats the failure with the pattern and offset.
func (e *ParseError) Error() string {
	return fmt.Sprintf("insta: invalid selector %q: %s (at offset %d)", e.Pattern, e.Message, e.Offset)
}

// selSegmentKind discriminates selector segment variants.
type selSegmentKind int

const (
	selKey selSegmentKind = iota
	selIndex
	selWildcard
	selDeepWildcard
)

// selSegment is one parsed step of a selector pattern.
type selSegment struct {
	kind  selSegmentKind
	key   string
	index int
}

// Selector is a parsed, reusable path pattern. A Selector owns all of
// its state; it remains valid indefinitely after parsing and is safe for
// concurrent use.
type Selector struct {
	pattern string
	segs    []selSegment
}

// ParseSelector parses a path expression into a Selector. The grammar is
// documented on the package; parsing is eager so syntax errors surface
// at registration time rather than at comparison time.
func ParseSelector(pattern string) (*Selector, error) {
	p := &selectorParser{pattern: pattern}
	segs, err := p.parse()
	if err != nil {
		return nil, err
	}
	return &Selector{pattern: pattern, segs: segs}, nil
}

// Pattern returns the expression the selector was parsed from.
func (s *Selector) Pattern() string {
	return s.pattern
}

// Matches reports whether the selector matches the given path.
func (s *Selector) Matches(path Path) bool {
	return matchSegments(s.segs, path.segs)
}

// matchSegments matches selector segments against path segments, with
// deep wildcards consuming zero or more path segments.
func matchSegments(sel []selSegment, path []PathSegment) bool {
	if len(sel) == 0 {
		return len(path) == 0
	}
	if sel[0].kind == selDeepWildcard {
		for skip := 0; skip <= len(path); skip++ {
			if matchSegments(sel[1:], path[skip:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	return sel[0].matchesOne(path[0]) && matchSegments(sel[1:], path[1:])
}

func (s selSegment) matchesOne(seg PathSegment) bool {
	switch s.kind {
	case selWildcard:
		return true
	case selKey:
		key, ok := seg.Key()
		return ok && key == s.key
	case selIndex:
		idx, ok := seg.Index()
		if !ok {
			return false
		}
		want := s.index
		if want < 0 {
			want += seg.length
		}
		return idx == want
	default:
		return false
	}
}

// selectorParser is a hand-rolled scanner over the pattern bytes.
type selectorParser struct {
	pattern string
	pos     int
}

func (p *selectorParser) parse() ([]selSegment, error) {
	if p.pattern == "" {
		return nil, p.errorf(0, "empty pattern")
	}

	var segs []selSegment
	for p.pos < len(p.pattern) {
		switch p.pattern[p.pos] {
		case '.':
			seg, err := p.parseDot()
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		case '[':
			seg, err := p.parseBracket()
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
		default:
			return nil, p.errorf(p.pos, "expected '.' or '['")
		}
	}
	return segs, nil
}

// parseDot consumes ".name", ".*" or ".**".
func (p *selectorParser) parseDot() (selSegment, error) {
	start := p.pos
	p.pos++ // consume '.'

	if strings.HasPrefix(p.pattern[p.pos:], "**") {
		p.pos += 2
		return selSegment{kind: selDeepWildcard}, nil
	}
	if strings.HasPrefix(p.pattern[p.pos:], "*") {
		p.pos++
		return selSegment{kind: selWildcard}, nil
	}

	end := p.pos
	for end < len(p.pattern) && isIdentByte(p.pattern[end]) {
		end++
	}
	if end == p.pos {
		return selSegment{}, p.errorf(start, "expected a key name after '.'")
	}
	key := p.pattern[p.pos:end]
	p.pos = end
	return selSegment{kind: selKey, key: key}, nil
}

// parseBracket consumes "[index]", "[*]" or a quoted key.
func (p *selectorParser) parseBracket() (selSegment, error) {
	start := p.pos
	p.pos++ // consume '['

	if p.pos >= len(p.pattern) {
		return selSegment{}, p.errorf(start, "unterminated '['")
	}

	switch {
	case p.pattern[p.pos] == '*':
		p.pos++
		if err := p.expect(']'); err != nil {
			return selSegment{}, err
		}
		return selSegment{kind: selWildcard}, nil

	case p.pattern[p.pos] == '"':
		key, err := p.parseQuoted()
		if err != nil {
			return selSegment{}, err
		}
		if err := p.expect(']'); err != nil {
			return selSegment{}, err
		}
		return selSegment{kind: selKey, key: key}, nil

	default:
		end := p.pos
		for end < len(p.pattern) && p.pattern[end] != ']' {
			end++
		}
		if end == len(p.pattern) {
			return selSegment{}, p.errorf(start, "unterminated '['")
		}
		idx, err := strconv.Atoi(p.pattern[p.pos:end])
		if err != nil {
			return selSegment{}, p.errorf(p.pos, "expected an integer index, '*' or a quoted key")
		}
		p.pos = end + 1
		return selSegment{kind: selIndex, index: idx}, nil
	}
}

// parseQuoted consumes a double-quoted key with backslash escapes.
func (p *selectorParser) parseQuoted() (string, error) {
	start := p.pos
	p.pos++ // consume opening quote

	var b strings.Builder
	for p.pos < len(p.pattern) {
		ch := p.pattern[p.pos]
		switch ch {
		case '"':
			p.pos++
			return b.String(), nil
		case '\\':
			if p.pos+1 >= len(p.pattern) {
				return "", p.errorf(p.pos, "dangling escape")
			}
			p.pos++
			b.WriteByte(p.pattern[p.pos])
			p.pos++
		default:
			b.WriteByte(ch)
			p.pos++
		}
	}
	return "", p.errorf(start, "unterminated quoted key")
}

func (p *selectorParser) expect(ch byte) error {
	if p.pos >= len(p.pattern) || p.pattern[p.pos] != ch {
		return p.errorf(p.pos, fmt.Sprintf("expected %q", string(ch)))
	}
	p.pos++
	return nil
}

func (p *selectorParser) errorf(offset int, message string) *ParseError {
	return &ParseError{Pattern: p.pattern, Offset: offset, Message: message}
}

func isIdentByte(ch byte) bool {
	switch {
	case ch >= 'a' && ch <= 'z':
		return true
	case ch >= 'A' && ch <= 'Z':
		return true
	case ch >= '0' && ch <= '9':
		return true
	case ch == '_' || ch == '-':
		return true
	default:
		return false
	}
}
