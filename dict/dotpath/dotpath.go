package dotpath

import (
	"bytes"
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("dotpath syntax error")

// Path is a linked list of segments. Exactly one of Field and Index is set
// on each segment.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func Field(name string) *Path {
	return &Path{Field: &name}
}

func Index(i int) *Path {
	return &Path{Index: &i}
}

// Parse parses s. See the package documentation for the syntax.
func Parse(s string) (*Path, error) {
	var head, tail *Path
	push := func(seg *Path) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '[':
			j := strings.IndexByte(s[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index at %d in %q", ErrSyntax, i, s)
			}
			n, err := strconv.Atoi(s[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrSyntax, s[i+1:i+j], s)
			}
			push(Index(n))
			i += j + 1
		case c == '.':
			if head == nil {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrSyntax, s)
			}
			name, next, err := parseField(s, i+1)
			if err != nil {
				return nil, err
			}
			push(Field(name))
			i = next
		default:
			if head != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at %d in %q", ErrSyntax, i, s)
			}
			name, next, err := parseField(s, i)
			if err != nil {
				return nil, err
			}
			push(Field(name))
			i = next
		}
	}
	return head, nil
}

func parseField(s string, i int) (string, int, error) {
	if i >= len(s) {
		return "", i, fmt.Errorf("%w: missing field at end of %q", ErrSyntax, s)
	}
	switch s[i] {
	case '"':
		j := i + 1
		for j < len(s) && s[j] != '"' {
			if s[j] == '\\' {
				j++
			}
			j++
		}
		if j >= len(s) {
			return "", i, fmt.Errorf("%w: unterminated quote at %d in %q", ErrSyntax, i, s)
		}
		name, err := strconv.Unquote(s[i : j+1])
		if err != nil {
			return "", i, fmt.Errorf("%w: %v", ErrSyntax, err)
		}
		return name, j + 1, nil
	case '\'':
		j := strings.IndexByte(s[i+1:], '\'')
		if j < 0 {
			return "", i, fmt.Errorf("%w: unterminated quote at %d in %q", ErrSyntax, i, s)
		}
		return s[i+1 : i+1+j], i + 2 + j, nil
	}
	j := i
	for j < len(s) && s[j] != '.' && s[j] != '[' {
		if s[j] == ']' {
			return "", i, fmt.Errorf("%w: unexpected ']' at %d in %q", ErrSyntax, j, s)
		}
		j++
	}
	if j == i {
		return "", i, fmt.Errorf("%w: empty field at %d in %q", ErrSyntax, i, s)
	}
	return s[i:j], j, nil
}

func quoteField(f string) bool {
	return f == "" || strings.ContainsAny(f, ".[]'\"")
}

// String returns the canonical form of p, which Parse maps back to p.
func (p *Path) String() string {
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		buf.WriteString(x.segmentString(x == p))
	}
	return buf.String()
}

func (p *Path) segmentString(first bool) string {
	switch {
	case p.Field != nil:
		f := *p.Field
		if quoteField(f) {
			f = strconv.Quote(f)
		}
		if first {
			return f
		}
		return "." + f
	case p.Index != nil:
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// All yields the segments of p in order.
func (p *Path) All() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for x := p; x != nil; x = x.Next {
			if !yield(x) {
				return
			}
		}
	}
}

func (p *Path) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Split returns a copy of p without its last segment, and the last
// segment. Both are nil for the root path.
func (p *Path) Split() (*Path, *Path) {
	if p == nil {
		return nil, nil
	}
	var head, tail *Path
	x := p
	for ; x.Next != nil; x = x.Next {
		seg := x.copySegment()
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head, x.copySegment()
}

func (p *Path) Append(seg *Path) *Path {
	if p == nil {
		return seg
	}
	res := p.copySegment()
	tail := res
	for x := p.Next; x != nil; x = x.Next {
		tail.Next = x.copySegment()
		tail = tail.Next
	}
	tail.Next = seg
	return res
}

func (p *Path) copySegment() *Path {
	switch {
	case p.Field != nil:
		return Field(*p.Field)
	case p.Index != nil:
		return Index(*p.Index)
	}
	return &Path{}
}
