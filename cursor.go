// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"go4.org/mem"
)

// Kind is the classification hint reported with each token.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // no token
	Object              // opening brace "{" of an object
	Array               // opening bracket "[" of an array
	String              // quoted string, including its quotes
	Bare                // unquoted run: number, true, false, null, or other text
)

var kindStr = [...]string{
	Invalid: "invalid",
	Object:  "object",
	Array:   "array",
	String:  "string",
	Bare:    "bare",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// ErrMalformed is the cause of all errors reporting input that does not
// conform to the grammar, or a token that cannot be converted to the
// requested type.
var ErrMalformed = errors.New("malformed input")

// ErrCapacity is the cause of errors reporting that caller-provided storage
// is too small to hold a decoded value.
var ErrCapacity = errors.New("insufficient capacity")

// scanState is the lexical mode of a cursor.
type scanState byte

const (
	scanNone   scanState = iota // before the first byte
	scanStruct                  // looking for the start of a value
	scanBare                    // inside an unquoted token
	scanString                  // inside a quoted string
	scanUTF8                    // awaiting UTF-8 continuation bytes
	scanEscape                  // after a backslash in a string
)

// A Cursor scans the values of a buffered input. Each call to Next advances
// the cursor to the next value at its own level, or reports an error.
//
// A Cursor never copies its input. The spans it reports are offsets into the
// buffer it was constructed with, and Text returns views of that buffer.
type Cursor struct {
	data   mem.RO
	cur    int     // offset of the next unexamined byte
	end    int     // one past the last readable offset
	parent *Cursor // cursor this one was entered from, until written back

	state scanState

	// In scanStruct, depth counts the containers opened but not yet closed
	// since the last value reported at this level. In the other states it is
	// nonzero when the token being scanned lies inside such a container, in
	// which case a terminator continues the enclosing container rather than
	// ending a token.
	depth uint
	utf8  int  // UTF-8 continuation bytes still expected
	done  bool // the end of scope has been reported

	start int // start offset of the token being scanned
	kind  Kind
	pos   int // span of the current token
	epos  int
	err   error
}

// NewCursor constructs a root cursor over the complete contents of data.
func NewCursor(data mem.RO) *Cursor {
	return &Cursor{data: data, end: data.Len()}
}

// Next advances c to the next value in its scope and returns nil, or reports
// an error. At the end of the scope, Next returns io.EOF; this happens when c
// reaches the closing delimiter of the container it was entered into, or the
// end of the input for a root cursor.
//
// When Next reports an object or array, only the opening delimiter has been
// consumed. The caller may call Enter to scan the contents of the container,
// or call Next again to skip the whole container.
func (c *Cursor) Next() error {
	c.kind = Invalid
	c.err = nil
	if c.done {
		return c.setErr(io.EOF)
	}

	for c.cur < c.end {
		ch := c.data.At(c.cur)

		switch c.state {
		case scanNone:
			c.state = scanStruct
			c.depth = 0
			continue // examine ch again in scanStruct

		case scanStruct:
			switch {
			case isSpace(ch) || ch == ':' || ch == ',':
				// skip separators
			case ch == '"':
				c.start = c.cur
				c.state = scanString
			case ch == '[' || ch == '{':
				c.start = c.cur
				c.depth++
				if c.depth == 1 {
					c.cur++
					if ch == '{' {
						return c.emit(Object)
					}
					return c.emit(Array)
				}
			case ch == ']' || ch == '}':
				if c.depth == 0 {
					return c.endScope()
				}
				c.depth--
			case ch == '-' || isAlnum(ch):
				c.start = c.cur
				c.state = scanBare
			default:
				return c.failf("unexpected %s", quoteByte(ch))
			}

		case scanBare:
			if isSpace(ch) || ch == ':' || ch == ',' || ch == ']' || ch == '}' {
				c.state = scanStruct
				if c.depth > 0 {
					continue // the terminator belongs to the enclosing container
				}
				return c.emit(Bare)
			} else if !isPrint(ch) {
				return c.failf("invalid %s in bare value", quoteByte(ch))
			}

		case scanString:
			switch {
			case ch == '\\':
				c.state = scanEscape
			case ch == '"':
				c.state = scanStruct
				if c.depth == 0 {
					c.cur++
					return c.emit(String)
				}
			case ch >= 0xC0 && ch <= 0xDF:
				c.utf8, c.state = 1, scanUTF8
			case ch >= 0xE0 && ch <= 0xEF:
				c.utf8, c.state = 2, scanUTF8
			case ch >= 0xF0 && ch <= 0xF7:
				c.utf8, c.state = 3, scanUTF8
			case !isPrint(ch):
				return c.failf("invalid %s in string", quoteByte(ch))
			}

		case scanUTF8:
			if ch < 0x80 || ch > 0xBF {
				return c.failf("invalid UTF-8 continuation %s", quoteByte(ch))
			}
			c.utf8--
			if c.utf8 == 0 {
				c.state = scanString
			}

		case scanEscape:
			switch ch {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
				c.state = scanString
			default:
				return c.failf("invalid %s after escape", quoteByte(ch))
			}
		}
		c.cur++
	}

	// Reached the end of the readable input.
	switch {
	case c.state == scanBare && c.depth == 0:
		c.state = scanStruct
		return c.emit(Bare)
	case c.state == scanString || c.state == scanUTF8 || c.state == scanEscape:
		return c.failf("unterminated string")
	case c.depth != 0:
		return c.failf("unterminated container")
	case c.parent != nil:
		return c.failf("missing closing delimiter")
	}
	c.done = true
	c.pos, c.epos = c.cur, c.cur
	return c.setErr(io.EOF)
}

// Enter returns a new cursor that scans the contents of the container most
// recently reported by c. Enter does not consume any input.
//
// When the child reports io.EOF at the closing delimiter of the container, it
// updates c so that scanning of c resumes after the container. If the child
// is abandoned before then, c is not updated and a subsequent call to c.Next
// will skip the remainder of the container.
//
// A child that reaches the end of the input before its closing delimiter
// reports an error wrapping ErrMalformed rather than io.EOF, even at depth 0,
// and does not update c.
func (c *Cursor) Enter() *Cursor {
	return &Cursor{data: c.data, cur: c.cur, end: c.end, parent: c}
}

// EnterContainer advances c to its next value, which must be a container whose
// opening delimiter is delim, and returns a cursor over its contents.
func (c *Cursor) EnterContainer(delim byte) (*Cursor, error) {
	if err := c.Next(); err != nil {
		return nil, err
	}
	if c.kind != Object && c.kind != Array {
		return nil, posError{c.pos, fmt.Errorf("%w: got %v, want %q", ErrMalformed, c.kind, delim)}
	} else if got := c.data.At(c.pos); got != delim {
		return nil, posError{c.pos, fmt.Errorf("%w: got %q, want %q", ErrMalformed, got, delim)}
	}
	return c.Enter(), nil
}

// EnterObject advances c to its next value, which must be an object, and
// returns a cursor over its members.
func (c *Cursor) EnterObject() (*Cursor, error) { return c.EnterContainer('{') }

// EnterArray advances c to its next value, which must be an array, and
// returns a cursor over its elements.
func (c *Cursor) EnterArray() (*Cursor, error) { return c.EnterContainer('[') }

// Kind returns the kind of the current token.
func (c *Cursor) Kind() Kind { return c.kind }

// Err returns the last error reported by Next.
func (c *Cursor) Err() error { return c.err }

// Text returns a view of the undecoded text of the current token. For an
// object or array this is only the opening delimiter.
func (c *Cursor) Text() mem.RO { return c.data.Slice(c.pos, c.epos) }

// Span returns the location span of the current token. After Next reports
// io.EOF at a closing delimiter, Span reports the location of the delimiter.
func (c *Cursor) Span() Span { return Span{Pos: c.pos, End: c.epos} }

// Offset returns the offset of the next byte c will examine.
func (c *Cursor) Offset() int { return c.cur }

// Location returns the complete location of the current token.
func (c *Cursor) Location() Location {
	return Location{
		Span:  c.Span(),
		First: lineColAt(c.data, c.pos),
		Last:  lineColAt(c.data, c.epos),
	}
}

func (c *Cursor) emit(kind Kind) error {
	c.kind = kind
	c.pos, c.epos = c.start, c.cur
	return nil
}

// endScope handles a closing delimiter at depth 0. If c was entered from a
// parent, the parent is moved to the delimiter, which it then consumes as the
// close of the container it reported; this happens exactly once.
func (c *Cursor) endScope() error {
	c.pos, c.epos = c.cur, c.cur+1
	if p := c.parent; p != nil {
		p.cur = c.cur
		c.parent = nil
	}
	c.cur++
	c.done = true
	return c.setErr(io.EOF)
}

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (c *Cursor) setErr(err error) error {
	c.err = err
	return err
}

func (c *Cursor) failf(msg string, args ...any) error {
	c.pos, c.epos = c.cur, c.cur
	return c.setErr(posError{c.cur, fmt.Errorf("%w: "+msg, append([]any{ErrMalformed}, args...)...)})
}

// quoteByte quotes ch as a character literal, escaping non-ASCII bytes as
// \x sequences rather than interpreting them as runes.
func quoteByte(ch byte) string {
	if ch < utf8.RuneSelf {
		return strconv.QuoteRune(rune(ch))
	}
	return fmt.Sprintf(`'\x%02x'`, ch)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isPrint(ch byte) bool { return ch >= 32 && ch <= 126 }

func isAlnum(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
