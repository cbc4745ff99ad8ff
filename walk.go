// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// An Anchor represents a location in source text. The methods of an Anchor
// will report the location, kind, and contents of the anchor.
type Anchor interface {
	Kind() Kind         // Returns the kind of the anchor
	Text() mem.RO       // Returns a view of the raw (undecoded) text of the anchor
	Span() Span         // Returns the span of the anchor
	Location() Location // Returns the full location of the anchor
}

// A Handler handles events from walking an input. If a method reports an
// error, walking stops and that error is returned to the caller.
//
// The Anchor argument to a Handler method is only valid for the duration of
// that method call.
type Handler interface {
	// Begin a new object, whose open brace is at loc.
	BeginObject(loc Anchor) error

	// End the most-recently-opened object, whose closing delimiter is at loc.
	EndObject(loc Anchor) error

	// Begin a new array, whose open bracket is at loc.
	BeginArray(loc Anchor) error

	// End the most-recently-opened array, whose closing delimiter is at loc.
	EndArray(loc Anchor) error

	// Report a value at the given location. The kind of the value can be
	// recovered from the anchor. Strings are quoted. Object member keys are
	// reported as values. An object or array is reported as a value only when
	// it is deeper than the walker's MaxDepth, and is not entered.
	Value(loc Anchor) error

	// EndOfInput reports the end of the input.
	EndOfInput(loc Anchor)
}

// A Walker enters every container of its input and reports the structure to a
// Handler. It keeps an explicit stack of cursors and does not recur.
type Walker struct {
	// If positive, containers nested more deeply than this are not entered,
	// and are instead reported to Value and skipped.
	MaxDepth int
}

// Walk walks c with a default Walker.
func Walk(c *Cursor, h Handler) error { return Walker{}.Walk(c, h) }

// Walk delivers events to h for each value of c until either an error occurs
// or c reaches the end of its scope. In case of a lexical error, the returned
// error has type [*SyntaxError]. Errors reported by h are returned as-is.
func (w Walker) Walk(c *Cursor, h Handler) error {
	stk := []*Cursor{c}
	for {
		top := stk[len(stk)-1]
		err := top.Next()
		if err == io.EOF {
			if len(stk) == 1 {
				h.EndOfInput(top)
				return nil
			}
			stk = stk[:len(stk)-1]
			if stk[len(stk)-1].Kind() == Object {
				err = h.EndObject(top)
			} else {
				err = h.EndArray(top)
			}
			if err != nil {
				return err
			}
			continue
		} else if err != nil {
			return &SyntaxError{Location: top.Location().First, Message: err.Error(), err: err}
		}

		switch kind := top.Kind(); {
		case kind != Object && kind != Array:
			err = h.Value(top)
		case w.MaxDepth > 0 && len(stk) > w.MaxDepth:
			err = h.Value(top)
		case kind == Object:
			err = h.BeginObject(top)
			stk = append(stk, top.Enter())
		default:
			err = h.BeginArray(top)
			stk = append(stk, top.Enter())
		}
		if err != nil {
			return err
		}
	}
}

// SyntaxError is the concrete type of lexical errors reported by a Walker.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
