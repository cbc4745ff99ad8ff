// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jspan implements a zero-copy scanner for a relaxed JSON grammar.
//
// # Grammar
//
// A value is an object { ... }, an array [ ... ], a double-quoted string, or a
// bare run of printable ASCII that starts with a letter, digit, or "-" (this
// covers numbers, true, false, and null). Whitespace, ":", and "," are
// insignificant separators. Strings may contain UTF-8 and the escapes
// \" \\ \/ \b \f \n \r \t and \u.
//
// # Scanning
//
// A Cursor scans a buffer that is already in memory. Construct a cursor from a
// [mem.RO] view and call its Next method to iterate over the values at its
// level. Next advances to the next value and returns nil, or reports an error:
//
//	c := jspan.NewCursor(mem.B(input))
//	for c.Next() == nil {
//	   log.Printf("Next value: %v %q", c.Kind(), c.Text().StringCopy())
//	}
//
// Next returns io.EOF when the cursor reaches the end of its scope. Any other
// error wraps [ErrMalformed] and indicates a lexical error in the input.
//
//	if err := c.Err(); err != io.EOF {
//	   log.Fatalf("Scanning failed: %v", err)
//	}
//
// When Next reports an Object or Array, the cursor has consumed only the
// opening delimiter. Call Enter to get a cursor over the contents of the
// container. Once the child cursor reports io.EOF at the matching closing
// delimiter, the parent resumes after the container:
//
//	if c.Kind() == jspan.Array {
//	   sub := c.Enter()
//	   for sub.Next() == nil {
//	      // ...
//	   }
//	}
//
// If the caller does not enter a container, the next call to Next skips the
// whole container. A child cursor that is abandoned before it reports io.EOF
// does not update its parent.
//
// # Values
//
// The text of a token can be classified with IsObject, IsArray, IsString,
// IsNumber, IsBool, IsNull, and so on, and converted with ParseFloat,
// ParseInt, ParseBool, and ParseString. The Cursor methods GetFloat, GetInt,
// GetBool, and GetString combine a call to Next with a conversion.
//
// # Walking
//
// The Walk function enters every container of its input and delivers events
// to a Handler, in the manner of an event-driven stream parser.
package jspan
