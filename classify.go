// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"errors"
	"strconv"

	"go4.org/mem"
)

// The functions in this file classify the text of a token as reported by
// Cursor.Text. They do not modify their argument.

// IsObject reports whether v is the text of an object.
func IsObject(v mem.RO) bool { return v.Len() > 0 && v.At(0) == '{' }

// IsArray reports whether v is the text of an array.
func IsArray(v mem.RO) bool { return v.Len() > 0 && v.At(0) == '[' }

// IsContainer reports whether v is the text of an object or an array.
func IsContainer(v mem.RO) bool { return IsObject(v) || IsArray(v) }

// IsString reports whether v is the text of a quoted string.
func IsString(v mem.RO) bool { return v.Len() > 1 && v.At(0) == '"' }

// IsNull reports whether v is exactly "null".
func IsNull(v mem.RO) bool { return v.EqualString("null") }

// IsTrue reports whether v is exactly "true".
func IsTrue(v mem.RO) bool { return v.EqualString("true") }

// IsFalse reports whether v is exactly "false".
func IsFalse(v mem.RO) bool { return v.EqualString("false") }

// IsBool reports whether v is exactly "true" or "false".
func IsBool(v mem.RO) bool { return IsTrue(v) || IsFalse(v) }

// IsNumber reports whether the whole of v is a floating-point literal.
// Values too large or too small to represent are still numbers.
//
// The accepted forms are decimal literals with an optional sign, fraction, and
// exponent ("-1", ".5", "2.5e-3"), the case-insensitive names "inf",
// "infinity", and "nan", and hexadecimal literals with a binary exponent
// ("0x1p3"). A hexadecimal literal without an exponent ("0x10") is not a
// number, and neither is any text containing "_".
func IsNumber(v mem.RO) bool {
	_, err := parseFloat(v)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// parseFloat parses v as a 32-bit float, rejecting the "_" digit separators
// that the Go literal syntax allows.
func parseFloat(v mem.RO) (float64, error) {
	if mem.IndexByte(v, '_') >= 0 {
		return 0, strconv.ErrSyntax
	}
	return mem.ParseFloat(v, 32)
}

// IsInt reports whether the whole of v is a base-10 integer that fits in 32
// bits.
func IsInt(v mem.RO) bool {
	_, err := mem.ParseInt(v, 10, 32)
	return err == nil
}
