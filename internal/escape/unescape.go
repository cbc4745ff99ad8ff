// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles unescaping of quoted string interiors.
package escape

import (
	"errors"

	"go4.org/mem"
)

// ErrIncomplete is reported for a backslash at the end of the input.
var ErrIncomplete = errors.New("incomplete escape sequence")

// Append decodes src, which must have the enclosing double quotation marks
// already removed, and appends the result to dst.
//
// The escapes \n, \r, \b, and \t are replaced by the corresponding control
// characters. Any other escaped byte is copied literally without its
// backslash, so \" yields " and \f yields f. In particular \u is not decoded:
// the "u" and the hex digits following it are copied verbatim.
//
// The decoded text is never longer than src.
func Append(dst []byte, src mem.RO) ([]byte, error) {
	for {
		i := mem.IndexByte(src, '\\')
		if i < 0 {
			return mem.Append(dst, src), nil
		}
		dst = mem.Append(dst, src.SliceTo(i))
		if i+1 >= src.Len() {
			return dst, ErrIncomplete
		}
		dst = append(dst, control(src.At(i+1)))
		src = src.SliceFrom(i + 2)
	}
}

// Into decodes src as Append does, writing the result into the front of dst.
// It reports the number of bytes written. The caller must ensure len(dst) is
// at least src.Len(); Into panics if dst is too short.
func Into(dst []byte, src mem.RO) (int, error) {
	if len(dst) < src.Len() {
		panic("escape: destination too short")
	}
	out, err := Append(dst[:0], src)
	return len(out), err
}

func control(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 't':
		return '\t'
	}
	return b
}
