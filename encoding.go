// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jspan

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/jspan/internal/escape"

	"go4.org/mem"
)

// ParseFloat decodes v as a single-precision floating-point value. It reports
// an error unless all of v is consumed. A value out of range for float32 is
// rounded to ±Inf without error. ParseFloat accepts the forms described for
// IsNumber.
func ParseFloat(v mem.RO) (float32, error) {
	f, err := parseFloat(v)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: invalid number %q", ErrMalformed, v.StringCopy())
	}
	return float32(f), nil
}

// ParseInt decodes v as a base-10 32-bit integer. It reports an error unless
// all of v is consumed and the value is in range.
func ParseInt(v mem.RO) (int32, error) {
	z, err := mem.ParseInt(v, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid integer %q", ErrMalformed, v.StringCopy())
	}
	return int32(z), nil
}

// ParseBool decodes v as a Boolean value. It reports an error unless v is
// exactly "true" or "false", in which case the value returned is false.
func ParseBool(v mem.RO) (bool, error) {
	if IsTrue(v) {
		return true, nil
	} else if IsFalse(v) {
		return false, nil
	}
	return false, fmt.Errorf("%w: invalid bool %q", ErrMalformed, v.StringCopy())
}

// ParseString decodes the quoted string v into the front of dst, and reports
// the number of bytes written. The quotes are removed and escapes are decoded
// as described for Unquote.
//
// The decoded text is at most StringBound(v) bytes long. If dst is shorter
// than that, ParseString reports an error wrapping ErrCapacity.
func ParseString(dst []byte, v mem.RO) (int, error) {
	if !IsString(v) {
		return 0, fmt.Errorf("%w: not a string", ErrMalformed)
	}
	if need := StringBound(v); len(dst) < need {
		return 0, fmt.Errorf("%w: have %d bytes, need %d", ErrCapacity, len(dst), need)
	}
	n, err := escape.Into(dst, interior(v))
	if err != nil {
		return n, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return n, nil
}

// StringBound reports the number of bytes needed to hold the decoded contents
// of the quoted string v.
func StringBound(v mem.RO) int { return max(v.Len()-2, 0) }

// Unquote decodes the quoted string v and returns the result in a new slice.
//
// Double quotation marks are removed. The escapes \n, \r, \b, and \t are
// replaced by their control characters; any other escaped character is kept
// without its backslash. Unicode escapes (\uXXXX) are not decoded: the result
// contains "uXXXX" literally.
func Unquote(v mem.RO) ([]byte, error) {
	if !IsString(v) {
		return nil, fmt.Errorf("%w: not a string", ErrMalformed)
	}
	dec, err := escape.Append(make([]byte, 0, StringBound(v)), interior(v))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return dec, nil
}

// interior returns v without its opening quote and the byte presumed to be
// its closing quote.
func interior(v mem.RO) mem.RO { return v.Slice(1, v.Len()-1) }

// GetFloat advances c to its next value and decodes it with ParseFloat.
func (c *Cursor) GetFloat() (float32, error) {
	if err := c.Next(); err != nil {
		return 0, err
	}
	return ParseFloat(c.Text())
}

// GetInt advances c to its next value and decodes it with ParseInt.
func (c *Cursor) GetInt() (int32, error) {
	if err := c.Next(); err != nil {
		return 0, err
	}
	return ParseInt(c.Text())
}

// GetBool advances c to its next value and decodes it with ParseBool.
func (c *Cursor) GetBool() (bool, error) {
	if err := c.Next(); err != nil {
		return false, err
	}
	return ParseBool(c.Text())
}

// GetString advances c to its next value and decodes it into dst with
// ParseString, reporting the number of bytes written.
func (c *Cursor) GetString(dst []byte) (int, error) {
	if err := c.Next(); err != nil {
		return 0, err
	}
	return ParseString(dst, c.Text())
}
