// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Value, a thin public entry point pairing a
// float64 with the Format/Options it should be read and written with,
// exposing the familiar Text/Append/String/Format quartet the teacher
// package's Decimal type exposes in decimal_toa.go.
package lexical

import "fmt"

// Value pairs a float64 with the Format and Options that govern how it
// is parsed and written. The zero Value holds 0 in DecimalFormat with
// DefaultOptions(10).
type Value struct {
	F       float64
	Fmt     Format
	Options Options
}

// NewValue returns a Value wrapping f with format and options.
func NewValue(f float64, format Format, options Options) Value {
	return Value{F: f, Fmt: format, Options: options}
}

// ParseValue parses buf into a Value using format and options, returning
// the number of bytes consumed and any error.
func ParseValue(buf []byte, format Format, options Options) (Value, int, error) {
	f, n, err := ParseFloat(buf, format, options)
	return Value{F: f, Fmt: format, Options: options}, n, err
}

func (v Value) resolved() (Format, Options) {
	format, options := v.Fmt, v.Options
	if format == (Format{}) {
		format = DecimalFormat
	}
	if options.DecimalPoint == 0 {
		options = DefaultOptions(format.MantissaRadix)
	}
	return format, options
}

// Append appends the formatted value to buf and returns the extended
// slice, as generated by v.String.
func (v Value) Append(buf []byte) []byte {
	format, options := v.resolved()
	scratch := make([]byte, FormattedSize(64, format.MantissaRadix)+16)
	n := WriteFloat(v.F, scratch, format, options)
	return append(buf, scratch[:n]...)
}

// Text returns the string form of v using its Format and Options.
func (v Value) Text() string {
	return string(v.Append(nil))
}

// String formats v like v.Text; it exists so Value satisfies
// fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}

// Format implements fmt.Formatter so that Value prints correctly with
// the %v and %s verbs without callers having to call Text explicitly.
func (v Value) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		_, _ = s.Write(v.Append(nil))
	default:
		fmt.Fprintf(s, "%%!%c(lexical.Value=%s)", verb, v.Text())
	}
}
