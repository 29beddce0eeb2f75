// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// Options carries the runtime knobs for a conversion that do not change
// which algorithm is selected (that's Format's job): the decimal point
// and exponent characters, the NaN/Inf literals, the minimum number of
// significant digits to pad to, the scientific-notation break
// thresholds, and whether to trim trailing fractional zeros.
//
// Options never mutates during a conversion call; build one once with
// DefaultOptions or an OptionsBuilder and reuse it across calls.
type Options struct {
	DecimalPoint           byte
	ExponentChar           byte
	NaNString              []byte // nil disables serializing NaN
	InfString              []byte // nil disables serializing Inf
	MinSignificantDigits   int    // 0 means "no minimum"
	NegativeExponentBreak  int
	PositiveExponentBreak  int
	TrimFloats             bool
}

// DefaultOptions returns the default Options for the given mantissa
// radix: '.', 'e' for radix <= 10 and '^' otherwise, "NaN"/"inf", breaks
// of -5/+9, no minimum significant digits, and TrimFloats disabled.
func DefaultOptions(radix uint8) Options {
	exp := byte('e')
	if radix > 10 {
		exp = '^'
	}
	return Options{
		DecimalPoint:          '.',
		ExponentChar:          exp,
		NaNString:             []byte("NaN"),
		InfString:             []byte("inf"),
		NegativeExponentBreak: -5,
		PositiveExponentBreak: 9,
	}
}

// OptionsBuilder builds an Options value with chained setters, mirroring
// Options' field set one setter at a time.
type OptionsBuilder struct {
	o Options
}

// NewOptionsBuilder starts a builder from DefaultOptions(10).
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{o: DefaultOptions(10)}
}

func (b *OptionsBuilder) DecimalPoint(c byte) *OptionsBuilder { b.o.DecimalPoint = c; return b }
func (b *OptionsBuilder) ExponentChar(c byte) *OptionsBuilder { b.o.ExponentChar = c; return b }
func (b *OptionsBuilder) NaNString(s []byte) *OptionsBuilder  { b.o.NaNString = s; return b }
func (b *OptionsBuilder) InfString(s []byte) *OptionsBuilder  { b.o.InfString = s; return b }
func (b *OptionsBuilder) MinSignificantDigits(n int) *OptionsBuilder {
	b.o.MinSignificantDigits = n
	return b
}
func (b *OptionsBuilder) NegativeExponentBreak(n int) *OptionsBuilder {
	b.o.NegativeExponentBreak = n
	return b
}
func (b *OptionsBuilder) PositiveExponentBreak(n int) *OptionsBuilder {
	b.o.PositiveExponentBreak = n
	return b
}
func (b *OptionsBuilder) TrimFloats(v bool) *OptionsBuilder { b.o.TrimFloats = v; return b }

// Build returns the built Options value.
func (b *OptionsBuilder) Build() Options { return b.o }
