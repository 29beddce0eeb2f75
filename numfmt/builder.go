// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt provides a chainable, error-accumulating builder for
// lexical.Format/lexical.Options pairs, adapted from the decimal
// package's Context: a Builder catches the first validation error and
// turns every subsequent chained call into a no-op, so the caller only
// has to check for an error once, at Build.
package numfmt

import (
	"fmt"

	"github.com/db47h/lexical"
)

// Builder accumulates Format and Options fields and validates the
// resulting Format once, at Build.
type Builder struct {
	format  lexical.Format
	options lexical.Options
	err     error
}

// New starts a Builder for the given mantissa radix, with exponent base
// and radix equal to the mantissa radix and DefaultOptions(radix).
func New(radix uint8) *Builder {
	return &Builder{
		format: lexical.Format{
			MantissaRadix: radix,
			ExponentBase:  radix,
			ExponentRadix: radix,
		},
		options: lexical.DefaultOptions(radix),
	}
}

// Err returns the first error encountered since the last call to Err and
// clears the error state, mirroring (*decimal/context.Context).Err.
func (b *Builder) Err() error {
	err := b.err
	b.err = nil
	return err
}

// ExponentBase sets the format's exponent base.
func (b *Builder) ExponentBase(base uint8) *Builder {
	if b.err != nil {
		return b
	}
	b.format.ExponentBase = base
	return b
}

// ExponentRadix sets the format's exponent radix.
func (b *Builder) ExponentRadix(radix uint8) *Builder {
	if b.err != nil {
		return b
	}
	b.format.ExponentRadix = radix
	return b
}

// DigitSeparator sets the digit-separator byte (0 disables separators).
func (b *Builder) DigitSeparator(sep byte) *Builder {
	if b.err != nil {
		return b
	}
	b.format.DigitSeparator = sep
	return b
}

// Flags ORs additional flags into the format.
func (b *Builder) Flags(flags lexical.Flag) *Builder {
	if b.err != nil {
		return b
	}
	b.format.Flags |= flags
	return b
}

// DecimalPoint sets the options' decimal-point byte.
func (b *Builder) DecimalPoint(c byte) *Builder {
	if b.err != nil {
		return b
	}
	b.options.DecimalPoint = c
	return b
}

// ExponentChar sets the options' exponent character.
func (b *Builder) ExponentChar(c byte) *Builder {
	if b.err != nil {
		return b
	}
	b.options.ExponentChar = c
	return b
}

// NaNString sets the NaN literal (nil disables serializing NaN).
func (b *Builder) NaNString(s []byte) *Builder {
	if b.err != nil {
		return b
	}
	if len(s) > 50 {
		b.err = fmt.Errorf("numfmt: NaN string longer than 50 bytes")
		return b
	}
	b.options.NaNString = s
	return b
}

// InfString sets the Inf literal (nil disables serializing Inf).
func (b *Builder) InfString(s []byte) *Builder {
	if b.err != nil {
		return b
	}
	if len(s) > 50 {
		b.err = fmt.Errorf("numfmt: Inf string longer than 50 bytes")
		return b
	}
	b.options.InfString = s
	return b
}

// MinSignificantDigits sets the minimum number of significant digits to
// pad the written mantissa to.
func (b *Builder) MinSignificantDigits(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("numfmt: negative min significant digits")
		return b
	}
	b.options.MinSignificantDigits = n
	return b
}

// ExponentBreaks sets the scientific-notation break thresholds.
func (b *Builder) ExponentBreaks(negative, positive int) *Builder {
	if b.err != nil {
		return b
	}
	if negative > 0 || positive < 0 {
		b.err = fmt.Errorf("numfmt: exponent breaks must straddle zero")
		return b
	}
	b.options.NegativeExponentBreak = negative
	b.options.PositiveExponentBreak = positive
	return b
}

// TrimFloats sets whether trailing fractional zeros (and a bare decimal
// point) are trimmed from written floats.
func (b *Builder) TrimFloats(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.options.TrimFloats = v
	return b
}

// Build validates the accumulated Format and returns it along with the
// Options and any error recorded along the way (including an invalid
// final Format, reported here rather than at the point a setter made it
// invalid, since individual setters can't always tell in isolation).
func (b *Builder) Build() (lexical.Format, lexical.Options, error) {
	if b.err != nil {
		return lexical.Format{}, lexical.Options{}, b.Err()
	}
	if !b.format.IsValidWithOptions(b.options) {
		return lexical.Format{}, lexical.Options{}, fmt.Errorf("numfmt: invalid format %+v / options %+v", b.format, b.options)
	}
	return b.format, b.options, nil
}
