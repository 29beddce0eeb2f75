// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lexical implements format-parameterized conversion between text
and numbers: unsigned integers in any radix 2-36, and IEEE 754 floats
(float32, float64, and the Float16 half-precision type) in any mantissa
radix with an independently configurable exponent base and radix.

A Format describes the shape of a numeric literal: which radix its
mantissa digits are in, what base and radix its exponent is written in,
whether it accepts a digit separator, and a set of flags controlling
sign and digit requirements (see Flag). DecimalFormat is the standard
decimal format; callers targeting other conventions (strict JSON
numbers, C99 hex floats, Rust integer literals with '_' separators, and
so on) build their own Format, optionally with NewOptionsBuilder's
counterpart in the numfmt subpackage.

Options carries the presentation details that do not change which
digits are legal: the decimal point and exponent characters, the NaN/Inf
literals, scientific-notation thresholds, and trailing-zero trimming.
DefaultOptions returns sensible defaults for a given mantissa radix.

ParseInt and WriteInt convert unsigned integers; ParseFloat, WriteFloat,
and their float32/Float16 counterparts convert floating-point values.
Value pairs a float64 with the Format/Options that should govern it, for
callers that want a single self-describing value rather than threading
both through every call.

MinRadix and MaxRadix bound every radix field in Format: 2 and 36.
*/
package lexical

// MinRadix and MaxRadix bound every radix accepted anywhere in this
// package (MantissaRadix, ExponentBase, ExponentRadix): 2, the smallest
// positional radix, through 36, the largest expressible with the ASCII
// digit/letter alphabet.
const (
	MinRadix = 2
	MaxRadix = 36
)
