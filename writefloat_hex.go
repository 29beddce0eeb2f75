// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the "hex-style" float writer back-end (spec.md
// §4.5's mixed-radix case, grounded on
// original_source/lexical-write-float/src/hex.rs): the mantissa radix is
// an integer power of the exponent base (e.g. mantissa written in base
// 16, exponent a power of base 2), and the result is always laid out in
// a single normalized form, one nonzero digit before the point, e.g.
// C's "0x1.8p3" for 1.5 * 2^3 — never in expanded positional notation.
package lexical

// writeFloatHex writes mantissa*2^exp2 with format.MantissaRadix (a
// power of format.ExponentBase) digits after a single leading "1" digit,
// and the binary exponent of the leading bit written in
// format.ExponentRadix.
func writeFloatHex(mantissa uint64, exp2 int, buf []byte, format Format, options Options) int {
	msb := bitLen64(mantissa) - 1
	exponent := exp2 + msb

	b := log2OfPowerOfTwo(format.MantissaRadix)
	frac := mantissa &^ (uint64(1) << uint(msb)) // mantissa bits below the leading 1
	fracBits := msb
	padded := (fracBits + int(b) - 1) / int(b) * int(b)
	frac <<= uint(padded - fracBits)

	numDigits := padded / int(b)
	fracDigits := make([]byte, numDigits)
	mask := uint64(format.MantissaRadix) - 1
	for i := 0; i < numDigits; i++ {
		shift := uint(numDigits-1-i) * b
		fracDigits[i] = digitToChar(uint8((frac >> shift) & mask))
	}
	for len(fracDigits) > 0 && fracDigits[len(fracDigits)-1] == '0' {
		fracDigits = fracDigits[:len(fracDigits)-1]
	}
	fracDigits = padSignificantDigitsFrom(fracDigits, options, 1)

	n := 0
	buf[n] = '1'
	n++
	if len(fracDigits) > 0 {
		buf[n] = options.DecimalPoint
		n++
		n += copy(buf[n:], fracDigits)
	} else if !options.TrimFloats {
		buf[n] = options.DecimalPoint
		n++
		buf[n] = '0'
		n++
	}
	buf[n] = options.ExponentChar
	n++
	if exponent < 0 {
		buf[n] = '-'
		n++
		exponent = -exponent
	}
	n += WriteInt(uint64(exponent), format.ExponentRadix, buf[n:])
	return n
}

// padSignificantDigitsFrom pads fracDigits with zero digits so that the
// total significant digit count (leadingDigits + len(fracDigits)) meets
// options.MinSignificantDigits.
func padSignificantDigitsFrom(fracDigits []byte, options Options, leadingDigits int) []byte {
	want := options.MinSignificantDigits - leadingDigits
	if want <= len(fracDigits) {
		return fracDigits
	}
	padded := make([]byte, want)
	copy(padded, fracDigits)
	for i := len(fracDigits); i < want; i++ {
		padded[i] = '0'
	}
	return padded
}
