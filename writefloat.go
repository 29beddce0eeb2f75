// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the float writer's top-level dispatch (radix ==
// 10 vs. power-of-two vs. hex, per spec.md §4.5 and
// original_source/lexical-write-float/src/write.rs) and the decimal
// back-end's correctly-rounded shortest-digit generator.
//
// The shortest-digit generator is the free-format (Steele & White
// "Dragon4") algorithm: it represents the exact value and its rounding
// half-ulp neighborhood as a ratio of big integers and peels off decimal
// digits until the remaining interval is narrow enough that no shorter
// digit sequence round-trips. This is the same kind of big-integer
// comparison spec.md §4.6.3 calls for in the slow parse path, reusing
// this package's bigInt type for both.
package lexical

import "bytes"

// WriteFloat writes value to buf using format and options, and returns
// the number of bytes written. buf must be large enough (see
// FormattedSize and the package doc); violating that is a programmer
// error. WriteFloat panics if options demands serializing NaN or Inf but
// the corresponding literal is nil, per spec.md §7.
func WriteFloat(value float64, buf []byte, format Format, options Options) int {
	if !format.IsValidWithOptions(options) {
		panic("lexical: invalid format")
	}
	neg, mantissa, exp2, isNaN, isInf := floatBits64(value)
	n := 0
	if neg {
		buf[0] = '-'
		n = 1
	} else if format.Has(RequiredMantissaSign) {
		buf[0] = '+'
		n = 1
	}
	buf = buf[n:]

	if isNaN {
		return n + writeSpecial(buf, options.NaNString, "NaN explicitly disabled but asked to write NaN as string")
	}
	if isInf {
		return n + writeSpecial(buf, options.InfString, "Inf explicitly disabled but asked to write Inf as string")
	}

	radix := format.MantissaRadix
	expBase := format.ExponentBase
	switch {
	case mantissa == 0 && exp2 == 0:
		return n + writeZero(buf, options)
	case radix == 10:
		return n + writeFloatDecimal(mantissa, exp2, mantissaImplicitBit64, minExp2Float64, buf, format, options)
	case radix != expBase:
		return n + writeFloatHex(mantissa, exp2, buf, format, options)
	default:
		return n + writeFloatBinary(mantissa, exp2, buf, format, options)
	}
}

func writeSpecial(buf []byte, special []byte, panicMsg string) int {
	if special == nil {
		panic("lexical: " + panicMsg)
	}
	return copy(buf, special)
}

func writeZero(buf []byte, options Options) int {
	if options.TrimFloats {
		buf[0] = '0'
		return 1
	}
	buf[0] = '0'
	buf[1] = options.DecimalPoint
	buf[2] = '0'
	return 3
}

// writeFloatDecimal is the radix-10 back-end: it generates the shortest
// round-tripping decimal digit string via dragon4Shortest, then lays it
// out in scientific or positional notation per options.
func writeFloatDecimal(mantissa uint64, exp2 int, implicitBit uint64, minExp2 int, buf []byte, format Format, options Options) int {
	digits, dp := dragon4Shortest(mantissa, exp2, implicitBit, minExp2)
	digits = padSignificantDigits(digits, options)
	return formatDigits(digits, dp, buf, format.ExponentRadix, options)
}

// padSignificantDigits right-pads digits with zero digit bytes so that
// at least options.MinSignificantDigits are present.
func padSignificantDigits(digits []byte, options Options) []byte {
	if options.MinSignificantDigits <= len(digits) {
		return digits
	}
	padded := make([]byte, options.MinSignificantDigits)
	copy(padded, digits)
	for i := len(digits); i < len(padded); i++ {
		padded[i] = '0'
	}
	return padded
}

// formatDigits lays out significant digit bytes (most significant digit
// first, no leading/trailing zeros beyond what the caller padded in)
// with an implied decimal point at position dp (value == 0.<digits> *
// radix^dp) into scientific or positional notation, per options'
// exponent break thresholds, and returns the number of bytes written.
// The exponent itself is always written in expRadix, which may differ
// from the mantissa's radix (e.g. hex floats write a decimal exponent).
func formatDigits(digits []byte, dp int, buf []byte, expRadix uint8, options Options) int {
	sciExp := dp - 1
	scientific := sciExp < options.NegativeExponentBreak || sciExp > options.PositiveExponentBreak

	n := 0
	if scientific {
		n += copy(buf[n:], digits[:1])
		rest := digits[1:]
		if len(rest) > 0 || options.MinSignificantDigits > 1 {
			buf[n] = options.DecimalPoint
			n++
			n += copy(buf[n:], rest)
		}
		if options.MinSignificantDigits <= 0 {
			// Trim the mantissa's trailing zeros now, while n still marks
			// the end of the mantissa: trimming after the exponent is
			// appended below would strip significant digits out of it.
			n = trimTrailingZeros(buf, n, options)
		}
		buf[n] = options.ExponentChar
		n++
		if sciExp < 0 {
			buf[n] = '-'
			n++
			sciExp = -sciExp
		}
		n += WriteInt(uint64(sciExp), expRadix, buf[n:])
		return n
	}

	if dp <= 0 {
		buf[n] = '0'
		n++
		buf[n] = options.DecimalPoint
		n++
		for i := 0; i < -dp; i++ {
			buf[n] = '0'
			n++
		}
		n += copy(buf[n:], digits)
	} else if dp >= len(digits) {
		n += copy(buf[n:], digits)
		for i := len(digits); i < dp; i++ {
			buf[n] = '0'
			n++
		}
		if !options.TrimFloats {
			buf[n] = options.DecimalPoint
			n++
			buf[n] = '0'
			n++
		}
	} else {
		n += copy(buf[n:], digits[:dp])
		buf[n] = options.DecimalPoint
		n++
		n += copy(buf[n:], digits[dp:])
	}

	if options.MinSignificantDigits > 0 {
		// The caller explicitly asked for a minimum number of significant
		// digits; padSignificantDigits already supplied the zeros needed
		// to reach it; stripping them back off here would silently defeat
		// that request.
		return n
	}
	return trimTrailingZeros(buf, n, options)
}

// trimTrailingZeros removes trailing '0' bytes from the fractional part
// of buf[:n]. Callers must only pass the mantissa/positional portion
// already written to buf[:n]; an exponent, if any, is always appended
// after trimming so it is never mistaken for part of the fraction.
// Drops a bare trailing decimal point when options.TrimFloats is set.
func trimTrailingZeros(buf []byte, n int, options Options) int {
	if !bytes.ContainsRune(buf[:n], rune(options.DecimalPoint)) {
		return n
	}
	for n > 0 && buf[n-1] == '0' {
		n--
	}
	if n > 0 && buf[n-1] == options.DecimalPoint {
		if options.TrimFloats {
			n--
		} else {
			n++ // keep a single trailing zero: "1."-> "1.0"
			buf[n-1] = '0'
		}
	}
	return n
}
