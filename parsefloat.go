// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements ParseFloat: lexing a numeric literal per Format,
// then converting the decimal value to the nearest float64 via a
// Clinger-style fast path (exact when both the digit mantissa and the
// decimal exponent are small enough to be exactly representable as
// float64) falling back to an exact big-integer long division (spec.md
// §4.6.3, grounded on original_source/src/atof/algorithm/bigcomp.rs and
// large_powers.rs) whenever the fast path can't guarantee a single
// correctly-rounded result.
package lexical

import "math"

// pow10Table holds 10^0..10^22, every one of which is exactly
// representable as a float64 (10^22 is the largest power of ten with an
// exact binary64 representation), enabling Clinger's fast path: when the
// decimal mantissa and the power of ten are both exact floats, a single
// IEEE multiply or divide is already correctly rounded.
var pow10Table = func() [23]float64 {
	var t [23]float64
	t[0] = 1
	for i := 1; i < len(t); i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

const maxFastPathDigits = 15

// ParseFloat parses a floating-point literal from buf per format and
// options, returning the nearest float64, the number of bytes consumed,
// and an error if any.
func ParseFloat(buf []byte, format Format, options Options) (float64, int, error) {
	n := 0
	neg, signLen, err := parseFloatSign(buf, format)
	if err != nil {
		return 0, signLen, err
	}
	n += signLen
	rest := buf[n:]

	if v, consumed, ok := parseSpecial(rest, format, options, neg); ok {
		return v, n + consumed, nil
	}

	digits, decExp, intLen, fracLen, consumed, err := lexFloatDigits(rest, format, options)
	if err != nil {
		return 0, n + consumed, err
	}
	n += consumed

	if intLen == 0 && fracLen == 0 {
		return 0, n, newErrNoPos(EmptyMantissa)
	}
	if format.Has(RequiredIntegerDigits) && intLen == 0 {
		return 0, n, newErrNoPos(EmptyInteger)
	}
	if format.Has(RequiredFractionDigits) && fracLen == 0 {
		return 0, n, newErrNoPos(EmptyFraction)
	}

	v := decimalToFloat64(digits, decExp)
	if neg {
		v = -v
	}
	return v, n, nil
}

// ParseFloat32 is the float32 counterpart of ParseFloat. It parses the
// same grammar and rounds to the nearest float64 first, then narrows: a
// literal whose nearest float64 is outside float32's range becomes ±Inf,
// matching strconv.ParseFloat's own bitSize=32 behavior.
func ParseFloat32(buf []byte, format Format, options Options) (float32, int, error) {
	v, n, err := ParseFloat(buf, format, options)
	if err != nil {
		return 0, n, err
	}
	return float32(v), n, nil
}

// parseFloatSign consumes an optional leading sign.
func parseFloatSign(buf []byte, format Format) (neg bool, consumed int, err error) {
	if len(buf) == 0 {
		if format.Has(RequiredMantissaSign) {
			return false, 0, newErrNoPos(MissingMantissaSign)
		}
		return false, 0, newErrNoPos(Empty)
	}
	switch buf[0] {
	case '-':
		return true, 1, nil
	case '+':
		if format.Has(NoPositiveMantissaSign) {
			return false, 0, newErr(InvalidPositiveMantissaSign, 0)
		}
		return false, 1, nil
	default:
		if format.Has(RequiredMantissaSign) {
			return false, 0, newErrNoPos(MissingMantissaSign)
		}
		return false, 0, nil
	}
}

// parseSpecial recognizes NaN/Inf literals per options, honoring
// format's CaseSensitiveSpecial and NoSpecial flags.
func parseSpecial(buf []byte, format Format, options Options, neg bool) (float64, int, bool) {
	if format.Has(NoSpecial) {
		return 0, 0, false
	}
	foldCase := !format.Has(CaseSensitiveSpecial)
	if n, ok := matchLiteral(buf, options.NaNString, foldCase); ok {
		return math.NaN(), n, true
	}
	if n, ok := matchLiteral(buf, options.InfString, foldCase); ok {
		v := math.Inf(1)
		if neg {
			v = math.Inf(-1)
		}
		return v, n, true
	}
	return 0, 0, false
}

func matchLiteral(buf, literal []byte, foldCase bool) (int, bool) {
	if literal == nil || len(buf) < len(literal) {
		return 0, false
	}
	for i, c := range literal {
		if !byteEq(buf[i], c, foldCase) {
			return 0, false
		}
	}
	return len(literal), true
}

// lexFloatDigits consumes the integer, optional fraction, and optional
// exponent sections of a numeric literal and returns the concatenated
// significant digit bytes (no sign, no separators, leading zeros of the
// integer part dropped), the net decimal exponent such that value ==
// <digits as integer> * 10^decExp, the integer/fraction digit counts,
// and the total number of raw bytes consumed.
func lexFloatDigits(buf []byte, format Format, options Options) (digits []byte, decExp, intLen, fracLen, consumed int, err error) {
	it := NewIter(buf, format, Integer)
	for {
		c, ok := it.Peek()
		if !ok {
			break
		}
		d, ok := digitValue(c, format.MantissaRadix)
		if !ok {
			break
		}
		it.Next()
		if len(digits) > 0 || d != 0 {
			// A leading zero of the integer part (digits still empty and
			// this digit is zero) contributes no significant digit.
			digits = append(digits, digitToChar(d))
		}
		intLen++
	}
	pos := it.Cursor()

	hasPoint := pos < len(buf) && buf[pos] == options.DecimalPoint
	if hasPoint {
		pos++
		fit := NewIter(buf[pos:], format, Fraction)
		for {
			c, ok := fit.Peek()
			if !ok {
				break
			}
			d, ok := digitValue(c, format.MantissaRadix)
			if !ok {
				break
			}
			fit.Next()
			digits = append(digits, digitToChar(d))
			fracLen++
		}
		pos += fit.Cursor()
	}
	if format.Has(NoFractionWithoutInteger) && intLen == 0 && fracLen > 0 {
		return nil, 0, 0, 0, pos, newErrNoPos(InvalidDigit)
	}

	decExp = -fracLen
	hasExponent := pos < len(buf) && byteEq(buf[pos], options.ExponentChar, true)
	if hasExponent && (fracLen > 0 || !format.Has(NoExponentWithoutFraction)) {
		expStart := pos
		pos++
		expNeg := false
		if pos < len(buf) && (buf[pos] == '+' || buf[pos] == '-') {
			expNeg = buf[pos] == '-'
			if buf[pos] == '+' && format.Has(NoPositiveExponentSign) {
				return nil, 0, 0, 0, pos, newErr(InvalidPositiveExponentSign, pos)
			}
			pos++
		} else if format.Has(RequiredExponentSign) {
			return nil, 0, 0, 0, pos, newErrNoPos(MissingExponentSign)
		}
		eit := NewIter(buf[pos:], format, Exponent)
		expVal := 0
		expDigits := 0
		for {
			c, ok := eit.Peek()
			if !ok {
				break
			}
			d, ok := digitValue(c, format.ExponentRadix)
			if !ok {
				break
			}
			eit.Next()
			expVal = expVal*int(format.ExponentRadix) + int(d)
			expDigits++
		}
		pos += eit.Cursor()
		if expDigits == 0 {
			if format.Has(RequiredExponentDigits) {
				return nil, 0, 0, 0, pos, newErrNoPos(EmptyExponent)
			}
			pos = expStart
		} else {
			if expNeg {
				expVal = -expVal
			}
			decExp += expVal
		}
	} else if format.Has(RequiredExponentNotation) {
		return nil, 0, 0, 0, pos, newErrNoPos(ExponentWithoutFraction)
	}

	if len(digits) == 0 && (intLen > 0 || fracLen > 0) {
		// Value is exactly zero (all-zero digit string collapsed away).
		digits = []byte{'0'}
	}
	return digits, decExp, intLen, fracLen, pos, nil
}

// decimalToFloat64 converts a decimal value given as a digit string and
// a power-of-ten exponent (value == digits-as-integer * 10^decExp) to the
// nearest float64.
func decimalToFloat64(digits []byte, decExp int) float64 {
	trimmed, trimmedExp := trimDigits(digits, decExp)
	if len(trimmed) == 0 {
		return 0
	}
	if len(trimmed) <= maxFastPathDigits {
		if v, ok := fastPathFloat64(trimmed, trimmedExp); ok {
			return v
		}
	}
	return slowPathFloat64(trimmed, trimmedExp)
}

// trimDigits drops leading zeros (which don't affect the represented
// integer) and trailing zeros (which do, so removing k of them requires
// adding k to decExp to keep digits-as-integer * 10^decExp unchanged).
func trimDigits(digits []byte, decExp int) ([]byte, int) {
	i := 0
	for i < len(digits) && digits[i] == '0' {
		i++
	}
	j := len(digits)
	trimmedTrailing := 0
	for j > i && digits[j-1] == '0' {
		j--
		trimmedTrailing++
	}
	return digits[i:j], decExp + trimmedTrailing
}

func fastPathFloat64(digits []byte, decExp int) (float64, bool) {
	var mantissa uint64
	for _, c := range digits {
		mantissa = mantissa*10 + uint64(c-'0')
	}
	e := decExp
	if e < 0 {
		if -e > 22 {
			return 0, false
		}
		return float64(mantissa) / pow10Table[-e], true
	}
	if e > 22 {
		return 0, false
	}
	return float64(mantissa) * pow10Table[e], true
}

// slowPathFloat64 implements Clinger's AlgorithmM: it represents value ==
// digits * 10^decExp exactly as a ratio of big integers and performs a
// binary long division to find the correctly-rounded float64 mantissa
// and exponent directly, rather than guessing a candidate and verifying
// it (the approach large_powers.rs's Rust counterpart uses for the same
// purpose).
func slowPathFloat64(digits []byte, decExp int) float64 {
	d := bigIntFromDecimalDigits(digits)
	var u, v bigInt
	if decExp >= 0 {
		u = d.mul(powRadix(10, uint64(decExp)))
		v = bigIntFromUint64(1)
	} else {
		u = d
		v = powRadix(10, uint64(-decExp))
	}

	const mantissaBits = mantissaBits64 + 1 // 53, including the implicit bit
	q := u.bitLen() - v.bitLen() - mantissaBits
	if q < minExp2Float64 {
		q = minExp2Float64
	}

	var m, rem, den bigInt
	for i := 0; i < 4096; i++ {
		var num bigInt
		if q >= 0 {
			num = u
			den = v.shl(uint(q))
		} else {
			num = u.shl(uint(-q))
			den = v
		}
		m, rem = num.quoRem(den)
		bl := m.bitLen()
		switch {
		case bl > mantissaBits:
			q++
		case bl < mantissaBits && q > minExp2Float64:
			q--
		default:
			goto rounded
		}
	}
rounded:
	if !rem.isZero() {
		twiceRem := rem.shl(1)
		c := twiceRem.cmp(den)
		mVal := m.toUint64()
		switch {
		case c > 0:
			m = bigIntFromUint64(mVal + 1)
		case c == 0 && mVal&1 == 1:
			m = bigIntFromUint64(mVal + 1)
		}
		if m.bitLen() > mantissaBits {
			m = m.shr(1)
			q++
		}
	}

	return assembleFloat64(m.toUint64(), q)
}

// bigIntFromDecimalDigits parses an ASCII decimal digit string into a
// bigInt via repeated multiply-and-add, mirroring how ParseInt
// accumulates digits but without a fixed-width overflow limit.
func bigIntFromDecimalDigits(digits []byte) bigInt {
	var x bigInt
	for _, c := range digits {
		x = x.mulSmall(10, uint32(c-'0'))
	}
	return x
}

// assembleFloat64 builds the unsigned (non-negative) float64 with
// mantissa m (a 53-bit value including the implicit bit for normals, or
// fewer bits for denormals) and binary exponent q, i.e. value == m *
// 2^q. Overflow (q too large) saturates to +Inf.
func assembleFloat64(m uint64, q int) float64 {
	if m == 0 {
		return 0
	}
	if q == minExp2Float64 && m < mantissaImplicitBit64 {
		return math.Float64frombits(m)
	}
	rawExp := q + 1075
	if rawExp >= 0x7FF {
		return math.Inf(1)
	}
	if rawExp <= 0 {
		// Denormal result reached via a path other than the pinned
		// minimum exponent above; shift the implicit bit out explicitly.
		shift := uint(1 - rawExp)
		return math.Float64frombits(m >> shift)
	}
	frac := m - mantissaImplicitBit64
	bits := uint64(rawExp)<<mantissaBits64 | frac
	return math.Float64frombits(bits)
}
