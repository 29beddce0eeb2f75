// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the free-format shortest-digit-string algorithm
// (Steele & White, "How to Print Floating-Point Numbers Accurately",
// also known as Dragon4) used by writeFloatDecimal in writefloat.go. It
// represents the exact binary value and the half-ulp interval around it
// as ratios of big integers and generates decimal digits one at a time,
// stopping as soon as the remaining interval guarantees no other decimal
// string of the same or shorter length parses back to the same float.
package lexical

const (
	mantissaImplicitBit64 = uint64(1) << mantissaBits64
	mantissaImplicitBit32 = uint64(1) << mantissaBits32
	minExp2Float64        = -1074
	minExp2Float32        = -149
)

// dragon4Shortest returns the shortest sequence of decimal digits (most
// significant first, no leading zero, no trailing zero) that rounds back
// to the float with normalized mantissa/exp2 as produced by floatBits64/
// floatBits32, along with dp such that the represented value equals
// 0.<digits> * 10^dp. implicitBit and minExp2 distinguish float64 from
// float32 callers: they identify the smallest normalized mantissa and
// the minimum (denormal) exponent for the source type, which is what
// decides whether the half-ulp neighborhood is symmetric (see
// dragon4Scale).
func dragon4Shortest(mantissa uint64, exp2 int, implicitBit uint64, minExp2 int) (digits []byte, dp int) {
	r, s, mPlus, mMinus := dragon4Scale(mantissa, exp2, implicitBit, minExp2)
	mantissaEven := mantissa%2 == 0
	low, high := mantissaEven, mantissaEven

	k := 0
	ten := bigIntFromUint64(10)
	for boundsExceedHigh(r, mPlus, s, high) {
		s = s.mul(ten)
		k++
	}
	for {
		r10 := r.mul(ten)
		mPlus10 := mPlus.mul(ten)
		if boundsExceedHigh(r10, mPlus10, s, high) {
			break
		}
		r, mPlus, mMinus = r10, mPlus10, mMinus.mul(ten)
		k--
	}

	two := bigIntFromUint64(2)
	for {
		r = r.mul(ten)
		mPlus = mPlus.mul(ten)
		mMinus = mMinus.mul(ten)
		d, rem := digitDivMod(r, s)
		r = rem

		tooLow := r.cmp(mMinus) < 0 || (low && r.cmp(mMinus) == 0)
		tooHigh := boundsExceedHigh(r, mPlus, s, high)

		switch {
		case !tooLow && !tooHigh:
			digits = append(digits, '0'+d)
		case tooLow && !tooHigh:
			digits = append(digits, '0'+d)
			return dragon4Finish(digits, k)
		case tooHigh && !tooLow:
			digits = append(digits, '0'+d+1)
			return dragon4Finish(digits, k)
		default:
			if r.mul(two).cmp(s) <= 0 {
				digits = append(digits, '0'+d)
			} else {
				digits = append(digits, '0'+d+1)
			}
			return dragon4Finish(digits, k)
		}
	}
}

// dragon4Finish propagates a final-digit carry and strips the trailing
// zero bytes it can introduce (0.d1...dn000 and 0.d1...dn represent the
// same value for any shared dp, so a trailing zero is never significant).
func dragon4Finish(digits []byte, dp int) ([]byte, int) {
	digits, carry := finishDigits(digits)
	dp += carry
	i := len(digits)
	for i > 1 && digits[i-1] == '0' {
		i--
	}
	return digits[:i], dp
}

// dragon4Scale computes the initial (r, s, m+, m-) per Steele & White
// section 4, where value == r/s and the half-ulp neighborhood extends
// m+/s above and m-/s below. The "boundary" case (mantissa sits at the
// smallest value of its binade, so the gap to the next smaller float is
// half the gap to the next larger one) gets twice the scale so both
// bounds remain integers.
func dragon4Scale(mantissa uint64, exp2 int, implicitBit uint64, minExp2 int) (r, s, mPlus, mMinus bigInt) {
	boundary := mantissa == implicitBit && exp2 != minExp2
	m := bigIntFromUint64(mantissa)
	one := bigIntFromUint64(1)
	if exp2 >= 0 {
		if !boundary {
			r = m.shl(uint(exp2) + 1)
			s = bigIntFromUint64(2)
			mPlus = one.shl(uint(exp2))
			mMinus = mPlus
		} else {
			r = m.shl(uint(exp2) + 2)
			s = bigIntFromUint64(4)
			mPlus = one.shl(uint(exp2) + 1)
			mMinus = one.shl(uint(exp2))
		}
	} else {
		if !boundary {
			r = m.shl(1)
			s = one.shl(uint(1 - exp2))
			mPlus = one
			mMinus = one
		} else {
			r = m.shl(2)
			s = one.shl(uint(2 - exp2))
			mPlus = bigIntFromUint64(2)
			mMinus = one
		}
	}
	return
}

// boundsExceedHigh reports whether r+extra exceeds s, or equals it when
// the high boundary is inclusive (closedHigh, true when the mantissa is
// even per round-to-even).
func boundsExceedHigh(r, extra, s bigInt, closedHigh bool) bool {
	c := r.add(extra).cmp(s)
	return c > 0 || (c == 0 && closedHigh)
}

// digitDivMod returns r/s and r%s as a single decimal digit and
// remainder; callers maintain the invariant that r < 10*s, so the
// quotient never exceeds 9.
func digitDivMod(r, s bigInt) (byte, bigInt) {
	var d byte
	for r.cmp(s) >= 0 {
		r = r.sub(s)
		d++
	}
	return d, r
}

// finishDigits propagates a carry out of the most significant digit
// (possible when the last digit generated above was bumped from 9 to
// 10) back through the digit string. It returns the corrected digits and
// a carry of 1 if every digit was 9 and a leading "1" had to be
// prepended (in which case the caller's decimal point position must
// also shift right by one), or 0 otherwise.
func finishDigits(digits []byte) ([]byte, int) {
	i := len(digits) - 1
	for i >= 0 && digits[i] > '9' {
		digits[i] -= 10
		if i == 0 {
			return append([]byte{'1'}, digits...), 1
		}
		digits[i-1]++
		i--
	}
	return digits, 0
}
