// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "math"

// floatBits64 decomposes f into its sign, a normalized mantissa (with the
// implicit leading bit made explicit, except for zero), and the binary
// exponent such that f == (-1)^neg * mantissa * 2^exp2, for finite,
// non-zero f. NaN and Inf are reported via the nan/inf return values and
// mantissa/exp2 are meaningless in that case.
func floatBits64(f float64) (neg bool, mantissa uint64, exp2 int, nan, inf bool) {
	bits := math.Float64bits(f)
	neg = bits>>63 != 0
	rawExp := int((bits >> 52) & 0x7FF)
	frac := bits & ((1 << 52) - 1)
	switch rawExp {
	case 0x7FF:
		if frac != 0 {
			return neg, 0, 0, true, false
		}
		return neg, 0, 0, false, true
	case 0:
		if frac == 0 {
			return neg, 0, 0, false, false
		}
		// Denormal: no implicit leading bit, exponent is the minimum.
		return neg, frac, -1074, false, false
	default:
		return neg, frac | (1 << 52), rawExp - 1075, false, false
	}
}

// floatBits32 is the float32 counterpart of floatBits64.
func floatBits32(f float32) (neg bool, mantissa uint32, exp2 int, nan, inf bool) {
	bits := math.Float32bits(f)
	neg = bits>>31 != 0
	rawExp := int((bits >> 23) & 0xFF)
	frac := bits & ((1 << 23) - 1)
	switch rawExp {
	case 0xFF:
		if frac != 0 {
			return neg, 0, 0, true, false
		}
		return neg, 0, 0, false, true
	case 0:
		if frac == 0 {
			return neg, 0, 0, false, false
		}
		return neg, frac, -149, false, false
	default:
		return neg, frac | (1 << 23), rawExp - 150, false, false
	}
}

const (
	mantissaBits64 = 52
	mantissaBits32 = 23
)
