// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// WriteFloat32 is the float32 counterpart of WriteFloat. The mantissa
// widens losslessly into the uint64 the back-ends expect; the binary
// exponent is unaffected by width, so every back-end is shared.
func WriteFloat32(value float32, buf []byte, format Format, options Options) int {
	if !format.IsValidWithOptions(options) {
		panic("lexical: invalid format")
	}
	neg, mantissa32, exp2, isNaN, isInf := floatBits32(value)
	mantissa := uint64(mantissa32)
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
		return n + writeFloatDecimal(mantissa, exp2, mantissaImplicitBit32, minExp2Float32, buf, format, options)
	case radix != expBase:
		return n + writeFloatHex(mantissa, exp2, buf, format, options)
	default:
		return n + writeFloatBinary(mantissa, exp2, buf, format, options)
	}
}
