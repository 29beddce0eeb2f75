// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// maxDigitsFor returns the exact number of radix digits in the largest
// bitSize-bit unsigned value's representation, used to decide when the
// integer parser must start checking for overflow: every digit before
// this one can be accumulated unchecked, and the overflow check in
// ParseInt runs from this digit on, per spec.md §4.4's "overflow
// check only when accumulated digit count reaches the type's maximum
// radix-r digit length".
//
// A bit-based estimate (floor(log2(radix)) bits per digit) under-counts
// bits-per-digit for any non-power-of-two radix, which over-counts the
// resulting digit length and lets that many extra digits accumulate
// through the unchecked path, silently wrapping genuinely overflowing
// values instead of reporting Overflow. Counting digits of the type's
// actual maximum value in the given radix is exact for every radix.
func maxDigitsFor(bitSize int, radix uint8) int {
	max := uint64(1)<<uint(bitSize) - 1
	if bitSize >= 64 {
		max = ^uint64(0)
	}
	r := uint64(radix)
	n := 0
	for max > 0 {
		n++
		max /= r
	}
	if n == 0 {
		n = 1
	}
	return n
}

// ParseInt parses an unsigned integer in the given Format from buf,
// returning the value, the number of bytes consumed, and an error if
// any. Sign handling honors RequiredMantissaSign/NoPositiveMantissaSign
// in format.Flags.
func ParseInt[T constraints.Unsigned](buf []byte, format Format) (T, int, error) {
	var zero T
	maxBits := bitSizeOf(zero)
	it := NewIter(buf, format, Integer)

	neg, consumedSign, err := parseIntSign(it, format)
	if err != nil {
		return zero, consumedSign, err
	}
	if neg {
		return zero, consumedSign, newErrNoPos(InvalidDigit)
	}

	var acc uint64
	count := 0
	maxDigits := maxDigitsFor(maxBits, format.MantissaRadix)
	radix := uint64(format.MantissaRadix)
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
		count++
		if count >= maxDigits {
			// Only now can overflow occur; check on every digit from
			// here on, including this one.
			hi, lo := bits.Mul64(acc, radix)
			sum := lo + uint64(d)
			if sum < lo {
				hi++
			}
			if hi != 0 || (maxBits < 64 && sum >= (uint64(1)<<maxBits)) {
				return zero, it.Cursor(), newErr(Overflow, it.Cursor())
			}
			acc = sum
		} else {
			acc = acc*radix + uint64(d)
		}
	}
	if count == 0 {
		return zero, consumedSign, newErrNoPos(Empty)
	}
	if format.Has(RequiredIntegerDigits) && count == 0 {
		return zero, consumedSign, newErrNoPos(EmptyInteger)
	}
	return T(acc), it.Cursor(), nil
}

// parseIntSign consumes an optional leading sign per format.Flags and
// returns whether it was negative, how many bytes were consumed, and an
// error if the format's sign requirements were violated.
func parseIntSign(it Iter, format Format) (neg bool, consumed int, err error) {
	c, ok := it.Peek()
	if !ok {
		if format.Has(RequiredMantissaSign) {
			return false, 0, newErrNoPos(MissingMantissaSign)
		}
		return false, 0, nil
	}
	switch c {
	case '-':
		it.Next()
		return true, 1, nil
	case '+':
		if format.Has(NoPositiveMantissaSign) {
			return false, 0, newErr(InvalidPositiveMantissaSign, 0)
		}
		it.Next()
		return false, 1, nil
	default:
		if format.Has(RequiredMantissaSign) {
			return false, 0, newErrNoPos(MissingMantissaSign)
		}
		return false, 0, nil
	}
}

// bitSizeOf returns the bit width of an unsigned integer type from a
// zero value of that type, used to size overflow checks generically.
func bitSizeOf[T constraints.Unsigned](zero T) int {
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	case uint:
		return 64
	case uintptr:
		return 64
	default:
		return 64
	}
}
