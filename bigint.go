// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the big-integer helper used by the slow-path float
// parser and by the large-power tables (bigpow.go). Its shape (a
// little-endian limb slice, a norm() that strips high zero limbs,
// schoolbook add/sub/mul, a cmp() and a shl()) is carried over from the
// teacher package's `dec` type in dec.go, with decimal-radix Words
// swapped for 32-bit binary limbs, and Karatsuba and square root dropped
// (see DESIGN.md: those belong to the teacher's public,
// arbitrary-precision Decimal, which is out of scope here per spec.md's
// non-goals). shr() and quoRem(), a restoring binary division, are new
// here.
//
// Every bigInt used internally by the large-power tables and by
// dragon4.go's shortest-digit search stays within a couple dozen limbs
// (2^1075, the largest value either ever reaches, needs at most 35).
// bigIntFromDecimalDigits is the exception: it folds in one limb's worth
// of value per input digit, and lexFloatDigits (parsefloat.go) does not
// cap how many mantissa digits it hands it, so that path's operand size
// is only bounded by the literal the caller typed, not by a constant.
// Capping it would mean silently mis-parsing (or panicking on) a
// syntactically valid, if unusually long, numeral, so each operation
// allocates a result sized to its actual operands via make() rather than
// writing into a fixed-size array.
package lexical

// bigInt is a little-endian sequence of 32-bit limbs with no high zero
// limbs except for the value zero, which is represented as a nil/empty
// slice.
type bigInt []uint32

// norm strips high zero limbs.
func (x bigInt) norm() bigInt {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

func (x bigInt) isZero() bool { return len(x) == 0 }

// bigIntFromUint64 returns the bigInt representation of v.
func bigIntFromUint64(v uint64) bigInt {
	b := bigInt{uint32(v), uint32(v >> 32)}
	return b.norm()
}

// cmp returns -1, 0, or +1 as x is less than, equal to, or greater than y.
func (x bigInt) cmp(y bigInt) int {
	x, y = x.norm(), y.norm()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add returns x+y.
func (x bigInt) add(y bigInt) bigInt {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(bigInt, len(x)+1)
	var carry uint64
	for i := range x {
		var yi uint32
		if i < len(y) {
			yi = y[i]
		}
		s := uint64(x[i]) + uint64(yi) + carry
		z[i] = uint32(s)
		carry = s >> 32
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// sub returns x-y. The caller must ensure x >= y; sub does not detect or
// report borrow-out.
func (x bigInt) sub(y bigInt) bigInt {
	z := make(bigInt, len(x))
	var borrow int64
	for i := range x {
		var yi int64
		if i < len(y) {
			yi = int64(y[i])
		}
		d := int64(x[i]) - yi - borrow
		if d < 0 {
			d += 1 << 32
			borrow = 1
		} else {
			borrow = 0
		}
		z[i] = uint32(d)
	}
	return z.norm()
}

// mulSmall returns x*m for a single-limb multiplier m, adding an initial
// carry-in c (used by the digit-accumulation routines, mirroring
// dec.mulAddWW in the teacher package).
func (x bigInt) mulSmall(m uint32, c uint32) bigInt {
	z := make(bigInt, len(x)+1)
	carry := uint64(c)
	for i, xi := range x {
		p := uint64(xi)*uint64(m) + carry
		z[i] = uint32(p)
		carry = p >> 32
	}
	z[len(x)] = uint32(carry)
	return z.norm()
}

// mul returns the schoolbook product x*y. Correct for any size; the
// Design Notes' Karatsuba allowance is not implemented since the large-
// power and dragon4 callers only ever multiply values of a few dozen
// limbs, where schoolbook multiplication is not a bottleneck.
func (x bigInt) mul(y bigInt) bigInt {
	x, y = x.norm(), y.norm()
	if x.isZero() || y.isZero() {
		return nil
	}
	z := make(bigInt, len(x)+len(y))
	for i, xi := range x {
		var carry uint64
		for j, yj := range y {
			p := uint64(xi)*uint64(yj) + uint64(z[i+j]) + carry
			z[i+j] = uint32(p)
			carry = p >> 32
		}
		z[i+len(y)] += uint32(carry)
	}
	return z.norm()
}

// shl returns x shifted left by s bits.
func (x bigInt) shl(s uint) bigInt {
	x = x.norm()
	if x.isZero() || s == 0 {
		return x
	}
	limbShift := int(s / 32)
	bitShift := s % 32
	z := make(bigInt, len(x)+limbShift+1)
	for i, xi := range x {
		lo := uint64(xi) << bitShift
		z[i+limbShift] |= uint32(lo)
		z[i+limbShift+1] |= uint32(lo >> 32)
	}
	return z.norm()
}

// shr returns x shifted right by s bits.
func (x bigInt) shr(s uint) bigInt {
	x = x.norm()
	if x.isZero() || s == 0 {
		return x
	}
	limbShift := int(s / 32)
	bitShift := s % 32
	if limbShift >= len(x) {
		return nil
	}
	z := make(bigInt, len(x)-limbShift)
	for i := range z {
		lo := x[i+limbShift] >> bitShift
		var hi uint32
		if bitShift > 0 && i+limbShift+1 < len(x) {
			hi = x[i+limbShift+1] << (32 - bitShift)
		}
		z[i] = lo | hi
	}
	return z.norm()
}

// quoRem returns the quotient and remainder of x/y using restoring binary
// long division (shift y down bit by bit rather than shifting the
// remainder up, so the working values never exceed x in size). Division
// by zero panics. Used by the slow-path float parser, where x and y are
// the exact decimal value's numerator and denominator: a schoolbook
// decimal division would be simpler to read but this works directly in
// binary, which is what the final mantissa needs anyway.
func (x bigInt) quoRem(y bigInt) (q, r bigInt) {
	x, y = x.norm(), y.norm()
	if y.isZero() {
		panic("lexical: division by zero")
	}
	if x.cmp(y) < 0 {
		return nil, x
	}
	shift := x.bitLen() - y.bitLen()
	divisor := y.shl(uint(shift))
	qWords := make(bigInt, shift/32+1)
	r = x
	for i := shift; i >= 0; i-- {
		if r.cmp(divisor) >= 0 {
			r = r.sub(divisor)
			qWords[i/32] |= 1 << uint(i%32)
		}
		if i > 0 {
			divisor = divisor.shr(1)
		}
	}
	return qWords.norm(), r
}

// toUint64 returns x as a uint64; the caller must ensure x.bitLen() <= 64.
func (x bigInt) toUint64() uint64 {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<32 | uint64(x[i])
	}
	return v
}

// bitLen returns the number of bits needed to represent x (0 for zero).
func (x bigInt) bitLen() int {
	x = x.norm()
	if x.isZero() {
		return 0
	}
	top := x[len(x)-1]
	n := (len(x) - 1) * 32
	for top != 0 {
		n++
		top >>= 1
	}
	return n
}
