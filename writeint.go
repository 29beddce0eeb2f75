// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements radix-generic unsigned-integer-to-string
// conversion. The compact back-end's reverse-fill-then-copy scratch
// buffer is modeled directly on
// original_source/lexical-write-integer/src/compact.rs; the optimized
// back-end's two-digits-per-step table is the standard technique also
// used by the teacher package's (dec).convertWords in dec_conv.go for
// its base-10 inner loop.
package lexical

import "golang.org/x/exp/constraints"

// FormattedSize returns the maximum number of bytes WriteInt needs to
// write a value of bitSize bits (8, 16, 32, or 64) in the given radix,
// not including a sign byte.
func FormattedSize(bitSize int, radix uint8) int {
	// floor(log2(radix)) is a safe (if loose for non-powers-of-two
	// radices) lower bound on bits-per-digit, so bitSize/bitsPerDigit is
	// a safe upper bound on the digit count.
	bits := 1
	for r := radix; r > 1; r >>= 1 {
		bits++
	}
	// bits now holds ceil(log2(radix+1)); use bits-1 (floor(log2(radix)))
	// as the conservative per-digit bit estimate, with a minimum of 1.
	bitsPerDigit := bits - 1
	if bitsPerDigit < 1 {
		bitsPerDigit = 1
	}
	n := (bitSize + bitsPerDigit - 1) / bitsPerDigit
	if n < 1 {
		n = 1
	}
	return n
}

// twoDigitTables holds, for every radix in [MinRadix, MaxRadix], the
// two-ASCII-digit string for each value 0..radix*radix-1, used to peel
// off two digits per division step. Built once at init so WriteInt never
// allocates, matching the "no allocator in the default configuration"
// invariant spec.md §5 states for every writer.
var twoDigitTables = func() [MaxRadix + 1][]byte {
	var tables [MaxRadix + 1][]byte
	for radix := MinRadix; radix <= MaxRadix; radix++ {
		t := make([]byte, radix*radix*2)
		for v := 0; v < radix*radix; v++ {
			hi := v / radix
			lo := v % radix
			t[v*2] = digitToChar(uint8(hi))
			t[v*2+1] = digitToChar(uint8(lo))
		}
		tables[radix] = t
	}
	return tables
}()

// twoDigitTable returns the precomputed table for radix, built by
// twoDigitTables.
func twoDigitTable(radix uint8) []byte {
	return twoDigitTables[radix]
}

// WriteInt writes the radix representation of value into buf,
// most-significant digit first, with no leading zero except for value ==
// 0 (which writes exactly "0"), and returns the number of bytes written.
// buf must have length >= FormattedSize(bits, radix) for the type of
// value; violating that precondition is a programmer error (WriteInt
// never allocates and never bounds-checks beyond what Go's slice
// indexing gives it for free).
func WriteInt[T constraints.Unsigned](value T, radix uint8, buf []byte) int {
	return writeIntOptimized(uint64(value), radix, buf)
}

// WriteIntCompact is the code-size-optimized counterpart of WriteInt: it
// produces identical bytes at the cost of being slower, and is useful on
// platforms where binary size matters more than throughput.
func WriteIntCompact[T constraints.Unsigned](value T, radix uint8, buf []byte) int {
	return writeIntCompact(uint64(value), radix, buf)
}

// writeIntCompact is the compact, code-size-optimized back-end: a plain
// div/mod loop into a 128-byte scratch area, copied to the
// destination. Always correct for any radix 2-36 and any value that fits
// in 128 bits; used here for uint64 values. writeIntOptimized must be
// observationally equivalent to this for every input.
func writeIntCompact(value uint64, radix uint8, buf []byte) int {
	var scratch [128]byte
	i := len(scratch)
	r := uint64(radix)
	for value >= r {
		i--
		scratch[i] = digitToChar(uint8(value % r))
		value /= r
	}
	i--
	scratch[i] = digitToChar(uint8(value))
	return copy(buf, scratch[i:])
}

// writeIntOptimized peels off two digits per division step using a
// radix-specific lookup table, with a terminal one-digit step for odd
// digit counts.
func writeIntOptimized(value uint64, radix uint8, buf []byte) int {
	if value == 0 {
		buf[0] = '0'
		return 1
	}
	table := twoDigitTable(radix)
	r2 := uint64(radix) * uint64(radix)

	var scratch [128]byte
	i := len(scratch)
	for value >= r2 {
		rem := value % r2
		value /= r2
		i -= 2
		scratch[i] = table[rem*2]
		scratch[i+1] = table[rem*2+1]
	}
	if value >= uint64(radix) {
		i -= 2
		scratch[i] = table[value*2]
		scratch[i+1] = table[value*2+1]
	} else {
		i--
		scratch[i] = digitToChar(uint8(value))
	}
	return copy(buf, scratch[i:])
}
