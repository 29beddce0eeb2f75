// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the large-power tables the slow-path float parser
// uses to synthesize radix^n for arbitrary n during big-integer
// comparison. It is grounded on
// original_source/src/atof/algorithm/large_powers.rs: for each small odd
// prime p, table entry i holds p^(2^i), truncated at the largest i with
// value <= 2^1075, so that any p^n can be composed by binary
// decomposition of n over these precomputed squares (the same
// square-and-multiply shape as the teacher package's pow2 in
// decimal_conv.go).
//
// Unlike large_powers.rs, which embeds the tables as literal digit
// arrays, this file computes each table once at package init by
// repeated squaring starting from p itself. The result is the same
// read-only, immutable-after-init table the spec calls for, without
// hand-typing ~300 lines of big-integer literals.
package lexical

// largePowerPrimes are the odd primes up to 31: every radix in [2, 36]
// factors into 2 (handled separately via bit shifts, see powRadix) and a
// subset of these.
var largePowerPrimes = [...]uint32{3, 5, 7, 11, 13, 17, 19, 23, 29, 31}

// maxLargePowerBits bounds the tables: 2^1075 covers the denormal range
// of float64, per spec.md §3.
const maxLargePowerBits = 1075

var largePowers = func() map[uint32][]bigInt {
	m := make(map[uint32][]bigInt, len(largePowerPrimes))
	for _, p := range largePowerPrimes {
		var table []bigInt
		cur := bigIntFromUint64(uint64(p))
		for {
			table = append(table, cur)
			if cur.bitLen() > maxLargePowerBits/2 {
				break
			}
			cur = cur.mul(cur)
			if cur.bitLen() > maxLargePowerBits {
				table = append(table, cur)
				break
			}
		}
		m[p] = table
	}
	return m
}()

// lookupLargePower returns the precomputed table of p^(2^i) for prime p,
// or nil if p is not one of largePowerPrimes.
func lookupLargePower(p uint32) []bigInt {
	return largePowers[p]
}

// primeFactors returns the prime factorization of radix as (prime,
// exponent) pairs, excluding the factor 2 (returned separately as
// twoExp) since powers of two are applied via bit shifts rather than
// table lookups.
func primeFactors(radix uint8) (twoExp uint, rest []primePower) {
	n := uint32(radix)
	for n%2 == 0 {
		twoExp++
		n /= 2
	}
	for _, p := range largePowerPrimes {
		var e uint
		for n%p == 0 {
			e++
			n /= p
		}
		if e > 0 {
			rest = append(rest, primePower{prime: p, exp: e})
		}
	}
	return
}

type primePower struct {
	prime uint32
	exp   uint
}

// powPrime returns p^n as a bigInt, composed by binary decomposition of n
// over lookupLargePower(p) the same way the teacher's pow2 composes
// 2**n over successive squares of 2.
func powPrime(p uint32, n uint64) bigInt {
	if n == 0 {
		return bigIntFromUint64(1)
	}
	table := lookupLargePower(p)
	result := bigIntFromUint64(1)
	i := 0
	for n > 0 {
		if n&1 != 0 {
			var factor bigInt
			if i < len(table) {
				factor = table[i]
			} else {
				// Beyond the precomputed table (only possible for
				// exponents far larger than any float's decimal
				// exponent range): square the last table entry the
				// remaining number of times.
				factor = table[len(table)-1]
				for j := len(table) - 1; j < i; j++ {
					factor = factor.mul(factor)
				}
			}
			result = result.mul(factor)
		}
		n >>= 1
		i++
	}
	return result
}

// powRadix returns radix^n as a bigInt, by decomposing radix into 2^twoExp
// times a product of odd prime powers, applying the factor-of-2 part as a
// left shift and the rest via powPrime.
func powRadix(radix uint8, n uint64) bigInt {
	twoExp, rest := primeFactors(radix)
	result := bigIntFromUint64(1)
	for _, pp := range rest {
		result = result.mul(powPrime(pp.prime, n*uint64(pp.exp)))
	}
	if twoExp > 0 {
		result = result.shl(uint(n) * twoExp)
	}
	return result
}
