// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// digitValue returns the numeric value of an ASCII digit character in the
// given radix (2-36, case-insensitive for 11-36), and whether c is a
// valid digit in that radix at all.
func digitValue(c byte, radix uint8) (uint8, bool) {
	var v uint8
	switch {
	case c >= '0' && c <= '9':
		v = c - '0'
	case c >= 'a' && c <= 'z':
		v = c - 'a' + 10
	case c >= 'A' && c <= 'Z':
		v = c - 'A' + 10
	default:
		return 0, false
	}
	if v >= radix {
		return 0, false
	}
	return v, true
}

// charIsDigit reports whether c is a valid digit in the given radix.
func charIsDigit(c byte, radix uint8) bool {
	_, ok := digitValue(c, radix)
	return ok
}

// lowerDigits maps a digit value (0-35) to its ASCII character, for
// radix up to 36.
const lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"

// digitToChar returns the ASCII character for digit value v (0-35),
// lower-cased.
func digitToChar(v uint8) byte {
	return lowerDigits[v]
}
