// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the digit-separator skipping iterator. The
// permissibility predicates (is_leading/is_trailing/is_internal) and the
// overall shape of the 15 non-empty skip-context combinations are carried
// over from original_source/lexical-util/src/skip.rs, re-expressed as
// plain Go methods instead of macro-generated monomorphized variants
// (Go has no const generics over byte/flag values).
package lexical

// skippingIter is an Iter that skips runs of a digit-separator byte where
// the bound Format's section flags permit it. Unlike contiguousIter, its
// Count() can differ from its Cursor(): Cursor tracks the raw byte
// offset, Count tracks how many logical (non-separator) bytes have been
// yielded.
//
// Peek is not a pure observer: it may advance the cursor past a run of
// separators to find the next logical byte. Calling Peek twice in a row
// without an intervening Next/StepBy returns the same byte both times
// (the skip only happens once, and the cursor does not re-enter the
// separator run), which is the property SPEC_FULL's Design Notes ask
// tests to cover.
type skippingIter struct {
	buf   []byte
	index int
	count int

	sep   byte
	radix uint8

	internal, leading, trailing, consecutive bool
}

func (it *skippingIter) isDigitSeparator(c byte) bool {
	return it.sep != 0 && c == it.sep
}

func (it *skippingIter) isDigit(c byte) bool {
	return charIsDigit(c, it.radix)
}

// isLeading reports whether the separator run starting at (or containing)
// index has no digit before it: scan backward over any separators that
// immediately precede it.
func (it *skippingIter) isLeading(index int) bool {
	i := index
	for i > 0 && it.isDigitSeparator(it.buf[i-1]) {
		i--
	}
	return i == 0 || !it.isDigit(it.buf[i-1])
}

// isTrailing reports whether the separator run at index has no digit
// after it: scan forward over any separators that immediately follow it.
func (it *skippingIter) isTrailing(index int) bool {
	i := index
	for i < len(it.buf)-1 && it.isDigitSeparator(it.buf[i+1]) {
		i++
	}
	return i == len(it.buf)-1 || !it.isDigit(it.buf[i+1])
}

func (it *skippingIter) isInternal(index int) bool {
	return !it.isLeading(index) && !it.isTrailing(index)
}

// skippable reports whether the separator run starting at index is
// permitted to be skipped, given which of leading/internal/trailing this
// format allows for the current section.
func (it *skippingIter) skippable(index int) bool {
	if it.internal && it.isInternal(index) {
		return true
	}
	if it.leading && it.isLeading(index) {
		return true
	}
	if it.trailing && it.isTrailing(index) {
		return true
	}
	return false
}

// Peek returns the next non-separator byte, skipping a run of separators
// first if permitted in this context. If the byte at the cursor is a
// separator that is not skippable here, it is returned as-is (callers
// that expect a digit will then correctly reject it as an invalid
// character).
func (it *skippingIter) Peek() (byte, bool) {
	if it.index >= len(it.buf) {
		return 0, false
	}
	c := it.buf[it.index]
	if !it.isDigitSeparator(c) || !it.skippable(it.index) {
		return c, true
	}
	i := it.index + 1
	if it.consecutive {
		for i < len(it.buf) && it.isDigitSeparator(it.buf[i]) {
			i++
		}
	} else if i < len(it.buf) && it.isDigitSeparator(it.buf[i]) {
		// Without the consecutive flag at most one separator is skipped
		// per Peek, so the first of a run of two or more is returned
		// as-is and the cursor stays put.
		return c, true
	}
	it.index = i
	if it.index >= len(it.buf) {
		return 0, false
	}
	return it.buf[it.index], true
}

func (it *skippingIter) Next() (byte, bool) {
	c, ok := it.Peek()
	if ok {
		it.index++
		it.count++
	}
	return c, ok
}

func (it *skippingIter) StepBy(n int) {
	if n < 0 {
		panic("lexical: StepBy past end of buffer")
	}
	for ; n > 0; n-- {
		if _, ok := it.Next(); !ok {
			panic("lexical: StepBy past end of buffer")
		}
	}
}

func (it *skippingIter) SkipZeros() int {
	n := 0
	for {
		c, ok := it.Peek()
		if !ok || c != '0' {
			return n
		}
		it.index++
		it.count++
		n++
	}
}

func (it *skippingIter) IsDone() bool { return it.index >= len(it.buf) }

func (it *skippingIter) IsConsumed() bool {
	_, ok := it.Peek()
	return !ok
}

func (it *skippingIter) Cursor() int        { return it.index }
func (it *skippingIter) Count() int         { return it.count }
func (it *skippingIter) IsContiguous() bool { return false }

func (it *skippingIter) FirstIs(c byte, foldCase bool) bool {
	if it.index >= len(it.buf) {
		return false
	}
	return byteEq(it.buf[it.index], c, foldCase)
}

func (it *skippingIter) PeekIs(c byte, foldCase bool) bool {
	v, ok := it.Peek()
	return ok && byteEq(v, c, foldCase)
}

// TakeN always fails on a skipping iterator: splitting off a raw
// sub-slice would lose the logical/raw offset correspondence the caller
// needs.
func (it *skippingIter) TakeN(n int) (Iter, bool) {
	return nil, false
}
