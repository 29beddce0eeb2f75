// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import "encoding/binary"

// Iter is a byte cursor over an input buffer, bound to a Format and a
// Section. It never mutates its underlying buffer and never reports
// errors: reads at the end of the buffer report false, and stepping past
// the end with StepBy is a precondition violation and panics in this
// implementation (the "debug build" checks spec.md §4.2 calls for).
//
// Two implementations exist, chosen once at construction by NewIter
// depending on whether the bound Format uses a digit separator in the
// requested Section: a contiguousIter, which is a plain bounds-checked
// slice cursor, and a skippingIter, which additionally skips runs of the
// separator byte where the format's section flags permit it. Binding the
// choice at construction rather than re-testing it on every byte is what
// keeps the contiguous path as cheap as a raw slice cursor (see SPEC_FULL
// Open Question #1).
type Iter interface {
	// Peek returns the next logical byte without consuming it, or false
	// if the iterator is consumed.
	Peek() (byte, bool)
	// Next consumes and returns the next logical byte.
	Next() (byte, bool)
	// StepBy advances the cursor past n logical bytes. Precondition:
	// n <= remaining logical bytes.
	StepBy(n int)
	// SkipZeros advances past a run of ASCII '0' bytes and returns how
	// many were skipped.
	SkipZeros() int
	// IsDone reports whether the cursor is at the end of the underlying
	// buffer (a cheaper, weaker check than IsConsumed).
	IsDone() bool
	// IsConsumed reports whether Peek would return false.
	IsConsumed() bool
	// FirstIs reports whether the raw byte at the cursor equals c,
	// without separator skipping, optionally case-folding ASCII letters.
	FirstIs(c byte, foldCase bool) bool
	// PeekIs reports whether Peek() would yield c, optionally
	// case-folding ASCII letters.
	PeekIs(c byte, foldCase bool) bool
	// TakeN returns a contiguous sub-iterator over the next n underlying
	// bytes and advances the cursor by n. It only succeeds on a
	// contiguous iterator; skipping iterators return (nil, false)
	// because splitting would lose track of the logical digit count.
	TakeN(n int) (Iter, bool)
	// Cursor returns the current raw byte offset into the buffer.
	Cursor() int
	// Count returns the number of logical digits yielded so far.
	Count() int
	// IsContiguous reports whether this iterator is the contiguous
	// (no-separator-skipping) implementation.
	IsContiguous() bool
}

// NewIter returns an Iter over buf bound to format and section.
func NewIter(buf []byte, format Format, section Section) Iter {
	if format.DigitSeparator == 0 {
		return &contiguousIter{buf: buf}
	}
	internal, leading, trailing, consecutive := format.sectionFlags(section)
	if !internal && !leading && !trailing {
		// No skipping ever applies in this section, so it behaves exactly
		// like a contiguous iterator regardless of the separator byte.
		return &contiguousIter{buf: buf}
	}
	return &skippingIter{
		buf:         buf,
		sep:         format.DigitSeparator,
		radix:       sectionRadix(format, section),
		internal:    internal,
		leading:     leading,
		trailing:    trailing,
		consecutive: consecutive,
	}
}

func sectionRadix(f Format, s Section) uint8 {
	if s == Exponent {
		return f.ExponentRadix
	}
	return f.MantissaRadix
}

// contiguousIter is a raw, bounds-checked slice cursor: its logical digit
// count always equals its raw byte offset.
type contiguousIter struct {
	buf   []byte
	index int
}

func (it *contiguousIter) Peek() (byte, bool) {
	if it.index >= len(it.buf) {
		return 0, false
	}
	return it.buf[it.index], true
}

func (it *contiguousIter) Next() (byte, bool) {
	c, ok := it.Peek()
	if ok {
		it.index++
	}
	return c, ok
}

func (it *contiguousIter) StepBy(n int) {
	if n < 0 || it.index+n > len(it.buf) {
		panic("lexical: StepBy past end of buffer")
	}
	it.index += n
}

func (it *contiguousIter) SkipZeros() int {
	start := it.index
	for it.index < len(it.buf) && it.buf[it.index] == '0' {
		it.index++
	}
	return it.index - start
}

func (it *contiguousIter) IsDone() bool      { return it.index >= len(it.buf) }
func (it *contiguousIter) IsConsumed() bool  { return it.IsDone() }
func (it *contiguousIter) Cursor() int       { return it.index }
func (it *contiguousIter) Count() int        { return it.index }
func (it *contiguousIter) IsContiguous() bool { return true }

func (it *contiguousIter) FirstIs(c byte, foldCase bool) bool {
	if it.index >= len(it.buf) {
		return false
	}
	return byteEq(it.buf[it.index], c, foldCase)
}

func (it *contiguousIter) PeekIs(c byte, foldCase bool) bool {
	v, ok := it.Peek()
	return ok && byteEq(v, c, foldCase)
}

func (it *contiguousIter) TakeN(n int) (Iter, bool) {
	end := it.index + n
	if end > len(it.buf) {
		end = len(it.buf)
	}
	sub := &contiguousIter{buf: it.buf[:end], index: it.index}
	it.index = end
	return sub, true
}

// ReadU32 reads the next 4 bytes as a little-endian uint32 for bulk digit
// processing, and reports whether enough bytes remained. It does not
// advance the cursor; callers combine it with StepBy(4).
func (it *contiguousIter) ReadU32() (uint32, bool) {
	if it.index+4 > len(it.buf) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(it.buf[it.index:]), true
}

// ReadU64 is the 8-byte counterpart of ReadU32.
func (it *contiguousIter) ReadU64() (uint64, bool) {
	if it.index+8 > len(it.buf) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(it.buf[it.index:]), true
}

func byteEq(a, b byte, foldCase bool) bool {
	if a == b {
		return true
	}
	if !foldCase {
		return false
	}
	return asciiLower(a) == asciiLower(b)
}

func asciiLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
