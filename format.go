// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

// Section identifies which part of a numeric literal an iterator or a
// format flag applies to.
type Section uint8

// The four sections a Format's digit-separator flags are defined over.
const (
	Integer Section = iota
	Fraction
	Exponent
	Special
)

//go:generate stringer -type=Section

func (s Section) String() string {
	switch s {
	case Integer:
		return "Integer"
	case Fraction:
		return "Fraction"
	case Exponent:
		return "Exponent"
	case Special:
		return "Special"
	default:
		return "Section(?)"
	}
}

// Flag is a bitmask of the per-format options enumerated in the package
// documentation. Flags are grouped by section (Integer/Fraction/Exponent
// each get their own leading/internal/trailing/consecutive separator
// bits) plus a handful of global flags.
type Flag uint64

// Per-section digit-separator flags. Use sectionFlags to fetch the four
// bits for a given Section rather than naming them directly.
const (
	integerInternalSep Flag = 1 << iota
	integerLeadingSep
	integerTrailingSep
	integerConsecutiveSep

	fractionInternalSep
	fractionLeadingSep
	fractionTrailingSep
	fractionConsecutiveSep

	exponentInternalSep
	exponentLeadingSep
	exponentTrailingSep
	exponentConsecutiveSep

	specialDigitSeparator // special section only ever has an on/off flag

	// Global flags.
	RequiredIntegerDigits
	RequiredFractionDigits
	RequiredExponentDigits
	RequiredMantissaSign
	RequiredExponentSign
	RequiredExponentNotation
	NoPositiveMantissaSign
	NoPositiveExponentSign
	NoExponentNotation
	NoExponentWithoutFraction
	NoFractionWithoutInteger
	CaseSensitiveBasePrefix
	CaseSensitiveBaseSuffix
	CaseSensitiveSpecial
	NoSpecial
)

// sectionMasks holds, per section, the (internal, leading, trailing,
// consecutive) flag quadruplet in that order. Special has no internal/
// leading/trailing distinction: all four entries alias the single
// specialDigitSeparator flag so the shared dispatch code in skip.go can
// treat it uniformly.
var sectionMasks = [4][4]Flag{
	Integer:  {integerInternalSep, integerLeadingSep, integerTrailingSep, integerConsecutiveSep},
	Fraction: {fractionInternalSep, fractionLeadingSep, fractionTrailingSep, fractionConsecutiveSep},
	Exponent: {exponentInternalSep, exponentLeadingSep, exponentTrailingSep, exponentConsecutiveSep},
	Special:  {specialDigitSeparator, specialDigitSeparator, specialDigitSeparator, specialDigitSeparator},
}

// Format is the compile-time-in-spirit (runtime-in-practice, see
// DESIGN.md Open Question #1) descriptor of a numeric text format: the
// mantissa radix, the exponent base and radix, the digit-separator byte,
// and the format flags.
//
// Format is a plain immutable value; two formats are equal iff all
// fields match. Format is comparable and safe for concurrent reads.
type Format struct {
	MantissaRadix  uint8
	ExponentBase   uint8
	ExponentRadix  uint8
	DigitSeparator byte // 0 disables digit separators entirely
	Flags          Flag
}

// DecimalFormat is the standard decimal format: radix 10, no digit
// separators, no special restrictions beyond the defaults.
var DecimalFormat = Format{
	MantissaRadix: 10,
	ExponentBase:  10,
	ExponentRadix: 10,
}

// Has reports whether all bits in mask are set in the format's flags.
func (f Format) Has(mask Flag) bool {
	return f.Flags&mask == mask
}

// sectionFlags returns the (internal, leading, trailing, consecutive)
// flags that apply to the given section of this format.
func (f Format) sectionFlags(s Section) (internal, leading, trailing, consecutive bool) {
	m := sectionMasks[s]
	if s == Special {
		on := f.Has(specialDigitSeparator)
		return on, on, on, on
	}
	return f.Has(m[0]), f.Has(m[1]), f.Has(m[2]), f.Has(m[3])
}

// IsValid reports whether f is a well-formed format on its own: radices
// in range, the digit separator (if any) not a digit of the mantissa or
// exponent radix, and no contradictory flag combination. It does not
// compare the separator with the decimal point or exponent character,
// which belong to Options; IsValidWithOptions does that.
func (f Format) IsValid() bool {
	if f.MantissaRadix < MinRadix || f.MantissaRadix > MaxRadix {
		return false
	}
	if f.ExponentBase < MinRadix || f.ExponentBase > MaxRadix {
		return false
	}
	if f.ExponentRadix < MinRadix || f.ExponentRadix > MaxRadix {
		return false
	}
	if f.DigitSeparator != 0 {
		if charIsDigit(f.DigitSeparator, f.MantissaRadix) || charIsDigit(f.DigitSeparator, f.ExponentRadix) {
			return false
		}
	}
	if f.Has(RequiredExponentNotation) && f.Has(NoExponentNotation) {
		return false
	}
	if f.Has(NoPositiveMantissaSign) && f.Has(RequiredMantissaSign) {
		return false
	}
	if f.Has(NoPositiveExponentSign) && f.Has(RequiredExponentSign) {
		return false
	}
	return true
}

// IsValidWithOptions reports whether f is valid per IsValid and, in
// addition, that f's digit separator (if any) does not collide with
// either of options' DecimalPoint or ExponentChar bytes. IsValid alone
// cannot check this since a Format is validated independently of the
// Options it will be paired with, but spec.md §4.1 requires the
// separator to be unambiguous against every other meaningful byte in the
// literal, not just against a digit. Callers that accept a Format and
// Options together (WriteFloat, WriteFloat32, numfmt.Builder) must use
// this instead of IsValid alone.
func (f Format) IsValidWithOptions(options Options) bool {
	if !f.IsValid() {
		return false
	}
	if f.DigitSeparator != 0 {
		if f.DigitSeparator == options.DecimalPoint || f.DigitSeparator == options.ExponentChar {
			return false
		}
	}
	return true
}
