// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestParseFloatBasic(t *testing.T) {
	cases := []struct {
		in       string
		want     float64
		consumed int
	}{
		{"0", 0, 1},
		{"1", 1, 1},
		{"-1", -1, 2},
		{"1.5", 1.5, 3},
		{"123.456", 123.456, 7},
		{"1e10", 1e10, 4},
		{"1.5e-3", 1.5e-3, 6},
		{"-1.5e+3", -1500, 7},
		{"0.1", 0.1, 3},
		{".", 0, 0}, // not consumed as a digit at all; excluded from the loop below (ParseFloat reports EmptyMantissa for it)
	}
	for _, c := range cases[:len(cases)-1] {
		v, n, err := ParseFloat([]byte(c.in), DecimalFormat, DefaultOptions(10))
		if err != nil {
			t.Errorf("ParseFloat(%q) returned error %v", c.in, err)
			continue
		}
		if v != c.want || n != c.consumed {
			t.Errorf("ParseFloat(%q) = (%v, %d), want (%v, %d)", c.in, v, n, c.want, c.consumed)
		}
	}
}

func TestParseFloatEmptyMantissa(t *testing.T) {
	_, _, err := ParseFloat([]byte(""), DecimalFormat, DefaultOptions(10))
	var e *Error
	if !errors.As(err, &e) || e.Code != Empty {
		t.Fatalf("ParseFloat(\"\") error = %v, want Empty", err)
	}

	_, _, err = ParseFloat([]byte("e10"), DecimalFormat, DefaultOptions(10))
	if !errors.As(err, &e) || e.Code != EmptyMantissa {
		t.Fatalf("ParseFloat(\"e10\") error = %v, want EmptyMantissa", err)
	}
}

func TestParseFloatNaNInf(t *testing.T) {
	v, n, err := ParseFloat([]byte("NaN"), DecimalFormat, DefaultOptions(10))
	if err != nil || !math.IsNaN(v) || n != 3 {
		t.Fatalf("ParseFloat(\"NaN\") = (%v, %d, %v), want (NaN, 3, nil)", v, n, err)
	}
	v, n, err = ParseFloat([]byte("inf"), DecimalFormat, DefaultOptions(10))
	if err != nil || !math.IsInf(v, 1) || n != 3 {
		t.Fatalf("ParseFloat(\"inf\") = (%v, %d, %v), want (+Inf, 3, nil)", v, n, err)
	}
	v, n, err = ParseFloat([]byte("-inf"), DecimalFormat, DefaultOptions(10))
	if err != nil || !math.IsInf(v, -1) || n != 4 {
		t.Fatalf("ParseFloat(\"-inf\") = (%v, %d, %v), want (-Inf, 4, nil)", v, n, err)
	}
}

func TestParseFloatNoSpecialFlag(t *testing.T) {
	f := Format{MantissaRadix: 10, ExponentBase: 10, ExponentRadix: 10, Flags: NoSpecial}
	_, _, err := ParseFloat([]byte("NaN"), f, DefaultOptions(10))
	var e *Error
	// With special values disabled, "NaN" is lexed as an (empty) mantissa
	// followed by unconsumed garbage, which has no digits at all.
	if !errors.As(err, &e) || e.Code != EmptyMantissa {
		t.Fatalf("ParseFloat(\"NaN\") with NoSpecial error = %v, want EmptyMantissa", err)
	}
}

func TestParseFloatCaseFolding(t *testing.T) {
	v, _, err := ParseFloat([]byte("nan"), DecimalFormat, DefaultOptions(10))
	if err != nil || !math.IsNaN(v) {
		t.Fatalf("ParseFloat(\"nan\") (case-insensitive by default) = (%v, %v), want (NaN, nil)", v, err)
	}

	f := Format{MantissaRadix: 10, ExponentBase: 10, ExponentRadix: 10, Flags: CaseSensitiveSpecial}
	_, _, err = ParseFloat([]byte("nan"), f, DefaultOptions(10))
	var e *Error
	if !errors.As(err, &e) || e.Code != EmptyMantissa {
		t.Fatalf("ParseFloat(\"nan\") with CaseSensitiveSpecial error = %v, want EmptyMantissa", err)
	}
}

func TestParseFloatFastAndSlowPathAgree(t *testing.T) {
	// Values on both sides of the 15-significant-digit fast-path
	// threshold must parse to the identical float64, since the slow path
	// is only a fallback for precision, not a different rounding rule.
	values := []string{
		"123456789012345",        // 15 digits, fast path eligible
		"1234567890123456",       // 16 digits, forces slow path
		"12345678901234567890",   // far beyond fast path
		"1.7976931348623157e308", // near max float64
		"2.2250738585072014e-308",
		"5e-324", // smallest denormal
		"1.0000000000000002",    // one ulp above 1.0
	}
	for _, s := range values {
		got, _, err := ParseFloat([]byte(s), DecimalFormat, DefaultOptions(10))
		if err != nil {
			t.Fatalf("ParseFloat(%q) returned error %v", s, err)
		}
		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("strconv.ParseFloat(%q) returned error %v", s, err)
		}
		if got != want {
			t.Errorf("ParseFloat(%q) = %v, strconv.ParseFloat = %v", s, got, want)
		}
	}
}

func TestParseFloatRequiredFlags(t *testing.T) {
	f := Format{MantissaRadix: 10, ExponentBase: 10, ExponentRadix: 10, Flags: RequiredFractionDigits}
	_, _, err := ParseFloat([]byte("1"), f, DefaultOptions(10))
	var e *Error
	if !errors.As(err, &e) || e.Code != EmptyFraction {
		t.Fatalf("ParseFloat(\"1\") with RequiredFractionDigits error = %v, want EmptyFraction", err)
	}
	v, _, err := ParseFloat([]byte("1.0"), f, DefaultOptions(10))
	if err != nil || v != 1 {
		t.Fatalf("ParseFloat(\"1.0\") with RequiredFractionDigits = (%v, %v), want (1, nil)", v, err)
	}
}

func TestParseFloatLeadingZeros(t *testing.T) {
	v, n, err := ParseFloat([]byte("007.5"), DecimalFormat, DefaultOptions(10))
	if err != nil || v != 7.5 || n != 5 {
		t.Fatalf("ParseFloat(\"007.5\") = (%v, %d, %v), want (7.5, 5, nil)", v, n, err)
	}
}

func TestParseIntHexViaFormat(t *testing.T) {
	f := Format{MantissaRadix: 16, ExponentBase: 16, ExponentRadix: 10}
	v, n, err := ParseInt[uint32]([]byte("1f"), f)
	if err != nil || v != 31 || n != 2 {
		t.Fatalf("ParseInt(\"1f\", radix 16) = (%d, %d, %v), want (31, 2, nil)", v, n, err)
	}
}

func TestParseFloat32(t *testing.T) {
	v, n, err := ParseFloat32([]byte("3.14"), DecimalFormat, DefaultOptions(10))
	if err != nil || n != 4 {
		t.Fatalf("ParseFloat32(\"3.14\") = (%v, %d, %v), want (_, 4, nil)", v, n, err)
	}
	want, _ := strconv.ParseFloat("3.14", 32)
	if float64(v) != want {
		t.Fatalf("ParseFloat32(\"3.14\") = %v, want %v", v, want)
	}
}
