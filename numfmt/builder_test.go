// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numfmt

import (
	"testing"

	"github.com/db47h/lexical"
)

func TestBuilderDefaults(t *testing.T) {
	format, options, err := New(10).Build()
	if err != nil {
		t.Fatalf("New(10).Build() returned error %v", err)
	}
	if format.MantissaRadix != 10 || format.ExponentBase != 10 || format.ExponentRadix != 10 {
		t.Errorf("New(10) format = %+v, want all radices 10", format)
	}
	want := lexical.DefaultOptions(10)
	if options.DecimalPoint != want.DecimalPoint || options.ExponentChar != want.ExponentChar ||
		string(options.NaNString) != string(want.NaNString) || string(options.InfString) != string(want.InfString) {
		t.Errorf("New(10) options = %+v, want %+v", options, want)
	}
}

func TestBuilderChaining(t *testing.T) {
	format, options, err := New(16).
		ExponentBase(2).
		ExponentRadix(10).
		DigitSeparator('_').
		Flags(lexical.RequiredExponentDigits).
		DecimalPoint(',').
		ExponentChar('p').
		NaNString([]byte("NaN")).
		InfString([]byte("Inf")).
		MinSignificantDigits(3).
		ExponentBreaks(-4, 8).
		TrimFloats(true).
		Build()
	if err != nil {
		t.Fatalf("Builder chain returned error %v", err)
	}
	if format.MantissaRadix != 16 || format.ExponentBase != 2 || format.ExponentRadix != 10 {
		t.Errorf("format radices = %+v, want (16, 2, 10)", format)
	}
	if format.DigitSeparator != '_' {
		t.Errorf("format.DigitSeparator = %q, want '_'", format.DigitSeparator)
	}
	if !format.Has(lexical.RequiredExponentDigits) {
		t.Error("format missing RequiredExponentDigits flag")
	}
	if options.DecimalPoint != ',' || options.ExponentChar != 'p' {
		t.Errorf("options punctuation = %+v, want DecimalPoint ',' ExponentChar 'p'", options)
	}
	if string(options.NaNString) != "NaN" || string(options.InfString) != "Inf" {
		t.Errorf("options special strings = %q/%q, want NaN/Inf", options.NaNString, options.InfString)
	}
	if options.MinSignificantDigits != 3 {
		t.Errorf("options.MinSignificantDigits = %d, want 3", options.MinSignificantDigits)
	}
	if options.NegativeExponentBreak != -4 || options.PositiveExponentBreak != 8 {
		t.Errorf("options exponent breaks = (%d, %d), want (-4, 8)",
			options.NegativeExponentBreak, options.PositiveExponentBreak)
	}
	if !options.TrimFloats {
		t.Error("options.TrimFloats = false, want true")
	}
}

func TestBuilderErrorShortCircuitsChain(t *testing.T) {
	b := New(10).MinSignificantDigits(-1).DecimalPoint('#').ExponentChar('!')
	_, _, err := b.Build()
	if err == nil {
		t.Fatal("Build() after negative MinSignificantDigits returned nil error")
	}
	// The two setters chained after the error must have been no-ops: the
	// options must still be New(10)'s defaults, not '#'/'!'.
	defaults := lexical.DefaultOptions(10)
	if b.options.DecimalPoint != defaults.DecimalPoint || b.options.ExponentChar != defaults.ExponentChar {
		t.Errorf("setters chained after an error were not no-ops: options = %+v", b.options)
	}
}

func TestBuilderErrNaNStringTooLong(t *testing.T) {
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	b := New(10).NaNString(long)
	if err := b.Err(); err == nil {
		t.Fatal("NaNString with 51 bytes did not record an error")
	}
	// Err clears the error state.
	if err := b.Err(); err != nil {
		t.Fatalf("Err() after being read once = %v, want nil", err)
	}
}

func TestBuilderErrInfStringTooLong(t *testing.T) {
	long := make([]byte, 51)
	_, _, err := New(10).InfString(long).Build()
	if err == nil {
		t.Fatal("InfString with 51 bytes did not surface an error from Build")
	}
}

func TestBuilderErrNegativeMinSignificantDigits(t *testing.T) {
	_, _, err := New(10).MinSignificantDigits(-5).Build()
	if err == nil {
		t.Fatal("MinSignificantDigits(-5) did not surface an error from Build")
	}
}

func TestBuilderErrExponentBreaksMustStraddleZero(t *testing.T) {
	cases := []struct{ neg, pos int }{
		{1, 5},   // negative break must be <= 0
		{-5, -1}, // positive break must be >= 0
	}
	for _, c := range cases {
		_, _, err := New(10).ExponentBreaks(c.neg, c.pos).Build()
		if err == nil {
			t.Errorf("ExponentBreaks(%d, %d) did not surface an error from Build", c.neg, c.pos)
		}
	}
	// Zero on either side is allowed.
	_, _, err := New(10).ExponentBreaks(0, 0).Build()
	if err != nil {
		t.Errorf("ExponentBreaks(0, 0) returned error %v, want nil", err)
	}
}

func TestBuilderErrInvalidFormat(t *testing.T) {
	_, _, err := New(10).ExponentBase(1).Build()
	if err == nil {
		t.Fatal("Build() with ExponentBase(1) (invalid radix) returned nil error")
	}
}

func TestBuilderErrDigitSeparatorCollidesWithDecimalPoint(t *testing.T) {
	_, _, err := New(10).DigitSeparator('.').Build()
	if err == nil {
		t.Fatal("Build() with DigitSeparator matching the default DecimalPoint returned nil error")
	}
}

func TestBuilderErrDigitSeparatorCollidesWithExponentChar(t *testing.T) {
	_, _, err := New(10).DigitSeparator('e').Build()
	if err == nil {
		t.Fatal("Build() with DigitSeparator matching the default ExponentChar returned nil error")
	}
}

func TestBuilderErrClearedAfterRead(t *testing.T) {
	b := New(10).MinSignificantDigits(-1)
	if b.Err() == nil {
		t.Fatal("expected an error after MinSignificantDigits(-1)")
	}
	if b.Err() != nil {
		t.Fatal("Err() did not clear the error state on first read")
	}
}
