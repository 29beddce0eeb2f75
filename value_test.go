// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"fmt"
	"testing"
)

func TestValueZeroValueDefaults(t *testing.T) {
	var v Value
	if got, want := v.Text(), "0.0"; got != want {
		t.Errorf("zero Value.Text() = %q, want %q", got, want)
	}
}

func TestNewValueText(t *testing.T) {
	v := NewValue(1.5, DecimalFormat, DefaultOptions(10))
	if got, want := v.Text(), "1.5"; got != want {
		t.Errorf("NewValue(1.5).Text() = %q, want %q", got, want)
	}
}

func TestParseValue(t *testing.T) {
	v, n, err := ParseValue([]byte("3.25"), DecimalFormat, DefaultOptions(10))
	if err != nil {
		t.Fatalf("ParseValue(\"3.25\") returned error %v", err)
	}
	if n != 4 {
		t.Errorf("ParseValue(\"3.25\") consumed %d bytes, want 4", n)
	}
	if v.F != 3.25 {
		t.Errorf("ParseValue(\"3.25\").F = %v, want 3.25", v.F)
	}
	if got, want := v.Text(), "3.25"; got != want {
		t.Errorf("ParseValue(\"3.25\").Text() = %q, want %q", got, want)
	}
}

func TestValueAppend(t *testing.T) {
	v := NewValue(42, DecimalFormat, DefaultOptions(10))
	buf := []byte("x=")
	got := v.Append(buf)
	if string(got) != "x=42.0" {
		t.Errorf("Value.Append onto \"x=\" = %q, want %q", got, "x=42.0")
	}
	// The original slice's prefix must be untouched.
	if string(buf) != "x=" {
		t.Errorf("Value.Append mutated its argument: %q", buf)
	}
}

func TestValueString(t *testing.T) {
	v := NewValue(-7.5, DecimalFormat, DefaultOptions(10))
	if got, want := v.String(), "-7.5"; got != want {
		t.Errorf("Value.String() = %q, want %q", got, want)
	}
}

func TestValueFormatVerbs(t *testing.T) {
	v := NewValue(2.5, DecimalFormat, DefaultOptions(10))

	if got, want := fmt.Sprintf("%v", v), "2.5"; got != want {
		t.Errorf("%%v of Value = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%s", v), "2.5"; got != want {
		t.Errorf("%%s of Value = %q, want %q", got, want)
	}
	got := fmt.Sprintf("%d", v)
	want := "%!d(lexical.Value=2.5)"
	if got != want {
		t.Errorf("%%d of Value = %q, want %q", got, want)
	}
}

func TestValueCustomFormatOptions(t *testing.T) {
	hexOpts := Options{DecimalPoint: '.', ExponentChar: 'p', NaNString: []byte("NaN"), InfString: []byte("inf"),
		NegativeExponentBreak: -5, PositiveExponentBreak: 9, TrimFloats: true}
	hexFormat := Format{MantissaRadix: 16, ExponentBase: 2, ExponentRadix: 10}
	v := NewValue(1.0, hexFormat, hexOpts)
	if got, want := v.Text(), "1p0"; got != want {
		t.Errorf("Value with hex Format/Options = %q, want %q", got, want)
	}
}
