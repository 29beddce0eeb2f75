// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"math"
	"testing"
)

func TestFloat16ZeroAndSigns(t *testing.T) {
	if FromFloat32(0).ToFloat32() != 0 {
		t.Error("FromFloat32(0) did not round-trip to 0")
	}
	neg := FromFloat32(float32(math.Copysign(0, -1)))
	if math.Signbit(float64(neg.ToFloat32())) != true {
		t.Error("FromFloat32(-0) lost its sign")
	}
}

func TestFloat16NormalRoundTrip(t *testing.T) {
	values := []float32{1, -1, 2, 0.5, 3.5, 100, -100, 65504 /* max finite binary16 */}
	for _, v := range values {
		h := FromFloat32(v)
		got := h.ToFloat32()
		if got != v {
			t.Errorf("FromFloat32(%v).ToFloat32() = %v, want %v", v, got, v)
		}
	}
}

func TestFloat16Subnormal(t *testing.T) {
	// Smallest positive binary16 subnormal is 2^-24.
	smallest := float32(math.Ldexp(1, -24))
	h := FromFloat32(smallest)
	got := h.ToFloat32()
	if got != smallest {
		t.Errorf("FromFloat32(2^-24).ToFloat32() = %v, want %v", got, smallest)
	}

	// Below 2^-25 (half the smallest subnormal) underflows to zero.
	tooSmall := float32(math.Ldexp(1, -30))
	if FromFloat32(tooSmall).ToFloat32() != 0 {
		t.Errorf("FromFloat32(2^-30) did not underflow to zero")
	}
}

func TestFloat16Overflow(t *testing.T) {
	h := FromFloat32(1e30)
	if !math.IsInf(float64(h.ToFloat32()), 1) {
		t.Errorf("FromFloat32(1e30) = %v, want +Inf", h.ToFloat32())
	}
	h = FromFloat32(-1e30)
	if !math.IsInf(float64(h.ToFloat32()), -1) {
		t.Errorf("FromFloat32(-1e30) = %v, want -Inf", h.ToFloat32())
	}
}

func TestFloat16NaNInf(t *testing.T) {
	h := FromFloat32(float32(math.NaN()))
	if !math.IsNaN(float64(h.ToFloat32())) {
		t.Error("FromFloat32(NaN) did not round-trip to NaN")
	}
	h = FromFloat32(float32(math.Inf(1)))
	if !math.IsInf(float64(h.ToFloat32()), 1) {
		t.Error("FromFloat32(+Inf) did not round-trip to +Inf")
	}
	h = FromFloat32(float32(math.Inf(-1)))
	if !math.IsInf(float64(h.ToFloat32()), -1) {
		t.Error("FromFloat32(-Inf) did not round-trip to -Inf")
	}
}

func TestFloat16RoundToNearestEven(t *testing.T) {
	if got, want := roundToNearestEven(0b110, 2), uint32(2); got != want {
		t.Errorf("roundToNearestEven(0b110, 2) = %d, want %d (tie rounds to even)", got, want)
	}
	if got, want := roundToNearestEven(0b1010, 2), uint32(2); got != want {
		t.Errorf("roundToNearestEven(0b1010, 2) = %d, want %d (tie rounds to even)", got, want)
	}
	if got, want := roundToNearestEven(0b111, 2), uint32(2); got != want {
		t.Errorf("roundToNearestEven(0b111, 2) = %d, want %d (rounds up, not a tie)", got, want)
	}
	if got, want := roundToNearestEven(5, 0), uint32(5); got != want {
		t.Errorf("roundToNearestEven(5, 0) = %d, want %d (no shift is a no-op)", got, want)
	}
}

func TestWriteFloat16(t *testing.T) {
	buf := make([]byte, 64)
	h := FromFloat32(1.5)
	n := WriteFloat16(h, buf, DecimalFormat, DefaultOptions(10))
	if got, want := string(buf[:n]), "1.5"; got != want {
		t.Errorf("WriteFloat16(1.5) = %q, want %q", got, want)
	}
}

func TestParseFloat16(t *testing.T) {
	h, n, err := ParseFloat16([]byte("1.5"), DecimalFormat, DefaultOptions(10))
	if err != nil {
		t.Fatalf("ParseFloat16(\"1.5\") returned error %v", err)
	}
	if n != 3 {
		t.Errorf("ParseFloat16(\"1.5\") consumed %d bytes, want 3", n)
	}
	if h.ToFloat32() != 1.5 {
		t.Errorf("ParseFloat16(\"1.5\") = %v, want 1.5", h.ToFloat32())
	}
}
