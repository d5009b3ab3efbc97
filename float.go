// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatcmp implements a decomposed floating-point number, where
// the mantissa, exponent, and sign of a float64 are stored separately.
// The representation is lossless, reconstruction returns the exact
// original bit pattern, and defines a strict total order over all finite
// values, free of the usual NaN and signed-zero comparison pitfalls.
package floatcmp

import (
	"fmt"
	"math"
	"strconv"

	"github.com/avdva/floatcmp/internal/ieee754"
)

type (
	number  = uint64
	expType = int16
)

// Float is a float64 decomposed into mantissa, exponent, and sign.
// For a normal number the mantissa holds the 52-bit stored fraction with
// the implicit leading bit restored at bit 52, for a subnormal one it
// holds the stored fraction shifted left by one. The exponent is the raw
// unbiased 11-bit field value, where 0 signals a subnormal number.
// NaNs and infinities are not representable.
// The zero value of Float represents +0.0.
// Values are immutable and can be copied and compared freely.
type Float struct {
	mant number
	exp  expType
	sign bool // true for non-negative values
}

// FromFloat64 decomposes a float64 value.
// NaNs and infinities cannot be represented, for them ok == false
// is returned. This is an expected outcome to be checked by the caller,
// not an error.
func FromFloat64(f float64) (result Float, ok bool) {
	return FromBits(math.Float64bits(f))
}

// MustFromFloat64 is like FromFloat64, but panics on non-finite input.
func MustFromFloat64(f float64) Float {
	result, ok := FromFloat64(f)
	if !ok {
		panic("floatcmp: non-finite float64")
	}
	return result
}

// FromBits decomposes a raw IEEE-754 binary64 bit pattern.
// As with FromFloat64, patterns of NaNs and infinities are rejected.
func FromBits(bits uint64) (result Float, ok bool) {
	if !ieee754.IsFinite(bits) {
		return Float{}, false
	}
	e := ieee754.Exp(bits)
	m := ieee754.Frac(bits)
	if e == 0 { // subnormal, no implicit leading bit
		m <<= 1
	} else {
		m |= 1 << ieee754.MantBits
	}
	return Float{mant: m, exp: e, sign: !ieee754.SignBit(bits)}, true
}

// Float64 reconstructs the original float64 value.
// It is the exact inverse of FromFloat64: the result is bit-for-bit equal
// to the decomposed value, signed zeros and subnormals included.
func (f Float) Float64() float64 {
	return math.Float64frombits(f.Bits())
}

// Bits reconstructs the original IEEE-754 binary64 bit pattern.
func (f Float) Bits() uint64 {
	m, e := f.mant, f.exp
	if e <= 0 { // subnormal, undo the shift added by decomposition
		m >>= 1
		e = 0
	}
	return ieee754.Pack(!f.sign, e, m)
}

// Mant returns f's mantissa as is.
func (f Float) Mant() uint64 {
	return uint64(f.mant)
}

// Exp returns the raw unbiased exponent field. 0 signals a subnormal number.
func (f Float) Exp() int16 {
	return int16(f.exp)
}

// IsNegative reports whether the sign bit of the decomposed value was set.
// Note that it is true for a negative zero.
func (f Float) IsNegative() bool {
	return !f.sign
}

// IsZero reports whether the value is a zero of either sign.
func (f Float) IsZero() bool {
	return f.mant == 0
}

// Sign returns -1 if f < 0, 0 if f is a zero of either sign, 1 if f > 0.
// Unlike Cmp, Sign does not distinguish the two zeros.
func (f Float) Sign() int {
	if f.IsZero() {
		return 0
	}
	if !f.sign {
		return -1
	}
	return 1
}

// Eq reports whether both values hold the same bit pattern.
// The zeros of different signs are not Eq, see Cmp.
func (f Float) Eq(other Float) bool {
	return f == other
}

// Cmp compares two values.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
// The order is strict and total, and matches the real-number order of the
// original float64 values for every finite pair except the signed zeros:
// -0.0 is ordered strictly below +0.0, while IEEE-754 compares them equal.
// This divergence is deliberate, it keeps the order antisymmetric.
func (f Float) Cmp(other Float) int {
	if f.sign != other.sign {
		if f.sign {
			return 1
		}
		return -1
	}
	c := int16Cmp(f.exp, other.exp)
	if c == 0 {
		c = uint64Cmp(f.mant, other.mant)
	}
	if !f.sign { // among negatives, a larger magnitude means a smaller value
		c = -c
	}
	return c
}

// Less reports whether f is ordered before other.
func (f Float) Less(other Float) bool {
	return f.Cmp(other) < 0
}

// Greater reports whether f is ordered after other.
func (f Float) Greater(other Float) bool {
	return f.Cmp(other) > 0
}

// Min returns the smaller of a and b.
func Min(a, b Float) Float {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Float) Float {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String returns a string representation of the value.
func (f Float) String() string {
	return strconv.FormatFloat(f.Float64(), 'g', -1, 64)
}

// GoString returns debug string representation.
func (f Float) GoString() string {
	return f.String() + fmt.Sprintf(" {%v, %v, %v}", f.mant, f.exp, f.sign)
}

func uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func int16Cmp(a, b expType) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
