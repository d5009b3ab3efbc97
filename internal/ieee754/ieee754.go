// Package ieee754 provides bit-level access to the IEEE-754 binary64 layout.
package ieee754

// Field layout of a binary64 value:
//   63      52                                                    0
//   _________|____________________________________________________
//   seeeeeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
const (
	MantBits = 52
	ExpBits  = 11

	MantMask = 1<<MantBits - 1
	ExpMask  = 1<<ExpBits - 1
	SignMask = uint64(1) << 63

	// MaxExp is the reserved exponent field value for infinities and NaNs.
	MaxExp = ExpMask
)

// SignBit reports whether the sign bit of 'bits' is set.
func SignBit(bits uint64) bool {
	return bits&SignMask != 0
}

// Exp returns the raw 11-bit exponent field, without removing the bias.
func Exp(bits uint64) int16 {
	return int16(bits >> MantBits & ExpMask)
}

// Frac returns the 52-bit stored fraction, without the implicit leading bit.
func Frac(bits uint64) uint64 {
	return bits & MantMask
}

// IsFinite reports whether 'bits' holds a finite number,
// i.e. neither an infinity nor a NaN.
func IsFinite(bits uint64) bool {
	return Exp(bits) != MaxExp
}

// Pack composes a bit pattern from a sign bit, a raw exponent field,
// and a stored fraction. exp and frac are masked to their field widths.
func Pack(neg bool, exp int16, frac uint64) uint64 {
	bits := (uint64(exp)&ExpMask)<<MantBits | frac&MantMask
	if neg {
		bits |= SignMask
	}
	return bits
}
