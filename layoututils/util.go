package layoututils

import (
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// Number is the set of unsigned integer types the arithmetic helpers in this
// package operate on. Layout math is all unsigned byte/extent arithmetic, so
// signed types are deliberately excluded.
type Number interface {
	constraints.Unsigned
}

// CheckPow2 returns PowerOfTwoError (wrapped with the offending name and value) if number is
// not a power of two.
func CheckPow2[T Number](number T, name string) error {
	if number == 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// AlignUp rounds value up to the next multiple of alignment. alignment must be
// a power of two.
func AlignUp[T Number](value, alignment T) T {
	return (value + alignment - 1) &^ (alignment - 1)
}

// AlignDown rounds value down to the previous multiple of alignment. alignment
// must be a power of two.
func AlignDown[T Number](value, alignment T) T {
	return value &^ (alignment - 1)
}

// DivCeil divides num by denom, rounding up.
func DivCeil[T Number](num, denom T) T {
	return (num + denom - 1) / denom
}

// Log2 returns the floor of the base-2 logarithm of value. value must be nonzero.
func Log2[T Number](value T) T {
	return T(bits.Len64(uint64(value)) - 1)
}

// CeilLog2 returns the smallest n such that 1<<n >= value.
func CeilLog2[T Number](value T) T {
	if value <= 1 {
		return 0
	}
	return T(bits.Len64(uint64(value) - 1))
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
