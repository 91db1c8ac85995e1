package puzzle

import "golang.org/x/exp/constraints"

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Sum returns the sum of nums.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Digits returns the number of decimal digits of n (n ≥ 0); Digits(0) is 1.
func Digits[T constraints.Integer](n T) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10^e for e ≥ 0.
func Pow10[T constraints.Integer](e int) T {
	p := T(1)
	for ; e > 0; e-- {
		p *= 10
	}
	return p
}
