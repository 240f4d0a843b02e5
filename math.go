package flatpix

import "math/bits"

// maxInt is the largest value representable by int on this platform.
const maxInt = int(^uint(0) >> 1)

// checkedMul returns a*b, reporting whether the product stayed within the
// non-negative int range. Negative operands fail closed: stride arithmetic
// is defined over offsets only, so a negative input is reported the same
// way as an overflow.
func checkedMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > uint(maxInt) {
		return 0, false
	}
	return int(lo), true
}

// checkedAdd returns a+b under the same rules as checkedMul.
func checkedAdd(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	sum, carry := bits.Add(uint(a), uint(b), 0)
	if carry != 0 || sum > uint(maxInt) {
		return 0, false
	}
	return int(sum), true
}

// satDec decrements n, saturating at zero so that empty extents never
// underflow into a bogus "last coordinate".
func satDec(n int) int {
	if n <= 0 {
		return 0
	}
	return n - 1
}
