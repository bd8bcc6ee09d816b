package vtc

import (
	"math"
	"math/big"
)

// Rational helpers. Every helper returns a fresh *big.Rat and never writes to
// its arguments, so values held by Framerate and Timecode can be shared freely.

var (
	ratZero = new(big.Rat)
	ratHalf = big.NewRat(1, 2)
)

func ratInt(v int64) *big.Rat {
	return new(big.Rat).SetInt64(v)
}

func ratCopy(r *big.Rat) *big.Rat {
	return new(big.Rat).Set(r)
}

func ratMul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func ratQuo(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Quo(a, b)
}

func ratAdd(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

func ratSub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

func ratAbs(r *big.Rat) *big.Rat {
	return new(big.Rat).Abs(r)
}

func ratNeg(r *big.Rat) *big.Rat {
	return new(big.Rat).Neg(r)
}

// ratFloor returns the largest integer <= r.
func ratFloor(r *big.Rat) *big.Int {
	c := ratCopy(r)
	// Euclidean division floors when the divisor is positive, and Rat
	// denominators always are.
	return new(big.Int).Div(c.Num(), c.Denom())
}

// ratRound rounds r to the nearest integer, half away from zero.
func ratRound(r *big.Rat) *big.Int {
	if r.Sign() < 0 {
		return new(big.Int).Neg(ratFloor(ratAdd(ratAbs(r), ratHalf)))
	}
	return ratFloor(ratAdd(r, ratHalf))
}

// ratMod returns r - floor(r/m)*m.
func ratMod(r, m *big.Rat) *big.Rat {
	q := new(big.Rat).SetInt(ratFloor(ratQuo(r, m)))
	return ratSub(r, ratMul(q, m))
}

// int64Of returns the value of i, and false when it does not fit in an int64.
func int64Of(i *big.Int) (int64, bool) {
	if !i.IsInt64() {
		return 0, false
	}
	return i.Int64(), true
}

// saturate clamps i to the int64 range.
func saturate(i *big.Int) int64 {
	if v, ok := int64Of(i); ok {
		return v
	}
	if i.Sign() < 0 {
		return math.MinInt64
	}
	return math.MaxInt64
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int64) int64 {
	return a / gcd(a, b) * b
}
