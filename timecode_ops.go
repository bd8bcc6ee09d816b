package vtc

import (
	"math/big"
)

// Add returns t + other at the rate of t.
func (t Timecode) Add(other Timecode) Timecode {
	return newWithSeconds(ratAdd(t.secs(), other.secs()), t.rate)
}

// Subtract returns t - other at the rate of t.
func (t Timecode) Subtract(other Timecode) Timecode {
	return newWithSeconds(ratSub(t.secs(), other.secs()), t.rate)
}

// Scale multiplies the frame count of t by k, rounding to the nearest frame.
func (t Timecode) Scale(k *big.Rat) Timecode {
	frames := ratMul(new(big.Rat).SetInt(t.bigFrames()), k)
	return t.withBigFrames(ratRound(frames))
}

// DivideFloor divides the frame count of t by n, rounding down.
// It panics if n is zero.
func (t Timecode) DivideFloor(n *big.Rat) Timecode {
	if n.Sign() == 0 {
		panic("vtc: timecode division by zero")
	}
	frames := ratQuo(new(big.Rat).SetInt(t.bigFrames()), n)
	return t.withBigFrames(ratFloor(frames))
}

// Remainder returns the frames DivideFloor leaves over, so that
// t.DivideFloor(n).Scale(n).Add(t.Remainder(n)) has the frame count of t.
// It panics if n is zero.
func (t Timecode) Remainder(n *big.Rat) Timecode {
	whole := t.DivideFloor(n).Scale(n)
	return t.withBigFrames(new(big.Int).Sub(t.bigFrames(), whole.bigFrames()))
}

// ScaleInt is Scale with an integer factor.
func (t Timecode) ScaleInt(k int64) Timecode {
	return t.Scale(ratInt(k))
}

// DivideFloorInt is DivideFloor with an integer divisor.
func (t Timecode) DivideFloorInt(n int64) Timecode {
	return t.DivideFloor(ratInt(n))
}

// RemainderInt is Remainder with an integer divisor.
func (t Timecode) RemainderInt(n int64) Timecode {
	return t.Remainder(ratInt(n))
}

// Negate returns -t.
func (t Timecode) Negate() Timecode {
	return newWithSeconds(ratNeg(t.secs()), t.rate)
}

// Abs returns the absolute value of t.
func (t Timecode) Abs() Timecode {
	return newWithSeconds(ratAbs(t.secs()), t.rate)
}

// Cmp compares the real-world seconds of t and other, regardless of their
// rates. It returns -1, 0 or +1.
func (t Timecode) Cmp(other Timecode) int {
	return t.secs().Cmp(other.secs())
}

// Equal reports whether t and other fall on the same real-world instant.
func (t Timecode) Equal(other Timecode) bool {
	return t.Cmp(other) == 0
}

// Less reports whether t comes before other in real-world time.
func (t Timecode) Less(other Timecode) bool {
	return t.Cmp(other) < 0
}

func (t Timecode) withBigFrames(frames *big.Int) Timecode {
	playback := t.rate.Playback()
	return Timecode{seconds: ratQuo(new(big.Rat).SetInt(frames), playback), rate: t.rate}
}
