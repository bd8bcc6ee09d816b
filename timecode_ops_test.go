package vtc

import (
	"math/big"
	"sort"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Timecode
		equal bool
		less  bool
	}{
		{
			name:  "overflowed frames",
			a:     mustFrames(t, Text("01:00:00:00"), Rate24),
			b:     mustFrames(t, Text("00:59:59:24"), Rate24),
			equal: true,
		},
		{
			name: "one frame apart",
			a:    mustFrames(t, Text("01:00:00:00"), Rate24),
			b:    mustFrames(t, Text("01:00:00:01"), Rate24),
			less: true,
		},
		{
			name: "mixed rates",
			a:    mustFrames(t, Text("01:00:00:00"), Rate23_98),
			b:    mustFrames(t, Text("01:00:00:01"), Rate24),
		},
		{
			name: "negative",
			a:    mustFrames(t, Text("-00:00:00:01"), Rate24),
			b:    mustFrames(t, Text("00:00:00:00"), Rate24),
			less: true,
		},
		{
			name:  "same instant at different rates",
			a:     mustFrames(t, Text("00:00:01:00"), Rate24),
			b:     mustFrames(t, Text("00:00:01:00"), Rate48),
			equal: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.equal, c.a.Equal(c.b))
			assert.Equal(t, c.less, c.a.Less(c.b))
			switch {
			case c.equal:
				assert.Equal(t, 0, c.a.Cmp(c.b))
			case c.less:
				assert.Equal(t, -1, c.a.Cmp(c.b))
			default:
				assert.Equal(t, 1, c.a.Cmp(c.b))
			}
		})
	}
}

func TestSort(t *testing.T) {
	tcs := lo.Map([]string{"00:01:00:00", "01:00:00:00", "00:00:10:00"}, func(s string, _ int) Timecode {
		return mustFrames(t, Text(s), Rate24)
	})
	sort.Slice(tcs, func(i, j int) bool { return tcs[i].Less(tcs[j]) })
	got := lo.Map(tcs, func(tc Timecode, _ int) string { return tc.Timecode() })
	assert.Equal(t, []string{"00:00:10:00", "00:01:00:00", "01:00:00:00"}, got)
}

func TestAddSubtract(t *testing.T) {
	cases := []struct {
		a, b     string
		add, sub string
	}{
		{"01:00:00:00", "01:00:00:00", "02:00:00:00", "00:00:00:00"},
		{"01:00:00:00", "00:00:00:01", "01:00:00:01", "00:59:59:23"},
		{"01:00:00:00", "-00:30:00:00", "00:30:00:00", "01:30:00:00"},
		{"00:00:00:00", "01:00:00:00", "01:00:00:00", "-01:00:00:00"},
	}
	for _, c := range cases {
		a := mustFrames(t, Text(c.a), Rate24)
		b := mustFrames(t, Text(c.b), Rate24)
		assert.Equal(t, c.add, a.Add(b).Timecode(), "%s + %s", c.a, c.b)
		assert.Equal(t, c.sub, a.Subtract(b).Timecode(), "%s - %s", c.a, c.b)
	}

	// The result keeps the rate of the receiver and rounds to its frames.
	a := mustFrames(t, Text("01:00:00:00"), Rate24)
	b := mustFrames(t, Text("01:00:00:00"), Rate23_98)
	sum := a.Add(b)
	assert.Equal(t, Rate24, sum.Rate())
	assert.Equal(t, "02:00:03:14", sum.Timecode())
}

func TestScale(t *testing.T) {
	tc := mustFrames(t, Text("01:00:00:00"), Rate24)
	cases := []struct {
		k    *big.Rat
		want string
	}{
		{big.NewRat(2, 1), "02:00:00:00"},
		{big.NewRat(3, 2), "01:30:00:00"},
		{big.NewRat(1, 2), "00:30:00:00"},
		{big.NewRat(0, 1), "00:00:00:00"},
		{big.NewRat(-1, 1), "-01:00:00:00"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, tc.Scale(c.k).Timecode(), c.k.RatString())
	}
	assert.Equal(t, "02:00:00:00", tc.ScaleInt(2).Timecode())

	zero := mustFrames(t, Int(0), Rate24)
	assert.Equal(t, "00:00:00:00", zero.ScaleInt(10).Timecode())

	// Half frames round away from zero.
	one := mustFrames(t, Int(1), Rate24)
	assert.Equal(t, int64(1), one.Scale(big.NewRat(1, 2)).Frames())
	assert.Equal(t, int64(-1), one.Negate().Scale(big.NewRat(1, 2)).Frames())
}

func TestDivRem(t *testing.T) {
	cases := []struct {
		tc       string
		rate     Framerate
		n        *big.Rat
		quotient string
		rem      string
	}{
		{"01:00:00:00", Rate24, big.NewRat(2, 1), "00:30:00:00", "00:00:00:00"},
		{"01:00:00:00", Rate23_98, big.NewRat(2, 1), "00:30:00:00", "00:00:00:00"},
		{"01:00:00:01", Rate24, big.NewRat(2, 1), "00:30:00:00", "00:00:00:01"},
		{"01:00:00:00", Rate24, big.NewRat(4, 1), "00:15:00:00", "00:00:00:00"},
		{"01:00:00:03", Rate24, big.NewRat(4, 1), "00:15:00:00", "00:00:00:03"},
		{"01:00:00:4", Rate24, big.NewRat(3, 2), "00:40:00:02", "00:00:00:01"},
		{"-00:00:00:07", Rate24, big.NewRat(2, 1), "-00:00:00:04", "00:00:00:01"},
	}
	for _, c := range cases {
		tc := mustFrames(t, Text(c.tc), c.rate)
		assert.Equal(t, c.quotient, tc.DivideFloor(c.n).Timecode(), "%s / %s", c.tc, c.n.RatString())
		assert.Equal(t, c.rem, tc.Remainder(c.n).Timecode(), "%s %% %s", c.tc, c.n.RatString())

		rebuilt := tc.DivideFloor(c.n).Scale(c.n).Add(tc.Remainder(c.n))
		assert.Equal(t, tc.Frames(), rebuilt.Frames(), "%s", c.tc)
	}

	tc := mustFrames(t, Text("01:00:00:03"), Rate24)
	assert.Equal(t, "00:15:00:00", tc.DivideFloorInt(4).Timecode())
	assert.Equal(t, int64(3), tc.RemainderInt(4).Frames())
}

func TestDivideByZeroPanics(t *testing.T) {
	tc := mustFrames(t, Text("01:00:00:00"), Rate24)
	assert.Panics(t, func() { tc.DivideFloorInt(0) })
	assert.Panics(t, func() { tc.Remainder(new(big.Rat)) })
}

func TestNegateAbs(t *testing.T) {
	cases := []struct {
		in     string
		negate string
		abs    string
	}{
		{"01:00:00:00", "-01:00:00:00", "01:00:00:00"},
		{"-01:00:00:00", "01:00:00:00", "01:00:00:00"},
		{"00:00:00:00", "00:00:00:00", "00:00:00:00"},
	}
	for _, c := range cases {
		tc := mustFrames(t, Text(c.in), Rate24)
		assert.Equal(t, c.negate, tc.Negate().Timecode(), c.in)
		assert.Equal(t, c.abs, tc.Abs().Timecode(), c.in)
	}
}
