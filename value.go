package vtc

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ansel1/merry/v2"
	"golang.org/x/exp/constraints"
)

// Kind names what a Value holds.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
	KindRational
	KindText
	KindFeetFrames
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindRational:
		return "rational"
	case KindText:
		return "text"
	case KindFeetFrames:
		return "feet+frames"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is an input to the parsing constructors: WithPlayback, WithTimebase,
// WithFrames, WithSeconds and WithPremiereTicks. Build one with Int, Float,
// Rat, Ratio, Text or FeetFrames.
type Value struct {
	kind   Kind
	i      int64
	f      float64
	r      *big.Rat
	s      string
	format FilmFormat
	err    error
}

// Int wraps any integer type. Unsigned values above math.MaxInt64 produce a
// Value that fails with ErrConversion when used.
func Int[T constraints.Integer](v T) Value {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return Value{
			kind: KindInteger,
			err:  merry.Prependf(ErrConversion, "error converting %T %v to int64", v, v),
		}
	}
	return Value{kind: KindInteger, i: int64(v)}
}

// Float wraps a float32 or float64.
func Float[T constraints.Float](v T) Value {
	return Value{kind: KindDecimal, f: float64(v)}
}

// Rat wraps a copy of r. A nil r fails with ErrConversion when used.
func Rat(r *big.Rat) Value {
	if r == nil {
		return Value{kind: KindRational, err: merry.Prependf(ErrConversion, "nil rational")}
	}
	return Value{kind: KindRational, r: ratCopy(r)}
}

// Ratio wraps num/den. A zero denominator fails with ErrConversion when used.
func Ratio(num, den int64) Value {
	if den == 0 {
		return Value{kind: KindRational, err: merry.Prependf(ErrConversion, "zero denominator in %d/%d", num, den)}
	}
	return Value{kind: KindRational, r: big.NewRat(num, den)}
}

// Text wraps a string to be parsed.
func Text(s string) Value {
	return Value{kind: KindText, s: s}
}

// FeetFrames wraps a feet+frames string together with the film format it was
// counted in, overriding the format inference done for plain Text.
func FeetFrames(s string, format FilmFormat) Value {
	return Value{kind: KindFeetFrames, s: s, format: format}
}

// Kind reports what v holds.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprint(v.i)
	case KindDecimal:
		return fmt.Sprint(v.f)
	case KindRational:
		if v.r == nil {
			return "<invalid>"
		}
		return v.r.RatString()
	case KindFeetFrames:
		return fmt.Sprintf("%s (%s)", v.s, v.format.Value)
	}
	return v.s
}

// floatRat converts f exactly. NaN and infinities fail with ErrConversion.
func floatRat(f float64) (*big.Rat, error) {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return nil, merry.Prependf(ErrConversion, "could not convert %v to a rational", f)
	}
	return r, nil
}
