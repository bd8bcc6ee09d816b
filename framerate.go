package vtc

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ansel1/merry/v2"
)

// Ntsc is the NTSC standard a Framerate adheres to.
type Ntsc int

const (
	// NotNtsc rates play back at exactly their timebase.
	NotNtsc Ntsc = iota
	// NonDropFrame rates play back at timebase*1000/1001 and their timecode
	// drifts from wall-clock time.
	NonDropFrame
	// DropFrame rates play back at timebase*1000/1001 and skip frame numbers
	// to keep timecode in step with wall-clock time.
	DropFrame
)

// IsNtsc reports whether n is either NTSC flavor.
func (n Ntsc) IsNtsc() bool {
	return n != NotNtsc
}

func (n Ntsc) String() string {
	switch n {
	case NonDropFrame:
		return "NTSC NDF"
	case DropFrame:
		return "NTSC DF"
	}
	return ""
}

var (
	dropDivisorPlayback = big.NewRat(30000, 1001)
	dropDivisorTimebase = big.NewRat(30, 1)
	ntscFactor          = big.NewRat(1000, 1001)
)

// Framerate is the rate at which frames are played back, in frames per
// second, together with its NTSC flavor. Framerates are comparable with ==.
// The zero value is not a valid rate; use WithPlayback, WithTimebase or one
// of the Rate constants.
type Framerate struct {
	num  int64
	den  int64
	ntsc Ntsc
}

// WithPlayback returns the Framerate whose real-world playback speed is v.
//
// NTSC playback rates must be n/1001. Floats are only accepted for NTSC rates
// and are coerced to the nearest n/1001 value.
func WithPlayback(v Value, ntsc Ntsc) (Framerate, error) {
	return newFramerate(v, ntsc, false)
}

// WithTimebase returns the Framerate whose timecode timebase is v. For NTSC
// rates v must be a whole number and the playback speed becomes v*1000/1001.
func WithTimebase(v Value, ntsc Ntsc) (Framerate, error) {
	return newFramerate(v, ntsc, true)
}

// MustPlayback is like WithPlayback but panics on error.
func MustPlayback(v Value, ntsc Ntsc) Framerate {
	rate, err := WithPlayback(v, ntsc)
	if err != nil {
		panic(err)
	}
	return rate
}

// MustTimebase is like WithTimebase but panics on error.
func MustTimebase(v Value, ntsc Ntsc) Framerate {
	rate, err := WithTimebase(v, ntsc)
	if err != nil {
		panic(err)
	}
	return rate
}

func newFramerate(v Value, ntsc Ntsc, isTimebase bool) (Framerate, error) {
	r, err := framerateRat(v, ntsc, isTimebase)
	if err != nil {
		return Framerate{}, err
	}
	if err := validateNtsc(r, ntsc, isTimebase); err != nil {
		return Framerate{}, err
	}
	if isTimebase && ntsc.IsNtsc() {
		r = ratMul(new(big.Rat).SetInt(ratRound(r)), ntscFactor)
	}
	num, ok := int64Of(r.Num())
	if !ok {
		return Framerate{}, merry.Prependf(ErrConversion, "framerate %s does not fit in 64 bits", r.RatString())
	}
	den, ok := int64Of(ratCopy(r).Denom())
	if !ok {
		return Framerate{}, merry.Prependf(ErrConversion, "framerate %s does not fit in 64 bits", r.RatString())
	}
	return Framerate{num: num, den: den, ntsc: ntsc}, nil
}

// framerateRat resolves v to the rational it names, before validation.
func framerateRat(v Value, ntsc Ntsc, isTimebase bool) (*big.Rat, error) {
	if v.err != nil {
		return nil, v.err
	}
	switch v.kind {
	case KindInteger:
		return ratInt(v.i), nil
	case KindRational:
		if v.r == nil {
			return nil, merry.Prependf(ErrConversion, "nil rational")
		}
		return v.r, nil
	case KindDecimal:
		return floatFramerate(v.f, ntsc, isTimebase)
	case KindText:
		return textFramerate(v.s, ntsc, isTimebase)
	}
	return nil, merry.Prependf(ErrConversion, "a %s value cannot be used as a framerate", v.kind)
}

func floatFramerate(f float64, ntsc Ntsc, isTimebase bool) (*big.Rat, error) {
	if !ntsc.IsNtsc() {
		return nil, merry.Prependf(ErrImprecise, "float values cannot be parsed for non-NTSC Framerates due to imprecision")
	}
	r, err := floatRat(f)
	if err != nil {
		return nil, err
	}
	// Coerce playback values to the nearest legal NTSC rate.
	if !isTimebase {
		r = ratMul(new(big.Rat).SetInt(ratRound(r)), ntscFactor)
	}
	return r, nil
}

// textFramerate tries "n/d", then an integer, then a float.
func textFramerate(s string, ntsc Ntsc, isTimebase bool) (*big.Rat, error) {
	if strings.Contains(s, "/") {
		if r, ok := new(big.Rat).SetString(s); ok {
			return r, nil
		}
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ratInt(i), nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return floatFramerate(f, ntsc, isTimebase)
	}
	return nil, merry.Prependf(ErrConversion, "could not parse '%s' as rational, int, or float for framerate", s)
}

func validateNtsc(r *big.Rat, ntsc Ntsc, isTimebase bool) error {
	if r.Sign() < 0 {
		return merry.Prependf(ErrNegative, "framerates cannot be negative")
	}
	if !ntsc.IsNtsc() {
		return nil
	}

	if isTimebase {
		if !r.IsInt() {
			return merry.Prependf(ErrNtsc, "ntsc timebases must be whole numbers")
		}
	} else if d := ratCopy(r).Denom(); !d.IsInt64() || d.Int64() != 1001 {
		return merry.Prependf(ErrNtsc, "ntsc framerates must be n/1001")
	}

	if ntsc != DropFrame {
		return nil
	}

	divisor, kind := dropDivisorPlayback, "playback"
	if isTimebase {
		divisor, kind = dropDivisorTimebase, "timebase"
	}
	if ratMod(r, divisor).Sign() != 0 {
		return merry.Prependf(ErrDropFrame, "dropframe must have %s divisible by %s (multiple of 29.97)", kind, divisor.RatString())
	}
	return nil
}

// Playback returns the real-world playback speed in frames per second.
func (f Framerate) Playback() *big.Rat {
	if f.den == 0 {
		return new(big.Rat)
	}
	return big.NewRat(f.num, f.den)
}

// Timebase returns the nominal speed timecode is counted in. For NTSC rates
// this is the playback speed rounded to the nearest whole frame.
func (f Framerate) Timebase() *big.Rat {
	if f.ntsc.IsNtsc() {
		return new(big.Rat).SetInt(ratRound(f.Playback()))
	}
	return f.Playback()
}

// Ntsc returns the NTSC flavor of f.
func (f Framerate) Ntsc() Ntsc {
	return f.ntsc
}

// DropFramesPerMinute returns how many frame numbers drop-frame timecode
// skips at the start of each minute not divisible by ten: 2 for 29.97, 4 for
// 59.94. It returns false for rates that are not drop-frame.
func (f Framerate) DropFramesPerMinute() (int64, bool) {
	if f.ntsc != DropFrame {
		return 0, false
	}
	timebase := saturate(ratRound(f.Playback()))
	return int64(math.Round(float64(timebase) * 0.066666)), true
}

// timebaseInt returns the timebase of an NTSC rate as an integer.
func (f Framerate) timebaseInt() int64 {
	return saturate(ratRound(f.Playback()))
}

// String formats f as "[23.98 NTSC NDF]" or "[24]".
func (f Framerate) String() string {
	value := f.Playback().FloatString(2)
	value = strings.TrimRight(value, "0")
	value = strings.TrimSuffix(value, ".")
	if f.ntsc.IsNtsc() {
		return fmt.Sprintf("[%s %s]", value, f.ntsc)
	}
	return fmt.Sprintf("[%s]", value)
}
