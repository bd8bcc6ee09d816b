package vtc

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ansel1/merry/v2"
)

// PremiereTicksPerSecond is the number of Adobe Premiere Pro ticks in one second,
// regardless of framerate.
const PremiereTicksPerSecond = 254016000000

// Sections holds the individual places of a timecode for display.
type Sections struct {
	Negative bool
	Hours    int64
	Minutes  int64
	Seconds  int64
	Frames   int64
}

// Timecode is a point in time on a frame boundary of its Framerate, stored as
// the exact number of real-world seconds since 00:00:00:00.
//
// Timecode values are never modified; every operation returns a new one.
// See http://andrewduncan.net/timecodes/ for an introduction to drop-frame
// timecode.
type Timecode struct {
	seconds *big.Rat
	rate    Framerate
}

// WithFrames returns the Timecode that is v frames from 00:00:00:00.
// v is an integer count, a timecode string ("01:00:00:00", "3:12"), or a
// feet+frames string ("5400+00", "85+15.1").
func WithFrames(v Value, rate Framerate) (Timecode, error) {
	if err := checkRate(rate); err != nil {
		return Timecode{}, err
	}
	frames, err := framesFromValue(v, rate)
	if err != nil {
		return Timecode{}, err
	}
	return newWithFrames(frames, rate), nil
}

// WithSeconds returns the Timecode nearest to v real-world seconds.
// v is a number or a runtime string ("01:00:03.6", "3603.6").
func WithSeconds(v Value, rate Framerate) (Timecode, error) {
	if err := checkRate(rate); err != nil {
		return Timecode{}, err
	}
	seconds, err := secondsFromValue(v)
	if err != nil {
		return Timecode{}, err
	}
	return newWithSeconds(seconds, rate), nil
}

// WithPremiereTicks returns the Timecode nearest to v Premiere Pro ticks.
func WithPremiereTicks(v Value, rate Framerate) (Timecode, error) {
	if err := checkRate(rate); err != nil {
		return Timecode{}, err
	}
	ticks, err := ticksFromValue(v)
	if err != nil {
		return Timecode{}, err
	}
	seconds := new(big.Rat).SetFrac(ticks, big.NewInt(PremiereTicksPerSecond))
	return newWithSeconds(seconds, rate), nil
}

func checkRate(rate Framerate) error {
	if rate.num <= 0 || rate.den <= 0 {
		return merry.Prependf(ErrConversion, "timecode needs a positive framerate, got %s", rate)
	}
	return nil
}

func newWithFrames(frames int64, rate Framerate) Timecode {
	return newWithSeconds(ratQuo(ratInt(frames), rate.Playback()), rate)
}

// newWithSeconds rounds seconds to the nearest frame boundary of rate.
func newWithSeconds(seconds *big.Rat, rate Framerate) Timecode {
	playback := rate.Playback()
	frames := new(big.Rat).SetInt(ratRound(ratMul(seconds, playback)))
	return Timecode{seconds: ratQuo(frames, playback), rate: rate}
}

func (t Timecode) secs() *big.Rat {
	if t.seconds == nil {
		return ratZero
	}
	return t.seconds
}

// Rate returns the Framerate of t.
func (t Timecode) Rate() Framerate {
	return t.rate
}

// Seconds returns the real-world seconds elapsed between 00:00:00:00 and t.
func (t Timecode) Seconds() *big.Rat {
	return ratCopy(t.secs())
}

// Frames returns the number of frames elapsed between 00:00:00:00 and t.
func (t Timecode) Frames() int64 {
	return saturate(t.bigFrames())
}

func (t Timecode) bigFrames() *big.Int {
	frames := ratMul(t.secs(), t.rate.Playback())
	if frames.IsInt() {
		return new(big.Int).Set(frames.Num())
	}
	return ratRound(frames)
}

// Sections returns the places of the timecode string of t. Hours do not wrap.
// The zero Timecode has no rate and yields zero Sections.
func (t Timecode) Sections() Sections {
	if checkRate(t.rate) != nil {
		return Sections{}
	}
	frames := new(big.Int).Abs(t.bigFrames())
	if t.rate.Ntsc() == DropFrame {
		frames.SetInt64(frameToDropNumber(saturate(frames), t.rate))
	}

	timebase := t.rate.Timebase()
	framesPerMinute := ratMul(timebase, ratInt(secondsPerMinute))
	framesPerHour := ratMul(timebase, ratInt(secondsPerHour))

	remaining := new(big.Rat).SetInt(frames)
	hours := ratFloor(ratQuo(remaining, framesPerHour))
	remaining = ratMod(remaining, framesPerHour)
	minutes := ratFloor(ratQuo(remaining, framesPerMinute))
	remaining = ratMod(remaining, framesPerMinute)
	seconds := ratFloor(ratQuo(remaining, timebase))
	remaining = ratMod(remaining, timebase)

	return Sections{
		Negative: t.secs().Sign() < 0,
		Hours:    saturate(hours),
		Minutes:  saturate(minutes),
		Seconds:  saturate(seconds),
		Frames:   saturate(ratRound(remaining)),
	}
}

// Timecode returns the SMPTE timecode string of t, for example "01:00:00:00".
// Drop-frame rates separate the frames with a semicolon: "00:01:00;02".
func (t Timecode) Timecode() string {
	s := t.Sections()
	sign := ""
	if s.Negative {
		sign = "-"
	}
	sep := ":"
	if t.rate.Ntsc() == DropFrame {
		sep = ";"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d%s%02d", sign, s.Hours, s.Minutes, s.Seconds, sep, s.Frames)
}

// Runtime returns the true elapsed time of t as HH:MM:SS.fff, with the
// fraction rounded to precision digits and trailing zeros trimmed. For NTSC
// rates this differs from Timecode, which counts the nominal frame clock.
func (t Timecode) Runtime(precision int) string {
	if precision < 0 {
		precision = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(precision)), nil)
	scaled := ratRound(ratMul(ratAbs(t.secs()), new(big.Rat).SetInt(scale)))
	whole, fract := new(big.Int).QuoRem(scaled, scale, new(big.Int))

	hours, rem := new(big.Int).QuoRem(whole, big.NewInt(secondsPerHour), new(big.Int))
	minutes, seconds := new(big.Int).QuoRem(rem, big.NewInt(secondsPerMinute), new(big.Int))

	fractStr := ".0"
	if fract.Sign() != 0 {
		digits := fmt.Sprintf("%0*d", precision, fract)
		fractStr = "." + strings.TrimRight(digits, "0")
	}

	sign := ""
	if t.secs().Sign() < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d:%02d:%02d%s", sign, hours, minutes, seconds, fractStr)
}

// PremiereTicks returns the number of Premiere Pro ticks elapsed between
// 00:00:00:00 and t. Ticks show up in Premiere FCP7 XML and panel scripting.
func (t Timecode) PremiereTicks() int64 {
	return saturate(ratRound(ratMul(t.secs(), ratInt(PremiereTicksPerSecond))))
}

// FeetAndFrames returns the film footage of t in format, for example
// "5400+13". A frame is counted in the foot where it ends. Formats whose
// frames straddle feet append the perforation offset: "85+15.1".
func (t Timecode) FeetAndFrames(format FilmFormat) string {
	perfsPerFrame := big.NewInt(format.PerfsPerFrame())
	perfsPerFoot := big.NewInt(format.PerfsPerFoot())

	frames := new(big.Int).Abs(t.bigFrames())
	endPerf := new(big.Int).Mul(frames, perfsPerFrame)
	endPerf.Add(endPerf, perfsPerFrame)
	endPerf.Sub(endPerf, big.NewInt(1))

	feet, rem := new(big.Int).QuoRem(endPerf, perfsPerFoot, new(big.Int))
	inFoot := rem.Quo(rem, perfsPerFrame)

	sign := ""
	if t.secs().Sign() < 0 {
		sign = "-"
	}
	footage := fmt.Sprintf("%s%d+%02d", sign, feet, inFoot)
	if format.HasPerfOffset() {
		offset := new(big.Int).Mod(feet, big.NewInt(format.FootageModulusFootageCount()))
		footage += "." + offset.String()
	}
	return footage
}

// Rebase returns a Timecode with the same frame count as t running at rate.
func (t Timecode) Rebase(rate Framerate) Timecode {
	return newWithFrames(t.Frames(), rate)
}

// String formats t as "[01:00:00:00 @ [24]]".
func (t Timecode) String() string {
	return fmt.Sprintf("[%s @ %s]", t.Timecode(), t.rate)
}
