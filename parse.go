package vtc

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/ansel1/merry/v2"
)

var (
	// ReTimecode matches full and partial timecode strings: "01:00:00:00",
	// "00:00:00;00", "3:12", "04".
	ReTimecode = regexp.MustCompile(`^(?P<negative>-)?((?P<section1>[0-9]+)[:;])?((?P<section2>[0-9]+)[:;])?((?P<section3>[0-9]+)[:;])?(?P<frames>[0-9]+)$`)
	// ReFeetFrames matches feet+frames strings: "5400+13", "-85+15.1".
	ReFeetFrames = regexp.MustCompile(`^(?P<negative>-)?(?P<feet>[0-9]+)\+(?P<frames>[0-9]+)(\.(?P<perf>[0-9]+))?$`)
	// ReRuntime matches full and partial runtime strings: "01:00:03.6", "3.5".
	ReRuntime = regexp.MustCompile(`^(?P<negative>-)?((?P<section1>[0-9]+)[:;])?((?P<section2>[0-9]+)[:;])?(?P<seconds>[0-9]+(\.[0-9]+)?)$`)
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// group returns the text of the named group in a FindStringSubmatch result.
func group(re *regexp.Regexp, m []string, name string) string {
	return m[re.SubexpIndex(name)]
}

// convertTcInt parses one numeric section of a timecode string.
func convertTcInt(value, section string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, merry.Prependf(ErrConversion, "error converting %s to int64: %v", section, err)
	}
	return parsed, nil
}

// popSections returns the matched optional sections from last to first,
// filling missing ones with zero. Partial strings like "3:12" fill from
// the right.
func popSections(re *regexp.Regexp, m []string, names []string, labels []string) ([]int64, error) {
	var present []string
	for _, name := range names {
		if s := group(re, m, name); s != "" {
			present = append(present, s)
		}
	}
	values := make([]int64, len(labels))
	for i, label := range labels {
		if len(present) == 0 {
			break
		}
		last := present[len(present)-1]
		present = present[:len(present)-1]
		v, err := convertTcInt(last, label)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// framesFromValue resolves a Value to a frame count under rate.
func framesFromValue(v Value, rate Framerate) (int64, error) {
	if v.err != nil {
		return 0, v.err
	}
	switch v.kind {
	case KindInteger:
		return v.i, nil
	case KindRational:
		if v.r == nil || !v.r.IsInt() {
			return 0, merry.Prependf(ErrConversion, "frame count %s is not a whole number", v)
		}
		return bigToInt64(v.r.Num(), "frame count")
	case KindDecimal:
		r, err := floatRat(v.f)
		if err != nil {
			return 0, err
		}
		if !r.IsInt() {
			return 0, merry.Prependf(ErrConversion, "frame count %v is not a whole number", v.f)
		}
		return bigToInt64(r.Num(), "frame count")
	case KindText:
		return parseFramesText(v.s, rate)
	case KindFeetFrames:
		m := ReFeetFrames.FindStringSubmatch(v.s)
		if m == nil {
			return 0, merry.Prependf(ErrUnknownStrFormat, "%s is not a known feet+frames format", v.s)
		}
		return parseFeetFrames(m, v.format)
	}
	return 0, merry.Prependf(ErrConversion, "a %s value cannot be used as a frame count", v.kind)
}

// parseFramesText tries the timecode pattern, then feet+frames.
func parseFramesText(s string, rate Framerate) (int64, error) {
	if m := ReTimecode.FindStringSubmatch(s); m != nil {
		return parseTimecode(m, rate)
	}
	if m := ReFeetFrames.FindStringSubmatch(s); m != nil {
		return parseFeetFrames(m, FilmFormat{})
	}
	return 0, merry.Prependf(ErrUnknownStrFormat, "%s is not a known frame-count timecode format", s)
}

// parseTimecode converts a ReTimecode match to a frame count. Sections
// outside their usual range carry into the next unit.
func parseTimecode(m []string, rate Framerate) (int64, error) {
	frames, err := convertTcInt(group(ReTimecode, m, "frames"), "frames")
	if err != nil {
		return 0, err
	}
	sections, err := popSections(
		ReTimecode, m,
		[]string{"section1", "section2", "section3"},
		[]string{"seconds", "minutes", "hours"},
	)
	if err != nil {
		return 0, err
	}
	parsed := Sections{
		Negative: group(ReTimecode, m, "negative") != "",
		Hours:    sections[2],
		Minutes:  sections[1],
		Seconds:  sections[0],
		Frames:   frames,
	}

	var adjustment int64
	if rate.Ntsc() == DropFrame {
		if adjustment, err = dropFrameAdjustment(parsed, rate); err != nil {
			return 0, err
		}
	}

	seconds := new(big.Int).SetInt64(parsed.Hours)
	seconds.Mul(seconds, big.NewInt(secondsPerHour))
	seconds.Add(seconds, new(big.Int).Mul(big.NewInt(parsed.Minutes), big.NewInt(secondsPerMinute)))
	seconds.Add(seconds, big.NewInt(parsed.Seconds))

	total := ratMul(new(big.Rat).SetInt(seconds), rate.Timebase())
	total = ratAdd(total, ratInt(parsed.Frames))
	count := ratRound(total)
	count.Add(count, big.NewInt(adjustment))
	if parsed.Negative {
		count.Neg(count)
	}
	return bigToInt64(count, "frame count")
}

// parseFeetFrames converts a ReFeetFrames match to a frame count. A zero
// format is inferred: 3-perf when a perforation offset is present,
// otherwise 4-perf.
func parseFeetFrames(m []string, format FilmFormat) (int64, error) {
	feet, err := convertTcInt(group(ReFeetFrames, m, "feet"), "feet")
	if err != nil {
		return 0, err
	}
	frames, err := convertTcInt(group(ReFeetFrames, m, "frames"), "frames")
	if err != nil {
		return 0, err
	}
	if format == (FilmFormat{}) {
		format = FF35mm4perf
		if group(ReFeetFrames, m, "perf") != "" {
			format = FF35mm3perf
		}
	}

	// The first frame of a foot is the first one to end inside it.
	perfs := new(big.Int).Mul(big.NewInt(feet), big.NewInt(format.PerfsPerFoot()))
	count := perfs.Div(perfs, big.NewInt(format.PerfsPerFrame()))
	count.Add(count, big.NewInt(frames))
	if group(ReFeetFrames, m, "negative") != "" {
		count.Neg(count)
	}
	return bigToInt64(count, "frame count")
}

// secondsFromValue resolves a Value to a seconds count.
func secondsFromValue(v Value) (*big.Rat, error) {
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
		return floatRat(v.f)
	case KindText:
		if m := ReRuntime.FindStringSubmatch(v.s); m != nil {
			return parseRuntime(m)
		}
		return nil, merry.Prependf(ErrUnknownStrFormat, "%s is not a known seconds timecode format", v.s)
	}
	return nil, merry.Prependf(ErrConversion, "a %s value cannot be used as seconds", v.kind)
}

// parseRuntime converts a ReRuntime match to seconds. The fraction is parsed
// on its own as an exact decimal.
func parseRuntime(m []string) (*big.Rat, error) {
	sections, err := popSections(
		ReRuntime, m,
		[]string{"section1", "section2"},
		[]string{"minutes", "hours"},
	)
	if err != nil {
		return nil, err
	}

	whole, fract, _ := strings.Cut(group(ReRuntime, m, "seconds"), ".")
	seconds, err := convertTcInt(whole, "seconds")
	if err != nil {
		return nil, err
	}

	total := new(big.Int).Mul(big.NewInt(sections[1]), big.NewInt(secondsPerHour))
	total.Add(total, new(big.Int).Mul(big.NewInt(sections[0]), big.NewInt(secondsPerMinute)))
	total.Add(total, big.NewInt(seconds))
	result := new(big.Rat).SetInt(total)

	if fract != "" {
		r, ok := new(big.Rat).SetString("0." + fract)
		if !ok {
			return nil, merry.Prependf(ErrConversion, "error converting fractional seconds '%s'", fract)
		}
		result = ratAdd(result, r)
	}

	if group(ReRuntime, m, "negative") != "" {
		result = ratNeg(result)
	}
	return result, nil
}

// ticksFromValue resolves a Value to a Premiere tick count.
func ticksFromValue(v Value) (*big.Int, error) {
	if v.err != nil {
		return nil, v.err
	}
	switch v.kind {
	case KindInteger:
		return big.NewInt(v.i), nil
	case KindRational:
		if v.r == nil || !v.r.IsInt() {
			return nil, merry.Prependf(ErrConversion, "tick count %s is not a whole number", v)
		}
		return new(big.Int).Set(v.r.Num()), nil
	case KindText:
		ticks, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return nil, merry.Prependf(ErrConversion, "error converting ticks '%s' to int64: %v", v.s, err)
		}
		return big.NewInt(ticks), nil
	}
	return nil, merry.Prependf(ErrConversion, "a %s value cannot be used as premiere ticks", v.kind)
}

func bigToInt64(i *big.Int, what string) (int64, error) {
	v, ok := int64Of(i)
	if !ok {
		return 0, merry.Prependf(ErrConversion, "%s %s does not fit in int64", what, i)
	}
	return v, nil
}
