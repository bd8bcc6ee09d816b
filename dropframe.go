package vtc

import (
	"github.com/ansel1/merry/v2"
)

// Drop-frame counting, after
// https://www.davidheidelberger.com/2010/06/10/drop-frame-timecode/

// frameToDropNumber converts a sequential frame number into the number whose
// plain timecode decomposition gives the drop-frame display value.
// Panics if rate is not drop-frame.
func frameToDropNumber(frame int64, rate Framerate) int64 {
	drop, ok := rate.DropFramesPerMinute()
	if !ok {
		panic("vtc: drop-frame number requested for non drop-frame rate " + rate.String())
	}
	timebase := rate.timebaseInt()

	framesPerMinute := timebase * 60
	framesPerMinuteDrop := framesPerMinute - drop
	// Nine dropped minutes and one full one.
	framesPer10MinutesDrop := framesPerMinuteDrop*9 + framesPerMinute

	tens, rem := floorDivMod(frame, framesPer10MinutesDrop)
	adjustment := 9 * drop * tens

	if rem < framesPerMinute {
		return frame + adjustment
	}

	// The first minute of the block keeps all its numbers.
	rem -= framesPerMinute
	adjustment += drop
	adjustment += (rem / framesPerMinuteDrop) * drop

	return frame + adjustment
}

// dropFrameAdjustment returns the (negative) number of frames to add to the
// naive frame count of the parsed sections s, or ErrDropFrameValue when s
// names a frame number drop-frame timecode skips.
func dropFrameAdjustment(s Sections, rate Framerate) (int64, error) {
	drop, ok := rate.DropFramesPerMinute()
	if !ok {
		panic("vtc: drop-frame adjustment requested for non drop-frame rate " + rate.String())
	}

	if s.Frames < drop && s.Seconds == 0 && s.Minutes%10 != 0 {
		return 0, merry.Prependf(
			ErrDropFrameValue,
			"drop-frame tc cannot have a frames value of less than %d on minutes not divisible by 10, found '%d'",
			drop, s.Frames,
		)
	}

	totalMinutes := 60*s.Hours + s.Minutes
	return -drop * (totalMinutes - totalMinutes/10), nil
}

func floorDivMod(a, b int64) (int64, int64) {
	q, r := a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}
