package vtc

import (
	"github.com/ansel1/merry/v2"
)

// Error kinds returned by the constructors and parsers of this package.
// The returned errors carry a detail message; test for the kind with errors.Is.
var (
	// ErrNtsc is returned when a value breaks the NTSC rules:
	// playback rates must be n/1001 and timebases must be whole numbers.
	ErrNtsc = merry.Sentinel("ntsc")
	// ErrDropFrame is returned when a drop-frame rate is not a multiple of 29.97.
	ErrDropFrame = merry.Sentinel("drop-frame")
	// ErrDropFrameValue is returned when a drop-frame timecode names a frame
	// number that drop-frame timecode skips.
	ErrDropFrameValue = merry.Sentinel("drop-frame value")
	// ErrNegative is returned for negative framerates.
	ErrNegative = merry.Sentinel("negative")
	// ErrImprecise is returned when a float is given where an exact value is needed.
	ErrImprecise = merry.Sentinel("imprecise")
	// ErrConversion is returned when a number does not fit or does not parse.
	ErrConversion = merry.Sentinel("conversion")
	// ErrUnknownStrFormat is returned when a string matches none of the known formats.
	ErrUnknownStrFormat = merry.Sentinel("unknown string format")
)
