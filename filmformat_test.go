package vtc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilmFormatDimensions(t *testing.T) {
	cases := []struct {
		format         FilmFormat
		perfsPerFrame  int64
		perfsPerFoot   int64
		framesPerFoot  *big.Rat
		modulusPerfs   int64
		modulusFrames  int64
		modulusFootage int64
		perfOffset     bool
	}{
		{FF35mm4perf, 4, 64, big.NewRat(16, 1), 64, 16, 1, false},
		{FF35mm3perf, 3, 64, big.NewRat(64, 3), 192, 64, 3, true},
		{FF35mm2perf, 2, 64, big.NewRat(32, 1), 64, 32, 1, false},
		{FF16mm, 1, 20, big.NewRat(20, 1), 20, 20, 1, false},
	}
	for _, c := range cases {
		t.Run(c.format.String(), func(t *testing.T) {
			assert.Equal(t, c.perfsPerFrame, c.format.PerfsPerFrame())
			assert.Equal(t, c.perfsPerFoot, c.format.PerfsPerFoot())
			assert.Equal(t, 0, c.framesPerFoot.Cmp(c.format.FramesPerFoot()))
			assert.Equal(t, c.modulusPerfs, c.format.FootageModulusPerfCount())
			assert.Equal(t, c.modulusFrames, c.format.FootageModulusFrameCount())
			assert.Equal(t, c.modulusFootage, c.format.FootageModulusFootageCount())
			assert.Equal(t, c.perfOffset, c.format.HasPerfOffset())
		})
	}
}

func TestParseFilmFormat(t *testing.T) {
	for _, format := range FilmFormats.Members() {
		parsed, err := ParseFilmFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}

	_, err := ParseFilmFormat("70mm-15perf")
	assert.ErrorIs(t, err, ErrUnknownStrFormat)
}

func TestFootageModulusRepeats(t *testing.T) {
	// Every modulus worth of frames advances the footage by a whole number of
	// feet and restarts the perforation offset.
	for _, format := range FilmFormats.Members() {
		frames := format.FootageModulusFrameCount()
		feet := format.FootageModulusFootageCount()
		for _, start := range []int64{0, 5, 17} {
			a := mustFrames(t, Int(start), Rate24)
			b := mustFrames(t, Int(start+frames), Rate24)
			fa := ReFeetFrames.FindStringSubmatch(a.FeetAndFrames(format))
			fb := ReFeetFrames.FindStringSubmatch(b.FeetAndFrames(format))
			require.NotNil(t, fa)
			require.NotNil(t, fb)

			feetA, _ := convertTcInt(group(ReFeetFrames, fa, "feet"), "feet")
			feetB, _ := convertTcInt(group(ReFeetFrames, fb, "feet"), "feet")
			assert.Equal(t, feet, feetB-feetA, "%s from %d", format, start)
			assert.Equal(t, group(ReFeetFrames, fa, "frames"), group(ReFeetFrames, fb, "frames"))
			assert.Equal(t, group(ReFeetFrames, fa, "perf"), group(ReFeetFrames, fb, "perf"))
		}
	}
}
