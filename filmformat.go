package vtc

import (
	"math/big"

	"github.com/ansel1/merry/v2"
	"github.com/orsinium-labs/enum"
)

// FilmFormat is a film gauge and pulldown, used to count feet+frames.
type FilmFormat enum.Member[string]

var (
	// FF35mm4perf is 35mm film with 4 perforations per frame: 16 frames per foot.
	FF35mm4perf = FilmFormat{"35mm-4perf"}
	// FF35mm3perf is 35mm film with 3 perforations per frame. Frames straddle
	// foot boundaries, so its footage carries a perforation offset.
	FF35mm3perf = FilmFormat{"35mm-3perf"}
	// FF35mm2perf is 35mm film with 2 perforations per frame: 32 frames per foot.
	FF35mm2perf = FilmFormat{"35mm-2perf"}
	// FF16mm is 16mm film: 20 frames per foot.
	FF16mm = FilmFormat{"16mm"}

	FilmFormats = enum.New(FF35mm4perf, FF35mm3perf, FF35mm2perf, FF16mm)
)

// ParseFilmFormat looks a format up by name, for example "35mm-3perf".
func ParseFilmFormat(name string) (FilmFormat, error) {
	format := FilmFormats.Parse(name)
	if format == nil {
		return FilmFormat{}, merry.Prependf(ErrUnknownStrFormat, "unknown film format '%s'", name)
	}
	return *format, nil
}

func (f FilmFormat) String() string {
	return f.Value
}

// PerfsPerFrame returns the number of perforations in one frame.
// Unknown formats count as 35mm 4-perf.
func (f FilmFormat) PerfsPerFrame() int64 {
	switch f {
	case FF35mm3perf:
		return 3
	case FF35mm2perf:
		return 2
	case FF16mm:
		return 1
	}
	return 4
}

// PerfsPerFoot returns the number of perforations in one foot of film.
func (f FilmFormat) PerfsPerFoot() int64 {
	if f == FF16mm {
		return 20
	}
	return 64
}

// FramesPerFoot returns the number of frames in a foot. It is not whole for 3-perf.
func (f FilmFormat) FramesPerFoot() *big.Rat {
	return big.NewRat(f.PerfsPerFoot(), f.PerfsPerFrame())
}

// FootageModulusPerfCount returns the smallest number of perforations that
// holds both a whole number of frames and a whole number of feet.
func (f FilmFormat) FootageModulusPerfCount() int64 {
	return lcm(f.PerfsPerFrame(), f.PerfsPerFoot())
}

// FootageModulusFrameCount returns the number of frames in one footage modulus.
func (f FilmFormat) FootageModulusFrameCount() int64 {
	return f.FootageModulusPerfCount() / f.PerfsPerFrame()
}

// FootageModulusFootageCount returns the number of feet in one footage modulus.
func (f FilmFormat) FootageModulusFootageCount() int64 {
	return f.FootageModulusPerfCount() / f.PerfsPerFoot()
}

// HasPerfOffset reports whether frames can start part way into a foot, in
// which case feet+frames strings carry a ".N" perforation offset.
func (f FilmFormat) HasPerfOffset() bool {
	return f.PerfsPerFoot()%f.PerfsPerFrame() != 0
}
