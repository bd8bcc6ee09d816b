package main

import (
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ansel1/merry/v2"
	"github.com/kzmdstu/vtc"
)

// Row is what field templates are executed against. In and Out bound the
// range the row describes; a single value has In == Out.
type Row struct {
	Name   string
	Input  string
	Rate   vtc.Framerate
	In     vtc.Timecode
	Out    vtc.Timecode
	Length vtc.Timecode

	// Set by seq only.
	Files int

	// Set by mov only.
	Resolution string
	Codec      string
	Colorspace string

	film      vtc.FilmFormat
	precision int
}

// Feet formats tc in the configured film format.
func (r Row) Feet(tc vtc.Timecode) (string, error) {
	if err := present(tc); err != nil {
		return "", err
	}
	return tc.FeetAndFrames(r.film), nil
}

// Runtime formats tc with the configured precision.
func (r Row) Runtime(tc vtc.Timecode) (string, error) {
	if err := present(tc); err != nil {
		return "", err
	}
	return tc.Runtime(r.precision), nil
}

// present fails for the zero Timecode, which rows use for missing values.
func present(tc vtc.Timecode) error {
	if tc.Rate() == (vtc.Framerate{}) {
		return merry.New("missing timecode")
	}
	return nil
}

// newRange builds a Row spanning in to out inclusive. Length is left
// missing when in is.
func newRange(name string, in, out vtc.Timecode, s Settings) Row {
	row := Row{
		Name:      name,
		Rate:      in.Rate(),
		In:        in,
		Out:       out,
		film:      s.Film,
		precision: s.Precision,
	}
	if present(in) == nil && present(out) == nil {
		frame, _ := vtc.WithFrames(vtc.Int(1), in.Rate())
		row.Length = out.Subtract(in).Add(frame)
	}
	return row
}

var FieldFuncs = template.FuncMap{
	"rate": func(r vtc.Framerate) (string, error) {
		if r == (vtc.Framerate{}) {
			return "", merry.New("missing framerate")
		}
		return r.String(), nil
	},
	"timecode": func(tc vtc.Timecode) (string, error) {
		if err := present(tc); err != nil {
			return "", err
		}
		return tc.Timecode(), nil
	},
	"frames": func(tc vtc.Timecode) (int64, error) {
		return tc.Frames(), present(tc)
	},
	"seconds": func(tc vtc.Timecode) (string, error) {
		if err := present(tc); err != nil {
			return "", err
		}
		return tc.Seconds().RatString(), nil
	},
	"runtime": func(tc vtc.Timecode, precision int) (string, error) {
		if err := present(tc); err != nil {
			return "", err
		}
		return tc.Runtime(precision), nil
	},
	"ticks": func(tc vtc.Timecode) (int64, error) {
		return tc.PremiereTicks(), present(tc)
	},
	"feet": func(tc vtc.Timecode, format string) (string, error) {
		if err := present(tc); err != nil {
			return "", err
		}
		film, err := vtc.ParseFilmFormat(format)
		if err != nil {
			return "", err
		}
		return tc.FeetAndFrames(film), nil
	},
	// rebase takes a rate as "24", "24000/1001:ndf" or "29.97:df".
	"rebase": func(tc vtc.Timecode, rate string) (vtc.Timecode, error) {
		if err := present(tc); err != nil {
			return vtc.Timecode{}, err
		}
		value, ntsc, _ := strings.Cut(rate, ":")
		r, err := parseRate(value, ntsc, false)
		if err != nil {
			return vtc.Timecode{}, err
		}
		return tc.Rebase(r), nil
	},
	"add": func(a, b vtc.Timecode) (vtc.Timecode, error) {
		if err := present(a); err != nil {
			return vtc.Timecode{}, err
		}
		return a.Add(b), nil
	},
	"sub": func(a, b vtc.Timecode) (vtc.Timecode, error) {
		if err := present(a); err != nil {
			return vtc.Timecode{}, err
		}
		return a.Subtract(b), nil
	},
	"remap": func(path, from, to string) string {
		if !strings.HasPrefix(path, from) {
			return path
		}
		path = strings.Replace(path, from, to, 1)
		return path
	},
	"dirname": filepath.Dir,
	"abspath": filepath.Abs,
}

// compileFields parses a template for each field.
func compileFields(fields []Field) ([]*template.Template, error) {
	tmpls := make([]*template.Template, len(fields))
	for i, field := range fields {
		t, err := template.New(field.Name).Funcs(FieldFuncs).Parse(field.Value)
		if err != nil {
			return nil, merry.Prependf(err, "field %s", field.Name)
		}
		tmpls[i] = t
	}
	return tmpls, nil
}

var (
	convertFields = []Field{
		{Name: "Input", Value: "{{.Input}}"},
		{Name: "Rate", Value: "{{rate .Rate}}"},
		{Name: "Timecode", Value: "{{timecode .In}}"},
		{Name: "Frames", Value: "{{frames .In}}"},
		{Name: "Seconds", Value: "{{seconds .In}}"},
		{Name: "Runtime", Value: "{{.Runtime .In}}"},
		{Name: "Ticks", Value: "{{ticks .In}}"},
		{Name: "Feet", Value: "{{.Feet .In}}"},
	}
	seqFields = []Field{
		{Name: "Sequence", Value: "{{.Name}}"},
		{Name: "In", Value: "{{timecode .In}}"},
		{Name: "Out", Value: "{{timecode .Out}}"},
		{Name: "Length", Value: "{{frames .Length}}"},
		{Name: "Files", Value: "{{.Files}}"},
		{Name: "Feet", Value: "{{.Feet .Length}}"},
	}
	movFields = []Field{
		{Name: "File", Value: "{{.Name}}"},
		{Name: "Rate", Value: "{{rate .Rate}}"},
		{Name: "TimecodeIn", Value: "{{timecode .In}}"},
		{Name: "TimecodeOut", Value: "{{timecode .Out}}"},
		{Name: "Duration", Value: "{{frames .Length}}"},
		{Name: "Resolution", Value: "{{.Resolution}}"},
		{Name: "Codec", Value: "{{.Codec}}"},
		{Name: "Colorspace", Value: "{{.Colorspace}}"},
	}
)

// fieldsOr returns fields, or defaults when there are none.
func fieldsOr(fields, defaults []Field) []Field {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}
