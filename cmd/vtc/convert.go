package main

import (
	"io"

	"github.com/ansel1/merry/v2"
	"github.com/gocarina/gocsv"
	"github.com/kzmdstu/vtc"
	"github.com/orsinium-labs/enum"
	"github.com/samber/lo"
)

// InputKind says how a convert input is read.
type InputKind enum.Member[string]

var (
	KindFrames  = InputKind{"frames"}
	KindSeconds = InputKind{"seconds"}
	KindTicks   = InputKind{"ticks"}

	InputKinds = enum.New(KindFrames, KindSeconds, KindTicks)
)

func parseKind(name string) (InputKind, error) {
	if name == "" {
		return KindFrames, nil
	}
	k := InputKinds.Parse(name)
	if k == nil {
		return InputKind{}, merry.Errorf("unknown input kind %q, want one of %v", name, InputKinds.Values())
	}
	return *k, nil
}

// Input is one value to convert. Empty Kind, Rate and Ntsc fall back to the
// command line settings.
type Input struct {
	Value string `csv:"value"`
	Kind  string `csv:"kind"`
	Rate  string `csv:"rate"`
	Ntsc  string `csv:"ntsc"`
}

// readInputs reads csv with a header line naming the Input columns.
func readInputs(r io.Reader) ([]*Input, error) {
	inputs := []*Input{}
	if err := gocsv.Unmarshal(r, &inputs); err != nil {
		return nil, merry.Prepend(err, "could not read csv input")
	}
	return inputs, nil
}

// argInputs wraps command line values, all of the given kind.
func argInputs(args []string, kind string) []*Input {
	return lo.Map(args, func(arg string, _ int) *Input {
		return &Input{Value: arg, Kind: kind}
	})
}

// convert reads in as a Timecode.
func (in *Input) convert(s Settings) (vtc.Timecode, error) {
	kind, err := parseKind(in.Kind)
	if err != nil {
		return vtc.Timecode{}, err
	}
	rate := s.Rate
	if in.Rate != "" {
		if rate, err = parseRate(in.Rate, in.Ntsc, false); err != nil {
			return vtc.Timecode{}, err
		}
	}
	v := vtc.Text(in.Value)
	switch kind {
	case KindSeconds:
		return vtc.WithSeconds(v, rate)
	case KindTicks:
		return vtc.WithPremiereTicks(v, rate)
	}
	return vtc.WithFrames(v, rate)
}

// convertRows converts every input. Inputs that fail keep the row with
// missing timecodes so the output lines up with the input.
func convertRows(inputs []*Input, s Settings) ([]Row, []error) {
	var errs []error
	rows := lo.Map(inputs, func(in *Input, _ int) Row {
		tc, err := in.convert(s)
		if err != nil {
			errs = append(errs, merry.Prependf(err, "%s", in.Value))
		}
		row := newRange(in.Value, tc, tc, s)
		row.Input = in.Value
		return row
	})
	return rows, errs
}
