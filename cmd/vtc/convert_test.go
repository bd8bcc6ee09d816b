package main

import (
	"os"
	"strings"
	"testing"

	"github.com/kzmdstu/vtc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInputs(t *testing.T) {
	f, err := os.Open("testdata/inputs.csv")
	require.NoError(t, err)
	defer f.Close()

	inputs, err := readInputs(f)
	require.NoError(t, err)
	require.Len(t, inputs, 5)
	assert.Equal(t, &Input{Value: "3600", Kind: "seconds", Rate: "24000/1001", Ntsc: "ndf"}, inputs[1])
	assert.Equal(t, &Input{Value: "5400+00"}, inputs[3])
}

func TestConvertRows(t *testing.T) {
	f, err := os.Open("testdata/inputs.csv")
	require.NoError(t, err)
	defer f.Close()
	inputs, err := readInputs(f)
	require.NoError(t, err)

	rows, errs := convertRows(inputs, testSettings())
	require.Len(t, rows, 5)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], vtc.ErrDropFrameValue)

	cases := []struct {
		timecode string
		frames   int64
		rate     vtc.Framerate
	}{
		{"01:00:00:00", 86400, vtc.Rate24},
		{"00:59:56:10", 86314, vtc.Rate23_98},
		{"01:00:00:00", 86400, vtc.Rate24},
		{"01:00:00:00", 86400, vtc.Rate24},
	}
	for i, c := range cases {
		assert.Equal(t, c.timecode, rows[i].In.Timecode(), inputs[i].Value)
		assert.Equal(t, c.frames, rows[i].In.Frames(), inputs[i].Value)
		assert.Equal(t, c.rate, rows[i].Rate, inputs[i].Value)
		assert.Equal(t, int64(1), rows[i].Length.Frames(), inputs[i].Value)
	}
	assert.Error(t, present(rows[4].In))
	assert.Equal(t, "00:01:00:00", rows[4].Input)
}

func TestArgInputs(t *testing.T) {
	inputs := argInputs([]string{"1", "2"}, "ticks")
	assert.Equal(t, []*Input{{Value: "1", Kind: "ticks"}, {Value: "2", Kind: "ticks"}}, inputs)
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]InputKind{
		"":        KindFrames,
		"frames":  KindFrames,
		"seconds": KindSeconds,
		"ticks":   KindTicks,
	} {
		got, err := parseKind(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseKind("feet")
	assert.ErrorContains(t, err, "unknown input kind")
}

func TestReadInputsBadCSV(t *testing.T) {
	_, err := readInputs(strings.NewReader("value,kind\n\"unterminated,frames\n"))
	assert.Error(t, err)
}
