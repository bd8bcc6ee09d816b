package main

import (
	"os"
	"testing"

	"github.com/kzmdstu/vtc"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMovinfo(t *testing.T) {
	cases := []struct {
		file       string
		rate       vtc.Framerate
		in         string
		out        string
		duration   int64
		resolution string
		codec      string
		colorspace string
	}{
		{
			file:       "testdata/ffprobe_prores.json",
			rate:       vtc.Rate23_98,
			in:         "00:00:00:00",
			out:        "00:00:00:21",
			duration:   22,
			resolution: "1920*1080",
			codec:      "Prores HQ",
		},
		{
			file:       "testdata/ffprobe_df.json",
			rate:       vtc.Rate29_97DF,
			in:         "00:59:59;28",
			out:        "01:00:00;01",
			duration:   4,
			resolution: "1920*1080",
			codec:      "Dnxhd DNXHD",
			colorspace: "rec709",
		},
		{
			file:       "testdata/ffprobe_notc.json",
			rate:       vtc.MustPlayback(vtc.Int(25), vtc.NotNtsc),
			duration:   50,
			resolution: "1280*720",
			codec:      "H264 High",
		},
	}
	log := logrus.NewEntry(quietLogger())
	for _, c := range cases {
		t.Run(c.file, func(t *testing.T) {
			b, err := os.ReadFile(c.file)
			require.NoError(t, err)
			mov, err := parseMovinfo(log, b)
			require.NoError(t, err)

			assert.Equal(t, c.rate, mov.Rate)
			if c.in == "" {
				assert.Error(t, present(mov.TimecodeIn))
				assert.Error(t, present(mov.TimecodeOut))
			} else {
				assert.Equal(t, c.in, mov.TimecodeIn.Timecode())
				assert.Equal(t, c.out, mov.TimecodeOut.Timecode())
			}
			assert.Equal(t, c.duration, mov.Duration.Frames())
			assert.Equal(t, c.resolution, mov.Resolution)
			assert.Equal(t, c.codec, mov.Codec)
			assert.Equal(t, c.colorspace, mov.Colorspace)
		})
	}
}

func TestParseMovinfoErrors(t *testing.T) {
	log := logrus.NewEntry(quietLogger())

	b, err := os.ReadFile("testdata/ffprobe_two.json")
	require.NoError(t, err)
	_, err = parseMovinfo(log, b)
	assert.ErrorContains(t, err, "too many video streams")

	_, err = parseMovinfo(log, []byte(`{"streams": []}`))
	assert.ErrorContains(t, err, "no video streams")

	_, err = parseMovinfo(log, []byte(`{`))
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestParseMovinfoBadRate(t *testing.T) {
	mov, err := parseMovinfo(logrus.NewEntry(quietLogger()), []byte(`{"streams": [{"r_frame_rate": "0/0", "nb_frames": "10"}]}`))
	require.NoError(t, err)
	assert.Equal(t, vtc.Framerate{}, mov.Rate)
	assert.Error(t, present(mov.Duration))
}

func TestMovRow(t *testing.T) {
	b, err := os.ReadFile("testdata/ffprobe_notc.json")
	require.NoError(t, err)
	mov, err := parseMovinfo(logrus.NewEntry(quietLogger()), b)
	require.NoError(t, err)
	mov.File = "notc.mp4"

	row := mov.row(testSettings())
	assert.Equal(t, "notc.mp4", row.Name)
	assert.Equal(t, mov.Rate, row.Rate)
	assert.Equal(t, int64(50), row.Length.Frames())
	assert.Equal(t, "H264 High", row.Codec)
}
