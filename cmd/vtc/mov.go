package main

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ansel1/merry/v2"
	"github.com/kzmdstu/vtc"
	"github.com/sirupsen/logrus"
)

// Mov is the timing and format of the first video stream of a movie file.
// Timing values are missing (zero) when ffprobe did not report them.
type Mov struct {
	File        string
	Rate        vtc.Framerate
	TimecodeIn  vtc.Timecode
	TimecodeOut vtc.Timecode
	Duration    vtc.Timecode
	Resolution  string
	Codec       string
	Colorspace  string
}

// ffOutput is a mov info got by ffprobe.
type ffOutput struct {
	Streams []ffStream `json:"streams"`
	Format  ffFormat   `json:"format"`
}

// ffStream is a mov stream info got by ffprobe.
// There is video streams and audio streams, but we only need video info.
type ffStream struct {
	NbFrames   string       `json:"nb_frames"`
	RFrameRate string       `json:"r_frame_rate"`
	CodecName  string       `json:"codec_name"`
	Profile    string       `json:"profile"`
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Tags       ffStreamTags `json:"tags"`
}

type ffStreamTags struct {
	Timecode string `json:"timecode"`
}

type ffFormat struct {
	Tags ffFormatTags `json:"tags"`
}

type ffFormatTags struct {
	FoundryColorspace string `json:"uk.co.thefoundry.Colorspace"`
}

// parseMov runs ffprobe on file and parses its output.
func parseMov(ctx context.Context, log *logrus.Logger, file string) (*Mov, error) {
	c := exec.CommandContext(ctx, "ffprobe", "-v", "quiet", "-show_format", "-show_streams", "-select_streams", "v:0", "-of", "json", file)
	b, err := c.CombinedOutput()
	if err != nil {
		return nil, merry.Errorf("failed to execute ffprobe on %s: %s", file, b)
	}
	mov, err := parseMovinfo(log.WithField("file", file), b)
	if err != nil {
		return nil, merry.Prependf(err, "%s", file)
	}
	mov.File = file
	return mov, nil
}

// parseMovinfo reads ffprobe json. It only fails when the output is unusable
// as a whole; a missing or bad value is logged and left empty.
func parseMovinfo(log *logrus.Entry, info []byte) (*Mov, error) {
	ff := ffOutput{}
	if err := json.Unmarshal(info, &ff); err != nil {
		return nil, merry.Prepend(err, "failed to unmarshal")
	}
	if len(ff.Streams) > 1 {
		return nil, merry.New("too many video streams")
	}
	if len(ff.Streams) == 0 {
		return nil, merry.New("no video streams")
	}
	video := ff.Streams[0]
	mov := &Mov{}

	var err error
	mov.Rate, err = func() (vtc.Framerate, error) {
		if video.RFrameRate == "" {
			return vtc.Framerate{}, merry.New("missing r_frame_rate information")
		}
		ntsc := vtc.NotNtsc
		if strings.HasSuffix(video.RFrameRate, "/1001") {
			ntsc = vtc.NonDropFrame
			if strings.Contains(video.Tags.Timecode, ";") {
				ntsc = vtc.DropFrame
			}
		}
		return vtc.WithPlayback(vtc.Text(video.RFrameRate), ntsc)
	}()
	if err != nil {
		log.WithError(err).Warn("no framerate")
		return mov, nil
	}

	mov.Duration, err = func() (vtc.Timecode, error) {
		if video.NbFrames == "" {
			return vtc.Timecode{}, merry.New("missing nb_frames information")
		}
		frames, err := strconv.ParseInt(video.NbFrames, 10, 64)
		if err != nil {
			return vtc.Timecode{}, merry.Prependf(err, "nb_frames %q", video.NbFrames)
		}
		return vtc.WithFrames(vtc.Int(frames), mov.Rate)
	}()
	if err != nil {
		log.WithError(err).Warn("no duration")
	}

	mov.TimecodeIn, err = func() (vtc.Timecode, error) {
		if video.Tags.Timecode == "" {
			// timecode may not exists
			return vtc.Timecode{}, nil
		}
		return vtc.WithFrames(vtc.Text(video.Tags.Timecode), mov.Rate)
	}()
	if err != nil {
		log.WithError(err).Warn("bad timecode tag")
	}

	if present(mov.TimecodeIn) == nil && present(mov.Duration) == nil && mov.Duration.Frames() > 0 {
		last, _ := vtc.WithFrames(vtc.Int(mov.Duration.Frames()-1), mov.Rate)
		mov.TimecodeOut = mov.TimecodeIn.Add(last)
	}

	mov.Resolution = func() string {
		if video.Width == 0 || video.Height == 0 {
			return ""
		}
		return strconv.Itoa(video.Width) + "*" + strconv.Itoa(video.Height)
	}()
	mov.Codec = func() string {
		if video.CodecName == "" {
			return ""
		}
		codec := strings.ToUpper(video.CodecName[:1]) + strings.ToLower(video.CodecName[1:])
		if video.Profile != "" {
			codec += " " + video.Profile
		}
		return codec
	}()
	mov.Colorspace = ff.Format.Tags.FoundryColorspace
	return mov, nil
}

// row reports the movie as the range between its first and last timecode.
func (m *Mov) row(s Settings) Row {
	row := newRange(m.File, m.TimecodeIn, m.TimecodeOut, s)
	row.Rate = m.Rate
	row.Input = m.File
	row.Length = m.Duration
	row.Resolution = m.Resolution
	row.Codec = m.Codec
	row.Colorspace = m.Colorspace
	return row
}
