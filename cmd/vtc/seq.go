package main

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ansel1/merry/v2"
	"github.com/kzmdstu/vtc"
	"github.com/samber/lo"
)

// Sequence is a run of numbered image files sharing a name. Name holds one
// '#' per digit of the frame number.
type Sequence struct {
	Name  string
	Start string
	End   string
	Count int
}

func (s *Sequence) FirstFile() string {
	return s.file(s.Start)
}

func (s *Sequence) LastFile() string {
	return s.file(s.End)
}

func (s *Sequence) file(frame string) string {
	i := strings.Index(s.Name, "#")
	if i < 0 {
		return s.Name
	}
	return s.Name[:i] + frame + strings.TrimLeft(s.Name[i:], "#")
}

var ReSplitSeqName = regexp.MustCompile(`(.*\D)?(\d+)(.*?)$`)

// findSequences walks root for files with one of the extensions and groups
// them into sequences. Files of a sequence are adjacent in walk order.
func findSequences(root string, exts []string) ([]*Sequence, error) {
	seqs := make([]*Sequence, 0)
	err := filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return merry.Prependf(err, "%s", path)
		}
		if fi.IsDir() {
			return nil
		}
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		if ext == "" || !lo.Contains(exts, ext) {
			return nil
		}
		path = filepath.Clean(path)
		dir := filepath.Dir(path)
		m := ReSplitSeqName.FindStringSubmatch(filepath.Base(path))
		if m == nil {
			return nil
		}
		pre, frame, post := m[1], m[2], m[3]
		f, err := strconv.Atoi(frame)
		if err != nil {
			return merry.Prependf(err, "frame number of %s", path)
		}
		name := filepath.Join(dir, pre+strings.Repeat("#", len(frame))+post)
		if len(seqs) == 0 || seqs[len(seqs)-1].Name != name {
			seqs = append(seqs, &Sequence{Name: name, Start: frame, End: frame, Count: 1})
			return nil
		}
		s := seqs[len(seqs)-1]
		s.Count++
		start, _ := strconv.Atoi(s.Start)
		end, _ := strconv.Atoi(s.End)
		if f < start {
			s.Start = frame
		} else if f > end {
			s.End = frame
		}
		return nil
	})
	if err != nil {
		return nil, merry.Prepend(err, "walk failed")
	}
	return seqs, nil
}

// seqRows turns sequences into rows whose In and Out are the first and last
// frame numbers counted at the configured rate.
func seqRows(seqs []*Sequence, s Settings) ([]Row, error) {
	rows := make([]Row, 0, len(seqs))
	for _, seq := range seqs {
		in, err := vtc.WithFrames(vtc.Text(seq.Start), s.Rate)
		if err != nil {
			return nil, merry.Prependf(err, "%s", seq.FirstFile())
		}
		out, err := vtc.WithFrames(vtc.Text(seq.End), s.Rate)
		if err != nil {
			return nil, merry.Prependf(err, "%s", seq.LastFile())
		}
		row := newRange(seq.Name, in, out, s)
		row.Input = seq.FirstFile()
		row.Files = seq.Count
		rows = append(rows, row)
	}
	return rows, nil
}
