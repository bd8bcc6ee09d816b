package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"text/template"

	"github.com/ansel1/merry/v2"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

type Table struct {
	sync.Mutex
	Cells [][]string
}

func NewTable(i, j int) *Table {
	cells := make([][]string, i)
	for i := range cells {
		cells[i] = make([]string, j)
	}
	return &Table{Cells: cells}
}

// render executes every field template against every row. The first line
// of the table holds the field names. A failing cell is left empty, or
// holds the error when verbose is set.
func render(ctx context.Context, log *logrus.Logger, rows []Row, fields []Field, verbose bool) (*Table, error) {
	tmpls, err := compileFields(fields)
	if err != nil {
		return nil, err
	}
	table := NewTable(len(rows)+1, len(fields)) // +1 for label
	for j, field := range fields {
		table.Cells[0][j] = field.Name
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU() * 2)
	for i := range rows {
		for j := range fields {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				val := execute(log, tmpls[j], rows[i], verbose)
				table.Lock()
				table.Cells[i+1][j] = val
				table.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return table, nil
}

func execute(log *logrus.Logger, tmpl *template.Template, row Row, verbose bool) string {
	out := strings.Builder{}
	if err := tmpl.Execute(&out, row); err != nil {
		log.WithFields(logrus.Fields{
			"row":   row.Name,
			"field": tmpl.Name(),
		}).Debugf("failed to execute: %v", err)
		if verbose {
			return err.Error()
		}
		return ""
	}
	return strings.TrimSpace(out.String())
}

// print writes the table to w, one line per row.
func (t *Table) print(w io.Writer, sep string) error {
	for _, row := range t.Cells {
		if _, err := fmt.Fprintln(w, strings.Join(row, sep)); err != nil {
			return merry.Wrap(err)
		}
	}
	return nil
}

// save writes the table to the first sheet of a new excel file at path.
// An existing file is overwritten.
func (t *Table) save(path string) error {
	f := excelize.NewFile()
	for i, row := range t.Cells {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return merry.Wrap(err)
			}
			if err := f.SetCellValue("Sheet1", cell, val); err != nil {
				return merry.Wrap(err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return merry.Prependf(err, "could not write %s", path)
	}
	return nil
}
