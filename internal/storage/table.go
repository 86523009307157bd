package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/strikeball/internal/sim"
)

// Table is the flat per-tick view of a run: one row per frame, time kept
// apart from the value columns.
type Table struct {
	Columns []string
	Times   []float64
	Rows    [][]float64
}

// TableOf flattens result frames. Entity columns follow the entity order of
// the first frame.
func TableOf(result *sim.Result) *Table {
	t := &Table{Columns: []string{"ball_x", "ball_z", "ball_vx", "ball_vz", "ball_speed"}}
	if len(result.Frames) == 0 {
		return t
	}

	names := make([]string, 0, len(result.Frames[0].Entities))
	for _, e := range result.Frames[0].Entities {
		names = append(names, e.Name)
		t.Columns = append(t.Columns, e.Name+"_x", e.Name+"_z", e.Name+"_heading", e.Name+"_moving")
	}
	t.Columns = append(t.Columns, "hits")

	for _, f := range result.Frames {
		row := []float64{
			f.Ball.Position.X(), f.Ball.Position.Z(),
			f.Ball.Velocity.X(), f.Ball.Velocity.Z(),
			f.Ball.Speed(),
		}
		for _, name := range names {
			e, _ := f.Entity(name)
			moving := 0.0
			if e.Moving {
				moving = 1
			}
			row = append(row, e.Position.X(), e.Position.Z(), e.Heading, moving)
		}
		row = append(row, float64(len(f.Hits)))

		t.Times = append(t.Times, f.Time)
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Column returns one value column by name.
func (t *Table) Column(name string) ([]float64, bool) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}

	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out, true
}

// WriteCSV writes a header row then one row per frame.
func (t *Table) WriteCSV(w io.Writer) error {
	return t.write(csv.NewWriter(w))
}

func (t *Table) write(w *csv.Writer) error {
	header := append([]string{"time"}, t.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, vals := range t.Rows {
		row := []string{strconv.FormatFloat(t.Times[i], 'f', 6, 64)}
		for _, val := range vals {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
