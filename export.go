package orrery

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"
)

// ExportTrack writes a CSV position track for the given elements, one row
// per step from start to end inclusive. Columns are the body name, the date
// and the scene-convention position and radius in astronomical units. Meant
// for offline plotting and validation against published ephemerides.
func ExportTrack(w io.Writer, name string, el Elements, start, end time.Time, step time.Duration) error {
	if step <= 0 {
		return errors.New("export: step must be positive")
	}
	if end.Before(start) {
		return errors.New("export: end date before start date")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"body", "date", "x", "y", "z", "r"}); err != nil {
		return err
	}
	fl := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	for dt := start; !dt.After(end); dt = dt.Add(step) {
		pos, _, err := PropagateElliptical(el, dt, true)
		if err != nil {
			return err
		}
		record := []string{name, dt.UTC().Format(time.RFC3339), fl(pos[0]), fl(pos[1]), fl(pos[2]), fl(norm(pos))}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
