package summary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/UnknownOlympus/rutas/internal/dataset"
)

// PreviewSize is the maximum number of collection points listed in a report.
const PreviewSize = 20

// ErrEmptyDataset is returned when there are no collection points to compute ranges over.
var ErrEmptyDataset = errors.New("empty dataset")

// Report is the read-only summary of one dataset.
type Report struct {
	TotalRecords   int            // TotalRecords is the number of rows in the dataset.
	DistinctPoints int            // DistinctPoints is the number of distinct collection points.
	LatMin         float64        // LatMin is the smallest latitude across points.
	LatMax         float64        // LatMax is the largest latitude across points.
	LonMin         float64        // LonMin is the smallest longitude across points.
	LonMax         float64        // LonMax is the largest longitude across points.
	Preview        []GroupSummary // Preview holds the first PreviewSize points in order.
}

// NewReport computes the report for ds and its aggregated groups.
// It fails with ErrEmptyDataset when groups is empty, as the coordinate ranges are undefined.
func NewReport(ds *dataset.Dataset, groups []GroupSummary) (*Report, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: %s: no collection points to summarize", ErrEmptyDataset, ds.Source())
	}

	report := &Report{
		TotalRecords:   ds.Len(),
		DistinctPoints: len(groups),
		LatMin:         groups[0].Latitude,
		LatMax:         groups[0].Latitude,
		LonMin:         groups[0].Longitude,
		LonMax:         groups[0].Longitude,
	}
	for _, g := range groups[1:] {
		report.LatMin = min(report.LatMin, g.Latitude)
		report.LatMax = max(report.LatMax, g.Latitude)
		report.LonMin = min(report.LonMin, g.Longitude)
		report.LonMax = max(report.LonMax, g.Longitude)
	}

	preview := groups[:min(PreviewSize, len(groups))]
	report.Preview = append([]GroupSummary(nil), preview...)

	return report, nil
}

// Summarize loads the dataset at path, aggregates it and builds its report.
func Summarize(path string) (*Report, error) {
	ds, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}

	return NewReport(ds, Aggregate(ds))
}

// WriteTo renders the report in its fixed text layout.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Total de registros: %d\n", r.TotalRecords)
	fmt.Fprintf(&buf, "Puntos de recolección únicos: %d\n", r.DistinctPoints)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Rango de latitud: %.6f a %.6f\n", r.LatMin, r.LatMax)
	fmt.Fprintf(&buf, "Rango de longitud: %.6f a %.6f\n", r.LonMin, r.LonMax)
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "Primeros %d puntos de recolección:\n", len(r.Preview))

	table := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	for _, g := range r.Preview {
		fmt.Fprintf(table, "%s\t%.6f\t%.6f\n", g.Point, g.Latitude, g.Longitude)
	}
	if err := table.Flush(); err != nil {
		return 0, fmt.Errorf("failed to render preview table: %w", err)
	}

	return buf.WriteTo(w)
}

// String returns the rendered report.
func (r *Report) String() string {
	var buf bytes.Buffer
	_, _ = r.WriteTo(&buf)

	return buf.String()
}
