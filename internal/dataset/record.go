package dataset

import (
	"maps"
	"slices"
)

// Column names every waste-collection dataset must provide.
const (
	ColumnPoint     = "punto_recoleccion"
	ColumnLatitude  = "latitud_punto_recoleccion"
	ColumnLongitude = "longitud_punto_recoleccion"
)

// RequiredColumns lists the columns the loader interprets, in the order they are checked.
var RequiredColumns = []string{ColumnPoint, ColumnLatitude, ColumnLongitude}

// Record is one row of a collection dataset.
// Columns other than the required ones are kept verbatim in Extra.
type Record struct {
	Point     string            // Point is the collection point identifier.
	Latitude  float64           // Latitude of the collection point.
	Longitude float64           // Longitude of the collection point.
	Extra     map[string]string // Extra holds every non-required column by header name.
}

// Dataset is an ordered, read-only sequence of records loaded from one source.
type Dataset struct {
	source  string
	header  []string
	records []Record
}

// Source returns the path or name the dataset was read from.
func (d *Dataset) Source() string {
	return d.source
}

// Header returns a copy of the header row.
func (d *Dataset) Header() []string {
	return slices.Clone(d.header)
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the records in file order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	for i, rec := range d.records {
		rec.Extra = maps.Clone(rec.Extra)
		out[i] = rec
	}

	return out
}

// Each calls fn for every record in file order without copying the dataset.
// fn must not modify the record's Extra map.
func (d *Dataset) Each(fn func(Record)) {
	for _, rec := range d.records {
		fn(rec)
	}
}
