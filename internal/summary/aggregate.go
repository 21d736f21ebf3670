// Package summary groups collection records by point and renders the
// plain-text report printed by the summarize command.
package summary

import (
	"github.com/UnknownOlympus/rutas/internal/dataset"
)

// GroupSummary holds the coordinates of the first record seen for a collection point.
type GroupSummary struct {
	Point     string
	Latitude  float64
	Longitude float64
}

// Aggregate returns one GroupSummary per distinct collection point, in order of first
// appearance. Later records for an already seen point never change its coordinates.
func Aggregate(ds *dataset.Dataset) []GroupSummary {
	groups := make([]GroupSummary, 0)
	seen := make(map[string]struct{})

	ds.Each(func(rec dataset.Record) {
		if _, ok := seen[rec.Point]; ok {
			return
		}
		seen[rec.Point] = struct{}{}
		groups = append(groups, GroupSummary{
			Point:     rec.Point,
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
		})
	})

	return groups
}
