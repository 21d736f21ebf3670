package models

import "time"

// PlannedStop is one collection point visit within a planned route.
type PlannedStop struct {
	RouteID         int         `json:"route_id"`         // RouteID identifies the planned route.
	VehicleID       string      `json:"vehicle_id"`       // VehicleID is the truck assigned to the route.
	PlannedDate     time.Time   `json:"planned_date"`     // PlannedDate is the day the route runs.
	StopOrder       int         `json:"stop_order"`       // StopOrder is the 1-based position within the route.
	CollectionPoint string      `json:"collection_point"` // CollectionPoint is the punto_recoleccion identifier.
	Coordinates     Coordinates `json:"coordinates"`      // Coordinates of the collection point.
}
