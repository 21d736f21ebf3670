package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/UnknownOlympus/rutas/internal/config"
	"github.com/UnknownOlympus/rutas/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS public.planned_routes (
		route_id         INTEGER          NOT NULL,
		vehicle_id       TEXT             NOT NULL,
		planned_date     DATE             NOT NULL,
		stop_order       INTEGER          NOT NULL,
		collection_point TEXT             NOT NULL,
		latitude         DOUBLE PRECISION NOT NULL,
		longitude        DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (route_id, stop_order)
	);
	CREATE INDEX IF NOT EXISTS idx_planned_routes_date
		ON public.planned_routes (planned_date, route_id, stop_order);
`

// NewDatabase opens a connection pool to PostgreSQL and verifies it with a ping.
func NewDatabase(ctx context.Context, cfg config.PostgresConfig) (*pgxpool.Pool, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     cfg.Name,
		RawQuery: "sslmode=disable",
	}

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// Migrate creates the planned_routes table and its index when they do not exist yet.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply planned routes schema: %w", err)
	}

	r.log.DebugContext(ctx, "Planned routes schema is up to date.")

	return nil
}

// FetchPlannedRoutes retrieves planned route stops ordered by date, route and stop position.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - limit: The maximum number of stops to retrieve.
//
// Returns:
// - A slice of models.PlannedStop, empty (not nil) when nothing is planned.
// - An error if the query fails or if there is an issue scanning the results.
func (r *Repository) FetchPlannedRoutes(ctx context.Context, limit int) ([]models.PlannedStop, error) {
	stops := make([]models.PlannedStop, 0)
	query := `
		SELECT route_id, vehicle_id, planned_date, stop_order, collection_point, latitude, longitude
		FROM public.planned_routes
		ORDER BY planned_date ASC, route_id ASC, stop_order ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query planned routes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stop models.PlannedStop
		errScan := rows.Scan(
			&stop.RouteID,
			&stop.VehicleID,
			&stop.PlannedDate,
			&stop.StopOrder,
			&stop.CollectionPoint,
			&stop.Coordinates.Latitude,
			&stop.Coordinates.Longitude,
		)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan planned route stop: %w", errScan)
		}
		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	r.log.DebugContext(ctx, "Planned route stops fetched.", "count", len(stops), "limit", limit)

	return stops, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}
