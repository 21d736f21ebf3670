package repository_test

import (
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/UnknownOlympus/rutas/internal/config"
	"github.com/UnknownOlympus/rutas/internal/models"
	"github.com/UnknownOlympus/rutas/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fetchPlannedRoutesQuery = `
		SELECT route_id, vehicle_id, planned_date, stop_order, collection_point, latitude, longitude
		FROM public.planned_routes
		ORDER BY planned_date ASC, route_id ASC, stop_order ASC
		LIMIT $1;
	`

var plannedRouteColumns = []string{
	"route_id", "vehicle_id", "planned_date", "stop_order", "collection_point", "latitude", "longitude",
}

func TestFetchPlannedRoutes(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	limit := 10
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("error - query planned routes", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlannedRoutesQuery)).
			WithArgs(limit).
			WillReturnError(assert.AnError)

		stops, err := repo.FetchPlannedRoutes(ctx, limit)

		require.Nil(t, stops)
		require.ErrorContains(t, err, "failed to query planned routes")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - scan planned route stop", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlannedRoutesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(plannedRouteColumns).
					AddRow("invalid_id", "truck-1", day, 1, "A", -20.1, -70.1),
			)

		stops, err := repo.FetchPlannedRoutes(ctx, limit)

		require.Nil(t, stops)
		require.ErrorContains(t, err, "failed to scan planned route stop")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error - rows error", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlannedRoutesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(plannedRouteColumns).
					AddRow(1, "truck-1", day, 1, "A", -20.1, -70.1).
					RowError(0, assert.AnError),
			)

		stops, err := repo.FetchPlannedRoutes(ctx, limit)

		require.Nil(t, stops)
		require.ErrorContains(t, err, "failed to read row")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - fetch planned routes", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlannedRoutesQuery)).
			WithArgs(limit).
			WillReturnRows(
				pgxmock.NewRows(plannedRouteColumns).
					AddRow(7, "truck-1", day, 1, "A", -20.1, -70.1).
					AddRow(7, "truck-1", day, 2, "B", -20.3, -70.3),
			)

		stops, err := repo.FetchPlannedRoutes(ctx, limit)

		require.NoError(t, err)
		require.Equal(t, []models.PlannedStop{
			{
				RouteID: 7, VehicleID: "truck-1", PlannedDate: day, StopOrder: 1, CollectionPoint: "A",
				Coordinates: models.Coordinates{Latitude: -20.1, Longitude: -70.1},
			},
			{
				RouteID: 7, VehicleID: "truck-1", PlannedDate: day, StopOrder: 2, CollectionPoint: "B",
				Coordinates: models.Coordinates{Latitude: -20.3, Longitude: -70.3},
			},
		}, stops)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - nothing planned", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectQuery(regexp.QuoteMeta(fetchPlannedRoutesQuery)).
			WithArgs(limit).
			WillReturnRows(pgxmock.NewRows(plannedRouteColumns))

		stops, err := repo.FetchPlannedRoutes(ctx, limit)

		require.NoError(t, err)
		require.NotNil(t, stops)
		assert.Empty(t, stops)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMigrate(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()
	schemaPattern := `CREATE TABLE IF NOT EXISTS public\.planned_routes`

	t.Run("error - apply schema", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(schemaPattern).WillReturnError(assert.AnError)

		err = repo.Migrate(ctx)

		require.ErrorContains(t, err, "failed to apply planned routes schema")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - apply schema", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectExec(schemaPattern).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

		err = repo.Migrate(ctx)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPing(t *testing.T) {
	t.Parallel()
	logger := slog.Default()
	ctx := t.Context()

	t.Run("error - database unreachable", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectPing().WillReturnError(assert.AnError)

		err = repo.Ping(ctx)

		require.ErrorContains(t, err, "failed to ping database")
		require.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success - database reachable", func(t *testing.T) {
		t.Parallel()
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		repo := repository.NewRepository(mock, logger)

		mock.ExpectPing()

		require.NoError(t, repo.Ping(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewDatabase(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("error - malformed port", func(t *testing.T) {
		t.Parallel()

		pool, err := repository.NewDatabase(ctx, config.PostgresConfig{
			Host: "127.0.0.1", Port: "abc", User: "rutas", Password: "rutas", Name: "rutas",
		})

		require.ErrorContains(t, err, "failed to create connection pool")
		assert.Nil(t, pool)
	})

	t.Run("error - database unreachable", func(t *testing.T) {
		t.Parallel()

		pool, err := repository.NewDatabase(ctx, config.PostgresConfig{
			Host: "127.0.0.1", Port: "1", User: "rutas", Password: "rutas", Name: "rutas",
		})

		require.ErrorContains(t, err, "failed to ping database")
		assert.Nil(t, pool)
	})
}
