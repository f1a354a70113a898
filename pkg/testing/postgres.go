package testing

import (
	"context"
	"testing"
	"time"

	"github.com/JustRob12/HomeWorkoutGenerator/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// GetMigratedDBPool connects to the postgres used by integration tests (POSTGRES_HOST,
// POSTGRES_PORT, POSTGRES_DB env vars), applies the schema migrations and truncates all tables.
// The pool is closed on test cleanup.
func GetMigratedDBPool(t *testing.T) (context.Context, *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	params := db.NewDBPoolParams{
		DBHost: envOr("POSTGRES_HOST", "localhost"),
		DBPort: envOr("POSTGRES_PORT", "5432"),
		DBName: envOr("POSTGRES_DB", "home_workout_test"),
	}
	t.Logf("using postgres: [%s:%s/%s]", params.DBHost, params.DBPort, params.DBName)

	require.NoError(t, db.RunMigrations(params.ConnString()))

	dbPool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	_, err = dbPool.Exec(ctx, `TRUNCATE TABLE workout, users RESTART IDENTITY;`)
	require.NoError(t, err)

	return ctx, dbPool
}
