package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"namesake/internal/errors"
)

// Connect opens and pings a PostgreSQL connection
func Connect(ctx context.Context, url string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	return db, nil
}

// Migrate creates the persistence tables if they do not exist
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entity_features (
			run_id      TEXT NOT NULL,
			entity_name TEXT NOT NULL,
			entity      JSONB NOT NULL,
			features    JSONB NOT NULL,
			computed_at TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (run_id, entity_name)
		)`,
		`CREATE TABLE IF NOT EXISTS predictions (
			run_id              TEXT PRIMARY KEY,
			entity_name         TEXT NOT NULL,
			prediction          DOUBLE PRECISION NOT NULL,
			base_prediction     DOUBLE PRECISION NOT NULL,
			team_amplifier      DOUBLE PRECISION NOT NULL,
			venue_amplifier     DOUBLE PRECISION NOT NULL,
			prop_amplifier      DOUBLE PRECISION NOT NULL,
			overall_alignment   DOUBLE PRECISION NOT NULL,
			ensemble_boost      DOUBLE PRECISION NOT NULL,
			sport_amplifier     DOUBLE PRECISION NOT NULL,
			home_field_boost    DOUBLE PRECISION NOT NULL,
			visibility_modifier DOUBLE PRECISION NOT NULL,
			crowding_penalty    DOUBLE PRECISION NOT NULL,
			boost_percentage    DOUBLE PRECISION NOT NULL,
			computed_at         TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_entity ON predictions (entity_name, computed_at DESC)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "migration failed")
		}
	}
	return nil
}
