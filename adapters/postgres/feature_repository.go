package postgres

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"namesake/domain/core"
	"namesake/domain/features"
	"namesake/internal/errors"
	"namesake/ports"
)

// FeatureRepositoryImpl implements FeatureRepository for PostgreSQL
type FeatureRepositoryImpl struct {
	db *sqlx.DB
}

// NewFeatureRepository creates a new PostgreSQL feature repository
func NewFeatureRepository(db *sqlx.DB) ports.FeatureRepository {
	return &FeatureRepositoryImpl{db: db}
}

// SaveFeatures upserts one entity's feature vector for a run. Vectors are
// stored as JSONB keyed by (run_id, entity_name).
func (r *FeatureRepositoryImpl) SaveFeatures(ctx context.Context, runID core.RunID, extracted features.ExtractedEntity) error {
	featuresJSON, err := json.Marshal(extracted.Features)
	if err != nil {
		return errors.Wrap(err, "failed to marshal feature vector")
	}
	entityJSON, err := json.Marshal(extracted.Entity)
	if err != nil {
		return errors.Wrap(err, "failed to marshal entity descriptor")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO entity_features (run_id, entity_name, entity, features, computed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id, entity_name) DO UPDATE SET
			entity = EXCLUDED.entity,
			features = EXCLUDED.features,
			computed_at = EXCLUDED.computed_at`,
		runID.String(), extracted.Entity.Name, entityJSON, featuresJSON, extracted.ComputedAt.Time())
	if err != nil {
		return errors.Wrapf(err, "failed to save features for %s", extracted.Entity.Name)
	}
	return nil
}

// LoadFeatures returns every entity feature vector saved for a run
func (r *FeatureRepositoryImpl) LoadFeatures(ctx context.Context, runID core.RunID) ([]features.ExtractedEntity, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT entity, features, computed_at
		FROM entity_features
		WHERE run_id = $1
		ORDER BY entity_name`, runID.String())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load features for run %s", runID)
	}
	defer rows.Close()

	var out []features.ExtractedEntity
	for rows.Next() {
		var entityJSON, featuresJSON []byte
		var extracted features.ExtractedEntity
		var computedAt time.Time
		if err := rows.Scan(&entityJSON, &featuresJSON, &computedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan feature row")
		}
		if err := json.Unmarshal(entityJSON, &extracted.Entity); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal entity descriptor")
		}
		if err := json.Unmarshal(featuresJSON, &extracted.Features); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal feature vector")
		}
		extracted.ComputedAt = core.NewTimestamp(computedAt)
		out = append(out, extracted)
	}
	return out, rows.Err()
}
