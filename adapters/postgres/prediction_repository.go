package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"namesake/domain/core"
	"namesake/domain/features"
	"namesake/internal/errors"
	"namesake/ports"
)

// PredictionRepositoryImpl implements PredictionRepository for PostgreSQL
type PredictionRepositoryImpl struct {
	db *sqlx.DB
}

// NewPredictionRepository creates a new PostgreSQL prediction repository
func NewPredictionRepository(db *sqlx.DB) ports.PredictionRepository {
	return &PredictionRepositoryImpl{db: db}
}

// SavePrediction upserts a prediction result keyed by its run ID
func (r *PredictionRepositoryImpl) SavePrediction(ctx context.Context, result features.PredictionResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO predictions (
			run_id, entity_name, prediction, base_prediction,
			team_amplifier, venue_amplifier, prop_amplifier,
			overall_alignment, ensemble_boost, sport_amplifier,
			home_field_boost, visibility_modifier, crowding_penalty,
			boost_percentage, computed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (run_id) DO UPDATE SET
			prediction = EXCLUDED.prediction,
			base_prediction = EXCLUDED.base_prediction,
			overall_alignment = EXCLUDED.overall_alignment,
			boost_percentage = EXCLUDED.boost_percentage,
			computed_at = EXCLUDED.computed_at`,
		result.RunID.String(), result.EntityName, result.Prediction, result.BasePrediction,
		result.TeamAmplifier, result.VenueAmplifier, result.PropAmplifier,
		result.OverallAlignment, result.EnsembleBoost, result.SportAmplifier,
		result.HomeFieldBoost, result.VisibilityModifier, result.CrowdingPenalty,
		result.BoostPercentage, result.ComputedAt.Time())
	if err != nil {
		return errors.Wrapf(err, "failed to save prediction for %s", result.EntityName)
	}
	return nil
}

// LoadPredictions returns every saved prediction for an entity, newest first
func (r *PredictionRepositoryImpl) LoadPredictions(ctx context.Context, entityName string) ([]features.PredictionResult, error) {
	rows, err := r.db.QueryxContext(ctx, `
		SELECT run_id, entity_name, prediction, base_prediction,
			team_amplifier, venue_amplifier, prop_amplifier,
			overall_alignment, ensemble_boost, sport_amplifier,
			home_field_boost, visibility_modifier, crowding_penalty,
			boost_percentage, computed_at
		FROM predictions
		WHERE entity_name = $1
		ORDER BY computed_at DESC`, entityName)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load predictions for %s", entityName)
	}
	defer rows.Close()

	var out []features.PredictionResult
	for rows.Next() {
		var p features.PredictionResult
		var runID string
		var computedAt time.Time
		if err := rows.Scan(&runID, &p.EntityName, &p.Prediction, &p.BasePrediction,
			&p.TeamAmplifier, &p.VenueAmplifier, &p.PropAmplifier,
			&p.OverallAlignment, &p.EnsembleBoost, &p.SportAmplifier,
			&p.HomeFieldBoost, &p.VisibilityModifier, &p.CrowdingPenalty,
			&p.BoostPercentage, &computedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan prediction row")
		}
		p.RunID = core.RunID(runID)
		p.ComputedAt = core.NewTimestamp(computedAt)
		out = append(out, p)
	}
	return out, rows.Err()
}
