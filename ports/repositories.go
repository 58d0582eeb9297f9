package ports

import (
	"context"

	"namesake/domain/core"
	"namesake/domain/features"
)

// FeatureRepository persists extracted entity feature vectors
type FeatureRepository interface {
	SaveFeatures(ctx context.Context, runID core.RunID, extracted features.ExtractedEntity) error
	LoadFeatures(ctx context.Context, runID core.RunID) ([]features.ExtractedEntity, error)
}

// PredictionRepository persists prediction results with their breakdowns
type PredictionRepository interface {
	SavePrediction(ctx context.Context, result features.PredictionResult) error
	LoadPredictions(ctx context.Context, entityName string) ([]features.PredictionResult, error)
}

// RosterReader loads entity descriptors, plus an optional parallel outcome
// column, from an external data source
type RosterReader interface {
	ReadRoster() ([]features.EntityDescriptor, []float64, error)
}
