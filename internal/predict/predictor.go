package predict

import (
	"math"

	"namesake/domain/core"
	"namesake/domain/features"
	"namesake/internal/ensemble"
	"namesake/internal/extract"
)

// Amplifier caps per label kind. Hard limits: no input magnitude may push an
// amplifier past its cap.
const (
	teamAmplifierCap  = 1.5
	venueAmplifierCap = 1.2
	propAmplifierCap  = 1.3
)

// Amplifier scale divisors (the K in amplifier = 1 + metric/K)
const (
	teamAmplifierScale  = 200.0
	venueAmplifierScale = 400.0
	propAmplifierScale  = 300.0
)

// Ensemble boost tiers keyed on overall alignment
const (
	strongAlignmentThreshold   = 80.0
	moderateAlignmentThreshold = 70.0
	strongAlignmentBoost       = 0.15
	moderateAlignmentBoost     = 0.08
)

// homeFieldBoost is the additive bump applied only when the game is at home
// and a team label is present
const homeFieldBoost = 2.5

// lowVisibilityModifier dampens predictions for low-reach, non-featured games
const lowVisibilityModifier = 0.7

// sportHarshnessTable maps a sport to its baseline harshness affinity.
// Sports missing from the table read as the neutral 60.
var sportHarshnessTable = map[string]float64{
	"football":   85,
	"hockey":     80,
	"mma":        90,
	"boxing":     85,
	"basketball": 65,
	"baseball":   55,
	"soccer":     60,
	"tennis":     50,
	"golf":       40,
}

// EnhancedNominativePredictor composes the entity extractor, label extractor,
// and ensemble generator into a single scalar prediction with capped
// amplifiers. The combination order is fixed; later steps multiply or add
// onto earlier results.
type EnhancedNominativePredictor struct {
	entities  *extract.ComprehensiveFeatureExtractor
	labels    *extract.LabelNominativeExtractor
	ensembles *ensemble.NominativeEnsembleGenerator
}

// NewEnhancedNominativePredictor creates a predictor with default components
func NewEnhancedNominativePredictor() *EnhancedNominativePredictor {
	return &EnhancedNominativePredictor{
		entities:  extract.NewComprehensiveFeatureExtractor(),
		labels:    extract.NewLabelNominativeExtractor(),
		ensembles: ensemble.NewNominativeEnsembleGenerator(),
	}
}

// Predict produces the final prediction for entity in the given context.
// Missing labels and context fields degrade to neutral values (amplifier 1.0,
// boost 0, alignment 50); the result is always a finite scalar.
func (p *EnhancedNominativePredictor) Predict(
	entity features.EntityDescriptor,
	ctx features.GameContext,
	market *features.MarketData,
	opponent *features.EntityDescriptor,
) features.PredictionResult {
	entityFV := p.entities.ExtractAllFeatures(entity, opponent, ctx, market, nil)

	// Step 2: base prediction from the entity vector alone
	base := 50.0
	base += (entityFV.Get("harshness", 50) - 50) * 0.15
	base += (entityFV.Get("memorability", 50) - 50) * 0.10
	base += (entityFV.Get("position_formula_match", 50) - 50) * 0.12
	if ctx.IsPlayoff {
		base *= 1.15
	}
	if ctx.IsPrimetime {
		base *= 1.10
	}
	base += entityFV.Get("harshness_differential", 0) * 0.08

	result := features.PredictionResult{
		RunID:              core.RunID(core.NewID()),
		EntityName:         entity.Name,
		BasePrediction:     base,
		TeamAmplifier:      1.0,
		VenueAmplifier:     1.0,
		PropAmplifier:      1.0,
		SportAmplifier:     1.0,
		VisibilityModifier: 1.0,
		ComputedAt:         core.Now(),
	}

	// Step 3: per-label ensembles and capped amplifiers
	alignments := []float64{50, 50, 50}
	ensembleCount := 0

	if ctx.TeamName != "" {
		labelFV := p.labels.ExtractLabelFeatures(ctx.TeamName, features.LabelTeam, ctx)
		ev := p.ensembles.GenerateEnsembleFeatures(entityFV, labelFV, features.InteractionTeam)
		ensembleCount += len(ev)
		alignments[0] = ev.Get("overall_alignment", 50)
		result.TeamAmplifier = cappedAmplifier(ev.Get("team_identity_fusion", 0), teamAmplifierScale, teamAmplifierCap)
	}
	if ctx.VenueName != "" {
		labelFV := p.labels.ExtractLabelFeatures(ctx.VenueName, features.LabelVenue, ctx)
		ev := p.ensembles.GenerateEnsembleFeatures(entityFV, labelFV, features.InteractionVenue)
		ensembleCount += len(ev)
		alignments[1] = ev.Get("overall_alignment", 50)
		result.VenueAmplifier = cappedAmplifier(ev.Get("venue_resonance", 0), venueAmplifierScale, venueAmplifierCap)
	}
	if ctx.PropType != "" {
		labelFV := p.labels.ExtractLabelFeatures(ctx.PropType, features.LabelProp, ctx)
		ev := p.ensembles.GenerateEnsembleFeatures(entityFV, labelFV, features.InteractionProp)
		ensembleCount += len(ev)
		alignments[2] = ev.Get("overall_alignment", 50)
		result.PropAmplifier = cappedAmplifier(ev.Get("prop_affinity", 0), propAmplifierScale, propAmplifierCap)
	}

	// Step 4: overall alignment and the tiered ensemble boost
	result.OverallAlignment = (alignments[0] + alignments[1] + alignments[2]) / 3
	switch {
	case result.OverallAlignment >= strongAlignmentThreshold:
		result.EnsembleBoost = strongAlignmentBoost
	case result.OverallAlignment >= moderateAlignmentThreshold:
		result.EnsembleBoost = moderateAlignmentBoost
	}

	// Step 5: contextual modifiers
	sportScore := 60.0
	if s, ok := sportHarshnessTable[ctx.Sport]; ok {
		sportScore = s
	}
	result.SportAmplifier = 1 + (sportScore-60)/200

	if ctx.IsHomeGame && ctx.TeamName != "" {
		result.HomeFieldBoost = homeFieldBoost
	}
	if lowVisibility(ctx) {
		result.VisibilityModifier = lowVisibilityModifier
	}
	result.CrowdingPenalty = math.Min(0.15, ctx.AdCount*0.05)

	// Step 6: combine in fixed order
	prediction := base
	prediction *= result.TeamAmplifier
	prediction *= result.VenueAmplifier
	prediction *= result.PropAmplifier
	prediction *= 1 + result.EnsembleBoost
	prediction *= result.SportAmplifier
	prediction += result.HomeFieldBoost
	prediction *= result.VisibilityModifier
	prediction *= 1 - result.CrowdingPenalty

	result.Prediction = prediction
	if base != 0 {
		result.BoostPercentage = (prediction/base - 1) * 100
	}
	result.EntityFeatureCount = len(entityFV)
	result.EnsembleFeatureCount = ensembleCount

	return result
}

// cappedAmplifier converts a [0,100] ensemble metric to a multiplicative
// amplifier, hard-capped regardless of input magnitude
func cappedAmplifier(metric, scale, limit float64) float64 {
	return math.Min(1+metric/scale, limit)
}

// lowVisibility is true only when a reach figure was supplied and reads low
// while the game has no featured slot. A zero-valued context stays neutral.
func lowVisibility(ctx features.GameContext) bool {
	if ctx.IsPrimetime || ctx.IsNationalBroadcast {
		return false
	}
	return ctx.BroadcastReach > 0 && ctx.BroadcastReach < 40
}
