package predict

import (
	"math"
	"testing"

	"namesake/domain/features"
)

func TestPredictNeutralWithoutLabels(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Nick Chubb", Position: "RB"}
	result := p.Predict(entity, features.GameContext{}, nil, nil)

	if result.TeamAmplifier != 1.0 {
		t.Errorf("Expected team amplifier 1.0 without a team label, got %f", result.TeamAmplifier)
	}
	if result.VenueAmplifier != 1.0 || result.PropAmplifier != 1.0 {
		t.Errorf("Expected neutral venue/prop amplifiers, got %f / %f",
			result.VenueAmplifier, result.PropAmplifier)
	}
	if result.HomeFieldBoost != 0 {
		t.Errorf("Expected no home field boost away from home, got %f", result.HomeFieldBoost)
	}
	if result.VisibilityModifier != 1.0 {
		t.Errorf("A zero-valued context must stay neutral, got visibility %f", result.VisibilityModifier)
	}
	if result.EnsembleFeatureCount != 0 {
		t.Errorf("Expected no ensemble features without labels, got %d", result.EnsembleFeatureCount)
	}
	if math.IsNaN(result.Prediction) || math.IsInf(result.Prediction, 0) {
		t.Errorf("Prediction must be finite, got %f", result.Prediction)
	}
}

func TestPredictAmplifierCaps(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{
		Name:       "Zack Katz",
		Linguistic: features.LinguisticFeatures{Harshness: 100, Memorability: 100, Uniqueness: 100},
	}
	ctx := features.GameContext{
		Sport:     "football",
		TeamName:  "Kansas City Chiefs",
		VenueName: "Arrowhead Stadium",
		PropType:  "Anytime Touchdown",
	}

	result := p.Predict(entity, ctx, nil, nil)

	if result.TeamAmplifier > teamAmplifierCap {
		t.Errorf("Team amplifier %f exceeds cap %f", result.TeamAmplifier, teamAmplifierCap)
	}
	if result.VenueAmplifier > venueAmplifierCap {
		t.Errorf("Venue amplifier %f exceeds cap %f", result.VenueAmplifier, venueAmplifierCap)
	}
	if result.PropAmplifier > propAmplifierCap {
		t.Errorf("Prop amplifier %f exceeds cap %f", result.PropAmplifier, propAmplifierCap)
	}
	if result.TeamAmplifier < 1.0 || result.VenueAmplifier < 1.0 || result.PropAmplifier < 1.0 {
		t.Error("Amplifiers are multiplicative boosts and must never drop below 1.0")
	}
}

func TestPredictHomeFieldRequiresTeam(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Derrick Henry"}

	// Home without a team label gets no boost
	result := p.Predict(entity, features.GameContext{IsHomeGame: true}, nil, nil)
	if result.HomeFieldBoost != 0 {
		t.Errorf("Expected no home boost without a team, got %f", result.HomeFieldBoost)
	}

	result = p.Predict(entity, features.GameContext{IsHomeGame: true, TeamName: "Titans"}, nil, nil)
	if result.HomeFieldBoost != homeFieldBoost {
		t.Errorf("Expected home boost %f, got %f", homeFieldBoost, result.HomeFieldBoost)
	}
}

func TestPredictVisibilityModifier(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Gus"}

	// Explicit low reach with no featured slot dampens the prediction
	result := p.Predict(entity, features.GameContext{BroadcastReach: 20}, nil, nil)
	if result.VisibilityModifier != lowVisibilityModifier {
		t.Errorf("Expected low visibility modifier %f, got %f", lowVisibilityModifier, result.VisibilityModifier)
	}

	// Primetime overrides low reach
	result = p.Predict(entity, features.GameContext{BroadcastReach: 20, IsPrimetime: true}, nil, nil)
	if result.VisibilityModifier != 1.0 {
		t.Errorf("Primetime must stay neutral, got %f", result.VisibilityModifier)
	}

	// Unspecified reach stays neutral
	result = p.Predict(entity, features.GameContext{}, nil, nil)
	if result.VisibilityModifier != 1.0 {
		t.Errorf("Zero reach must stay neutral, got %f", result.VisibilityModifier)
	}
}

func TestPredictSportAmplifier(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Rex"}

	mma := p.Predict(entity, features.GameContext{Sport: "mma"}, nil, nil)
	golf := p.Predict(entity, features.GameContext{Sport: "golf"}, nil, nil)
	unknown := p.Predict(entity, features.GameContext{Sport: "curling"}, nil, nil)

	if mma.SportAmplifier <= golf.SportAmplifier {
		t.Errorf("Expected mma amplifier (%f) above golf (%f)", mma.SportAmplifier, golf.SportAmplifier)
	}
	if unknown.SportAmplifier != 1.0 {
		t.Errorf("Unknown sport must sit at the neutral 60 baseline, got %f", unknown.SportAmplifier)
	}
}

func TestPredictCrowdingPenaltyCapped(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Rex"}

	result := p.Predict(entity, features.GameContext{AdCount: 50}, nil, nil)
	if result.CrowdingPenalty != 0.15 {
		t.Errorf("Expected crowding penalty capped at 0.15, got %f", result.CrowdingPenalty)
	}
}

func TestPredictContextBoosts(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{
		Name:       "Derrick Henry",
		Linguistic: features.LinguisticFeatures{Harshness: 80, Memorability: 70},
	}

	base := p.Predict(entity, features.GameContext{}, nil, nil)
	playoff := p.Predict(entity, features.GameContext{IsPlayoff: true}, nil, nil)

	if playoff.BasePrediction <= base.BasePrediction {
		t.Errorf("Playoff context must raise the base prediction: %f vs %f",
			playoff.BasePrediction, base.BasePrediction)
	}
}

func TestPredictDeterministic(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Nick Chubb", Position: "RB"}
	ctx := features.GameContext{Sport: "football", TeamName: "Browns", IsHomeGame: true}

	first := p.Predict(entity, ctx, nil, nil)
	second := p.Predict(entity, ctx, nil, nil)

	if first.Prediction != second.Prediction || first.OverallAlignment != second.OverallAlignment {
		t.Error("Expected identical predictions for identical inputs")
	}
}

func TestPredictBoostPercentageConsistency(t *testing.T) {
	p := NewEnhancedNominativePredictor()
	entity := features.EntityDescriptor{Name: "Nick Chubb", Position: "RB"}
	ctx := features.GameContext{Sport: "football", TeamName: "Browns", VenueName: "Dawg Pound"}

	result := p.Predict(entity, ctx, nil, nil)
	expected := (result.Prediction/result.BasePrediction - 1) * 100
	if math.Abs(result.BoostPercentage-expected) > 1e-9 {
		t.Errorf("Boost percentage %f inconsistent with prediction ratio %f", result.BoostPercentage, expected)
	}
}
