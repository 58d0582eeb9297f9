package ensemble

import (
	"math"
	"testing"

	"namesake/domain/features"
)

func TestEnsembleEmptyInputsNeutral(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	ev := g.GenerateEnsembleFeatures(features.FeatureVector{}, features.FeatureVector{}, features.InteractionGeneral)

	// Identical defaults on both sides mean perfect alignment everywhere
	if ev["harshness_alignment"] != 100 {
		t.Errorf("Expected harshness alignment 100 for empty inputs, got %f", ev["harshness_alignment"])
	}
	if ev["overall_alignment"] != 100 {
		t.Errorf("Expected overall alignment 100 for empty inputs, got %f", ev["overall_alignment"])
	}
	if ev["harshness_contrast"] != 0 || ev["style_clash"] != 0 {
		t.Errorf("Expected zero contrast for empty inputs, got contrast=%f clash=%f",
			ev["harshness_contrast"], ev["style_clash"])
	}
	if ev["dominance_score"] != 0 {
		t.Errorf("Expected zero dominance for empty inputs, got %f", ev["dominance_score"])
	}
	if ev["general_compatibility"] != 100 {
		t.Errorf("Expected general compatibility to mirror alignment, got %f", ev["general_compatibility"])
	}

	for k, v := range ev {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("Non-finite ensemble value for %s: %f", k, v)
		}
	}
}

func TestEnsembleAlignmentAndContrast(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	entity := features.FeatureVector{"harshness": 90, "memorability": 80}
	label := features.FeatureVector{"harshness": 50, "memorability": 50}

	ev := g.GenerateEnsembleFeatures(entity, label, features.InteractionGeneral)

	if ev["harshness_alignment"] != 60 {
		t.Errorf("Expected harshness alignment 60, got %f", ev["harshness_alignment"])
	}
	if ev["harshness_contrast"] != 40 {
		t.Errorf("Expected harshness contrast 40, got %f", ev["harshness_contrast"])
	}
	if ev["harshness_extreme_contrast"] != 1 {
		t.Error("Expected extreme harshness contrast flag at gap 40")
	}
	if ev["memorability_extreme_contrast"] != 1 {
		t.Error("Expected extreme memorability contrast flag at gap 30")
	}
	if ev["style_clash"] != 1 {
		t.Error("Expected style clash when both gaps are extreme")
	}
}

func TestEnsembleDominanceFlags(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	entity := features.FeatureVector{"harshness": 90, "memorability": 80, "uniqueness": 70}
	label := features.FeatureVector{"harshness": 40, "memorability": 40, "uniqueness": 40}

	ev := g.GenerateEnsembleFeatures(entity, label, features.InteractionGeneral)

	if ev["entity_dominates_harsh"] != 1 {
		t.Error("Expected entity harsh dominance flag at differential 50")
	}
	if ev["label_dominates_harsh"] != 0 {
		t.Error("Label harsh dominance flag must not fire when the entity dominates")
	}
	// 50*0.5 + 40*0.3 + 30*0.2 = 43
	if ev["dominance_score"] != 43 {
		t.Errorf("Expected dominance score 43, got %f", ev["dominance_score"])
	}
	if ev["entity_dominant"] != 1 {
		t.Error("Expected clear entity dominance at score 43")
	}
}

func TestEnsembleSynergy(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	entity := features.FeatureVector{"harshness": 80}
	label := features.FeatureVector{"harshness": 50}

	ev := g.GenerateEnsembleFeatures(entity, label, features.InteractionGeneral)
	if ev["harsh_synergy"] != 40 {
		t.Errorf("Expected harsh synergy 40 (0.8 x 0.5 x 100), got %f", ev["harsh_synergy"])
	}
}

func TestEnsembleInteractionFamilies(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	entity := features.FeatureVector{"harshness": 70, "memorability": 60}
	label := features.FeatureVector{"harshness": 65, "team_aggression": 80}

	tests := []struct {
		interaction features.InteractionType
		expected    string
	}{
		{features.InteractionTeam, "team_identity_fusion"},
		{features.InteractionVenue, "venue_resonance"},
		{features.InteractionPlay, "play_style_match"},
		{features.InteractionProp, "prop_affinity"},
		{features.InteractionGeneral, "general_compatibility"},
	}

	for _, test := range tests {
		ev := g.GenerateEnsembleFeatures(entity, label, test.interaction)
		if !ev.Has(test.expected) {
			t.Errorf("Interaction %s missing expected key %s", test.interaction, test.expected)
		}
	}

	// Families must not leak across interaction types
	ev := g.GenerateEnsembleFeatures(entity, label, features.InteractionVenue)
	if ev.Has("team_identity_fusion") {
		t.Error("Venue interaction must not emit team-specific features")
	}
}

func TestEnsembleTeamFusionFormula(t *testing.T) {
	g := NewNominativeEnsembleGenerator()
	ev := g.GenerateEnsembleFeatures(features.FeatureVector{}, features.FeatureVector{}, features.InteractionTeam)

	// alignment 100, harsh synergy 25 -> 100*0.6 + 25*0.4 = 70
	if ev["team_identity_fusion"] != 70 {
		t.Errorf("Expected team identity fusion 70 for neutral inputs, got %f", ev["team_identity_fusion"])
	}
}
