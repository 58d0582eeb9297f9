package ensemble

import (
	"math"

	"namesake/domain/features"
)

// Per-key defaults used when either input vector omits a dimension. The label
// side intentionally centers at the same neutral values the label extractor's
// empty-label vector uses, so alignment against an empty label stays in a
// neutral band instead of drifting toward zero.
const (
	defaultHarshness    = 50.0
	defaultMemorability = 50.0
	defaultUniqueness   = 50.0
	defaultSonority     = 50.0
	defaultVowelRatio   = 0.4
	defaultSyllables    = 2.0
	defaultFlow         = 50.0
	defaultAlignment    = 50.0
)

// Contrast and dominance flag thresholds
const (
	extremeContrastThreshold   = 30.0
	memorableContrastThreshold = 25.0
	dominanceFlagThreshold     = 15.0
	clearDominanceThreshold    = 20.0
)

// NominativeEnsembleGenerator computes cross-features from one entity feature
// vector paired with one label feature vector. Stateless and safe for
// concurrent use.
type NominativeEnsembleGenerator struct{}

// NewNominativeEnsembleGenerator creates an ensemble generator
func NewNominativeEnsembleGenerator() *NominativeEnsembleGenerator {
	return &NominativeEnsembleGenerator{}
}

// GenerateEnsembleFeatures computes the six cross-feature families for the
// (entity, label, interaction) triple. Both inputs may be sparse or empty;
// every read falls back to its per-key default. The five base families read
// only from the two input vectors; the interaction-specific family may also
// reuse the already-computed overall_alignment (fallback 50).
func (g *NominativeEnsembleGenerator) GenerateEnsembleFeatures(entity, label features.FeatureVector, interaction features.InteractionType) features.EnsembleVector {
	ev := make(features.EnsembleVector, 40)

	g.addAlignment(ev, entity, label)
	g.addContrast(ev, entity, label)
	g.addSynergy(ev, entity, label)
	g.addDominance(ev, entity, label)
	g.addHarmony(ev, entity, label)
	g.addInteractionSpecific(ev, entity, label, interaction)

	return ev
}

// addAlignment measures closeness of matched dimensions (100 - |diff|)
func (g *NominativeEnsembleGenerator) addAlignment(ev features.EnsembleVector, entity, label features.FeatureVector) {
	ph := entity.Get("harshness", defaultHarshness)
	lh := label.Get("harshness", defaultHarshness)
	pm := entity.Get("memorability", defaultMemorability)
	lm := label.Get("memorability", defaultMemorability)
	pu := entity.Get("uniqueness", defaultUniqueness)
	lu := label.Get("uniqueness", defaultUniqueness)
	ps := entity.Get("syllables", defaultSyllables)
	ls := label.Get("syllables", defaultSyllables)

	ev["harshness_alignment"] = clamp100(100 - math.Abs(ph-lh))
	ev["memorability_alignment"] = clamp100(100 - math.Abs(pm-lm))
	ev["uniqueness_alignment"] = clamp100(100 - math.Abs(pu-lu))
	ev["syllable_alignment"] = clamp100(100 - math.Abs(ps-ls)*15)
	ev["overall_alignment"] = (ev["harshness_alignment"] + ev["memorability_alignment"] +
		ev["uniqueness_alignment"] + ev["syllable_alignment"]) / 4
}

// addContrast measures raw dimension gaps plus extreme-contrast flags
func (g *NominativeEnsembleGenerator) addContrast(ev features.EnsembleVector, entity, label features.FeatureVector) {
	harshGap := math.Abs(entity.Get("harshness", defaultHarshness) - label.Get("harshness", defaultHarshness))
	memGap := math.Abs(entity.Get("memorability", defaultMemorability) - label.Get("memorability", defaultMemorability))

	ev["harshness_contrast"] = harshGap
	ev["memorability_contrast"] = memGap
	ev["harshness_extreme_contrast"] = b2f(harshGap >= extremeContrastThreshold)
	ev["memorability_extreme_contrast"] = b2f(memGap >= memorableContrastThreshold)
	ev["style_clash"] = b2f(harshGap >= extremeContrastThreshold && memGap >= memorableContrastThreshold)
}

// addSynergy measures normalized products of matched dimensions
func (g *NominativeEnsembleGenerator) addSynergy(ev features.EnsembleVector, entity, label features.FeatureVector) {
	ph := entity.Get("harshness", defaultHarshness)
	lh := label.Get("harshness", defaultHarshness)
	pm := entity.Get("memorability", defaultMemorability)
	lm := label.Get("memorability", defaultMemorability)
	pu := entity.Get("uniqueness", defaultUniqueness)
	lu := label.Get("uniqueness", defaultUniqueness)

	ev["harsh_synergy"] = (ph / 100) * (lh / 100) * 100
	ev["memorable_synergy"] = (pm / 100) * (lm / 100) * 100
	ev["unique_synergy"] = (pu / 100) * (lu / 100) * 100
	ev["power_synergy"] = (ph / 100) * (label.Get("strength_score", defaultHarshness) / 100) * 100
	ev["overall_synergy"] = (ev["harsh_synergy"] + ev["memorable_synergy"] + ev["unique_synergy"]) / 3
}

// addDominance measures signed differentials plus dominance flags and a
// weighted composite score
func (g *NominativeEnsembleGenerator) addDominance(ev features.EnsembleVector, entity, label features.FeatureVector) {
	harshDiff := entity.Get("harshness", defaultHarshness) - label.Get("harshness", defaultHarshness)
	memDiff := entity.Get("memorability", defaultMemorability) - label.Get("memorability", defaultMemorability)
	uniqueDiff := entity.Get("uniqueness", defaultUniqueness) - label.Get("uniqueness", defaultUniqueness)

	ev["harshness_dominance"] = harshDiff
	ev["memorability_dominance"] = memDiff
	ev["uniqueness_dominance"] = uniqueDiff
	ev["entity_dominates_harsh"] = b2f(harshDiff >= dominanceFlagThreshold)
	ev["label_dominates_harsh"] = b2f(harshDiff <= -dominanceFlagThreshold)

	score := harshDiff*0.5 + memDiff*0.3 + uniqueDiff*0.2
	ev["dominance_score"] = score
	ev["entity_dominant"] = b2f(score >= clearDominanceThreshold)
	ev["label_dominant"] = b2f(score <= -clearDominanceThreshold)
}

// addHarmony measures closeness across vowel balance, consonant balance,
// syllable count, and sonority, then averages them
func (g *NominativeEnsembleGenerator) addHarmony(ev features.EnsembleVector, entity, label features.FeatureVector) {
	pv := entity.Get("vowel_ratio", defaultVowelRatio)
	lv := label.Get("vowel_ratio", defaultVowelRatio)
	vowel := clamp100(100 - math.Abs(pv-lv)*200)
	consonant := clamp100(100 - math.Abs((1-pv)-(1-lv))*200)
	syllable := clamp100(100 - math.Abs(entity.Get("syllables", defaultSyllables)-label.Get("syllables", defaultSyllables))*20)
	sonority := clamp100(100 - math.Abs(entity.Get("sonority", defaultSonority)-label.Get("sonority", defaultSonority)))

	ev["vowel_harmony_match"] = vowel
	ev["consonant_harmony_match"] = consonant
	ev["syllable_harmony"] = syllable
	ev["sonority_harmony"] = sonority
	ev["phonetic_harmony"] = (vowel + consonant + syllable + sonority) / 4
}

// addInteractionSpecific layers the interaction-type-specific family on top.
// These terms may reuse overall_alignment computed by addAlignment.
func (g *NominativeEnsembleGenerator) addInteractionSpecific(ev features.EnsembleVector, entity, label features.FeatureVector, interaction features.InteractionType) {
	alignment := ev.Get("overall_alignment", defaultAlignment)

	switch interaction {
	case features.InteractionTeam:
		ev["team_identity_fusion"] = clamp100(alignment*0.6 + ev.Get("harsh_synergy", 25)*0.4)
		ev["team_banner_effect"] = (label.Get("team_aggression", defaultHarshness) / 100) *
			entity.Get("memorability", defaultMemorability)
	case features.InteractionVenue:
		ev["venue_resonance"] = clamp100(ev.Get("sonority_harmony", defaultAlignment)*0.5 + alignment*0.5)
		ev["venue_stage_presence"] = (label.Get("venue_grandeur", defaultAlignment) / 100) *
			entity.Get("harshness", defaultHarshness)
	case features.InteractionPlay:
		ev["play_style_match"] = clamp100(100 - math.Abs(entity.Get("plosive_ratio", 0)-label.Get("plosive_ratio", 0))*200)
		ev["play_execution"] = (entity.Get("pronounceability", defaultFlow) / 100) *
			label.Get("flow", defaultFlow)
	case features.InteractionProp:
		ev["prop_affinity"] = clamp100(alignment*0.5 + ev.Get("unique_synergy", 25)*0.5)
		ev["prop_signal"] = (label.Get("prop_volatility", defaultAlignment) / 100) *
			entity.Get("uniqueness", defaultUniqueness)
	default:
		ev["general_compatibility"] = alignment
	}
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
