package extract

import (
	"strings"

	"namesake/domain/features"
	"namesake/internal/analyzers"
)

// LabelNominativeExtractor extracts nominative features from non-person
// labels: team names, venues, plays, props, genres, instruments. Its
// harshness/memorability/uniqueness formulas are deliberately independent
// of the person-name helpers in the entity extractor.
type LabelNominativeExtractor struct {
	phonemic  *analyzers.PhonemicAnalyzer
	semantic  *analyzers.SemanticAnalyzer
	symbolism *analyzers.SoundSymbolismAnalyzer
	prosodic  *analyzers.ProsodicAnalyzer
}

// NewLabelNominativeExtractor creates a label feature extractor
func NewLabelNominativeExtractor() *LabelNominativeExtractor {
	return &LabelNominativeExtractor{
		phonemic:  analyzers.NewPhonemicAnalyzer(),
		semantic:  analyzers.NewSemanticAnalyzer(),
		symbolism: analyzers.NewSoundSymbolismAnalyzer(),
		prosodic:  analyzers.NewProsodicAnalyzer(),
	}
}

// ExtractLabelFeatures computes the common label features plus the
// label-type-specific sub-extractor features. Empty labels return the fixed
// default vector rather than an error. ctx contributes only to the venue
// sub-extractor; a zero GameContext is always acceptable.
func (e *LabelNominativeExtractor) ExtractLabelFeatures(label string, labelType features.LabelType, ctx features.GameContext) features.FeatureVector {
	clean := lettersOnly(label)
	if clean == "" {
		return e.emptyLabelFeatures()
	}

	fv := make(features.FeatureVector, 32)
	phonetic := e.phonemic.Analyze(label)
	semantic := e.semantic.Analyze(label)
	symbolism := e.symbolism.Analyze(label)
	prosodic := e.prosodic.Analyze(label)

	words := strings.Fields(label)
	fv["label_length"] = float64(len(clean))
	fv["word_count"] = float64(len(words))
	fv["syllables"] = float64(prosodic.SyllableCount)
	fv["harshness"] = labelHarshness(clean)
	fv["memorability"] = labelMemorability(label)
	fv["uniqueness"] = labelUniqueness(clean)
	fv["pronounceability"] = prosodic.Flow

	fv["vowel_ratio"] = clamp01(phonetic.VowelRatio)
	fv["consonant_ratio"] = clamp01(1 - phonetic.VowelRatio)
	fv["cluster_count"] = float64(phonetic.ClusterCount)
	fv["sonority"] = phonetic.Sonority
	fv["initial_impact"] = phonetic.InitialImpact
	fv["final_impact"] = phonetic.FinalImpact
	fv["plosive_ratio"] = clamp01(phonetic.PlosiveRatio)
	fv["fricative_ratio"] = clamp01(phonetic.FricativeRatio)

	fv["metaphor_score"] = semantic.MetaphorScore
	fv["valence_score"] = semantic.ValenceScore
	fv["imagery_strength"] = semantic.ImageryStrength
	fv["semantic_score"] = semantic.Score
	fv["strength_score"] = symbolism.StrengthScore
	fv["catchiness"] = prosodic.Catchiness
	fv["flow"] = prosodic.Flow

	e.addTypeFeatures(fv, labelType, ctx)
	return fv
}

// labelHarshness is the label-corpus harshness formula:
// harsh-consonant-ratio x 80 plus 5 per cluster, capped at 100.
func labelHarshness(clean string) float64 {
	if clean == "" {
		return 50
	}
	harsh := 0
	for i := 0; i < len(clean); i++ {
		if strings.IndexByte(harshConsonants, clean[i]) >= 0 {
			harsh++
		}
	}
	ratio := float64(harsh) / float64(len(clean))
	return clamp100(ratio*80 + float64(countClusters(clean))*5)
}

// labelMemorability starts at 50 and applies additive bonuses and penalties
// for length, repetition, alliteration, and syllable parity.
func labelMemorability(label string) float64 {
	clean := lettersOnly(label)
	if clean == "" {
		return 50
	}
	score := 50.0

	switch {
	case len(clean) <= 6:
		score += 15
	case len(clean) <= 10:
		score += 5
	case len(clean) > 14:
		score -= float64(len(clean)-14) * 2
	}

	// Repeated letters tend to stick ("Mississippi" effect)
	counts := map[byte]int{}
	for i := 0; i < len(clean); i++ {
		counts[clean[i]]++
	}
	for _, c := range counts {
		if c >= 3 {
			score += 5
			break
		}
	}

	words := strings.Fields(strings.ToLower(label))
	if len(words) >= 2 && words[0][0] == words[len(words)-1][0] {
		score += 10
	}

	syllables := 0
	for _, w := range words {
		syllables += analyzers.CountSyllables(w)
	}
	if syllables%2 == 0 {
		score += 5
	}

	return clamp100(score)
}

// labelUniqueness rewards letter diversity and uncommon letters:
// unique-letter-ratio x 60 plus 10 per uncommon letter, capped at 100.
func labelUniqueness(clean string) float64 {
	if clean == "" {
		return 50
	}
	unique := map[byte]bool{}
	uncommon := 0
	for i := 0; i < len(clean); i++ {
		unique[clean[i]] = true
		if strings.IndexByte("jkqxz", clean[i]) >= 0 {
			uncommon++
		}
	}
	ratio := float64(len(unique)) / float64(len(clean))
	return clamp100(ratio*60 + float64(uncommon)*10)
}

// addTypeFeatures layers the label-type-specific sub-extractor on top of the
// common features. Each type reads only already-computed common features.
func (e *LabelNominativeExtractor) addTypeFeatures(fv features.FeatureVector, labelType features.LabelType, ctx features.GameContext) {
	harshness := fv.Get("harshness", 50)
	strength := fv.Get("strength_score", 50)
	flow := fv.Get("flow", 50)
	syllables := fv.Get("syllables", 2)
	sonority := fv.Get("sonority", 50)

	switch labelType {
	case features.LabelTeam:
		fv["team_aggression"] = clamp100(harshness*0.6 + strength*0.4)
		fv["team_intimidation"] = clamp100(harshness*0.5 + fv.Get("initial_impact", 50)*0.3 + fv.Get("metaphor_score", 50)*0.2)
		fv["team_speed"] = clamp100((5-syllables)*15 + fv.Get("plosive_ratio", 0)*50)
		fv["team_unity"] = clamp100(fv.Get("memorability", 50)*0.6 + flow*0.4)
	case features.LabelVenue:
		fv["venue_grandeur"] = clamp100(fv.Get("label_length", 6)*4 + sonority*0.5)
		fv["venue_intimacy"] = clamp100(100 - fv.Get("label_length", 6)*5)
		fv["venue_fortress"] = clamp100(harshness*0.5 + strength*0.5 + ctx.Altitude/1000)
		fv["venue_echo"] = clamp100(fv.Get("vowel_ratio", 0.4) * 180)
	case features.LabelPlay:
		fv["play_explosiveness"] = clamp100(fv.Get("plosive_ratio", 0)*120 + fv.Get("initial_impact", 50)*0.4)
		fv["play_deception"] = clamp100(fv.Get("fricative_ratio", 0)*100 + fv.Get("uniqueness", 50)*0.4)
		fv["play_tempo"] = clamp100((4-syllables)*20 + flow*0.4)
	case features.LabelProp:
		fv["prop_volatility"] = clamp100(fv.Get("uniqueness", 50)*0.5 + harshness*0.3 + (syllables * 5))
		fv["prop_actionability"] = clamp100(fv.Get("memorability", 50)*0.5 + flow*0.5)
	case features.LabelGenre:
		fv["genre_energy"] = clamp100(harshness*0.4 + fv.Get("catchiness", 50)*0.6)
		fv["genre_mood"] = clamp100(fv.Get("valence_score", 50)*0.7 + sonority*0.3)
	case features.LabelInstrument:
		fv["instrument_resonance"] = clamp100(sonority*0.6 + fv.Get("vowel_ratio", 0.4)*100*0.4)
		fv["instrument_attack"] = clamp100(fv.Get("plosive_ratio", 0)*150 + harshness*0.3)
	}
}

// emptyLabelFeatures is the documented default vector for empty/unknown labels
func (e *LabelNominativeExtractor) emptyLabelFeatures() features.FeatureVector {
	return features.FeatureVector{
		"label_length":     0,
		"word_count":       0,
		"syllables":        2,
		"harshness":        50,
		"memorability":     50,
		"uniqueness":       50,
		"pronounceability": 50,
		"vowel_ratio":      0.4,
		"consonant_ratio":  0.6,
		"cluster_count":    0,
		"sonority":         50,
		"initial_impact":   50,
		"final_impact":     50,
		"plosive_ratio":    0,
		"fricative_ratio":  0,
		"metaphor_score":   50,
		"valence_score":    50,
		"imagery_strength": 40,
		"semantic_score":   50,
		"strength_score":   50,
		"catchiness":       50,
		"flow":             50,
	}
}
