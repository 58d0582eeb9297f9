package analyzers

import (
	"fmt"

	"namesake/domain/linguistics"
	"namesake/internal"
)

// Deep score weights for the four primitive dimensions. Tunable constants,
// not derived values.
const (
	weightPhonemic  = 0.25
	weightSemantic  = 0.25
	weightSymbolism = 0.20
	weightProsodic  = 0.30
)

// DeepLinguisticAnalyzer aggregates the four primitive analyzers into one
// composite score plus human-readable insights.
type DeepLinguisticAnalyzer struct {
	phonemic  *PhonemicAnalyzer
	semantic  *SemanticAnalyzer
	symbolism *SoundSymbolismAnalyzer
	prosodic  *ProsodicAnalyzer
	logger    *internal.Logger
}

// NewDeepLinguisticAnalyzer creates a deep analyzer with default primitives
func NewDeepLinguisticAnalyzer() *DeepLinguisticAnalyzer {
	return &DeepLinguisticAnalyzer{
		phonemic:  NewPhonemicAnalyzer(),
		semantic:  NewSemanticAnalyzer(),
		symbolism: NewSoundSymbolismAnalyzer(),
		prosodic:  NewProsodicAnalyzer(),
		logger:    internal.DefaultLogger,
	}
}

// Analyze runs all four primitive analyzers over name and combines them into
// a weighted deep score. If any primitive panics the failure is logged and a
// nil result is returned; callers must handle nil. Partial results are never
// returned.
func (d *DeepLinguisticAnalyzer) Analyze(name string) (result *linguistics.DeepAnalysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("deep analysis failed for %q: %v", name, r)
			result = nil
			err = fmt.Errorf("deep analysis failed for %q: %v", name, r)
		}
	}()

	phonetic := d.phonemic.Analyze(name)
	semantic := d.semantic.Analyze(name)
	symbolism := d.symbolism.Analyze(name)
	prosodic := d.prosodic.Analyze(name)

	analysis := &linguistics.DeepAnalysis{
		Name:           name,
		Phonetic:       phonetic,
		Semantic:       semantic,
		SoundSymbolism: symbolism,
		Prosodic:       prosodic,
	}
	analysis.DeepScore = clamp100(phonetic.PhonemicQuality*weightPhonemic +
		semantic.Score*weightSemantic +
		symbolism.Score*weightSymbolism +
		prosodic.Score*weightProsodic)
	analysis.Insights = d.generateInsights(analysis)

	return analysis, nil
}

// generateInsights emits the fixed, ordered rule list of readable observations.
// Rule order is part of the output contract.
func (d *DeepLinguisticAnalyzer) generateInsights(a *linguistics.DeepAnalysis) []string {
	insights := []string{}

	if a.Phonetic.InitialIsPlosive {
		insights = append(insights, fmt.Sprintf("%s opens with a plosive attack, commanding immediate attention", a.Name))
	}
	if a.Phonetic.FinalIsPlosive {
		insights = append(insights, fmt.Sprintf("%s ends on a hard stop, leaving a decisive impression", a.Name))
	}
	if a.Phonetic.HasAlliteration {
		insights = append(insights, fmt.Sprintf("%s alliterates, a classic memorability device", a.Name))
	}
	if a.Semantic.PrimaryMetaphor != linguistics.MetaphorNeutral {
		insights = append(insights, fmt.Sprintf("%s evokes %s imagery", a.Name, a.Semantic.PrimaryMetaphor))
	}
	switch a.SoundSymbolism.Shape {
	case linguistics.ShapeKiki:
		insights = append(insights, fmt.Sprintf("%s has sharp, angular sound texture (kiki)", a.Name))
	case linguistics.ShapeBouba:
		insights = append(insights, fmt.Sprintf("%s has round, soft sound texture (bouba)", a.Name))
	}
	if a.Prosodic.Stress == linguistics.StressTrochaic {
		insights = append(insights, fmt.Sprintf("%s carries a front-stressed, emphatic rhythm", a.Name))
	}
	if a.Prosodic.Flow >= 70 {
		insights = append(insights, fmt.Sprintf("%s flows easily off the tongue", a.Name))
	}
	if a.DeepScore >= 75 {
		insights = append(insights, fmt.Sprintf("%s scores in the top linguistic tier overall", a.Name))
	}

	return insights
}
