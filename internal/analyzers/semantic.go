package analyzers

import (
	"strings"

	"namesake/domain/linguistics"
)

// SemanticAnalyzer maps a text string to lookup-table semantic associations
type SemanticAnalyzer struct{}

// NewSemanticAnalyzer creates a new semantic analyzer
func NewSemanticAnalyzer() *SemanticAnalyzer {
	return &SemanticAnalyzer{}
}

// Analyze computes the semantic profile of text via case-insensitive
// substring membership against the curated word sets. The first metaphor
// category matched in priority order wins.
func (a *SemanticAnalyzer) Analyze(text string) linguistics.SemanticProfile {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return defaultSemanticProfile()
	}

	p := linguistics.SemanticProfile{
		PrimaryMetaphor: linguistics.MetaphorNeutral,
		Valence:         linguistics.ValenceNeutral,
		Concreteness:    linguistics.ConcretenessNeutral,
	}

	for _, cat := range metaphorPriority {
		if matchesAny(lower, metaphorWords[cat]) {
			p.PrimaryMetaphor = cat
			break
		}
	}
	p.MetaphorScore = metaphorScores[p.PrimaryMetaphor]

	switch {
	case matchesAny(lower, positiveWords):
		p.Valence = linguistics.ValencePositive
		p.ValenceScore = 70
	case matchesAny(lower, negativeWords):
		p.Valence = linguistics.ValenceNegative
		p.ValenceScore = 30
	default:
		p.ValenceScore = 50
	}

	switch {
	case matchesAny(lower, concreteWords):
		p.Concreteness = linguistics.ConcretenessConcrete
		p.ConcretenessScore = 75
	case matchesAny(lower, abstractWords):
		p.Concreteness = linguistics.ConcretenessAbstract
		p.ConcretenessScore = 35
	default:
		p.ConcretenessScore = 50
	}

	// Imagery strength rides on concreteness plus a non-neutral metaphor bonus
	p.ImageryStrength = clamp100(p.ConcretenessScore * 0.8)
	if p.PrimaryMetaphor != linguistics.MetaphorNeutral {
		p.ImageryStrength = clamp100(p.ImageryStrength + 20)
	}

	p.Score = clamp100(p.MetaphorScore*0.35 + p.ValenceScore*0.25 + p.ConcretenessScore*0.20 + p.ImageryStrength*0.20)
	return p
}

// matchesAny reports whether any entry of set occurs as a substring of lower
func matchesAny(lower string, set []string) bool {
	for _, w := range set {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func defaultSemanticProfile() linguistics.SemanticProfile {
	return linguistics.SemanticProfile{
		PrimaryMetaphor:   linguistics.MetaphorNeutral,
		MetaphorScore:     50,
		Valence:           linguistics.ValenceNeutral,
		ValenceScore:      50,
		Concreteness:      linguistics.ConcretenessNeutral,
		ConcretenessScore: 50,
		ImageryStrength:   40,
		Score:             50,
	}
}
