package analyzers

import (
	"math"

	"namesake/domain/linguistics"
)

// PhonemicAnalyzer maps a text string to low-level sound-class counts and ratios.
// Stateless; a single instance is safe for concurrent use.
type PhonemicAnalyzer struct{}

// NewPhonemicAnalyzer creates a new phonemic analyzer
func NewPhonemicAnalyzer() *PhonemicAnalyzer {
	return &PhonemicAnalyzer{}
}

// Analyze computes the phonetic profile of text. Empty or non-alphabetic input
// returns neutral defaults and never errors.
func (a *PhonemicAnalyzer) Analyze(text string) linguistics.PhoneticProfile {
	clean := letters(text)
	if clean == "" {
		return defaultPhoneticProfile()
	}

	total := len(clean)
	p := linguistics.PhoneticProfile{TotalSounds: total}

	vowelCount := 0
	voicedCount := 0
	consonantCount := 0
	sonorantCount := 0
	for i := 0; i < total; i++ {
		c := clean[i]
		switch {
		case inClass(c, plosives):
			p.PlosiveCount++
		case inClass(c, fricatives):
			p.FricativeCount++
		case inClass(c, nasals):
			p.NasalCount++
		case inClass(c, liquids):
			p.LiquidCount++
		}
		if inClass(c, frontVowels) {
			p.FrontVowelCount++
		}
		if inClass(c, backVowels) {
			p.BackVowelCount++
		}
		if isVowel(c) {
			vowelCount++
			sonorantCount++
		} else {
			consonantCount++
			if inClass(c, voiced) {
				voicedCount++
			}
			if inClass(c, nasals) || inClass(c, liquids) || inClass(c, glides) {
				sonorantCount++
			}
		}
	}

	denom := float64(maxInt(total, 1))
	p.PlosiveRatio = float64(p.PlosiveCount) / denom
	p.FricativeRatio = float64(p.FricativeCount) / denom
	p.VowelRatio = float64(vowelCount) / denom
	p.FrontVowelRatio = float64(p.FrontVowelCount) / denom
	p.VoicingRatio = float64(voicedCount) / float64(maxInt(consonantCount, 1))
	p.Sonority = clamp100(float64(sonorantCount) / denom * 100)

	p.InitialIsPlosive = inClass(clean[0], plosives)
	p.FinalIsPlosive = inClass(clean[total-1], plosives)
	p.InitialImpact = impactScore(clean[0])
	p.FinalImpact = impactScore(clean[total-1])

	p.ClusterCount, p.MaxClusterLength = scanClusters(clean)
	p.HasAlliteration = hasAlliteration(text)

	// Phonemic quality rewards plosive presence, balanced voicing, front
	// vowels, and easy clusters.
	voicingBalance := 1 - 2*math.Abs(p.VoicingRatio-0.5)
	clusterEase := 1 - clamp01(float64(p.ClusterCount)/denom*2)
	p.PhonemicQuality = clamp100(p.PlosiveRatio*30 + voicingBalance*25 + p.FrontVowelRatio*25 + clusterEase*20)

	return p
}

// impactScore rates the perceptual punch of an initial or final sound
func impactScore(c byte) float64 {
	switch {
	case inClass(c, plosives):
		return 90
	case inClass(c, fricatives):
		return 70
	case inClass(c, nasals), inClass(c, liquids):
		return 50
	case isVowel(c):
		return 40
	default:
		return 55
	}
}

// scanClusters counts consonant runs of length 2+ and the longest run
func scanClusters(clean string) (count, longest int) {
	run := 0
	for i := 0; i < len(clean); i++ {
		if isConsonant(clean[i]) {
			run++
			continue
		}
		if run >= 2 {
			count++
			if run > longest {
				longest = run
			}
		}
		run = 0
	}
	if run >= 2 {
		count++
		if run > longest {
			longest = run
		}
	}
	return count, longest
}

// hasAlliteration reports whether two or more words share an initial letter
func hasAlliteration(text string) bool {
	words := cleanWords(text)
	if len(words) < 2 {
		return false
	}
	seen := map[byte]int{}
	for _, w := range words {
		seen[w[0]]++
		if seen[w[0]] >= 2 {
			return true
		}
	}
	return false
}

// defaultPhoneticProfile is the empty-input contract: counts zero, ratios neutral
func defaultPhoneticProfile() linguistics.PhoneticProfile {
	return linguistics.PhoneticProfile{
		PlosiveRatio:    0.5,
		FricativeRatio:  0.5,
		VowelRatio:      0.5,
		FrontVowelRatio: 0.5,
		VoicingRatio:    0.5,
		InitialImpact:   50,
		FinalImpact:     50,
		Sonority:        50,
		PhonemicQuality: 50,
	}
}
