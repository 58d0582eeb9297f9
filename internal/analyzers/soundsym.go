package analyzers

import (
	"namesake/domain/linguistics"
)

// Bucket thresholds for the bouba/kiki classification. A roundness share at
// or above boubaThreshold reads as "bouba", at or below kikiThreshold as
// "kiki", anything between as "balanced".
const (
	boubaThreshold = 0.60
	kikiThreshold  = 0.40
)

// SoundSymbolismAnalyzer maps a text string to psycholinguistic sound-symbol
// associations (bouba/kiki, size, speed, brightness, strength).
type SoundSymbolismAnalyzer struct{}

// NewSoundSymbolismAnalyzer creates a new sound-symbolism analyzer
func NewSoundSymbolismAnalyzer() *SoundSymbolismAnalyzer {
	return &SoundSymbolismAnalyzer{}
}

// Analyze computes the sound-symbolism profile of text. Empty input returns
// the balanced default profile.
func (a *SoundSymbolismAnalyzer) Analyze(text string) linguistics.SoundSymbolismProfile {
	clean := letters(text)
	if clean == "" {
		return defaultSoundSymbolismProfile()
	}

	total := float64(maxInt(len(clean), 1))
	round := 0
	sharp := 0
	backV := 0
	frontV := 0
	plosive := 0
	for i := 0; i < len(clean); i++ {
		c := clean[i]
		// Round class: sonorants and back vowels. Sharp class: obstruents
		// and front vowels.
		if inClass(c, nasals) || inClass(c, liquids) || inClass(c, glides) || inClass(c, backVowels) || c == 'b' || c == 'a' {
			round++
		}
		if inClass(c, plosives) && c != 'b' || inClass(c, fricatives) || inClass(c, frontVowels) {
			sharp++
		}
		if inClass(c, backVowels) {
			backV++
		}
		if inClass(c, frontVowels) {
			frontV++
		}
		if inClass(c, plosives) {
			plosive++
		}
	}

	roundness := float64(round) / float64(maxInt(round+sharp, 1))
	p := linguistics.SoundSymbolismProfile{
		RoundnessScore: clamp100(roundness * 100),
		SharpnessScore: clamp100((1 - roundness) * 100),
	}
	switch {
	case roundness >= boubaThreshold:
		p.Shape = linguistics.ShapeBouba
	case roundness <= kikiThreshold:
		p.Shape = linguistics.ShapeKiki
	default:
		p.Shape = linguistics.ShapeBalanced
	}

	clusters, _ := scanClusters(clean)

	// Size: back vowels read large, front vowels small
	p.SizeScore = clamp100(50 + (float64(backV)-float64(frontV))/total*100)
	p.Size = bucket(p.SizeScore)

	// Speed: plosives and brevity read fast
	p.SpeedScore = clamp100(float64(plosive)/total*120 + (12-total)*3)
	p.Speed = bucket(p.SpeedScore)

	// Brightness: front vowels read bright
	p.BrightnessScore = clamp100(float64(frontV)/total*180 + 20)
	p.Brightness = bucket(p.BrightnessScore)

	// Strength: plosives and clusters read strong
	p.StrengthScore = clamp100(float64(plosive)/total*100 + float64(clusters)*12)
	p.Strength = bucket(p.StrengthScore)

	p.Score = clamp100(p.StrengthScore*0.35 + p.SpeedScore*0.25 + p.BrightnessScore*0.20 + p.SizeScore*0.20)
	return p
}

// bucket maps a [0,100] score into the three-way association bucket
func bucket(score float64) linguistics.Association {
	switch {
	case score >= 60:
		return linguistics.AssociationHigh
	case score <= 40:
		return linguistics.AssociationLow
	default:
		return linguistics.AssociationNeutral
	}
}

func defaultSoundSymbolismProfile() linguistics.SoundSymbolismProfile {
	return linguistics.SoundSymbolismProfile{
		Shape:           linguistics.ShapeBalanced,
		RoundnessScore:  50,
		SharpnessScore:  50,
		Size:            linguistics.AssociationNeutral,
		SizeScore:       50,
		Speed:           linguistics.AssociationNeutral,
		SpeedScore:      50,
		Brightness:      linguistics.AssociationNeutral,
		BrightnessScore: 50,
		Strength:        linguistics.AssociationNeutral,
		StrengthScore:   50,
		Score:           50,
	}
}
