package analyzers

import (
	"testing"

	"namesake/domain/linguistics"
)

func TestSoundSymbolismShape(t *testing.T) {
	tests := []struct {
		text     string
		expected linguistics.ShapeClass
	}{
		{"Moon", linguistics.ShapeBouba},
		{"Kit", linguistics.ShapeKiki},
		{"", linguistics.ShapeBalanced},
	}

	a := NewSoundSymbolismAnalyzer()
	for _, test := range tests {
		p := a.Analyze(test.text)
		if p.Shape != test.expected {
			t.Errorf("Analyze(%q).Shape = %s, expected %s", test.text, p.Shape, test.expected)
		}
	}
}

func TestSoundSymbolismRoundnessExtremes(t *testing.T) {
	a := NewSoundSymbolismAnalyzer()

	p := a.Analyze("Moon")
	if p.RoundnessScore != 100 {
		t.Errorf("Expected full roundness for 'Moon', got %f", p.RoundnessScore)
	}
	p = a.Analyze("Kit")
	if p.SharpnessScore != 100 {
		t.Errorf("Expected full sharpness for 'Kit', got %f", p.SharpnessScore)
	}
}

func TestSoundSymbolismBuckets(t *testing.T) {
	tests := []struct {
		score    float64
		expected linguistics.Association
	}{
		{60, linguistics.AssociationHigh},
		{40, linguistics.AssociationLow},
		{50, linguistics.AssociationNeutral},
		{100, linguistics.AssociationHigh},
		{0, linguistics.AssociationLow},
	}

	for _, test := range tests {
		if got := bucket(test.score); got != test.expected {
			t.Errorf("bucket(%f) = %s, expected %s", test.score, got, test.expected)
		}
	}
}

func TestSoundSymbolismScoresInRange(t *testing.T) {
	a := NewSoundSymbolismAnalyzer()
	for _, name := range []string{"Zack Kazmierczak", "Moe", "Gus", "Tua Tagovailoa"} {
		p := a.Analyze(name)
		for label, v := range map[string]float64{
			"size": p.SizeScore, "speed": p.SpeedScore,
			"brightness": p.BrightnessScore, "strength": p.StrengthScore,
			"score": p.Score,
		} {
			if v < 0 || v > 100 {
				t.Errorf("%s out of range for %q: %f", label, name, v)
			}
		}
	}
}

func TestSoundSymbolismEmptyDefaults(t *testing.T) {
	p := NewSoundSymbolismAnalyzer().Analyze("")
	if p.Score != 50 || p.RoundnessScore != 50 || p.SharpnessScore != 50 {
		t.Errorf("Expected neutral defaults for empty input, got score=%f round=%f sharp=%f",
			p.Score, p.RoundnessScore, p.SharpnessScore)
	}
}
