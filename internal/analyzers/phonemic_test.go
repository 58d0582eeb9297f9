package analyzers

import (
	"testing"
)

func TestPhonemicAnalyzeZeus(t *testing.T) {
	p := NewPhonemicAnalyzer().Analyze("Zeus")

	if p.PlosiveCount != 0 {
		t.Errorf("Expected 0 plosives in 'Zeus', got %d", p.PlosiveCount)
	}
	if p.InitialIsPlosive {
		t.Error("Expected 'Zeus' initial to not be a plosive")
	}
	if p.HasAlliteration {
		t.Error("Single word cannot alliterate")
	}
	if p.FricativeCount != 2 {
		t.Errorf("Expected 2 fricatives (z, s), got %d", p.FricativeCount)
	}
	if p.VowelRatio != 0.5 {
		t.Errorf("Expected vowel ratio 0.5 for 'Zeus', got %f", p.VowelRatio)
	}
	if p.TotalSounds != 4 {
		t.Errorf("Expected 4 sounds, got %d", p.TotalSounds)
	}
}

func TestPhonemicAnalyzeEmptyDefaults(t *testing.T) {
	for _, input := range []string{"", "   ", "123", "!!!"} {
		p := NewPhonemicAnalyzer().Analyze(input)
		if p.PlosiveRatio != 0.5 || p.VowelRatio != 0.5 || p.VoicingRatio != 0.5 {
			t.Errorf("Expected neutral ratios for %q, got plosive=%f vowel=%f voicing=%f",
				input, p.PlosiveRatio, p.VowelRatio, p.VoicingRatio)
		}
		if p.PhonemicQuality != 50 {
			t.Errorf("Expected neutral quality 50 for %q, got %f", input, p.PhonemicQuality)
		}
		if p.TotalSounds != 0 {
			t.Errorf("Expected 0 sounds for %q, got %d", input, p.TotalSounds)
		}
	}
}

func TestPhonemicInitialAndFinalPlosive(t *testing.T) {
	p := NewPhonemicAnalyzer().Analyze("Tank")
	if !p.InitialIsPlosive {
		t.Error("Expected 'Tank' to open with a plosive")
	}
	if !p.FinalIsPlosive {
		t.Error("Expected 'Tank' to end with a plosive")
	}
	if p.InitialImpact != 90 {
		t.Errorf("Expected plosive initial impact 90, got %f", p.InitialImpact)
	}
}

func TestScanClusters(t *testing.T) {
	tests := []struct {
		word    string
		count   int
		longest int
	}{
		{"strong", 2, 3},
		{"zeus", 0, 0},
		{"chubb", 2, 2},
		{"ohio", 0, 0},
	}

	for _, test := range tests {
		count, longest := scanClusters(test.word)
		if count != test.count || longest != test.longest {
			t.Errorf("scanClusters(%q) = (%d, %d), expected (%d, %d)",
				test.word, count, longest, test.count, test.longest)
		}
	}
}

func TestHasAlliteration(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"Peter Parker", true},
		{"Nick Chubb", false},
		{"Zeus", false},
		{"big bad bob", true},
	}

	for _, test := range tests {
		if got := hasAlliteration(test.text); got != test.expected {
			t.Errorf("hasAlliteration(%q) = %t, expected %t", test.text, got, test.expected)
		}
	}
}

func TestPhonemicScoresInRange(t *testing.T) {
	names := []string{"Zeus", "Nick Chubb", "Derrick Henry", "x", "Tua Tagovailoa"}
	a := NewPhonemicAnalyzer()
	for _, name := range names {
		p := a.Analyze(name)
		if p.PhonemicQuality < 0 || p.PhonemicQuality > 100 {
			t.Errorf("PhonemicQuality out of range for %q: %f", name, p.PhonemicQuality)
		}
		if p.Sonority < 0 || p.Sonority > 100 {
			t.Errorf("Sonority out of range for %q: %f", name, p.Sonority)
		}
	}
}
