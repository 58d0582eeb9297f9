package analyzers

import (
	"strings"

	"github.com/montanaflynn/stats"

	"namesake/domain/linguistics"
)

// iambicPrefixes are unstressed first syllables that suggest an iambic foot
var iambicPrefixes = []string{"a", "be", "de", "re", "la", "le", "ma", "mc", "o'"}

// ProsodicAnalyzer maps a text string to rhythm, stress, and flow scores
type ProsodicAnalyzer struct{}

// NewProsodicAnalyzer creates a new prosodic analyzer
func NewProsodicAnalyzer() *ProsodicAnalyzer {
	return &ProsodicAnalyzer{}
}

// Analyze computes the prosodic profile of text. Empty input returns defaults.
func (a *ProsodicAnalyzer) Analyze(text string) linguistics.ProsodicProfile {
	words := cleanWords(text)
	if len(words) == 0 {
		return defaultProsodicProfile()
	}

	counts := make([]float64, len(words))
	totalSyllables := 0
	for i, w := range words {
		s := CountSyllables(w)
		counts[i] = float64(s)
		totalSyllables += s
	}

	p := linguistics.ProsodicProfile{
		SyllableCount:    totalSyllables,
		SyllablesPerWord: float64(totalSyllables) / float64(maxInt(len(words), 1)),
	}

	// Regular rhythm means consistent syllable counts across words
	if len(counts) > 1 {
		variance, err := stats.Variance(counts)
		if err != nil {
			variance = 0
		}
		p.RhythmRegularity = clamp100(100 - variance*40)
	} else {
		p.RhythmRegularity = 70
	}

	p.Stress = classifyStress(words[0])
	p.Flow = flowScore(letters(text))
	p.VowelHarmony = vowelHarmony(letters(text))

	repetition := 0.0
	if hasAlliteration(text) {
		repetition = 15
	}
	p.Catchiness = clamp100(p.RhythmRegularity*0.4 + p.Flow*0.3 + 30 + repetition - p.SyllablesPerWord*5)

	vowelCount := 0
	clean := letters(text)
	for i := 0; i < len(clean); i++ {
		if isVowel(clean[i]) {
			vowelCount++
		}
	}
	vowelRatio := float64(vowelCount) / float64(maxInt(len(clean), 1))
	p.Singability = clamp100(vowelRatio*160 + p.VowelHarmony*0.2)

	p.Score = clamp100(p.RhythmRegularity*0.25 + p.Flow*0.30 + p.Catchiness*0.25 + p.Singability*0.20)
	return p
}

// CountSyllables estimates syllables in a single word via vowel-run counting
// with a silent-e adjustment. Always returns at least 1 for non-empty words.
func CountSyllables(word string) int {
	w := letters(word)
	if w == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i]) || (w[i] == 'y' && i > 0 && !isVowel(w[i-1]))
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	// Silent final e: "stone" is one syllable, not two
	if count > 1 && strings.HasSuffix(w, "e") && len(w) >= 2 && !isVowel(w[len(w)-2]) {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// classifyStress heuristically assigns the dominant metrical foot of a word
func classifyStress(word string) linguistics.StressPattern {
	if CountSyllables(word) < 2 {
		return linguistics.StressUnknown
	}
	for _, pre := range iambicPrefixes {
		if strings.HasPrefix(word, pre) && len(word) > len(pre)+1 {
			return linguistics.StressIambic
		}
	}
	return linguistics.StressTrochaic
}

// flowScore rewards vowel/consonant alternation and penalizes heavy clusters
func flowScore(clean string) float64 {
	if len(clean) < 2 {
		return 50
	}
	alternations := 0
	for i := 1; i < len(clean); i++ {
		if isVowel(clean[i]) != isVowel(clean[i-1]) {
			alternations++
		}
	}
	alternationRatio := float64(alternations) / float64(len(clean)-1)

	score := 40 + alternationRatio*50
	_, longest := scanClusters(clean)
	if longest >= 3 {
		score -= float64(longest-2) * 10
	}
	return clamp100(score)
}

// vowelHarmony measures how strongly vowels cluster into one front/back class
func vowelHarmony(clean string) float64 {
	front := 0
	back := 0
	for i := 0; i < len(clean); i++ {
		if inClass(clean[i], frontVowels) {
			front++
		}
		if inClass(clean[i], backVowels) {
			back++
		}
	}
	total := front + back
	if total == 0 {
		return 50
	}
	dominant := front
	if back > dominant {
		dominant = back
	}
	return clamp100(float64(dominant) / float64(total) * 100)
}

func defaultProsodicProfile() linguistics.ProsodicProfile {
	return linguistics.ProsodicProfile{
		Stress:           linguistics.StressUnknown,
		SyllablesPerWord: 0,
		RhythmRegularity: 50,
		Flow:             50,
		VowelHarmony:     50,
		Catchiness:       50,
		Singability:      50,
		Score:            50,
	}
}
