package extract

import (
	"strings"

	"namesake/internal/analyzers"
)

// harshConsonants are the "hard" sounds the person-name harshness formula counts
const harshConsonants = "kgtdpbxz"

// lettersOnly lowercases text and strips everything but a-z
func lettersOnly(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// harshSoundCount counts hard consonants in a name
func harshSoundCount(name string) int {
	clean := lettersOnly(name)
	count := 0
	for i := 0; i < len(clean); i++ {
		if strings.IndexByte(harshConsonants, clean[i]) >= 0 {
			count++
		}
	}
	return count
}

// personNameHarshness scores a person name's hard-sound density. This formula
// is intentionally separate from the label extractor's harshness formula;
// the two are calibrated against different corpora and must not be unified.
func personNameHarshness(name string) float64 {
	clean := lettersOnly(name)
	if clean == "" {
		return 50
	}
	score := float64(harshSoundCount(name)) * 12
	score += float64(countClusters(clean)) * 8
	if strings.IndexByte("ptkbdg", clean[0]) >= 0 {
		score += 10
	}
	return clamp100(score)
}

// personNameMemorability rewards brevity, alliteration, and a 2-3 syllable sweet spot
func personNameMemorability(name string) float64 {
	clean := lettersOnly(name)
	if clean == "" {
		return 50
	}
	score := 50.0
	if len(clean) > 8 {
		score -= float64(len(clean)-8) * 2.5
	} else if len(clean) <= 6 {
		score += 8
	}

	words := strings.Fields(strings.ToLower(name))
	if len(words) >= 2 && words[0][0] == words[1][0] {
		score += 12
	}
	syllables := 0
	for _, w := range words {
		syllables += analyzers.CountSyllables(w)
	}
	if syllables == 2 || syllables == 3 {
		score += 8
	}
	return clamp100(score)
}

// personNameUniqueness rewards uncommon letters and low letter repetition
func personNameUniqueness(name string) float64 {
	clean := lettersOnly(name)
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
	return clamp100(ratio*55 + float64(uncommon)*12)
}

// countClusters counts consonant runs of length 2+
func countClusters(clean string) int {
	count := 0
	run := 0
	for i := 0; i <= len(clean); i++ {
		if i < len(clean) && isConsonantByte(clean[i]) {
			run++
			continue
		}
		if run >= 2 {
			count++
		}
		run = 0
	}
	return count
}

func isConsonantByte(c byte) bool {
	return c >= 'a' && c <= 'z' && strings.IndexByte("aeiou", c) < 0
}

// clamp100 clamps v to the canonical score range [0, 100]
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clamp01 clamps v to the canonical ratio range [0, 1]
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
