package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ScreenResult is the outcome of testing one feature against the outcome
type ScreenResult struct {
	FeatureKey string  `json:"feature_key"`
	Method     string  `json:"method"`
	EffectSize float64 `json:"effect_size"`
	PValue     float64 `json:"p_value"`
	QValue     float64 `json:"q_value"`
	SampleSize int     `json:"sample_size"`
	Signal     string  `json:"signal"`
}

// Screen is one statistical test applied feature-by-feature against an outcome
type Screen interface {
	Name() string
	Analyze(feature, outcome []float64) (effect, pValue float64, ok bool)
}

// ============================================================================
// PEARSON
// ============================================================================

// PearsonScreen detects linear association
type PearsonScreen struct{}

func (PearsonScreen) Name() string { return "pearson" }

// Analyze computes Pearson's r and its two-tailed t-approximation p-value
func (PearsonScreen) Analyze(feature, outcome []float64) (float64, float64, bool) {
	if len(feature) != len(outcome) || len(feature) < 3 {
		return 0, 1, false
	}
	r := stat.Correlation(feature, outcome, nil)
	if math.IsNaN(r) {
		return 0, 1, false
	}
	return r, correlationPValue(r, len(feature)), true
}

// ============================================================================
// SPEARMAN
// ============================================================================

// SpearmanScreen detects monotonic association via rank correlation
type SpearmanScreen struct{}

func (SpearmanScreen) Name() string { return "spearman" }

func (SpearmanScreen) Analyze(feature, outcome []float64) (float64, float64, bool) {
	if len(feature) != len(outcome) || len(feature) < 3 {
		return 0, 1, false
	}
	rho := stat.Correlation(ranks(feature), ranks(outcome), nil)
	if math.IsNaN(rho) {
		return 0, 1, false
	}
	return rho, correlationPValue(rho, len(feature)), true
}

// ============================================================================
// WELCH T-TEST
// ============================================================================

// WelchScreen compares feature means across a binary outcome split
type WelchScreen struct{}

func (WelchScreen) Name() string { return "welch_ttest" }

// Analyze splits feature by the binary outcome and runs Welch's t-test.
// Non-binary outcomes fall back to a median split.
func (WelchScreen) Analyze(feature, outcome []float64) (float64, float64, bool) {
	if len(feature) != len(outcome) || len(feature) < 4 {
		return 0, 1, false
	}
	g1, g2 := splitGroups(feature, outcome)
	if len(g1) < 2 || len(g2) < 2 {
		return 0, 1, false
	}

	m1, m2 := stat.Mean(g1, nil), stat.Mean(g2, nil)
	v1, v2 := stat.Variance(g1, nil), stat.Variance(g2, nil)
	n1, n2 := float64(len(g1)), float64(len(g2))

	se := math.Sqrt(v1/n1 + v2/n2)
	if se == 0 {
		return 0, 1, false
	}
	t := (m1 - m2) / se

	// Welch-Satterthwaite degrees of freedom
	num := math.Pow(v1/n1+v2/n2, 2)
	den := math.Pow(v1/n1, 2)/(n1-1) + math.Pow(v2/n2, 2)/(n2-1)
	df := num / math.Max(den, 1e-12)

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := 2 * (1 - tDist.CDF(math.Abs(t)))

	// Cohen's d on the pooled standard deviation
	pooled := math.Sqrt((v1 + v2) / 2)
	d := 0.0
	if pooled > 0 {
		d = (m1 - m2) / pooled
	}
	return d, clampP(p), true
}

// ============================================================================
// SHARED HELPERS
// ============================================================================

// correlationPValue converts r to a two-tailed p-value via the t transform
func correlationPValue(r float64, n int) float64 {
	if math.Abs(r) >= 1 {
		return 0
	}
	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clampP(2 * (1 - tDist.CDF(math.Abs(t))))
}

// ranks assigns average ranks, handling ties
func ranks(data []float64) []float64 {
	n := len(data)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return data[idx[a]] < data[idx[b]] })

	out := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j+1 < n && data[idx[j+1]] == data[idx[i]] {
			j++
		}
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}

// splitGroups splits values by a binary grouping variable, or by its median
// when the variable is not binary
func splitGroups(values, groups []float64) ([]float64, []float64) {
	unique := map[float64]bool{}
	for _, g := range groups {
		if !math.IsNaN(g) {
			unique[g] = true
		}
	}
	if len(unique) == 2 {
		var lo float64
		first := true
		for g := range unique {
			if first || g < lo {
				lo = g
				first = false
			}
		}
		var g1, g2 []float64
		for i, g := range groups {
			if g == lo {
				g1 = append(g1, values[i])
			} else {
				g2 = append(g2, values[i])
			}
		}
		return g1, g2
	}

	sorted := append([]float64(nil), groups...)
	sort.Float64s(sorted)
	median := sorted[len(sorted)/2]
	var g1, g2 []float64
	for i, g := range groups {
		if g <= median {
			g1 = append(g1, values[i])
		} else {
			g2 = append(g2, values[i])
		}
	}
	return g1, g2
}

// classifySignal buckets an absolute effect size into a readable label
func classifySignal(absEffect float64) string {
	switch {
	case absEffect >= 0.5:
		return "very_strong"
	case absEffect >= 0.3:
		return "strong"
	case absEffect >= 0.1:
		return "moderate"
	default:
		return "weak"
	}
}

func clampP(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
