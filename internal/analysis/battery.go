package analysis

import (
	"context"
	"math"
	"sort"

	"namesake/internal"
)

// Battery runs every screen over every feature column against an outcome,
// then applies Benjamini-Hochberg FDR correction within each screen family.
type Battery struct {
	screens []Screen
	logger  *internal.Logger
}

// NewBattery creates a battery with the standard three screens
func NewBattery() *Battery {
	return &Battery{
		screens: []Screen{PearsonScreen{}, SpearmanScreen{}, WelchScreen{}},
		logger:  internal.DefaultLogger,
	}
}

// RunAll tests each feature column of m against outcome with every screen.
// Screens for a single feature run concurrently; results come back in
// deterministic (key, method) order.
func (b *Battery) RunAll(ctx context.Context, m *FeatureMatrix, outcome []float64) []ScreenResult {
	type indexed struct {
		result ScreenResult
		pos    int
	}

	total := len(m.Keys) * len(b.screens)
	resultChan := make(chan indexed, total)

	for ki, key := range m.Keys {
		col := m.Columns[key]
		for si, screen := range b.screens {
			go func(key string, col []float64, screen Screen, pos int) {
				effect, p, ok := screen.Analyze(col, outcome)
				if !ok {
					effect, p = 0, 1
				}
				resultChan <- indexed{
					result: ScreenResult{
						FeatureKey: key,
						Method:     screen.Name(),
						EffectSize: effect,
						PValue:     p,
						SampleSize: len(col),
						Signal:     classifySignal(math.Abs(effect)),
					},
					pos: pos,
				}
			}(key, col, screen, ki*len(b.screens)+si)
		}
	}

	results := make([]ScreenResult, total)
	for i := 0; i < total; i++ {
		r := <-resultChan
		results[r.pos] = r.result
	}

	b.applyFDR(results)
	b.logger.Debug("battery complete: %d tests over %d features", total, len(m.Keys))
	return results
}

// TopFindings returns the results with q-value below alpha, strongest first
func TopFindings(results []ScreenResult, alpha float64) []ScreenResult {
	var top []ScreenResult
	for _, r := range results {
		if r.QValue < alpha {
			top = append(top, r)
		}
	}
	sort.Slice(top, func(i, j int) bool {
		return math.Abs(top[i].EffectSize) > math.Abs(top[j].EffectSize)
	})
	return top
}

// applyFDR computes Benjamini-Hochberg q-values per screen family in place
func (b *Battery) applyFDR(results []ScreenResult) {
	families := map[string][]int{}
	for i, r := range results {
		families[r.Method] = append(families[r.Method], i)
	}
	for _, idx := range families {
		m := len(idx)
		order := append([]int(nil), idx...)
		sort.Slice(order, func(a, b int) bool {
			return results[order[a]].PValue < results[order[b]].PValue
		})

		// Walk from the largest p down so q-values stay monotone
		prev := 1.0
		for rank := m - 1; rank >= 0; rank-- {
			i := order[rank]
			q := results[i].PValue * float64(m) / float64(rank+1)
			if q > prev {
				q = prev
			}
			prev = q
			results[i].QValue = q
		}
	}
}
