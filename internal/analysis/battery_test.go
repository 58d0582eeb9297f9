package analysis

import (
	"context"
	"fmt"
	"math"
	"sort"
	"testing"

	"namesake/domain/core"
	"namesake/domain/features"
)

// syntheticEntities builds a batch with one feature strongly tied to the
// outcome and one deliberately uninformative feature.
func syntheticEntities(n int) ([]features.ExtractedEntity, []float64) {
	entities := make([]features.ExtractedEntity, n)
	outcomes := make([]float64, n)
	for i := 0; i < n; i++ {
		signal := float64(i)
		noise := float64(i % 2)
		entities[i] = features.ExtractedEntity{
			Entity:     features.EntityDescriptor{Name: fmt.Sprintf("Player %02d", i)},
			Features:   features.FeatureVector{"signal": signal, "noise": noise},
			ComputedAt: core.Now(),
		}
		outcomes[i] = 2*signal + 1
	}
	return entities, outcomes
}

func TestBatteryDetectsPlantedSignal(t *testing.T) {
	entities, outcomes := syntheticEntities(40)
	m := NewFeatureMatrix(entities)

	results := NewBattery().RunAll(context.Background(), m, outcomes)
	if len(results) != 6 {
		t.Fatalf("Expected 6 results (2 features x 3 screens), got %d", len(results))
	}

	findings := TopFindings(results, 0.05)
	foundSignal := false
	for _, f := range findings {
		if f.FeatureKey == "noise" && f.Method == "pearson" {
			t.Error("Uninformative feature should not survive the Pearson screen")
		}
		if f.FeatureKey == "signal" && f.Method == "pearson" {
			foundSignal = true
			if f.EffectSize < 0.99 {
				t.Errorf("Expected near-perfect correlation for the planted signal, got %f", f.EffectSize)
			}
		}
	}
	if !foundSignal {
		t.Error("Expected the planted signal to survive FDR correction")
	}
}

func TestBatteryResultsDeterministicOrder(t *testing.T) {
	entities, outcomes := syntheticEntities(20)
	m := NewFeatureMatrix(entities)
	battery := NewBattery()

	first := battery.RunAll(context.Background(), m, outcomes)
	second := battery.RunAll(context.Background(), m, outcomes)

	for i := range first {
		if first[i].FeatureKey != second[i].FeatureKey || first[i].Method != second[i].Method {
			t.Fatalf("Result order differs at %d: %s/%s vs %s/%s",
				i, first[i].FeatureKey, first[i].Method, second[i].FeatureKey, second[i].Method)
		}
		if first[i].PValue != second[i].PValue {
			t.Errorf("Non-deterministic p-value for %s/%s", first[i].FeatureKey, first[i].Method)
		}
	}
}

func TestFDRQValuesMonotone(t *testing.T) {
	entities, outcomes := syntheticEntities(30)
	m := NewFeatureMatrix(entities)
	results := NewBattery().RunAll(context.Background(), m, outcomes)

	families := map[string][]ScreenResult{}
	for _, r := range results {
		families[r.Method] = append(families[r.Method], r)
	}
	for method, rs := range families {
		sort.Slice(rs, func(i, j int) bool { return rs[i].PValue < rs[j].PValue })
		for i := 1; i < len(rs); i++ {
			if rs[i].QValue < rs[i-1].QValue {
				t.Errorf("%s: q-values not monotone in p order: %f after %f",
					method, rs[i].QValue, rs[i-1].QValue)
			}
		}
		for _, r := range rs {
			if r.QValue < r.PValue-1e-12 {
				t.Errorf("%s/%s: q-value %f below p-value %f", method, r.FeatureKey, r.QValue, r.PValue)
			}
			if r.QValue < 0 || r.QValue > 1 {
				t.Errorf("%s/%s: q-value out of range: %f", method, r.FeatureKey, r.QValue)
			}
		}
	}
}

func TestTopFindingsSortedByEffect(t *testing.T) {
	results := []ScreenResult{
		{FeatureKey: "a", Method: "pearson", EffectSize: 0.3, QValue: 0.01},
		{FeatureKey: "b", Method: "pearson", EffectSize: -0.9, QValue: 0.02},
		{FeatureKey: "c", Method: "pearson", EffectSize: 0.5, QValue: 0.2},
	}

	top := TopFindings(results, 0.05)
	if len(top) != 2 {
		t.Fatalf("Expected 2 findings under alpha, got %d", len(top))
	}
	if top[0].FeatureKey != "b" || top[1].FeatureKey != "a" {
		t.Errorf("Expected findings sorted by absolute effect, got %s then %s",
			top[0].FeatureKey, top[1].FeatureKey)
	}
}

func TestFeatureMatrixShape(t *testing.T) {
	entities, _ := syntheticEntities(10)
	m := NewFeatureMatrix(entities)

	if m.N != 10 {
		t.Errorf("Expected 10 rows, got %d", m.N)
	}
	if len(m.Keys) != 2 {
		t.Errorf("Expected 2 columns, got %d", len(m.Keys))
	}
	if !sort.StringsAreSorted(m.Keys) {
		t.Error("Expected sorted column keys")
	}
	if m.Column("missing") != nil {
		t.Error("Unknown key must return a nil column")
	}

	row := m.Row(3)
	if len(row) != 2 {
		t.Fatalf("Expected row of width 2, got %d", len(row))
	}
	// Keys sort as [noise, signal]
	if row[1] != 3 {
		t.Errorf("Expected signal value 3 in row 3, got %f", row[1])
	}
	if math.IsNaN(row[0]) {
		t.Error("Row values must be finite")
	}
}
