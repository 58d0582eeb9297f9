package analysis

import (
	"sort"

	"namesake/domain/features"
)

// FeatureMatrix is a column-oriented view over a batch of extracted feature
// vectors, the shape the statistical screens consume.
type FeatureMatrix struct {
	Keys    []string
	Columns map[string][]float64
	Names   []string
	N       int
}

// NewFeatureMatrix builds a matrix from extracted entities. The key set is
// the union of all vectors' keys, sorted for deterministic column order;
// vectors missing a key contribute 0 for that cell.
func NewFeatureMatrix(entities []features.ExtractedEntity) *FeatureMatrix {
	keySet := map[string]bool{}
	for _, e := range entities {
		for k := range e.Features {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	m := &FeatureMatrix{
		Keys:    keys,
		Columns: make(map[string][]float64, len(keys)),
		Names:   make([]string, len(entities)),
		N:       len(entities),
	}
	for _, k := range keys {
		col := make([]float64, len(entities))
		for i, e := range entities {
			col[i] = e.Features.Get(k, 0)
		}
		m.Columns[k] = col
	}
	for i, e := range entities {
		m.Names[i] = e.Entity.Name
	}
	return m
}

// Column returns the values for key, or nil when the key is unknown
func (m *FeatureMatrix) Column(key string) []float64 {
	return m.Columns[key]
}

// Row reconstructs the i-th row in key order
func (m *FeatureMatrix) Row(i int) []float64 {
	row := make([]float64, len(m.Keys))
	for j, k := range m.Keys {
		row[j] = m.Columns[k][i]
	}
	return row
}
