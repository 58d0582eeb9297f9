package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"namesake/internal/errors"
)

// ClusterResult is the outcome of k-means over standardized feature rows
type ClusterResult struct {
	K           int         `json:"k"`
	Assignments []int       `json:"assignments"`
	Sizes       []int       `json:"sizes"`
	Centroids   [][]float64 `json:"centroids"`
	Inertia     float64     `json:"inertia"`
	Iterations  int         `json:"iterations"`
}

const kmeansMaxIterations = 100

// KMeans clusters the rows of m into k groups over the named feature columns.
// Initialization is deterministic (evenly spaced rows of the input), so
// repeated runs on the same matrix produce identical assignments.
func KMeans(m *FeatureMatrix, featureKeys []string, k int) (*ClusterResult, error) {
	if k < 2 {
		return nil, errors.New(errors.CodeAnalysisFailed, "k must be at least 2")
	}
	if m.N < k {
		return nil, errors.New(errors.CodeAnalysisFailed, "fewer rows than clusters")
	}
	for _, key := range featureKeys {
		if m.Column(key) == nil {
			return nil, errors.New(errors.CodeAnalysisFailed, "unknown feature key: "+key)
		}
	}

	rows := standardizedRows(m, featureKeys)
	dims := len(featureKeys)

	// Deterministic seeding: evenly spaced input rows
	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		src := rows[c*m.N/k]
		centroids[c] = append([]float64(nil), src...)
	}

	assignments := make([]int, m.N)
	result := &ClusterResult{K: k, Assignments: assignments}

	for iter := 0; iter < kmeansMaxIterations; iter++ {
		changed := false
		for i, row := range rows {
			best := 0
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				d := floats.Distance(row, centroid, 2)
				if d < bestDist {
					bestDist = d
					best = c
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		result.Iterations = iter + 1
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; empty clusters keep their previous position
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, row := range rows {
			floats.Add(sums[assignments[i]], row)
			counts[assignments[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			for d := range sums[c] {
				centroids[c][d] = sums[c][d] / float64(counts[c])
			}
		}
	}

	result.Centroids = centroids
	result.Sizes = make([]int, k)
	for i := range rows {
		result.Sizes[assignments[i]]++
		result.Inertia += math.Pow(floats.Distance(rows[i], centroids[assignments[i]], 2), 2)
	}
	return result, nil
}

// standardizedRows z-scores each selected column, then materializes rows
func standardizedRows(m *FeatureMatrix, featureKeys []string) [][]float64 {
	cols := make([][]float64, len(featureKeys))
	for j, key := range featureKeys {
		src := m.Columns[key]
		mean := floats.Sum(src) / float64(len(src))
		variance := 0.0
		for _, v := range src {
			variance += (v - mean) * (v - mean)
		}
		sd := math.Sqrt(variance / float64(len(src)))
		col := make([]float64, len(src))
		for i, v := range src {
			if sd > 0 {
				col[i] = (v - mean) / sd
			}
		}
		cols[j] = col
	}

	rows := make([][]float64, m.N)
	for i := range rows {
		row := make([]float64, len(featureKeys))
		for j := range featureKeys {
			row[j] = cols[j][i]
		}
		rows[i] = row
	}
	return rows
}
