package analysis

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"namesake/internal/errors"
)

// RegressionResult is an ordinary-least-squares screen over selected features
type RegressionResult struct {
	FeatureKeys  []string           `json:"feature_keys"`
	Coefficients map[string]float64 `json:"coefficients"`
	Intercept    float64            `json:"intercept"`
	RSquared     float64            `json:"r_squared"`
	SampleSize   int                `json:"sample_size"`
}

// OLSScreen fits outcome on the named feature columns of m with an intercept.
// Requires more observations than predictors; a singular design matrix is an
// error, not a panic.
func OLSScreen(m *FeatureMatrix, featureKeys []string, outcome []float64) (*RegressionResult, error) {
	n := len(outcome)
	k := len(featureKeys)
	if n != m.N {
		return nil, errors.New(errors.CodeAnalysisFailed, "outcome length does not match matrix rows")
	}
	if k == 0 {
		return nil, errors.New(errors.CodeAnalysisFailed, "no feature keys supplied")
	}
	if n <= k+1 {
		return nil, errors.New(errors.CodeAnalysisFailed, "not enough observations for regression")
	}
	for _, key := range featureKeys {
		if m.Column(key) == nil {
			return nil, errors.New(errors.CodeAnalysisFailed, "unknown feature key: "+key)
		}
	}

	design := mat.NewDense(n, k+1, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j, key := range featureKeys {
			design.Set(i, j+1, m.Columns[key][i])
		}
	}
	y := mat.NewVecDense(n, append([]float64(nil), outcome...))

	var qr mat.QR
	qr.Factorize(design)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, errors.Wrap(err, "singular design matrix")
	}

	result := &RegressionResult{
		FeatureKeys:  featureKeys,
		Coefficients: make(map[string]float64, k),
		Intercept:    beta.AtVec(0),
		SampleSize:   n,
	}
	for j, key := range featureKeys {
		result.Coefficients[key] = beta.AtVec(j + 1)
	}

	// R-squared from the residual and total sums of squares
	meanY := stat.Mean(outcome, nil)
	ssTot := 0.0
	ssRes := 0.0
	for i := 0; i < n; i++ {
		pred := result.Intercept
		for _, key := range featureKeys {
			pred += result.Coefficients[key] * m.Columns[key][i]
		}
		ssRes += math.Pow(outcome[i]-pred, 2)
		ssTot += math.Pow(outcome[i]-meanY, 2)
	}
	if ssTot > 0 {
		result.RSquared = 1 - ssRes/ssTot
	}
	return result, nil
}
