package analysis

import (
	"fmt"
	"math"
	"testing"

	"namesake/domain/features"
)

func linearMatrix(n int) (*FeatureMatrix, []float64) {
	entities := make([]features.ExtractedEntity, n)
	outcomes := make([]float64, n)
	for i := 0; i < n; i++ {
		x1 := float64(i)
		x2 := float64((i * 7) % 13)
		entities[i] = features.ExtractedEntity{
			Entity:   features.EntityDescriptor{Name: fmt.Sprintf("Entity %02d", i)},
			Features: features.FeatureVector{"harshness": x1, "memorability": x2},
		}
		outcomes[i] = 3 + 2*x1 - 0.5*x2
	}
	return NewFeatureMatrix(entities), outcomes
}

func TestOLSScreenRecoversCoefficients(t *testing.T) {
	m, outcomes := linearMatrix(30)

	result, err := OLSScreen(m, []string{"harshness", "memorability"}, outcomes)
	if err != nil {
		t.Fatalf("Expected clean fit, got error: %v", err)
	}
	if math.Abs(result.Intercept-3) > 1e-6 {
		t.Errorf("Expected intercept 3, got %f", result.Intercept)
	}
	if math.Abs(result.Coefficients["harshness"]-2) > 1e-6 {
		t.Errorf("Expected harshness coefficient 2, got %f", result.Coefficients["harshness"])
	}
	if math.Abs(result.Coefficients["memorability"]+0.5) > 1e-6 {
		t.Errorf("Expected memorability coefficient -0.5, got %f", result.Coefficients["memorability"])
	}
	if result.RSquared < 0.999999 {
		t.Errorf("Expected R-squared of 1 on exact linear data, got %f", result.RSquared)
	}
	if result.SampleSize != 30 {
		t.Errorf("Expected sample size 30, got %d", result.SampleSize)
	}
}

func TestOLSScreenErrors(t *testing.T) {
	m, outcomes := linearMatrix(30)

	if _, err := OLSScreen(m, []string{"harshness"}, outcomes[:10]); err == nil {
		t.Error("Expected error when outcome length does not match matrix rows")
	}
	if _, err := OLSScreen(m, nil, outcomes); err == nil {
		t.Error("Expected error for empty feature key list")
	}
	if _, err := OLSScreen(m, []string{"harshness", "unknown"}, outcomes); err == nil {
		t.Error("Expected error for unknown feature key")
	}

	tiny, tinyOutcomes := linearMatrix(3)
	if _, err := OLSScreen(tiny, []string{"harshness", "memorability"}, tinyOutcomes); err == nil {
		t.Error("Expected error when observations do not exceed predictors")
	}
}
