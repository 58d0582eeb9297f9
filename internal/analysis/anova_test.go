package analysis

import (
	"math"
	"testing"
)

func TestOneWayANOVASeparatedGroups(t *testing.T) {
	groups := map[string][]float64{
		"RB": {10, 11, 12, 10, 11},
		"QB": {30, 31, 32, 30, 31},
		"WR": {50, 51, 52, 50, 51},
	}

	result := OneWayANOVA("harshness", groups)
	if result.Groups != 3 {
		t.Errorf("Expected 3 groups, got %d", result.Groups)
	}
	if result.SampleSize != 15 {
		t.Errorf("Expected 15 observations, got %d", result.SampleSize)
	}
	if result.PValue > 0.001 {
		t.Errorf("Expected tiny p-value for well separated groups, got %f", result.PValue)
	}
	if result.EtaSquared < 0.95 {
		t.Errorf("Expected eta-squared near 1, got %f", result.EtaSquared)
	}
	if math.Abs(result.GroupMeans["RB"]-10.8) > 1e-9 {
		t.Errorf("Expected RB mean 10.8, got %f", result.GroupMeans["RB"])
	}
}

func TestOneWayANOVADropsSmallGroups(t *testing.T) {
	groups := map[string][]float64{
		"RB": {10, 11, 12},
		"QB": {30, 31, 32},
		"K":  {99}, // below the minimum group size
	}

	result := OneWayANOVA("harshness", groups)
	if result.Groups != 2 {
		t.Errorf("Expected the singleton group to be dropped, got %d groups", result.Groups)
	}
	if _, ok := result.GroupMeans["K"]; ok {
		t.Error("Dropped group should not contribute a mean")
	}
}

func TestOneWayANOVANullResult(t *testing.T) {
	cases := []map[string][]float64{
		{},
		{"RB": {10, 11}},
		{"RB": {10, 11}, "QB": {12}},
	}
	for i, groups := range cases {
		result := OneWayANOVA("harshness", groups)
		if result.FStatistic != 0 || result.PValue != 1 {
			t.Errorf("Case %d: expected null result (F=0, p=1), got F=%f p=%f",
				i, result.FStatistic, result.PValue)
		}
	}
}

func TestOneWayANOVAZeroWithinVariance(t *testing.T) {
	groups := map[string][]float64{
		"RB": {10, 10, 10},
		"QB": {30, 30, 30},
	}
	result := OneWayANOVA("harshness", groups)
	if result.FStatistic != 0 || result.PValue != 1 {
		t.Errorf("Expected null result for zero within-group variance, got F=%f p=%f",
			result.FStatistic, result.PValue)
	}
}
