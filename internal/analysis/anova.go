package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ANOVAResult is the outcome of a one-way analysis of variance
type ANOVAResult struct {
	FeatureKey string             `json:"feature_key"`
	FStatistic float64            `json:"f_statistic"`
	PValue     float64            `json:"p_value"`
	EtaSquared float64            `json:"eta_squared"`
	GroupMeans map[string]float64 `json:"group_means"`
	Groups     int                `json:"groups"`
	SampleSize int                `json:"sample_size"`
}

// OneWayANOVA tests whether feature means differ across named groups.
// Groups with fewer than two observations are dropped; fewer than two
// surviving groups yields the null result (F=0, p=1).
func OneWayANOVA(featureKey string, groups map[string][]float64) ANOVAResult {
	result := ANOVAResult{
		FeatureKey: featureKey,
		PValue:     1,
		GroupMeans: map[string]float64{},
	}

	var all []float64
	kept := map[string][]float64{}
	for name, vals := range groups {
		if len(vals) < 2 {
			continue
		}
		kept[name] = vals
		all = append(all, vals...)
		result.GroupMeans[name] = stat.Mean(vals, nil)
	}
	result.Groups = len(kept)
	result.SampleSize = len(all)
	if len(kept) < 2 {
		return result
	}

	grandMean := stat.Mean(all, nil)

	ssBetween := 0.0
	ssWithin := 0.0
	for name, vals := range kept {
		mean := result.GroupMeans[name]
		ssBetween += float64(len(vals)) * math.Pow(mean-grandMean, 2)
		for _, v := range vals {
			ssWithin += math.Pow(v-mean, 2)
		}
	}

	dfBetween := float64(len(kept) - 1)
	dfWithin := float64(len(all) - len(kept))
	if dfWithin <= 0 || ssWithin == 0 {
		return result
	}

	result.FStatistic = (ssBetween / dfBetween) / (ssWithin / dfWithin)
	fDist := distuv.F{D1: dfBetween, D2: dfWithin}
	result.PValue = clampP(1 - fDist.CDF(result.FStatistic))
	result.EtaSquared = ssBetween / (ssBetween + ssWithin)
	return result
}
