package testkit

import (
	"math/rand"

	"namesake/domain/features"
)

// RosterGeneratorConfig configures the synthetic roster generator
type RosterGeneratorConfig struct {
	EntityCount    int     `json:"entity_count"`
	Sport          string  `json:"sport"`
	HarshnessEdge  float64 `json:"harshness_edge"`
	NoiseStdDev    float64 `json:"noise_std_dev"`
	OutcomeBase    float64 `json:"outcome_base"`
	Seed           int64   `json:"seed"`
	IncludeOutcome bool    `json:"include_outcome"`
}

// DefaultRosterConfig returns sensible defaults for synthetic roster generation
func DefaultRosterConfig() RosterGeneratorConfig {
	return RosterGeneratorConfig{
		EntityCount:    200,
		Sport:          "football",
		HarshnessEdge:  0.4,
		NoiseStdDev:    8.0,
		OutcomeBase:    50.0,
		Seed:           42,
		IncludeOutcome: true,
	}
}

// RosterGenerator produces synthetic entity rosters with a planted
// harshness-outcome relationship. The outcome column is built as
// base + edge*(harshness-50) + gaussian noise, so downstream screens
// should recover a positive harshness signal at the default settings.
type RosterGenerator struct {
	config RosterGeneratorConfig
	rng    *rand.Rand
}

// NewRosterGenerator creates a new synthetic roster generator
func NewRosterGenerator(config RosterGeneratorConfig) *RosterGenerator {
	return &RosterGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the roster. The outcome slice is nil when
// IncludeOutcome is false.
func (g *RosterGenerator) Generate() ([]features.EntityDescriptor, []float64) {
	entities := make([]features.EntityDescriptor, 0, g.config.EntityCount)
	var outcomes []float64
	if g.config.IncludeOutcome {
		outcomes = make([]float64, 0, g.config.EntityCount)
	}

	for i := 0; i < g.config.EntityCount; i++ {
		name := g.randomName()
		harshness := clamp(30+g.rng.Float64()*55, 0, 100)
		memorability := clamp(35+g.rng.Float64()*45, 0, 100)
		syllables := float64(1 + g.rng.Intn(4))

		entity := features.EntityDescriptor{
			Name:     name,
			Position: g.randomPosition(),
			Linguistic: features.LinguisticFeatures{
				Syllables:         syllables,
				Harshness:         harshness,
				Memorability:      memorability,
				Length:            float64(len(name)),
				VowelRatio:        clamp(0.25+g.rng.Float64()*0.35, 0, 1),
				ConsonantClusters: float64(g.rng.Intn(3)),
				Uniqueness:        clamp(30+g.rng.Float64()*50, 0, 100),
				Pronounceability:  clamp(40+g.rng.Float64()*50, 0, 100),
			},
			YearsInLeague:  float64(g.rng.Intn(14)),
			MediaBuzz:      clamp(20+g.rng.Float64()*70, 0, 100),
			MarketSizeMult: 0.8 + g.rng.Float64()*0.7,
			IsContractYear: g.rng.Float64() < 0.18,
			GamesPlayed:    float64(8 + g.rng.Intn(9)),
		}
		entities = append(entities, entity)

		if g.config.IncludeOutcome {
			outcome := g.config.OutcomeBase +
				g.config.HarshnessEdge*(harshness-50) +
				g.rng.NormFloat64()*g.config.NoiseStdDev
			outcomes = append(outcomes, outcome)
		}
	}

	return entities, outcomes
}

var firstNames = []string{
	"Nick", "Derrick", "Zack", "Marcus", "Tua", "Lamar", "Aaron",
	"Kirk", "Baker", "Gus", "Rex", "Dak", "Jalen", "Moe", "Tyrod",
}

var lastNames = []string{
	"Chubb", "Henry", "Martin", "Smith", "Stroud", "Burrow", "Cook",
	"Barkley", "Jackson", "Kupp", "Diggs", "Puka", "Olave", "Hall",
}

func (g *RosterGenerator) randomName() string {
	return firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))]
}

func (g *RosterGenerator) randomPosition() string {
	positions := []string{"RB", "QB", "WR", "LB", "TE", "DE"}
	weights := []float64{0.25, 0.15, 0.25, 0.15, 0.1, 0.1}

	r := g.rng.Float64()
	cumulative := 0.0
	for i, weight := range weights {
		cumulative += weight
		if r <= cumulative {
			return positions[i]
		}
	}
	return positions[0]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
