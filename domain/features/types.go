package features

import (
	"namesake/domain/core"
)

// ============================================================================
// FEATURE VECTORS
// ============================================================================

// FeatureVector is a flat mapping from feature name to numeric value.
// Boolean features are encoded as 0.0/1.0.
// INVARIANT: an extractor always emits its full declared key set; values vary
// with input completeness, keys never do.
type FeatureVector map[string]float64

// Get returns the value for key, or def when the key is absent
func (fv FeatureVector) Get(key string, def float64) float64 {
	if v, ok := fv[key]; ok {
		return v
	}
	return def
}

// Merge copies all entries of other into fv and returns fv
func (fv FeatureVector) Merge(other FeatureVector) FeatureVector {
	for k, v := range other {
		fv[k] = v
	}
	return fv
}

// Has reports whether key is present
func (fv FeatureVector) Has(key string) bool {
	_, ok := fv[key]
	return ok
}

// EnsembleVector is a FeatureVector computed from an (entity, label) pair.
// Produced fresh per (entity, label, interaction) triple; never mutated after creation.
type EnsembleVector = FeatureVector

// ============================================================================
// ENUMS
// ============================================================================

// LabelType selects the label-specific sub-extractor
type LabelType string

const (
	LabelTeam       LabelType = "team"
	LabelVenue      LabelType = "venue"
	LabelPlay       LabelType = "play"
	LabelProp       LabelType = "prop"
	LabelGenre      LabelType = "genre"
	LabelInstrument LabelType = "instrument"
	LabelGeneral    LabelType = "general"
)

// InteractionType tags an ensemble computation with the pairing kind
type InteractionType string

const (
	InteractionTeam    InteractionType = "team"
	InteractionVenue   InteractionType = "venue"
	InteractionPlay    InteractionType = "play"
	InteractionProp    InteractionType = "prop"
	InteractionGeneral InteractionType = "general"
)

// ============================================================================
// INPUT DESCRIPTORS (explicit structs replacing the free-form maps upstream
// systems pass around; zero values mean "absent" and degrade to documented
// defaults inside the extractors)
// ============================================================================

// LinguisticFeatures holds pre-computed linguistic sub-scores for an entity name.
// Zero-valued fields are treated as absent and default inside the extractor
// (harshness 50, memorability 50, syllables 2.5, pronounceability 50,
// uniqueness 50, vowel ratio 0.4, length falls back to the raw name length).
type LinguisticFeatures struct {
	Syllables         float64 `json:"syllables,omitempty"`
	Harshness         float64 `json:"harshness,omitempty"`
	Memorability      float64 `json:"memorability,omitempty"`
	Length            float64 `json:"length,omitempty"`
	VowelRatio        float64 `json:"vowel_ratio,omitempty"`
	ConsonantClusters float64 `json:"consonant_clusters,omitempty"`
	Uniqueness        float64 `json:"uniqueness,omitempty"`
	Pronounceability  float64 `json:"pronounceability,omitempty"`
}

// EntityDescriptor describes a person-like entity (player, academic, channel host)
type EntityDescriptor struct {
	ID             core.EntityID      `json:"id,omitempty"`
	Name           string             `json:"name"`
	Linguistic     LinguisticFeatures `json:"linguistic_features"`
	Position       string             `json:"position,omitempty"`
	YearsInLeague  float64            `json:"years_in_league,omitempty"`
	MediaBuzz      float64            `json:"media_buzz,omitempty"`
	MarketSizeMult float64            `json:"market_size_mult,omitempty"`
	IsContractYear bool               `json:"is_contract_year,omitempty"`
	PerfTrend      float64            `json:"performance_trend,omitempty"`
	GamesPlayed    float64            `json:"games_played,omitempty"`
}

// GameContext describes the situational context a prediction is made in
type GameContext struct {
	Sport               string  `json:"sport,omitempty"`
	IsPrimetime         bool    `json:"is_primetime,omitempty"`
	IsPlayoff           bool    `json:"is_playoff,omitempty"`
	IsChampionship      bool    `json:"is_championship,omitempty"`
	IsRivalry           bool    `json:"is_rivalry,omitempty"`
	IsNationalBroadcast bool    `json:"is_national_broadcast,omitempty"`
	IsHomeGame          bool    `json:"is_home_game,omitempty"`
	BroadcastReach      float64 `json:"broadcast_reach,omitempty"`
	WeatherSeverity     float64 `json:"weather_severity,omitempty"`
	Altitude            float64 `json:"altitude,omitempty"`
	TeamName            string  `json:"team_name,omitempty"`
	VenueName           string  `json:"venue_name,omitempty"`
	PropType            string  `json:"prop_type,omitempty"`
	NamesOnJersey       float64 `json:"names_on_jersey,omitempty"`
	AdCount             float64 `json:"ad_count,omitempty"`
}

// MarketData describes betting-market context for an entity
type MarketData struct {
	Line             float64 `json:"line,omitempty"`
	OpeningLine      float64 `json:"opening_line,omitempty"`
	OverOdds         float64 `json:"over_odds,omitempty"`
	UnderOdds        float64 `json:"under_odds,omitempty"`
	PublicPercentage float64 `json:"public_percentage,omitempty"`
	TimeToGame       float64 `json:"time_to_game,omitempty"`
	LineVolatility   float64 `json:"line_volatility,omitempty"`
	AvgCLV           float64 `json:"avg_clv,omitempty"`
	TotalBets        float64 `json:"total_bets,omitempty"`
	SharpPercentage  float64 `json:"sharp_percentage,omitempty"`
}

// PerformanceHistory holds recent outcome history for temporal features
type PerformanceHistory struct {
	RecentScores []float64 `json:"recent_scores,omitempty"`
	SeasonAvg    float64   `json:"season_avg,omitempty"`
	LastGame     float64   `json:"last_game,omitempty"`
}

// ============================================================================
// PREDICTION OUTPUT
// ============================================================================

// PredictionResult is the final scalar prediction plus its full breakdown.
// Created once per Predict call; read-only afterward.
type PredictionResult struct {
	RunID                core.RunID     `json:"run_id"`
	EntityName           string         `json:"entity_name"`
	Prediction           float64        `json:"prediction"`
	BasePrediction       float64        `json:"base_prediction"`
	TeamAmplifier        float64        `json:"team_amplifier"`
	VenueAmplifier       float64        `json:"venue_amplifier"`
	PropAmplifier        float64        `json:"prop_amplifier"`
	OverallAlignment     float64        `json:"overall_alignment"`
	EnsembleBoost        float64        `json:"ensemble_boost"`
	SportAmplifier       float64        `json:"sport_amplifier"`
	HomeFieldBoost       float64        `json:"home_field_boost"`
	VisibilityModifier   float64        `json:"visibility_modifier"`
	CrowdingPenalty      float64        `json:"crowding_penalty"`
	BoostPercentage      float64        `json:"boost_percentage"`
	EntityFeatureCount   int            `json:"entity_feature_count"`
	EnsembleFeatureCount int            `json:"ensemble_feature_count"`
	ComputedAt           core.Timestamp `json:"computed_at"`
}

// ExtractedEntity pairs an entity descriptor with its computed feature vector,
// the shape persisted by repositories and exported to feature matrices.
type ExtractedEntity struct {
	Entity     EntityDescriptor `json:"entity"`
	Features   FeatureVector    `json:"features"`
	ComputedAt core.Timestamp   `json:"computed_at"`
}
