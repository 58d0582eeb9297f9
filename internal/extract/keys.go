package extract

// Feature key registry for the entity extractor. The extractor emits every
// key below on every call, regardless of input completeness; only values vary.
// Category slices are ordered for stable reporting, and the concatenation of
// all twelve categories is the canonical 138-key contract.

var linguisticBaseKeys = []string{
	"syllables",
	"harshness",
	"memorability",
	"name_length",
	"vowel_ratio",
	"consonant_clusters",
	"uniqueness",
	"pronounceability",
	"harsh_sound_count",
	"name_word_count",
}

var linguisticAdvancedKeys = []string{
	"phonemic_quality",
	"sonority",
	"initial_impact",
	"final_impact",
	"voicing_balance",
	"semantic_score",
	"metaphor_score",
	"imagery_strength",
	"symbolism_score",
	"strength_score",
	"prosodic_flow",
	"catchiness",
}

var phoneticMicroKeys = []string{
	"plosive_count",
	"plosive_ratio",
	"fricative_count",
	"fricative_ratio",
	"nasal_count",
	"liquid_count",
	"front_vowel_count",
	"back_vowel_count",
	"cluster_count",
	"max_cluster_length",
	"initial_plosive",
	"final_plosive",
}

var positionKeys = []string{
	"position_contact_level",
	"position_precision_level",
	"position_power_level",
	"position_recognition_level",
	"position_optimal_harshness",
	"position_formula_match",
	"position_harshness_gap",
	"position_is_skill",
	"position_is_power",
	"position_known",
}

var opponentKeys = []string{
	"harshness_differential",
	"memorability_differential",
	"syllable_differential",
	"uniqueness_differential",
	"name_length_differential",
	"phonetic_dominance",
	"opponent_harshness",
	"opponent_memorability",
	"opponent_syllables",
	"opponent_present",
}

var temporalKeys = []string{
	"years_in_league",
	"experience_factor",
	"is_veteran",
	"is_rookie",
	"career_stage",
	"games_played",
	"recent_form",
	"form_volatility",
	"last_game_score",
	"season_avg",
}

var contextKeys = []string{
	"is_primetime",
	"is_playoff",
	"is_championship",
	"is_rivalry",
	"is_national_broadcast",
	"is_home_game",
	"broadcast_reach",
	"weather_severity",
	"altitude",
	"pressure_index",
	"stakes_score",
	"spotlight_score",
}

var mediaKeys = []string{
	"media_buzz",
	"market_size_mult",
	"media_amplification",
	"names_on_jersey",
	"ad_count",
	"jersey_crowding",
	"is_contract_year",
	"contract_year_buzz",
}

var marketBasicKeys = []string{
	"line",
	"opening_line",
	"line_movement",
	"over_odds",
	"under_odds",
	"odds_skew",
	"public_percentage",
	"time_to_game",
	"total_bets",
	"market_present",
}

var marketAdvancedKeys = []string{
	"line_volatility",
	"avg_clv",
	"sharp_percentage",
	"sharp_public_gap",
	"reverse_line_movement",
	"steam_move",
	"public_fade_signal",
	"market_confidence",
}

var interactionKeys = []string{
	"harsh_short",
	"harsh_memorable",
	"harsh_precision_conflict",
	"power_position_synergy",
	"memorable_unique",
	"pronounceable_memorable",
	"harsh_playoff",
	"harsh_primetime",
	"buzz_harsh",
	"market_memorable",
	"experience_harsh",
	"stakes_harsh",
	"clusters_per_syllable",
	"harsh_to_vowel",
	"unique_short",
	"dominance_pressure",
	"form_harsh",
	"line_harsh",
	"sharp_harsh",
	"spotlight_memorable",
}

var metaKeys = []string{
	"composite_nominative_score",
	"name_power_index",
	"distinctiveness_index",
	"linguistic_balance",
	"phonetic_semantic_gap",
	"overall_sound_quality",
	"brand_strength",
	"identity_clarity",
	"nominative_intensity",
	"profile_completeness",
	"harshness_centered",
	"memorability_centered",
	"harsh_mem_balance",
	"syllable_economy",
	"letter_economy",
	"context_intensity",
}

// AllFeatureKeys returns the full declared entity feature key set in category order
func AllFeatureKeys() []string {
	keys := make([]string, 0, 138)
	for _, group := range [][]string{
		linguisticBaseKeys,
		linguisticAdvancedKeys,
		phoneticMicroKeys,
		positionKeys,
		opponentKeys,
		temporalKeys,
		contextKeys,
		mediaKeys,
		marketBasicKeys,
		marketAdvancedKeys,
		interactionKeys,
		metaKeys,
	} {
		keys = append(keys, group...)
	}
	return keys
}
