package extract

import (
	"math"
	"strings"

	"github.com/montanaflynn/stats"

	"namesake/domain/features"
	"namesake/internal/analyzers"
)

// ComprehensiveFeatureExtractor turns an entity descriptor plus optional
// opponent/context/market/history inputs into the fixed 138-key feature
// vector. Every category emits its full key set on every call; missing
// optional inputs zero-fill their category. Stateless and safe for
// concurrent use.
type ComprehensiveFeatureExtractor struct {
	phonemic  *analyzers.PhonemicAnalyzer
	semantic  *analyzers.SemanticAnalyzer
	symbolism *analyzers.SoundSymbolismAnalyzer
	prosodic  *analyzers.ProsodicAnalyzer
}

// NewComprehensiveFeatureExtractor creates an entity feature extractor
func NewComprehensiveFeatureExtractor() *ComprehensiveFeatureExtractor {
	return &ComprehensiveFeatureExtractor{
		phonemic:  analyzers.NewPhonemicAnalyzer(),
		semantic:  analyzers.NewSemanticAnalyzer(),
		symbolism: analyzers.NewSoundSymbolismAnalyzer(),
		prosodic:  analyzers.NewProsodicAnalyzer(),
	}
}

// ExtractAllFeatures computes all twelve feature categories for entity.
// opponent, market, and history may be nil; their categories default rather
// than shrink. Never returns an error for well-typed input.
func (e *ComprehensiveFeatureExtractor) ExtractAllFeatures(
	entity features.EntityDescriptor,
	opponent *features.EntityDescriptor,
	ctx features.GameContext,
	market *features.MarketData,
	history *features.PerformanceHistory,
) features.FeatureVector {
	fv := make(features.FeatureVector, 138)
	ling := e.resolveLinguistics(entity)

	e.addLinguisticBase(fv, entity, ling)
	e.addLinguisticAdvanced(fv, entity)
	e.addPhoneticMicro(fv, entity)
	e.addPositionFeatures(fv, entity, ling)
	e.addOpponentFeatures(fv, opponent, ling)
	e.addTemporalFeatures(fv, entity, history)
	e.addContextFeatures(fv, ctx)
	e.addMediaFeatures(fv, entity, ctx)
	e.addMarketBasic(fv, market)
	e.addMarketAdvanced(fv, market)
	e.addInteractionTerms(fv, ling)
	e.addMetaFeatures(fv, ling)

	return fv
}

// resolvedLinguistics carries linguistic sub-scores after default substitution
type resolvedLinguistics struct {
	syllables        float64
	harshness        float64
	memorability     float64
	length           float64
	vowelRatio       float64
	clusters         float64
	uniqueness       float64
	pronounceability float64
}

// resolveLinguistics applies the documented defaults: explicit descriptor
// values win; absent values are derived from the raw name; an empty name
// falls back to the neutral constants (harshness 50, syllables 2.5, ...).
func (e *ComprehensiveFeatureExtractor) resolveLinguistics(entity features.EntityDescriptor) resolvedLinguistics {
	name := entity.Name
	hasName := strings.TrimSpace(name) != ""
	r := resolvedLinguistics{
		syllables:        entity.Linguistic.Syllables,
		harshness:        entity.Linguistic.Harshness,
		memorability:     entity.Linguistic.Memorability,
		length:           entity.Linguistic.Length,
		vowelRatio:       entity.Linguistic.VowelRatio,
		clusters:         entity.Linguistic.ConsonantClusters,
		uniqueness:       entity.Linguistic.Uniqueness,
		pronounceability: entity.Linguistic.Pronounceability,
	}

	if r.syllables == 0 {
		if hasName {
			total := 0
			for _, w := range strings.Fields(name) {
				total += analyzers.CountSyllables(w)
			}
			r.syllables = float64(total)
		} else {
			r.syllables = 2.5
		}
	}
	if r.harshness == 0 {
		if hasName {
			r.harshness = personNameHarshness(name)
		} else {
			r.harshness = 50
		}
	}
	if r.memorability == 0 {
		if hasName {
			r.memorability = personNameMemorability(name)
		} else {
			r.memorability = 50
		}
	}
	if r.length == 0 {
		if hasName {
			r.length = float64(len(lettersOnly(name)))
		} else {
			r.length = 6
		}
	}
	if r.vowelRatio == 0 {
		if hasName {
			r.vowelRatio = e.phonemic.Analyze(name).VowelRatio
		} else {
			r.vowelRatio = 0.4
		}
	}
	if r.clusters == 0 && hasName {
		r.clusters = float64(e.phonemic.Analyze(name).ClusterCount)
	}
	if r.uniqueness == 0 {
		if hasName {
			r.uniqueness = personNameUniqueness(name)
		} else {
			r.uniqueness = 50
		}
	}
	if r.pronounceability == 0 {
		if hasName {
			r.pronounceability = e.prosodic.Analyze(name).Flow
		} else {
			r.pronounceability = 50
		}
	}
	return r
}

func (e *ComprehensiveFeatureExtractor) addLinguisticBase(fv features.FeatureVector, entity features.EntityDescriptor, r resolvedLinguistics) {
	fv["syllables"] = r.syllables
	fv["harshness"] = r.harshness
	fv["memorability"] = r.memorability
	fv["name_length"] = r.length
	fv["vowel_ratio"] = clamp01(r.vowelRatio)
	fv["consonant_clusters"] = r.clusters
	fv["uniqueness"] = r.uniqueness
	fv["pronounceability"] = r.pronounceability
	fv["harsh_sound_count"] = float64(harshSoundCount(entity.Name))
	fv["name_word_count"] = float64(len(strings.Fields(entity.Name)))
}

func (e *ComprehensiveFeatureExtractor) addLinguisticAdvanced(fv features.FeatureVector, entity features.EntityDescriptor) {
	phonetic := e.phonemic.Analyze(entity.Name)
	semantic := e.semantic.Analyze(entity.Name)
	symbolism := e.symbolism.Analyze(entity.Name)
	prosodic := e.prosodic.Analyze(entity.Name)

	fv["phonemic_quality"] = phonetic.PhonemicQuality
	fv["sonority"] = phonetic.Sonority
	fv["initial_impact"] = phonetic.InitialImpact
	fv["final_impact"] = phonetic.FinalImpact
	fv["voicing_balance"] = clamp100((1 - 2*math.Abs(phonetic.VoicingRatio-0.5)) * 100)
	fv["semantic_score"] = semantic.Score
	fv["metaphor_score"] = semantic.MetaphorScore
	fv["imagery_strength"] = semantic.ImageryStrength
	fv["symbolism_score"] = symbolism.Score
	fv["strength_score"] = symbolism.StrengthScore
	fv["prosodic_flow"] = prosodic.Flow
	fv["catchiness"] = prosodic.Catchiness
}

func (e *ComprehensiveFeatureExtractor) addPhoneticMicro(fv features.FeatureVector, entity features.EntityDescriptor) {
	p := e.phonemic.Analyze(entity.Name)
	fv["plosive_count"] = float64(p.PlosiveCount)
	fv["plosive_ratio"] = clamp01(p.PlosiveRatio)
	fv["fricative_count"] = float64(p.FricativeCount)
	fv["fricative_ratio"] = clamp01(p.FricativeRatio)
	fv["nasal_count"] = float64(p.NasalCount)
	fv["liquid_count"] = float64(p.LiquidCount)
	fv["front_vowel_count"] = float64(p.FrontVowelCount)
	fv["back_vowel_count"] = float64(p.BackVowelCount)
	fv["cluster_count"] = float64(p.ClusterCount)
	fv["max_cluster_length"] = float64(p.MaxClusterLength)
	fv["initial_plosive"] = b2f(p.InitialIsPlosive)
	fv["final_plosive"] = b2f(p.FinalIsPlosive)
}

func (e *ComprehensiveFeatureExtractor) addPositionFeatures(fv features.FeatureVector, entity features.EntityDescriptor, r resolvedLinguistics) {
	traits, known := lookupPosition(entity.Position)
	fv["position_contact_level"] = traits.Contact
	fv["position_precision_level"] = traits.Precision
	fv["position_power_level"] = traits.Power
	fv["position_recognition_level"] = traits.Recognition
	fv["position_optimal_harshness"] = traits.OptimalHarshness

	gap := math.Abs(r.harshness - traits.OptimalHarshness)
	match := 100 - gap
	if match < 0 {
		match = 0
	}
	fv["position_formula_match"] = match
	fv["position_harshness_gap"] = gap
	fv["position_is_skill"] = b2f(traits.Precision >= 80)
	fv["position_is_power"] = b2f(traits.Power >= 85)
	fv["position_known"] = b2f(known)
}

func (e *ComprehensiveFeatureExtractor) addOpponentFeatures(fv features.FeatureVector, opponent *features.EntityDescriptor, r resolvedLinguistics) {
	if opponent == nil {
		for _, k := range opponentKeys {
			fv[k] = 0
		}
		return
	}

	opp := e.resolveLinguistics(*opponent)
	fv["harshness_differential"] = r.harshness - opp.harshness
	fv["memorability_differential"] = r.memorability - opp.memorability
	fv["syllable_differential"] = r.syllables - opp.syllables
	fv["uniqueness_differential"] = r.uniqueness - opp.uniqueness
	fv["name_length_differential"] = r.length - opp.length
	// Dominance blends the signed differentials into one signed score
	fv["phonetic_dominance"] = (r.harshness-opp.harshness)*0.5 +
		(r.memorability-opp.memorability)*0.3 +
		(r.uniqueness-opp.uniqueness)*0.2
	fv["opponent_harshness"] = opp.harshness
	fv["opponent_memorability"] = opp.memorability
	fv["opponent_syllables"] = opp.syllables
	fv["opponent_present"] = 1
}

func (e *ComprehensiveFeatureExtractor) addTemporalFeatures(fv features.FeatureVector, entity features.EntityDescriptor, history *features.PerformanceHistory) {
	years := entity.YearsInLeague
	fv["years_in_league"] = years
	fv["experience_factor"] = clamp01(years / 10)
	fv["is_veteran"] = b2f(years >= 8)
	fv["is_rookie"] = b2f(years <= 1)
	fv["career_stage"] = clamp100(years / 12 * 100)
	fv["games_played"] = entity.GamesPlayed

	if history == nil {
		fv["recent_form"] = 0
		fv["form_volatility"] = 0
		fv["last_game_score"] = 0
		fv["season_avg"] = 0
		return
	}
	if len(history.RecentScores) > 0 {
		mean, err := stats.Mean(history.RecentScores)
		if err == nil {
			fv["recent_form"] = mean
		} else {
			fv["recent_form"] = 0
		}
		sd, err := stats.StandardDeviation(history.RecentScores)
		if err == nil {
			fv["form_volatility"] = sd
		} else {
			fv["form_volatility"] = 0
		}
	} else {
		fv["recent_form"] = 0
		fv["form_volatility"] = 0
	}
	fv["last_game_score"] = history.LastGame
	fv["season_avg"] = history.SeasonAvg
}

func (e *ComprehensiveFeatureExtractor) addContextFeatures(fv features.FeatureVector, ctx features.GameContext) {
	fv["is_primetime"] = b2f(ctx.IsPrimetime)
	fv["is_playoff"] = b2f(ctx.IsPlayoff)
	fv["is_championship"] = b2f(ctx.IsChampionship)
	fv["is_rivalry"] = b2f(ctx.IsRivalry)
	fv["is_national_broadcast"] = b2f(ctx.IsNationalBroadcast)
	fv["is_home_game"] = b2f(ctx.IsHomeGame)
	fv["broadcast_reach"] = ctx.BroadcastReach
	fv["weather_severity"] = ctx.WeatherSeverity
	fv["altitude"] = ctx.Altitude

	// stakes_score lands below after pressure_index, so the zero fallback in
	// this read always applies. Kept that way deliberately.
	fv["pressure_index"] = clamp100(b2f(ctx.IsPlayoff)*35 + b2f(ctx.IsPrimetime)*20 +
		b2f(ctx.IsRivalry)*15 + fv.Get("stakes_score", 0)*0.3)
	fv["stakes_score"] = clamp100(b2f(ctx.IsPlayoff)*30 + b2f(ctx.IsChampionship)*40 +
		b2f(ctx.IsRivalry)*15 + b2f(ctx.IsNationalBroadcast)*15)
	fv["spotlight_score"] = clamp100(b2f(ctx.IsPrimetime)*40 + b2f(ctx.IsNationalBroadcast)*30 +
		clamp01(ctx.BroadcastReach/100)*30)
}

func (e *ComprehensiveFeatureExtractor) addMediaFeatures(fv features.FeatureVector, entity features.EntityDescriptor, ctx features.GameContext) {
	fv["media_buzz"] = entity.MediaBuzz
	fv["market_size_mult"] = entity.MarketSizeMult
	fv["media_amplification"] = entity.MediaBuzz * entity.MarketSizeMult
	fv["names_on_jersey"] = ctx.NamesOnJersey
	fv["ad_count"] = ctx.AdCount
	fv["jersey_crowding"] = clamp100(ctx.NamesOnJersey * 4)
	fv["is_contract_year"] = b2f(entity.IsContractYear)
	fv["contract_year_buzz"] = b2f(entity.IsContractYear) * entity.MediaBuzz
}

func (e *ComprehensiveFeatureExtractor) addMarketBasic(fv features.FeatureVector, market *features.MarketData) {
	if market == nil {
		for _, k := range marketBasicKeys {
			fv[k] = 0
		}
		return
	}
	fv["line"] = market.Line
	fv["opening_line"] = market.OpeningLine
	fv["line_movement"] = market.Line - market.OpeningLine
	fv["over_odds"] = market.OverOdds
	fv["under_odds"] = market.UnderOdds
	fv["odds_skew"] = market.OverOdds - market.UnderOdds
	fv["public_percentage"] = market.PublicPercentage
	fv["time_to_game"] = market.TimeToGame
	fv["total_bets"] = market.TotalBets
	fv["market_present"] = 1
}

func (e *ComprehensiveFeatureExtractor) addMarketAdvanced(fv features.FeatureVector, market *features.MarketData) {
	if market == nil {
		for _, k := range marketAdvancedKeys {
			fv[k] = 0
		}
		return
	}
	movement := market.Line - market.OpeningLine
	fv["line_volatility"] = market.LineVolatility
	fv["avg_clv"] = market.AvgCLV
	fv["sharp_percentage"] = market.SharpPercentage
	fv["sharp_public_gap"] = market.SharpPercentage - market.PublicPercentage
	// Line dropping into heavy public over-money marks reverse movement
	fv["reverse_line_movement"] = b2f(movement < 0 && market.PublicPercentage > 60)
	fv["steam_move"] = b2f(math.Abs(movement) >= 1.5 && market.LineVolatility >= 1.0)
	fv["public_fade_signal"] = math.Max(0, market.PublicPercentage-70)
	fv["market_confidence"] = clamp100(100 - market.LineVolatility*10 + market.SharpPercentage*0.2)
}

// addInteractionTerms emits the explicit second-order products and ratios.
// These are deliberately redundant with what a downstream model could learn;
// they feed interpretable linear/tree models.
func (e *ComprehensiveFeatureExtractor) addInteractionTerms(fv features.FeatureVector, r resolvedLinguistics) {
	fv["harsh_short"] = r.harshness * (4 - r.syllables)
	fv["harsh_memorable"] = r.harshness * r.memorability / 100
	fv["harsh_precision_conflict"] = r.harshness * fv.Get("position_precision_level", 60) / 100
	fv["power_position_synergy"] = r.harshness * fv.Get("position_power_level", 60) / 100
	fv["memorable_unique"] = r.memorability * r.uniqueness / 100
	fv["pronounceable_memorable"] = r.pronounceability * r.memorability / 100
	fv["harsh_playoff"] = r.harshness * fv.Get("is_playoff", 0)
	fv["harsh_primetime"] = r.harshness * fv.Get("is_primetime", 0)
	fv["buzz_harsh"] = fv.Get("media_buzz", 0) * r.harshness / 100
	fv["market_memorable"] = fv.Get("market_size_mult", 0) * r.memorability
	fv["experience_harsh"] = fv.Get("experience_factor", 0) * r.harshness
	fv["stakes_harsh"] = fv.Get("stakes_score", 0) * r.harshness / 100
	fv["clusters_per_syllable"] = r.clusters / math.Max(r.syllables, 1)
	fv["harsh_to_vowel"] = r.harshness / math.Max(r.vowelRatio*100, 1)
	fv["unique_short"] = r.uniqueness * (4 - r.syllables)
	fv["dominance_pressure"] = fv.Get("phonetic_dominance", 0) * fv.Get("pressure_index", 0) / 100
	fv["form_harsh"] = fv.Get("recent_form", 0) * r.harshness / 100
	fv["line_harsh"] = fv.Get("line", 0) * r.harshness / 100
	fv["sharp_harsh"] = fv.Get("sharp_percentage", 0) * r.harshness / 100
	fv["spotlight_memorable"] = fv.Get("spotlight_score", 0) * r.memorability / 100
}

func (e *ComprehensiveFeatureExtractor) addMetaFeatures(fv features.FeatureVector, r resolvedLinguistics) {
	fv["composite_nominative_score"] = clamp100(r.harshness*0.30 + r.memorability*0.30 +
		r.uniqueness*0.20 + r.pronounceability*0.20)
	fv["name_power_index"] = clamp100(r.harshness*0.5 + fv.Get("strength_score", 50)*0.3 +
		fv.Get("initial_impact", 50)*0.2)
	fv["distinctiveness_index"] = clamp100(r.uniqueness*0.6 + fv.Get("symbolism_score", 50)*0.4)
	fv["linguistic_balance"] = clamp100(100 - math.Abs(r.harshness-r.memorability))
	fv["phonetic_semantic_gap"] = math.Abs(fv.Get("phonemic_quality", 50) - fv.Get("semantic_score", 50))
	fv["overall_sound_quality"] = clamp100(fv.Get("phonemic_quality", 50)*0.5 + fv.Get("prosodic_flow", 50)*0.5)
	fv["brand_strength"] = clamp100(r.memorability*0.4 + r.uniqueness*0.3 + fv.Get("catchiness", 50)*0.3)
	fv["identity_clarity"] = clamp100(r.pronounceability*0.5 + fv.Get("imagery_strength", 40)*0.5)
	fv["nominative_intensity"] = clamp100(r.harshness*0.4 + fv.Get("initial_impact", 50)*0.3 +
		fv.Get("final_impact", 50)*0.3)
	fv["profile_completeness"] = clamp100(fv.Get("market_present", 0)*40 +
		fv.Get("opponent_present", 0)*30 + 30)
	fv["harshness_centered"] = r.harshness - 50
	fv["memorability_centered"] = r.memorability - 50
	fv["harsh_mem_balance"] = (r.harshness + r.memorability) / 2
	fv["syllable_economy"] = clamp100((5 - r.syllables) * 25)
	fv["letter_economy"] = clamp100((14 - r.length) * 8)
	fv["context_intensity"] = clamp100(fv.Get("pressure_index", 0)*0.4 +
		fv.Get("stakes_score", 0)*0.3 + fv.Get("spotlight_score", 0)*0.3)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
