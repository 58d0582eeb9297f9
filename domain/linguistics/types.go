package linguistics

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// MetaphorCategory classifies the dominant conceptual metaphor of a name.
// Matching priority is fixed: power > journey > growth > speed > tech > natural.
type MetaphorCategory string

const (
	MetaphorPower   MetaphorCategory = "power"
	MetaphorJourney MetaphorCategory = "journey"
	MetaphorGrowth  MetaphorCategory = "growth"
	MetaphorSpeed   MetaphorCategory = "speed"
	MetaphorTech    MetaphorCategory = "tech"
	MetaphorNatural MetaphorCategory = "natural"
	MetaphorNeutral MetaphorCategory = "neutral"
)

// Valence classifies emotional loading of a name
type Valence string

const (
	ValencePositive Valence = "positive"
	ValenceNegative Valence = "negative"
	ValenceNeutral  Valence = "neutral"
)

// Concreteness classifies how tangible the imagery of a name is
type Concreteness string

const (
	ConcretenessConcrete Concreteness = "concrete"
	ConcretenessAbstract Concreteness = "abstract"
	ConcretenessNeutral  Concreteness = "neutral"
)

// ShapeClass is the bouba/kiki classification of a name's sound texture
type ShapeClass string

const (
	ShapeBouba    ShapeClass = "bouba"
	ShapeKiki     ShapeClass = "kiki"
	ShapeBalanced ShapeClass = "balanced"
)

// Association is a three-way psycholinguistic association bucket
type Association string

const (
	AssociationHigh    Association = "high"
	AssociationLow     Association = "low"
	AssociationNeutral Association = "neutral"
)

// StressPattern classifies the dominant metrical foot of a name
type StressPattern string

const (
	StressTrochaic StressPattern = "trochaic"
	StressIambic   StressPattern = "iambic"
	StressUnknown  StressPattern = "unknown"
)

// ============================================================================
// ANALYZER PROFILES (Pure value objects, one per primitive analyzer)
// ============================================================================

// PhoneticProfile captures sound-class structure of a text.
// INVARIANTS:
// - All *Ratio fields are in [0.0, 1.0]
// - All score fields (InitialImpact, FinalImpact, Sonority, PhonemicQuality) are in [0, 100]
// - Count fields are never negative
type PhoneticProfile struct {
	PlosiveCount     int     `json:"plosive_count"`
	FricativeCount   int     `json:"fricative_count"`
	NasalCount       int     `json:"nasal_count"`
	LiquidCount      int     `json:"liquid_count"`
	FrontVowelCount  int     `json:"front_vowel_count"`
	BackVowelCount   int     `json:"back_vowel_count"`
	TotalSounds      int     `json:"total_sounds"`
	PlosiveRatio     float64 `json:"plosive_ratio"`
	FricativeRatio   float64 `json:"fricative_ratio"`
	VowelRatio       float64 `json:"vowel_ratio"`
	FrontVowelRatio  float64 `json:"front_vowel_ratio"`
	VoicingRatio     float64 `json:"voicing_ratio"`
	InitialIsPlosive bool    `json:"initial_is_plosive"`
	FinalIsPlosive   bool    `json:"final_is_plosive"`
	InitialImpact    float64 `json:"initial_impact"`
	FinalImpact      float64 `json:"final_impact"`
	ClusterCount     int     `json:"cluster_count"`
	MaxClusterLength int     `json:"max_cluster_length"`
	HasAlliteration  bool    `json:"has_alliteration"`
	Sonority         float64 `json:"sonority"`
	PhonemicQuality  float64 `json:"phonemic_quality"`
}

// SemanticProfile captures lookup-table semantic associations of a text
type SemanticProfile struct {
	PrimaryMetaphor   MetaphorCategory `json:"primary_metaphor"`
	MetaphorScore     float64          `json:"metaphor_score"`
	Valence           Valence          `json:"valence"`
	ValenceScore      float64          `json:"valence_score"`
	Concreteness      Concreteness     `json:"concreteness"`
	ConcretenessScore float64          `json:"concreteness_score"`
	ImageryStrength   float64          `json:"imagery_strength"`
	Score             float64          `json:"score"` // Composite semantic score [0, 100]
}

// SoundSymbolismProfile captures bouba/kiki and related sound-symbol associations.
// Each association pairs an enum bucket with a numeric score in [0, 100].
type SoundSymbolismProfile struct {
	Shape           ShapeClass  `json:"shape"`
	RoundnessScore  float64     `json:"roundness_score"`
	SharpnessScore  float64     `json:"sharpness_score"`
	Size            Association `json:"size"`
	SizeScore       float64     `json:"size_score"`
	Speed           Association `json:"speed"`
	SpeedScore      float64     `json:"speed_score"`
	Brightness      Association `json:"brightness"`
	BrightnessScore float64     `json:"brightness_score"`
	Strength        Association `json:"strength"`
	StrengthScore   float64     `json:"strength_score"`
	Score           float64     `json:"score"` // Composite symbolism score [0, 100]
}

// ProsodicProfile captures rhythm and flow characteristics of a text.
// All score fields are in [0, 100].
type ProsodicProfile struct {
	Stress           StressPattern `json:"stress"`
	SyllableCount    int           `json:"syllable_count"`
	SyllablesPerWord float64       `json:"syllables_per_word"`
	RhythmRegularity float64       `json:"rhythm_regularity"`
	Flow             float64       `json:"flow"`
	VowelHarmony     float64       `json:"vowel_harmony"`
	Catchiness       float64       `json:"catchiness"`
	Singability      float64       `json:"singability"`
	Score            float64       `json:"score"` // Composite prosodic score [0, 100]
}

// DeepAnalysis aggregates all four primitive profiles into one composite view
type DeepAnalysis struct {
	Name           string                `json:"name"`
	DeepScore      float64               `json:"deep_score"`
	Phonetic       PhoneticProfile       `json:"phonetic"`
	Semantic       SemanticProfile       `json:"semantic"`
	SoundSymbolism SoundSymbolismProfile `json:"sound_symbolism"`
	Prosodic       ProsodicProfile       `json:"prosodic"`
	Insights       []string              `json:"insights"`
}
