package analyzers

import "namesake/domain/linguistics"

// Character-class membership sets used by the primitive analyzers. These are
// read-only constants and safe for concurrent use.
const (
	plosives    = "ptkbdg"
	fricatives  = "fvszh"
	nasals      = "mn"
	liquids     = "lr"
	glides      = "wy"
	frontVowels = "ie"
	backVowels  = "ou"
	vowels      = "aeiouy"
	voiced      = "bdgvzjmnlrwy"
)

// metaphorWords maps each metaphor category to its curated word set.
// Matching walks metaphorPriority in order and the first category with a hit
// wins, so the priority slice is part of the contract, not an optimization.
var metaphorWords = map[linguistics.MetaphorCategory][]string{
	linguistics.MetaphorPower: {
		"king", "rex", "max", "titan", "thor", "zeus", "duke", "kahn",
		"stone", "steel", "iron", "power", "force", "titus", "magnus",
		"hammer", "tank", "bear", "wolf", "lion", "hawk", "storm",
	},
	linguistics.MetaphorJourney: {
		"walker", "rider", "trek", "path", "way", "cross", "bridge",
		"river", "ford", "wells", "brooks", "lane", "road", "miles",
		"journey", "quest", "scout", "ranger",
	},
	linguistics.MetaphorGrowth: {
		"green", "bloom", "rose", "flora", "grove", "wood", "branch",
		"root", "seed", "spring", "vine", "leaf", "garden", "field",
		"meadow", "moss",
	},
	linguistics.MetaphorSpeed: {
		"swift", "quick", "flash", "bolt", "dash", "speed", "rocket",
		"jet", "zip", "blaze", "rush", "racer", "comet", "arrow",
	},
	linguistics.MetaphorTech: {
		"tech", "byte", "chip", "cyber", "neo", "nova", "volt", "x",
		"zero", "matrix", "pixel", "laser", "quantum", "turbo",
	},
	linguistics.MetaphorNatural: {
		"sky", "rain", "snow", "cloud", "sun", "moon", "star", "dawn",
		"frost", "ocean", "lake", "hill", "dale", "vale", "stone",
		"winters", "summers",
	},
}

// metaphorPriority is the fixed resolution order for metaphor matching
var metaphorPriority = []linguistics.MetaphorCategory{
	linguistics.MetaphorPower,
	linguistics.MetaphorJourney,
	linguistics.MetaphorGrowth,
	linguistics.MetaphorSpeed,
	linguistics.MetaphorTech,
	linguistics.MetaphorNatural,
}

// metaphorScores assigns each category its association strength
var metaphorScores = map[linguistics.MetaphorCategory]float64{
	linguistics.MetaphorPower:   85,
	linguistics.MetaphorSpeed:   75,
	linguistics.MetaphorJourney: 70,
	linguistics.MetaphorTech:    70,
	linguistics.MetaphorGrowth:  65,
	linguistics.MetaphorNatural: 60,
	linguistics.MetaphorNeutral: 50,
}

var positiveWords = []string{
	"joy", "gold", "bright", "grace", "love", "hope", "lux", "sol",
	"bliss", "happy", "lucky", "win", "sunny", "angel", "bella",
	"amor", "felix", "clara",
}

var negativeWords = []string{
	"grim", "dark", "bane", "doom", "pain", "kill", "mort", "grave",
	"ash", "sorrow", "shade", "gloom", "hex", "dread",
}

var concreteWords = []string{
	"stone", "rock", "tree", "bear", "wolf", "hill", "river", "wood",
	"iron", "steel", "field", "house", "bridge", "hammer", "brook",
	"ford", "smith", "baker", "mason", "carter", "fisher",
}

var abstractWords = []string{
	"truth", "faith", "honor", "justice", "spirit", "soul", "mind",
	"dream", "fate", "destiny", "virtue", "wisdom",
}

// uncommonLetters are the low-frequency English letters used by uniqueness scoring
const uncommonLetters = "jkqxz"
