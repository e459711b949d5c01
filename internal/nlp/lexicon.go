package nlp

// valence is one lexicon entry: polarity in [-1, 1] and subjectivity
// in [0, 1].
type valence struct {
	polarity     float64
	subjectivity float64
}

// negations flip the polarity of the next scored word. Contraction
// stems (don, isn, ...) appear because word tokenization splits
// "don't" into "don" and "t".
var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "without": true, "hardly": true, "scarcely": true,
	"don": true, "doesn": true, "didn": true, "isn": true, "wasn": true,
	"aren": true, "weren": true, "won": true, "wouldn": true, "couldn": true,
	"shouldn": true, "hasn": true, "haven": true, "hadn": true, "ain": true,
}

// boosters scale the next scored word's polarity.
var boosters = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "absolutely": 1.5,
	"completely": 1.4, "totally": 1.4, "utterly": 1.5, "highly": 1.3,
	"especially": 1.2, "particularly": 1.2, "incredibly": 1.5,
	"remarkably": 1.3, "truly": 1.3, "deeply": 1.3, "so": 1.2,
	"quite": 1.1, "rather": 0.9, "somewhat": 0.7, "slightly": 0.6,
	"fairly": 0.8, "barely": 0.5, "marginally": 0.6, "mildly": 0.7,
}

var lexicon = map[string]valence{
	// strong positive
	"excellent": {0.9, 0.9}, "outstanding": {0.9, 0.9}, "fantastic": {0.9, 0.9},
	"wonderful": {0.9, 0.9}, "amazing": {0.8, 0.9}, "superb": {0.9, 0.9},
	"brilliant": {0.9, 0.9}, "perfect": {1.0, 1.0}, "best": {1.0, 0.3},
	"love": {0.8, 0.6}, "delightful": {0.8, 0.9}, "exceptional": {0.8, 0.8},
	"magnificent": {0.9, 0.9}, "marvelous": {0.9, 0.9}, "terrific": {0.8, 0.9},

	// positive
	"good": {0.7, 0.6}, "great": {0.8, 0.75}, "nice": {0.6, 1.0},
	"happy": {0.8, 1.0}, "glad": {0.5, 1.0}, "pleased": {0.6, 0.8},
	"positive": {0.3, 0.3}, "helpful": {0.5, 0.5}, "useful": {0.3, 0.3},
	"effective": {0.5, 0.6}, "efficient": {0.4, 0.5}, "reliable": {0.5, 0.5},
	"valuable": {0.5, 0.6}, "beneficial": {0.5, 0.6}, "successful": {0.6, 0.6},
	"strong": {0.4, 0.4}, "clear": {0.3, 0.4}, "fair": {0.4, 0.6},
	"safe": {0.5, 0.5}, "easy": {0.4, 0.8}, "improved": {0.4, 0.5},
	"improvement": {0.4, 0.5}, "better": {0.5, 0.5}, "right": {0.3, 0.5},
	"correct": {0.4, 0.4}, "win": {0.6, 0.6}, "benefit": {0.4, 0.4},
	"enjoy": {0.6, 0.7}, "like": {0.4, 0.5}, "welcome": {0.5, 0.6},
	"favorable": {0.5, 0.6}, "appropriate": {0.3, 0.4}, "adequate": {0.2, 0.4},
	"sound": {0.3, 0.4}, "robust": {0.4, 0.5}, "smooth": {0.4, 0.5},

	// weak positive
	"okay": {0.3, 0.6}, "ok": {0.3, 0.6}, "fine": {0.3, 0.5},
	"decent": {0.3, 0.5}, "reasonable": {0.3, 0.4}, "acceptable": {0.2, 0.4},

	// weak negative
	"questionable": {-0.3, 0.6}, "unclear": {-0.2, 0.4}, "slow": {-0.3, 0.4},
	"limited": {-0.2, 0.4}, "minor": {-0.1, 0.4}, "concern": {-0.3, 0.5},
	"concerned": {-0.3, 0.6}, "doubt": {-0.3, 0.6}, "difficult": {-0.4, 0.6},
	"hard": {-0.3, 0.4}, "complicated": {-0.3, 0.5}, "confusing": {-0.4, 0.6},

	// negative
	"bad": {-0.7, 0.65}, "poor": {-0.6, 0.6}, "wrong": {-0.5, 0.5},
	"negative": {-0.3, 0.3}, "problem": {-0.4, 0.4}, "issue": {-0.2, 0.3},
	"fail": {-0.6, 0.5}, "failed": {-0.6, 0.5}, "failure": {-0.6, 0.5},
	"broken": {-0.5, 0.5}, "weak": {-0.4, 0.4}, "unsafe": {-0.5, 0.5},
	"unfair": {-0.5, 0.6}, "harm": {-0.5, 0.5}, "harmful": {-0.6, 0.6},
	"damage": {-0.5, 0.5}, "loss": {-0.4, 0.4}, "lose": {-0.4, 0.4},
	"sad": {-0.6, 1.0}, "angry": {-0.6, 0.9}, "annoying": {-0.5, 0.7},
	"disappointing": {-0.6, 0.7}, "disappointed": {-0.6, 0.75},
	"unreliable": {-0.5, 0.5}, "ineffective": {-0.5, 0.6},
	"inadequate": {-0.5, 0.5}, "hate": {-0.8, 0.9}, "dislike": {-0.5, 0.6},
	"worse": {-0.5, 0.5}, "useless": {-0.6, 0.7}, "mess": {-0.5, 0.6},

	// strong negative
	"terrible": {-0.9, 0.9}, "horrible": {-0.9, 0.9}, "awful": {-0.9, 0.9},
	"dreadful": {-0.9, 0.9}, "disastrous": {-0.9, 0.9}, "worst": {-1.0, 0.3},
	"catastrophic": {-0.9, 0.9}, "appalling": {-0.9, 0.9},
	"unacceptable": {-0.8, 0.8}, "abysmal": {-0.9, 0.9},
}
