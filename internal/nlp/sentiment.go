package nlp

import "strings"

// LexiconScorer scores sentiment against an embedded valence lexicon.
// Each scored word contributes a polarity and subjectivity; a negation
// word flips and dampens the next contribution, and an intensifier or
// diminisher scales it. Document scores are the means over scored
// words, so unknown vocabulary reads as neutral rather than skewing
// the result.
type LexiconScorer struct{}

// negationDamp is the factor applied when a scored word is negated.
// Flipping at half strength mirrors how "not good" lands softer than
// "bad".
const negationDamp = -0.5

// ScoreSentiment implements SentimentScorer.
func (LexiconScorer) ScoreSentiment(text string) (Sentiment, error) {
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	var polaritySum, subjectivitySum float64
	scored := 0
	negated := false
	booster := 1.0

	for _, word := range words {
		if negations[word] {
			negated = true
			booster = 1.0
			continue
		}
		if b, ok := boosters[word]; ok {
			booster *= b
			continue
		}

		entry, ok := lexicon[word]
		if !ok {
			continue
		}

		polarity := clamp(entry.polarity*booster, -1, 1)
		if negated {
			polarity = polarity * negationDamp
		}
		polaritySum += polarity
		subjectivitySum += entry.subjectivity
		scored++
		negated = false
		booster = 1.0
	}

	if scored == 0 {
		return Sentiment{}, nil
	}
	return Sentiment{
		Polarity:     clamp(polaritySum/float64(scored), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(scored), 0, 1),
	}, nil
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
