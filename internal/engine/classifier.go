package engine

import "strings"

// Classifier scores a message against a fixed trigger table. It is fully
// deterministic: the same message and table always produce the same result.
type Classifier struct {
	intents []Intent
}

// NewClassifier builds a classifier over the given intents. Intent order is
// preserved and decides ties.
func NewClassifier(intents []Intent) *Classifier {
	return &Classifier{intents: intents}
}

// Classify returns the best-matching intent and its raw score. Scoring per
// trigger phrase: 1.0 for an exact match, 0.8 when the message starts or
// ends with the phrase, 0.6 when it merely contains it. Scores sum per
// intent. The score is an unbounded relative gate, not a probability.
// Returns ("", 0) when nothing matches.
func (c *Classifier) Classify(message string) (string, float64) {
	msg := strings.ToLower(strings.TrimSpace(message))
	best := ""
	bestScore := 0.0
	for _, intent := range c.intents {
		score := 0.0
		for _, trigger := range intent.Triggers {
			t := strings.ToLower(trigger)
			switch {
			case msg == t:
				score += 1.0
			case strings.HasPrefix(msg, t) || strings.HasSuffix(msg, t):
				score += 0.8
			case strings.Contains(msg, t):
				score += 0.6
			}
		}
		// Strict comparison keeps the earlier-declared intent on a tie.
		if score > bestScore {
			bestScore = score
			best = intent.Name
		}
	}
	return best, bestScore
}
