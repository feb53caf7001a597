package assessment

import "strings"

// Lexical indicators per axis. A keyword hit scores 2, a phrase hit 3.
// The exact weights are tunable; the label selection rules below are
// the contract.
var axisKeywords = map[Style][]string{
	StyleSecure:   {"comfortable", "trust", "open", "easy", "confident", "positive", "supportive", "stable", "secure", "calm"},
	StyleAnxious:  {"worry", "anxious", "clingy", "jealous", "insecure", "reassurance", "desperate", "overthink", "abandon"},
	StyleAvoidant: {"independent", "self-reliant", "distance", "space", "alone", "withdraw", "detached", "guarded"},
}

var axisPhrases = map[Style][]string{
	StyleSecure:   {"work it out", "talk it through", "communicate openly", "give and take"},
	StyleAnxious:  {"check in", "fear of abandonment", "can't stop thinking", "need constant"},
	StyleAvoidant: {"keep my distance", "handle it myself", "shut down", "on my own"},
}

// Scoring axes in fixed order so accumulation and tie resolution are
// deterministic regardless of map iteration.
var axes = []Style{StyleSecure, StyleAnxious, StyleAvoidant}

const (
	keywordWeight = 2
	phraseWeight  = 3

	// tieBand is the margin within which anxious and avoidant are
	// considered tied, yielding the fearful-avoidant label.
	tieBand = 2
)

// Score classifies a full answer sequence against the three axes.
// Pure function: no I/O, no randomness, no clock.
func Score(answers []AnswerRecord) PatternScore {
	scores := map[Style]int{StyleSecure: 0, StyleAnxious: 0, StyleAvoidant: 0}

	for _, a := range answers {
		text := strings.ToLower(a.Answer)
		for _, axis := range axes {
			for _, kw := range axisKeywords[axis] {
				if strings.Contains(text, kw) {
					scores[axis] += keywordWeight
				}
			}
			for _, ph := range axisPhrases[axis] {
				if strings.Contains(text, ph) {
					scores[axis] += phraseWeight
				}
			}
		}
	}

	return PatternScore{AxisScores: scores, DominantStyle: dominant(scores)}
}

// dominant picks the label from axis scores:
//   - all zero: secure (no signal defaults to the baseline style)
//   - anxious and avoidant within tieBand of each other and both above
//     secure: fearful-avoidant
//   - otherwise the strictly highest axis; exact ties resolve in the
//     fixed order secure, anxious, avoidant
func dominant(scores map[Style]int) Style {
	sec, anx, avd := scores[StyleSecure], scores[StyleAnxious], scores[StyleAvoidant]
	if sec == 0 && anx == 0 && avd == 0 {
		return StyleSecure
	}

	if anx > sec && avd > sec && abs(anx-avd) <= tieBand {
		return StyleFearfulAvoidant
	}

	best := axes[0]
	for _, axis := range axes[1:] {
		if scores[axis] > scores[best] {
			best = axis
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
