package quiz

// Pre-authored question set returned when generation fails. Option
// order is fixed: secure, anxious, avoidant, fearful-avoidant.
var fallbackQuestions = []Question{
	{
		Text: "How do you typically approach new relationships?",
		Options: []string{
			"With excitement and openness to connection",
			"With hope but worry about being hurt",
			"With caution and preference for independence",
			"With confusion about what I want",
		},
	},
	{
		Text: "When conflict arises in relationships, you tend to:",
		Options: []string{
			"Address issues directly and work toward resolution",
			"Become anxious and seek immediate reassurance",
			"Withdraw and avoid confrontation",
			"Feel overwhelmed and react unpredictably",
		},
	},
	{
		Text: "Your view of yourself in relationships is generally:",
		Options: []string{
			"Confident and worthy of love",
			"Dependent on others' validation",
			"Self-reliant but emotionally distant",
			"Inconsistent and self-doubting",
		},
	},
	{
		Text: "When a partner needs space, you typically:",
		Options: []string{
			"Respect their need while maintaining connection",
			"Feel rejected and seek constant reassurance",
			"Feel relieved and prefer the distance",
			"Feel confused about how to respond appropriately",
		},
	},
	{
		Text: "Your emotional regulation during stress involves:",
		Options: []string{
			"Processing feelings and seeking appropriate support",
			"Becoming overwhelmed and needing constant comfort",
			"Shutting down emotions and handling things alone",
			"Experiencing intense, conflicting emotions",
		},
	},
	{
		Text: "How comfortable are you depending on a partner?",
		Options: []string{
			"Comfortable - it feels natural and mutual",
			"I depend heavily and fear they will let me down",
			"Uncomfortable - I prefer not to need anyone",
			"I want to depend on them but cannot let myself",
		},
	},
	{
		Text: "When a partner seems distant, your first reaction is to:",
		Options: []string{
			"Ask them openly how they're doing",
			"Assume the worst and seek immediate reassurance",
			"Match their distance and focus on my own life",
			"Swing between reaching out and pulling away",
		},
	},
	{
		Text: "After a serious argument, you usually:",
		Options: []string{
			"Cool off, then talk it through together",
			"Feel desperate to fix things right away",
			"Need days of space before re-engaging",
			"Feel torn between apologising and disappearing",
		},
	},
	{
		Text: "How do you feel about expressing your needs in a relationship?",
		Options: []string{
			"Comfortable - my needs deserve a voice",
			"Afraid my needs will push people away",
			"I'd rather meet my own needs quietly",
			"Unsure what my needs even are",
		},
	},
	{
		Text: "Your experience of closeness in past relationships has been:",
		Options: []string{
			"Mostly safe, warm, and steady",
			"Intense and consuming - I lose myself in others",
			"Suffocating when it went beyond my comfort zone",
			"Both longed-for and frightening at the same time",
		},
	},
}

// FallbackBatch returns the pre-authored questions with sequential ids.
// A fresh slice is built on each call so callers can't mutate the set.
func FallbackBatch(count int) []Question {
	if count <= 0 || count > len(fallbackQuestions) {
		count = len(fallbackQuestions)
	}
	out := make([]Question, count)
	for i := 0; i < count; i++ {
		q := fallbackQuestions[i]
		q.ID = i + 1
		out[i] = q
	}
	return out
}
