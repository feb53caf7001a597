package assessment

// Canned reports used when the narrative model times out or returns
// something unparseable. Keyed by style so the degraded path never
// contradicts the scorer's label.
var fallbackReports = map[Style]Report{
	StyleSecure: {
		Strengths:            []string{"Comfortable with intimacy and independence", "Communicates needs directly", "Recovers well from conflict"},
		Challenges:           []string{"May underestimate a partner's insecurities", "Can assume others share their ease with closeness"},
		RelationshipPatterns: []string{"Builds stable, trusting bonds", "Addresses problems rather than avoiding them", "Balances closeness and autonomy"},
		HealingPath:          "Keep investing in open communication and notice when a partner's attachment needs differ from your own. Your stability can be an anchor for both of you.",
		Triggers:             []string{"Sustained dishonesty", "Chronic stonewalling"},
		CopingTechniques: []CopingTechnique{
			{Technique: "Active listening", Description: "Reflect back what your partner says before responding", Example: "\"What I hear you saying is...\""},
			{Technique: "Weekly check-in", Description: "A recurring honest conversation about the relationship", Example: "Fifteen minutes every Sunday evening"},
		},
	},
	StyleAnxious: {
		Strengths:            []string{"Deep emotional awareness", "Strong desire for connection", "Capacity for growth"},
		Challenges:           []string{"Managing intense emotions", "Fear of abandonment", "Seeking constant reassurance"},
		RelationshipPatterns: []string{"Seeks reassurance", "May appear clingy under stress", "Values security highly"},
		HealingPath:          "Focus on building self-awareness through journaling and mindfulness. Practice self-soothing techniques and gradually work on trusting others. Consider therapy for deeper healing.",
		Triggers:             []string{"Abandonment fears", "Criticism", "Uncertainty", "Conflict"},
		CopingTechniques: []CopingTechnique{
			{Technique: "Breathing exercises", Description: "Deep breathing to calm anxiety before reacting", Example: "4-7-8 breathing technique"},
			{Technique: "Delayed response", Description: "Wait before sending messages written in distress", Example: "Draft the text, reread it after twenty minutes"},
		},
	},
	StyleAvoidant: {
		Strengths:            []string{"Strong sense of independence", "Self-sufficiency under pressure", "Clear personal boundaries"},
		Challenges:           []string{"Discomfort with emotional closeness", "Withdrawing during conflict", "Difficulty asking for support"},
		RelationshipPatterns: []string{"Keeps partners at a distance", "Prefers solving problems alone", "May leave when things get intense"},
		HealingPath:          "Practice naming one feeling a day and sharing small vulnerabilities with people you trust. Closeness is a skill that grows with low-stakes repetition.",
		Triggers:             []string{"Feeling controlled", "Emotional demands", "Loss of personal space"},
		CopingTechniques: []CopingTechnique{
			{Technique: "Scheduled connection", Description: "Plan closeness so it feels chosen rather than imposed", Example: "A standing dinner date you set yourself"},
			{Technique: "Feelings journal", Description: "Private practice naming emotions lowers the cost of sharing them", Example: "One sentence each evening"},
		},
	},
	StyleFearfulAvoidant: {
		Strengths:            []string{"Deep capacity for empathy", "Awareness of relationship dynamics", "Resilience from navigating conflicting needs"},
		Challenges:           []string{"Wanting closeness while fearing it", "Unpredictable push-pull responses", "Difficulty trusting safety"},
		RelationshipPatterns: []string{"Alternates between pursuing and withdrawing", "Intense starts that feel overwhelming", "Testing a partner's commitment"},
		HealingPath:          "Work on recognising the push-pull cycle as it happens. Grounding practices and, ideally, trauma-informed therapy help the nervous system learn that closeness and safety can coexist.",
		Triggers:             []string{"Mixed signals", "Sudden intimacy", "Reminders of past hurt", "Perceived rejection"},
		CopingTechniques: []CopingTechnique{
			{Technique: "Grounding", Description: "Anchor to the present when old fear takes over", Example: "Name five things you can see and hear"},
			{Technique: "Pattern logging", Description: "Record push-pull episodes to spot the trigger behind each", Example: "A two-line note after each hard conversation"},
		},
	},
}

// FallbackReport returns the canned report for style, tagged with it.
func FallbackReport(style Style) Report {
	r, ok := fallbackReports[style]
	if !ok {
		r = fallbackReports[StyleSecure]
	}
	r.AttachmentStyle = style
	r.Fallback = true
	return r
}
