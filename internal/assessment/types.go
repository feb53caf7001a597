package assessment

// Style is the attachment classification label produced by the engine.
type Style string

const (
	StyleSecure          Style = "secure"
	StyleAnxious         Style = "anxious"
	StyleAvoidant        Style = "avoidant"
	StyleFearfulAvoidant Style = "fearful-avoidant"
)

// AnswerRecord pairs a quiz question with the user's free-text answer.
// Input-only; never persisted by this package.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PatternScore holds the accumulated weight per scoring axis and the
// dominant label derived from them. DominantStyle is a pure function of
// AxisScores: recomputing over the same answers yields the same label.
type PatternScore struct {
	AxisScores    map[Style]int `json:"axis_scores"`
	DominantStyle Style         `json:"dominant_style"`
}

// CopingTechnique is one actionable technique in a report.
type CopingTechnique struct {
	Technique   string `json:"technique"`
	Description string `json:"description"`
	Example     string `json:"example"`
}

// Report is the narrative assessment returned to the caller. Its
// AttachmentStyle always equals the scorer's dominant label, whether
// the narrative model succeeded or the canned fallback was used.
type Report struct {
	AttachmentStyle      Style             `json:"attachment_style"`
	Strengths            []string          `json:"strengths"`
	Challenges           []string          `json:"challenges"`
	RelationshipPatterns []string          `json:"relationship_patterns"`
	HealingPath          string            `json:"healing_path"`
	Triggers             []string          `json:"triggers"`
	CopingTechniques     []CopingTechnique `json:"coping_techniques"`
	Fallback             bool              `json:"fallback,omitempty"`
}
