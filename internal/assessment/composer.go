package assessment

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

const composerSystemPrompt = "You are an attachment theory expert. Provide concise, actionable analysis in valid JSON format only. No markdown formatting."

// Composer turns a scored answer set into a narrative report. The
// attachment style is decided by the scorer before the model is ever
// called; the model only fills in the qualitative fields. Every
// failure mode resolves to a canned report carrying the scorer's
// label, so Compose never returns an error.
type Composer struct {
	client  llm.Client
	timeout time.Duration
}

func NewComposer(client llm.Client, timeout time.Duration) *Composer {
	return &Composer{client: client, timeout: timeout}
}

// reportPayload is the wire shape requested from the model.
type reportPayload struct {
	Strengths            []string          `json:"strengths"`
	Challenges           []string          `json:"challenges"`
	RelationshipPatterns []string          `json:"relationshipPatterns"`
	HealingPath          string            `json:"healingPath"`
	Triggers             []string          `json:"triggers"`
	CopingTechniques     []CopingTechnique `json:"copingTechniques"`
}

func (c *Composer) Compose(ctx context.Context, answers []AnswerRecord, score PatternScore) Report {
	style := score.DominantStyle

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Generate(ctx, []llm.Message{
		{Role: "system", Content: composerSystemPrompt},
		{Role: "user", Content: buildReportPrompt(answers, style)},
	})
	if err != nil {
		log.Printf("narrative model unavailable, using fallback report: %v", err)
		return FallbackReport(style)
	}

	var payload reportPayload
	if err := llm.DecodeJSON(resp.Content, &payload); err != nil {
		log.Printf("unparseable report from model, using fallback: %v", err)
		return FallbackReport(style)
	}
	if len(payload.Strengths) == 0 || payload.HealingPath == "" {
		log.Printf("incomplete report from model, using fallback")
		return FallbackReport(style)
	}

	return Report{
		AttachmentStyle:      style,
		Strengths:            payload.Strengths,
		Challenges:           payload.Challenges,
		RelationshipPatterns: payload.RelationshipPatterns,
		HealingPath:          payload.HealingPath,
		Triggers:             payload.Triggers,
		CopingTechniques:     payload.CopingTechniques,
	}
}

// buildReportPrompt fixes the attachment style in the prompt: the
// model is told the label, never asked to re-derive it.
func buildReportPrompt(answers []AnswerRecord, style Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The user's attachment style is %s. Do not reclassify it.\n\n", style)
	b.WriteString("Their quiz answers, for grounding your analysis in their own words:\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "- %s: %q\n", a.Question, a.Answer)
	}
	fmt.Fprintf(&b, `
Produce a JSON object with exactly these fields for the %s style:
{
  "strengths": ["3-4 key strengths"],
  "challenges": ["3-4 main challenges"],
  "relationshipPatterns": ["3-4 key patterns"],
  "healingPath": "concise healing path (100-150 words)",
  "triggers": ["4-5 main triggers"],
  "copingTechniques": [
    {"technique": "name", "description": "brief description", "example": "practical example"}
  ]
}
Return ONLY the JSON object, no other text.`, style)
	return b.String()
}

// Service wires the deterministic scorer and the composer into the
// single AnalyzeQuiz operation.
type Service struct {
	composer *Composer
}

func NewService(composer *Composer) *Service {
	return &Service{composer: composer}
}

// Analyze scores the full answer set, then composes the narrative. The
// returned report's AttachmentStyle always equals the scorer's label.
func (s *Service) Analyze(ctx context.Context, answers []AnswerRecord) (PatternScore, Report) {
	score := Score(answers)
	report := s.composer.Compose(ctx, answers, score)
	return score, report
}
