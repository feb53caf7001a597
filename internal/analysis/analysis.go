// Package analysis turns a pasted conversation into a structured
// communication review.
package analysis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

const maxConversationLen = 10000

// EmotionalTone describes how each side of the conversation comes
// across.
type EmotionalTone struct {
	User    string `json:"user"`
	Partner string `json:"partner"`
	Overall string `json:"overall"`
}

type Pattern struct {
	Pattern     string   `json:"pattern"`
	Description string   `json:"description"`
	Examples    []string `json:"examples,omitempty"`
}

type Suggestion struct {
	Issue          string `json:"issue"`
	BetterResponse string `json:"betterResponse"`
	Explanation    string `json:"explanation"`
}

// Review is the full analysis payload returned to the client.
type Review struct {
	EmotionalTone            EmotionalTone `json:"emotionalTone"`
	MiscommunicationPatterns []Pattern     `json:"miscommunicationPatterns"`
	Suggestions              []Suggestion  `json:"suggestions"`
	OverallAssessment        string        `json:"overallAssessment"`
	Fallback                 bool          `json:"fallback,omitempty"`
}

// Analyzer reviews conversations with the model and degrades to a
// generic review on failure. Input that fails validation is the only
// error path.
type Analyzer struct {
	client  llm.Client
	timeout time.Duration
}

func NewAnalyzer(client llm.Client, timeout time.Duration) *Analyzer {
	return &Analyzer{client: client, timeout: timeout}
}

const analysisSystemPrompt = "You are a relationship counselor specializing in communication analysis. Be empathetic but honest in your assessment. IMPORTANT: Respond with ONLY valid JSON, no markdown formatting, no code blocks, no explanatory text."

func buildAnalysisPrompt(conversationText string) string {
	return fmt.Sprintf(`Analyze this conversation between two people in a relationship context. Focus on communication patterns, emotional dynamics, and areas for improvement.

Conversation:
%q

Provide analysis in this EXACT JSON format (no markdown, no code blocks, just raw JSON):
{
  "emotionalTone": {
    "user": "description of user's emotional tone",
    "partner": "description of partner's emotional tone",
    "overall": "overall conversation dynamic"
  },
  "miscommunicationPatterns": [
    {
      "pattern": "pattern name",
      "description": "what went wrong",
      "examples": ["specific examples from text"]
    }
  ],
  "suggestions": [
    {
      "issue": "what could be improved",
      "betterResponse": "suggested better response",
      "explanation": "why this would work better"
    }
  ],
  "overallAssessment": "summary of conversation health and recommendations"
}`, conversationText)
}

// Analyze reviews the conversation. Model failures and undecodable
// output resolve to the fallback review, never to an error.
func (a *Analyzer) Analyze(ctx context.Context, conversationText string) (Review, error) {
	if conversationText == "" || len(conversationText) > maxConversationLen {
		return Review{}, fmt.Errorf("conversation text must be between 1 and %d characters", maxConversationLen)
	}

	genCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.Generate(genCtx, []llm.Message{
		{Role: "system", Content: analysisSystemPrompt},
		{Role: "user", Content: buildAnalysisPrompt(conversationText)},
	})
	if err != nil {
		log.Printf("⚠️ Conversation analysis model call failed, serving fallback review: %v", err)
		return fallbackReview(), nil
	}

	var review Review
	if err := llm.DecodeJSON(resp.Content, &review); err != nil {
		log.Printf("⚠️ Could not decode conversation analysis, serving fallback review: %v", err)
		return fallbackReview(), nil
	}
	if review.OverallAssessment == "" {
		log.Printf("⚠️ Conversation analysis missing assessment, serving fallback review")
		return fallbackReview(), nil
	}
	return review, nil
}

func fallbackReview() Review {
	return Review{
		EmotionalTone: EmotionalTone{
			User:    "Engaged and seeking clarity",
			Partner: "Responses suggest some distance or guardedness",
			Overall: "A conversation with genuine effort on both sides but some missed connections",
		},
		MiscommunicationPatterns: []Pattern{
			{
				Pattern:     "Deeper review unavailable",
				Description: "We couldn't run a detailed pattern analysis on this conversation right now. The general guidance below still applies.",
			},
		},
		Suggestions: []Suggestion{
			{
				Issue:          "Assumptions about intent",
				BetterResponse: "When something lands badly, try naming what you heard and asking if that's what they meant.",
				Explanation:    "Checking your interpretation before reacting prevents most escalations.",
			},
			{
				Issue:          "Timing of hard topics",
				BetterResponse: "Ask if now is a good time before raising something heavy.",
				Explanation:    "Consent to the conversation makes both people more receptive.",
			},
		},
		OverallAssessment: "We couldn't complete a tailored analysis of this conversation right now. As a general rule, focus on stating your own feelings and needs directly, checking your interpretation of your partner's words before reacting, and picking calm moments for difficult topics. Please try the analysis again in a little while.",
		Fallback:          true,
	}
}
