package assessment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mattyc1998/heartlift/internal/llm"
)

type fakeLLM struct {
	resp llm.Response
	err  error
}

func (f fakeLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	return f.resp, f.err
}

type hangingLLM struct{}

func (hangingLLM) Generate(ctx context.Context, msgs []llm.Message) (llm.Response, error) {
	<-ctx.Done()
	return llm.Response{}, ctx.Err()
}

var anxiousAnswers = []AnswerRecord{
	{Question: "Q1", Answer: "I trust they need time and give them space"},
	{Question: "Q2", Answer: "I worry and check in frequently"},
}

func TestComposeParsesModelReport(t *testing.T) {
	body := "```json\n{" +
		`"strengths":["aware"],"challenges":["worry"],` +
		`"relationshipPatterns":["seeks reassurance"],` +
		`"healingPath":"practice self-soothing",` +
		`"triggers":["uncertainty"],` +
		`"copingTechniques":[{"technique":"breathing","description":"slow breaths","example":"4-7-8"}]}` +
		"\n```"
	c := NewComposer(fakeLLM{resp: llm.Response{Content: body}}, time.Second)

	score := Score(anxiousAnswers)
	report := c.Compose(context.Background(), anxiousAnswers, score)

	if report.Fallback {
		t.Fatalf("expected model report, got fallback")
	}
	if report.AttachmentStyle != score.DominantStyle {
		t.Fatalf("report style %s != scorer label %s", report.AttachmentStyle, score.DominantStyle)
	}
	if report.HealingPath != "practice self-soothing" {
		t.Fatalf("unexpected healing path: %q", report.HealingPath)
	}
	if len(report.CopingTechniques) != 1 || report.CopingTechniques[0].Technique != "breathing" {
		t.Fatalf("unexpected coping techniques: %+v", report.CopingTechniques)
	}
}

func TestComposeKeepsScorerLabelOnTimeout(t *testing.T) {
	c := NewComposer(hangingLLM{}, 20*time.Millisecond)

	score := Score(anxiousAnswers)
	if score.DominantStyle != StyleAnxious {
		t.Fatalf("precondition: scorer should lean anxious, got %s", score.DominantStyle)
	}

	report := c.Compose(context.Background(), anxiousAnswers, score)
	if !report.Fallback {
		t.Fatalf("expected fallback report after timeout")
	}
	if report.AttachmentStyle != StyleAnxious {
		t.Fatalf("fallback report restyled the user: %s", report.AttachmentStyle)
	}
	if report.HealingPath == "" || len(report.Strengths) == 0 {
		t.Fatalf("fallback report is not a complete report: %+v", report)
	}
}

func TestComposeFallsBackOnModelError(t *testing.T) {
	c := NewComposer(fakeLLM{err: errors.New("upstream 500")}, time.Second)
	score := Score(anxiousAnswers)
	report := c.Compose(context.Background(), anxiousAnswers, score)
	if !report.Fallback || report.AttachmentStyle != score.DominantStyle {
		t.Fatalf("bad degraded report: %+v", report)
	}
}

func TestComposeFallsBackOnGarbageOutput(t *testing.T) {
	c := NewComposer(fakeLLM{resp: llm.Response{Content: "I'm sorry, I can't produce JSON today."}}, time.Second)
	score := Score(anxiousAnswers)
	report := c.Compose(context.Background(), anxiousAnswers, score)
	if !report.Fallback {
		t.Fatalf("expected fallback for unparseable output")
	}
	if report.AttachmentStyle != score.DominantStyle {
		t.Fatalf("fallback lost the scorer label")
	}
}

func TestAnalyzeLabelFidelity(t *testing.T) {
	// Label fidelity must hold for both a healthy model and a dead one.
	clients := map[string]llm.Client{
		"dead model": fakeLLM{err: errors.New("boom")},
		"garbage":    fakeLLM{resp: llm.Response{Content: "not json"}},
	}
	for name, client := range clients {
		svc := NewService(NewComposer(client, time.Second))
		score, report := svc.Analyze(context.Background(), anxiousAnswers)
		if report.AttachmentStyle != score.DominantStyle {
			t.Fatalf("%s: report style %s != scorer %s", name, report.AttachmentStyle, score.DominantStyle)
		}
	}
}
