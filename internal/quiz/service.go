package quiz

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Mattyc1998/heartlift/internal/daily"
	"github.com/Mattyc1998/heartlift/internal/llm"
)

const generatorSystemPrompt = "You are a world-class psychology expert and quiz designer specializing in attachment theory. Generate creative, insightful questions that reveal deep psychological patterns."

// Result is what callers of GetOrGenerate receive. Cached reports a
// same-day hit; Fallback marks the pre-authored set after a generation
// failure. Fallback results are never cached, so the next request
// retries generation instead of freezing on canned questions all day.
type Result struct {
	Questions []Question `json:"questions"`
	Cached    bool       `json:"cached"`
	Fallback  bool       `json:"fallback,omitempty"`
}

// Service generates the shared daily quiz. All callers of one
// (category, count) pair on one UTC day see the identical batch; the
// singleflight group collapses concurrent cold misses into a single
// model call.
type Service struct {
	client  llm.Client
	cache   Cache
	timeout time.Duration
	group   singleflight.Group
	now     func() time.Time
}

func NewService(client llm.Client, cache Cache, timeout time.Duration) *Service {
	return &Service{
		client:  client,
		cache:   cache,
		timeout: timeout,
		now:     time.Now,
	}
}

type generatedPayload struct {
	Questions []struct {
		Question string   `json:"question"`
		Options  []string `json:"options"`
	} `json:"questions"`
}

// GetOrGenerate returns today's quiz for (category, count), generating
// and caching it on first request of the day. Never returns an error:
// generation failure degrades to the fallback batch.
func (s *Service) GetOrGenerate(ctx context.Context, category string, count int) Result {
	key := daily.QuizKey(category, count, s.now())

	if b, ok := s.cache.Get(key); ok {
		return Result{Questions: b.Questions, Cached: true}
	}

	v, _, shared := s.group.Do(key, func() (any, error) {
		// Re-check under the flight: a racing caller may have
		// populated the cache between our miss and winning the flight.
		if b, ok := s.cache.Get(key); ok {
			return Result{Questions: b.Questions, Cached: true}, nil
		}

		// Detach from the caller's cancellation: the batch is shared
		// by every same-day caller, so one abandoned request must not
		// kill the flight for the rest.
		genCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		questions, err := s.generate(genCtx, category, count)
		if err != nil {
			log.Printf("quiz generation failed for %s, serving fallback: %v", key, err)
			return Result{Questions: FallbackBatch(count), Fallback: true}, nil
		}

		s.cache.Put(key, Batch{CacheKey: key, Questions: questions, GeneratedAt: s.now()})
		return Result{Questions: questions}, nil
	})

	res := v.(Result)
	if shared && !res.Fallback {
		// Followers of a successful flight received a cached-equivalent batch.
		res.Cached = true
	}
	return res
}

func (s *Service) generate(ctx context.Context, category string, count int) ([]Question, error) {
	resp, err := s.client.Generate(ctx, []llm.Message{
		{Role: "system", Content: generatorSystemPrompt},
		{Role: "user", Content: buildQuizPrompt(category, count)},
	})
	if err != nil {
		return nil, err
	}

	var payload generatedPayload
	if err := llm.DecodeJSON(resp.Content, &payload); err != nil {
		return nil, err
	}
	if len(payload.Questions) < count {
		return nil, fmt.Errorf("model returned %d questions, want %d", len(payload.Questions), count)
	}

	questions := make([]Question, count)
	for i := 0; i < count; i++ {
		q := payload.Questions[i]
		if q.Question == "" || len(q.Options) != 4 {
			return nil, fmt.Errorf("question %d is malformed", i+1)
		}
		questions[i] = Question{ID: i + 1, Text: q.Question, Options: q.Options}
	}
	return questions, nil
}

func buildQuizPrompt(category string, count int) string {
	return fmt.Sprintf(`Generate exactly %d comprehensive, thought-provoking questions for a %s quiz that will help identify someone's attachment style (Secure, Anxious-Preoccupied, Dismissive-Avoidant, or Fearful-Avoidant).

Each question should:
- Be unique and different from typical attachment style questions
- Focus on real relationship scenarios and behaviors
- Have exactly 4 answer options that clearly correspond to the 4 attachment styles
- Cover different aspects: emotional regulation, trust, communication, intimacy, conflict resolution

Return ONLY a JSON object with this exact structure:
{
  "questions": [
    {
      "question": "Question text here?",
      "options": ["secure option", "anxious option", "avoidant option", "fearful-avoidant option"]
    }
  ]
}`, count, category)
}
