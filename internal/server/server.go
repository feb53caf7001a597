// Package server exposes the coaching backend over HTTP. Handlers are
// glue only: validation, service call, JSON rendering. Model failures
// never surface as 5xx; a quota rejection is the single 429 path and a
// broken quota store the single 5xx path.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Mattyc1998/heartlift/internal/analysis"
	"github.com/Mattyc1998/heartlift/internal/analytics"
	"github.com/Mattyc1998/heartlift/internal/assessment"
	"github.com/Mattyc1998/heartlift/internal/coach"
	"github.com/Mattyc1998/heartlift/internal/quiz"
	"github.com/Mattyc1998/heartlift/internal/quota"
	"github.com/Mattyc1998/heartlift/internal/storage"
	"github.com/Mattyc1998/heartlift/internal/subscription"
)

const maxBodyBytes = 64 * 1024

type Server struct {
	quiz       *quiz.Service
	assessment *assessment.Service
	coach      *coach.Service
	suggester  *coach.Suggester
	analyzer   *analysis.Analyzer
	quota      *quota.Service
	subs       subscription.Checker
	recorder   storage.Recorder

	server    *http.Server
	port      int
	startTime time.Time
}

func New(port int, quizSvc *quiz.Service, assessSvc *assessment.Service, coachSvc *coach.Service, suggester *coach.Suggester, analyzer *analysis.Analyzer, quotaSvc *quota.Service, subs subscription.Checker, recorder storage.Recorder) *Server {
	return &Server{
		quiz:       quizSvc,
		assessment: assessSvc,
		coach:      coachSvc,
		suggester:  suggester,
		analyzer:   analyzer,
		quota:      quotaSvc,
		subs:       subs,
		recorder:   recorder,
		port:       port,
		startTime:  time.Now(),
	}
}

// Handler builds the route table. Split from Start so tests can mount
// it on httptest.Server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/quiz/generate", s.handleQuizGenerate)
	mux.HandleFunc("/api/quiz/analyze", s.handleQuizAnalyze)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/analyze-conversation", s.handleAnalyzeConversation)
	mux.HandleFunc("/api/quota", s.handleQuota)
	mux.HandleFunc("/api/coaches", s.handleCoaches)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/api/status", s.handleStatus)

	return mux
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("🌐 Starting HTTP server on :%d", s.port)
	return s.server.ListenAndServe()
}

func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("⚠️ Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

type quizGenerateRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// handleQuizGenerate always answers 200 with a question batch; a model
// outage degrades to the pre-authored fallback set.
func (s *Server) handleQuizGenerate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req quizGenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Category == "" {
		req.Category = "attachment"
	}
	if req.Count <= 0 {
		req.Count = 10
	}

	result := s.quiz.GetOrGenerate(r.Context(), req.Category, req.Count)
	writeJSON(w, http.StatusOK, result)
}

type quizAnalyzeRequest struct {
	UserID  string                    `json:"userId"`
	Answers []assessment.AnswerRecord `json:"answers"`
}

type quizAnalyzeResponse struct {
	Analysis assessment.Report       `json:"analysis"`
	Score    assessment.PatternScore `json:"score"`
}

func (s *Server) handleQuizAnalyze(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req quizAnalyzeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	score, report := s.assessment.Analyze(r.Context(), req.Answers)
	s.record(storage.Event{
		UserID:       req.UserID,
		Kind:         storage.KindAssessment,
		ResponseText: string(report.AttachmentStyle),
		Fallback:     report.Fallback,
	})
	writeJSON(w, http.StatusOK, quizAnalyzeResponse{Analysis: report, Score: score})
}

type chatRequest struct {
	UserID  string `json:"userId"`
	CoachID string `json:"coachId"`
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req chatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	reply, err := s.coach.Chat(r.Context(), req.UserID, req.CoachID, req.Message)
	if err != nil {
		if errors.Is(err, coach.ErrInvalidMessage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ Chat failed for user %s: %v", req.UserID, err)
		writeError(w, http.StatusInternalServerError, "service temporarily unavailable")
		return
	}
	if reply.LimitReached {
		hours := reply.Usage.SecondsUntilReset / 3600
		minutes := (reply.Usage.SecondsUntilReset % 3600) / 60
		writeJSON(w, http.StatusTooManyRequests, map[string]any{
			"error":             "usage_limit_reached",
			"message":           fmt.Sprintf("You've reached your daily limit of messages across all coaches. You can chat again in %dh %dm, or go Premium to keep talking!", hours, minutes),
			"hoursUntilReset":   hours,
			"minutesUntilReset": minutes,
		})
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

type suggestRequest struct {
	UserID string `json:"userId"`
	coach.SuggestRequest
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req suggestRequest
	if !decodeBody(w, r, &req) {
		return
	}

	suggestions, degraded := s.suggester.Suggest(r.Context(), req.SuggestRequest)
	s.record(storage.Event{
		UserID:      req.UserID,
		Kind:        storage.KindSuggestion,
		UserMessage: req.MessageType,
		Fallback:    degraded,
	})
	writeJSON(w, http.StatusOK, map[string]any{
		"suggestions": suggestions,
		"fallback":    degraded,
	})
}

type analyzeConversationRequest struct {
	UserID           string `json:"userId"`
	ConversationText string `json:"conversationText"`
}

func (s *Server) handleAnalyzeConversation(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	var req analyzeConversationRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review, err := s.analyzer.Analyze(r.Context(), req.ConversationText)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.record(storage.Event{
		UserID:      req.UserID,
		Kind:        storage.KindConversation,
		UserMessage: req.ConversationText,
		Fallback:    review.Fallback,
	})
	writeJSON(w, http.StatusOK, review)
}

func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}

	tier, err := s.subs.TierOf(r.Context(), userID)
	if err != nil {
		log.Printf("❌ Tier lookup failed for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "service temporarily unavailable")
		return
	}
	st, err := s.quota.Check(r.Context(), userID, tier)
	if err != nil {
		log.Printf("❌ Quota check failed for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "service temporarily unavailable")
		return
	}

	// Opportunistic retention sweep piggybacks on quota reads, so
	// expired rows get cleaned even if the nightly job misses a day.
	s.quota.SweepAsync()

	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleCoaches(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"coaches": coach.Personas()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	// The transcript recorder is optional; main keeps running without
	// one when the file cannot be initialized.
	if s.recorder == nil {
		writeError(w, http.StatusServiceUnavailable, "stats unavailable: no transcript recorder configured")
		return
	}

	targetDate := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		targetDate = parsed
	}

	events, err := s.recorder.LoadEvents()
	if err != nil {
		log.Printf("❌ Failed to load transcript events: %v", err)
		writeError(w, http.StatusInternalServerError, "service temporarily unavailable")
		return
	}
	writeJSON(w, http.StatusOK, analytics.AnalyzeDailyEvents(events, targetDate))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "heartlift",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.startTime).String(),
	})
}

func (s *Server) record(ev storage.Event) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.AppendEvent(ev); err != nil {
		log.Printf("⚠️ Failed to record event: %v", err)
	}
}
