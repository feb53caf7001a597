package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Mattyc1998/heartlift/internal/analysis"
	"github.com/Mattyc1998/heartlift/internal/assessment"
	"github.com/Mattyc1998/heartlift/internal/coach"
	"github.com/Mattyc1998/heartlift/internal/config"
	"github.com/Mattyc1998/heartlift/internal/history"
	"github.com/Mattyc1998/heartlift/internal/llm"
	"github.com/Mattyc1998/heartlift/internal/quiz"
	"github.com/Mattyc1998/heartlift/internal/quota"
	"github.com/Mattyc1998/heartlift/internal/scheduler"
	"github.com/Mattyc1998/heartlift/internal/server"
	"github.com/Mattyc1998/heartlift/internal/storage"
	"github.com/Mattyc1998/heartlift/internal/subscription"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	factory := &llm.Factory{
		OpenaiAPIKey:       cfg.OpenAIAPIKey,
		OpenaiBaseURL:      cfg.OpenAIBaseURL,
		OpenaiModel:        cfg.OpenAIModel,
		OpenRouterReferrer: cfg.OpenRouterReferrer,
		OpenRouterTitle:    cfg.OpenRouterTitle,
		YandexOAuthToken:   cfg.YandexOAuthToken,
		YandexFolderID:     cfg.YandexFolderID,
	}
	llmClient, err := factory.CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	// Quota ledger: Postgres when a DSN is configured, otherwise the
	// in-process store. The subscription source follows the same split.
	var (
		quotaStore quota.Store
		subs       subscription.Checker
	)
	if cfg.DatabaseURL != "" {
		db, err := quota.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to open quota database: %v", err)
		}
		defer db.Close()

		pgStore, err := quota.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("failed to init quota store: %v", err)
		}
		quotaStore = pgStore

		checker, err := subscription.NewPostgresChecker(db)
		if err != nil {
			log.Fatalf("failed to init subscription checker: %v", err)
		}
		subs = checker
		log.Printf("💾 Using Postgres quota ledger")
	} else {
		quotaStore = quota.NewMemoryStore()
		subs = subscription.NewStaticChecker(cfg.PremiumUsers)
		log.Printf("💾 Using in-memory quota ledger (%d premium users from env)", len(cfg.PremiumUsers))
	}

	quotaSvc := quota.NewService(quotaStore, cfg.DailyMessageLimit, cfg.QuotaRetentionDays)

	var recorder storage.Recorder
	if cfg.TranscriptFilePath != "" {
		fr, err := storage.NewFileRecorder(cfg.TranscriptFilePath)
		if err != nil {
			log.Printf("failed to init transcript recorder: %v", err)
		} else {
			recorder = fr
		}
	}

	quizSvc := quiz.NewService(llmClient, quiz.NewMemoryCache(), cfg.QuizTimeout)
	assessSvc := assessment.NewService(assessment.NewComposer(llmClient, cfg.AnalysisTimeout))
	coachSvc := coach.NewService(llmClient, quotaSvc, subs, history.NewManager(40), recorder, cfg.ChatTimeout)
	suggester := coach.NewSuggester(llmClient, cfg.ChatTimeout)
	analyzer := analysis.NewAnalyzer(llmClient, cfg.AnalysisTimeout)

	sched := scheduler.New()
	sched.SetSweepFunction(func(ctx context.Context) error {
		n, err := quotaSvc.Sweep(ctx)
		if err != nil {
			return err
		}
		log.Printf("🧹 Nightly sweep removed %d expired quota rows", n)
		return nil
	})
	sched.SetWarmupFunction(func(ctx context.Context) error {
		result := quizSvc.GetOrGenerate(ctx, "attachment", 10)
		if result.Fallback {
			log.Printf("⚠️ Quiz warmup served fallback questions, will retry on first user request")
		}
		return nil
	})
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	srv := server.New(cfg.HTTPPort, quizSvc, assessSvc, coachSvc, suggester, analyzer, quotaSvc, subs, recorder)

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("HTTP server stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("failed to stop server cleanly: %v", err)
	}
}
