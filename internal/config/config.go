package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// OpenRouter (optional)
	OpenRouterReferrer string `env:"OPENROUTER_REFERRER"`
	OpenRouterTitle    string `env:"OPENROUTER_TITLE"`

	// Narrative-model timeouts. Quiz generation sits on a synchronous
	// user-facing path and gets the short deadline; assessment analysis
	// is an explicit one-shot action where the user expects to wait.
	QuizTimeout     time.Duration `env:"QUIZ_TIMEOUT" envDefault:"6s"`
	AnalysisTimeout time.Duration `env:"ANALYSIS_TIMEOUT" envDefault:"12s"`
	ChatTimeout     time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`

	// Quota ledger
	DatabaseURL        string `env:"DATABASE_URL"`
	DailyMessageLimit  int    `env:"DAILY_MESSAGE_LIMIT" envDefault:"10"`
	QuotaRetentionDays int    `env:"QUOTA_RETENTION_DAYS" envDefault:"7"`

	// Premium users seeded from env when no subscription table is
	// available (colon-separated user ids)
	PremiumUsers []string `env:"PREMIUM_USERS" envSeparator:":"`

	// Storage
	TranscriptFilePath string `env:"TRANSCRIPT_FILE_PATH" envDefault:"logs/transcript.jsonl"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
