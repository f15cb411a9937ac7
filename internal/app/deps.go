package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"tiny-ai/internal/config"
	"tiny-ai/internal/extract"
	"tiny-ai/internal/llm"
	"tiny-ai/internal/logger"
	"tiny-ai/internal/session"
	"tiny-ai/internal/view"
)

// Deps bundles the runtime dependencies of the web service.
type Deps struct {
	Config config.Config
	Log    *slog.Logger

	// LLM is nil when no credential was configured; ConfigErr then says why.
	LLM       llm.Client
	ConfigErr error

	Extractor extract.Extractor
	Sessions  *session.Manager
	Views     *view.Renderer
}

// Build loads .env (when present), config, and shared components.
// A missing completion credential is not fatal: it is recorded in ConfigErr.
// newOCR builds the image text engine from the configured languages.
func Build(newOCR func(languages ...string) extract.OCR) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llmClient, cfgErr := buildLLM(cfg, log)
	store, err := buildSessionStore(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize sessions: %w", err)
	}
	views, err := view.New()
	if err != nil {
		return Deps{}, fmt.Errorf("failed to parse templates: %w", err)
	}

	return Deps{
		Config:    cfg,
		Log:       log,
		LLM:       llmClient,
		ConfigErr: cfgErr,
		Extractor: extract.NewService(newOCR(cfg.OCRLanguages...), log),
		Sessions:  session.NewManager(store, cfg.SessionLifetime()),
		Views:     views,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	client, err := llm.NewOpenAIClient(cfg.APIKey, openai.ChatModel(cfg.LLMModel), option.WithBaseURL(cfg.LLMBaseURL))
	if err != nil {
		log.Error("completion client disabled", "err", err)
		return nil, err
	}
	log.Info("using OpenAI-compatible completion client", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	return client, nil
}

func buildSessionStore(cfg config.Config, log *slog.Logger) (session.Store, error) {
	switch cfg.SessionProvider {
	case "memory", "":
		log.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.SessionLifetime()), nil
	case "redis":
		st, err := session.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionLifetime())
		if err != nil {
			log.Warn("redis unavailable, falling back to in-memory sessions", "err", err, "addr", cfg.RedisAddr)
			return session.NewMemoryStore(cfg.SessionLifetime()), nil
		}
		log.Info("using Redis session store", "addr", cfg.RedisAddr)
		return st, nil
	default:
		return nil, fmt.Errorf("invalid SESSION_PROVIDER: %s (valid options: memory, redis)", cfg.SessionProvider)
	}
}
