package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordsaver/internal/config"
	"wordsaver/internal/handler"
	"wordsaver/internal/httpapi"
	"wordsaver/internal/middleware"
	"wordsaver/internal/scheduler"
	"wordsaver/internal/service"
	"wordsaver/internal/speech"
	"wordsaver/internal/translation"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Wordsaver Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("storage", cfg.StorageDriver),
		zap.String("translator", cfg.Translation.Provider),
	)

	storage, err := openStorage(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	logger.Info("Storage ready")

	// Initialize services
	authService := service.NewAuthService(storage.users, cfg.BotPassword)
	scoreService := service.NewScoreService(storage.store, logger)
	vocabService := service.NewVocabularyService(storage.store, scoreService, logger,
		service.WithLocation(cfg.Location),
	)
	reviewService := service.NewReviewService(vocabService, cfg.ReviewSize)
	translator := newTranslator(cfg)

	speechConfig := speech.DefaultConfig()
	speechConfig.Binary = cfg.Speech.Binary
	speechConfig.Voice = cfg.Speech.Voice
	speechConfig.Speed = cfg.Speech.Speed
	synth := speech.NewESpeak(speechConfig)
	if err := synth.Available(); err != nil {
		logger.Warn("Speech synthesis unavailable", zap.Error(err))
	}

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	limiter := middleware.NewRateLimiter[int64](cfg.RateLimitRPS, cfg.RateLimitBurst)
	bot.Use(middleware.BotRateLimit(limiter, logger))

	h := handler.NewHandler(bot, handler.Services{
		Auth:       authService,
		Vocabulary: vocabService,
		Scores:     scoreService,
		Review:     reviewService,
		Translator: translator,
		Speech:     synth,
	}, logger)
	h.RegisterHandlers(middleware.AuthMiddleware(authService, logger))
	scoreService.OnLevelUp(h.NotifyLevelUp)

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Daily review reminders
	reminders := service.NewReminderService(storage.store, storage.users, h, logger)
	sched := scheduler.New(reminders, cfg.ReminderInterval, cfg.Location, logger)
	if err := sched.Start(ctx); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Optional JSON API
	var srv *http.Server
	if cfg.HTTPAddr != "" {
		api := httpapi.NewServer(httpapi.Services{
			Auth:       authService,
			Vocabulary: vocabService,
			Scores:     scoreService,
			Review:     reviewService,
			Translator: translator,
		}, httpapi.Options{
			APIToken:       cfg.APIToken,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		}, logger)

		srv = &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           api.Router(),
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		}
		go func() {
			logger.Info("HTTP API listening", zap.String("addr", cfg.HTTPAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("HTTP server failed", zap.Error(err))
			}
		}()
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping...")

	// Graceful shutdown
	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown", zap.Error(err))
		}
		shutdownCancel()
	}
	sched.Stop()
	bot.Stop()
	cancel()

	logger.Info("Stopped gracefully")
}

// newTranslator builds the configured translation backend
func newTranslator(cfg *config.Config) translation.Translator {
	t := cfg.Translation
	if t.Provider == config.ProviderOpenAI {
		return translation.NewOpenAITranslator(openai.DefaultConfig(t.OpenAIKey), t.OpenAIModel, t.SourceLang, t.TargetLang)
	}
	return translation.NewClient(t.BaseURL, t.SourceLang, t.TargetLang)
}
