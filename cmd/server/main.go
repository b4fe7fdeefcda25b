package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/salescoach/backend/internal/ai"
	"github.com/salescoach/backend/internal/config"
	httpapi "github.com/salescoach/backend/internal/http"
	"github.com/salescoach/backend/internal/service"
	"github.com/salescoach/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "salescoach-backend").Logger()

	ctx := context.Background()
	st, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect db")
	}
	defer st.Close()

	var model ai.Model
	switch {
	case cfg.GeminiAPIKey != "":
		model, err = ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ModelTemperature, cfg.ModelTopP)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to init gemini client")
		}
		logger.Info().Str("model", cfg.GeminiModel).Msg("using gemini model")
	case cfg.AssistantBaseURL != "":
		model = ai.OpenAICompat{
			BaseURL:     cfg.AssistantBaseURL,
			Model:       cfg.AssistantModel,
			APIKey:      cfg.AssistantAPIKey,
			Temperature: cfg.ModelTemperature,
		}
		logger.Info().Str("model", cfg.AssistantModel).Msg("using openai-compatible model")
	default:
		model = ai.MockModel{ModelVersion: "mock-v1"}
		logger.Info().Msg("using mock model")
	}

	advisor := &service.Advisor{Store: st, Model: model, Logger: logger}

	router := httpapi.Router(cfg, st, advisor, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
