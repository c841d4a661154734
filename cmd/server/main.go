package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirius-edu/sirius/internal/answer"
	"github.com/sirius-edu/sirius/internal/api"
	"github.com/sirius-edu/sirius/internal/config"
	"github.com/sirius-edu/sirius/internal/db"
	"github.com/sirius-edu/sirius/internal/llm"
	"github.com/sirius-edu/sirius/internal/logger"
	"github.com/sirius-edu/sirius/internal/repository/sqlite"
	"github.com/sirius-edu/sirius/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogJSON)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log.Info().
		Str("addr", cfg.Addr).
		Str("db_path", cfg.DBPath).
		Str("llm_model", cfg.LLMModel).
		Str("speech_to_text_model", cfg.SpeechToTextModel).
		Msg("starting sirius server")

	database, err := db.Open(cfg.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer func() {
		log.Debug().Msg("closing database connection")
		database.Close()
	}()

	provider, err := llm.NewOpenAIProvider(llm.OpenAIConfig{
		APIKey:            cfg.OpenAIAPIKey,
		BaseURL:           cfg.OpenAIBaseURL,
		Model:             cfg.LLMModel,
		SpeechToTextModel: cfg.SpeechToTextModel,
		MaxTokens:         cfg.LLMMaxTokens,
		Timeout:           cfg.LLMTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create LLM provider")
	}

	// Repositories
	templateRepo := sqlite.NewPromptTemplateRepository(database.DB)
	courseRepo := sqlite.NewCourseRepository(database.DB)
	studentRepo := sqlite.NewStudentRepository(database.DB)
	challengeRepo := sqlite.NewChallengeRepository(database.DB)
	statRepo := sqlite.NewStatRepository(database.DB)
	spacedRepo := sqlite.NewSpacedRepetitionRepository(database.DB)
	progressRepo := sqlite.NewProgressRepository(database.DB)

	// Services
	spacedService := services.NewSpacedRepetitionService(spacedRepo)
	normalizer := answer.NewNormalizer(provider, cfg.AudioTempDir)
	challengeService := services.NewChallengeService(
		studentRepo, courseRepo, challengeRepo, templateRepo,
		progressRepo, statRepo, spacedService, provider, normalizer,
	)
	courseService := services.NewCourseService(
		studentRepo, courseRepo, challengeRepo, progressRepo, spacedService,
	)
	statsService := services.NewStatsService(studentRepo, challengeRepo, statRepo)
	metricsService := services.NewMetricsService(studentRepo, statRepo)
	templateService := services.NewTemplateService(templateRepo)

	srv := &api.Server{
		Challenges:    challengeService,
		Courses:       courseService,
		Stats:         statsService,
		Metrics:       metricsService,
		Templates:     templateService,
		Log:           log,
		MaxAudioBytes: cfg.MaxAudioBytes,
	}

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Routes(),
		// Generation calls can take a while; the write timeout must outlast
		// the provider timeout.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
