package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uidejarvis/jarvis/internal/api"
	"github.com/uidejarvis/jarvis/internal/domain/assistant"
	"github.com/uidejarvis/jarvis/internal/infra/config"
	"github.com/uidejarvis/jarvis/internal/infra/llm"
	"github.com/uidejarvis/jarvis/internal/infra/logging"
	"github.com/uidejarvis/jarvis/internal/server"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			defer zap.ReplaceGlobals(logger)()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (default $JARVIS_CONFIG)")
	return cmd
}

// serve runs the HTTP server until ctx is canceled, then drains it.
func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	provider := newProvider(cfg.LLM)
	meta := provider.ModelInfo()
	logger.Info("llm provider selected",
		zap.String("provider", meta.Provider),
		zap.String("model", meta.ID))

	router := api.NewRouter(api.Dependencies{
		Answers:        assistant.NewAnswerService(provider, cfg.LLM.Timeout, logger.Named("assistant")),
		Provider:       provider,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Logger:         logger,
	})
	srv := server.NewServer(router, cfg.Server, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// newProvider registers every configured backend and routes to the selected one.
func newProvider(cfg config.LLMConfig) *llm.Router {
	return llm.NewRouter(map[string]llm.LLMProvider{
		config.ProviderOllama: llm.NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.Timeout),
		config.ProviderOpenAI: llm.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.Timeout),
	}, cfg.Provider)
}
