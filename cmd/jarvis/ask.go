package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uidejarvis/jarvis/internal/domain/assistant"
	"github.com/uidejarvis/jarvis/internal/infra/config"
	"github.com/uidejarvis/jarvis/internal/infra/logging"
)

func newAskCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ask message...",
		Short: "Ask the assistant a single question",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			answers := assistant.NewAnswerService(newProvider(cfg.LLM), cfg.LLM.Timeout, logger.Named("assistant"))
			answer, err := answers.Generate(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer) //nolint:errcheck
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file (default $JARVIS_CONFIG)")
	return cmd
}
