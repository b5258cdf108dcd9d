package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spacesedan/redlytics/config"
	"github.com/spacesedan/redlytics/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "redlytics",
	Short: "Analyze a Reddit user's public activity",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		config.LoadEnv(env)
		logging.InitLogger(config.Load().LogLevel)
	},
	SilenceUsage: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(analyzeCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		slog.Debug("[Main] Command failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
