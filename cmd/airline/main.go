package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"recordkeep/internal/airline"
	"recordkeep/internal/logging"
	"recordkeep/internal/menu"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "airline",
		Short: "In-memory airline booking demo",
		Long:  "Menu-driven airline flight and ticket manager. All state lives in memory and is lost on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile, _ := cmd.Flags().GetString("log-file")
			debug, _ := cmd.Flags().GetBool("debug")

			logger, err := logging.New(logFile, debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %v", err)
			}
			defer logger.Sync()

			logger.Info("airline session started")

			app := airline.NewApp(airline.NewSystem(), logger)
			prompter := menu.NewPrompter(os.Stdin, os.Stdout)
			return app.Menu(prompter).Run(prompter)
		},
	}

	rootCmd.Flags().String("log-file", envOr("AIRLINE_LOG_FILE", "airline.log"), "Session log file")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
