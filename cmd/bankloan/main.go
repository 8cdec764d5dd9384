package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"recordkeep/internal/loan"
	"recordkeep/internal/logging"
	"recordkeep/internal/menu"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bankloan",
		Short: "Bank loan tracker",
		Long:  "Menu-driven customer and loan manager backed by a local sqlite file, or postgres when the DSN is a postgres URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, _ := cmd.Flags().GetString("db")
			logFile, _ := cmd.Flags().GetString("log-file")
			debug, _ := cmd.Flags().GetBool("debug")

			logger, err := logging.New(logFile, debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %v", err)
			}
			defer logger.Sync()

			db, err := loan.OpenDB(dsn)
			if err != nil {
				return err
			}

			logger.Info("bankloan session started")

			app := loan.NewApp(loan.NewStore(db), logger)
			prompter := menu.NewPrompter(os.Stdin, os.Stdout)
			return app.Menu(prompter).Run(prompter)
		},
	}

	rootCmd.Flags().String("db", envOr("BANK_LOAN_DSN", "bank_loan.db"), "Database file or postgres DSN")
	rootCmd.Flags().String("log-file", envOr("BANK_LOAN_LOG_FILE", "bankloan.log"), "Session log file")
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
