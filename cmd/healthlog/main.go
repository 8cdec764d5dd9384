package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"recordkeep/internal/health"
	"recordkeep/internal/logging"
	"recordkeep/internal/menu"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "healthlog",
		Short: "Personal health checkup log",
		Long:  "Menu-driven health log backed by an append-only CSV file, with terminal trend plots and spreadsheet export.",
		RunE: func(cmd *cobra.Command, args []string) error {
			csvPath, _ := cmd.Flags().GetString("csv")
			exportPath, _ := cmd.Flags().GetString("export")
			logFile, _ := cmd.Flags().GetString("log-file")
			debug, _ := cmd.Flags().GetBool("debug")

			logger, err := logging.New(logFile, debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %v", err)
			}
			defer logger.Sync()

			log := health.NewLog(csvPath)
			if err := log.Ensure(); err != nil {
				return err
			}

			logger.Info("healthlog session started")

			app := health.NewApp(log, exportPath, logger)
			prompter := menu.NewPrompter(os.Stdin, os.Stdout)
			return app.Menu(prompter).Run(prompter)
		},
	}

	rootCmd.Flags().String("csv", envOr("HEALTH_LOG_CSV", "health_log.csv"), "Health log CSV file")
	rootCmd.Flags().String("export", envOr("HEALTH_LOG_XLSX", "health_log.xlsx"), "Spreadsheet export file")
	rootCmd.Flags().String("log-file", envOr("HEALTH_LOG_FILE", "healthlog.log"), "Session log file")
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
