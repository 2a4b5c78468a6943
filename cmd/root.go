package cmd

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/app"
	"github.com/Toup95/AgriDetec-test/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "agridetect",
	Short: "Terminal client for the AgriDetect plant disease service",
	Long:  `AgriDetect analyzes plant photos, answers farming questions and shows detection statistics, all from the terminal.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; variables already set in the environment win.
		_ = godotenv.Load()
		setupLogging()
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior: run the interactive application
		application, err := app.NewApplication()
		if err != nil {
			log.Fatalf("Failed to create application: %v", err)
		}
		defer application.Stop()

		if err := application.Start(); err != nil {
			log.Fatalf("Application error: %v", err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution error: %v", err)
		os.Exit(1)
	}
}

// setupLogging sends slog output to a file; the alternate screen must
// never receive log lines.
func setupLogging() {
	dir, err := config.Dir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "agridetect.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(profileCmd)
}
