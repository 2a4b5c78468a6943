package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/history"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/imagefile"
)

var detectCrop string

var detectCmd = &cobra.Command{
	Use:   "detect [image-path]",
	Short: "Analyze a plant photo without the interactive UI",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := newAPIClient()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		lang := cfg.GetLanguage()

		preview, err := imagefile.Validate(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("%s (%s, %s)\n", preview.Name, preview.HumanSize(), preview.ContentType)

		result, err := client.DetectDisease(context.Background(), preview.Path, detectCrop, lang)
		if err != nil {
			log.Fatalf("%s", userFacing(err, lang))
		}

		printResult(lang, result)
		recordDetection(result, preview.Path)
	},
}

func printResult(lang string, result *api.AnalysisResult) {
	name := result.DiseaseName
	if name == "" {
		name = i18n.T(lang, "result.unknown")
	}
	fmt.Printf("\n%s\n", name)
	fmt.Printf("%s: %s\n", i18n.T(lang, "result.confidence"), api.FormatPercent(result.Confidence))
	if result.Severity != "" {
		fmt.Printf("%s: %s\n", i18n.T(lang, "result.severity"), result.Severity)
	}
	if result.AffectedCrop != "" {
		fmt.Printf("%s: %s\n", i18n.T(lang, "result.crop"), result.AffectedCrop)
	}

	if result.IsHealthy() {
		fmt.Println("\n" + i18n.T(lang, "result.healthy"))
		return
	}

	if len(result.Treatments) > 0 {
		fmt.Println("\n" + i18n.T(lang, "result.treatments") + ":")
		for _, treatment := range result.Treatments {
			line := "  - " + treatment.Name
			if treatment.Description != "" {
				line += ": " + treatment.Description
			}
			fmt.Println(line)
		}
	}
	if len(result.PreventionTips) > 0 {
		fmt.Println("\n" + i18n.T(lang, "result.prevention") + ":")
		for _, tip := range result.PreventionTips {
			fmt.Println("  - " + tip)
		}
	}
}

// recordDetection mirrors what the interactive app stores, so `history`
// sees one-shot analyses too.
func recordDetection(result *api.AnalysisResult, imagePath string) {
	dir, err := config.Dir()
	if err != nil {
		return
	}
	store, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		slog.Warn("history store unavailable", "error", err)
		return
	}
	defer store.Close()

	err = store.RecordDetection(&history.Detection{
		DiseaseName: result.DiseaseName,
		Confidence:  result.Confidence,
		Severity:    result.Severity,
		Crop:        result.AffectedCrop,
		ImagePath:   imagePath,
	})
	if err != nil {
		slog.Warn("failed to record detection", "error", err)
	}
}

func init() {
	detectCmd.Flags().StringVar(&detectCrop, "crop", "", "crop type hint sent to the server")
	rootCmd.AddCommand(detectCmd)
}
