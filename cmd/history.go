package cmd

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past analyses recorded on this machine",
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := config.Dir()
		if err != nil {
			log.Fatalf("Failed to locate data directory: %v", err)
		}

		store, err := history.Open(filepath.Join(dir, "history.db"))
		if err != nil {
			log.Fatalf("Failed to open history: %v", err)
		}
		defer store.Close()

		detections, err := store.RecentDetections(historyLimit)
		if err != nil {
			log.Fatalf("Failed to read history: %v", err)
		}

		if len(detections) == 0 {
			fmt.Println("No analyses recorded yet.")
			return
		}

		for _, d := range detections {
			fmt.Printf("%s  %-30s %s", d.DetectedAt.Format("2006-01-02 15:04"), d.DiseaseName, api.FormatPercent(d.Confidence))
			if d.Crop != "" {
				fmt.Printf("  (%s)", d.Crop)
			}
			fmt.Println()
		}
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
