package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/ui/components"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the server detection statistics",
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := newAPIClient()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		lang := cfg.GetLanguage()

		stats, err := client.FetchDashboard(context.Background())
		if err != nil {
			log.Fatalf("%s", userFacing(err, lang))
		}

		fmt.Printf("%s: %d\n", i18n.T(lang, "dashboard.total"), stats.TotalDetections)
		fmt.Printf("%s: %d\n", i18n.T(lang, "dashboard.users"), stats.ActiveUsers)
		fmt.Printf("%s: %d\n", i18n.T(lang, "dashboard.diseases"), stats.DiseasesDetected)
		fmt.Printf("%s: %.1f%%\n", i18n.T(lang, "dashboard.success"), stats.SuccessRate)

		top := components.RankTopDiseases(stats.TopDiseases, 5)
		if len(top) > 0 {
			fmt.Println("\n" + i18n.T(lang, "dashboard.top") + ":")
			for _, disease := range top {
				fmt.Printf("  %-28s %d\n", disease.Name, disease.Count)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
