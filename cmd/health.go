package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the connection to the server",
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := newAPIClient()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		lang := cfg.GetLanguage()

		status, err := client.Health(context.Background())
		if err != nil {
			fmt.Println(i18n.T(lang, "status.disconnected"))
			fmt.Println(userFacing(err, lang))
			os.Exit(1)
		}

		if !status.Connected() {
			fmt.Printf("%s (%s)\n", i18n.T(lang, "status.disconnected"), status.Status)
			os.Exit(1)
		}

		fmt.Printf("%s — %s", i18n.T(lang, "status.connected"), client.BaseURL())
		if status.Version != "" {
			fmt.Printf(" (v%s)", status.Version)
		}
		fmt.Println()
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
