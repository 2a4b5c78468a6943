package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var diseasesCrop string

var diseasesCmd = &cobra.Command{
	Use:   "diseases",
	Short: "List the common diseases known to the server",
	Run: func(cmd *cobra.Command, args []string) {
		client, cfg, err := newAPIClient()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		lang := cfg.GetLanguage()

		diseases, err := client.CommonDiseases(context.Background(), diseasesCrop, lang)
		if err != nil {
			log.Fatalf("%s", userFacing(err, lang))
		}

		for _, disease := range diseases {
			fmt.Printf("%s", disease.Name)
			if disease.Severity != "" {
				fmt.Printf(" [%s]", disease.Severity)
			}
			fmt.Println()
			if len(disease.CropsAffected) > 0 {
				fmt.Printf("  Cultures: %s\n", strings.Join(disease.CropsAffected, ", "))
			}
			if len(disease.Symptoms) > 0 {
				fmt.Printf("  Symptômes: %s\n", strings.Join(disease.Symptoms, "; "))
			}
			if len(disease.Treatment) > 0 {
				fmt.Printf("  Traitements: %s\n", strings.Join(disease.Treatment, "; "))
			}
			fmt.Println()
		}
	},
}

func init() {
	diseasesCmd.Flags().StringVar(&diseasesCrop, "crop", "", "only diseases affecting this crop")
	rootCmd.AddCommand(diseasesCmd)
}
