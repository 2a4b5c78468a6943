package cmd

import (
	"fmt"
	"log"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage backend profiles",
	Long:  `Manage backend profiles for different AgriDetect servers and languages.`,
}

var listProfilesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fmt.Printf("Active Profile: %s\n\n", cfg.ActiveProfile)
		fmt.Println("Available Profiles:")
		for name, profile := range cfg.Profiles {
			marker := ""
			if name == cfg.ActiveProfile {
				marker = " (active)"
			}
			fmt.Printf("  %s%s\n", name, marker)
			fmt.Printf("    Server: %s\n", profile.BaseURL)
			if profile.Language != "" {
				fmt.Printf("    Language: %s\n", profile.Language)
			}
			fmt.Println()
		}
	},
}

var showProfileCmd = &cobra.Command{
	Use:   "show [profile-name]",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName := args[0]
		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		fmt.Printf("Profile: %s\n", profileName)
		fmt.Printf("Server: %s\n", profile.BaseURL)
		fmt.Printf("Language: %s\n", orDefault(profile.Language, config.DefaultLanguage))
		fmt.Printf("Analyze timeout: %s\n", secondsOrDefault(profile.AnalyzeTimeoutSec))
		fmt.Printf("Request timeout: %s\n", secondsOrDefault(profile.RequestTimeoutSec))
	},
}

var addProfileCmd = &cobra.Command{
	Use:   "add [profile-name]",
	Short: "Add a new profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		var profileName string
		if len(args) > 0 {
			profileName = args[0]
		} else {
			prompt := promptui.Prompt{
				Label: "Profile name",
			}
			profileName, err = prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
		}

		if _, exists := cfg.Profiles[profileName]; exists {
			log.Fatalf("Profile '%s' already exists", profileName)
		}

		profile, err := promptProfile(config.Profile{
			BaseURL:  config.DefaultBaseURL,
			Language: config.DefaultLanguage,
		})
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = profile

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' added successfully!\n", profileName)
	},
}

var editProfileCmd = &cobra.Command{
	Use:   "edit [profile-name]",
	Short: "Edit an existing profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := pickProfileName(cfg, args, "Select profile to edit", false)
		if err != nil {
			log.Fatalf("%v", err)
		}

		profile, exists := cfg.Profiles[profileName]
		if !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		updated, err := promptProfile(profile)
		if err != nil {
			log.Fatalf("Prompt failed: %v", err)
		}

		cfg.Profiles[profileName] = updated

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' updated successfully!\n", profileName)
	},
}

var deleteProfileCmd = &cobra.Command{
	Use:   "delete [profile-name]",
	Short: "Delete a profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := pickProfileName(cfg, args, "Select profile to delete", false)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		confirmPrompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete profile '%s'? (y/N)", profileName),
			IsConfirm: true,
		}
		if _, err = confirmPrompt.Run(); err != nil {
			fmt.Println("Deletion cancelled")
			return
		}

		// Keep a usable active profile behind.
		if cfg.ActiveProfile == profileName {
			for name := range cfg.Profiles {
				if name != profileName {
					cfg.ActiveProfile = name
					break
				}
			}
			if len(cfg.Profiles) == 1 {
				cfg.ActiveProfile = "default"
				cfg.Profiles["default"] = config.Profile{
					BaseURL:  config.DefaultBaseURL,
					Language: config.DefaultLanguage,
				}
			}
		}

		delete(cfg.Profiles, profileName)

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Profile '%s' deleted successfully!\n", profileName)
	},
}

var switchProfileCmd = &cobra.Command{
	Use:   "switch [profile-name]",
	Short: "Switch to a different profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		profileName, err := pickProfileName(cfg, args, "Select profile to switch to", true)
		if err != nil {
			log.Fatalf("%v", err)
		}

		if _, exists := cfg.Profiles[profileName]; !exists {
			log.Fatalf("Profile '%s' does not exist", profileName)
		}

		cfg.ActiveProfile = profileName

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Printf("Switched to profile '%s'\n", profileName)
	},
}

// promptProfile asks for every field, seeded with current values.
func promptProfile(current config.Profile) (config.Profile, error) {
	profile := current

	baseURLPrompt := promptui.Prompt{
		Label:   "Server URL",
		Default: current.BaseURL,
	}
	baseURL, err := baseURLPrompt.Run()
	if err != nil {
		return profile, err
	}
	profile.BaseURL = baseURL

	languageSelect := promptui.Select{
		Label:     "Language",
		Items:     i18n.Languages(),
		CursorPos: languageIndex(current.Language),
	}
	_, language, err := languageSelect.Run()
	if err != nil {
		return profile, err
	}
	profile.Language = language

	profile.AnalyzeTimeoutSec, err = promptSeconds("Analyze timeout in seconds (empty for default)", current.AnalyzeTimeoutSec)
	if err != nil {
		return profile, err
	}
	profile.RequestTimeoutSec, err = promptSeconds("Request timeout in seconds (empty for default)", current.RequestTimeoutSec)
	if err != nil {
		return profile, err
	}

	return profile, nil
}

func promptSeconds(label string, current int) (int, error) {
	def := ""
	if current > 0 {
		def = strconv.Itoa(current)
	}
	prompt := promptui.Prompt{
		Label:   label,
		Default: def,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			sec, err := strconv.Atoi(input)
			if err != nil || sec <= 0 {
				return fmt.Errorf("enter a positive number of seconds")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func pickProfileName(cfg *config.Config, args []string, label string, excludeActive bool) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	profileNames := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		if excludeActive && name == cfg.ActiveProfile {
			continue
		}
		profileNames = append(profileNames, name)
	}
	if len(profileNames) == 0 {
		return "", fmt.Errorf("no profiles available")
	}

	prompt := promptui.Select{
		Label: label,
		Items: profileNames,
	}
	_, profileName, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection failed: %w", err)
	}
	return profileName, nil
}

func languageIndex(lang string) int {
	for i, code := range i18n.Languages() {
		if code == lang {
			return i
		}
	}
	return 0
}

func orDefault(value, def string) string {
	if value == "" {
		return def + " (default)"
	}
	return value
}

func secondsOrDefault(sec int) string {
	if sec <= 0 {
		return "default"
	}
	return fmt.Sprintf("%ds", sec)
}

func init() {
	// Add subcommands to profile
	profileCmd.AddCommand(listProfilesCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(addProfileCmd)
	profileCmd.AddCommand(editProfileCmd)
	profileCmd.AddCommand(deleteProfileCmd)
	profileCmd.AddCommand(switchProfileCmd)
}
