package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultLanguage = "fr"
)

// Profile is one backend configuration.
type Profile struct {
	BaseURL           string `json:"base_url"`
	Language          string `json:"language,omitempty"`
	AnalyzeTimeoutSec int    `json:"analyze_timeout_sec,omitempty"`
	RequestTimeoutSec int    `json:"request_timeout_sec,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Load existing config or create default
	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Validate and set current profile
	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	config.applyEnvOverrides()
	return config, nil
}

func (c *Config) IsValid() bool {
	return c.currentProfile != nil && c.currentProfile.BaseURL != ""
}

func (c *Config) GetBaseURL() string {
	if c.currentProfile == nil {
		return DefaultBaseURL
	}
	return c.currentProfile.BaseURL
}

func (c *Config) GetLanguage() string {
	if c.currentProfile == nil || c.currentProfile.Language == "" {
		return DefaultLanguage
	}
	return c.currentProfile.Language
}

func (c *Config) GetAnalyzeTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.AnalyzeTimeoutSec <= 0 {
		return api.DefaultAnalyzeTimeout
	}
	return time.Duration(c.currentProfile.AnalyzeTimeoutSec) * time.Second
}

func (c *Config) GetRequestTimeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.RequestTimeoutSec <= 0 {
		return api.DefaultRequestTimeout
	}
	return time.Duration(c.currentProfile.RequestTimeoutSec) * time.Second
}

// Dir returns the directory holding config, session and history files.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

// applyEnvOverrides lets AGRIDETECT_* variables win over the profile,
// which keeps scripted invocations independent of the config file.
func (c *Config) applyEnvOverrides() {
	if c.currentProfile == nil {
		return
	}
	if v := os.Getenv("AGRIDETECT_BASE_URL"); v != "" {
		c.currentProfile.BaseURL = v
	}
	if v := os.Getenv("AGRIDETECT_LANG"); v != "" {
		c.currentProfile.Language = v
	}
	if v := os.Getenv("AGRIDETECT_ANALYZE_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			c.currentProfile.AnalyzeTimeoutSec = sec
		}
	}
	if v := os.Getenv("AGRIDETECT_REQUEST_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			c.currentProfile.RequestTimeoutSec = sec
		}
	}
}

func getConfigPath() (string, error) {
	var configDir string

	// Use AGRIDETECT_HOME if set, otherwise use user's home directory
	if agriHome := os.Getenv("AGRIDETECT_HOME"); agriHome != "" {
		configDir = agriHome
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".agridetect")
	}

	return filepath.Join(configDir, "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	// Read existing config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := &Config{
		Profiles: map[string]Profile{
			"default": {
				BaseURL:  DefaultBaseURL,
				Language: DefaultLanguage,
			},
		},
		ActiveProfile: "default",
	}

	// Save default config to file
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if c.Profiles == nil {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// If active profile doesn't exist, try to use the first available profile
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			exists = true
			break
		}
	}

	if !exists {
		return fmt.Errorf("no valid profiles found")
	}

	c.currentProfile = &profile
	return nil
}
