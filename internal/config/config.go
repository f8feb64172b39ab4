package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultFile is the config file read when --config is not given.
const DefaultFile = "config.json"

// DefaultResultFile is where reconciliation results are persisted.
const DefaultResultFile = "unwatched_media.json"

// Config holds all configuration for the application
type Config struct {
	TautulliHost  string
	TautulliToken string
	SonarrHost    string
	SonarrToken   string
	RadarrHost    string
	RadarrToken   string

	// Docker prefixes output with timestamps for container logs
	Docker bool

	// Tautulli section IDs; which section holds which kind of media is
	// deployment specific, so both are configurable
	MovieSectionID int
	ShowSectionID  int

	// Global settings
	RequestTimeout time.Duration
	PageLength     int
	LogLevel       string
	ResultFile     string
}

// fileConfig mirrors the JSON config file layout
type fileConfig struct {
	TautulliHost   string `json:"tautulli_host"`
	TautulliToken  string `json:"tautulli_token"`
	SonarrHost     string `json:"sonarr_host"`
	SonarrToken    string `json:"sonarr_token"`
	RadarrHost     string `json:"radarr_host"`
	RadarrToken    string `json:"radarr_token"`
	Docker         bool   `json:"DOCKER"`
	MovieSectionID int    `json:"movie_section_id"`
	ShowSectionID  int    `json:"show_section_id"`
}

// Load reads the config file at path and applies environment overrides.
// A missing file is tolerated because the environment or CLI flags may
// supply every required value; Validate decides after merging.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore errors - .env file is optional)
	_ = godotenv.Load()

	config := &Config{
		// Default values
		MovieSectionID: 1,
		ShowSectionID:  2,
		RequestTimeout: 30 * time.Second,
		PageLength:     5000,
		LogLevel:       "INFO",
		ResultFile:     DefaultResultFile,
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		config.TautulliHost = fc.TautulliHost
		config.TautulliToken = fc.TautulliToken
		config.SonarrHost = fc.SonarrHost
		config.SonarrToken = fc.SonarrToken
		config.RadarrHost = fc.RadarrHost
		config.RadarrToken = fc.RadarrToken
		config.Docker = fc.Docker
		if fc.MovieSectionID > 0 {
			config.MovieSectionID = fc.MovieSectionID
		}
		if fc.ShowSectionID > 0 {
			config.ShowSectionID = fc.ShowSectionID
		}
	case os.IsNotExist(err):
		// No config file; fall through to environment and flags.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	config.TautulliHost = getEnvOrDefault("TAUTULLI_HOST", config.TautulliHost)
	config.TautulliToken = getEnvOrDefault("TAUTULLI_TOKEN", config.TautulliToken)
	config.SonarrHost = getEnvOrDefault("SONARR_HOST", config.SonarrHost)
	config.SonarrToken = getEnvOrDefault("SONARR_TOKEN", config.SonarrToken)
	config.RadarrHost = getEnvOrDefault("RADARR_HOST", config.RadarrHost)
	config.RadarrToken = getEnvOrDefault("RADARR_TOKEN", config.RadarrToken)
	config.Docker = getEnvBool("DOCKER", config.Docker)
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", config.LogLevel)

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT"); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil {
			config.RequestTimeout = timeout
		}
	}

	return config, nil
}

// Validate checks if the configuration is valid. Every missing required
// value is reported in a single message.
func (c *Config) Validate() error {
	var missing []string
	if c.TautulliHost == "" {
		missing = append(missing, "tautulli-host")
	}
	if c.TautulliToken == "" {
		missing = append(missing, "tautulli-token")
	}
	if c.SonarrHost == "" {
		missing = append(missing, "sonarr-host")
	}
	if c.SonarrToken == "" {
		missing = append(missing, "sonarr-token")
	}
	if c.RadarrHost == "" {
		missing = append(missing, "radarr-host")
	}
	if c.RadarrToken == "" {
		missing = append(missing, "radarr-token")
	}
	if len(missing) > 0 {
		return fmt.Errorf("the following arguments are required: %s", strings.Join(missing, ", "))
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	if c.PageLength <= 0 {
		return fmt.Errorf("page length must be positive")
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns the environment variable as a boolean or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
