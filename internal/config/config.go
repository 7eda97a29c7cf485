package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Analysis cache backends
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheBolt   = "bolt"
)

// Config holds all application configuration
type Config struct {
	// Provider credentials. Absence is reported per invocation, not at load time.
	TMDBAPIKey   string
	OMDBAPIKey   string
	GeminiAPIKey string

	// Provider endpoints
	TMDBBaseURL      string
	TMDBImageBaseURL string
	OMDBBaseURL      string
	GeminiBaseURL    string
	GeminiModel      string

	// HTTPTimeout bounds every outbound call. Zero leaves it to the request context.
	HTTPTimeout time.Duration

	// Server
	ServerPort string

	// Analysis cache
	AnalysisCache    string
	AnalysisCacheTTL time.Duration
	CacheFile        string // $CONFIG_DIR/analysis.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p")
	viper.SetDefault("OMDB_BASE_URL", "http://www.omdbapi.com/")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 0)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("ANALYSIS_CACHE", CacheNone)
	viper.SetDefault("ANALYSIS_CACHE_TTL_HOURS", 24)

	config := &Config{
		TMDBAPIKey:   viper.GetString("TMDB_API_KEY"),
		OMDBAPIKey:   viper.GetString("OMDB_API_KEY"),
		GeminiAPIKey: viper.GetString("GEMINI_API_KEY"),

		TMDBBaseURL:      viper.GetString("TMDB_BASE_URL"),
		TMDBImageBaseURL: viper.GetString("TMDB_IMAGE_BASE_URL"),
		OMDBBaseURL:      viper.GetString("OMDB_BASE_URL"),
		GeminiBaseURL:    viper.GetString("GEMINI_BASE_URL"),
		GeminiModel:      viper.GetString("GEMINI_MODEL"),

		HTTPTimeout: time.Duration(viper.GetInt("HTTP_TIMEOUT_SECONDS")) * time.Second,

		ServerPort: viper.GetString("SERVER_PORT"),

		AnalysisCache:    viper.GetString("ANALYSIS_CACHE"),
		AnalysisCacheTTL: time.Duration(viper.GetInt("ANALYSIS_CACHE_TTL_HOURS")) * time.Hour,

		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	switch config.AnalysisCache {
	case CacheNone, CacheMemory:
	case CacheBolt:
		// Only the on-disk cache needs a config directory
		configDir, err := resolveConfigDir(viper.GetString("CONFIG_DIR"))
		if err != nil {
			return nil, err
		}
		config.CacheFile = filepath.Join(configDir, "analysis.db")
	default:
		return nil, fmt.Errorf("ANALYSIS_CACHE must be one of none, memory, bolt (got %q)", config.AnalysisCache)
	}

	if config.HTTPTimeout < 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT_SECONDS must not be negative")
	}

	return config, nil
}

func resolveConfigDir(configDir string) (string, error) {
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "mellab")
	} else {
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}
