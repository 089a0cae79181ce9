package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string

	// Narrative provider (Gemini REST API)
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`
	GeminiTimeout time.Duration

	// Rate limiting for the insights route
	InsightsRateLimit       int64
	InsightsRateLimitPeriod time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent")
	viper.SetDefault("GEMINI_TIMEOUT", "30s")
	viper.SetDefault("INSIGHTS_RATE_LIMIT", 10)
	viper.SetDefault("INSIGHTS_RATE_LIMIT_PERIOD", "1m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Insights will always degrade to fallback content.")
	}

	cfg.GeminiBaseURL = viper.GetString("GEMINI_BASE_URL")

	geminiTimeoutStr := viper.GetString("GEMINI_TIMEOUT")
	geminiTimeout, err := time.ParseDuration(geminiTimeoutStr)
	if err != nil {
		geminiTimeout = 30 * time.Second
		if geminiTimeoutStr != "" {
			log.Printf("Warning: Invalid value for GEMINI_TIMEOUT ('%s'). Defaulting to %s.\n", geminiTimeoutStr, geminiTimeout.String())
		}
	}
	cfg.GeminiTimeout = geminiTimeout

	cfg.InsightsRateLimit = viper.GetInt64("INSIGHTS_RATE_LIMIT")
	if cfg.InsightsRateLimit <= 0 {
		cfg.InsightsRateLimit = 10
		log.Printf("Warning: INSIGHTS_RATE_LIMIT not set or invalid. Defaulting to %d.\n", cfg.InsightsRateLimit)
	}

	ratePeriodStr := viper.GetString("INSIGHTS_RATE_LIMIT_PERIOD")
	ratePeriod, err := time.ParseDuration(ratePeriodStr)
	if err != nil {
		ratePeriod = time.Minute
		if ratePeriodStr != "" {
			log.Printf("Warning: Invalid value for INSIGHTS_RATE_LIMIT_PERIOD ('%s'). Defaulting to %s.\n", ratePeriodStr, ratePeriod.String())
		}
	}
	cfg.InsightsRateLimitPeriod = ratePeriod

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}
