package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	DefaultCurrency  string   // effective currency when nothing is selected
	DefaultLocale    string   // BCP 47 tag used when requests omit a locale
	RateLimit        string   // ulule/limiter format, e.g. "120-M"
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_CURRENCY", "SAR")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DefaultCurrency = strings.ToUpper(viper.GetString("DEFAULT_CURRENCY"))
	if len(cfg.DefaultCurrency) != 3 {
		log.Printf("Warning: DEFAULT_CURRENCY %q is not a 3-letter code. Defaulting to SAR.\n", cfg.DefaultCurrency)
		cfg.DefaultCurrency = "SAR"
	}

	cfg.DefaultLocale = viper.GetString("DEFAULT_LOCALE")
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = "en"
		log.Printf("Warning: DEFAULT_LOCALE not set. Defaulting to %s.\n", cfg.DefaultLocale)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",")

	return cfg, nil
}
