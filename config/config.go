package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIKey      string
	BaseURL     string
	PartnerCode string
	RefCode     string
	KYCUID      string
}

var globalConfig *Config

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".fastspot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	// Set default values
	viper.SetDefault("base_url", "https://api.fastspot.io/fast/v1")

	// Read from environment variables
	viper.SetEnvPrefix("FASTSPOT")
	viper.AutomaticEnv()

	// Read config file (optional)
	_ = viper.ReadInConfig()

	// Create config struct
	cfg := &Config{
		APIKey:      viper.GetString("api_key"),
		BaseURL:     viper.GetString("base_url"),
		PartnerCode: viper.GetString("partner_code"),
		RefCode:     viper.GetString("ref_code"),
		KYCUID:      viper.GetString("kyc_uid"),
	}

	// Validate API key
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not found. Please set FASTSPOT_API_KEY environment variable or create a .fastspot.yaml config file")
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

// HasReferral reports whether referral codes are configured.
func (c *Config) HasReferral() bool {
	return c.PartnerCode != ""
}
