package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Sessions
	SessionSecret string `mapstructure:"SESSION_SECRET" validate:"required"`

	// PIN login — a single shared operator passcode, not per-user credentials
	PIN       string `mapstructure:"POS_PIN" validate:"required"`
	PINLength int    `mapstructure:"POS_PIN_LEN" validate:"min=1"`

	// Firestore credential material, tried in order by infra.NewFirestore:
	// inline JSON → key file path → local key file → platform default.
	FirebaseProjectID  string `mapstructure:"FIREBASE_PROJECT_ID"`
	ServiceAccountJSON string `mapstructure:"FIREBASE_SERVICE_ACCOUNT"`
	CredentialsFile    string `mapstructure:"GOOGLE_APPLICATION_CREDENTIALS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SESSION_SECRET", "dev-secret-change-me")
	viper.SetDefault("POS_PIN", "0102")
	viper.SetDefault("POS_PIN_LEN", 4)
	// Credential vars default empty so viper picks them up from the env
	viper.SetDefault("FIREBASE_PROJECT_ID", "")
	viper.SetDefault("FIREBASE_SERVICE_ACCOUNT", "")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
