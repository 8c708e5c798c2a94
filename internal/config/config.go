package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml next
// to the binary and overridable through the environment.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Mongo    MongoConfig    `toml:"mongo"`
	Business BusinessConfig `toml:"business"`
	Upload   UploadConfig   `toml:"upload"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// MongoConfig configures the document store connection.
type MongoConfig struct {
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// BusinessConfig holds the facility-level settings surfaced on the dashboard.
type BusinessConfig struct {
	FacilityName          string  `toml:"facility_name"`
	GuestMealPrice        float64 `toml:"guest_meal_price"`
	ReservationCutoffHour int     `toml:"reservation_cutoff_hour"`
}

// UploadConfig bounds menu spreadsheet uploads.
type UploadConfig struct {
	MaxSizeMB int64 `toml:"max_size_mb"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8087,
			DevMode: false,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "sodisen",
			TimeoutSeconds: 10,
		},
		Business: BusinessConfig{
			FacilityName:          "Résidence",
			GuestMealPrice:        8.5,
			ReservationCutoffHour: 10,
		},
		Upload: UploadConfig{
			MaxSizeMB: 10,
		},
	}
}

// GetExeDir returns the directory holding the running binary.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the binary's directory, falling back to
// defaults when absent, then applies environment overrides. A .env file in
// the working directory is honored.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// no file, defaults apply
	default:
		return nil, err
	}

	_ = godotenv.Load()
	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies SODISEN_* environment variables on top of the
// file-based configuration.
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("SODISEN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("SODISEN_DEV_MODE"); v != "" {
		config.Server.DevMode = v == "true" || v == "1"
	}
	if v := os.Getenv("SODISEN_MONGO_URI"); v != "" {
		config.Mongo.URI = v
	}
	if v := os.Getenv("SODISEN_MONGO_DATABASE"); v != "" {
		config.Mongo.Database = v
	}
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}
