// Package config loads runtime settings from defaults, an optional .env file
// and GRADEBOOK_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "GRADEBOOK"

// Config holds the resolved settings.
type Config struct {
	Port            int
	LogLevel        string
	SeedFile        string
	ImportReportAll bool
	MetricsEnabled  bool
}

// Load resolves configuration. dotEnvPath may be empty; a missing file is not an error.
func Load(dotEnvPath string) (*Config, error) {
	if dotEnvPath != "" {
		if _, err := os.Stat(dotEnvPath); err == nil {
			if err := godotenv.Load(dotEnvPath); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", dotEnvPath, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat %s: %w", dotEnvPath, err)
		}
	}

	v := viper.New()
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("seed.file", "")
	v.SetDefault("import.report_all", false)
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetInt("server.port"),
		LogLevel:        v.GetString("log.level"),
		SeedFile:        v.GetString("seed.file"),
		ImportReportAll: v.GetBool("import.report_all"),
		MetricsEnabled:  v.GetBool("metrics.enabled"),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid server port: %d", cfg.Port)
	}
	return cfg, nil
}
