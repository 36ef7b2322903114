// Package config reads the tool configuration from the environment,
// optionally seeded from a dotenv file.  The store packages take plain
// arguments; only the binaries are configured this way.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultDBFilePath = "apartments.bin"
	defaultLogLevel   = "info"
)

type Config struct {
	DBFilePath string // DB_FILE_PATH
	LogLevel   string // LOG_LEVEL: debug, info, warn, error
	LogFile    string // LOG_FILE; empty means stderr
	NoColor    bool   // NO_COLOR
}

// Load reads the configuration.  A missing dotenv file is not an
// error, and variables already set in the environment win over file
// values.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)
	return &Config{
		DBFilePath: getEnv("DB_FILE_PATH", defaultDBFilePath),
		LogLevel:   getEnv("LOG_LEVEL", defaultLogLevel),
		LogFile:    getEnv("LOG_FILE", ""),
		NoColor:    getEnvAsBool("NO_COLOR", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
