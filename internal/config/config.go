package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Intake   IntakeConfig
}

type AppConfig struct {
	Port        string
	Environment string
	LogFilePath string
	NatsURL     string
}

type DatabaseConfig struct {
	Connection string
}

type IntakeConfig struct {
	// AdminIDs are the recipients of routed questions, support requests
	// and service requests. Only these callers may run admin commands.
	AdminIDs      []int64
	DefaultLocale string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "3000"),
			Environment: getEnv("GO_ENV", "development"),
			LogFilePath: getEnv("LOG_FILE_PATH", "app.log"),
			NatsURL:     getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Intake: IntakeConfig{
			AdminIDs:      getEnvAsInt64List("ADMIN_IDS", nil),
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64List(key string, fallback []int64) []int64 {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}

	var values []int64
	for _, part := range strings.Split(strValue, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("Warn: ignoring non-numeric entry %q in %s", part, key)
			continue
		}
		values = append(values, value)
	}
	return values
}
