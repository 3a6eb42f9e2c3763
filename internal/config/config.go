package config

import (
	"errors"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string

	DBType          string
	DBDSN           string
	AssessmentsFile string
	ActionsFile     string
	ReportsFile     string

	AuthServiceURL string

	DatasetSeed      int64
	DatasetEmployees int
	DatasetWeeks     int
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:              getEnv("APP_ENV", "development"),
			LogLevel:         getEnv("LOG_LEVEL", "info"),
			HTTPAddr:         getEnv("HTTP_ADDR", ":8088"),
			DBType:           getEnv("STORAGE_BACKEND", "file"),
			DBDSN:            getEnv("POSTGRES_DSN", ""),
			AssessmentsFile:  getEnv("ASSESSMENTS_FILE", "data/assessments.json"),
			ActionsFile:      getEnv("HR_ACTIONS_FILE", "data/hr_actions.json"),
			ReportsFile:      getEnv("PEER_REPORTS_FILE", "data/peer_reports.json"),
			AuthServiceURL:   getEnv("AUTH_SERVICE_URL", ""),
			DatasetSeed:      getEnvInt64("DATASET_SEED", 42),
			DatasetEmployees: getEnvInt("DATASET_EMPLOYEES", 12),
			DatasetWeeks:     getEnvInt("DATASET_WEEKS", 12),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.AssessmentsFile == "" || c.ActionsFile == "" || c.ReportsFile == "") {
		return errors.New("File storage requires ASSESSMENTS_FILE, HR_ACTIONS_FILE and PEER_REPORTS_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthServiceURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	if c.DatasetEmployees < 1 {
		return errors.New("DATASET_EMPLOYEES must be at least 1")
	}
	if c.DatasetWeeks < 1 {
		return errors.New("DATASET_WEEKS must be at least 1")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
