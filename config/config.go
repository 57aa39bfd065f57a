package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Config struct {
	Env              string
	Port             string
	DB               DBConfig
	RedisAddr        string
	RedisUser        string
	RedisPassword    string
	ElasticAddresses []string
	ElasticUser      string
	ElasticPassword  string
	ReportTimezone   string
	AutoMigrate      bool
	LogLevel         string
	CORSOrigins      []string
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using the process environment: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func getEnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Load reads the configuration from the environment. Call LoadEnv first to
// pick up a .env file.
func Load() Config {
	autoMigrate, _ := strconv.ParseBool(os.Getenv("AUTO_MIGRATE"))

	return Config{
		Env:  getEnvDefault("ENV", "dev"),
		Port: getEnvDefault("PORT", "8083"),
		DB: DBConfig{
			Host:     getEnvDefault("DB_HOST", "localhost"),
			Port:     getEnvDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnvDefault("DB_SSLMODE", "disable"),
		},
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisUser:        os.Getenv("REDIS_USER"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		ElasticAddresses: splitList(os.Getenv("ELASTIC_ADDRESSES")),
		ElasticUser:      os.Getenv("ELASTIC_USER"),
		ElasticPassword:  os.Getenv("ELASTIC_PASSWORD"),
		ReportTimezone:   getEnvDefault("REPORT_TIMEZONE", "UTC"),
		AutoMigrate:      autoMigrate,
		LogLevel:         getEnvDefault("LOG_LEVEL", "info"),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
	}
}

// ReportLocation resolves ReportTimezone, falling back to UTC.
func (c Config) ReportLocation() *time.Location {
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		log.Printf("Warning: unknown REPORT_TIMEZONE %q, using UTC", c.ReportTimezone)
		return time.UTC
	}
	return loc
}
