package app

import (
	"errors"
	"os"
	"path/filepath"
)

type Config struct {
	Port          string
	Env           string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	DBSSLMode     string
	RedisAddr     string
	KafkaBroker   string
	JWTSecret     string
	PayslipDir    string
	SettingsFile  string
	AdminEmail    string
	AdminPassword string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the process environment; .env is loaded by the binaries.
func LoadConfig() Config {
	return Config{
		Port:          getenv("PORT", "3000"),
		Env:           getenv("APP_ENV", "development"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBUser:        getenv("DB_USER", "postgres"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        getenv("DB_NAME", "hrms"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PayslipDir:    getenv("PAYSLIP_DIR", filepath.Join("storage", "payslips")),
		SettingsFile:  getenv("SETTINGS_FILE", filepath.Join("config", "connection.yaml")),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) validateAPI() error {
	if len(c.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 characters")
	}
	return nil
}
