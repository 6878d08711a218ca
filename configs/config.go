package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// external forecaster sidecar; empty means fallback-only
	ForecastURL     string
	ForecastTimeout time.Duration

	// optional metrics cache
	RedisAddr string

	// optional order confirmation mail
	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
	MailFrom string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process env")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "canteen.db"),
		Port:            getEnv("PORT", "3000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		ForecastURL:     os.Getenv("FORECAST_URL"),
		ForecastTimeout: time.Duration(getEnvInt("FORECAST_TIMEOUT_SECONDS", 10)) * time.Second,
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		MailFrom:        getEnv("MAIL_FROM", "canteen@localhost"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
