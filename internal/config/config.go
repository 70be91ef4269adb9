package config

import (
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresHost     string
	PostgresDB       string
	PostgresUser     string
	PostgresPassword string
	PostgresPort     string
	MetricsPort      string
	LogFile          string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		PostgresHost:     os.Getenv("POSTGRES_HOST"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		LogFile:          getEnv("LOG_FILE", "extrator_api_shopee.log"),
	}
}

// DatabaseURL monta o DSN do Postgres a partir das variáveis de ambiente.
// O mesmo DSN serve para o driver pq e para o pgx.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:   c.PostgresHost + ":" + c.PostgresPort,
		Path:   c.PostgresDB,
	}
	return u.String()
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
