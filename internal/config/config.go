package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	StorePath     string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	ServerPort    string
}

func Load() *Config {
	// Optional; real env wins over .env values.
	_ = godotenv.Load()

	return &Config{
		StorePath:     getEnv("STORE_PATH", "barberflow.db"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
