package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	RabbitURL  string
	ErrorLog   string
}

// Load reads configuration from the environment, with a .env file as optional
// source. defaultPort and defaultDBName differ per service binary.
func Load(defaultPort, defaultDBName string) *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", defaultPort),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", defaultDBName),
		RabbitURL:  getEnv("RABBITMQ_URL", ""),
		ErrorLog:   getEnv("ERROR_LOG", "error.log"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
