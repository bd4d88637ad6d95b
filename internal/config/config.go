package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries everything the process reads from the environment. Defaults
// match a local development setup.
type Config struct {
	AppName string
	Env     string // "DEV" or "PROD"
	Port    string // listen address, ":8080" form

	MySQLHost     string
	MySQLUser     string
	MySQLPassword string
	MySQLDatabase string

	MongoURI      string
	MongoDatabase string
}

// New loads a .env file when present and reads the environment.
func New() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using process environment")
	}

	return Config{
		AppName: getEnv("APP_NAME", "stocktrail"),
		Env:     getEnv("ENV", "DEV"),
		Port:    listenAddr(getEnv("PORT", "8080")),

		MySQLHost:     getEnv("MYSQL_HOST", "localhost"),
		MySQLUser:     getEnv("MYSQL_USER", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", "rootuser"),
		MySQLDatabase: getEnv("MYSQL_DB", "laptop_inventory"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "laptop_inventory"),
	}
}

// MySQLDSN assembles the driver DSN for the primary store.
func (c Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLDatabase)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func listenAddr(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
