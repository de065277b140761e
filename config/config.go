package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
}
type ServerConfig struct {
	Port string
}
type DatabaseConfig struct {
	Host         string
	Username     string
	Password     string
	DatabaseName string
	Port         string
}

var Cfg = Config{}

func (config *Config) Init() {
	_ = godotenv.Load()

	config.Server = ServerConfig{
		Port: os.Getenv("SERVER_PORT"),
	}
	config.Database = DatabaseConfig{
		Host:         os.Getenv("MYSQL_DATABASE_HOST"),
		Username:     os.Getenv("MYSQL_DATABASE_USER"),
		Password:     os.Getenv("MYSQL_DATABASE_PASSWORD"),
		DatabaseName: os.Getenv("MYSQL_DATABASE_DB"),
		Port:         getEnv("MYSQL_DATABASE_PORT", "3306"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
