package config

import (
	"github.com/joho/godotenv"
	"log"
	"os"
	"strconv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type Config struct {
	ServerPort int
	DB         DB
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("POSTGRES_HOST", "localhost"),
		DbPORT:     getEnv("POSTGRES_PORT", "5431"),
		DbUSER:     getEnv("POSTGRES_USER", "user_1"),
		DbPASSWORD: getEnv("POSTGRES_PASSWORD", "secret"),
		DbNAME:     getEnv("POSTGRES_DB", "app_db"),
		DbSSLMODE:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("SERVER_PORT", 8080),
		DB:         LoadDB(),
	}
}
