package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	// optional; CI runners and containers usually have no .env file
	_ = godotenv.Load()

	port, err := parsePort(os.Getenv("PORT"))
	if err != nil {
		return nil, err
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = DefaultEnvironment
	}

	return &Config{
		Port:        port,
		Environment: environment,
	}, nil
}

func parsePort(raw string) (int, error) {
	if raw == "" {
		return DefaultPort, nil
	}

	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("PORT environment variable must be an integer: %w", err)
	}

	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("PORT environment variable out of range: %d", port)
	}

	return port, nil
}
