// Package config loads runtime settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	InputPath  string
	OutputPath string
	Serve      bool
	Host       string
	Port       string
}

func Load() Config {
	// Absence of a .env file is fine, the environment still applies.
	_ = godotenv.Load()

	return Config{
		InputPath:  getEnv("INPUT_PATH", "input.txt"),
		OutputPath: getEnv("OUTPUT_PATH", "output.txt"),
		Serve:      getBoolEnv("SERVE", false),
		Host:       getEnv("HTTP_HOST", "localhost"),
		Port:       getEnv("HTTP_PORT", "8092"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}

	return b
}
