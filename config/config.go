package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from the environment, loading .env first when present
// (docker and CI inject the variables directly, so a missing file is fine).
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
