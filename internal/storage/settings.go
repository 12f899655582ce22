package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv names the environment variable holding the API credential
const APIKeyEnv = "OPENAI_API_KEY"

// ErrMissingCredential is returned when no API key is available at startup
var ErrMissingCredential = fmt.Errorf("%s is not set", APIKeyEnv)

// Settings holds values read once from the environment at startup
type Settings struct {
	APIKey string
}

// LoadSettings reads the API key from the environment. A .env file in the
// working directory is loaded first; it never overrides variables already set.
func LoadSettings() (*Settings, error) {
	return loadSettings(".env")
}

func loadSettings(envFile string) (*Settings, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return nil, ErrMissingCredential
	}

	return &Settings{APIKey: key}, nil
}
