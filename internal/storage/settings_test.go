package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-env")

	settings, err := loadSettings(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, "sk-env", settings.APIKey)
}

func TestLoadSettings_Missing(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := loadSettings(filepath.Join(t.TempDir(), ".env"))
	assert.True(t, errors.Is(err, ErrMissingCredential))
	assert.Contains(t, err.Error(), APIKeyEnv)
}

func TestLoadSettings_DotEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	os.Unsetenv(APIKeyEnv)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=sk-dotenv\n"), 0600))

	settings, err := loadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", settings.APIKey)
}

func TestLoadSettings_EnvironmentWins(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-env")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=sk-dotenv\n"), 0600))

	settings, err := loadSettings(envFile)
	require.NoError(t, err)
	assert.Equal(t, "sk-env", settings.APIKey)
}
