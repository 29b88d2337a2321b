package internal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndRequired(t *testing.T) {
	req := require.New(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("CENSORED_WORDS", " scam, lemon ,,")

	config, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)

	req.Equal(50, config.HistoryLimit)
	req.Equal(10, config.DetailMessages)
	req.Equal(24*time.Hour, config.AuthTokenDuration)
	req.Zero(config.TopicIdleTTL)
	req.Equal('*', config.Replacement())
	req.Equal([]string{"scam", "lemon"}, config.CensoredWordList())
	req.Empty(config.AllowedOriginList())
	req.Equal("0.0.0.0:8080", config.Address())
	req.Zero(config.DebugPort)
	req.Equal("127.0.0.1:0", config.DebugAddress())
}

func TestLoad_DotEnvFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), ".env")
	req.NoError(os.WriteFile(path, []byte("PORT=9090\nHISTORY_LIMIT=20\n"), 0o600))
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("BADGER_FILEPATH", t.TempDir())
	t.Setenv("HISTORY_LIMIT", "30")
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	config, err := Load(path)
	req.NoError(err)

	req.Equal(9090, config.Port)
	// The environment wins over the file
	req.Equal(30, config.HistoryLimit)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		t.Setenv("BADGER_FILEPATH", t.TempDir())
		_, err := Load(filepath.Join(t.TempDir(), "none"))
		require.Error(t, err)
	})

	t.Run("bad replacement", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("BADGER_FILEPATH", t.TempDir())
		t.Setenv("CHARACTER_REPLACEMENT", "**")
		_, err := Load(filepath.Join(t.TempDir(), "none"))
		require.Error(t, err)
	})
}
