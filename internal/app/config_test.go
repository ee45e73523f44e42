package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/app"
	"userdeck/internal/domain"
	"userdeck/internal/store"
)

func clearEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("USERDECK_HOME", home)
	for _, k := range []string{"USERDECK_BASE_URL", "USERDECK_APP_ID", "USERDECK_PAGE_SIZE", "USERDECK_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := clearEnv(t)

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, app.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "userdeck", cfg.Logging.Component)
	assert.Empty(t, cfg.AppID)
}

func TestLoadConfig_SettingsThenEnv(t *testing.T) {
	home := clearEnv(t)
	require.NoError(t, store.NewSettingsFileStore(home).SaveSettings(domain.Settings{
		BaseURL:  "http://settings.example/data/v1",
		PageSize: 10,
	}))

	cfg, err := app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://settings.example/data/v1", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize)

	t.Setenv("USERDECK_BASE_URL", "http://env.example/data/v1")
	t.Setenv("USERDECK_APP_ID", " abc ")
	t.Setenv("USERDECK_TIMEOUT", "5s")
	cfg, err = app.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/data/v1", cfg.BaseURL)
	assert.Equal(t, 10, cfg.PageSize, "settings still apply where env is silent")
	assert.Equal(t, "abc", cfg.AppID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("USERDECK_PAGE_SIZE", "many")
	_, err := app.LoadConfig()
	assert.ErrorContains(t, err, "USERDECK_PAGE_SIZE")

	t.Setenv("USERDECK_PAGE_SIZE", "0")
	_, err = app.LoadConfig()
	assert.Error(t, err)

	t.Setenv("USERDECK_PAGE_SIZE", "")
	t.Setenv("USERDECK_BASE_URL", "ftp://example.com")
	_, err = app.LoadConfig()
	assert.Error(t, err)
}

func TestConfig_Settings(t *testing.T) {
	cfg := app.Config{BaseURL: "http://x/data/v1", PageSize: 7}
	assert.Equal(t, domain.Settings{BaseURL: "http://x/data/v1", PageSize: 7}, cfg.Settings())
}

func TestLoadConfigIn_ExplicitHome(t *testing.T) {
	clearEnv(t)
	other := t.TempDir()
	require.NoError(t, store.NewSettingsFileStore(other).SaveSettings(domain.Settings{PageSize: 9}))

	cfg, err := app.LoadConfigIn(other)
	require.NoError(t, err)
	assert.Equal(t, other, cfg.Home)
	assert.Equal(t, 9, cfg.PageSize)
}
