package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ASSET_ORIGIN", "https://example.github.io")
	t.Setenv("ASSET_PATHS", "")
	t.Setenv("CACHE_NAME", "")
	t.Setenv("RUN_ADDRESS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, DefaultCacheName, cfg.Cache.Name)
	assert.Equal(t, DefaultAssets, cfg.Cache.Assets)
	assert.Equal(t, 30*time.Second, cfg.Server.FetchTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ASSET_ORIGIN", "https://cdn.example.com")
	t.Setenv("CACHE_NAME", "memo-share-app-v2")
	t.Setenv("ASSET_PATHS", " /a.js, /b.css ,,")
	t.Setenv("RUN_ADDRESS", "127.0.0.1:9000")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "memo-share-app-v2", cfg.Cache.Name)
	assert.Equal(t, []string{"/a.js", "/b.css"}, cfg.Cache.Assets)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.RunAddress)
}

func TestLoad_RequiresOrigin(t *testing.T) {
	t.Setenv("ASSET_ORIGIN", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrNoOrigin)
}
