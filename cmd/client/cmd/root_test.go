package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("BACKEND_URL", "http://127.0.0.1:1")
	t.Setenv("API_KEY", "anon-key")
	t.Setenv("LOG_LEVEL", "error")
}

func TestRun_ClosesAppWhenCommandFails(t *testing.T) {
	setTestEnv(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	err := run(context.Background(), []string{"note", "get", "some-id"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Nil(t, app, "store is closed after a failed command")
}

func TestRun_ClosesAppAfterSuccess(t *testing.T) {
	setTestEnv(t)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	require.NoError(t, run(context.Background(), []string{"auth", "logout"}))
	assert.Nil(t, app)
}
