package client

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteshare/internal/utils/logger"
)

type saves struct {
	mu   sync.Mutex
	list []string
	// fail - сколько ближайших сохранений завершатся ошибкой
	fail int
}

func (s *saves) add(content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.list = append(s.list, content)
	if s.fail > 0 {
		s.fail--
		return false
	}
	return true
}

func (s *saves) get() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.list...)
}

func writeNote(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestAutosaver_SavesAfterQuietPeriod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	writeNote(t, path, "v0")

	var got saves
	a, err := NewAutosaver(path, 20*time.Millisecond, got.add, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	writeNote(t, path, "v1")
	writeNote(t, path, "v2")

	assert.Eventually(t, func() bool {
		s := got.get()
		return len(s) > 0 && s[len(s)-1] == "v2"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
	s := got.get()
	assert.Equal(t, "v2", s[len(s)-1])
	assert.NotEqual(t, "v0", s[0])
}

func TestAutosaver_FlushesOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	writeNote(t, path, "draft")

	var got saves
	a, err := NewAutosaver(path, time.Hour, got.add, logger.Discard())
	require.NoError(t, err)

	writeNote(t, path, "final")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))

	assert.Equal(t, []string{"final"}, got.get())
}

func TestAutosaver_NoChangeNoSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	writeNote(t, path, "same")

	var got saves
	a, err := NewAutosaver(path, time.Hour, got.add, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, a.Run(ctx))

	assert.Empty(t, got.get())
}

func TestNewAutosaver_MissingFile(t *testing.T) {
	_, err := NewAutosaver(filepath.Join(t.TempDir(), "missing.md"), time.Second, func(string) bool { return true }, logger.Discard())
	assert.Error(t, err)
}

func TestAutosaver_RetriesFailedSaveOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	writeNote(t, path, "v0")

	got := &saves{fail: 1}
	a, err := NewAutosaver(path, 20*time.Millisecond, got.add, logger.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	writeNote(t, path, "v1")
	assert.Eventually(t, func() bool {
		return len(got.get()) > 0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	s := got.get()
	require.GreaterOrEqual(t, len(s), 2)
	assert.Equal(t, "v1", s[len(s)-1], "failed version is sent again on exit")
}

func TestAutosaver_ReportsUnsavedOnExit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	writeNote(t, path, "v0")

	got := &saves{fail: 1}
	a, err := NewAutosaver(path, time.Hour, got.add, logger.Discard())
	require.NoError(t, err)

	writeNote(t, path, "v1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Run(ctx), ErrUnsaved)
	assert.Equal(t, []string{"v1"}, got.get())
}
