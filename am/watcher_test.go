package am

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcher_Reload(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[sweep]\nsamples = 10\n"), 0644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = 10 * time.Millisecond
	defer cw.Stop()

	reloaded := make(chan int, 4)
	cw.OnReload(func(cfg *Config) error {
		reloaded <- cfg.Sweep.Samples
		return nil
	})
	cw.Start()

	require.NoError(t, os.WriteFile(path, []byte("[sweep]\nsamples = 25\n"), 0644))

	select {
	case n := <-reloaded:
		assert.Equal(t, 25, n)
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}
}

func TestConfigWatcher_StopWaitsForRunningReload(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = 10 * time.Millisecond

	entered := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool
	cw.OnReload(func(*Config) error {
		once.Do(func() { close(entered) })
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		return nil
	})
	cw.Start()

	require.NoError(t, os.WriteFile(path, []byte("[sweep]\nsamples = 3\n"), 0644))
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not picked up")
	}

	require.NoError(t, cw.Stop())
	assert.True(t, finished.Load(), "Stop returned while a reload callback was still running")
	assert.NoError(t, cw.Stop())
}

func TestConfigWatcher_StopCancelsScheduledReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = time.Hour

	var called atomic.Bool
	cw.OnReload(func(*Config) error {
		called.Store(true)
		return nil
	})

	cw.scheduleReload()
	done := make(chan error, 1)
	go func() { done <- cw.Stop() }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Stop blocked on a reload that never started")
	}
	assert.False(t, called.Load())

	// no reloads are scheduled once stopped
	timer := cw.debounceTimer
	cw.scheduleReload()
	assert.Same(t, timer, cw.debounceTimer)
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	cw.debouncePeriod = 10 * time.Millisecond
	defer cw.Stop()

	reloaded := make(chan struct{}, 1)
	cw.OnReload(func(*Config) error {
		reloaded <- struct{}{}
		return nil
	})
	cw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path+".back1", []byte("x"), 0644))

	select {
	case <-reloaded:
		t.Fatal("unrelated file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewConfigWatcher_MissingDir(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "nope", ConfigFileName))
	assert.Error(t, err)
}

func TestIsBackupFile(t *testing.T) {
	assert.True(t, isBackupFile("/x/am.toml.back1"))
	assert.True(t, isBackupFile("/x/am.toml~"))
	assert.True(t, isBackupFile("/x/.am.toml.swp"))
	assert.False(t, isBackupFile("/x/am.toml"))
}
