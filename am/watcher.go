package am

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
)

// ConfigWatcher watches a config file and reloads the configuration when it
// changes, so a long-running sweep can regenerate its output.
type ConfigWatcher struct {
	configPath     string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	stopped        bool

	// pending counts scheduled and running reloads; loopDone closes when
	// watchLoop returns.
	pending  sync.WaitGroup
	started  bool
	loopDone chan struct{}
}

// ReloadCallback is called with the freshly loaded config after a change.
type ReloadCallback func(*Config) error

// NewConfigWatcher creates a watcher for configPath. Editors often replace a
// file instead of writing it in place, so the parent directory is watched and
// events are filtered by name.
func NewConfigWatcher(configPath string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", configPath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch config file %s", abs)
	}

	return &ConfigWatcher{
		configPath:     abs,
		watcher:        watcher,
		debouncePeriod: 300 * time.Millisecond,
		loopDone:       make(chan struct{}),
	}, nil
}

// Path returns the absolute path of the watched file.
func (cw *ConfigWatcher) Path() string { return cw.configPath }

// OnReload registers a callback to be called when config is reloaded
func (cw *ConfigWatcher) OnReload(callback ReloadCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// Start begins watching for config file changes
func (cw *ConfigWatcher) Start() {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.started || cw.stopped {
		return
	}
	cw.started = true
	go cw.watchLoop()
}

func (cw *ConfigWatcher) watchLoop() {
	defer close(cw.loopDone)
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.configPath || isBackupFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debugw("config watcher detected change",
				logger.FieldConfigFile, event.Name,
				"op", event.Op.String())
			cw.scheduleReload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("config watcher error", logger.FieldError, err)
		}
	}
}

// scheduleReload collapses a burst of events into one reload.
func (cw *ConfigWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.stopped {
		return
	}

	// A timer stopped before firing never runs its reload.
	if cw.debounceTimer != nil && cw.debounceTimer.Stop() {
		cw.pending.Done()
	}
	cw.pending.Add(1)
	cw.debounceTimer = time.AfterFunc(cw.debouncePeriod, func() {
		defer cw.pending.Done()
		if err := cw.reload(); err != nil {
			logger.Errorw("config reload failed", logger.FieldError, err)
		}
	})
}

// reload reloads the configuration and calls all callbacks. An invalid config
// is reported and the callbacks are skipped.
func (cw *ConfigWatcher) reload() error {
	Reset()
	cfg, err := Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "reloaded config is invalid")
	}

	logger.Infow("config reloaded", logger.FieldConfigFile, cw.configPath)

	cw.mu.RLock()
	callbacks := make([]ReloadCallback, len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(cfg); err != nil {
			logger.Warnw("config reload callback error", logger.FieldError, err)
		}
	}
	return nil
}

// Stop stops watching for config changes. A reload that has not started is
// cancelled; one already running is waited for, so no callback runs after
// Stop returns. Stop must not be called from a reload callback.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if cw.stopped {
		cw.mu.Unlock()
		return nil
	}
	cw.stopped = true
	if cw.debounceTimer != nil && cw.debounceTimer.Stop() {
		cw.pending.Done()
	}
	started := cw.started
	cw.mu.Unlock()

	err := cw.watcher.Close()
	if started {
		<-cw.loopDone
	}
	cw.pending.Wait()
	return err
}

// isBackupFile reports editor swap and backup files next to the config.
func isBackupFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasPrefix(base, ConfigFileName+".back")
}
