package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/exp/slog"

	"noteshare/internal/utils/debounce"
)

// ErrUnsaved - последняя версия файла не сохранена при выходе
var ErrUnsaved = errors.New("последние изменения не сохранены")

// Autosaver следит за файлом заметки и сохраняет его содержимое,
// когда правки затихают на время задержки
type Autosaver struct {
	path      string
	save      func(content string) bool
	log       *slog.Logger
	watcher   *fsnotify.Watcher
	debouncer *debounce.Debouncer

	mu   sync.Mutex
	last string
}

// NewAutosaver начинает наблюдение сразу, чтобы не пропустить правки до Run.
// save возвращает false при ошибке: тогда версия считается несохраненной
// и будет отправлена снова при следующей правке или при выходе
func NewAutosaver(path string, delay time.Duration, save func(content string) bool, log *slog.Logger) (*Autosaver, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("путь к файлу: %w", err)
	}

	initial, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("чтение файла: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("создание наблюдателя: %w", err)
	}
	// Следим за каталогом: редакторы часто сохраняют через переименование
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("наблюдение за каталогом: %w", err)
	}

	return &Autosaver{
		path:      abs,
		save:      save,
		log:       log,
		watcher:   watcher,
		debouncer: debounce.New(delay),
		last:      string(initial),
	}, nil
}

// Run обрабатывает события до отмены ctx и при выходе сохраняет последнюю версию.
// Если ее сохранить не удалось, возвращает ErrUnsaved
func (a *Autosaver) Run(ctx context.Context) error {
	defer a.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			a.debouncer.Stop()
			if !a.saveIfChanged() {
				return ErrUnsaved
			}
			return nil
		case ev, ok := <-a.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != a.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				a.debouncer.Call(func() { a.saveIfChanged() })
			}
		case err, ok := <-a.watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("Ошибка наблюдения за файлом", "path", a.path, "error", err)
		}
	}
}

// saveIfChanged сообщает, совпадает ли сохраненная версия с файлом
func (a *Autosaver) saveIfChanged() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := os.ReadFile(a.path)
	if err != nil {
		a.log.Warn("Не удалось прочитать файл", "path", a.path, "error", err)
		return false
	}
	content := string(data)
	if content == a.last {
		return true
	}
	if !a.save(content) {
		return false
	}
	a.last = content
	return true
}
