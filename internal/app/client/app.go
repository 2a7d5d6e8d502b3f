package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/app/client/config"
	"noteshare/internal/domain/accesslog"
	"noteshare/internal/domain/note"
	"noteshare/internal/domain/result"
	"noteshare/internal/domain/user"
	"noteshare/internal/infrastructure/ipecho"
	"noteshare/internal/infrastructure/rest"
	"noteshare/internal/infrastructure/storage/kv"
)

const (
	sessionKey       = "session.user_id"
	notesCachePrefix = "notes."
)

var ErrNotLoggedIn = errors.New("not logged in, run: noteshare auth login")

type App struct {
	config *config.Config
	log    *slog.Logger
	store  *kv.Manager

	users user.Servicer
	notes note.Servicer
	logs  accesslog.Servicer
}

// CachedNotes - снимок списка заметок для офлайн-просмотра
type CachedNotes struct {
	Notes    []note.Note `json:"notes"`
	CachedAt time.Time   `json:"cached_at"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	restClient, err := rest.New(rest.Config{
		BaseURL:     cfg.BackendURL,
		APIKey:      cfg.APIKey,
		AccessToken: cfg.AccessToken,
		Timeout:     cfg.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации REST клиента: %w", err)
	}

	// Инициализируем локальное хранилище (используем SQLite)
	var store kv.Store
	sqliteStore, err := kv.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		store = kv.NewMemoryStore()
	} else {
		store = sqliteStore
	}

	noteRepo := rest.NewNoteRepository(restClient, log)
	notes := note.NewService(noteRepo, log)
	users := user.NewService(rest.NewUserRepository(restClient, log), log)
	logs := accesslog.NewService(
		rest.NewAccessLogRepository(restClient, log),
		noteRepo,
		ipecho.New(cfg.IPEchoURLs, cfg.RequestTimeout, log),
		accesslog.Config{UserAgent: cfg.UserAgent, EnrichConcurrency: cfg.EnrichConcurrency},
		log,
	)

	return newApp(cfg, log, kv.NewManager(store, log), users, notes, logs), nil
}

func newApp(cfg *config.Config, log *slog.Logger, store *kv.Manager, users user.Servicer, notes note.Servicer, logs accesslog.Servicer) *App {
	return &App{
		config: cfg,
		log:    log.With("component", "app"),
		store:  store,
		users:  users,
		notes:  notes,
		logs:   logs,
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

// Close закрывает локальное хранилище
func (a *App) Close() error {
	return a.store.Close()
}

// CurrentUserID возвращает id пользователя текущей сессии
func (a *App) CurrentUserID() (string, bool) {
	var id string
	if !a.store.Get(sessionKey, &id) || id == "" {
		return "", false
	}
	return id, true
}

// IsLoggedIn проверяет, есть ли активная сессия
func (a *App) IsLoggedIn() bool {
	_, ok := a.CurrentUserID()
	return ok
}

// Login выполняет вход по паролю, при необходимости создавая пользователя
func (a *App) Login(ctx context.Context, passcode string) user.LoginResult {
	res := a.users.Login(ctx, passcode)
	if !res.Success {
		return res
	}

	if !a.store.Set(sessionKey, res.UserID) {
		a.log.Warn("Не удалось сохранить сессию", "user_id", res.UserID)
	}

	a.log.Info("Вход выполнен успешно", "user_id", res.UserID, "created", res.Created)
	return res
}

// Logout удаляет сессию и кэш заметок
func (a *App) Logout() {
	if id, ok := a.CurrentUserID(); ok {
		a.store.Remove(notesCachePrefix + id)
	}
	a.store.Remove(sessionKey)
}

// ChangePasscode меняет пароль текущего пользователя
func (a *App) ChangePasscode(ctx context.Context, passcode string) result.Result {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.Fail(ErrNotLoggedIn)
	}
	return a.users.UpdatePasscode(ctx, id, passcode)
}

// DeleteAccount удаляет пользователя и очищает локальные данные
func (a *App) DeleteAccount(ctx context.Context) result.Result {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.Fail(ErrNotLoggedIn)
	}

	res := a.users.DeleteAccount(ctx, id)
	if res.Success {
		a.store.Clear()
	}
	return res
}

// ListNotes получает заметки и сохраняет их в локальный кэш
func (a *App) ListNotes(ctx context.Context) note.ListResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return note.ListResult{Result: result.Fail(ErrNotLoggedIn), Notes: []note.Note{}}
	}

	res := a.notes.List(ctx, id)
	if res.Success {
		a.store.Set(notesCachePrefix+id, CachedNotes{Notes: res.Notes, CachedAt: time.Now()})
	}
	return res
}

// OfflineNotes возвращает последний сохраненный список заметок
func (a *App) OfflineNotes() (CachedNotes, bool) {
	id, ok := a.CurrentUserID()
	if !ok {
		return CachedNotes{}, false
	}

	var cached CachedNotes
	if !a.store.Get(notesCachePrefix+id, &cached) {
		return CachedNotes{}, false
	}
	return cached, true
}

// GetNote открывает заметку и записывает просмотр в журнал
func (a *App) GetNote(ctx context.Context, noteID string) note.NoteResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return note.NoteResult{Result: result.Fail(ErrNotLoggedIn)}
	}

	res := a.notes.Get(ctx, noteID)
	if res.Success {
		a.record(ctx, id, noteID, accesslog.ActionView)
	}
	return res
}

// FetchNote читает заметку без записи в журнал (для редактирования)
func (a *App) FetchNote(ctx context.Context, noteID string) note.NoteResult {
	if _, ok := a.CurrentUserID(); !ok {
		return note.NoteResult{Result: result.Fail(ErrNotLoggedIn)}
	}
	return a.notes.Get(ctx, noteID)
}

// CreateNote создает заметку текущего пользователя
func (a *App) CreateNote(ctx context.Context, title, content string) note.NoteResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return note.NoteResult{Result: result.Fail(ErrNotLoggedIn)}
	}

	res := a.notes.Create(ctx, id, title, content)
	if res.Success && res.Note != nil {
		a.record(ctx, id, res.Note.ID, accesslog.ActionCreate)
	}
	return res
}

// SaveNote сохраняет изменения заметки
func (a *App) SaveNote(ctx context.Context, noteID, title, content string) result.Result {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.Fail(ErrNotLoggedIn)
	}

	res := a.notes.Update(ctx, noteID, title, content)
	if res.Success {
		a.record(ctx, id, noteID, accesslog.ActionEdit)
	}
	return res
}

// DeleteNote удаляет заметку
func (a *App) DeleteNote(ctx context.Context, noteID string) result.Result {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.Fail(ErrNotLoggedIn)
	}

	res := a.notes.Delete(ctx, noteID)
	if res.Success {
		a.record(ctx, id, noteID, accesslog.ActionDelete)
	}
	return res
}

// DeleteAllNotes удаляет все заметки текущего пользователя
func (a *App) DeleteAllNotes(ctx context.Context) result.DeleteResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.DeleteResult{Result: result.Fail(ErrNotLoggedIn)}
	}

	res := a.notes.DeleteAll(ctx, id)
	if res.Success {
		a.store.Remove(notesCachePrefix + id)
	}
	return res
}

// AccessLog возвращает последние записи журнала доступа
func (a *App) AccessLog(ctx context.Context) accesslog.EntriesResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return accesslog.EntriesResult{Result: result.Fail(ErrNotLoggedIn), Entries: []accesslog.Entry{}}
	}
	return a.logs.Recent(ctx, id)
}

// PruneLogs удаляет записи журнала старше срока хранения
func (a *App) PruneLogs(ctx context.Context) result.DeleteResult {
	id, ok := a.CurrentUserID()
	if !ok {
		return result.DeleteResult{Result: result.Fail(ErrNotLoggedIn)}
	}
	return a.logs.Prune(ctx, id)
}

// record пишет в журнал доступа; ошибка не влияет на результат операции
func (a *App) record(ctx context.Context, userID, noteID, action string) {
	if res := a.logs.Record(ctx, userID, noteID, action); !res.Success {
		a.log.Warn("Не удалось записать журнал доступа", "note_id", noteID, "action", action, "error", res.Message)
	}
}
