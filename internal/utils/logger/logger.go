package logger

import (
	"os"

	"golang.org/x/exp/slog"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// New возвращает логгер для окружения env.
// local - цветной вывод для терминала, dev и prod - JSON.
func New(env string) *slog.Logger {
	switch env {
	case EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

// WithLevel переопределяет уровень для prod-подобных окружений.
func WithLevel(env, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil || env == EnvLocal || env == "" {
		return New(env)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// Discard - логгер для тестов.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

// Pretty - цветной вывод с заданным уровнем; при невалидном уровне debug.
func Pretty(level string) *slog.Logger {
	lvl := slog.LevelDebug
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelDebug
	}
	return prettyAt(lvl)
}

func setupPrettySlog() *slog.Logger {
	return prettyAt(slog.LevelDebug)
}

func prettyAt(lvl slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: lvl},
	}
	return slog.New(opts.NewPrettyHandler(os.Stderr))
}
