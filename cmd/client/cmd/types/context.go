package types

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"noteshare/internal/app/client"
)

type ctxKey struct{}

// Env - зависимости, доступные командам через context
type Env struct {
	App *client.App
	Out *Printer
	Log *slog.Logger
}

var ErrNoApp = errors.New("приложение не инициализировано")

func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, ctxKey{}, env)
}

func FromContext(ctx context.Context) (*Env, error) {
	env, ok := ctx.Value(ctxKey{}).(*Env)
	if !ok || env == nil || env.App == nil {
		return nil, ErrNoApp
	}
	return env, nil
}
