// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/app/client"
	"noteshare/internal/app/client/config"
	"noteshare/internal/utils/logger"
)

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	backendURL string
)

var rootCmd = &cobra.Command{
	Use:   "noteshare",
	Short: "noteshare - заметки с доступом по 12-значному паролю",
	Long: `noteshare — клиент для коротких заметок. Вход выполняется по паролю
из 12 латинских букв и цифр; новый пароль создает нового пользователя
(не более 3 новых пользователей за сутки).

Заметки хранятся на удаленном сервере, журнал доступа фиксирует просмотры
и изменения заметок.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		if !errors.Is(err, types.ErrReported) {
			types.PrintError(err)
		}
		os.Exit(1)
	}
}

// skipSetup - команды, которым не нужна загруженная конфигурация
var skipSetup = map[string]bool{
	"init":       true,
	"help":       true,
	"completion": true,
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if skipSetup[cmd.Name()] {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w\nВыполните: noteshare init", err)
	}

	// Переопределяем настройки из флагов командной строки
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}

	// Настраиваем логгер
	switch {
	case debug:
		log = logger.New(logger.EnvLocal)
	case cfg.Env == logger.EnvDev:
		log = logger.New(cfg.Env)
	case cfg.IsLocal():
		log = logger.Pretty(cfg.LogLevel)
	default:
		log = logger.WithLevel(logger.EnvProd, cfg.LogLevel)
	}

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(types.WithEnv(cmd.Context(), &types.Env{
		App: app,
		Out: types.NewPrinter(cmd.OutOrStdout(), jsonOutput, cfg.Location()),
		Log: log,
	}))

	return nil
}

// run выполняет команду и закрывает хранилище в любом случае:
// cobra не вызывает PersistentPostRunE, если команда вернула ошибку
func run(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	defer closeApp()
	return rootCmd.ExecuteContext(ctx)
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		log.Warn("Не удалось закрыть хранилище", "error", err)
	}
	app = nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл (по умолчанию ~/.noteshare/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "URL сервера (переопределяет BACKEND_URL)")

	// Команды добавляются в init.go
}
