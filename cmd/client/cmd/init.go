// cmd/client/cmd/init.go
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"noteshare/cmd/client/cmd/auth"
	logcmd "noteshare/cmd/client/cmd/log"
	"noteshare/cmd/client/cmd/note"
	"noteshare/cmd/client/cmd/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Первоначальная настройка клиента",
	Long: `Команда init создает файл конфигурации ~/.noteshare/config.yaml
с адресом сервера и API-ключом. Значения из переменных окружения
(BACKEND_URL, API_KEY) имеют приоритет над файлом.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir := os.Getenv("CONFIG_DIR")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("не удалось определить домашнюю директорию: %w", err)
			}
			dir = filepath.Join(home, ".noteshare")
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("ошибка создания директории конфигурации: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = filepath.Join(dir, "config.yaml")
		}

		url := backendURL
		if url == "" {
			var err error
			url, err = types.ReadLine("URL сервера: ")
			if err != nil {
				return err
			}
		}
		url = strings.TrimRight(strings.TrimSpace(url), "/")
		if url == "" {
			return fmt.Errorf("URL сервера обязателен")
		}

		key, err := types.ReadSecret("API-ключ: ")
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("API-ключ обязателен")
		}

		v := viper.New()
		v.Set("backend_url", url)
		v.Set("api_key", key)
		if err := v.WriteConfigAs(path); err != nil {
			return fmt.Errorf("ошибка записи конфигурации: %w", err)
		}
		if err := os.Chmod(path, 0o600); err != nil {
			return fmt.Errorf("ошибка установки прав на файл: %w", err)
		}

		types.NewPrinter(cmd.OutOrStdout(), false, nil).Success("Конфигурация сохранена в " + path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(note.NoteCmd)
	rootCmd.AddCommand(logcmd.LogCmd)
}
