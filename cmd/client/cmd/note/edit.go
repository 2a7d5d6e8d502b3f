// cmd/client/cmd/note/edit.go
package note

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/app/client"
)

var (
	editTitle   string
	editContent string
	editFile    string
	editWatch   bool
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить заголовок или текст заметки",
	Long: `Изменяет заметку. Не указанные поля остаются прежними.

С флагом --watch команда следит за файлом --file и сохраняет заметку после
каждой паузы в правках. Если файла нет, он создается с текущим текстом.
Для выхода нажмите Ctrl+C: последняя версия будет сохранена.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		id := args[0]

		current := env.App.FetchNote(ctx, id)
		if !current.Success {
			return env.Out.Fail(current.Result)
		}

		title := current.Note.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}

		if editWatch {
			return watch(cmd, env, id, title, current.Note.Content)
		}

		content := current.Note.Content
		switch {
		case editFile != "":
			if content, err = readContent(editFile); err != nil {
				return err
			}
		case cmd.Flags().Changed("content"):
			content = editContent
		}

		return env.Out.Done(env.App.SaveNote(ctx, id, title, content), "Заметка сохранена")
	},
}

func watch(cmd *cobra.Command, env *types.Env, id, title, content string) error {
	if editFile == "" || editFile == "-" {
		return fmt.Errorf("для --watch укажите файл через --file")
	}

	if _, err := os.Stat(editFile); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(editFile, []byte(content), 0o600); err != nil {
			return fmt.Errorf("ошибка создания файла: %w", err)
		}
	}

	// Последнее сохранение идет после Ctrl+C, поэтому отмена команды на него не влияет
	saveCtx := context.WithoutCancel(cmd.Context())
	saver, err := client.NewAutosaver(editFile, env.App.Config().AutosaveDelay, func(text string) bool {
		res := env.App.SaveNote(saveCtx, id, title, text)
		if !res.Success {
			env.Out.Warn("Не удалось сохранить: " + res.Message)
			return false
		}
		env.Out.Success("Сохранено " + env.Out.Time(time.Now()))
		return true
	}, env.Log)
	if err != nil {
		return err
	}

	env.Out.Heading("Слежу за " + editFile + " (Ctrl+C для выхода)")
	return saver.Run(cmd.Context())
}

func init() {
	EditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "новый заголовок")
	EditCmd.Flags().StringVarP(&editContent, "content", "c", "", "новый текст")
	EditCmd.Flags().StringVarP(&editFile, "file", "f", "", "файл с текстом заметки (- для stdin)")
	EditCmd.Flags().BoolVarP(&editWatch, "watch", "w", false, "автосохранение при изменении файла")
	EditCmd.MarkFlagsMutuallyExclusive("content", "file")
	EditCmd.MarkFlagsMutuallyExclusive("content", "watch")
}
