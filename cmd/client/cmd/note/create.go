// cmd/client/cmd/note/create.go
package note

import (
	"io"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var (
	createTitle   string
	createContent string
	createFile    string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать заметку",
	Long: `Создает заметку. Содержимое берется из --content, из файла --file
или из stdin при --file -.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		content := createContent
		if createFile != "" {
			if content, err = readContent(createFile); err != nil {
				return err
			}
		}

		res := env.App.CreateNote(cmd.Context(), createTitle, content)
		if !res.Success {
			return env.Out.Fail(res.Result)
		}
		return env.Out.Emit(res.Note, func(io.Writer) {
			env.Out.Success("Заметка создана: " + res.Note.ID)
		})
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createTitle, "title", "t", "", "заголовок (обязателен)")
	CreateCmd.Flags().StringVarP(&createContent, "content", "c", "", "текст заметки")
	CreateCmd.Flags().StringVarP(&createFile, "file", "f", "", "файл с текстом заметки (- для stdin)")
	CreateCmd.MarkFlagsMutuallyExclusive("content", "file")
	_ = CreateCmd.MarkFlagRequired("title")
}
