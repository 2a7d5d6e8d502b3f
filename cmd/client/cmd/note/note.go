// cmd/client/cmd/note/note.go
package note

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Работа с заметками",
	Long: `Создание, просмотр, редактирование и удаление заметок.

Каждый просмотр, создание, изменение и удаление записывается в журнал доступа.`,
}

func init() {
	NoteCmd.AddCommand(ListCmd)
	NoteCmd.AddCommand(GetCmd)
	NoteCmd.AddCommand(CreateCmd)
	NoteCmd.AddCommand(EditCmd)
	NoteCmd.AddCommand(DeleteCmd)
	NoteCmd.AddCommand(DeleteAllCmd)
	NoteCmd.AddCommand(PreviewCmd)
	NoteCmd.AddCommand(InsertCmd)
}

// readContent возвращает текст заметки из файла, а при "-" - из stdin
func readContent(file string) (string, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения содержимого: %w", err)
	}
	return string(data), nil
}
