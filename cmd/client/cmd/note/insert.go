// cmd/client/cmd/note/insert.go
package note

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/utils/markdown"
)

var (
	insertKind  string
	insertStart int
	insertEnd   int
)

var InsertCmd = &cobra.Command{
	Use:   "insert <id>",
	Short: "Вставить Markdown-разметку в текст заметки",
	Long: fmt.Sprintf(`Оборачивает фрагмент текста [start, end) в разметку выбранного вида
и сохраняет заметку. Смещения считаются в символах; при пустом фрагменте
вставляется заглушка.

Виды: %s`, kindNames()),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		kind := markdown.Kind(insertKind)
		if !slices.Contains(markdown.Kinds, kind) {
			return fmt.Errorf("неизвестный вид разметки %q, допустимые: %s", insertKind, kindNames())
		}

		ctx := cmd.Context()
		current := env.App.FetchNote(ctx, args[0])
		if !current.Success {
			return env.Out.Fail(current.Result)
		}

		end := insertEnd
		if !cmd.Flags().Changed("end") {
			end = insertStart
		}
		ins := markdown.Insert(current.Note.Content, insertStart, end, kind)

		res := env.App.SaveNote(ctx, args[0], current.Note.Title, ins.Text)
		if !res.Success {
			return env.Out.Fail(res)
		}
		return env.Out.Emit(ins, func(w io.Writer) {
			env.Out.Success(fmt.Sprintf("Разметка вставлена, выделение [%d, %d)", ins.Start, ins.End))
			fmt.Fprintln(w, ins.Text)
		})
	},
}

func kindNames() string {
	names := make([]string, 0, len(markdown.Kinds))
	for _, k := range markdown.Kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}

func init() {
	InsertCmd.Flags().StringVarP(&insertKind, "kind", "k", string(markdown.Bold), "вид разметки")
	InsertCmd.Flags().IntVar(&insertStart, "start", 0, "начало фрагмента (символ)")
	InsertCmd.Flags().IntVar(&insertEnd, "end", 0, "конец фрагмента (символ), по умолчанию равен --start")
}
