// cmd/client/cmd/note/preview.go
package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/utils/markdown"
)

var plain bool

var PreviewCmd = &cobra.Command{
	Use:   "preview <id>",
	Short: "Показать заметку в виде HTML",
	Long: `Выводит HTML-представление Markdown-текста заметки. С флагом --plain
текст только экранируется, переводы строк заменяются на <br>.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := env.App.GetNote(cmd.Context(), args[0])
		if !res.Success {
			return env.Out.Fail(res.Result)
		}

		html := markdown.Preview(res.Note.Content)
		if plain {
			html = markdown.Fallback(res.Note.Content)
		}

		return env.Out.Emit(map[string]string{"id": res.Note.ID, "html": html}, func(w io.Writer) {
			fmt.Fprint(w, html)
		})
	},
}

func init() {
	PreviewCmd.Flags().BoolVar(&plain, "plain", false, "без разбора Markdown")
}
