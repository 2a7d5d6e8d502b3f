// cmd/client/cmd/note/get.go
package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var GetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Показать заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := env.App.GetNote(cmd.Context(), args[0])
		if !res.Success {
			return env.Out.Fail(res.Result)
		}

		n := res.Note
		return env.Out.Emit(n, func(w io.Writer) {
			env.Out.Heading(n.Title)
			fmt.Fprintf(w, "Создана: %s  Изменена: %s\n\n", env.Out.Time(n.CreatedAt), env.Out.Time(n.UpdatedAt))
			fmt.Fprintln(w, n.Content)
		})
	},
}
