// cmd/client/cmd/note/list.go
package note

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/domain/note"
)

var offline bool

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список заметок (новые изменения сверху)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if offline {
			cached, ok := env.App.OfflineNotes()
			if !ok {
				return fmt.Errorf("сохраненного списка нет, выполните note list без --offline")
			}
			return env.Out.Emit(cached, func(w io.Writer) {
				env.Out.Warn("Список сохранен " + env.Out.Time(cached.CachedAt))
				printNotes(w, env.Out, cached.Notes)
			})
		}

		res := env.App.ListNotes(cmd.Context())
		if !res.Success {
			return env.Out.Fail(res.Result)
		}
		return env.Out.Emit(res, func(w io.Writer) {
			printNotes(w, env.Out, res.Notes)
		})
	},
}

func printNotes(w io.Writer, out *types.Printer, notes []note.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "Заметок нет")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tЗАГОЛОВОК\tИЗМЕНЕНА")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Title, out.Time(n.UpdatedAt))
	}
	tw.Flush()
}

func init() {
	ListCmd.Flags().BoolVar(&offline, "offline", false, "показать последний сохраненный список без обращения к серверу")
}
