// cmd/client/cmd/log/list.go
package log

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/domain/accesslog"
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Последние записи журнала (не более 50)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := env.App.AccessLog(cmd.Context())
		if !res.Success {
			return env.Out.Fail(res.Result)
		}
		return env.Out.Emit(res, func(w io.Writer) {
			printEntries(w, env.Out, res.Entries)
		})
	},
}

func printEntries(w io.Writer, out *types.Printer, entries []accesslog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Журнал пуст")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ВРЕМЯ\tДЕЙСТВИЕ\tЗАМЕТКА\tКЛИЕНТ\tIP")
	for _, e := range entries {
		// Для удаленных заметок заголовка нет, показываем ID
		target := e.NoteTitle
		if target == "" {
			target = e.NoteID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s / %s / %s\t%s\n",
			out.Time(e.CreatedAt), e.Action, target, e.Browser, e.OS, e.Device, e.IPAddress)
	}
	tw.Flush()
}
