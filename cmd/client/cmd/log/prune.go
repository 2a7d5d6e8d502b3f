// cmd/client/cmd/log/prune.go
package log

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var PruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Удалить записи журнала старше 14 дней",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		res := env.App.PruneLogs(cmd.Context())
		if !res.Success {
			return env.Out.Fail(res.Result)
		}
		return env.Out.Emit(res, func(io.Writer) {
			env.Out.Success("Удалено записей: " + strconv.Itoa(res.DeletedCount))
		})
	},
}
