// cmd/client/cmd/note/delete.go
package note

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var yes bool

var DeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить заметку",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := confirm("Удалить заметку?"); err != nil {
			return err
		}
		return env.Out.Done(env.App.DeleteNote(cmd.Context(), args[0]), "Заметка удалена")
	},
}

var DeleteAllCmd = &cobra.Command{
	Use:   "delete-all",
	Short: "Удалить все свои заметки",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := confirm("Удалить все заметки без возможности восстановления?"); err != nil {
			return err
		}

		res := env.App.DeleteAllNotes(cmd.Context())
		if !res.Success {
			return env.Out.Fail(res.Result)
		}
		return env.Out.Emit(res, func(io.Writer) {
			env.Out.Success("Удалено заметок: " + strconv.Itoa(res.DeletedCount))
		})
	},
}

func confirm(question string) error {
	if yes {
		return nil
	}
	answer, err := types.ReadLine(question + " [y/N]: ")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return fmt.Errorf("отменено")
	}
	return nil
}

func init() {
	DeleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "не запрашивать подтверждение")
	DeleteAllCmd.Flags().BoolVarP(&yes, "yes", "y", false, "не запрашивать подтверждение")
}
