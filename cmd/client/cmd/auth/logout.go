package auth

import (
	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
	"noteshare/internal/domain/result"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Выйти и удалить локальный кэш заметок",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		env.App.Logout()
		return env.Out.Done(result.OK("Выход выполнен"), "")
	},
}
