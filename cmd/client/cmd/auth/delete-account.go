package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var yes bool

var DeleteAccountCmd = &cobra.Command{
	Use:   "delete-account",
	Short: "Удалить аккаунт со всеми заметками и журналом",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		if !yes {
			answer, err := types.ReadLine("Удалить аккаунт и все данные без возможности восстановления? [y/N]: ")
			if err != nil {
				return err
			}
			if answer != "y" && answer != "Y" {
				return fmt.Errorf("отменено")
			}
		}

		return env.Out.Done(env.App.DeleteAccount(cmd.Context()), "Аккаунт удален")
	},
}

func init() {
	DeleteAccountCmd.Flags().BoolVarP(&yes, "yes", "y", false, "не запрашивать подтверждение")
}
