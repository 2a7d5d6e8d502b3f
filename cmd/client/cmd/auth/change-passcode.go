// cmd/client/cmd/auth/change-passcode.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var ChangePasscodeCmd = &cobra.Command{
	Use:   "change-passcode",
	Short: "Изменить пароль текущего пользователя",
	Long: `Смена пароля. Новый пароль должен состоять из 12 латинских букв и цифр
и не должен использоваться другим пользователем.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		passcode, err := types.ReadSecret("Новый пароль: ")
		if err != nil {
			return err
		}
		confirm, err := types.ReadSecret("Повторите новый пароль: ")
		if err != nil {
			return err
		}
		if passcode != confirm {
			return fmt.Errorf("пароли не совпадают")
		}

		return env.Out.Done(env.App.ChangePasscode(cmd.Context(), passcode), "Пароль изменен")
	},
}
