// cmd/client/cmd/auth/login.go
package auth

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"noteshare/cmd/client/cmd/types"
)

var passcodeFlag string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Войти по паролю",
	Long: `Вход по паролю из 12 латинских букв и цифр.

Если пароль еще не использовался, создается новый пользователь
(не более 3 новых пользователей за последние 24 часа).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := types.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		passcode := passcodeFlag
		if passcode == "" {
			passcode, err = types.ReadSecret("Пароль (12 символов): ")
			if err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		res := env.App.Login(ctx, passcode)
		if !res.Success {
			return env.Out.Fail(res.Result)
		}

		return env.Out.Emit(res, func(io.Writer) {
			if res.Created {
				env.Out.Success("Создан новый пользователь, вход выполнен")
				env.Out.Warn("Запомните пароль: восстановить его невозможно")
				return
			}
			env.Out.Success("Вход выполнен")
		})
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&passcodeFlag, "passcode", "p", "", "пароль (небезопасно: попадет в историю shell)")
}
