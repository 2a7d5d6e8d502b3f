package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd - родительская команда для всех операций с авторизацией пользователя
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Управление пользователем",
	Long:  `Вход, выход, смена пароля и удаление аккаунта.`,
}

func init() {
	AuthCmd.AddCommand(LoginCmd, LogoutCmd, ChangePasscodeCmd, DeleteAccountCmd)
}
