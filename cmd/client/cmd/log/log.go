// cmd/client/cmd/log/log.go
package log

import (
	"github.com/spf13/cobra"
)

var LogCmd = &cobra.Command{
	Use:   "log",
	Short: "Журнал доступа к заметкам",
	Long: `Журнал хранит просмотры, создание, изменение и удаление заметок
за последние 14 дней вместе с IP-адресом, браузером, ОС и типом устройства.`,
}

func init() {
	LogCmd.AddCommand(ListCmd)
	LogCmd.AddCommand(PruneCmd)
}
