package cli

import (
	"github.com/spf13/cobra"

	"hr-interview-bot/internal/console"
)

func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Провести интервью в терминале без Telegram",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, generator, err := loadDependencies()
			if err != nil {
				return err
			}
			return console.NewRunner(engine, generator).Run()
		},
	}
}
