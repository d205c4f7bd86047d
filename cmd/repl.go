package cmd

import (
	"os"

	"scicalc/ui"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Интерактивная консоль",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		return ui.NewConsoleInterface(newInterpreter(cfg, log), os.Stdin, cmd.OutOrStdout()).Run()
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Демонстрационный прогон обертки, вычислителя и памяти",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ui.RunDemo(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replCmd, demoCmd)
}
