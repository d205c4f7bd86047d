package cmd

import (
	"fmt"
	"strconv"

	"scicalc/core/evaluator"

	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <выражение>...",
	Short: "Вычислить выражения; ошибка одного не прерывает остальные",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := evalAll(cmd, args)
		if failed > 0 {
			return fmt.Errorf("ошибок: %d из %d", failed, len(args))
		}
		return nil
	},
}

func evalAll(cmd *cobra.Command, exprs []string) int {
	failed := 0
	for _, expr := range exprs {
		result, err := evaluator.Evaluate(expr)
		if err != nil {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "%s → ошибка: %v\n", expr, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", expr, strconv.FormatFloat(result, 'g', -1, 64))
	}
	return failed
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
