package cmd

import (
	"os"

	"scicalc/config"
	"scicalc/core/interpreter"
	"scicalc/core/persistence"
	"scicalc/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "scicalc",
	Short: "Научный калькулятор выражений",
	Long: `scicalc вычисляет инфиксные выражения с + - * / ^, унарным минусом,
скобками и функциями sin, cos, tan (в градусах), log, ln, exp, sqrt.

Режимы:
  serve  - HTTP API, websocket и метрики Prometheus
  repl   - интерактивная консоль
  eval   - вычислить выражения из аргументов
  demo   - демонстрационный прогон`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML файл конфигурации (или CALC_CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный лог")
}

// loadConfig - конфигурация и логгер с учетом общих флагов
func loadConfig() (*config.Config, *logrus.Entry, error) {
	if cfgFile != "" {
		os.Setenv("CALC_CONFIG_FILE", cfgFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, logging.New(cfg.LogLevel), nil
}

func newInterpreter(cfg *config.Config, log *logrus.Entry) *interpreter.Interpreter {
	pm := persistence.NewPersistenceManager(cfg.DataFile, log)
	return interpreter.NewInterpreter(pm, cfg.HistoryLimit, log)
}
