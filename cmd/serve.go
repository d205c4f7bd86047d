package cmd

import (
	"time"

	"scicalc/ui"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

var (
	serveAddr string
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP API калькулятора",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("addr") {
			cfg.Addr = serveAddr
		}
		if cmd.Flags().Changed("open") {
			cfg.OpenBrowser = serveOpen
		}

		web := ui.NewWebInterface(newInterpreter(cfg, log), cfg, log)

		if cfg.OpenBrowser {
			calcURL := "http://localhost" + cfg.Addr
			go func() {
				time.Sleep(500 * time.Millisecond)
				if err := open.Run(calcURL); err != nil {
					log.WithError(err).Warn("Не удалось открыть браузер")
				}
			}()
			log.WithField("url", calcURL).Info("Калькулятор открывается в браузере")
		}

		return web.Start(cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Адрес HTTP сервера")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Открыть браузер после запуска")
	rootCmd.AddCommand(serveCmd)
}
