package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"resume-insights/internal/bootstrap"
	"resume-insights/internal/shared/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := bootstrap.Build(ctx, cfg)
		if err != nil {
			return err
		}
		return app.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("port", "", "listen port (default 8080)")
	serveCmd.Flags().String("object-store", "", "document store for from-object requests: local or s3")

	_ = v.BindPFlag(config.KeyPort, serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag(config.KeyObjectStore, serveCmd.Flags().Lookup("object-store"))
}
