package main

import (
	"github.com/spf13/cobra"

	"resume-insights/internal/bootstrap"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "Print the active industry signature table as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		classifier, err := bootstrap.BuildClassifier(cfg.IndustryTablePath)
		if err != nil {
			return err
		}
		out, err := classifier.Table().YAML()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(industriesCmd)
}
