package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/telemetry"
)

const app = "resumectl"

var (
	// Used for flags.
	cfgFile string
	v       = viper.New()

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resumectl analyzes resumes and serves the resume-insights API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-insights.yaml in current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: json or pretty")
	rootCmd.PersistentFlags().String("industry-table", "", "YAML industry signature table (default is the built-in table)")

	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag(config.KeyIndustryTablePath, rootCmd.PersistentFlags().Lookup("industry-table"))
}

// loadConfig reads configuration and routes logs to stderr so stdout stays
// reserved for command output.
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadFrom(v, cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	telemetry.InitWriter(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	return cfg, nil
}
