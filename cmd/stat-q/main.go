// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the stat-q CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the stat-q CLI.
var rootCmd = &cobra.Command{
	Use:   "stat-q",
	Short: "Questionnaire document tooling for the stat-q study",
	Long: `stat-q converts directories of Word questionnaire documents into plain
text files for downstream statistical processing. Paragraph text is kept
line per line; table contents are flattened into delimited rows.

Each stage is a subcommand; extract runs the batch conversion.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./stat-q.yaml or ~/.config/stat-q/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("stat-q")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "stat-q"))
		}
	}

	viper.SetEnvPrefix("STAT_Q")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
