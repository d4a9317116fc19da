// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the transcript-tools CLI.
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

// rootCmd is the base command for the transcript-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "transcript-tools",
	Short: "Tabular file conversion and transcript GPA aggregation",
	Long: `transcript-tools bundles two small utilities: a bidirectional JSON/CSV
file converter and a transcript scraper that pulls per-term grade points and
credits out of a PDF and computes a cumulative GPA over a chosen term range.

Each utility is a subcommand: convert for file conversion, gpa for the
interactive GPA session, and terms for a non-interactive term listing.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./transcript-tools.yaml or ~/.config/transcript-tools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("transcript-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "transcript-tools"))
		}
	}

	viper.SetEnvPrefix("TRANSCRIPT_TOOLS")
	viper.AutomaticEnv()

	viper.SetDefault("gpa.prompt", true)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
