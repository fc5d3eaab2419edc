// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the collabnotes CLI.
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

// rootCmd is the base command for the collabnotes CLI.
var rootCmd = &cobra.Command{
	Use:   "collabnotes",
	Short: "In-memory collaborative note taking with PDF export",
	Long: `collabnotes holds short text notes in process memory and serves a
single-page web UI to create, view, edit, delete, search, and export them.
Nothing is persisted: the note store lives and dies with the process.

Use "serve" to run the web UI, or "pdf" to convert a note to a PDF without
running a server.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./collabnotes.yaml or ~/.config/collabnotes/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("collabnotes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "collabnotes"))
		}
	}

	viper.SetEnvPrefix("COLLABNOTES")
	viper.AutomaticEnv()

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("store.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
