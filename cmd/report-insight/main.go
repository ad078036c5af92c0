// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the report-insight CLI.
// It hosts the query/compare page (serve) and runs the same flows headless
// (query, compare).
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/report-insight/internal/api"
	"github.com/pdiddy/report-insight/internal/logger"
	"github.com/pdiddy/report-insight/internal/render"
	"github.com/pdiddy/report-insight/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg and log are resolved once per invocation in PersistentPreRunE.
var (
	cfg types.Config
	log *logger.Logger
)

// rootCmd is the base command for the report-insight CLI.
var rootCmd = &cobra.Command{
	Use:   "report-insight",
	Short: "Ask questions about market research reports",
	Long: `report-insight is the front end of a market research analysis service.
It serves a page with a query box and a compare button, sends each click to
the analysis API, and renders the answer, sentiment, topics and sources.

The query and compare subcommands run the same flows without a browser and
print the resulting page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		logCfg, err := logger.ParseConfig(loaded.Log)
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.Stderr(logCfg)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./report-insight.yaml or ~/.config/report-insight/config.yaml)")
	flags.String("api-base", api.DefaultBaseURL, "base URL of the analysis API")
	flags.Duration("timeout", 0, "HTTP request timeout (0 = none)")
	flags.String("pdf-path", render.DefaultPDFPath, "document that source links point at")
	flags.Bool("escape-markup", false, "escape markup in backend responses instead of rendering it")
	flags.Bool("answer-fallback", false, `show the backend's "answer" field when "insight" is missing`)
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	bindings := map[string]string{
		"api.base_url":           "api-base",
		"api.timeout":            "timeout",
		"render.pdf_path":        "pdf-path",
		"render.escape_markup":   "escape-markup",
		"render.answer_fallback": "answer-fallback",
		"log.level":              "log-level",
		"log.format":             "log-format",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env: %v\n", err)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("report-insight")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "report-insight"))
		}
	}

	setDefaults(viper.GetViper())

	viper.SetEnvPrefix("REPORT_INSIGHT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		configErr = fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
