// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the bioorbit CLI. It searches a
// local corpus of space biology publications, builds author-paper
// knowledge graphs, and renders them as interactive pages or snapshots.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/corpus"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/logger"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg is the effective configuration, loaded before any subcommand runs.
var cfg = types.DefaultPipelineConfig()

var log = logger.Discard()

// rootCmd is the base command for the bioorbit CLI.
var rootCmd = &cobra.Command{
	Use:   "bioorbit",
	Short: "Explore space biology research as a knowledge graph",
	Long: `bioorbit reads a CSV corpus of space biology publications and answers
keyword queries against it. Matching papers become an author-paper knowledge
graph that can be rendered as an interactive page, an SVG or PNG snapshot,
or exported as JSON or YAML.

Configuration comes from ./bioorbit.yaml or ~/.config/bioorbit/bioorbit.yaml,
BIOORBIT_* environment variables, and flags, in increasing precedence.
GROQ_API_KEY (or .secrets/groq-api-key) enables hosted summaries.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.New(cfg.LogLevel, os.Stderr)
		log.Debug("configuration loaded", "corpus", cfg.Corpus.Path, "variant", cfg.Graph.Variant, "layout", cfg.Layout.Algorithm)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./bioorbit.yaml or ~/.config/bioorbit/bioorbit.yaml)")
	rootCmd.PersistentFlags().String("corpus", "", "corpus CSV path (default from config)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("corpus.path", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
	}

	v := viper.GetViper()
	setDefaults(v)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if err := readConfig(v, cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "warning:", err)
		return
	}
	if used := v.ConfigFileUsed(); used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

// loadCorpus reads the configured corpus file.
func loadCorpus() (*corpus.Corpus, error) {
	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("corpus loaded", "path", cfg.Corpus.Path, "records", c.Len())
	return c, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
