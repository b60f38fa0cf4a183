// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/internal/secrets"
	"github.com/Ayesha-Zafar-03/BioOrbit-HackHers/pkg/types"
)

// setDefaults registers every typed default with viper so config files
// and BIOORBIT_* environment variables can override individual keys.
func setDefaults(v *viper.Viper) {
	d := types.DefaultPipelineConfig()

	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("corpus.path", d.Corpus.Path)

	v.SetDefault("search.max_results", d.Search.MaxResults)
	v.SetDefault("search.fields", d.Search.Fields)
	v.SetDefault("search.year_from", d.Search.YearFrom)
	v.SetDefault("search.year_to", d.Search.YearTo)

	v.SetDefault("graph.variant", string(d.Graph.Variant))
	v.SetDefault("graph.max_papers", d.Graph.MaxPapers)
	v.SetDefault("graph.max_authors", d.Graph.MaxAuthors)
	v.SetDefault("graph.max_name_len", d.Graph.MaxNameLen)
	v.SetDefault("graph.label_len", d.Graph.LabelLen)
	v.SetDefault("graph.similarity", string(d.Graph.Similarity))
	v.SetDefault("graph.min_shared_tokens", d.Graph.MinSharedTokens)
	v.SetDefault("graph.omit_authors", d.Graph.OmitAuthors)
	v.SetDefault("graph.fields", d.Graph.Fields)

	v.SetDefault("layout.algorithm", string(d.Layout.Algorithm))
	v.SetDefault("layout.seed", d.Layout.Seed)
	v.SetDefault("layout.iterations", d.Layout.Iterations)
	v.SetDefault("layout.spring_iterations", d.Layout.SpringIterations)
	v.SetDefault("layout.spring_k", d.Layout.SpringK)

	v.SetDefault("render.output_dir", d.Render.OutputDir)
	v.SetDefault("render.width", d.Render.Width)
	v.SetDefault("render.height", d.Render.Height)

	v.SetDefault("summary.timeout", d.Summary.Timeout)
	v.SetDefault("summary.user_agent", d.Summary.UserAgent)
	v.SetDefault("summary.api_key", "")
	v.SetDefault("summary.base_url", d.Summary.BaseURL)
	v.SetDefault("summary.model", d.Summary.Model)
	v.SetDefault("summary.max_tokens", d.Summary.MaxTokens)
	v.SetDefault("summary.temperature", d.Summary.Temperature)
	v.SetDefault("summary.max_retries", d.Summary.MaxRetries)

	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("fetch.requests_per_second", d.Fetch.RequestsPerSecond)
	v.SetDefault("fetch.concurrency", d.Fetch.Concurrency)

	v.SetDefault("cache.path", d.Cache.Path)
}

// readConfig locates and reads the config file. An explicit path must
// exist; the search path may come up empty.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bioorbit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bioorbit"))
		}
	}

	v.SetEnvPrefix("BIOORBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// loadConfig builds the effective configuration: typed defaults, then the
// config file, then BIOORBIT_* variables, then bound flags. The Groq key
// falls back to GROQ_API_KEY (from the environment or .env) and then to
// .secrets/groq-api-key.
func loadConfig(v *viper.Viper) (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Summary.APIKey == "" {
		key, err := secrets.Lookup(secrets.DefaultDir, secrets.GroqAPIKey, os.Stderr)
		if err != nil {
			return cfg, err
		}
		cfg.Summary.APIKey = key
	}
	if cfg.Fetch.UserAgent == "" {
		cfg.Fetch.UserAgent = cfg.Summary.UserAgent
	}
	return cfg, nil
}

// loadDotEnv reads .env when present. A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
