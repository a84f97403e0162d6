// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the curriculum-graph CLI. It parses
// curriculum documents, keeps the results in a local SQLite database and
// serves them over HTTP.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/curriculum-graph/internal/analyze"
	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/store"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the curriculum-graph CLI.
var rootCmd = &cobra.Command{
	Use:   "curriculum-graph",
	Short: "Extract structured metadata from curriculum documents",
	Long: `curriculum-graph reads course programme documents (.docx and .pdf),
recovers the discipline name, goals, syllabus sections with workload hours,
software, bibliography and learning outcomes, and projects them onto a graph.

Records can be kept in a local SQLite database and browsed through the
HTTP API started by "serve".`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./curriculum-graph.yaml or ~/.config/curriculum-graph/curriculum-graph.yaml)")
	rootCmd.PersistentFlags().String("db", "", "SQLite database path (default: data/curriculum.db)")
	rootCmd.PersistentFlags().String("lexicon", "", "YAML file overriding the built-in keyword tables")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("lexicon", rootCmd.PersistentFlags().Lookup("lexicon"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	setDefaults(viper.GetViper())
}

// setDefaults registers every key of types.DefaultConfig so that
// environment variables and Unmarshal see them.
func setDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.max_upload_bytes", d.Server.MaxUploadBytes)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("lexicon", d.Lexicon)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("curriculum-graph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "curriculum-graph"))
		}
	}

	viper.SetEnvPrefix("CURRICULUM_GRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig decodes the effective configuration from v.
func loadConfig(v *viper.Viper) (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// newLogger returns a text logger on w at the named level. Unknown level
// names fall back to info.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// runtime bundles what a command needs; close releases the store.
type runtime struct {
	cfg    types.Config
	logger *slog.Logger
	lex    *lexicon.Lexicon
	store  *store.Store
	svc    *analyze.Service
}

func (rt *runtime) close() {
	if rt.store != nil {
		rt.store.Close()
	}
}

// newRuntime loads config, lexicon and logger. The store is opened only
// when withStore is set.
func newRuntime(withStore bool) (*runtime, error) {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}
	logger := newLogger(os.Stderr, cfg.Log.Level)

	lex, err := lexicon.Load(cfg.Lexicon)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, logger: logger, lex: lex}
	var repo analyze.Repository
	if withStore {
		st, err := store.Open(cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		rt.store = st
		repo = st
	}
	rt.svc = analyze.NewService(lex, repo, logger)
	return rt, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
