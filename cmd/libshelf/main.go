// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the libshelf CLI: cataloguing
// directory trees, replaying catalogues, and acquiring single books from
// the index.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mjoshi/libshelf/internal/history"
	"github.com/mjoshi/libshelf/internal/libgen"
	"github.com/mjoshi/libshelf/internal/mirrors"
	"github.com/mjoshi/libshelf/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout    = 60 * time.Second
	defaultDelay      = 1 * time.Second
	defaultUserAgent  = "libshelf/0.1"
	defaultHistoryDir = ".libshelf"
)

// loadedMirrors holds endpoint overrides loaded from the mirrors directory
// at startup.
var loadedMirrors map[string]string

// rootCmd is the base command for the libshelf CLI.
var rootCmd = &cobra.Command{
	Use:   "libshelf",
	Short: "Catalogue directory trees and rebuild them from a book index",
	Long: `libshelf builds a portable catalogue of a directory tree — from a live scan
or a flat text listing — and later replays it on another machine, recreating
the directory skeleton and acquiring every listed file from a remote book
index.

Each operation is a subcommand: catalogue, replay, get, and history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("mirrors-dir")
		m, err := mirrors.Load(dir)
		if err != nil {
			return err
		}
		loadedMirrors = m
		if len(m) > 0 {
			keys := make([]string, 0, len(m))
			for k := range m {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded mirror overrides: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./libshelf.yaml or ~/.config/libshelf/config.yaml)")
	rootCmd.PersistentFlags().String("mirrors-dir", ".mirrors/", "directory of mirror endpoint override files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("libshelf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "libshelf"))
		}
	}

	viper.SetDefault("search_base", libgen.DefaultSearchBase)
	viper.SetDefault("download_base", libgen.DefaultDownloadBase)
	viper.SetDefault("ads_prefix", libgen.DefaultAdsPrefix)
	viper.SetDefault("chunk_size", libgen.DefaultChunkSize)

	viper.SetEnvPrefix("LIBSHELF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig assembles search settings from config-file values and
// mirror overrides; overrides win.
func searchConfig(timeout time.Duration) types.SearchConfig {
	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		SearchBase:   viper.GetString("search_base"),
		DownloadBase: viper.GetString("download_base"),
		AdsPrefix:    viper.GetString("ads_prefix"),
		MaxRetries:   viper.GetInt("max_retries"),
	}
	if v, ok := loadedMirrors[mirrors.KeySearchBase]; ok {
		cfg.SearchBase = v
	}
	if v, ok := loadedMirrors[mirrors.KeyDownloadBase]; ok {
		cfg.DownloadBase = v
	}
	if v, ok := loadedMirrors[mirrors.KeyAdsPrefix]; ok {
		cfg.AdsPrefix = v
	}
	return cfg
}

// openHistory opens the acquisition history store per the command's flags,
// or returns nil when recording is disabled.
func openHistory(cmd *cobra.Command) (*history.Store, error) {
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		return nil, nil
	}
	dir, _ := cmd.Flags().GetString("history-dir")
	return history.Open(types.HistoryConfig{Enabled: true, Dir: dir})
}

// recordOutcome logs one acquisition call: a row per downloaded record, or
// a single failed row. A nil store is a no-op; recording problems warn but
// never fail the acquisition.
func recordOutcome(ctx context.Context, store *history.Store, query, dest string, acquired []types.Record, acqErr error) {
	if store == nil {
		return
	}
	for _, rec := range acquired {
		a := history.Attempt{
			Query:    query,
			Title:    rec.Title,
			Author:   rec.Author,
			Pages:    rec.Pages,
			Size:     rec.Size,
			FileType: rec.FileType,
			DestPath: dest,
			Status:   history.StatusOK,
		}
		if err := store.Record(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", err)
		}
	}
	if acqErr != nil {
		a := history.Attempt{
			Query:    query,
			DestPath: dest,
			Status:   history.StatusFailed,
			Error:    acqErr.Error(),
		}
		if err := store.Record(ctx, a); err != nil {
			fmt.Fprintf(os.Stderr, "warning: recording history: %v\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
