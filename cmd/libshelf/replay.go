// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mjoshi/libshelf/internal/catalogue"
	"github.com/mjoshi/libshelf/internal/libgen"
	"github.com/mjoshi/libshelf/pkg/types"
)

var replayCmd = &cobra.Command{
	Use:   "replay <catalogue-file>",
	Short: "Recreate a catalogued tree and acquire every listed file",
	Long: `Replay loads a catalogue, recreates its directory skeleton relative to the
current directory, and acquires every listed file from the book index. The
base directory of the catalogue must not already exist. Files that cannot
be acquired are reported; the replay continues with the rest.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Bool("interactive", false, "pick search results by hand instead of taking the highest page count")
	replayCmd.Flags().Bool("dry-run", false, "create the directory skeleton but print target paths instead of downloading")
	replayCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	replayCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	replayCmd.Flags().String("history-dir", defaultHistoryDir, "directory for the acquisition history database")
	replayCmd.Flags().Bool("no-history", false, "do not record acquisition attempts")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	c, err := catalogue.Load(args[0])
	if err != nil {
		return err
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}

	scfg := searchConfig(timeout)
	acfg := types.AcquisitionConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		ChunkSize:     viper.GetInt("chunk_size"),
		DownloadDelay: delay,
	}
	client := &http.Client{Timeout: timeout}

	sel := libgen.Selector(libgen.AutoSelect)
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		sel = libgen.NewInteractiveSelector(os.Stdin, os.Stdout)
	}

	hist, err := openHistory(cmd)
	if err != nil {
		return err
	}
	if hist != nil {
		defer hist.Close()
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	ctx := cmd.Context()

	action := func(path string) error {
		if dryRun {
			fmt.Printf("would acquire: %s\n", path)
			return nil
		}
		acquired, err := libgen.Acquire(ctx, client, "", path, sel, scfg, acfg, os.Stdout)
		recordOutcome(ctx, hist, path, path, acquired, err)
		return err
	}

	sum, err := catalogue.Replay(c, action, os.Stdout)
	if err != nil {
		return err
	}
	if sum.HasFailures() {
		return fmt.Errorf("%d file(s) failed acquisition", sum.Failed)
	}
	return nil
}
