// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mjoshi/libshelf/internal/libgen"
	"github.com/mjoshi/libshelf/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <book name>",
	Short: "Search the index for one book and download it",
	Long: `Get queries the book index for a title, selects the best match (highest page
count, or an interactive choice), resolves the download mirror, and streams
the file to disk. Without --out the file is named after the record's title
and type.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().String("out", "", "destination file path (default: derived from the record)")
	getCmd.Flags().Bool("interactive", false, "pick search results by hand instead of taking the highest page count")
	getCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	getCmd.Flags().Duration("delay", 0, "delay between consecutive downloads (default 1s)")
	getCmd.Flags().String("history-dir", defaultHistoryDir, "directory for the acquisition history database")
	getCmd.Flags().Bool("no-history", false, "do not record acquisition attempts")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	delay, _ := cmd.Flags().GetDuration("delay")
	if delay == 0 {
		delay = defaultDelay
	}
	out, _ := cmd.Flags().GetString("out")

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

	ctx := cmd.Context()
	acquired, err := libgen.Acquire(ctx, client, name, out, sel, scfg, acfg, os.Stdout)
	recordOutcome(ctx, hist, name, out, acquired, err)
	return err
}
