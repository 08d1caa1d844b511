// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mjoshi/libshelf/internal/history"
	"github.com/mjoshi/libshelf/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded acquisition attempts",
	Long: `History lists acquisition attempts recorded by replay and get, newest
first: what was queried, what was downloaded where, and what failed.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of attempts to list")
	historyCmd.Flags().Bool("failed", false, "list only failed attempts")
	historyCmd.Flags().String("history-dir", defaultHistoryDir, "directory for the acquisition history database")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("history-dir")
	limit, _ := cmd.Flags().GetInt("limit")
	failedOnly, _ := cmd.Flags().GetBool("failed")

	store, err := history.Open(types.HistoryConfig{Enabled: true, Dir: dir})
	if err != nil {
		return err
	}
	defer store.Close()

	attempts, err := store.List(cmd.Context(), limit, failedOnly)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		fmt.Println("No recorded attempts.")
		return nil
	}

	fmt.Printf("%-20s  %-8s  %-40s  %-5s  %s\n", "When", "Status", "Title", "Pages", "Destination")
	fmt.Println(strings.Repeat("-", 100))
	for _, a := range attempts {
		title := a.Title
		if a.Status == history.StatusFailed {
			title = a.Error
		}
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Printf("%-20s  %-8s  %-40s  %-5d  %s\n",
			a.CreatedAt.Format("2006-01-02 15:04:05"), a.Status, title, a.Pages, a.DestPath)
	}
	return nil
}
