// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mjoshi/libshelf/internal/catalogue"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue <source> <catalogue-file>",
	Short: "Build a catalogue from a directory or a flat text listing",
	Long: `Catalogue describes a directory tree as an ordered list of directories and
the files inside them, and persists the description to a file. A directory
source is scanned recursively; a file source is parsed as a flat pre-order
text listing, one path per line. The catalogue file must not already exist.`,
	Args: cobra.ExactArgs(2),
	RunE: runCatalogue,
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	c, err := catalogue.Build(args[0], args[1])
	if err != nil {
		return err
	}

	files := 0
	for _, e := range c.Entries {
		files += len(e.Files)
	}
	fmt.Printf("Created catalogue %s (%d directories, %d files)\n", args[1], len(c.Entries), files)
	return nil
}
