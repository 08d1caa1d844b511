// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogue

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Action materializes one catalogued file at path. The default action in
// this system is the acquisition pipeline; any function with this shape
// may be substituted.
type Action func(path string) error

// ReplaySummary holds the outcome of a replay run.
type ReplaySummary struct {
	Dirs     int
	Acquired int
	Failed   int
}

// HasFailures reports whether any per-file action failed.
func (s ReplaySummary) HasFailures() bool {
	return s.Failed > 0
}

// Replay recreates the catalogue's directory skeleton relative to the
// current working directory and invokes action for every listed file,
// writing progress to w. Per-file action failures are reported and counted
// but do not stop the run; a directory creation failure aborts, since
// later entries depend on earlier directories.
//
// The base directory (last segment of the first entry's path) must not
// already exist.
func Replay(c *Catalogue, action Action, w io.Writer) (ReplaySummary, error) {
	var sum ReplaySummary
	if len(c.Entries) == 0 {
		return sum, errors.New("catalogue has no entries")
	}

	base, prefix := splitRoot(c.Entries[0].Path)
	if info, err := os.Stat(base); err == nil && info.IsDir() {
		return sum, fmt.Errorf("directory %s: %w", base, ErrDestinationExists)
	}

	for _, e := range c.Entries {
		dir := e.Path
		if prefix != "" {
			dir = strings.ReplaceAll(dir, prefix, "")
		}
		dir = strings.TrimPrefix(dir, "/")

		if err := os.Mkdir(dir, 0o755); err != nil {
			return sum, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		sum.Dirs++
		fmt.Fprintln(w, dir)

		for _, name := range e.Files {
			target := filepath.Join(dir, name)
			if err := action(target); err != nil {
				fmt.Fprintf(w, "failed:  %s (%v)\n", target, err)
				sum.Failed++
				continue
			}
			sum.Acquired++
		}
	}

	fmt.Fprintf(w, "\nReplay summary: %d directories, %d acquired, %d failed\n",
		sum.Dirs, sum.Acquired, sum.Failed)
	return sum, nil
}
