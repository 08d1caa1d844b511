// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mjoshi/libshelf/pkg/types"
)

// Selector chooses which of the extracted records to acquire. Automatic
// and interactive policies share this shape, so a replay can inject either.
type Selector func(records []types.Record) ([]types.Record, error)

const (
	maxShown   = 5
	titleWidth = 70
)

// AutoSelect returns the single record with the highest page count. Ties
// break in favor of the first record encountered; the scan is linear, not
// a sort.
func AutoSelect(records []types.Record) ([]types.Record, error) {
	if len(records) == 0 {
		return nil, ErrNoResults
	}
	best := 0
	for i := 1; i < len(records); i++ {
		if records[i].Pages > records[best].Pages {
			best = i
		}
	}
	return []types.Record{records[best]}, nil
}

// NewInteractiveSelector returns a Selector that presents up to the first
// five records on w and reads a space-separated list of 1-based picks from
// r. The chosen records are returned in the order given; an out-of-range
// or non-numeric pick fails the call.
func NewInteractiveSelector(r io.Reader, w io.Writer) Selector {
	reader := bufio.NewReader(r)
	return func(records []types.Record) ([]types.Record, error) {
		if len(records) == 0 {
			return nil, ErrNoResults
		}

		shown := records
		if len(shown) > maxShown {
			shown = shown[:maxShown]
		}
		for i, rec := range shown {
			title := rec.Title
			if len(title) > titleWidth {
				title = title[:titleWidth]
			}
			fmt.Fprintln(w, strings.Repeat("#", 40))
			fmt.Fprintf(w, "Result %d\n", i+1)
			fmt.Fprintf(w, "Title:    %s\n", title)
			fmt.Fprintf(w, "Author:   %s\n", rec.Author)
			fmt.Fprintf(w, "Pages:    %d\n", rec.Pages)
			fmt.Fprintf(w, "Language: %s\n", rec.Language)
			fmt.Fprintf(w, "Size:     %s\n", rec.Size)
		}
		fmt.Fprintln(w, `Enter selection, space separated (e.g. "1 3"):`)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("reading selection: %w", err)
		}

		var picked []types.Record
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid selection %q", field)
			}
			if n < 1 || n > len(records) {
				return nil, fmt.Errorf("selection %d out of range (1-%d)", n, len(records))
			}
			picked = append(picked, records[n-1])
		}
		if len(picked) == 0 {
			return nil, fmt.Errorf("empty selection")
		}
		return picked, nil
	}
}
