// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/mjoshi/libshelf/pkg/types"
)

// Acquire searches the index for bookName, selects records with sel,
// resolves each selection's download page, and streams the files to disk.
// It returns the records that were downloaded.
//
// When bookName is empty it is derived from destPath's base name with
// everything from the first '.' stripped; at least one of the two must be
// supplied. A query that matches nothing is retried once through
// betterName before giving up with ErrNoResults.
//
// When destPath is empty the output name is the record title directly
// concatenated with the lower-cased file type. The original tool never put
// a '.' between them and existing libraries were named that way, so the
// concatenation is kept as-is.
func Acquire(ctx context.Context, client *http.Client, bookName, destPath string, sel Selector, scfg types.SearchConfig, acfg types.AcquisitionConfig, w io.Writer) ([]types.Record, error) {
	if bookName == "" {
		if destPath == "" {
			return nil, errors.New("neither book name nor file name supplied")
		}
		bookName = nameFromFile(destPath)
	}

	records, err := Search(ctx, client, bookName, scfg, w)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		retry := betterName(bookName)
		fmt.Fprintf(w, "no results for %q, retrying as %q\n", bookName, retry)
		records, err = Search(ctx, client, retry, scfg, w)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, fmt.Errorf("%q: %w", bookName, ErrNoResults)
		}
	}

	selected, err := sel(records)
	if err != nil {
		return nil, err
	}

	var acquired []types.Record
	for i, rec := range selected {
		if i > 0 && acfg.DownloadDelay > 0 {
			time.Sleep(acfg.DownloadDelay)
		}
		if rec.DownloadPageURL == "" {
			return acquired, fmt.Errorf("record %q has no trusted mirror link", rec.Title)
		}

		link, err := ResolveDownloadLink(ctx, client, rec.DownloadPageURL, scfg, w)
		if err != nil {
			return acquired, err
		}

		dest := destPath
		if dest == "" {
			dest = rec.Title + strings.ToLower(rec.FileType)
		}

		fmt.Fprintf(w, "downloading: %s (%s, %d pages)\n", rec.Title, rec.Size, rec.Pages)
		if err := Download(ctx, client, link, dest, acfg, w); err != nil {
			return acquired, err
		}
		fmt.Fprintf(w, "downloaded: %s\n", dest)
		acquired = append(acquired, rec)
	}
	return acquired, nil
}

// nameFromFile derives a query term from a target file path: the base name
// with everything from the first '.' on removed.
func nameFromFile(destPath string) string {
	base := path.Base(filepath.ToSlash(destPath))
	name, _, _ := strings.Cut(base, ".")
	return name
}

// betterName is a hook for normalizing a query that matched nothing,
// e.g. when a file name differs slightly from the listed title. Currently
// the identity transform.
func betterName(name string) string {
	return name
}
