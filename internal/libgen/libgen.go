// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package libgen queries the book index, extracts candidate records from
// result rows, resolves download pages to direct links, and streams files
// to disk. The stages compose into Acquire, the default per-file action of
// a catalogue replay.
package libgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjoshi/libshelf/internal/httputil"
	"github.com/mjoshi/libshelf/pkg/types"
)

// Default endpoints for the index and its trusted download mirror. Mirror
// hosts rotate; internal/mirrors and the config file override these.
const (
	DefaultSearchBase   = "http://libgen.is/search.php"
	DefaultDownloadBase = "http://93.174.95.29/"
	DefaultAdsPrefix    = "http://93.174.95.29/_ads/"
)

// Sentinel errors for the acquisition pipeline. Callers discriminate with
// errors.Is.
var (
	// ErrNoResults reports that a query matched nothing on the index.
	ErrNoResults = errors.New("no results")

	// ErrMalformedRow reports a result row with fewer columns than the
	// extractor requires.
	ErrMalformedRow = errors.New("malformed result row")

	// ErrNoInfoAnchor reports a download page without the expected info
	// anchor.
	ErrNoInfoAnchor = errors.New("info anchor not found")
)

// withDefaults fills empty endpoint fields from the package defaults.
func withDefaults(cfg types.SearchConfig) types.SearchConfig {
	if cfg.SearchBase == "" {
		cfg.SearchBase = DefaultSearchBase
	}
	if cfg.DownloadBase == "" {
		cfg.DownloadBase = DefaultDownloadBase
	}
	if cfg.AdsPrefix == "" {
		cfg.AdsPrefix = DefaultAdsPrefix
	}
	return cfg
}

// Search queries the index for name and extracts a record per result row.
// Result rows are the tr[valign=top] elements of the response; the first
// such row is the column header and is skipped. Rows that fail extraction
// are reported to w as warnings and dropped. A query matching nothing
// returns an empty slice and no error; callers decide whether that is
// fatal.
func Search(ctx context.Context, client *http.Client, name string, cfg types.SearchConfig, w io.Writer) ([]types.Record, error) {
	cfg = withDefaults(cfg)

	searchURL := fmt.Sprintf("%s?req=%s&lg_topic=libgen&open=0&view=simple&res=25&phrase=1&column=def",
		cfg.SearchBase, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, w)
	if err != nil {
		return nil, fmt.Errorf("index request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing index response: %w", err)
	}

	var records []types.Record
	doc.Find(`tr[valign="top"]`).Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			// Header row.
			return
		}
		rec, err := parseRecord(row, cfg.AdsPrefix)
		if err != nil {
			fmt.Fprintf(w, "warning: result row %d: %v\n", i, err)
			return
		}
		records = append(records, rec)
	})
	return records, nil
}
