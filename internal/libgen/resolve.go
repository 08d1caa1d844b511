// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjoshi/libshelf/internal/httputil"
	"github.com/mjoshi/libshelf/pkg/types"
)

// ResolveDownloadLink fetches a record's download page and composes the
// direct download URL: the trusted mirror base concatenated with the
// target of the first anchor inside the td#info element. A page without
// that anchor is ErrNoInfoAnchor.
func ResolveDownloadLink(ctx context.Context, client *http.Client, pageURL string, cfg types.SearchConfig, w io.Writer) (string, error) {
	cfg = withDefaults(cfg)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, w)
	if err != nil {
		return "", fmt.Errorf("fetching download page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing download page: %w", err)
	}

	href, ok := doc.Find("td#info a").First().Attr("href")
	if !ok {
		return "", fmt.Errorf("download page %s: %w", pageURL, ErrNoInfoAnchor)
	}
	return cfg.DownloadBase + href, nil
}
