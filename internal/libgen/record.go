// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjoshi/libshelf/pkg/types"
)

// Result row column positions on the index's simple view.
const (
	colAuthor   = 1
	colTitle    = 2
	colPages    = 5
	colLanguage = 6
	colSize     = 7
	colFileType = 8
	colMirrors  = 9
)

// minColumns is the narrowest row the extractor accepts: every fixed
// column through file type must be present. Rows narrower than this are
// structurally malformed, not a data-quality issue.
const minColumns = colFileType + 1

// parseRecord extracts one Record from a result row. Mirror links occupy
// the cells after the fixed columns; the final cell closes the row and
// never carries one. The download page is the first mirror link whose
// prefix matches adsPrefix; rows without a matching mirror produce a
// record with an empty DownloadPageURL.
func parseRecord(row *goquery.Selection, adsPrefix string) (types.Record, error) {
	cells := row.Find("td")
	if cells.Length() < minColumns {
		return types.Record{}, fmt.Errorf("%w: %d columns, need %d", ErrMalformedRow, cells.Length(), minColumns)
	}

	rec := types.Record{
		Author:      cells.Eq(colAuthor).Text(),
		Title:       cells.Eq(colTitle).Text(),
		Pages:       parsePages(cells.Eq(colPages).Text()),
		Language:    cells.Eq(colLanguage).Text(),
		Size:        cells.Eq(colSize).Text(),
		FileType:    cells.Eq(colFileType).Text(),
		MirrorLinks: []string{},
	}

	for i := colMirrors; i < cells.Length()-1; i++ {
		href, ok := cells.Eq(i).Find("a").First().Attr("href")
		if !ok {
			continue
		}
		rec.MirrorLinks = append(rec.MirrorLinks, href)
	}

	if len(rec.MirrorLinks) > 0 {
		segs := strings.Split(rec.MirrorLinks[0], "/")
		rec.SourceCode = segs[len(segs)-1]
	}
	for _, link := range rec.MirrorLinks {
		if strings.HasPrefix(link, adsPrefix) {
			rec.DownloadPageURL = link
			break
		}
	}
	return rec, nil
}

// parsePages strips every non-digit from raw and parses the remainder as
// an integer. "353 p." parses to 353; unparsable or empty input parses
// to 0.
func parsePages(raw string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
