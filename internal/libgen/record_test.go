// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package libgen

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func rowSelection(t *testing.T, rowHTML string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<table>" + rowHTML + "</table>"))
	if err != nil {
		t.Fatal(err)
	}
	return doc.Find("tr").First()
}

const sampleRow = `<tr valign="top">
<td>7</td>
<td>Donald E. Knuth</td>
<td>The Art of Computer Programming</td>
<td>Addison-Wesley</td>
<td>1968</td>
<td>650 p.</td>
<td>English</td>
<td>5 Mb</td>
<td>pdf</td>
<td><a href="http://93.174.95.29/_ads/ABC123">[1]</a></td>
<td><a href="http://mirror.example/main/DEF456">[2]</a></td>
<td><a href="edit.php?id=7">edit</a></td>
</tr>`

func TestParseRecord(t *testing.T) {
	rec, err := parseRecord(rowSelection(t, sampleRow), DefaultAdsPrefix)
	if err != nil {
		t.Fatalf("parseRecord: %v", err)
	}

	if rec.Author != "Donald E. Knuth" {
		t.Errorf("Author = %q", rec.Author)
	}
	if rec.Title != "The Art of Computer Programming" {
		t.Errorf("Title = %q", rec.Title)
	}
	if rec.Pages != 650 {
		t.Errorf("Pages = %d, want 650", rec.Pages)
	}
	if rec.Language != "English" {
		t.Errorf("Language = %q", rec.Language)
	}
	if rec.Size != "5 Mb" {
		t.Errorf("Size = %q", rec.Size)
	}
	if rec.FileType != "pdf" {
		t.Errorf("FileType = %q", rec.FileType)
	}

	wantLinks := []string{"http://93.174.95.29/_ads/ABC123", "http://mirror.example/main/DEF456"}
	if !reflect.DeepEqual(rec.MirrorLinks, wantLinks) {
		t.Errorf("MirrorLinks = %v, want %v", rec.MirrorLinks, wantLinks)
	}
	if rec.SourceCode != "ABC123" {
		t.Errorf("SourceCode = %q, want ABC123", rec.SourceCode)
	}
	if rec.DownloadPageURL != "http://93.174.95.29/_ads/ABC123" {
		t.Errorf("DownloadPageURL = %q", rec.DownloadPageURL)
	}
}

func TestParseRecordShortRow(t *testing.T) {
	row := `<tr valign="top"><td>1</td><td>A</td><td>B</td></tr>`
	_, err := parseRecord(rowSelection(t, row), DefaultAdsPrefix)
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("short row: err = %v, want ErrMalformedRow", err)
	}
}

func TestParseRecordNoMirrors(t *testing.T) {
	row := `<tr valign="top">
<td>1</td><td>A</td><td>B</td><td>P</td><td>2001</td>
<td>N/A</td><td>English</td><td>1 Mb</td><td>djvu</td>
</tr>`
	rec, err := parseRecord(rowSelection(t, row), DefaultAdsPrefix)
	if err != nil {
		t.Fatalf("parseRecord: %v", err)
	}
	if len(rec.MirrorLinks) != 0 {
		t.Errorf("MirrorLinks = %v, want empty", rec.MirrorLinks)
	}
	if rec.SourceCode != "" || rec.DownloadPageURL != "" {
		t.Errorf("SourceCode = %q, DownloadPageURL = %q, want both empty", rec.SourceCode, rec.DownloadPageURL)
	}
	if rec.Pages != 0 {
		t.Errorf("Pages = %d, want 0 for N/A", rec.Pages)
	}
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"353 p.", 353},
		{"353", 353},
		{"[353]", 353},
		{"N/A", 0},
		{"", 0},
		{"xii+410", 410},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := parsePages(tt.raw); got != tt.want {
				t.Errorf("parsePages(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}
