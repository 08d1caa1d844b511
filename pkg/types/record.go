// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the libshelf pipeline:
// search records and per-stage configuration.
package types

// Record represents one parsed search result from the book index.
// Instances are transient: they are created per result row and discarded
// once the acquisition pipeline has consumed the selected ones.
type Record struct {
	// Author is the author column as displayed by the index.
	Author string `json:"author" yaml:"author"`

	// Title is the title column as displayed by the index.
	Title string `json:"title" yaml:"title"`

	// Pages is the parsed page count. Raw values like "353 p." parse to
	// 353; unparsable or empty values parse to 0.
	Pages int `json:"pages" yaml:"pages"`

	// Language is the language column.
	Language string `json:"language" yaml:"language"`

	// Size is the displayed size string (e.g. "4 Mb"); the unit is not
	// normalized.
	Size string `json:"size" yaml:"size"`

	// FileType is the file type column (e.g. "pdf", "djvu"). Stored as
	// displayed; lower-cased at use time.
	FileType string `json:"file_type" yaml:"file_type"`

	// MirrorLinks lists every mirror URL found in the trailing row cells,
	// in column order. May be empty.
	MirrorLinks []string `json:"mirror_links" yaml:"mirror_links"`

	// SourceCode is the index's identifier for the record, taken from the
	// final path segment of the first mirror link. Empty when the row
	// carries no mirror links.
	SourceCode string `json:"source_code" yaml:"source_code"`

	// DownloadPageURL is the mirror link whose prefix matches the trusted
	// download host. Empty when no mirror matches.
	DownloadPageURL string `json:"download_page_url,omitempty" yaml:"download_page_url,omitempty"`
}
