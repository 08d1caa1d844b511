// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogue

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseListing(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []Entry
	}{
		{
			name:  "nested directories",
			lines: []string{"books", "books/a.pdf", "books/sub", "books/sub/b.pdf"},
			want: []Entry{
				{Path: "books", Subdirs: []string{}, Files: []string{"a.pdf"}},
				{Path: "books/sub", Subdirs: []string{}, Files: []string{"b.pdf"}},
			},
		},
		{
			name:  "first line is a file",
			lines: []string{"notes.txt", "a.pdf"},
			want: []Entry{
				{Path: "./", Subdirs: []string{}, Files: []string{"notes.txt", "a.pdf"}},
			},
		},
		{
			name:  "directory with no files",
			lines: []string{"books", "books/empty", "books/empty/sub", "books/empty/sub/c.pdf"},
			want: []Entry{
				{Path: "books", Subdirs: []string{}, Files: []string{}},
				{Path: "books/empty", Subdirs: []string{}, Files: []string{}},
				{Path: "books/empty/sub", Subdirs: []string{}, Files: []string{"c.pdf"}},
			},
		},
		{
			name:  "single directory",
			lines: []string{"books"},
			want: []Entry{
				{Path: "books", Subdirs: []string{}, Files: []string{}},
			},
		},
		{
			name:  "empty listing",
			lines: nil,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListing(tt.lines)
			if !reflect.DeepEqual(got.Entries, tt.want) {
				t.Errorf("ParseListing(%v) = %+v, want %+v", tt.lines, got.Entries, tt.want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "sub"))
	mustWrite(t, filepath.Join(root, "a.pdf"))
	mustWrite(t, filepath.Join(root, "sub", "b.pdf"))

	c, err := Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if len(c.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(c.Entries))
	}
	if c.Entries[0].Path != filepath.ToSlash(root) {
		t.Errorf("root entry path = %q, want %q", c.Entries[0].Path, filepath.ToSlash(root))
	}
	if !reflect.DeepEqual(c.Entries[0].Files, []string{"a.pdf"}) {
		t.Errorf("root entry files = %v, want [a.pdf]", c.Entries[0].Files)
	}
	if !reflect.DeepEqual(c.Entries[1].Files, []string{"b.pdf"}) {
		t.Errorf("sub entry files = %v, want [b.pdf]", c.Entries[1].Files)
	}
}

func TestBuildRefusesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "catalogue.yaml")
	mustWrite(t, dest)

	if _, err := Build(dir, dest); !errors.Is(err, ErrDestinationExists) {
		t.Errorf("Build with existing destination: err = %v, want ErrDestinationExists", err)
	}
}

func TestBuildRefusesMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Build(filepath.Join(dir, "nope"), filepath.Join(dir, "catalogue.yaml"))
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("Build with missing source: err = %v, want ErrSourceMissing", err)
	}
}

func TestBuildFromListingFile(t *testing.T) {
	dir := t.TempDir()
	listing := filepath.Join(dir, "listing.txt")
	if err := os.WriteFile(listing, []byte("books\nbooks/a.pdf\nbooks/sub\nbooks/sub/b.pdf\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(dir, "catalogue.yaml")

	c, err := Build(listing, dest)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(c.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(c.Entries))
	}

	loaded, err := Load(dest)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Entries, c.Entries) {
		t.Errorf("persisted entries = %+v, want %+v", loaded.Entries, c.Entries)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
