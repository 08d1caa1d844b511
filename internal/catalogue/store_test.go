// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogue

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"
)

func TestPersistLoadRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name: "entries with files",
			entries: []Entry{
				{Path: "books", Subdirs: []string{}, Files: []string{"a.pdf", "b.pdf"}},
				{Path: "books/maths", Subdirs: []string{}, Files: []string{"c.djvu"}},
			},
		},
		{
			name: "entry with empty file list",
			entries: []Entry{
				{Path: "books", Subdirs: []string{}, Files: []string{}},
				{Path: "books/empty", Subdirs: []string{}, Files: []string{}},
			},
		},
		{
			name: "absolute root path",
			entries: []Entry{
				{Path: "/home/u/books", Subdirs: []string{}, Files: []string{"a.pdf"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalogue.yaml")
			if err := Persist(&Catalogue{Entries: tt.entries}, path); err != nil {
				t.Fatalf("Persist: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got.Entries, tt.entries) {
				t.Errorf("round trip = %+v, want %+v", got.Entries, tt.entries)
			}
		})
	}
}

func TestPersistRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	c := &Catalogue{Entries: []Entry{{Path: "books", Subdirs: []string{}, Files: []string{}}}}

	if err := Persist(c, path); err != nil {
		t.Fatalf("first Persist: %v", err)
	}
	if err := Persist(c, path); !errors.Is(err, ErrDestinationExists) {
		t.Errorf("second Persist: err = %v, want ErrDestinationExists", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrSourceMissing) {
		t.Errorf("Load missing file: err = %v, want ErrSourceMissing", err)
	}
}
