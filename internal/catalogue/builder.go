// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogue

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Build produces a catalogue from src and persists it to dest. A regular
// file at src is parsed as a flat text listing; a directory is scanned
// recursively. The destination check runs before any scanning or parsing
// work begins.
func Build(src, dest string) (*Catalogue, error) {
	if _, err := os.Stat(dest); err == nil {
		return nil, fmt.Errorf("catalogue %s: %w", dest, ErrDestinationExists)
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("input %s: %w", src, ErrSourceMissing)
	}

	var c *Catalogue
	if info.IsDir() {
		c, err = Scan(src)
	} else {
		c, err = parseListingFile(src)
	}
	if err != nil {
		return nil, err
	}

	if err := Persist(c, dest); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseListing reconstructs a catalogue from a flat pre-order dump of
// paths, one per line. A line containing a '.' is a file; any other line
// opens a new current directory. A listing that starts with a file line
// gets a synthetic "./" root.
func ParseListing(lines []string) *Catalogue {
	c := &Catalogue{}
	if len(lines) == 0 {
		return c
	}

	var current string
	files := []string{}

	for i, line := range lines {
		if i == 0 {
			if strings.Contains(line, ".") {
				current = "./"
				files = append(files, stripName(line, current))
			} else {
				current = line
			}
			continue
		}
		if strings.Contains(line, ".") {
			files = append(files, stripName(line, current))
			continue
		}
		c.Entries = append(c.Entries, Entry{Path: current, Subdirs: []string{}, Files: files})
		current = line
		files = []string{}
	}
	c.Entries = append(c.Entries, Entry{Path: current, Subdirs: []string{}, Files: files})
	return c
}

// stripName reduces a file line to a bare file name by removing the
// current directory prefix and any slash characters.
func stripName(line, dir string) string {
	return strings.ReplaceAll(strings.ReplaceAll(line, dir, ""), "/", "")
}

func parseListingFile(path string) (*Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening listing %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing %s: %w", path, err)
	}
	return ParseListing(lines), nil
}

// Scan walks dir recursively and produces one entry per directory visited,
// in walk order, each holding the names of the regular files directly
// inside it.
func Scan(dir string) (*Catalogue, error) {
	c := &Catalogue{}
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		names, err := listFiles(p)
		if err != nil {
			return err
		}
		c.Entries = append(c.Entries, Entry{Path: filepath.ToSlash(p), Subdirs: []string{}, Files: names})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	return relativize(c), nil
}

// relativize is a placeholder for trimming the scan root from entry paths.
// Paths are stored walk-native; Replay strips the common prefix instead.
func relativize(c *Catalogue) *Catalogue {
	return c
}

func listFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	names := []string{}
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
