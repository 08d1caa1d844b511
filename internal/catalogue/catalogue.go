// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalogue builds, persists, and replays portable descriptions of
// directory trees. A catalogue is an ordered list of directory entries; the
// order matches discovery order so that replay creates parent directories
// before any of their children are referenced.
package catalogue

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the build, store, and replay operations.
// Callers discriminate with errors.Is.
var (
	// ErrDestinationExists reports that a catalogue file or replay target
	// directory is already present; nothing is overwritten.
	ErrDestinationExists = errors.New("destination already exists")

	// ErrSourceMissing reports that an input path (listing file, scan
	// directory, or catalogue file) does not exist.
	ErrSourceMissing = errors.New("source does not exist")
)

// Entry describes one directory level: its path as encountered during the
// build, and the names of the files directly inside it.
type Entry struct {
	// Path is the directory path as recorded at build time. It is not
	// relativized; Replay strips the common prefix of the first entry.
	Path string `yaml:"path" json:"path"`

	// Subdirs is always empty. It is part of the on-disk entry shape and
	// stays so version-1 files keep a stable layout.
	Subdirs []string `yaml:"subdirs" json:"subdirs"`

	// Files lists the file names belonging to this directory, without any
	// path component, in discovery order.
	Files []string `yaml:"files" json:"files"`
}

// Catalogue is an ordered sequence of entries. Entries are never reordered
// after creation.
type Catalogue struct {
	Entries []Entry
}

// splitRoot decomposes the root entry's path into the base directory name
// (its last segment) and the prefix to strip from every entry during
// replay (all segments before the last, or empty for a single-segment
// root).
func splitRoot(root string) (base, prefix string) {
	segs := strings.Split(root, "/")
	if len(segs) <= 1 {
		return root, ""
	}
	return segs[len(segs)-1], strings.Join(segs[:len(segs)-1], "/")
}
