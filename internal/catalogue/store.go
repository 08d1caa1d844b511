// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogue

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// formatVersion tags the on-disk catalogue encoding. Loading ignores
// unknown fields, so additions bump this only on incompatible changes.
const formatVersion = 1

// catalogueFile is the on-disk representation of a catalogue.
type catalogueFile struct {
	Version int     `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// Persist writes the catalogue to path as a versioned YAML document. It
// refuses to overwrite: an existing file at path is an error.
func Persist(c *Catalogue, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("catalogue %s: %w", path, ErrDestinationExists)
	}

	data, err := yaml.Marshal(catalogueFile{Version: formatVersion, Entries: c.Entries})
	if err != nil {
		return fmt.Errorf("encoding catalogue: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalogue %s: %w", path, err)
	}
	return nil
}

// Load reads a catalogue previously written by Persist. A missing file is
// ErrSourceMissing. Nil file lists decode to empty ones so a load/persist
// round trip reproduces the original entry sequence exactly.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalogue %s: %w", path, ErrSourceMissing)
		}
		return nil, fmt.Errorf("reading catalogue %s: %w", path, err)
	}

	var f catalogueFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalogue %s: %w", path, err)
	}
	if f.Version > formatVersion {
		return nil, fmt.Errorf("catalogue %s: unsupported format version %d", path, f.Version)
	}

	for i := range f.Entries {
		if f.Entries[i].Subdirs == nil {
			f.Entries[i].Subdirs = []string{}
		}
		if f.Entries[i].Files == nil {
			f.Entries[i].Files = []string{}
		}
	}
	return &Catalogue{Entries: f.Entries}, nil
}
