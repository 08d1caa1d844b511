// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mirrors loads endpoint overrides from a directory of plain-text
// files. Each file in the directory represents one override: the filename
// is the key and the file contents (trimmed) are the value. Index mirror
// hosts rotate often enough that editing a small file beats editing the
// main config.
//
// Supported key files: search-base, download-base, ads-prefix.
package mirrors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Known override keys.
const (
	KeySearchBase   = "search-base"
	KeyDownloadBase = "download-base"
	KeyAdsPrefix    = "ads-prefix"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty
// map. Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading mirrors directory %s: %w", dir, err)
	}

	overrides := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read mirror override %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			overrides[name] = value
		}
	}

	return overrides, nil
}
