// Copyright Mindgrove Labs, 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files.
// Each file is one secret: the filename is the key name and the file
// contents (trimmed) are the value.
//
// Supported key files: gemini-api-key, anthropic-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names looked up by the CLI when wiring backends.
const (
	KeyGemini = "gemini-api-key"
	KeyClaude = "anthropic-api-key"
)

// Store is the loaded secret set.
type Store map[string]string

// Get returns the stored value for key, unless explicit is non-empty —
// an explicit value (flag or config) always wins over a stored secret.
func (s Store) Get(key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s[key]
}

// Load reads all files in dir and returns a Store of filename to
// trimmed contents. A missing directory is not an error; Load returns
// an empty Store. Unreadable files produce a warning on stderr but do
// not abort.
func Load(dir string) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	store := make(Store)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			store[entry.Name()] = value
		}
	}

	return store, nil
}
