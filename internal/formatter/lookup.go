package formatter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FindConfigs returns every file in dir matching one of the descriptor's
// config patterns, sorted by name.
func FindConfigs(dir string, d Descriptor) ([]string, error) {
	fsys := os.DirFS(dir)

	seen := make(map[string]bool)
	var matches []string
	for _, pattern := range d.ConfigPatterns {
		found, err := doublestar.Glob(fsys, filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid config pattern %q for %s: %w", pattern, d.Name, err)
		}
		for _, f := range found {
			if !seen[f] {
				seen[f] = true
				matches = append(matches, filepath.FromSlash(f))
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// FindConfig returns the first file in dir (sorted by name) matching one
// of the descriptor's config patterns, or "" if none exists.
func FindConfig(dir string, d Descriptor) (string, error) {
	matches, err := FindConfigs(dir, d)
	if err != nil || len(matches) == 0 {
		return "", err
	}
	return matches[0], nil
}
