package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clipscan/internal/tags"
)

// extractFunc reads tag metadata from a file. It matches tags.Read so
// tests can substitute their own extractor.
type extractFunc func(path string) (*tags.Metadata, error)

// Scan walks the directory tree rooted at root and returns the catalog
// of clips found beneath it. Traversal order is lexical per directory,
// so repeated scans of an unmodified tree produce identical catalogs.
//
// Tag extraction follows first-success-wins: the first variant of a
// clip that yields metadata sets it, later variants never overwrite it.
// Per-file extraction failures leave Tags nil and never abort the scan;
// an unreadable root is the only fatal error.
func Scan(root string) (*Catalog, error) {
	return scan(root, tags.Read)
}

func scan(root string, extract extractFunc) (*Catalog, error) {
	cat := New()

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return fmt.Errorf("clips directory: %w", walkErr)
			}
			// Skip unreadable subtrees - intentionally continuing the scan
			return nil //nolint:nilerr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil //nolint:nilerr
		}

		parent := filepath.Dir(rel)
		base := filepath.Base(rel)
		ext := filepath.Ext(base)
		stem := strings.TrimSuffix(base, ext)
		key := filepath.Join(parent, stem)

		clip := cat.Get(key)
		if clip == nil {
			clip = &Clip{
				Key:     key,
				Parent:  parent,
				Stem:    stem,
				Formats: []string{ext},
			}
			if md, extractErr := extract(path); extractErr == nil {
				clip.Tags = md
			}
			cat.Add(clip)
			return nil
		}

		clip.addFormat(ext)
		if clip.Tags == nil {
			if md, extractErr := extract(path); extractErr == nil {
				clip.Tags = md
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}
