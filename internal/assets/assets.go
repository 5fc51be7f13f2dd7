// Package assets exposes a directory of downloaded product images as the
// engine's per-type asset pool. The layout is <root>/<type>/<image files>,
// populated beforehand by whatever seed step downloads the collections.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Dir is a filesystem-backed asset pool.
type Dir struct {
	Root string
}

// List returns the image filenames available for a product type.
func (d Dir) List(productType string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(d.Root, productType))
	if err != nil {
		return nil, fmt.Errorf("read image pool for %q: %w", productType, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Read returns the bytes of one image file.
func (d Dir) Read(productType, filename string) ([]byte, error) {
	return os.ReadFile(filepath.Join(d.Root, productType, filepath.Base(filename)))
}

// Seeded reports whether the type's image directory exists and holds at
// least one image.
func (d Dir) Seeded(productType string) bool {
	names, err := d.List(productType)
	return err == nil && len(names) > 0
}
