// Package filesystem is the storage adapter: it opens container files
// from disk and discovers mergeable documents in a directory.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docnav/internal/docx"
	"docnav/internal/domain"
)

// Repository implements ports.DocumentStore and ports.Discovery over
// the local filesystem.
type Repository struct{}

// NewRepository creates a new filesystem repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Open reads the document at path.
func (r *Repository) Open(path string) (*docx.Document, error) {
	return docx.Open(path)
}

// Exists reports whether path points at a regular file.
func (r *Repository) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Collect returns the container-format files directly under dir,
// excluding editor lock files (the "~$" prefix) and any file whose base
// name equals excludeName's base name, sorted case-insensitively by
// base name for a deterministic default merge order.
func (r *Repository) Collect(dir, excludeName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	exclude := ""
	if excludeName != "" {
		exclude = filepath.Base(excludeName)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.EqualFold(filepath.Ext(name), domain.Extension) {
			continue
		}
		if strings.HasPrefix(name, "~$") {
			continue
		}
		if exclude != "" && name == exclude {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(files[i])) < strings.ToLower(filepath.Base(files[j]))
	})
	return files, nil
}
