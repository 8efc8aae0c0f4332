package domain

import (
	"path/filepath"
	"strings"
)

// DefaultCategory is assigned to files whose name carries no separator.
const DefaultCategory = "General"

// Extension is the container format's file extension.
const Extension = ".docx"

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseFilename splits a file name into (category, label) on the first
// occurrence of separator. The extension is stripped first. When the
// separator is absent (or empty) the category falls back to
// DefaultCategory and the label is the whole stem. Both halves are
// trimmed of surrounding whitespace; the label may come back empty
// (e.g. "Finance_.docx") and callers fall back to the stem then.
func ParseFilename(name, separator string) (category, label string) {
	stem := Stem(name)
	if separator == "" {
		return DefaultCategory, strings.TrimSpace(stem)
	}
	idx := strings.Index(stem, separator)
	if idx < 0 {
		return DefaultCategory, strings.TrimSpace(stem)
	}
	category = strings.TrimSpace(stem[:idx])
	label = strings.TrimSpace(stem[idx+len(separator):])
	return category, label
}
