package ports

import "docnav/internal/docx"

// DocumentStore loads word-processing documents from storage.
type DocumentStore interface {
	// Open reads the document at path. A file that cannot be parsed as
	// the container format returns an error.
	Open(path string) (*docx.Document, error)

	// Exists reports whether path currently points at a file.
	Exists(path string) bool
}

// Discovery finds mergeable documents when no explicit list is given.
type Discovery interface {
	// Collect returns the container-format files directly under dir,
	// excluding temp/lock files and any file named excludeName, sorted
	// case-insensitively by base name.
	Collect(dir, excludeName string) ([]string, error)
}
