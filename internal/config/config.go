package config

import "os"

const (
	DefaultOutput    = "all_documents.docx"
	DefaultSeparator = "_"
)

// Output returns the output path from the DOCNAV_OUTPUT env var,
// falling back to DefaultOutput.
func Output() string {
	if env := os.Getenv("DOCNAV_OUTPUT"); env != "" {
		return env
	}
	return DefaultOutput
}

// Separator returns the category separator from the DOCNAV_SEPARATOR
// env var, falling back to DefaultSeparator.
func Separator() string {
	if env := os.Getenv("DOCNAV_SEPARATOR"); env != "" {
		return env
	}
	return DefaultSeparator
}
