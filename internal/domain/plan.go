package domain

import "sort"

// Entry is one document inside a category group.
type Entry struct {
	Path  string
	Label string
}

// Options is the configuration surface of a merge. Zero values are not
// meaningful defaults; use DefaultOptions.
type Options struct {
	MenuTitle  string
	BackLabel  string
	Separator  string
	TOCDepth   int
	KeepStyles bool
}

// DefaultOptions returns the merge defaults matching the CLI defaults.
func DefaultOptions() Options {
	return Options{
		MenuTitle:  "Menu",
		BackLabel:  "Back to menu",
		Separator:  "_",
		TOCDepth:   2,
		KeepStyles: true,
	}
}

// MergePlan is the grouping of input files plus the merge configuration.
// It is computed once per run and consumed by both dry-run reporting and
// the real build, so the two can never diverge.
type MergePlan struct {
	Files   []string
	Options Options
	groups  map[string][]Entry
}

// BuildPlan groups files by category in input order. A label that parses
// empty falls back to the file's stem.
func BuildPlan(files []string, opts Options) *MergePlan {
	groups := make(map[string][]Entry)
	for _, path := range files {
		category, label := ParseFilename(path, opts.Separator)
		if label == "" {
			label = Stem(path)
		}
		groups[category] = append(groups[category], Entry{Path: path, Label: label})
	}
	return &MergePlan{Files: files, Options: opts, groups: groups}
}

// Categories returns the category names in byte-wise sorted order, the
// order menu sections are emitted in.
func (p *MergePlan) Categories() []string {
	names := make([]string, 0, len(p.groups))
	for name := range p.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Items returns the entries of a category in original input order.
func (p *MergePlan) Items(category string) []Entry {
	return p.groups[category]
}
