package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"docnav/internal/application"
	"docnav/internal/docx"
	"docnav/internal/domain"
	"docnav/internal/ports"
)

// MergeResult contains the outcome of a merge run.
type MergeResult struct {
	// OutputPath is the saved file, empty on a dry run.
	OutputPath string
	// Plan is the grouping used (or, on a dry run, reported).
	Plan *domain.MergePlan
	// Merged and Skipped count input files by fate.
	Merged  int
	Skipped int
	Message string
}

// MergeCommand assembles the input documents into one navigable output
// document: menu section first, then each document's bookmarked heading,
// back-link, body, and page break.
type MergeCommand struct {
	store      ports.DocumentStore
	Files      []string
	OutputPath string
	Options    domain.Options

	// DryRun reports the plan without touching the filesystem.
	DryRun bool
	// Reporter receives diagnostics (skipped files, dry-run plan).
	Reporter io.Writer
}

// NewMergeCommand creates a new MergeCommand.
func NewMergeCommand(store ports.DocumentStore, files []string, outputPath string, opts domain.Options) *MergeCommand {
	return &MergeCommand{
		store:      store,
		Files:      files,
		OutputPath: outputPath,
		Options:    opts,
	}
}

// Validate checks the whole-run preconditions.
func (c *MergeCommand) Validate() error {
	if len(c.Files) == 0 {
		return application.ErrNoInputs
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	return nil
}

// Execute runs the merge. Per-file problems (missing file, unreadable
// container) are reported and skipped; only empty input or a failed
// final save abort.
func (c *MergeCommand) Execute(ctx context.Context) (*MergeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// One plan serves both the dry-run report and the real build.
	plan := domain.BuildPlan(c.Files, c.Options)

	if c.DryRun {
		c.reportPlan(plan)
		return &MergeResult{
			Plan:    plan,
			Message: fmt.Sprintf("Would merge %d files into %s", len(c.Files), c.OutputPath),
		}, nil
	}

	out := buildMenu(plan)
	merged, skipped := c.assemble(out)

	if err := out.Save(c.OutputPath); err != nil {
		return nil, &application.PersistError{Path: c.OutputPath, Err: err}
	}

	return &MergeResult{
		OutputPath: c.OutputPath,
		Plan:       plan,
		Merged:     merged,
		Skipped:    skipped,
		Message:    fmt.Sprintf("Merged %d files into %s", merged, c.OutputPath),
	}, nil
}

// assemble appends each input document to out in the order the files
// were supplied. The menu's link order (sorted by category) and this
// append order are derived independently and may differ; that follows
// the original tool's behavior.
func (c *MergeCommand) assemble(out *docx.Document) (merged, skipped int) {
	for _, path := range c.Files {
		if !c.store.Exists(path) {
			fmt.Fprintf(c.reporter(), "Warning: file not found: %s\n", path)
			skipped++
			continue
		}

		heading := out.AddHeading(domain.Stem(path), 1)
		heading.Bookmark(domain.AnchorFor(path))

		back := out.AddParagraph("")
		back.AddInternalLink("⬅ "+c.Options.BackLabel, domain.MenuAnchor)
		out.AddParagraph("")

		if err := c.appendBody(out, path); err != nil {
			fmt.Fprintf(c.reporter(), "%v\n", err)
			skipped++
		} else {
			merged++
		}

		// Separator goes in even when the body failed to append, so
		// the next document still starts on a fresh page.
		out.AddPageBreak()
	}
	return merged, skipped
}

func (c *MergeCommand) appendBody(out *docx.Document, path string) error {
	src, err := c.store.Open(path)
	if err != nil {
		return &application.AppendError{Path: path, Err: err}
	}
	if err := out.Append(src, c.Options.KeepStyles); err != nil {
		return &application.AppendError{Path: path, Err: err}
	}
	return nil
}

func (c *MergeCommand) reportPlan(plan *domain.MergePlan) {
	w := c.reporter()
	fmt.Fprintf(w, "Would merge %d files into %s\n", len(c.Files), c.OutputPath)
	fmt.Fprintf(w, "\nFile grouping:\n")
	for _, category := range plan.Categories() {
		fmt.Fprintf(w, "\n%s:\n", category)
		for _, item := range plan.Items(category) {
			fmt.Fprintf(w, "  - %s (%s)\n", item.Label, filepath.Base(item.Path))
		}
	}
}

func (c *MergeCommand) reporter() io.Writer {
	if c.Reporter != nil {
		return c.Reporter
	}
	return io.Discard
}
