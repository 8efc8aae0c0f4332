package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"docnav/internal/adapters/filesystem"
	"docnav/internal/application"
	"docnav/internal/docx"
	"docnav/internal/domain"
)

// writeDoc creates a minimal one-paragraph document on disk.
func writeDoc(t *testing.T, dir, name, text string) string {
	t.Helper()
	doc := docx.New()
	doc.AddParagraph(text)
	path := filepath.Join(dir, name)
	if err := doc.Save(path); err != nil {
		t.Fatalf("writeDoc %s: %v", name, err)
	}
	return path
}

func TestMergeCommand_Validate(t *testing.T) {
	repo := filesystem.NewRepository()

	tests := []struct {
		name    string
		files   []string
		output  string
		wantErr error
	}{
		{
			name:    "no inputs",
			files:   nil,
			output:  "out.docx",
			wantErr: application.ErrNoInputs,
		},
		{
			name:   "valid",
			files:  []string{"a.docx"},
			output: "out.docx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewMergeCommand(repo, tt.files, tt.output, domain.DefaultOptions())
			err := cmd.Validate()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestMergeCommand_NoInputsCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.docx")

	cmd := NewMergeCommand(filesystem.NewRepository(), nil, output, domain.DefaultOptions())
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrNoInputs) {
		t.Fatalf("Execute() = %v, want ErrNoInputs", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("output file was created despite the failed precondition")
	}
}

func TestMergeCommand_DryRun(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeDoc(t, dir, "Finance_Q1.docx", "q1"),
		writeDoc(t, dir, "HR_Handbook.docx", "handbook"),
		writeDoc(t, dir, "Finance_Q2.docx", "q2"),
	}
	output := filepath.Join(dir, "out.docx")
	repo := filesystem.NewRepository()

	var report strings.Builder
	dry := NewMergeCommand(repo, files, output, domain.DefaultOptions())
	dry.DryRun = true
	dry.Reporter = &report

	dryResult, err := dry.Execute(context.Background())
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("dry run wrote the output file")
	}
	if !strings.Contains(report.String(), "Would merge 3 files") {
		t.Errorf("dry-run report missing summary:\n%s", report.String())
	}
	if !strings.Contains(report.String(), "Finance:") || !strings.Contains(report.String(), "HR:") {
		t.Errorf("dry-run report missing categories:\n%s", report.String())
	}

	// The real run must group identically.
	full := NewMergeCommand(repo, files, output, domain.DefaultOptions())
	realResult, err := full.Execute(context.Background())
	if err != nil {
		t.Fatalf("real run: %v", err)
	}
	if !reflect.DeepEqual(dryResult.Plan.Categories(), realResult.Plan.Categories()) {
		t.Errorf("dry-run and real-run categories diverge: %v vs %v",
			dryResult.Plan.Categories(), realResult.Plan.Categories())
	}
	for _, category := range dryResult.Plan.Categories() {
		if !reflect.DeepEqual(dryResult.Plan.Items(category), realResult.Plan.Items(category)) {
			t.Errorf("grouping for %s diverges between dry and real run", category)
		}
	}
}

func TestMergeCommand_MissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	valid := writeDoc(t, dir, "General_Notes.docx", "useful notes")
	missing := filepath.Join(dir, "General_Ghost.docx")
	output := filepath.Join(dir, "out.docx")

	var report strings.Builder
	cmd := NewMergeCommand(filesystem.NewRepository(), []string{valid, missing}, output, domain.DefaultOptions())
	cmd.Reporter = &report

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Merged != 1 || result.Skipped != 1 {
		t.Errorf("merged/skipped = %d/%d, want 1/1", result.Merged, result.Skipped)
	}
	if !strings.Contains(report.String(), "file not found") || !strings.Contains(report.String(), missing) {
		t.Errorf("warning missing or anonymous:\n%s", report.String())
	}

	out, err := docx.Open(output)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}
	bookmarks := out.Bookmarks()
	for _, b := range bookmarks {
		if b == domain.AnchorFor(missing) {
			t.Error("missing file still got a bookmarked heading")
		}
	}
	var texts []string
	for _, p := range out.Paragraphs() {
		texts = append(texts, p.Text())
	}
	if !strings.Contains(strings.Join(texts, "\n"), "useful notes") {
		t.Error("valid file's content missing from output")
	}
}

func TestMergeCommand_CorruptFileSkippedWithSeparator(t *testing.T) {
	dir := t.TempDir()
	valid := writeDoc(t, dir, "General_Good.docx", "good content")
	corrupt := filepath.Join(dir, "General_Bad.docx")
	if err := os.WriteFile(corrupt, []byte("this is not a container"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.docx")

	var report strings.Builder
	cmd := NewMergeCommand(filesystem.NewRepository(), []string{valid, corrupt}, output, domain.DefaultOptions())
	cmd.Reporter = &report

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.Merged != 1 || result.Skipped != 1 {
		t.Errorf("merged/skipped = %d/%d, want 1/1", result.Merged, result.Skipped)
	}
	if !strings.Contains(report.String(), "error appending") {
		t.Errorf("append failure not reported:\n%s", report.String())
	}

	out, err := docx.Open(output)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}
	// Menu break plus one per input, failed append included.
	if got := out.PageBreaks(); got != 3 {
		t.Errorf("PageBreaks() = %d, want 3 (separator required after failures too)", got)
	}
}

func TestMergeCommand_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	pathA := writeDoc(t, dir, "A.docx", "alpha body")
	pathB := writeDoc(t, dir, "B.docx", "beta body")
	output := filepath.Join(dir, "out.docx")

	cmd := NewMergeCommand(filesystem.NewRepository(), []string{pathA, pathB}, output, domain.DefaultOptions())
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.OutputPath != output {
		t.Errorf("OutputPath = %q, want %q", result.OutputPath, output)
	}

	out, err := docx.Open(output)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}

	anchorA := domain.AnchorFor(pathA)
	anchorB := domain.AnchorFor(pathB)

	// Menu links first (label order A, B), then one back-link per body.
	wantAnchors := []string{anchorA, anchorB, domain.MenuAnchor, domain.MenuAnchor}
	if got := out.LinkAnchors(); !reflect.DeepEqual(got, wantAnchors) {
		t.Errorf("LinkAnchors() = %v, want %v", got, wantAnchors)
	}

	// Menu bookmark first, then each document's heading bookmark, in
	// append order, with values matching the menu links above.
	wantBookmarks := []string{domain.MenuAnchor, anchorA, anchorB}
	if got := out.Bookmarks(); !reflect.DeepEqual(got, wantBookmarks) {
		t.Errorf("Bookmarks() = %v, want %v", got, wantBookmarks)
	}

	if got := out.PageBreaks(); got != 3 {
		t.Errorf("PageBreaks() = %d, want 3", got)
	}

	paragraphs := out.Paragraphs()
	var headings, texts []string
	for _, p := range paragraphs {
		if strings.HasPrefix(p.Style(), "Heading") {
			headings = append(headings, p.Text())
		}
		texts = append(texts, p.Text())
	}
	wantHeadings := []string{"Menu", "General", "A", "B"}
	if !reflect.DeepEqual(headings, wantHeadings) {
		t.Errorf("headings = %v, want %v", headings, wantHeadings)
	}

	all := strings.Join(texts, "\n")
	alphaAt := strings.Index(all, "alpha body")
	betaAt := strings.Index(all, "beta body")
	if alphaAt < 0 || betaAt < 0 || alphaAt > betaAt {
		t.Errorf("body order wrong: alpha at %d, beta at %d", alphaAt, betaAt)
	}
	if !strings.Contains(all, "⬅ Back to menu") {
		t.Error("back-link label missing from output")
	}
}

func TestMergeCommand_FlatTOC(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "Finance_Q1.docx", "q1")
	output := filepath.Join(dir, "out.docx")

	opts := domain.DefaultOptions()
	opts.TOCDepth = 1
	cmd := NewMergeCommand(filesystem.NewRepository(), []string{path}, output, opts)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out, err := docx.Open(output)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}
	for _, p := range out.Paragraphs() {
		if p.Style() == "Heading2" && p.Text() == "Finance" {
			t.Error("category sub-heading emitted despite toc depth < 2")
		}
	}
}

func TestMergeCommand_PersistError(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "A.docx", "alpha")
	output := filepath.Join(dir, "no-such-subdir", "out.docx")

	cmd := NewMergeCommand(filesystem.NewRepository(), []string{path}, output, domain.DefaultOptions())
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("Execute succeeded with an unwritable destination")
	}
	var persist *application.PersistError
	if !errors.As(err, &persist) {
		t.Errorf("error type = %T, want *application.PersistError", err)
	}
}
