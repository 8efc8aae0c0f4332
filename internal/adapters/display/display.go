// Package display renders merge plans and run summaries for the
// terminal.
package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"docnav/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Category = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	Item = lipgloss.NewStyle().
		PaddingLeft(2)

	FileName = lipgloss.NewStyle().
			Foreground(Muted)

	Warn = lipgloss.NewStyle().
		Foreground(Warning)

	Success = lipgloss.NewStyle().
		Bold(true).
		Foreground(Secondary)
)

// FileList renders the pre-merge listing of discovered files.
func FileList(files []string) string {
	var sb strings.Builder
	sb.WriteString(Title.Render(fmt.Sprintf("Found %d files to merge:", len(files))))
	sb.WriteString("\n")
	for _, f := range files {
		sb.WriteString(Item.Render("- " + filepath.Base(f)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Plan renders the grouping of a merge plan, category by category.
func Plan(plan *domain.MergePlan) string {
	var sb strings.Builder
	sb.WriteString(Title.Render("File grouping:"))
	sb.WriteString("\n")
	for _, category := range plan.Categories() {
		sb.WriteString("\n")
		sb.WriteString(Category.Render(category + ":"))
		sb.WriteString("\n")
		for _, item := range plan.Items(category) {
			line := fmt.Sprintf("- %s %s", item.Label,
				FileName.Render("("+filepath.Base(item.Path)+")"))
			sb.WriteString(Item.Render(line))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
