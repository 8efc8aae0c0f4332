package commands

import (
	"docnav/internal/docx"
	"docnav/internal/domain"
)

// buildMenu starts a fresh output document with the navigation section:
// the bookmarked menu title, one sub-heading per sorted category when
// the TOC depth allows it, one internal-link line per document, and a
// closing page break. Link anchors are computed from the file path with
// the same pure function the assembly pass uses, so links resolve once
// the bodies land.
func buildMenu(plan *domain.MergePlan) *docx.Document {
	out := docx.New()
	opts := plan.Options

	title := out.AddHeading(opts.MenuTitle, 1)
	title.Bookmark(domain.MenuAnchor)

	for _, category := range plan.Categories() {
		if opts.TOCDepth >= 2 {
			out.AddHeading(category, 2)
		}
		for _, item := range plan.Items(category) {
			line := out.AddParagraph("  ")
			line.AddInternalLink(item.Label, domain.AnchorFor(item.Path))
		}
	}

	out.AddPageBreak()
	return out
}
