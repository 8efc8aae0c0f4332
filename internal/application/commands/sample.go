package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"docnav/internal/docx"
)

// sampleBlock is one content block of a generated sample document.
type sampleBlock struct {
	kind  string // "heading", "paragraph", "bullet"
	text  string
	level int
}

func heading(text string, level int) sampleBlock {
	return sampleBlock{kind: "heading", text: text, level: level}
}

func paragraph(text string) sampleBlock {
	return sampleBlock{kind: "paragraph", text: text}
}

func bullet(text string) sampleBlock {
	return sampleBlock{kind: "bullet", text: text}
}

type sampleDoc struct {
	filename string
	title    string
	blocks   []sampleBlock
}

// sampleCorpus is a small three-category document set whose filenames
// exercise the category_separator convention.
var sampleCorpus = []sampleDoc{
	{
		filename: "Finance_Quarterly Report Q1.docx",
		title:    "Q1 Financial Report",
		blocks: []sampleBlock{
			heading("Executive Summary", 2),
			paragraph("This quarter showed strong growth across all key metrics."),
			heading("Revenue", 2),
			bullet("Total Revenue: $5.2M"),
			bullet("Growth: 15% YoY"),
			bullet("New Customers: 127"),
			heading("Expenses", 2),
			paragraph("Operating expenses remained within budget at $3.1M."),
		},
	},
	{
		filename: "Finance_Quarterly Report Q2.docx",
		title:    "Q2 Financial Report",
		blocks: []sampleBlock{
			heading("Executive Summary", 2),
			paragraph("Q2 continued the positive momentum from Q1."),
			heading("Revenue", 2),
			bullet("Total Revenue: $6.1M"),
			bullet("Growth: 17% YoY"),
			bullet("New Customers: 156"),
			heading("Outlook", 2),
			paragraph("We expect continued growth in Q3 and Q4."),
		},
	},
	{
		filename: "HR_Employee Handbook.docx",
		title:    "Employee Handbook",
		blocks: []sampleBlock{
			heading("Welcome", 2),
			paragraph("Welcome to our company! This handbook contains important information."),
			heading("Company Values", 2),
			bullet("Integrity"),
			bullet("Innovation"),
			bullet("Collaboration"),
			heading("Policies", 2),
			paragraph("All employees must follow company policies as outlined below."),
			heading("Time Off", 3),
			paragraph("Employees receive 15 days of PTO annually."),
		},
	},
	{
		filename: "HR_Payroll Guidelines.docx",
		title:    "Payroll Guidelines",
		blocks: []sampleBlock{
			heading("Pay Schedule", 2),
			paragraph("Employees are paid bi-weekly on Fridays."),
			heading("Direct Deposit", 2),
			paragraph("All employees must set up direct deposit within 30 days."),
			heading("Benefits", 2),
			bullet("Health Insurance"),
			bullet("401(k) Matching"),
			bullet("Life Insurance"),
		},
	},
	{
		filename: "Marketing_Brand Guidelines.docx",
		title:    "Brand Guidelines",
		blocks: []sampleBlock{
			heading("Brand Identity", 2),
			paragraph("Our brand represents innovation and reliability."),
			heading("Logo Usage", 2),
			paragraph("The logo must maintain minimum clear space of 0.5 inches."),
			heading("Color Palette", 2),
			bullet("Primary: Blue (#0066CC)"),
			bullet("Secondary: Gray (#666666)"),
			bullet("Accent: Green (#00AA44)"),
		},
	},
	{
		filename: "Marketing_Campaign Plan 2025.docx",
		title:    "2025 Marketing Campaign",
		blocks: []sampleBlock{
			heading("Campaign Overview", 2),
			paragraph("The 2025 campaign focuses on digital transformation."),
			heading("Target Audience", 2),
			bullet("Enterprise customers"),
			bullet("SMB segment"),
			bullet("Startups"),
			heading("Channels", 2),
			paragraph("We will leverage multiple channels including social media, email, and events."),
			heading("Budget", 2),
			paragraph("Total budget: $2.5M allocated across all channels."),
		},
	},
}

// SampleResult contains the result of generating the sample corpus.
type SampleResult struct {
	Paths   []string
	Message string
}

// SampleCommand writes a sample document corpus into a directory,
// suitable for trying out a merge.
type SampleCommand struct {
	Dir      string
	Reporter io.Writer
}

// NewSampleCommand creates a new SampleCommand.
func NewSampleCommand(dir string) *SampleCommand {
	return &SampleCommand{Dir: dir}
}

// Execute writes the sample documents. Unlike a merge, any write
// failure here is fatal; there is no partial-failure policy for a
// generator.
func (c *SampleCommand) Execute(ctx context.Context) (*SampleResult, error) {
	var paths []string
	for _, sample := range sampleCorpus {
		doc := docx.New()
		title := doc.AddHeading(sample.title, 1)
		title.Center()
		for _, block := range sample.blocks {
			switch block.kind {
			case "heading":
				doc.AddHeading(block.text, block.level)
			case "bullet":
				doc.AddBullet(block.text)
			default:
				doc.AddParagraph(block.text)
			}
		}
		path := filepath.Join(c.Dir, sample.filename)
		if err := doc.Save(path); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", sample.filename, err)
		}
		if c.Reporter != nil {
			fmt.Fprintf(c.Reporter, "Created: %s\n", path)
		}
		paths = append(paths, path)
	}
	return &SampleResult{
		Paths:   paths,
		Message: fmt.Sprintf("Created %d sample documents in %s", len(paths), c.Dir),
	}, nil
}
