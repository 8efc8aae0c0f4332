// Package mcp exposes document merging over the Model Context Protocol.
package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docnav/internal/application/commands"
	"docnav/internal/config"
	"docnav/internal/domain"
	"docnav/internal/ports"
)

// RegisterTools adds the merge, plan, and sample tools to the MCP
// server.
func RegisterTools(s *server.MCPServer, store ports.DocumentStore, discovery ports.Discovery) {
	s.AddTool(planTool(), planHandler(discovery))
	s.AddTool(mergeTool(), mergeHandler(store, discovery))
	s.AddTool(sampleTool(), sampleHandler())
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Report how the documents in a directory would be grouped into menu categories, without merging anything."),
		mcp.WithString("dir",
			mcp.Description("Directory to scan for documents. Defaults to the current directory."),
		),
		mcp.WithString("separator",
			mcp.Description("Separator between category and document name in filenames. Default: _"),
		),
	)
}

func planHandler(discovery ports.Discovery) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", ".")
		opts := domain.DefaultOptions()
		opts.Separator = req.GetString("separator", config.Separator())

		files, err := discovery.Collect(dir, "")
		if err != nil {
			return toolError(err)
		}
		if len(files) == 0 {
			return mcp.NewToolResultText("No documents found."), nil
		}

		plan := domain.BuildPlan(files, opts)
		var sb strings.Builder
		for _, category := range plan.Categories() {
			fmt.Fprintf(&sb, "%s:\n", category)
			for _, item := range plan.Items(category) {
				fmt.Fprintf(&sb, "  - %s (%s)\n", item.Label, filepath.Base(item.Path))
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- merge ---

func mergeTool() mcp.Tool {
	return mcp.NewTool("merge",
		mcp.WithDescription("Merge the documents in a directory into one output document with a clickable navigation menu."),
		mcp.WithString("dir",
			mcp.Description("Directory to scan for documents. Defaults to the current directory."),
		),
		mcp.WithString("output",
			mcp.Description("Output file path. Default: "+config.DefaultOutput),
		),
		mcp.WithString("menu_title",
			mcp.Description("Heading text for the navigation menu. Default: Menu"),
		),
		mcp.WithString("back_label",
			mcp.Description("Label for the back-to-menu links. Default: Back to menu"),
		),
		mcp.WithString("separator",
			mcp.Description("Separator between category and document name in filenames. Default: _"),
		),
		mcp.WithNumber("toc_depth",
			mcp.Description("Menu depth; below 2 the category sub-headings are omitted. Default: 2"),
		),
		mcp.WithBoolean("keep_styles",
			mcp.Description("Preserve the source documents' styles. Default: true"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report the plan without writing the output file."),
		),
	)
}

func mergeHandler(store ports.DocumentStore, discovery ports.Discovery) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := req.GetString("dir", ".")
		output := req.GetString("output", config.Output())

		opts := domain.DefaultOptions()
		opts.MenuTitle = req.GetString("menu_title", opts.MenuTitle)
		opts.BackLabel = req.GetString("back_label", opts.BackLabel)
		opts.Separator = req.GetString("separator", config.Separator())
		opts.TOCDepth = req.GetInt("toc_depth", opts.TOCDepth)
		opts.KeepStyles = req.GetBool("keep_styles", true)

		files, err := discovery.Collect(dir, output)
		if err != nil {
			return toolError(err)
		}

		var report strings.Builder
		cmd := commands.NewMergeCommand(store, files, output, opts)
		cmd.DryRun = req.GetBool("dry_run", false)
		cmd.Reporter = &report

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if report.Len() > 0 {
			return mcp.NewToolResultText(result.Message + "\n\n" + report.String()), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- sample ---

func sampleTool() mcp.Tool {
	return mcp.NewTool("sample",
		mcp.WithDescription("Create a small sample document corpus (Finance/HR/Marketing) to try a merge on."),
		mcp.WithString("dir",
			mcp.Description("Directory to create the sample documents in. Defaults to the current directory."),
		),
	)
}

func sampleHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSampleCommand(req.GetString("dir", "."))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
