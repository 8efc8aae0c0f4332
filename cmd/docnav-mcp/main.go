package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"docnav/internal/adapters/filesystem"
	mcpadapter "docnav/internal/adapters/mcp"
)

func main() {
	repo := filesystem.NewRepository()

	mcpServer := server.NewMCPServer(
		"docnav-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, repo, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("docnav-mcp: %v", err)
	}
}
