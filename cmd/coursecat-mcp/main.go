package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"coursecat/internal/adapters/filesystem"
	mcpadapter "coursecat/internal/adapters/mcp"
	"coursecat/internal/catalog"
	"coursecat/internal/config"
	"coursecat/internal/ports"
)

func main() {
	fileFlag := flag.String("file", "", "catalog file to load before serving")
	depthFlag := flag.Int("search-depth", config.SearchDepth(), "directories probed when resolving a relative catalog file")
	flag.Parse()

	// stdout carries the protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel()}))

	resolver := filesystem.NewResolver(*depthFlag)
	session := mcpadapter.NewSession(func() ports.CourseCatalog {
		return catalog.New(resolver)
	}, config.CatalogFile(), logger)

	if *fileFlag != "" {
		if _, err := session.Load(context.Background(), *fileFlag); err != nil {
			logger.Warn("initial load failed", "file", *fileFlag, "err", err)
		}
	}

	mcpServer := server.NewMCPServer(
		"coursecat-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, session)
	mcpadapter.RegisterWriteTools(mcpServer, session)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("coursecat-mcp: %v", err)
	}
}
