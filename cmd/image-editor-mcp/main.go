package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/image-editor-mcp/internal/config"
	"github.com/ironsheep/image-editor-mcp/internal/editor"
	"github.com/ironsheep/image-editor-mcp/internal/logger"
	"github.com/ironsheep/image-editor-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-editor-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-editor-mcp - MCP server for editing an image with undo/redo")
			fmt.Println()
			fmt.Println("Usage: image-editor-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  IMAGE_EDITOR_CONFIG=path                 YAML configuration file")
			fmt.Println("  IMAGE_EDITOR_LOG_LEVEL=debug             debug, info, warn, error, disabled")
			fmt.Println("  IMAGE_EDITOR_LOG_FORMAT=json             console or json")
			fmt.Println("  IMAGE_EDITOR_HISTORY_LIMIT=50            Max undo snapshots (0 = unbounded)")
			fmt.Println("  IMAGE_EDITOR_MAX_PIXELS=67108864        Largest resize target in pixels")
			fmt.Println("  IMAGE_EDITOR_CLEAR_REDO_ON_EDIT=true     Discard redo history on a new edit")
			fmt.Println("  IMAGE_EDITOR_RESET_HISTORY_ON_LOAD=true  Discard all history when loading")
			fmt.Println("  IMAGE_EDITOR_STRICT_NO_IMAGE=true        Fail edits when no image is loaded")
			fmt.Println("  IMAGE_EDITOR_PREVIEW_MAX_SIZE=512        Default preview bounding box")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr (stdout is for MCP protocol)
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.Console())
	log.Debug().
		Str("version", Version).
		Str("built", BuildTime).
		Str("commit", GitCommit).
		Int("history_limit", cfg.HistoryLimit).
		Msg("image editor MCP server starting")

	server.Version = Version
	session := editor.New(append(cfg.SessionOptions(), editor.WithLogger(log))...)
	srv := server.New(
		server.WithSession(session),
		server.WithLogger(log),
		server.WithPreviewMaxSize(cfg.PreviewMaxSize),
	)
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
