package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/image-draw-mcp/internal/logging"
	"github.com/ironsheep/image-draw-mcp/internal/server"
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
			fmt.Printf("image-draw-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-draw-mcp - MCP server for drawing on images and image sequences")
			fmt.Println()
			fmt.Println("Usage: image-draw-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=debug|info|warn|error    Log level (default warn)\n", logging.EnvLevel)
			fmt.Printf("  %s=text|json               Log format (default text)\n", logging.EnvFormat)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Logs go to stderr; stdout is for MCP protocol
	if err := logging.Setup(logging.FromEnv(), os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "image-draw-mcp: %v\n", err)
		os.Exit(2)
	}

	slog.Debug("starting image-draw-mcp", "version", Version, "built", BuildTime, "commit", GitCommit)

	srv := server.New()
	if err := srv.Run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
