// Package main implements the Roam Research MCP server executable.
// It provides a Model Context Protocol server that exposes a small set of
// Roam Research notebook operations as MCP tools for an assistant host.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/roamkit/roam-mcp/internal/config"
	"github.com/roamkit/roam-mcp/internal/logging"
	"github.com/roamkit/roam-mcp/internal/server"
	"github.com/roamkit/roam-mcp/pkg/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "roam-mcp",
	Short: "Roam Research MCP server",
	Long: `Roam Research MCP server provides a Model Context Protocol server that exposes
notebook operations (read a page, find references, append blocks) against a
single Roam Research graph. The API token and graph name are read from the
ROAM_TOKEN and ROAM_GRAPH_NAME environment variables.`,
	RunE: runServer,
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")

	// Every flag is also settable via the environment with the ROAM_
	// prefix, e.g. --graph-name / ROAM_GRAPH_NAME. The token itself is
	// environment-only so it never shows up in process listings.
	rootCmd.Flags().String("graph-name", "", "Roam graph to operate on (env: ROAM_GRAPH_NAME)")
	rootCmd.Flags().Duration("request-timeout", config.DefaultRequestTimeout, "Timeout for a single Roam API request")
	rootCmd.Flags().Int("reference-limit", config.DefaultReferencePageSize, "Default result limit for reference queries")
	rootCmd.Flags().Bool("create-missing-pages", false, "Create the target page when write_to_page names one that does not exist")
	rootCmd.Flags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
}

// runServer starts the MCP server on the stdio transport.
func runServer(cmd *cobra.Command, args []string) error {
	if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
		fmt.Println(version.GetVersion().String())
		return nil
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		// Config errors must surface before any remote call; the logger
		// does not exist yet, so report directly.
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return err
	}

	logger := logging.NewLogger(cfg.LogLevel).WithGraph(cfg.Graph)

	srv, err := server.New(&server.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Error("Failed to create server", slog.Any("error", err))
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		logger.Error("Failed to start server", slog.Any("error", err))
		return fmt.Errorf("failed to start server: %w", err)
	}

	transport := mcp.NewStdioTransport()

	logger.Info("Roam MCP Server starting",
		slog.String("version", version.GetVersion().Version),
		slog.Int("tools_available", srv.GetRegistry().Count()))

	// Start server in a goroutine so we can handle signals
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- srv.Serve(ctx, transport)
	}()

	select {
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Server error", slog.Any("error", err))
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("Error stopping server", slog.Any("error", err))
	}

	logger.Info("Roam MCP Server stopped")
	return nil
}
