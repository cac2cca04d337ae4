// Package server implements the MCP server for the Roam notebook tools.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/roamkit/roam-mcp/internal/config"
	"github.com/roamkit/roam-mcp/internal/logging"
	"github.com/roamkit/roam-mcp/internal/roam"
	"github.com/roamkit/roam-mcp/internal/tools"
	"github.com/roamkit/roam-mcp/internal/tools/notebook"
	"github.com/roamkit/roam-mcp/pkg/version"
)

// loggerAdapter wraps logging.Logger to implement tools.Logger.
// This avoids a circular dependency between logging and tools.
type loggerAdapter struct {
	*logging.Logger
}

// WithTool implements tools.Logger.
func (a *loggerAdapter) WithTool(toolName string) tools.Logger {
	return &loggerAdapter{Logger: a.Logger.WithTool(toolName)}
}

// Server represents the Roam MCP server.
type Server struct {
	mcpServer *mcp.Server
	registry  *tools.Registry
	gateway   tools.Gateway
	logger    *logging.Logger
	graph     string
}

// Options configures the server instance. Config is required unless a
// Gateway is injected directly (tests do this).
type Options struct {
	Config  *config.Config
	Logger  *logging.Logger
	Gateway tools.Gateway
}

// New creates a new Roam MCP server with the given options. It fails before
// any transport is connected when the configuration cannot produce a
// working gateway.
func New(opts *Options) (*Server, error) {
	if opts.Logger == nil {
		level := config.DefaultLogLevel
		if opts.Config != nil {
			level = opts.Config.LogLevel
		}
		opts.Logger = logging.NewLogger(level)
	}

	graph := "unknown"
	if opts.Gateway == nil {
		client, err := roam.New(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to create gateway: %w", err)
		}
		opts.Gateway = client
		graph = client.Graph()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "roam-mcp",
		Version: version.GetVersion().Version,
	}, nil)

	server := &Server{
		mcpServer: mcpServer,
		registry:  tools.NewRegistry(),
		gateway:   opts.Gateway,
		logger:    opts.Logger,
		graph:     graph,
	}

	if err := server.registerTools(); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}

	return server, nil
}

// Start validates the registered tools and logs startup information.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting Roam MCP server",
		slog.String("version", version.GetVersion().Version),
		slog.String("graph", s.graph),
		slog.Int("tools", s.registry.Count()),
	)

	if err := s.registry.Validate(); err != nil {
		return fmt.Errorf("tool registry validation failed: %w", err)
	}

	return nil
}

// Stop stops the MCP server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping Roam MCP server")

	select {
	case <-ctx.Done():
		s.logger.Warn("Server stop timed out")
		return ctx.Err()
	default:
		s.logger.Info("Server stopped successfully")
		return nil
	}
}

// GetRegistry returns the tool registry.
func (s *Server) GetRegistry() *tools.Registry {
	return s.registry
}

// registerTools registers the notebook tools with the MCP server.
func (s *Server) registerTools() error {
	s.logger.Debug("Registering tools with MCP server")

	toolCtx := &tools.Context{
		Logger:  &loggerAdapter{Logger: s.logger},
		Gateway: s.gateway,
	}

	notebookTools := notebook.CreateNotebookTools(toolCtx)

	for _, tool := range notebookTools {
		if err := s.registry.Register(tool); err != nil {
			return err
		}
		tool.RegisterFunc(s.mcpServer)

		s.logger.Debug("Registered tool", "name", tool.Tool.Name)
	}

	s.logger.Info("Successfully registered tools",
		slog.Int("count", s.registry.Count()),
		slog.Any("tools", s.registry.List()),
	)

	return nil
}

// Serve runs the MCP server with the specified transport. It connects the
// MCP server to the transport and waits for either the session to complete
// or the context to be cancelled.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	s.logger.Info("Starting MCP server transport",
		slog.String("transport", fmt.Sprintf("%T", transport)),
	)

	session, err := s.mcpServer.Connect(ctx, transport)
	if err != nil {
		return fmt.Errorf("failed to connect MCP server: %w", err)
	}

	sessionDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("MCP session goroutine panicked",
					slog.Any("panic", r))
				sessionDone <- fmt.Errorf("session panicked: %v", r)
			}
		}()
		sessionDone <- session.Wait()
	}()

	select {
	case err := <-sessionDone:
		s.logger.Info("MCP session finished")
		return err
	case <-ctx.Done():
		s.logger.Info("MCP server shutting down due to context cancellation")
		return ctx.Err()
	}
}
