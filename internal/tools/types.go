// Package tools provides the shared framework for MCP tool handlers.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/roamkit/roam-mcp/internal/roam"
)

// Context contains common dependencies needed by tools.
type Context struct {
	Logger  Logger
	Gateway Gateway
}

// Logger defines the logging interface for tools.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithTool(toolName string) Logger
}

// Gateway is the notebook backend the tools call. *roam.Client implements
// it; tests substitute a fake.
type Gateway interface {
	PageContent(ctx context.Context, title string) ([]roam.BlockContent, error)
	PageReferences(ctx context.Context, title string, limit int, cursor *int64) (*roam.ReferencePage, error)
	AppendToPage(ctx context.Context, title, content string) (string, error)
	AppendToToday(ctx context.Context, content string) (string, error)
}

// ServerTool pairs an MCP tool schema with its registration function.
// RegisterFunc exists because mcp.AddTool needs the handler's concrete
// argument type, which only the creating package knows.
type ServerTool struct {
	Tool         *mcp.Tool
	RegisterFunc func(server *mcp.Server)
}
