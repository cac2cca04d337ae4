// Package notebook provides the Roam notebook tools using the MCP SDK patterns.
package notebook

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/roamkit/roam-mcp/internal/prompts"
	"github.com/roamkit/roam-mcp/internal/roam"
	"github.com/roamkit/roam-mcp/internal/tools"
)

// GetPageContentArgs represents the arguments for the get_page_content tool.
type GetPageContentArgs struct {
	PageName string `json:"page_name"`
}

// GetPageReferencesArgs represents the arguments for the get_page_references tool.
type GetPageReferencesArgs struct {
	PageName string `json:"page_name"`
	Limit    int    `json:"limit,omitempty"`
	Cursor   *int64 `json:"cursor,omitempty"`
}

// WriteToPageArgs represents the arguments for the write_to_page tool.
type WriteToPageArgs struct {
	PageName string `json:"page_name"`
	Content  string `json:"content"`
}

// WriteToTodayArgs represents the arguments for the write_to_today tool.
type WriteToTodayArgs struct {
	Content string `json:"content"`
}

// contentPayload mirrors the wire shape read operations relay to the host.
type contentPayload struct {
	Result     []roam.BlockContent `json:"result"`
	NextCursor *int64              `json:"next_cursor,omitempty"`
}

// handleGetPageContent reads a page and relays its rendered blocks.
func handleGetPageContent(ctxReq context.Context, tc *tools.Context, args GetPageContentArgs) *mcp.CallToolResultFor[any] {
	if strings.TrimSpace(args.PageName) == "" {
		return tools.EmptyFieldError("page_name")
	}

	blocks, err := tc.Gateway.PageContent(ctxReq, args.PageName)
	if err != nil {
		tc.Logger.WithTool("get_page_content").Error("Page content read failed", "error", err, "page", args.PageName)
		return tools.ErrorResponse(err.Error())
	}

	return tools.JSONResponse(contentPayload{Result: blocks}, map[string]any{
		"page_name":   args.PageName,
		"block_count": len(blocks),
	})
}

// handleGetPageReferences queries referencing blocks and relays the page.
func handleGetPageReferences(ctxReq context.Context, tc *tools.Context, args GetPageReferencesArgs) *mcp.CallToolResultFor[any] {
	if strings.TrimSpace(args.PageName) == "" {
		return tools.EmptyFieldError("page_name")
	}
	if args.Limit < 0 {
		return tools.ErrorResponse("limit cannot be negative")
	}

	page, err := tc.Gateway.PageReferences(ctxReq, args.PageName, args.Limit, args.Cursor)
	if err != nil {
		tc.Logger.WithTool("get_page_references").Error("Reference query failed", "error", err, "page", args.PageName)
		return tools.ErrorResponse(err.Error())
	}

	meta := map[string]any{
		"page_name":       args.PageName,
		"reference_count": len(page.Results),
	}
	if page.NextCursor != nil {
		meta["next_cursor"] = *page.NextCursor
	}

	return tools.JSONResponse(contentPayload{Result: page.Results, NextCursor: page.NextCursor}, meta)
}

// handleWriteToPage appends a block to the named page.
func handleWriteToPage(ctxReq context.Context, tc *tools.Context, args WriteToPageArgs) *mcp.CallToolResultFor[any] {
	if strings.TrimSpace(args.PageName) == "" {
		return tools.EmptyFieldError("page_name")
	}
	if strings.TrimSpace(args.Content) == "" {
		return tools.EmptyFieldError("content")
	}

	blockUID, err := tc.Gateway.AppendToPage(ctxReq, args.PageName, args.Content)
	if err != nil {
		tc.Logger.WithTool("write_to_page").Error("Block append failed", "error", err, "page", args.PageName)
		return tools.ErrorResponse(err.Error())
	}

	return tools.ResponseWithMeta(
		"Successfully wrote to page '"+args.PageName+"' (block "+blockUID+")",
		map[string]any{
			"page_name": args.PageName,
			"block_uid": blockUID,
		},
	)
}

// handleWriteToToday appends a block to today's daily page.
func handleWriteToToday(ctxReq context.Context, tc *tools.Context, args WriteToTodayArgs) *mcp.CallToolResultFor[any] {
	if strings.TrimSpace(args.Content) == "" {
		return tools.EmptyFieldError("content")
	}

	blockUID, err := tc.Gateway.AppendToToday(ctxReq, args.Content)
	if err != nil {
		tc.Logger.WithTool("write_to_today").Error("Daily page append failed", "error", err)
		return tools.ErrorResponse(err.Error())
	}

	return tools.ResponseWithMeta(
		"Successfully wrote to today's page (block "+blockUID+")",
		map[string]any{
			"block_uid": blockUID,
		},
	)
}

// CreateGetPageContentTool creates the get_page_content tool.
func CreateGetPageContentTool(tc *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GetPageContentArgs]) (*mcp.CallToolResultFor[any], error) {
		return handleGetPageContent(ctxReq, tc, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "get_page_content",
		Description: prompts.GetPageContentToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateGetPageReferencesTool creates the get_page_references tool.
func CreateGetPageReferencesTool(tc *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[GetPageReferencesArgs]) (*mcp.CallToolResultFor[any], error) {
		return handleGetPageReferences(ctxReq, tc, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "get_page_references",
		Description: prompts.GetPageReferencesToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateWriteToPageTool creates the write_to_page tool.
func CreateWriteToPageTool(tc *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[WriteToPageArgs]) (*mcp.CallToolResultFor[any], error) {
		return handleWriteToPage(ctxReq, tc, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "write_to_page",
		Description: prompts.WriteToPageToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateWriteToTodayTool creates the write_to_today tool.
func CreateWriteToTodayTool(tc *tools.Context) *tools.ServerTool {
	handler := func(ctxReq context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[WriteToTodayArgs]) (*mcp.CallToolResultFor[any], error) {
		return handleWriteToToday(ctxReq, tc, params.Arguments), nil
	}

	tool := &mcp.Tool{
		Name:        "write_to_today",
		Description: prompts.WriteToTodayToolDoc,
	}

	return &tools.ServerTool{
		Tool: tool,
		RegisterFunc: func(server *mcp.Server) {
			mcp.AddTool(server, tool, handler)
		},
	}
}

// CreateNotebookTools creates all notebook tools.
func CreateNotebookTools(tc *tools.Context) []*tools.ServerTool {
	return []*tools.ServerTool{
		CreateGetPageContentTool(tc),
		CreateGetPageReferencesTool(tc),
		CreateWriteToPageTool(tc),
		CreateWriteToTodayTool(tc),
	}
}
