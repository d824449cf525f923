package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rgould/calcsh/internal/results"
	"github.com/rgould/calcsh/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearHistoryTool handles history clearing requests
type ClearHistoryTool struct {
	session types.Session
}

// NewClearHistoryTool creates a new history clearing tool
func NewClearHistoryTool(session types.Session) *ClearHistoryTool {
	return &ClearHistoryTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *ClearHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolClearHistory,
		mcp.WithDescription("Remove every calculation record from the session history"),
	)
	return tool
}

// Handle processes the tool request
func (t *ClearHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cleared := len(t.session.History())
	t.session.Clear()

	data, err := json.MarshalIndent(results.ClearResult{Cleared: cleared}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
