package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rgould/calcsh/internal/results"
	"github.com/rgould/calcsh/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// UndoLastTool handles undo requests
type UndoLastTool struct {
	session types.Session
}

// NewUndoLastTool creates a new undo tool
func NewUndoLastTool(session types.Session) *UndoLastTool {
	return &UndoLastTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *UndoLastTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolUndoLast,
		mcp.WithDescription("Remove the most recent calculation record from the session history"),
	)
	return tool
}

// Handle processes the tool request. An empty history is a normal
// outcome, not a tool error.
func (t *UndoLastTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	record, ok := t.session.Undo()

	out := results.UndoResult{
		Removed: string(record),
		Empty:   !ok,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
