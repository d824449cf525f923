package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rgould/calcsh/internal/results"
	"github.com/rgould/calcsh/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListHistoryTool handles history listing requests
type ListHistoryTool struct {
	session types.Session
}

// NewListHistoryTool creates a new history listing tool
func NewListHistoryTool(session types.Session) *ListHistoryTool {
	return &ListHistoryTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *ListHistoryTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolListHistory,
		mcp.WithDescription("List every calculation record in the session history, oldest first"),
	)
	return tool
}

// Handle processes the tool request
func (t *ListHistoryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records := t.session.History()

	out := results.HistoryResult{
		Count:   len(records),
		Records: make([]string, 0, len(records)),
	}
	for _, record := range records {
		out.Records = append(out.Records, string(record))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
