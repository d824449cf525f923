package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rgould/calcsh/internal/calc"
	"github.com/rgould/calcsh/internal/results"
	"github.com/rgould/calcsh/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// CalculateTool handles calculation requests
type CalculateTool struct {
	session types.Session
}

// NewCalculateTool creates a new calculation tool
func NewCalculateTool(session types.Session) *CalculateTool {
	return &CalculateTool{
		session: session,
	}
}

// GetTool returns the MCP tool definition
func (t *CalculateTool) GetTool() mcp.Tool {
	tool := mcp.NewTool(ToolCalculate,
		mcp.WithDescription(fmt.Sprintf("Apply an arithmetic operation (%s) to two numbers and record it in the session history", calc.SupportedNames())),
		mcp.WithString("operation", mcp.Required(), mcp.Description("Operation name: "+calc.SupportedNames())),
		mcp.WithNumber("a", mcp.Required(), mcp.Description("First operand")),
		mcp.WithNumber("b", mcp.Required(), mcp.Description("Second operand")),
	)
	return tool
}

// Handle processes the tool request
func (t *CalculateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	operation := mcp.ParseString(req, "operation", "")
	if operation == "" {
		return mcp.NewToolResultError("operation parameter is required"), nil
	}
	a := mcp.ParseFloat64(req, "a", 0)
	b := mcp.ParseFloat64(req, "b", 0)

	record, result, err := t.session.Calculate(operation, a, b)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Calculation failed: %v", err)), nil
	}

	out := results.CalculationResult{
		Operation: operation,
		A:         a,
		B:         b,
		Result:    result,
		Record:    string(record),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
