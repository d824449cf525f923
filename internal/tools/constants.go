package tools

// Tool name prefix for all MCP tools
const ToolPrefix = "calc."

// Tool names
const (
	ToolCalculate    = ToolPrefix + "calculate"
	ToolListHistory  = ToolPrefix + "list_history"
	ToolClearHistory = ToolPrefix + "clear_history"
	ToolUndoLast     = ToolPrefix + "undo_last"
)
