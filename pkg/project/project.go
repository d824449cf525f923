package project

// Project identity, shared by the REPL banner and the MCP server
const (
	Name    = "calcsh"
	Version = "0.1.0"
)
