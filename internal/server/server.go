package server

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rgould/calcsh/internal/tools"
	"github.com/rgould/calcsh/pkg/project"
	"github.com/rgould/calcsh/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalcServer{}

// CalcServer exposes one calculator session as MCP tools over stdio
type CalcServer struct {
	mcpServer *server.MCPServer
	session   types.Session
	config    *types.Config
}

// NewCalcServer creates a new calculator MCP server
func NewCalcServer(session types.Session, config *types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version)

	return &CalcServer{
		mcpServer: mcpServer,
		session:   session,
		config:    config,
	}
}

// Serve registers the tools and serves MCP over stdio until the client
// disconnects or ctx is cancelled
func (s *CalcServer) Serve(ctx context.Context) error {
	log.Printf("Starting %s MCP server with config: %+v", project.Name, s.config)

	s.registerTools()

	stdioServer := server.NewStdioServer(s.mcpServer)
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalcServer) registerTools() {
	calculateTool := tools.NewCalculateTool(s.session)
	s.mcpServer.AddTool(calculateTool.GetTool(), calculateTool.Handle)

	listHistoryTool := tools.NewListHistoryTool(s.session)
	s.mcpServer.AddTool(listHistoryTool.GetTool(), listHistoryTool.Handle)

	clearHistoryTool := tools.NewClearHistoryTool(s.session)
	s.mcpServer.AddTool(clearHistoryTool.GetTool(), clearHistoryTool.Handle)

	undoLastTool := tools.NewUndoLastTool(s.session)
	s.mcpServer.AddTool(undoLastTool.GetTool(), undoLastTool.Handle)
}
