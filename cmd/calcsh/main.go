package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rgould/calcsh/internal/repl"
	"github.com/rgould/calcsh/internal/server"
	"github.com/rgould/calcsh/internal/session"
	"github.com/rgould/calcsh/pkg/types"

	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		mode         = flag.String("mode", "repl", "Run mode (repl, serve)")
		historyLimit = flag.Int("history-limit", 0, "Maximum number of history records to keep (0 = unlimited)")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	config := &types.Config{
		Mode:         types.Mode(*mode),
		HistoryLimit: *historyLimit,
		LogLevel:     *logLevel,
	}

	calcSession := session.NewSession(config.HistoryLimit)

	switch config.Mode {
	case types.ModeRepl:
		loop := repl.NewLoop(calcSession, os.Stdin, os.Stdout)
		if err := loop.Run(); err != nil {
			log.Fatalf("REPL error: %v", err)
		}
	case types.ModeServe:
		if err := serve(calcSession, config); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		log.Fatalf("Invalid mode: %s (supported modes: repl, serve)", config.Mode)
	}
}

// serve runs the MCP server until it stops or a shutdown signal arrives
func serve(calcSession *session.Session, config *types.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcpServer := server.NewCalcServer(calcSession, config)

	// Serve returns on its own when stdin closes, so waiting on ctx
	// here would block the group forever.
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return mcpServer.Serve(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
