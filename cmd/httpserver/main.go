package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Brownie44l1/http-origin/internal/handlers"
	"github.com/Brownie44l1/http-origin/internal/server"
)

const shutdownTimeout = 30 * time.Second

func main() {
	logger := server.NewDefaultLogger()
	if err := run(os.Args[1:], logger); err != nil {
		logger.Error(fmt.Sprintf("fatal: %v", err), server.Field{Key: "error", Value: err})
		os.Exit(1)
	}
}

func run(args []string, logger server.Logger) error {
	dir := parseDirectory(args, logger)
	logger.Info("working directory: "+dir, server.Field{Key: "directory", Value: dir})

	cfg := server.DefaultConfig()
	cfg.Directory = dir
	cfg.Logger = logger
	srv := server.New(cfg, handlers.New(dir))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, server.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	err := g.Wait()

	stats := srv.Stats()
	logger.Info("stopped",
		server.Field{Key: "connections", Value: stats.ConnectionsTotal},
		server.Field{Key: "requests", Value: stats.RequestsTotal},
		server.Field{Key: "protocol_errors", Value: stats.ProtocolErrors},
	)
	return err
}

// parseDirectory reads --directory. Unknown flags and stray arguments are
// reported and skipped, so they never hide a later --directory.
func parseDirectory(args []string, logger server.Logger) string {
	fs := flag.NewFlagSet("httpserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dir := fs.String("directory", ".", "root directory for /files/")

	var ignored []string
	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			logger.Warn(fmt.Sprintf("ignoring argument: %v", err), server.Field{Key: "error", Value: err})
			rest := fs.Args()
			if len(rest) >= len(args) {
				// bad flag syntax does not consume the argument
				rest = args[1:]
			}
			args = rest
			continue
		}
		if fs.NArg() == 0 {
			break
		}
		ignored = append(ignored, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(ignored) > 0 {
		logger.Warn(fmt.Sprintf("ignoring extra arguments: %v", ignored))
	}
	return *dir
}
