package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/HendryAvila/portfolio-mcp/internal/config"
	"github.com/HendryAvila/portfolio-mcp/internal/logging"
	"github.com/HendryAvila/portfolio-mcp/internal/portfolio"
	pserver "github.com/HendryAvila/portfolio-mcp/internal/server"
	"github.com/HendryAvila/portfolio-mcp/internal/source"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Load the portfolio dataset once and serve it over MCP.

The stdio transport (default) speaks MCP on stdin/stdout; logs go to stderr.
The http transport serves streamable HTTP on --addr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a)
		},
	}

	cmd.Flags().String("transport", config.TransportStdio, "transport (stdio|http)")
	cmd.Flags().String("addr", ":8080", "listen address for the http transport")
	cmd.Flags().Bool("strict", false, "exit if the dataset cannot be loaded instead of serving an empty one")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	store, err := loadStore(ctx, a.cfg, source.NewLoader(source.WithLogger(a.logger)), a.logger)
	if err != nil {
		if ctx.Err() != nil {
			a.logger.Info("interrupted while loading portfolio data")
			return nil
		}
		return err
	}

	s, err := pserver.New(a.cfg, store, a.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	a.logger.Info("serving",
		zap.String("transport", a.cfg.Transport),
		zap.String("version", pserver.Version),
	)

	if a.cfg.Transport == config.TransportHTTP {
		return serveHTTP(ctx, s, a.cfg, a.logger)
	}
	return serveStdio(ctx, s, a.logger)
}

// loadStore discovers and loads the dataset. Unless cfg.Strict is set, a
// load failure is logged and an empty store is served instead. Cancellation
// is never treated as a load failure.
func loadStore(ctx context.Context, cfg config.Config, loader *source.Loader, logger *zap.Logger) (*portfolio.Store, error) {
	ds, err := loader.Discover(ctx, cfg.DataPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if cfg.Strict {
			return nil, fmt.Errorf("loading portfolio data: %w", err)
		}
		logger.Error("portfolio data unavailable, serving empty dataset", zap.Error(err))
		return portfolio.NewStore(nil), nil
	}

	logger.Info("portfolio data loaded",
		zap.String("path", ds.Location),
		zap.Int("records", len(ds.Records)),
		zap.Int("warnings", len(ds.Warnings)),
	)
	return portfolio.NewStore(ds.Records), nil
}

// serveStdio returns when stdin closes or ctx is cancelled.
func serveStdio(ctx context.Context, s *server.MCPServer, logger *zap.Logger) error {
	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(logging.StdLog(logger))

	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	return nil
}

// serveHTTP runs the streamable HTTP transport until ctx is cancelled, then
// shuts it down within shutdownTimeout. The listener is bound before serving
// so a cancelled ctx always finds a server to close.
func serveHTTP(ctx context.Context, s *server.MCPServer, cfg config.Config, logger *zap.Logger) error {
	if ctx.Err() != nil {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.EndpointPath, server.NewStreamableHTTPServer(s, server.WithEndpointPath(cfg.EndpointPath)))
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", ln.Addr().String()), zap.String("endpoint", cfg.EndpointPath))
		if err := httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}
