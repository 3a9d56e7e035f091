package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/designsuite/portal/server"
	"github.com/viant/mcp"
	"go.uber.org/zap"
)

// ServeCmd serves the landing page until SIGINT/SIGTERM. With --mcp it also
// starts an MCP server exposing the portal tools; its transport and port come
// from the mcp section of the configuration.
type ServeCmd struct {
	Addr string `short:"a" long:"addr" description:"listen address, overrides http.addr"`
	MCP  bool   `long:"mcp" description:"also start the MCP server"`
}

func (c *ServeCmd) Execute(_ []string) error {
	cfg, err := configSingleton()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.HTTP.Addr = c.Addr
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := newRenderer(ctx, cfg)
	if err != nil {
		return err
	}

	if c.MCP {
		if err := c.serveMCP(ctx, logger); err != nil {
			return err
		}
	}
	err = server.New(cfg, renderer, logger).Serve(ctx)
	logger.Info("shutting down")
	return err
}

func (c *ServeCmd) serveMCP(ctx context.Context, logger *zap.Logger) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	mcpServer, err := mcp.NewServer(svc.NewHandler, svc.Config().Server)
	if err != nil {
		return err
	}
	httpSrv := mcpServer.HTTP(ctx, "")
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("mcp server failed", zap.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		_ = httpSrv.Close()
		_ = svc.Shutdown(context.Background())
	}()
	logger.Info("mcp server listening", zap.String("addr", httpSrv.Addr), zap.Strings("tools", svc.ToolNames()))
	return nil
}
