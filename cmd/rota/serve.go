package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rota-go/internal/transport/http/server/handlers-fiber"
	"github.com/ukaji3/rota-go/pkg/rota"
)

func newServeCmd(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the rota API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), global)
		},
	}
}

func runServe(parent context.Context, global *globalFlags) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := global.load()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	processor, err := rota.NewProcessor(cfg.Rota, log)
	if err != nil {
		return err
	}

	h := handlers_fiber.NewHandler(log, processor, cfg.HTTP.FormField)
	serv := handlers_fiber.NewApp(log, h, handlers_fiber.AppConfig{
		RequestTimeout: cfg.HTTP.RequestTimeout,
		BodyLimit:      cfg.HTTP.BodyLimit,
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "addr", cfg.ServerAddr(), "sheet", processor.Config().SheetName)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			listenErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-listenErr:
		return err
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		log.Infow("server stopped")
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
	return nil
}
