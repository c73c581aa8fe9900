package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pdf-hero/internal/config"
	pdf_h "pdf-hero/internal/http-server/handler/pdf"
	"pdf-hero/internal/http-server/router"
	pdf_uc "pdf-hero/internal/usecase/pdf"
	"pdf-hero/internal/usecase/processor/ghostscript"
	"pdf-hero/internal/usecase/processor/operations"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg    *config.Config
	server *http.Server
	logger *zlog.Zerolog
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	compressor := ghostscript.NewCompressor(cfg.Ghostscript.Binary, cfg.Ghostscript.Timeout, logger)
	merger := operations.NewMerger(logger)
	converter := operations.NewConverter(logger)

	if !compressor.IsAvailable() {
		logger.Warn().Str("binary", cfg.Ghostscript.Binary).Msg("Ghostscript not found, compression will return originals")
	}

	pdfUsecase := pdf_uc.NewPDFUsecase(compressor, merger, converter, logger)
	pdfHandler := pdf_h.NewPDFHandler(pdfUsecase, cfg.Upload, logger)

	h := &router.Handler{
		PDFHandler: pdfHandler,
	}

	mux := router.SetupRouter(h, cfg.CORS.AllowedOrigin)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("addr", a.cfg.Server.Addr).Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
