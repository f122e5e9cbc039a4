package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pranama13/portfolio/internal/config"
	"github.com/pranama13/portfolio/internal/content"
	"github.com/pranama13/portfolio/internal/logging"
	"github.com/pranama13/portfolio/internal/site"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "portfolio:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	page, err := content.Load()
	if err != nil {
		return err
	}

	s, err := site.New(site.Options{
		Content:        page,
		ContactAddress: cfg.ContactAddress,
		TitleInterval:  cfg.TitleInterval,
		AssetsDir:      cfg.AssetsDir,
		IPHashSalt:     cfg.IPHashSalt,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	srv := newHTTPServer(cfg.Addr(), s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", cfg.IsDevelopment()),
			zap.Duration("title_interval", cfg.TitleInterval),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		return srv.stop(cfg.ShutdownTimeout)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}

// httpServer is an http.Server whose request contexts can be cancelled as a
// group. Shutdown does not end open title streams; cancelling them does.
type httpServer struct {
	*http.Server
	endStreams context.CancelFunc
}

func newHTTPServer(addr string, h http.Handler) *httpServer {
	streams, endStreams := context.WithCancel(context.Background())

	// No WriteTimeout: the title stream stays open for the whole visit.
	return &httpServer{
		Server: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return streams },
		},
		endStreams: endStreams,
	}
}

// stop ends open streams, then shuts the server down within timeout.
func (s *httpServer) stop(timeout time.Duration) error {
	s.endStreams()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
