package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sigfmt/sigfmt"
	"github.com/sigfmt/sigfmt/middleware"
)

const shutdownTimeout = 5 * time.Second

type ServeCmd struct {
	PrinterFlags

	Addr        string `help:"Listen address." default:"localhost:8080" env:"SIGFMT_ADDR"`
	MaxBodySize int64  `help:"Request body limit in bytes." default:"1048576" name:"max-body-size"`
}

func (c *ServeCmd) handler(g *Globals) (http.Handler, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	h := sigfmt.NewHandler(sigfmt.New(cfg).WithLogger(g.Logger)).
		WithLogger(g.Logger).
		MaxBodySize(c.MaxBodySize)
	return middleware.Logging(g.Logger)(h), nil
}

func (c *ServeCmd) Run(g *Globals) error {
	ln, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return c.serve(ctx, g, ln)
}

// serve runs the HTTP server on ln until ctx is done, then shuts it down.
func (c *ServeCmd) serve(ctx context.Context, g *Globals, ln net.Listener) error {
	h, err := c.handler(g)
	if err != nil {
		ln.Close()
		return err
	}
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(g.Logger.Handler(), slog.LevelError),
	}

	errc := make(chan error, 1)
	go func() {
		g.Logger.Info("listening", slog.String("addr", ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
