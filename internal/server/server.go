package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// Options describes the HTTP server started by Run.
type Options struct {
	Port            int           // Port to listen on; 0 picks a free port.
	Handler         http.Handler  // Handler serves every request.
	ReadTimeout     time.Duration // ReadTimeout bounds reading a request.
	WriteTimeout    time.Duration // WriteTimeout bounds writing a response.
	ShutdownTimeout time.Duration // ShutdownTimeout bounds graceful shutdown.
}

// Run serves opts.Handler until ctx is canceled and then shuts the server down,
// waiting up to opts.ShutdownTimeout for in-flight requests.
// The ready callback, when not nil, receives the bound address once the listener is open.
func Run(ctx context.Context, log *slog.Logger, opts Options, ready func(addr net.Addr)) error {
	listener, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(opts.Port)))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", opts.Port, err)
	}

	srv := &http.Server{
		Handler:           opts.Handler,
		ReadHeaderTimeout: opts.ReadTimeout,
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	log.InfoContext(ctx, "Starting HTTP server", "addr", listener.Addr().String())
	if ready != nil {
		ready(listener.Addr())
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	log.InfoContext(ctx, "Shutdown signal received. Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), opts.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	if err = <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}

	log.InfoContext(ctx, "HTTP server stopped gracefully.")

	return nil
}
