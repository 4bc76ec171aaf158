// Package server binds the HTTP listener, walking forward from the preferred
// port while the address is taken.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"

	"content-analyzer/internal/domain"
)

// Options controls where Listen tries to bind.
type Options struct {
	Host     string
	Port     int
	Attempts int
}

// Listen binds host:port, retrying port+1, port+2, ... while the address is
// in use, for at most opts.Attempts tries. Any other bind failure is returned
// immediately. Running out of attempts returns domain.ErrNoFreePort.
func Listen(ctx context.Context, opts Options, logger domain.Logger) (net.Listener, error) {
	attempts := opts.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lc net.ListenConfig
	for i := 0; i < attempts; i++ {
		port := opts.Port + i
		addr := net.JoinHostPort(opts.Host, strconv.Itoa(port))

		ln, err := lc.Listen(ctx, "tcp", addr)
		if err == nil {
			logger.Info("Server listening", "address", "http://"+ln.Addr().String(), "host", opts.Host, "port", port)
			return ln, nil
		}
		if !isAddrInUse(err) {
			return nil, fmt.Errorf("listen on %s: %w", addr, err)
		}
		logger.Warn("Port in use, trying next", "port", port, "next", port+1)
	}
	return nil, fmt.Errorf("%w: tried ports %d-%d on %s", domain.ErrNoFreePort, opts.Port, opts.Port+attempts-1, opts.Host)
}

func isAddrInUse(err error) bool {
	return errors.Is(err, syscall.EADDRINUSE)
}
